package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkarimi/taskboard/internal/db/models"
)

func TestTaskService_Add(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	project, err := ts.ProjectService.Create(ts.ctx, "backlog", "")
	require.NoError(t, err)

	task, err := ts.TaskService.Add(ts.ctx, project.ID, "  write the docs  ", " cover the API ", "2025-06-01")
	require.NoError(t, err)
	assert.NotZero(t, task.ID)
	assert.Equal(t, "write the docs", task.Title)
	assert.Equal(t, "cover the API", task.Description)
	assert.Equal(t, models.TaskStatusTodo, task.Status)
	assert.Equal(t, project.ID, task.ProjectID)
	require.NotNil(t, task.Deadline)
	assert.Equal(t, "2025-06-01", task.Deadline.Format(models.DateLayout))

	// No deadline is fine
	task, err = ts.TaskService.Add(ts.ctx, project.ID, "no deadline", "", "")
	require.NoError(t, err)
	assert.Nil(t, task.Deadline)
}

func TestTaskService_AddToMissingProject(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	_, err := ts.TaskService.Add(ts.ctx, 999, "orphan", "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_AddValidation(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	project, err := ts.ProjectService.Create(ts.ctx, "backlog", "")
	require.NoError(t, err)

	tests := []struct {
		name        string
		title       string
		description string
		deadline    string
	}{
		{"empty title", "", "", ""},
		{"whitespace title", "   ", "", ""},
		{"title over 30 words", repeatWords(31), "", ""},
		{"description over 150 words", "valid", repeatWords(151), ""},
		{"bad deadline format", "valid", "", "01-06-2025"},
		{"non-date deadline", "valid", "", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.TaskService.Add(ts.ctx, project.ID, tt.title, tt.description, tt.deadline)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestTaskService_AddCapacity(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	project, err := ts.ProjectService.Create(ts.ctx, "crowded", "")
	require.NoError(t, err)

	_, err = ts.TaskService.Add(ts.ctx, project.ID, "first", "", "")
	require.NoError(t, err)
	_, err = ts.TaskService.Add(ts.ctx, project.ID, "second", "", "")
	require.NoError(t, err)

	_, err = ts.TaskService.Add(ts.ctx, project.ID, "one too many", "", "")
	assert.ErrorIs(t, err, ErrCapacity)

	// The ceiling is per project, another project still has room
	other, err := ts.ProjectService.Create(ts.ctx, "roomy", "")
	require.NoError(t, err)
	_, err = ts.TaskService.Add(ts.ctx, other.ID, "fits fine", "", "")
	assert.NoError(t, err)
}

func TestTaskService_ChangeStatus(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	project, err := ts.ProjectService.Create(ts.ctx, "board", "")
	require.NoError(t, err)
	task, err := ts.TaskService.Add(ts.ctx, project.ID, "movable", "", "")
	require.NoError(t, err)

	// Case-insensitive input, canonical lowercase stored
	updated, err := ts.TaskService.ChangeStatus(ts.ctx, project.ID, task.ID, "DOING")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDoing, updated.Status)

	updated, err = ts.TaskService.ChangeStatus(ts.ctx, project.ID, task.ID, "done")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDone, updated.Status)

	// Done is not terminal, reverting is allowed
	updated, err = ts.TaskService.ChangeStatus(ts.ctx, project.ID, task.ID, "todo")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, updated.Status)

	_, err = ts.TaskService.ChangeStatus(ts.ctx, project.ID, task.ID, "pending")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ts.TaskService.ChangeStatus(ts.ctx, project.ID, 999, "done")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_CrossProjectAccessDenied(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	first, err := ts.ProjectService.Create(ts.ctx, "first", "")
	require.NoError(t, err)
	second, err := ts.ProjectService.Create(ts.ctx, "second", "")
	require.NoError(t, err)

	task, err := ts.TaskService.Add(ts.ctx, second.ID, "belongs to second", "", "")
	require.NoError(t, err)

	// The task ID is valid globally but not under the first project
	_, err = ts.TaskService.ChangeStatus(ts.ctx, first.ID, task.ID, "done")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ts.TaskService.Get(ts.ctx, first.ID, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	title := "hijacked"
	_, err = ts.TaskService.Edit(ts.ctx, first.ID, task.ID, &title, nil, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, ts.TaskService.Delete(ts.ctx, first.ID, task.ID), ErrNotFound)

	// And the task is untouched under its own project
	unchanged, err := ts.TaskService.Get(ts.ctx, second.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "belongs to second", unchanged.Title)
	assert.Equal(t, models.TaskStatusTodo, unchanged.Status)
}

func TestTaskService_Edit(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	project, err := ts.ProjectService.Create(ts.ctx, "board", "")
	require.NoError(t, err)
	task, err := ts.TaskService.Add(ts.ctx, project.ID, "original title", "original description", "2025-06-01")
	require.NoError(t, err)

	// Only provided fields change
	title := "new title"
	updated, err := ts.TaskService.Edit(ts.ctx, project.ID, task.ID, &title, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "original description", updated.Description)
	require.NotNil(t, updated.Deadline)

	// "none" clears the deadline
	none := "none"
	updated, err = ts.TaskService.Edit(ts.ctx, project.ID, task.ID, nil, nil, &none)
	require.NoError(t, err)
	assert.Nil(t, updated.Deadline)

	// A real date sets it again
	date := "2030-12-24"
	updated, err = ts.TaskService.Edit(ts.ctx, project.ID, task.ID, nil, nil, &date)
	require.NoError(t, err)
	require.NotNil(t, updated.Deadline)
	assert.Equal(t, "2030-12-24", updated.Deadline.Format(models.DateLayout))

	// Invalid values are rejected
	empty := ""
	_, err = ts.TaskService.Edit(ts.ctx, project.ID, task.ID, &empty, nil, nil)
	assert.ErrorIs(t, err, ErrValidation)

	badDate := "tomorrow"
	_, err = ts.TaskService.Edit(ts.ctx, project.ID, task.ID, nil, nil, &badDate)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTaskService_ListByProject(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	project, err := ts.ProjectService.Create(ts.ctx, "board", "")
	require.NoError(t, err)
	_, err = ts.TaskService.Add(ts.ctx, project.ID, "first", "", "")
	require.NoError(t, err)
	_, err = ts.TaskService.Add(ts.ctx, project.ID, "second", "", "")
	require.NoError(t, err)

	tasks, err := ts.TaskService.ListByProject(ts.ctx, project.ID, nil)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	_, err = ts.TaskService.ListByProject(ts.ctx, 999, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_AutocloseOverdue(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	project, err := ts.ProjectService.Create(ts.ctx, "sweepable", "")
	require.NoError(t, err)

	overdue, err := ts.TaskService.Add(ts.ctx, project.ID, "long overdue", "", "2020-01-01")
	require.NoError(t, err)
	future, err := ts.TaskService.Add(ts.ctx, project.ID, "due far out", "", "2999-01-01")
	require.NoError(t, err)

	closed, err := ts.TaskService.AutocloseOverdue(ts.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	swept, err := ts.TaskService.Get(ts.ctx, project.ID, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDone, swept.Status)

	untouched, err := ts.TaskService.Get(ts.ctx, project.ID, future.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, untouched.Status)

	// Idempotent: the second run closes nothing
	closed, err = ts.TaskService.AutocloseOverdue(ts.ctx)
	require.NoError(t, err)
	assert.Zero(t, closed)
}

func TestTaskService_AutocloseSkipsClearedDeadline(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	project, err := ts.ProjectService.Create(ts.ctx, "sweepable", "")
	require.NoError(t, err)

	task, err := ts.TaskService.Add(ts.ctx, project.ID, "was overdue", "", "2020-01-01")
	require.NoError(t, err)

	// Clearing the deadline takes the task out of the sweep's reach
	none := "none"
	_, err = ts.TaskService.Edit(ts.ctx, project.ID, task.ID, nil, nil, &none)
	require.NoError(t, err)

	closed, err := ts.TaskService.AutocloseOverdue(ts.ctx)
	require.NoError(t, err)
	assert.Zero(t, closed)

	unchanged, err := ts.TaskService.Get(ts.ctx, project.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, unchanged.Status)
}

func TestTaskService_AutocloseSkipsDoneTasks(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	project, err := ts.ProjectService.Create(ts.ctx, "sweepable", "")
	require.NoError(t, err)

	task, err := ts.TaskService.Add(ts.ctx, project.ID, "finished early", "", "2020-01-01")
	require.NoError(t, err)
	_, err = ts.TaskService.ChangeStatus(ts.ctx, project.ID, task.ID, "done")
	require.NoError(t, err)

	closed, err := ts.TaskService.AutocloseOverdue(ts.ctx)
	require.NoError(t, err)
	assert.Zero(t, closed)
}

func TestTaskService_Delete(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	project, err := ts.ProjectService.Create(ts.ctx, "board", "")
	require.NoError(t, err)
	task, err := ts.TaskService.Add(ts.ctx, project.ID, "removable", "", "")
	require.NoError(t, err)

	require.NoError(t, ts.TaskService.Delete(ts.ctx, project.ID, task.ID))

	_, err = ts.TaskService.Get(ts.ctx, project.ID, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, ts.TaskService.Delete(ts.ctx, project.ID, task.ID), ErrNotFound)
}

func TestTaskService_DeadlineBoundary(t *testing.T) {
	ts := NewTestSetup(t)
	defer ts.CleanUp()

	project, err := ts.ProjectService.Create(ts.ctx, "boundaries", "")
	require.NoError(t, err)

	// A task due today is not overdue: the deadline must be strictly
	// before the current date.
	today := time.Now().UTC().Format(models.DateLayout)
	_, err = ts.TaskService.Add(ts.ctx, project.ID, "due today", "", today)
	require.NoError(t, err)

	closed, err := ts.TaskService.AutocloseOverdue(ts.ctx)
	require.NoError(t, err)
	assert.Zero(t, closed)
}
