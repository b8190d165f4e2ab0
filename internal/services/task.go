package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/pkarimi/taskboard/internal/db/models"
	"github.com/pkarimi/taskboard/internal/db/repos"
)

// DeadlineNone is the literal edit value that clears a task's deadline.
const DeadlineNone = "none"

// Task handles task-related business rules
type Task struct {
	repo          *repos.TaskRepository
	projectRepo   *repos.ProjectRepository
	maxPerProject int
}

// NewTaskService creates a new instance of the task service
func NewTaskService(repo *repos.TaskRepository, projectRepo *repos.ProjectRepository, maxPerProject int) *Task {
	return &Task{
		repo:          repo,
		projectRepo:   projectRepo,
		maxPerProject: maxPerProject,
	}
}

// Add validates and creates a new task under the given project. The deadline
// is an optional calendar date in YYYY-MM-DD form; empty means no deadline.
func (s *Task) Add(ctx context.Context, projectID uint, title, description, deadline string) (*models.Task, error) {
	project, err := s.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	if count >= int64(s.maxPerProject) {
		return nil, fmt.Errorf("%w: cannot add more tasks, project %q has reached the limit of %d", ErrCapacity, project.Name, s.maxPerProject)
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := validateName(title, "task title"); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	var due *time.Time
	if deadline != "" {
		parsed, err := parseDeadline(deadline)
		if err != nil {
			return nil, err
		}
		due = parsed
	}

	task := &models.Task{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      models.TaskStatusTodo,
		Deadline:    due,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Get retrieves a task by ID, scoped to the given project. A valid task ID
// under a different project is reported as not found.
func (s *Task) Get(ctx context.Context, projectID, taskID uint) (*models.Task, error) {
	task, err := s.repo.GetInProject(ctx, projectID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task with ID %d in project %d", ErrNotFound, taskID, projectID)
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ChangeStatus sets a task's status to one of todo, doing, or done
// (case-insensitive input, canonical lowercase stored).
func (s *Task) ChangeStatus(ctx context.Context, projectID, taskID uint, status string) (*models.Task, error) {
	parsed, err := models.ParseTaskStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	task, err := s.Get(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = parsed
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return task, nil
}

// Edit updates a task's title, description, and/or deadline. Nil fields are
// left unchanged. A deadline of the literal string "none" clears it; any
// other value must parse as a YYYY-MM-DD date.
func (s *Task) Edit(ctx context.Context, projectID, taskID uint, newTitle, newDescription, newDeadline *string) (*models.Task, error) {
	task, err := s.Get(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	if newTitle != nil {
		title := strings.TrimSpace(*newTitle)
		if err := validateName(title, "task title"); err != nil {
			return nil, err
		}
		task.Title = title
	}

	if newDescription != nil {
		description := strings.TrimSpace(*newDescription)
		if err := validateDescription(description); err != nil {
			return nil, err
		}
		task.Description = description
	}

	if newDeadline != nil {
		if strings.EqualFold(strings.TrimSpace(*newDeadline), DeadlineNone) {
			task.Deadline = nil
		} else {
			parsed, err := parseDeadline(*newDeadline)
			if err != nil {
				return nil, err
			}
			task.Deadline = parsed
		}
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Delete removes a task, scoped to the given project
func (s *Task) Delete(ctx context.Context, projectID, taskID uint) error {
	if _, err := s.Get(ctx, projectID, taskID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, projectID, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ListByProject retrieves the tasks of a project with pagination
func (s *Task) ListByProject(ctx context.Context, projectID uint, opts *models.ListOptions) ([]models.Task, error) {
	if _, err := s.getProject(ctx, projectID); err != nil {
		return nil, err
	}
	if opts != nil {
		opts.Normalize()
	}
	tasks, err := s.repo.ListByProject(ctx, projectID, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// AutocloseOverdue marks every task whose deadline has passed and whose
// status is not done as done, across all projects, and returns the number
// of tasks closed. Running it again immediately closes nothing.
func (s *Task) AutocloseOverdue(ctx context.Context) (int, error) {
	// Deadlines are parsed as UTC midnights, so the cutoff is derived the
	// same way to keep the strictly-before comparison exact.
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	closed, err := s.repo.CloseOverdue(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to close overdue tasks: %w", err)
	}
	return int(closed), nil
}

func (s *Task) getProject(ctx context.Context, projectID uint) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project with ID %d", ErrNotFound, projectID)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// parseDeadline parses a YYYY-MM-DD calendar date.
func parseDeadline(value string) (*time.Time, error) {
	parsed, err := time.Parse(models.DateLayout, strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid deadline format %q, use YYYY-MM-DD", ErrValidation, value)
	}
	return &parsed, nil
}
