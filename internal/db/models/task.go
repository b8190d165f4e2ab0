package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// TaskStatusField is the column name for task status, used by bulk updates.
const TaskStatusField = "status"

// TaskStatus represents the current state of a task
type TaskStatus string

// Task status constants. The lowercase spelling is canonical at every
// boundary, including the HTTP and CLI surfaces.
const (
	// TaskStatusTodo indicates the task has not been started
	TaskStatusTodo TaskStatus = "todo"
	// TaskStatusDoing indicates the task is in progress
	TaskStatusDoing TaskStatus = "doing"
	// TaskStatusDone indicates the task is finished
	TaskStatusDone TaskStatus = "done"
)

// Task is a titled unit of work belonging to exactly one project.
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ProjectID   uint       `json:"project_id" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	Status      TaskStatus `json:"status" gorm:"not null;index"`
	Deadline    *time.Time `json:"-"`
	CreatedAt   time.Time  `json:"created_at" gorm:"index"`
}

// String returns the string representation of the task status
func (s TaskStatus) String() string {
	return string(s)
}

// ParseTaskStatus converts a string to a TaskStatus. Matching is
// case-insensitive; the returned value is always the canonical lowercase form.
func ParseTaskStatus(str string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case string(TaskStatusTodo):
		return TaskStatusTodo, nil
	case string(TaskStatusDoing):
		return TaskStatusDoing, nil
	case string(TaskStatusDone):
		return TaskStatusDone, nil
	default:
		return "", fmt.Errorf("invalid task status: %q (use 'todo', 'doing', or 'done')", str)
	}
}

// UnmarshalJSON implements json.Unmarshaler for TaskStatus
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	status, err := ParseTaskStatus(str)
	if err != nil {
		return err
	}

	*s = status
	return nil
}

// MarshalJSON implements json.Marshaler for Task so that the deadline is
// rendered as a plain calendar date under the due_date key, or null.
func (t Task) MarshalJSON() ([]byte, error) {
	type Alias Task // avoid infinite recursion
	var due *string
	if t.Deadline != nil {
		d := t.Deadline.Format(DateLayout)
		due = &d
	}
	return json.Marshal(struct {
		Alias
		DueDate *string `json:"due_date"`
	}{
		Alias:   Alias(t),
		DueDate: due,
	})
}

// Validate ensures that the task data is valid
func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if t.ProjectID == 0 {
		return fmt.Errorf("task must belong to a project")
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new task
func (t *Task) BeforeCreate(_ *gorm.DB) error {
	if t.Status == "" {
		t.Status = TaskStatusTodo
	}
	return t.Validate()
}
