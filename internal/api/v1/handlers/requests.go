package handlers

import (
	"fmt"

	"github.com/pkarimi/taskboard/internal/db/models"
)

// Character bounds checked at the transport boundary. The service layer
// applies its own word-count rules on top of these.
const (
	minNameChars        = 3
	maxNameChars        = 50
	maxDescriptionChars = 200
	minTitleChars       = 3
	maxTitleChars       = 100
)

// ProjectCreateRequest is the payload for creating a project
type ProjectCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate validates the project create request
func (r *ProjectCreateRequest) Validate() error {
	if len(r.Name) < minNameChars || len(r.Name) > maxNameChars {
		return fmt.Errorf("name must be between %d and %d characters", minNameChars, maxNameChars)
	}
	if len(r.Description) > maxDescriptionChars {
		return fmt.Errorf("description cannot exceed %d characters", maxDescriptionChars)
	}
	return nil
}

// ProjectUpdateRequest is the payload for updating a project. Absent fields
// are left unchanged.
type ProjectUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Validate validates the project update request
func (r *ProjectUpdateRequest) Validate() error {
	if r.Name != nil && (len(*r.Name) < minNameChars || len(*r.Name) > maxNameChars) {
		return fmt.Errorf("name must be between %d and %d characters", minNameChars, maxNameChars)
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionChars {
		return fmt.Errorf("description cannot exceed %d characters", maxDescriptionChars)
	}
	return nil
}

// TaskCreateRequest is the payload for adding a task to a project
type TaskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

// Validate validates the task create request
func (r *TaskCreateRequest) Validate() error {
	if len(r.Title) < minTitleChars || len(r.Title) > maxTitleChars {
		return fmt.Errorf("title must be between %d and %d characters", minTitleChars, maxTitleChars)
	}
	if len(r.Description) > maxDescriptionChars {
		return fmt.Errorf("description cannot exceed %d characters", maxDescriptionChars)
	}
	return nil
}

// TaskUpdateRequest is the payload for editing a task. Absent fields are
// left unchanged; a due_date of "none" clears the deadline.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
}

// Validate validates the task update request
func (r *TaskUpdateRequest) Validate() error {
	if r.Title != nil && (len(*r.Title) < minTitleChars || len(*r.Title) > maxTitleChars) {
		return fmt.Errorf("title must be between %d and %d characters", minTitleChars, maxTitleChars)
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionChars {
		return fmt.Errorf("description cannot exceed %d characters", maxDescriptionChars)
	}
	return nil
}

// TaskStatusRequest is the payload for changing a task's status
type TaskStatusRequest struct {
	Status string `json:"status"`
}

// Validate validates the status request against the canonical enum
func (r *TaskStatusRequest) Validate() error {
	if _, err := models.ParseTaskStatus(r.Status); err != nil {
		return err
	}
	return nil
}
