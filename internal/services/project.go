package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pkarimi/taskboard/internal/db/models"
	"github.com/pkarimi/taskboard/internal/db/repos"
)

// Word-count limits enforced on project and task fields.
const (
	maxNameWords        = 30
	maxDescriptionWords = 150
)

// Project handles project-related business rules
type Project struct {
	repo        *repos.ProjectRepository
	maxProjects int
}

// NewProjectService creates a new instance of the project service
func NewProjectService(repo *repos.ProjectRepository, maxProjects int) *Project {
	return &Project{
		repo:        repo,
		maxProjects: maxProjects,
	}
}

// Create validates and creates a new project
func (s *Project) Create(ctx context.Context, name, description string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validateName(name, "project name"); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: a project with the name %q already exists", ErrConflict, name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check project name: %w", err)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}
	if count >= int64(s.maxProjects) {
		return nil, fmt.Errorf("%w: cannot create more projects, the maximum of %d has been reached", ErrCapacity, s.maxProjects)
	}

	project := &models.Project{
		Name:        name,
		Description: description,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// Get retrieves a project by ID
func (s *Project) Get(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project with ID %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// Edit updates a project's name and/or description. Nil fields are left
// unchanged; provided fields are validated with the same rules as Create,
// including the uniqueness check against all other projects.
func (s *Project) Edit(ctx context.Context, id uint, newName, newDescription *string) (*models.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if newName != nil {
		name := strings.TrimSpace(*newName)
		if err := validateName(name, "project name"); err != nil {
			return nil, err
		}
		existing, err := s.repo.GetByName(ctx, name)
		if err == nil && existing.ID != id {
			return nil, fmt.Errorf("%w: another project with the name %q already exists", ErrConflict, name)
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check project name: %w", err)
		}
		project.Name = name
	}

	if newDescription != nil {
		description := strings.TrimSpace(*newDescription)
		if err := validateDescription(description); err != nil {
			return nil, err
		}
		project.Description = description
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// Delete removes a project and, transitively, all of its tasks
func (s *Project) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// List retrieves projects with pagination
func (s *Project) List(ctx context.Context, opts *models.ListOptions) ([]models.Project, error) {
	if opts != nil {
		opts.Normalize()
	}
	projects, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// validateName checks the mandatory-and-bounded rule shared by project
// names and task titles.
func validateName(name, field string) error {
	if name == "" {
		return fmt.Errorf("%w: %s is mandatory and cannot be empty", ErrValidation, field)
	}
	if wordCount(name) > maxNameWords {
		return fmt.Errorf("%w: %s cannot exceed %d words", ErrValidation, field, maxNameWords)
	}
	return nil
}

// validateDescription checks the optional description bound. Empty is fine.
func validateDescription(description string) error {
	if description != "" && wordCount(description) > maxDescriptionWords {
		return fmt.Errorf("%w: description cannot exceed %d words", ErrValidation, maxDescriptionWords)
	}
	return nil
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
