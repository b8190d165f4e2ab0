package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/pkarimi/taskboard/internal/db/models"
	"github.com/pkarimi/taskboard/internal/services"
)

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	projectService *services.Project
}

// NewProjectHandler creates a new instance of ProjectHandler
func NewProjectHandler(projectService *services.Project) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject handles creating a new project
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req ProjectCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	project, err := h.projectService.Create(c.Context(), req.Name, req.Description)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(Success(project))
}

// ListProjects handles retrieving all projects with pagination
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	opts := &models.ListOptions{
		Offset: c.QueryInt("skip", 0),
		Limit:  c.QueryInt("limit", models.DefaultLimit),
	}

	projects, err := h.projectService.List(c.Context(), opts)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(Success(projects))
}

// GetProject handles retrieving a project by ID
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	project, err := h.projectService.Get(c.Context(), id)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(Success(project))
}

// UpdateProject handles editing a project's name and/or description
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	var req ProjectUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	project, err := h.projectService.Edit(c.Context(), id, req.Name, req.Description)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(Success(project))
}

// DeleteProject handles deleting a project and all of its tasks
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	if err := h.projectService.Delete(c.Context(), id); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
