package handlers

import (
	fiber "github.com/gofiber/fiber/v2"

	"github.com/pkarimi/taskboard/internal/db/models"
	"github.com/pkarimi/taskboard/internal/services"
)

// TaskHandler handles HTTP requests for tasks
type TaskHandler struct {
	taskService *services.Task
}

// NewTaskHandler creates a new instance of TaskHandler
func NewTaskHandler(taskService *services.Task) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask handles adding a task to a project
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	var req TaskCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	task, err := h.taskService.Add(c.Context(), projectID, req.Title, req.Description, req.DueDate)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(Success(task))
}

// ListTasks handles retrieving all tasks of a project with pagination
func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	opts := &models.ListOptions{
		Offset: c.QueryInt("skip", 0),
		Limit:  c.QueryInt("limit", models.DefaultLimit),
	}

	tasks, err := h.taskService.ListByProject(c.Context(), projectID, opts)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(Success(tasks))
}

// GetTask handles retrieving a task by ID within a project
func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	projectID, taskID, err := taskParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	task, err := h.taskService.Get(c.Context(), projectID, taskID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(Success(task))
}

// UpdateTask handles editing a task's title, description, and/or deadline
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	projectID, taskID, err := taskParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	var req TaskUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	task, err := h.taskService.Edit(c.Context(), projectID, taskID, req.Title, req.Description, req.DueDate)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(Success(task))
}

// UpdateTaskStatus handles changing a task's status
func (h *TaskHandler) UpdateTaskStatus(c *fiber.Ctx) error {
	projectID, taskID, err := taskParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	var req TaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	task, err := h.taskService.ChangeStatus(c.Context(), projectID, taskID, req.Status)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(Success(task))
}

// DeleteTask handles deleting a task within a project
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	projectID, taskID, err := taskParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	if err := h.taskService.Delete(c.Context(), projectID, taskID); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func taskParams(c *fiber.Ctx) (projectID, taskID uint, err error) {
	projectID, err = parseIDParam(c, "id")
	if err != nil {
		return 0, 0, err
	}
	taskID, err = parseIDParam(c, "taskID")
	if err != nil {
		return 0, 0, err
	}
	return projectID, taskID, nil
}
