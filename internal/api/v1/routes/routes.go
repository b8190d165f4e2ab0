// Package routes configures the v1 API routes
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pkarimi/taskboard/internal/api/v1/handlers"
)

// SetupRoutes configures all the v1 routes
func SetupRoutes(router fiber.Router, projectHandler *handlers.ProjectHandler, taskHandler *handlers.TaskHandler) {
	projects := router.Group("/projects")
	projects.Post("/", projectHandler.CreateProject)
	projects.Get("/", projectHandler.ListProjects)
	projects.Get("/:id", projectHandler.GetProject)
	projects.Put("/:id", projectHandler.UpdateProject)
	projects.Delete("/:id", projectHandler.DeleteProject)

	tasks := projects.Group("/:id/tasks")
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/", taskHandler.ListTasks)
	tasks.Get("/:taskID", taskHandler.GetTask)
	tasks.Put("/:taskID", taskHandler.UpdateTask)
	tasks.Put("/:taskID/status", taskHandler.UpdateTaskStatus)
	tasks.Delete("/:taskID", taskHandler.DeleteTask)
}

// Register registers the v1 routes on the app
func Register(app *fiber.App, projectHandler *handlers.ProjectHandler, taskHandler *handlers.TaskHandler) {
	v1Group := app.Group("/api/v1")
	SetupRoutes(v1Group, projectHandler, taskHandler)
}
