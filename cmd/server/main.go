package main

import (
	"fmt"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/pkarimi/taskboard/internal/api/middleware"
	"github.com/pkarimi/taskboard/internal/api/v1/handlers"
	v1 "github.com/pkarimi/taskboard/internal/api/v1/routes"
	"github.com/pkarimi/taskboard/internal/config"
	"github.com/pkarimi/taskboard/internal/db"
	"github.com/pkarimi/taskboard/internal/db/repos"
	"github.com/pkarimi/taskboard/internal/logger"
	"github.com/pkarimi/taskboard/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger.Initialize()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	database, err := db.New(cfg.DB)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Errorf("Failed to close database: %v", err)
		}
	}()

	projectRepo := repos.NewProjectRepository(database)
	taskRepo := repos.NewTaskRepository(database)

	projectService := services.NewProjectService(projectRepo, cfg.MaxProjects)
	taskService := services.NewTaskService(taskRepo, projectRepo, cfg.MaxTasksPerProject)

	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})
	app.Use(middleware.Logger())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	v1.Register(app, projectHandler, taskHandler)

	logger.Infof("Starting server on port %d", cfg.ServerPort)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.ServerPort)); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
