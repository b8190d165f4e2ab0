// Scheduled job that closes overdue tasks. It runs the sweep immediately,
// then on a fixed interval until interrupted.
//
// How to run:
//
//	go run cmd/autoclose/main.go
//	SWEEP_INTERVAL=1m go run cmd/autoclose/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pkarimi/taskboard/internal/config"
	"github.com/pkarimi/taskboard/internal/db"
	"github.com/pkarimi/taskboard/internal/db/repos"
	"github.com/pkarimi/taskboard/internal/logger"
	"github.com/pkarimi/taskboard/internal/services"
)

func main() {
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

	taskRepo := repos.NewTaskRepository(database)
	projectRepo := repos.NewProjectRepository(database)
	taskService := services.NewTaskService(taskRepo, projectRepo, cfg.MaxTasksPerProject)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("Autoclose job started, sweeping every %s", cfg.SweepInterval)

	// First sweep right away, then on the ticker
	runSweep(ctx, taskService)

	ticker := time.NewTicker(cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Autoclose job received shutdown signal, stopping")
			return
		case <-ticker.C:
			runSweep(ctx, taskService)
		}
	}
}

// runSweep executes one sweep and logs the outcome. A failed run is logged
// and retried on the next tick; it never takes the process down.
func runSweep(ctx context.Context, taskService *services.Task) {
	closed, err := taskService.AutocloseOverdue(ctx)
	if err != nil {
		logger.Errorf("Sweep failed: %v", err)
		return
	}
	if closed > 0 {
		logger.Infof("Auto-closed %d overdue task(s)", closed)
	} else {
		logger.Info("No overdue tasks found to close")
	}
}
