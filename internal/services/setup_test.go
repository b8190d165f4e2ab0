package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pkarimi/taskboard/internal/db/models"
	"github.com/pkarimi/taskboard/internal/db/repos"
)

// Test ceilings, kept small so capacity cases stay cheap to set up
const (
	testMaxProjects        = 3
	testMaxTasksPerProject = 2
)

// TestSetup sets up an in-memory database, repositories, and services for testing
type TestSetup struct {
	DB             *gorm.DB
	ProjectRepo    *repos.ProjectRepository
	TaskRepo       *repos.TaskRepository
	ProjectService *Project
	TaskService    *Task
	ctx            context.Context
}

// NewTestSetup creates a new test setup with in-memory database
func NewTestSetup(t *testing.T) *TestSetup {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to create in-memory database")

	// The shared-cache database can survive between tests, so reset it
	err = db.Migrator().DropTable(&models.Task{}, &models.Project{})
	require.NoError(t, err, "Failed to drop tables")

	err = db.AutoMigrate(&models.Project{}, &models.Task{})
	require.NoError(t, err, "Failed to run migrations")

	projectRepo := repos.NewProjectRepository(db)
	taskRepo := repos.NewTaskRepository(db)

	return &TestSetup{
		DB:             db,
		ProjectRepo:    projectRepo,
		TaskRepo:       taskRepo,
		ProjectService: NewProjectService(projectRepo, testMaxProjects),
		TaskService:    NewTaskService(taskRepo, projectRepo, testMaxTasksPerProject),
		ctx:            context.Background(),
	}
}

// CleanUp cleans up resources after test
func (ts *TestSetup) CleanUp() {
	sqlDB, err := ts.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// repeatWords builds a string of n space-separated words
func repeatWords(n int) string {
	words := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		if i > 0 {
			words = append(words, ' ')
		}
		words = append(words, 'w')
	}
	return string(words)
}
