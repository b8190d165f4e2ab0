package repos

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pkarimi/taskboard/internal/db/models"
)

// DBRepositoryTestSuite provides a base test suite for repository tests
type DBRepositoryTestSuite struct {
	suite.Suite
	db          *gorm.DB
	ctx         context.Context
	projectRepo *ProjectRepository
	taskRepo    *TaskRepository

	nameSeq int
}

func (s *DBRepositoryTestSuite) SetupTest() {
	// Create new in-memory database
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	// The shared-cache database can survive between tests, so reset it
	err = db.Migrator().DropTable(&models.Task{}, &models.Project{})
	require.NoError(s.T(), err, "Failed to drop tables")

	err = db.AutoMigrate(&models.Project{}, &models.Task{})
	require.NoError(s.T(), err, "Failed to run database migrations")

	s.db = db
	s.ctx = context.Background()
	s.projectRepo = NewProjectRepository(db)
	s.taskRepo = NewTaskRepository(db)
}

func (s *DBRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// uniqueName generates a project name unique within a test run
func (s *DBRepositoryTestSuite) uniqueName(prefix string) string {
	s.nameSeq++
	return fmt.Sprintf("%s-%d", prefix, s.nameSeq)
}

// createTestProject persists a project with a unique name
func (s *DBRepositoryTestSuite) createTestProject() *models.Project {
	project := &models.Project{
		Name:        s.uniqueName("test-project"),
		Description: "a project for testing",
	}
	s.Require().NoError(s.projectRepo.Create(s.ctx, project))
	return project
}

// createTestTask persists a task under the given project
func (s *DBRepositoryTestSuite) createTestTask(projectID uint, deadline *time.Time) *models.Task {
	task := &models.Task{
		ProjectID: projectID,
		Title:     s.uniqueName("test-task"),
		Deadline:  deadline,
	}
	s.Require().NoError(s.taskRepo.Create(s.ctx, task))
	return task
}

// datePtr builds a midnight timestamp for the given calendar date
func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
