// Package commands implements the taskboard CLI command tree
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pkarimi/taskboard/internal/config"
	"github.com/pkarimi/taskboard/internal/db"
	"github.com/pkarimi/taskboard/internal/db/repos"
	"github.com/pkarimi/taskboard/internal/services"
)

// Shared flag names
const (
	flagName        = "name"
	flagTitle       = "title"
	flagDescription = "description"
	flagDueDate     = "due-date"
	flagStatus      = "status"
	flagProjectID   = "project-id"
	flagSkip        = "skip"
	flagLimit       = "limit"
)

var (
	database       *gorm.DB
	projectService *services.Project
	taskService    *services.Task
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "taskboard",
	Short: "Taskboard CLI - manage projects and their tasks",
	Long: `Taskboard CLI is a command line tool for managing projects and tasks:
create and edit projects, attach tasks, move them through todo/doing/done,
and sweep overdue tasks closed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		var err error
		database, err = db.New(cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		projectRepo := repos.NewProjectRepository(database)
		taskRepo := repos.NewTaskRepository(database)
		projectService = services.NewProjectService(projectRepo, cfg.MaxProjects)
		taskService = services.NewTaskService(taskRepo, projectRepo, cfg.MaxTasksPerProject)
		return nil
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if database == nil {
			return nil
		}
		return db.Close(database)
	},
}

func init() {
	RootCmd.AddCommand(projectsCmd)
	RootCmd.AddCommand(tasksCmd)
	RootCmd.AddCommand(sweepCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// stringFlagIfSet returns a pointer to the flag's value when the user
// provided it, and nil otherwise. Edit commands use this to distinguish
// "leave unchanged" from "set to empty".
func stringFlagIfSet(cmd *cobra.Command, name string) (*string, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("error getting %s flag: %w", name, err)
	}
	return &value, nil
}
