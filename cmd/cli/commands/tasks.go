package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pkarimi/taskboard/internal/db/models"
)

func init() {
	tasksCmd.AddCommand(addTaskCmd)
	tasksCmd.AddCommand(listTasksCmd)
	tasksCmd.AddCommand(getTaskCmd)
	tasksCmd.AddCommand(setTaskStatusCmd)
	tasksCmd.AddCommand(editTaskCmd)
	tasksCmd.AddCommand(deleteTaskCmd)

	tasksCmd.PersistentFlags().UintP(flagProjectID, "p", 0, "ID of the project the task belongs to")
	if err := tasksCmd.MarkPersistentFlagRequired(flagProjectID); err != nil {
		panic(fmt.Errorf("failed to mark project-id flag as required for tasks command: %w", err))
	}

	addTaskCmd.Flags().StringP(flagTitle, "t", "", "Task title")
	addTaskCmd.Flags().StringP(flagDescription, "d", "", "Task description")
	addTaskCmd.Flags().String(flagDueDate, "", "Task deadline (YYYY-MM-DD)")
	if err := addTaskCmd.MarkFlagRequired(flagTitle); err != nil {
		panic(fmt.Errorf("failed to mark title flag as required for add task command: %w", err))
	}

	listTasksCmd.Flags().Int(flagSkip, 0, "Number of tasks to skip")
	listTasksCmd.Flags().Int(flagLimit, models.DefaultLimit, "Maximum number of tasks to return")

	setTaskStatusCmd.Flags().StringP(flagStatus, "s", "", "New status: todo, doing, or done")
	if err := setTaskStatusCmd.MarkFlagRequired(flagStatus); err != nil {
		panic(fmt.Errorf("failed to mark status flag as required for set-status command: %w", err))
	}

	editTaskCmd.Flags().StringP(flagTitle, "t", "", "New task title")
	editTaskCmd.Flags().StringP(flagDescription, "d", "", "New task description")
	editTaskCmd.Flags().String(flagDueDate, "", `New deadline (YYYY-MM-DD), or "none" to clear it`)
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks within a project",
}

var addTaskCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task to a project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, err := getProjectID(cmd)
		if err != nil {
			return err
		}
		title, err := cmd.Flags().GetString(flagTitle)
		if err != nil {
			return fmt.Errorf("error getting title flag: %w", err)
		}
		description, err := cmd.Flags().GetString(flagDescription)
		if err != nil {
			return fmt.Errorf("error getting description flag: %w", err)
		}
		dueDate, err := cmd.Flags().GetString(flagDueDate)
		if err != nil {
			return fmt.Errorf("error getting due-date flag: %w", err)
		}

		task, err := taskService.Add(context.Background(), projectID, title, description, dueDate)
		if err != nil {
			return fmt.Errorf("error adding task: %w", err)
		}

		fmt.Printf("Task %q created with ID %d in project %d\n", task.Title, task.ID, task.ProjectID)
		return nil
	},
}

var listTasksCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tasks of a project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectID, err := getProjectID(cmd)
		if err != nil {
			return err
		}
		skip, err := cmd.Flags().GetInt(flagSkip)
		if err != nil {
			return fmt.Errorf("error getting skip flag: %w", err)
		}
		limit, err := cmd.Flags().GetInt(flagLimit)
		if err != nil {
			return fmt.Errorf("error getting limit flag: %w", err)
		}

		tasks, err := taskService.ListByProject(context.Background(), projectID, &models.ListOptions{Offset: skip, Limit: limit})
		if err != nil {
			return fmt.Errorf("error listing tasks: %w", err)
		}

		return printJSON(tasks)
	},
}

var getTaskCmd = &cobra.Command{
	Use:   "get <task-id>",
	Short: "Show a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, taskID, err := taskArgs(cmd, args)
		if err != nil {
			return err
		}

		task, err := taskService.Get(context.Background(), projectID, taskID)
		if err != nil {
			return fmt.Errorf("error getting task: %w", err)
		}

		return printJSON(task)
	},
}

var setTaskStatusCmd = &cobra.Command{
	Use:   "set-status <task-id>",
	Short: "Change a task's status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, taskID, err := taskArgs(cmd, args)
		if err != nil {
			return err
		}
		status, err := cmd.Flags().GetString(flagStatus)
		if err != nil {
			return fmt.Errorf("error getting status flag: %w", err)
		}

		task, err := taskService.ChangeStatus(context.Background(), projectID, taskID, status)
		if err != nil {
			return fmt.Errorf("error changing task status: %w", err)
		}

		fmt.Printf("Task %q (ID %d) is now %s\n", task.Title, task.ID, task.Status)
		return nil
	},
}

var editTaskCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit a task's title, description, and/or deadline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, taskID, err := taskArgs(cmd, args)
		if err != nil {
			return err
		}

		title, err := stringFlagIfSet(cmd, flagTitle)
		if err != nil {
			return err
		}
		description, err := stringFlagIfSet(cmd, flagDescription)
		if err != nil {
			return err
		}
		dueDate, err := stringFlagIfSet(cmd, flagDueDate)
		if err != nil {
			return err
		}
		if title == nil && description == nil && dueDate == nil {
			return fmt.Errorf("nothing to edit: provide --%s, --%s, and/or --%s", flagTitle, flagDescription, flagDueDate)
		}

		task, err := taskService.Edit(context.Background(), projectID, taskID, title, description, dueDate)
		if err != nil {
			return fmt.Errorf("error editing task: %w", err)
		}

		fmt.Printf("Task %q (ID %d) updated\n", task.Title, task.ID)
		return nil
	},
}

var deleteTaskCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, taskID, err := taskArgs(cmd, args)
		if err != nil {
			return err
		}

		if err := taskService.Delete(context.Background(), projectID, taskID); err != nil {
			return fmt.Errorf("error deleting task: %w", err)
		}

		fmt.Printf("Task with ID %d deleted from project %d\n", taskID, projectID)
		return nil
	},
}

func getProjectID(cmd *cobra.Command) (uint, error) {
	projectID, err := cmd.Flags().GetUint(flagProjectID)
	if err != nil {
		return 0, fmt.Errorf("error getting project-id flag: %w", err)
	}
	if projectID == 0 {
		return 0, fmt.Errorf("project-id must be a positive integer")
	}
	return projectID, nil
}

func taskArgs(cmd *cobra.Command, args []string) (projectID, taskID uint, err error) {
	projectID, err = getProjectID(cmd)
	if err != nil {
		return 0, 0, err
	}
	taskID, err = parseID(args[0], "task-id")
	if err != nil {
		return 0, 0, err
	}
	return projectID, taskID, nil
}

// parseID parses a positive integer ID argument
func parseID(value, name string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, value)
	}
	return uint(id), nil
}
