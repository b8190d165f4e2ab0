package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkarimi/taskboard/internal/db/models"
)

func init() {
	projectsCmd.AddCommand(createProjectCmd)
	projectsCmd.AddCommand(listProjectsCmd)
	projectsCmd.AddCommand(getProjectCmd)
	projectsCmd.AddCommand(editProjectCmd)
	projectsCmd.AddCommand(deleteProjectCmd)

	createProjectCmd.Flags().StringP(flagName, "n", "", "Project name")
	createProjectCmd.Flags().StringP(flagDescription, "d", "", "Project description")
	if err := createProjectCmd.MarkFlagRequired(flagName); err != nil {
		panic(fmt.Errorf("failed to mark name flag as required for create project command: %w", err))
	}

	listProjectsCmd.Flags().Int(flagSkip, 0, "Number of projects to skip")
	listProjectsCmd.Flags().Int(flagLimit, models.DefaultLimit, "Maximum number of projects to return")

	editProjectCmd.Flags().StringP(flagName, "n", "", "New project name")
	editProjectCmd.Flags().StringP(flagDescription, "d", "", "New project description")
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var createProjectCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return fmt.Errorf("error getting name flag: %w", err)
		}
		description, err := cmd.Flags().GetString(flagDescription)
		if err != nil {
			return fmt.Errorf("error getting description flag: %w", err)
		}

		project, err := projectService.Create(context.Background(), name, description)
		if err != nil {
			return fmt.Errorf("error creating project: %w", err)
		}

		fmt.Printf("Project %q created with ID %d\n", project.Name, project.ID)
		return nil
	},
}

var listProjectsCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, _ []string) error {
		skip, err := cmd.Flags().GetInt(flagSkip)
		if err != nil {
			return fmt.Errorf("error getting skip flag: %w", err)
		}
		limit, err := cmd.Flags().GetInt(flagLimit)
		if err != nil {
			return fmt.Errorf("error getting limit flag: %w", err)
		}

		projects, err := projectService.List(context.Background(), &models.ListOptions{Offset: skip, Limit: limit})
		if err != nil {
			return fmt.Errorf("error listing projects: %w", err)
		}

		return printJSON(projects)
	},
}

var getProjectCmd = &cobra.Command{
	Use:   "get <project-id>",
	Short: "Show a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0], "project-id")
		if err != nil {
			return err
		}

		project, err := projectService.Get(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error getting project: %w", err)
		}

		return printJSON(project)
	},
}

var editProjectCmd = &cobra.Command{
	Use:   "edit <project-id>",
	Short: "Edit a project's name and/or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "project-id")
		if err != nil {
			return err
		}

		name, err := stringFlagIfSet(cmd, flagName)
		if err != nil {
			return err
		}
		description, err := stringFlagIfSet(cmd, flagDescription)
		if err != nil {
			return err
		}
		if name == nil && description == nil {
			return fmt.Errorf("nothing to edit: provide --%s and/or --%s", flagName, flagDescription)
		}

		project, err := projectService.Edit(context.Background(), id, name, description)
		if err != nil {
			return fmt.Errorf("error editing project: %w", err)
		}

		fmt.Printf("Project %q (ID %d) updated\n", project.Name, project.ID)
		return nil
	},
}

var deleteProjectCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project and all of its tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0], "project-id")
		if err != nil {
			return err
		}

		if err := projectService.Delete(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting project: %w", err)
		}

		fmt.Printf("Project with ID %d deleted\n", id)
		return nil
	},
}

// printJSON pretty prints a value for CLI output
func printJSON(v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Println(string(prettyJSON))
	return nil
}
