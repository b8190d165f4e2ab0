package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Close all overdue tasks across every project",
	RunE: func(_ *cobra.Command, _ []string) error {
		closed, err := taskService.AutocloseOverdue(context.Background())
		if err != nil {
			return fmt.Errorf("error closing overdue tasks: %w", err)
		}

		if closed > 0 {
			fmt.Printf("Auto-closed %d overdue task(s)\n", closed)
		} else {
			fmt.Println("No overdue tasks found to close")
		}
		return nil
	},
}
