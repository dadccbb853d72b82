/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daystacklabs/daystack/models"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as done",
	Long: `Mark a task as done, stamping its completion time. When the task is
the last open subtask of a parent, the parent completes as well.
Without an id, an interactive picker opens over open tasks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	id, err := resolveTaskArg(taskStore, args, func(t models.Task) bool {
		return !t.IsComplete()
	}, "Select a task to complete")
	if err != nil {
		return err
	}

	task, err := taskStore.MarkTaskDone(id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	if isJSON() {
		return printJSON(task)
	}
	cmd.Printf("Done: %q\n", task.Title)
	if isVerbose() && task.ParentID != nil {
		parent, perr := taskStore.GetTask(*task.ParentID)
		if perr == nil && parent.Status == models.StatusDone {
			cmd.Printf("Parent %q completed as well\n", parent.Title)
		}
	}
	return nil
}
