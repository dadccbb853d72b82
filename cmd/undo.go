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

// undoCmd represents the undo command
var undoCmd = &cobra.Command{
	Use:   "undo [task-id]",
	Short: "Revive a done or archived task",
	Long: `Revive a done or archived task back to the backlog. The completion
timestamp is cleared, so the task re-enters triage as if never finished.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUndo,
}

func init() {
	rootCmd.AddCommand(undoCmd)
}

func runUndo(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	id, err := resolveTaskArg(taskStore, args, func(t models.Task) bool {
		return t.Status == models.StatusDone || t.Status == models.StatusArchived
	}, "Select a task to revive")
	if err != nil {
		return err
	}

	task, err := taskStore.UndoTask(id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to undo task: %w", err)
	}

	if isJSON() {
		return printJSON(task)
	}
	cmd.Printf("Revived %q to backlog\n", task.Title)
	return nil
}
