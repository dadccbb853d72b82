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

// pinCmd represents the pin command
var pinCmd = &cobra.Command{
	Use:   "pin [task-id]",
	Short: "Pin a task into today's stack",
	Long: `Pin a backlog task into today's stack. Pinned tasks are always included
ahead of the algorithm's suggestions, regardless of capacity or blocking.
Without an id, an interactive picker opens.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPin,
}

// unpinCmd represents the unpin command
var unpinCmd = &cobra.Command{
	Use:   "unpin [task-id]",
	Short: "Return a pinned task to the backlog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUnpin,
}

func init() {
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(unpinCmd)
}

func runPin(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	id, err := resolveTaskArg(taskStore, args, func(t models.Task) bool {
		return t.Status == models.StatusBacklog
	}, "Select a task to pin")
	if err != nil {
		return err
	}

	task, err := taskStore.PinTask(id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to pin task: %w", err)
	}
	if task.Status != models.StatusToday {
		return fmt.Errorf("task %s cannot be pinned from status %q", id, task.Status)
	}

	if isJSON() {
		return printJSON(task)
	}
	cmd.Printf("Pinned %q for today\n", task.Title)
	return nil
}

func runUnpin(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	id, err := resolveTaskArg(taskStore, args, func(t models.Task) bool {
		return t.Status == models.StatusToday
	}, "Select a task to unpin")
	if err != nil {
		return err
	}

	task, err := taskStore.UnpinTask(id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to unpin task: %w", err)
	}

	if isJSON() {
		return printJSON(task)
	}
	cmd.Printf("Unpinned %q\n", task.Title)
	return nil
}
