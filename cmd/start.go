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

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [task-id]",
	Short: "Start working on a task",
	Long: `Move a task to in-progress. In-progress tasks get a momentum bonus when
the daily stack is scored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	id, err := resolveTaskArg(taskStore, args, func(t models.Task) bool {
		switch t.Status {
		case models.StatusBacklog, models.StatusToday, models.StatusPending:
			return true
		}
		return false
	}, "Select a task to start")
	if err != nil {
		return err
	}

	task, err := taskStore.StartTask(id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to start task: %w", err)
	}

	if isJSON() {
		return printJSON(task)
	}
	cmd.Printf("Started %q\n", task.Title)
	return nil
}
