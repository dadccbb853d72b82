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

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive [task-id]",
	Short: "Archive a task, keeping it out of every view",
	Long: `Archive a task. Archived tasks leave every listing and the stack but
stay in the data file; a done task keeps its completion timestamp.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runArchive,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	id, err := resolveTaskArg(taskStore, args, func(t models.Task) bool {
		return t.Status != models.StatusArchived
	}, "Select a task to archive")
	if err != nil {
		return err
	}

	task, err := taskStore.ArchiveTask(id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to archive task: %w", err)
	}

	if isJSON() {
		return printJSON(task)
	}
	cmd.Printf("Archived %q\n", task.Title)
	return nil
}
