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

var (
	deferUntil string
	deferFor   time.Duration
)

// deferCmd represents the defer command
var deferCmd = &cobra.Command{
	Use:   "defer [task-id]",
	Short: "Park a task until a future date",
	Long: `Park a task as pending until a follow-up time. Pending tasks are out of
triage until their follow-up time elapses; a sweep then returns them to
the backlog. Use --until for a calendar date or --for for a duration.`,
	Example: `  daystack defer 3f2a --until 2026-09-15
  daystack defer 3f2a --for 72h`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDefer,
}

func init() {
	rootCmd.AddCommand(deferCmd)
	deferCmd.Flags().StringVar(&deferUntil, "until", "", "date to resurface the task (YYYY-MM-DD)")
	deferCmd.Flags().DurationVar(&deferFor, "for", 0, "duration to park the task for (e.g. 48h)")
}

func runDefer(cmd *cobra.Command, args []string) error {
	now := time.Now()

	var nextActionAt time.Time
	switch {
	case deferUntil != "":
		d, err := parseDate(deferUntil)
		if err != nil {
			return fmt.Errorf("invalid --until date %q: %w", deferUntil, err)
		}
		nextActionAt = d
	case deferFor > 0:
		nextActionAt = now.Add(deferFor)
	default:
		return fmt.Errorf("defer requires --until or --for")
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	id, err := resolveTaskArg(taskStore, args, func(t models.Task) bool {
		return !t.IsComplete() && t.Status != models.StatusArchived
	}, "Select a task to defer")
	if err != nil {
		return err
	}

	task, err := taskStore.DeferTask(id, nextActionAt, now)
	if err != nil {
		return fmt.Errorf("failed to defer task: %w", err)
	}

	if isJSON() {
		return printJSON(task)
	}
	cmd.Printf("Deferred %q until %s\n", task.Title, nextActionAt.Format(models.DateFormat))
	return nil
}
