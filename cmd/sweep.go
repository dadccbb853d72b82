/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Return due pending tasks to the backlog",
	Long: `Move every pending task whose follow-up time has elapsed back to the
backlog. The stack command runs this sweep automatically; sweep exists
for scripts and cron jobs.`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	moved, err := taskStore.SweepDuePending(time.Now())
	if err != nil {
		return fmt.Errorf("failed to sweep pending tasks: %w", err)
	}

	if isJSON() {
		return printJSON(map[string]int{"moved": moved})
	}
	cmd.Printf("%d task(s) returned to backlog\n", moved)
	return nil
}
