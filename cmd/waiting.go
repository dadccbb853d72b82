/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daystacklabs/daystack/internal/stack"
	"github.com/daystacklabs/daystack/internal/ui"
)

var waitingDomain string

// waitingCmd represents the waiting command
var waitingCmd = &cobra.Command{
	Use:   "waiting",
	Short: "List tasks parked until a future date",
	Long: `List pending tasks whose follow-up time has not elapsed yet, ordered by
when they resurface.`,
	RunE: runWaiting,
}

func init() {
	rootCmd.AddCommand(waitingCmd)
	waitingCmd.Flags().StringVarP(&waitingDomain, "domain", "d", "", "domain to list (life or work)")
}

func runWaiting(cmd *cobra.Command, args []string) error {
	domain, err := parseDomain(waitingDomain)
	if err != nil {
		return err
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	tasks, err := taskStore.ListTasks(nil, nil)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	waiting := stack.WaitingTasks(tasks, domain, time.Now())

	if isJSON() {
		return printJSON(waiting)
	}
	cmd.Print(ui.RenderWaiting(waiting))
	return nil
}
