/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daystacklabs/daystack/internal/ui"
	"github.com/daystacklabs/daystack/models"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [status]",
	Short: "List tasks",
	Long: `List tasks in a domain, optionally filtered to one status.

Statuses: backlog, today, in-progress, pending, done, archived

Examples:
  daystack list                # all active tasks
  daystack list backlog        # only backlog
  daystack list done --all     # include completed work`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

var (
	listDomain string
	listAll    bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listDomain, "domain", "life", "domain to list (life or work)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "include done and archived tasks")
}

func runList(cmd *cobra.Command, args []string) error {
	domain, err := parseDomain(listDomain)
	if err != nil {
		return err
	}

	var status models.TaskStatus
	if len(args) > 0 {
		status = models.TaskStatus(args[0])
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	tasks, err := taskStore.ListTasks(func(t models.Task) bool {
		if t.Domain != domain {
			return false
		}
		if status != "" {
			return t.Status == status
		}
		if !listAll && t.IsComplete() {
			return false
		}
		return true
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if isJSON() {
		return printJSON(tasks)
	}

	if len(tasks) == 0 {
		cmd.Println("No tasks found.")
		cmd.Println(`Add one with: daystack add "Your task here"`)
		return nil
	}

	table := &ui.Table{Headers: []string{"ID", "TITLE", "STATUS", "PRI", "EST", "DUE"}}
	for _, t := range tasks {
		est := "-"
		if t.EstimateMinutes != nil {
			est = fmt.Sprintf("%dm", *t.EstimateMinutes)
		}
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format(models.DateFormat)
		}
		table.Rows = append(table.Rows, []string{
			ui.TruncateID(t.ID), t.Title, string(t.Status), fmt.Sprintf("%d", t.Priority), est, due,
		})
	}
	cmd.Print(table.Render())
	return nil
}
