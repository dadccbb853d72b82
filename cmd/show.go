/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daystacklabs/daystack/internal/ui"
	"github.com/daystacklabs/daystack/models"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show the full details of a task",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	id, err := resolveTaskArg(taskStore, args, nil, "Select a task to show")
	if err != nil {
		return err
	}

	task, err := taskStore.GetTask(id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if isJSON() {
		return printJSON(task)
	}

	var b strings.Builder
	writeField := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%-14s %s\n", label+":", value)
		}
	}

	b.WriteString(ui.StyleSectionTitle.Render(task.Title) + "\n")
	writeField("ID", task.ID)
	writeField("Status", string(task.Status))
	writeField("Domain", string(task.Domain))
	writeField("Priority", fmt.Sprintf("%d", task.Priority))
	writeField("Description", task.Description)
	if task.CategoryID != "" {
		if category, cerr := taskStore.GetCategory(task.CategoryID); cerr == nil {
			writeField("Category", fmt.Sprintf("%s (%s)", category.Name, category.Kind))
		} else {
			writeField("Category", task.CategoryID)
		}
	}
	writeField("Due", formatTimePtr(task.DueDate))
	writeField("Soft deadline", formatTimePtr(task.SoftDeadline))
	writeField("Next action", formatTimePtr(task.NextActionAt))
	writeField("Completed", formatTimePtr(task.CompletedAt))
	if task.EstimateMinutes != nil {
		writeField("Estimate", fmt.Sprintf("%dm", *task.EstimateMinutes))
	}
	if task.MoneyImpact != nil {
		writeField("Money impact", fmt.Sprintf("%.2f", *task.MoneyImpact))
	}
	if len(task.BlockedBy) > 0 {
		writeField("Blocked by", strings.Join(task.BlockedBy, ", "))
	}
	if task.ParentID != nil {
		writeField("Parent", *task.ParentID)
	}
	if len(task.SubtaskIDs) > 0 {
		writeField("Subtasks", strings.Join(task.SubtaskIDs, ", "))
	}

	cmd.Print(b.String())
	return nil
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(models.DateFormat)
}
