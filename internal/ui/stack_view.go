package ui

import (
	"fmt"
	"strings"

	"github.com/daystacklabs/daystack/internal/stack"
	"github.com/daystacklabs/daystack/models"
)

// RenderStack renders the daily stack's two tiers for the terminal.
func RenderStack(split stack.Split, kinds map[string]models.CategoryKind, availableMinutes int) string {
	var sb strings.Builder

	sb.WriteString(StyleSectionTitle.Render("Today's stack"))
	sb.WriteString(StyleSubtle.Render(fmt.Sprintf("  (%d min available)", availableMinutes)))
	sb.WriteString("\n\n")

	if len(split.Pinned) == 0 && len(split.Suggested) == 0 {
		sb.WriteString(StyleSubtle.Render("Nothing actionable. Add a task or unpark a waiting one.") + "\n")
		return sb.String()
	}

	if len(split.Pinned) > 0 {
		sb.WriteString(StylePin.Render("Pinned") + "\n")
		sb.WriteString(taskTable(split.Pinned, kinds))
		sb.WriteString("\n")
	}
	if len(split.Suggested) > 0 {
		sb.WriteString(StylePrimary.Render("Suggested") + "\n")
		sb.WriteString(taskTable(split.Suggested, kinds))
	}
	return sb.String()
}

// RenderWaiting renders waiting tasks ordered by their next action date.
func RenderWaiting(tasks []models.Task) string {
	if len(tasks) == 0 {
		return StyleSubtle.Render("No waiting tasks.") + "\n"
	}
	table := &Table{Headers: []string{"ID", "TITLE", "NEXT ACTION"}}
	for _, t := range tasks {
		next := "-"
		if t.NextActionAt != nil {
			next = t.NextActionAt.Format("2006-01-02 15:04")
		}
		table.Rows = append(table.Rows, []string{TruncateID(t.ID), t.Title, next})
	}
	return table.Render()
}

func taskTable(tasks []models.Task, kinds map[string]models.CategoryKind) string {
	table := &Table{Headers: []string{"ID", "TITLE", "KIND", "EST", "DUE"}}
	for _, t := range tasks {
		est := "-"
		if t.EstimateMinutes != nil {
			est = fmt.Sprintf("%dm", *t.EstimateMinutes)
		}
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		kind := string(kinds[t.CategoryID])
		if kind == "" {
			kind = "-"
		}
		table.Rows = append(table.Rows, []string{TruncateID(t.ID), t.Title, kind, est, due})
	}
	return table.Render()
}
