/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daystacklabs/daystack/models"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task to the backlog",
	Long: `Add a task to the backlog. New tasks start unpinned; use "daystack pin"
to force one into today's stack, or let the stack builder pick it up.

Examples:
  daystack add "File the insurance appeal" --category legal --due 2026-09-04 --estimate 45
  daystack add "Change furnace filter" --domain life --estimate 10
  daystack add "Chase the reimbursement" --money 240`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDomain   string
	addCategory string
	addPriority int
	addDue      string
	addSoftDue  string
	addEstimate int
	addMoney    float64
	addParent   string
	addBlockedBy []string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDomain, "domain", "life", "domain the task belongs to (life or work)")
	addCmd.Flags().StringVar(&addCategory, "category", "", "category id or name")
	addCmd.Flags().IntVar(&addPriority, "priority", 3, "priority 1-4, 1 is highest")
	addCmd.Flags().StringVar(&addDue, "due", "", "hard deadline (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addSoftDue, "soft-due", "", "soft deadline (YYYY-MM-DD)")
	addCmd.Flags().IntVar(&addEstimate, "estimate", 0, "estimated minutes")
	addCmd.Flags().Float64Var(&addMoney, "money", 0, "monetary value at stake")
	addCmd.Flags().StringVar(&addParent, "parent", "", "parent task id")
	addCmd.Flags().StringSliceVar(&addBlockedBy, "blocked-by", nil, "ids of tasks that must complete first")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	domain, err := parseDomain(addDomain)
	if err != nil {
		return err
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	task := models.Task{
		Title:    title,
		Domain:   domain,
		Status:   models.StatusBacklog,
		Priority: addPriority,
	}
	if addCategory != "" {
		id, err := resolveCategory(taskStore, addCategory, domain)
		if err != nil {
			return err
		}
		task.CategoryID = id
	}
	if addDue != "" {
		due, err := parseDate(addDue)
		if err != nil {
			return fmt.Errorf("invalid --due: %w", err)
		}
		task.DueDate = &due
	}
	if addSoftDue != "" {
		soft, err := parseDate(addSoftDue)
		if err != nil {
			return fmt.Errorf("invalid --soft-due: %w", err)
		}
		task.SoftDeadline = &soft
	}
	if addEstimate > 0 {
		task.EstimateMinutes = &addEstimate
	}
	if addMoney > 0 {
		task.MoneyImpact = &addMoney
	}
	if addParent != "" {
		task.ParentID = &addParent
	}
	if len(addBlockedBy) > 0 {
		task.BlockedBy = addBlockedBy
	}

	created, err := taskStore.CreateTask(task)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	if isJSON() {
		return printJSON(created)
	}
	cmd.Printf("Added %q (%s)\n", created.Title, created.ID)
	return nil
}

// parseDate accepts a civil date and pins it to end of day local time, so
// "due 2026-09-04" stays due through the whole of that day.
func parseDate(value string) (time.Time, error) {
	d, err := time.ParseInLocation(models.DateFormat, value, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(23*time.Hour + 59*time.Minute), nil
}

// resolveCategory accepts a category id or name, creating a category on
// the fly when the name names a known kind.
func resolveCategory(s interface {
	ListCategories() ([]models.Category, error)
	CreateCategory(models.Category) (models.Category, error)
}, value string, domain models.Domain) (string, error) {
	categories, err := s.ListCategories()
	if err != nil {
		return "", fmt.Errorf("failed to list categories: %w", err)
	}
	for _, c := range categories {
		if c.ID == value || strings.EqualFold(c.Name, value) {
			return c.ID, nil
		}
	}

	// A bare kind name bootstraps its category.
	kind := models.CategoryKind(strings.ToLower(value))
	switch kind {
	case models.KindLegal, models.KindMoney, models.KindMaintenance, models.KindCaregiver:
		created, err := s.CreateCategory(models.Category{
			Name:   strings.ToLower(value),
			Domain: domain,
			Kind:   kind,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create category %q: %w", value, err)
		}
		return created.ID, nil
	}
	return "", fmt.Errorf("unknown category %q", value)
}
