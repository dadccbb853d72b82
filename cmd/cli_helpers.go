/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/daystacklabs/daystack/internal/habit"
	"github.com/daystacklabs/daystack/models"
	"github.com/daystacklabs/daystack/store"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// parseDomain maps a --domain flag value to a models.Domain, defaulting to
// life.
func parseDomain(value string) (models.Domain, error) {
	switch value {
	case "", string(models.DomainLife):
		return models.DomainLife, nil
	case string(models.DomainWork):
		return models.DomainWork, nil
	default:
		return "", fmt.Errorf("unknown domain %q (expected life or work)", value)
	}
}

// categoryKinds builds the categoryID→kind lookup the renderers use.
func categoryKinds(s store.Store) (map[string]models.CategoryKind, error) {
	categories, err := s.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	kinds := make(map[string]models.CategoryKind, len(categories))
	for _, c := range categories {
		kinds[c.ID] = c.Kind
	}
	return kinds, nil
}

// parseRange maps a --range flag value to a habit.Range.
func parseRange(value string) (habit.Range, error) {
	switch value {
	case "", "week":
		return habit.RangeWeek, nil
	case "month":
		return habit.RangeMonth, nil
	case "quarter", "three-months", "90d":
		return habit.RangeThreeMonths, nil
	default:
		return "", fmt.Errorf("unknown range %q (expected week, month, or quarter)", value)
	}
}

// today is the current civil date string.
func today() string {
	return habit.Today(time.Now())
}

// resolveTaskArg returns the task id from args, or falls back to an
// interactive picker over tasks matching filterFn.
func resolveTaskArg(s store.Store, args []string, filterFn func(models.Task) bool, label string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	task, err := selectTaskInteractive(s, filterFn, label)
	if err != nil {
		return "", err
	}
	return task.ID, nil
}
