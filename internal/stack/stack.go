// Package stack implements the daily stack builder: pure selection and
// scoring logic that turns a flat pool of tasks into a prioritized,
// capacity-bounded working set for one day. Nothing in this package touches
// storage or rendering; the host feeds it records and applies its output.
package stack

import (
	"sort"
	"time"

	"github.com/daystacklabs/daystack/models"
	"github.com/daystacklabs/daystack/types"
)

const (
	// FallbackCapacityMinutes is the available-minutes budget used when no
	// per-domain default is configured and no same-day override exists.
	FallbackCapacityMinutes = 120

	// DefaultSelectionEstimate is the minutes assumed for a task with no
	// estimate inside the selection loop's budget math.
	//
	// DefaultScoringEstimate is the minutes assumed for the same task inside
	// ScoreTask's size bonus. The two intentionally differ: unifying them
	// changes selection outcomes the test suite pins down.
	DefaultSelectionEstimate = 15
	DefaultScoringEstimate   = 30

	// DefaultMaxStackSize caps the combined pinned+suggested stack.
	DefaultMaxStackSize = 5

	// maxPerCategoryKind is the diversity cap on suggested tasks sharing a
	// category kind. Waived when the candidate pool fits in the open slots.
	maxPerCategoryKind = 2
)

// IsActionable reports whether a task may be considered for work right now.
// Done and archived tasks never are; pending tasks are actionable only once
// their nextActionAt has elapsed (or was never set).
func IsActionable(t models.Task, now time.Time) bool {
	if t.Status == models.StatusDone || t.Status == models.StatusArchived {
		return false
	}
	if t.Status == models.StatusPending && t.NextActionAt != nil && t.NextActionAt.After(now) {
		return false
	}
	return true
}

// IsWaiting reports whether a task is parked until a future nextActionAt.
// Every pending task is exactly one of waiting or actionable; for any other
// status IsWaiting is always false.
func IsWaiting(t models.Task, now time.Time) bool {
	return t.Status == models.StatusPending && t.NextActionAt != nil && t.NextActionAt.After(now)
}

// WaitingTasks returns the domain's waiting tasks ordered by soonest
// nextActionAt first. A task with no action date sorts last.
func WaitingTasks(tasks []models.Task, domain models.Domain, now time.Time) []models.Task {
	var waiting []models.Task
	for _, t := range tasks {
		if t.Domain == domain && IsWaiting(t, now) {
			waiting = append(waiting, t)
		}
	}
	sort.SliceStable(waiting, func(i, j int) bool {
		a, b := waiting[i].NextActionAt, waiting[j].NextActionAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return waiting
}

// ResolveAvailableMinutes resolves the day's minute budget for a domain:
// a same-day override wins, then the configured per-domain default, then
// FallbackCapacityMinutes.
func ResolveAvailableMinutes(capacity types.CapacityConfig, override *models.DailyCapacity, domain models.Domain, today string) int {
	if override != nil && override.Domain == domain && override.Date == today {
		return override.Minutes
	}
	var configured int
	switch domain {
	case models.DomainLife:
		configured = capacity.Life
	case models.DomainWork:
		configured = capacity.Work
	}
	if configured > 0 {
		return configured
	}
	return FallbackCapacityMinutes
}

// kindLookup maps category ids to their kind. Missing or unknown category
// references degrade to the empty kind, which carries no weight.
func kindLookup(categories []models.Category) map[string]models.CategoryKind {
	kinds := make(map[string]models.CategoryKind, len(categories))
	for _, c := range categories {
		kinds[c.ID] = c.Kind
	}
	return kinds
}
