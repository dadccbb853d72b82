package stack

import (
	"sort"
	"time"

	"github.com/daystacklabs/daystack/models"
)

// Split is a daily stack divided into its two tiers. Pinned tasks are the
// user's explicit picks; suggested tasks are the algorithm's.
type Split struct {
	Pinned    []models.Task `json:"pinned"`
	Suggested []models.Task `json:"suggested"`
}

// Tasks concatenates the two tiers, pinned first, for callers that do not
// need the distinction.
func (s Split) Tasks() []models.Task {
	merged := make([]models.Task, 0, len(s.Pinned)+len(s.Suggested))
	merged = append(merged, s.Pinned...)
	return append(merged, s.Suggested...)
}

// BuildSplit selects the day's working set for one domain.
//
// Pinned tasks (status "today") are included unconditionally, in their
// original relative order, up to maxTasks. Pinning is a user override: a
// pinned task is never dropped for being blocked, over budget, or
// saturating a category kind.
//
// The remaining slots are filled from the scored candidate pool in
// descending score order (stable on ties), subject to a running minute
// budget of availableMinutes minus the pinned tier's estimates, and to a
// two-per-category-kind diversity cap. Two edge-case policies are load
// bearing: the first suggested task is admitted even if it alone exceeds
// the budget, and the diversity cap is waived entirely when the candidate
// pool is no larger than the open slots.
func BuildSplit(tasks []models.Task, categories []models.Category, domain models.Domain, availableMinutes, maxTasks int, now time.Time) Split {
	if maxTasks <= 0 {
		maxTasks = DefaultMaxStackSize
	}
	kinds := kindLookup(categories)

	var pool []models.Task
	for _, t := range tasks {
		if t.Domain == domain && IsActionable(t, now) {
			pool = append(pool, t)
		}
	}

	var pinned []models.Task
	pinnedMinutes := 0
	for _, t := range pool {
		if t.Status != models.StatusToday || len(pinned) >= maxTasks {
			continue
		}
		pinned = append(pinned, t)
		pinnedMinutes += estimateOr(t, DefaultSelectionEstimate)
	}

	slots := maxTasks - len(pinned)
	if slots <= 0 {
		return Split{Pinned: pinned}
	}

	type scored struct {
		task  models.Task
		score float64
	}
	var candidates []scored
	for _, t := range pool {
		if t.Status == models.StatusToday {
			continue
		}
		if s := ScoreTask(t, kinds[t.CategoryID], availableMinutes, now); s >= 0 {
			candidates = append(candidates, scored{task: t, score: s})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	budget := availableMinutes - pinnedMinutes
	if budget < 0 {
		budget = 0
	}
	diversityWaived := len(candidates) <= slots

	var suggested []models.Task
	used := 0
	perKind := map[models.CategoryKind]int{}
	for _, c := range candidates {
		if len(suggested) >= slots {
			break
		}
		est := estimateOr(c.task, DefaultSelectionEstimate)
		if len(suggested) > 0 && used+est > budget {
			continue
		}
		kind := kinds[c.task.CategoryID]
		if !diversityWaived && perKind[kind] >= maxPerCategoryKind {
			continue
		}
		suggested = append(suggested, c.task)
		used += est
		perKind[kind]++
	}

	return Split{Pinned: pinned, Suggested: suggested}
}

// Build returns the merged daily stack, pinned tasks first.
func Build(tasks []models.Task, categories []models.Category, domain models.Domain, availableMinutes, maxTasks int, now time.Time) []models.Task {
	return BuildSplit(tasks, categories, domain, availableMinutes, maxTasks, now).Tasks()
}

func estimateOr(t models.Task, fallback int) int {
	if t.EstimateMinutes != nil {
		return *t.EstimateMinutes
	}
	return fallback
}
