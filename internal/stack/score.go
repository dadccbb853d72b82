package stack

import (
	"math"
	"time"

	"github.com/daystacklabs/daystack/models"
)

// Excluded is the sentinel score for tasks that must not enter the
// suggested pool at all.
const Excluded = -1

// Fixed category-kind weights. Unknown kinds carry no weight.
var categoryWeights = map[models.CategoryKind]float64{
	models.KindLegal:       40,
	models.KindMoney:       30,
	models.KindMaintenance: 10,
	models.KindCaregiver:   5,
}

// ScoreTask scores one task for the suggested tier. It returns Excluded for
// tasks that are not actionable, are blocked, or whose estimate exceeds the
// remaining budget. A remaining budget of exactly 0 does not trigger the
// over-estimate exclusion; zero-capacity days still score fitting tasks.
//
// Otherwise the score is an additive blend of independent signals: category
// weight, hard and soft deadline urgency, momentum, a quick-win size bias,
// and capped money impact. All weights are fixed constants.
func ScoreTask(t models.Task, kind models.CategoryKind, remainingMinutes int, now time.Time) float64 {
	if !IsActionable(t, now) {
		return Excluded
	}
	if len(t.BlockedBy) > 0 {
		return Excluded
	}
	if t.EstimateMinutes != nil && *t.EstimateMinutes > remainingMinutes && remainingMinutes > 0 {
		return Excluded
	}

	score := categoryWeights[kind]

	if t.DueDate != nil {
		switch days := civilDaysUntil(now, *t.DueDate); {
		case days <= 3: // overdue tasks land here too
			score += 35
		case days <= 7:
			score += 25
		}
	}
	if t.SoftDeadline != nil && civilDaysUntil(now, *t.SoftDeadline) <= 7 {
		score += 15
	}

	switch t.Status {
	case models.StatusInProgress:
		score += 20
	case models.StatusToday:
		// Largest single bonus so a pin would dominate even if it ever
		// entered the scored pool; in practice pins bypass scoring.
		score += 50
	}

	estimate := DefaultScoringEstimate
	if t.EstimateMinutes != nil {
		estimate = *t.EstimateMinutes
	}
	switch {
	case estimate <= 15:
		score += 12
	case estimate <= 30:
		score += 8
	}

	if t.MoneyImpact != nil && *t.MoneyImpact > 0 {
		score += math.Min(20, *t.MoneyImpact/20)
	}

	return score
}

// civilDaysUntil counts calendar days from now's date to then's date, in
// now's location. Negative for past dates.
func civilDaysUntil(now, then time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	ty, tm, td := then.In(now.Location()).Date()
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
