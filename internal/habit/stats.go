package habit

import (
	"math"

	"github.com/daystacklabs/daystack/models"
)

// Stats summarizes a habit's consistency over a date range.
type Stats struct {
	ConsistencyPct int `json:"consistencyPct"`
	Numerator      int `json:"numerator"`
	Denominator    int `json:"denominator"`
	Skips          int `json:"skips"`
}

// doneFraction is the partial-credit done-equivalence used by consistency:
// done and allowed-partial count fully, numeric habits earn value/goal up
// to 1. Streaks use the stricter isDone instead; the asymmetry between the
// two is deliberate, consistency rewards partial numeric progress while a
// streak requires full attainment.
func doneFraction(h models.Habit, log models.HabitLog) float64 {
	if log.Status == models.LogDone {
		return 1
	}
	if log.Status == models.LogPartial && h.AllowPartial {
		return 1
	}
	if h.Type != models.HabitCheck && h.GoalTarget != nil && *h.GoalTarget > 0 && log.Value != nil {
		return math.Min(1, *log.Value / *h.GoalTarget)
	}
	return 0
}

// isDone is the boolean done-equivalence used by streaks.
func isDone(h models.Habit, log models.HabitLog) bool {
	if log.Status == models.LogDone {
		return true
	}
	if log.Status == models.LogPartial && h.AllowPartial {
		return true
	}
	if h.Type != models.HabitCheck && h.GoalTarget != nil && *h.GoalTarget > 0 && log.Value != nil {
		return *log.Value >= *h.GoalTarget
	}
	return false
}

// ConsistencyStats computes the habit's consistency over rangeDates, given
// its logs keyed by date.
//
// For most schedules each scheduled date is one denominator unit, except
// that skipped dates are neutral: they leave the denominator entirely and
// are tallied separately. Times-per-week habits are measured against their
// weekly target instead, per Monday-start week.
func ConsistencyStats(h models.Habit, logsByDate map[string]models.HabitLog, rangeDates []string) Stats {
	var stats Stats

	if h.ScheduleType == models.ScheduleTimesPerWeek {
		target := weeklyTarget(h)
		weekDone := make(map[string]int)
		var weekOrder []string
		for _, date := range rangeDates {
			if !ScheduledOn(h, date) {
				continue
			}
			d, _ := parseDay(date)
			week := formatDay(mondayOf(d))
			if _, seen := weekDone[week]; !seen {
				weekOrder = append(weekOrder, week)
				weekDone[week] = 0
			}
			log, ok := logsByDate[date]
			if !ok {
				continue
			}
			if log.Status == models.LogSkip {
				stats.Skips++
				continue
			}
			if doneFraction(h, log) >= 1 {
				weekDone[week]++
			}
		}
		for _, week := range weekOrder {
			stats.Denominator += target
			done := weekDone[week]
			if done > target {
				done = target
			}
			stats.Numerator += done
		}
	} else {
		for _, date := range rangeDates {
			if !ScheduledOn(h, date) {
				continue
			}
			log, ok := logsByDate[date]
			if ok && log.Status == models.LogSkip {
				stats.Skips++
				continue
			}
			stats.Denominator++
			if ok && doneFraction(h, log) >= 1 {
				stats.Numerator++
			}
		}
	}

	if stats.Denominator > 0 {
		stats.ConsistencyPct = int(math.Round(100 * float64(stats.Numerator) / float64(stats.Denominator)))
	}
	return stats
}
