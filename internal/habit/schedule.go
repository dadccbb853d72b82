package habit

import "github.com/daystacklabs/daystack/models"

// ScheduledOn reports whether a habit is due on a calendar date. Dates
// before the habit's start date are never scheduled.
//
// A times-per-week habit is loggable on every day; its weekly target is
// enforced only by the consistency and streak math, never by scheduling.
func ScheduledOn(h models.Habit, date string) bool {
	d, ok := parseDay(date)
	if !ok {
		return false
	}
	start, ok := parseDay(h.StartDate)
	if !ok || d.Before(start) {
		return false
	}

	switch h.ScheduleType {
	case models.ScheduleDaily, models.ScheduleTimesPerWeek:
		return true
	case models.ScheduleWeekdays:
		weekday := int(d.Weekday()) // 0 = Sunday
		for _, w := range h.Weekdays {
			if w == weekday {
				return true
			}
		}
		return false
	case models.ScheduleEveryNDays:
		n := h.EveryNDays
		if n < 1 {
			n = 1
		}
		// Day 0, the start date itself, always matches.
		return daysBetween(start, d)%n == 0
	default:
		return false
	}
}

// weeklyTarget is the times-per-week goal, floored at one.
func weeklyTarget(h models.Habit) int {
	if h.TimesPerWeek < 1 {
		return 1
	}
	return h.TimesPerWeek
}
