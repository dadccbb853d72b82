package habit

import (
	"time"

	"github.com/daystacklabs/daystack/models"
)

const (
	// DefaultLookbackDays bounds the day-by-day streak walk.
	DefaultLookbackDays = 365
	// maxStreakWeeks bounds the week-by-week walk for times-per-week habits.
	maxStreakWeeks = 52
)

// CurrentStreak computes the habit's active streak ending at today.
//
// For most schedules it walks backward day by day: unscheduled dates and
// skipped dates pass through without breaking the streak, the first
// scheduled, non-skip date that is not done breaks it, and the walk stops
// at the habit's start date or after lookbackDays days.
//
// A times-per-week habit is counted in Monday-start weeks instead: a week
// extends the streak when its done days, clipped to [startDate, today],
// meet the weekly target.
func CurrentStreak(h models.Habit, logsByDate map[string]models.HabitLog, today string, lookbackDays int) int {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	end, ok := parseDay(today)
	if !ok {
		return 0
	}
	start, ok := parseDay(h.StartDate)
	if !ok {
		return 0
	}

	if h.ScheduleType == models.ScheduleTimesPerWeek {
		return weeklyStreak(h, logsByDate, start, end)
	}

	streak := 0
	for i := 0; i < lookbackDays; i++ {
		d := end.AddDate(0, 0, -i)
		if d.Before(start) {
			break
		}
		date := formatDay(d)
		if !ScheduledOn(h, date) {
			continue
		}
		log, ok := logsByDate[date]
		if ok && log.Status == models.LogSkip {
			// Skips are passes, not breaks.
			continue
		}
		if ok && isDone(h, log) {
			streak++
			continue
		}
		break
	}
	return streak
}

func weeklyStreak(h models.Habit, logsByDate map[string]models.HabitLog, start, end time.Time) int {
	target := weeklyTarget(h)
	streak := 0
	weekStart := mondayOf(end)
	for w := 0; w < maxStreakWeeks; w++ {
		done := 0
		inRange := 0
		for i := 0; i < 7; i++ {
			d := weekStart.AddDate(0, 0, i)
			if d.Before(start) || d.After(end) {
				continue
			}
			inRange++
			if log, ok := logsByDate[formatDay(d)]; ok && isDone(h, log) {
				done++
			}
		}
		if inRange == 0 {
			break
		}
		if done < target {
			break
		}
		streak++
		weekStart = weekStart.AddDate(0, 0, -7)
	}
	return streak
}
