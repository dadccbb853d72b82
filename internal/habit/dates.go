// Package habit implements the habit consistency engine: pure calendar-day
// logic deciding when a habit is due, and computing rolling consistency
// percentages and streaks from its log history.
package habit

import (
	"time"

	"github.com/daystacklabs/daystack/models"
)

// All day math runs on UTC midnights derived from YYYY-MM-DD strings, so
// DST shifts can never skew interval arithmetic.

func parseDay(date string) (time.Time, bool) {
	d, err := time.Parse(models.DateFormat, date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func formatDay(d time.Time) string {
	return d.Format(models.DateFormat)
}

// Today formats a wall-clock instant as the engine's civil-date string, in
// the instant's own location.
func Today(now time.Time) string {
	return now.Format(models.DateFormat)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// mondayOf returns the Monday-start week origin for a day.
func mondayOf(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
