package habit

import "time"

// Range names a window of dates for consistency reporting.
type Range string

const (
	RangeWeek        Range = "week"
	RangeMonth       Range = "month"
	RangeThreeMonths Range = "three-months"
)

// RangeDates expands a range around an anchor date into an ascending list
// of day strings: the Monday-start week containing the anchor, the calendar
// month containing it, or the 90 days ending at and including it.
func RangeDates(r Range, anchor string) []string {
	d, ok := parseDay(anchor)
	if !ok {
		return nil
	}

	switch r {
	case RangeWeek:
		return spanDays(mondayOf(d), 7)
	case RangeMonth:
		first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return spanDays(first, daysInMonth(first))
	case RangeThreeMonths:
		return spanDays(d.AddDate(0, 0, -89), 90)
	default:
		return nil
	}
}

func daysInMonth(first time.Time) int {
	return first.AddDate(0, 1, -1).Day()
}

func spanDays(start time.Time, n int) []string {
	dates := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, formatDay(start.AddDate(0, 0, i)))
	}
	return dates
}
