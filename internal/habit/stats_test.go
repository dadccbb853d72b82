package habit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystacklabs/daystack/models"
)

func logOn(habitID, date string, status models.LogStatus) models.HabitLog {
	return models.HabitLog{ID: "log-" + date, HabitID: habitID, Date: date, Status: status}
}

func logsFrom(logs ...models.HabitLog) map[string]models.HabitLog {
	byDate := make(map[string]models.HabitLog, len(logs))
	for _, l := range logs {
		byDate[l.Date] = l
	}
	return byDate
}

func TestConsistencySkipsAreNeutral(t *testing.T) {
	h := newHabit(models.ScheduleDaily, "2026-03-09")
	h.AllowSkip = true

	// Four scheduled days: one done, one skipped, two missed.
	logs := logsFrom(
		logOn(h.ID, "2026-03-09", models.LogDone),
		logOn(h.ID, "2026-03-10", models.LogSkip),
	)
	dates := []string{"2026-03-09", "2026-03-10", "2026-03-11", "2026-03-12"}

	stats := ConsistencyStats(h, logs, dates)
	assert.Equal(t, 1, stats.Numerator)
	assert.Equal(t, 3, stats.Denominator, "skip leaves the denominator")
	assert.Equal(t, 1, stats.Skips)
	assert.Equal(t, 33, stats.ConsistencyPct)
}

func TestConsistencyIgnoresUnscheduledDates(t *testing.T) {
	h := newHabit(models.ScheduleWeekdays, "2026-03-01")
	h.Weekdays = []int{1} // Mondays only

	logs := logsFrom(logOn(h.ID, "2026-03-09", models.LogDone))
	dates := RangeDates(RangeWeek, "2026-03-11")

	stats := ConsistencyStats(h, logs, dates)
	assert.Equal(t, 1, stats.Numerator)
	assert.Equal(t, 1, stats.Denominator)
	assert.Equal(t, 100, stats.ConsistencyPct)
}

func TestConsistencyPartialCreditForNumericHabits(t *testing.T) {
	h := newHabit(models.ScheduleDaily, "2026-03-09")
	h.Type = models.HabitTime
	goal := 30.0
	h.GoalTarget = &goal

	half := 15.0
	full := 30.0
	logs := logsFrom(
		func() models.HabitLog {
			l := logOn(h.ID, "2026-03-09", models.LogPartial)
			l.Value = &half
			return l
		}(),
		func() models.HabitLog {
			l := logOn(h.ID, "2026-03-10", models.LogPartial)
			l.Value = &full
			return l
		}(),
	)
	dates := []string{"2026-03-09", "2026-03-10"}

	// Without allowPartial, only the at-goal value counts.
	stats := ConsistencyStats(h, logs, dates)
	assert.Equal(t, 1, stats.Numerator)
	assert.Equal(t, 2, stats.Denominator)

	// With allowPartial, a partial log counts fully regardless of value.
	h.AllowPartial = true
	stats = ConsistencyStats(h, logs, dates)
	assert.Equal(t, 2, stats.Numerator)
}

func TestConsistencyTimesPerWeekUsesWeeklyTargets(t *testing.T) {
	h := newHabit(models.ScheduleTimesPerWeek, "2026-03-02")
	h.TimesPerWeek = 3

	// Week of Mar 2: three done days. Week of Mar 9: one done day.
	logs := logsFrom(
		logOn(h.ID, "2026-03-02", models.LogDone),
		logOn(h.ID, "2026-03-04", models.LogDone),
		logOn(h.ID, "2026-03-06", models.LogDone),
		logOn(h.ID, "2026-03-10", models.LogDone),
	)
	dates := spanDays(mustDay(t, "2026-03-02"), 14)

	stats := ConsistencyStats(h, logs, dates)
	assert.Equal(t, 4, stats.Numerator)
	assert.Equal(t, 6, stats.Denominator, "full target per touched week")
	assert.Equal(t, 67, stats.ConsistencyPct)
}

func TestConsistencyTimesPerWeekCapsAtTarget(t *testing.T) {
	h := newHabit(models.ScheduleTimesPerWeek, "2026-03-02")
	h.TimesPerWeek = 2

	// Five done days in one week still earn at most the weekly target.
	logs := logsFrom(
		logOn(h.ID, "2026-03-02", models.LogDone),
		logOn(h.ID, "2026-03-03", models.LogDone),
		logOn(h.ID, "2026-03-04", models.LogDone),
		logOn(h.ID, "2026-03-05", models.LogDone),
		logOn(h.ID, "2026-03-06", models.LogDone),
	)
	dates := spanDays(mustDay(t, "2026-03-02"), 7)

	stats := ConsistencyStats(h, logs, dates)
	assert.Equal(t, 2, stats.Numerator)
	assert.Equal(t, 2, stats.Denominator)
	assert.Equal(t, 100, stats.ConsistencyPct)
}

func TestConsistencyEmptyRangeIsZero(t *testing.T) {
	h := newHabit(models.ScheduleDaily, "2026-03-09")
	stats := ConsistencyStats(h, nil, nil)
	assert.Equal(t, 0, stats.ConsistencyPct)
	assert.Equal(t, 0, stats.Denominator)
}

func mustDay(t *testing.T, date string) time.Time {
	t.Helper()
	d, ok := parseDay(date)
	require.True(t, ok, "bad test date %q", date)
	return d
}
