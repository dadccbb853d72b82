package habit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daystacklabs/daystack/models"
)

func TestCurrentStreakCountsConsecutiveDoneDays(t *testing.T) {
	h := newHabit(models.ScheduleDaily, "2026-03-01")
	logs := logsFrom(
		logOn(h.ID, "2026-03-10", models.LogDone),
		logOn(h.ID, "2026-03-11", models.LogDone),
		logOn(h.ID, "2026-03-12", models.LogDone),
	)

	assert.Equal(t, 3, CurrentStreak(h, logs, "2026-03-12", 0))
}

func TestCurrentStreakBreaksOnMissedDay(t *testing.T) {
	h := newHabit(models.ScheduleDaily, "2026-03-01")
	logs := logsFrom(
		logOn(h.ID, "2026-03-10", models.LogDone),
		// 2026-03-11 missed
		logOn(h.ID, "2026-03-12", models.LogDone),
	)

	assert.Equal(t, 1, CurrentStreak(h, logs, "2026-03-12", 0))
}

func TestCurrentStreakSkipsArePasses(t *testing.T) {
	h := newHabit(models.ScheduleDaily, "2026-03-01")
	h.AllowSkip = true
	logs := logsFrom(
		logOn(h.ID, "2026-03-10", models.LogDone),
		logOn(h.ID, "2026-03-11", models.LogSkip),
		logOn(h.ID, "2026-03-12", models.LogDone),
	)

	assert.Equal(t, 2, CurrentStreak(h, logs, "2026-03-12", 0))
}

func TestCurrentStreakIgnoresUnscheduledDays(t *testing.T) {
	h := newHabit(models.ScheduleWeekdays, "2026-03-01")
	h.Weekdays = []int{1, 3} // Mon, Wed
	logs := logsFrom(
		logOn(h.ID, "2026-03-09", models.LogDone), // Monday
		logOn(h.ID, "2026-03-11", models.LogDone), // Wednesday
	)

	// Friday: the Tue/Thu gaps pass through, both scheduled days count.
	assert.Equal(t, 2, CurrentStreak(h, logs, "2026-03-13", 0))
}

func TestCurrentStreakStopsAtStartDate(t *testing.T) {
	h := newHabit(models.ScheduleDaily, "2026-03-10")
	logs := logsFrom(
		logOn(h.ID, "2026-03-10", models.LogDone),
		logOn(h.ID, "2026-03-11", models.LogDone),
	)

	assert.Equal(t, 2, CurrentStreak(h, logs, "2026-03-11", 0))
}

func TestCurrentStreakRequiresFullAttainment(t *testing.T) {
	h := newHabit(models.ScheduleDaily, "2026-03-01")
	h.Type = models.HabitCount
	goal := 10.0
	h.GoalTarget = &goal

	below := 7.0
	log := logOn(h.ID, "2026-03-12", models.LogPartial)
	log.Value = &below

	// Partial numeric progress earns consistency credit but never extends
	// a streak.
	assert.Equal(t, 0, CurrentStreak(h, logsFrom(log), "2026-03-12", 0))
}

func TestCurrentStreakTimesPerWeek(t *testing.T) {
	h := newHabit(models.ScheduleTimesPerWeek, "2026-02-23")
	h.TimesPerWeek = 2

	// Week of Feb 23: two done. Week of Mar 2: two done. Week of Mar 9
	// (current): two done by Wednesday.
	logs := logsFrom(
		logOn(h.ID, "2026-02-24", models.LogDone),
		logOn(h.ID, "2026-02-26", models.LogDone),
		logOn(h.ID, "2026-03-03", models.LogDone),
		logOn(h.ID, "2026-03-05", models.LogDone),
		logOn(h.ID, "2026-03-09", models.LogDone),
		logOn(h.ID, "2026-03-11", models.LogDone),
	)

	assert.Equal(t, 3, CurrentStreak(h, logs, "2026-03-11", 0))
}

func TestCurrentStreakTimesPerWeekBreaksOnShortWeek(t *testing.T) {
	h := newHabit(models.ScheduleTimesPerWeek, "2026-02-23")
	h.TimesPerWeek = 2

	// The current week has only one done day, so even though the prior
	// week met its target the streak is zero.
	logs := logsFrom(
		logOn(h.ID, "2026-03-03", models.LogDone),
		logOn(h.ID, "2026-03-05", models.LogDone),
		logOn(h.ID, "2026-03-09", models.LogDone),
	)

	assert.Equal(t, 0, CurrentStreak(h, logs, "2026-03-11", 0))
}
