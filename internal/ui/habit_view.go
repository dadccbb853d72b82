package ui

import (
	"fmt"
	"strings"

	"github.com/daystacklabs/daystack/internal/habit"
	"github.com/daystacklabs/daystack/models"
)

// HabitSummary pairs a habit with its computed numbers for display.
type HabitSummary struct {
	Habit       models.Habit
	Stats       habit.Stats
	Streak      int
	DueToday    bool // scheduled today
	LoggedToday bool
}

// RenderHabits renders the habit dashboard for one range.
func RenderHabits(summaries []HabitSummary, r habit.Range) string {
	var sb strings.Builder
	sb.WriteString(StyleSectionTitle.Render("Habits"))
	sb.WriteString(StyleSubtle.Render(fmt.Sprintf("  (%s)", r)))
	sb.WriteString("\n\n")

	if len(summaries) == 0 {
		sb.WriteString(StyleSubtle.Render("No habits yet. Add one with: daystack habit add") + "\n")
		return sb.String()
	}

	table := &Table{Headers: []string{"NAME", "DUE", "STREAK", "CONSISTENCY", "SKIPS"}}
	for _, s := range summaries {
		due := ""
		if s.DueToday {
			due = "today"
			if s.LoggedToday {
				due = "logged"
			}
		}
		table.Rows = append(table.Rows, []string{
			s.Habit.Name,
			due,
			renderStreak(s.Habit, s.Streak),
			fmt.Sprintf("%d%% (%d/%d)", s.Stats.ConsistencyPct, s.Stats.Numerator, s.Stats.Denominator),
			fmt.Sprintf("%d", s.Stats.Skips),
		})
	}
	sb.WriteString(table.Render())
	return sb.String()
}

func renderStreak(h models.Habit, streak int) string {
	unit := "d"
	if h.ScheduleType == models.ScheduleTimesPerWeek {
		unit = "w"
	}
	return fmt.Sprintf("%d%s", streak, unit)
}
