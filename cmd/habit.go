/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daystacklabs/daystack/internal/habit"
	"github.com/daystacklabs/daystack/internal/ui"
	"github.com/daystacklabs/daystack/models"
	"github.com/daystacklabs/daystack/store"
)

var (
	habitSchedule     string
	habitWeekdays     string
	habitEveryN       int
	habitTimesPerWeek int
	habitKind         string
	habitGoal         float64
	habitUnit         string
	habitAllowPartial bool
	habitAllowSkip    bool
	habitStart        string

	habitLogDate  string
	habitLogNote  string
	habitRangeStr string
	habitShowAll  bool
)

// habitCmd groups the habit subcommands.
var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Track recurring habits and their consistency",
	Long: `Track recurring habits. A habit has a schedule (daily, specific
weekdays, every N days, or N times per week) and one log per calendar
day. Consistency and streaks are computed from the logs; skipped days
never count against you.`,
}

var habitAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new habit",
	Example: `  daystack habit add "Morning run" --schedule weekdays --weekdays 1,3,5
  daystack habit add "Read" --schedule daily --type time --goal 30 --unit min --allow-partial
  daystack habit add "Gym" --schedule times-per-week --times-per-week 3`,
	Args: cobra.ExactArgs(1),
	RunE: runHabitAdd,
}

var habitLogCmd = &cobra.Command{
	Use:   "log [habit] [value]",
	Short: "Log a habit for a date",
	Long: `Record a habit outcome. For count and time habits pass the measured
value; it is compared against the goal target to decide between done
and partial. Logging the same date twice overwrites the earlier record.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runHabitLog,
}

var habitSkipCmd = &cobra.Command{
	Use:   "skip [habit]",
	Short: "Skip a habit for a date",
	Long: `Record a deliberate skip. Skipped days are removed from the consistency
denominator and do not break streaks. Only habits created with
--allow-skip accept skips.`,
	Args: cobra.ExactArgs(1),
	RunE: runHabitSkip,
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the habit dashboard",
	RunE:  runHabitList,
}

var habitStatsCmd = &cobra.Command{
	Use:   "stats [habit]",
	Short: "Show detailed stats for one habit",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitStats,
}

var habitArchiveCmd = &cobra.Command{
	Use:   "archive [habit]",
	Short: "Archive a habit, keeping its history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitArchive,
}

func init() {
	rootCmd.AddCommand(habitCmd)
	habitCmd.AddCommand(habitAddCmd, habitLogCmd, habitSkipCmd, habitListCmd, habitStatsCmd, habitArchiveCmd)

	habitAddCmd.Flags().StringVar(&habitSchedule, "schedule", string(models.ScheduleDaily), "daily, weekdays, every-n-days, or times-per-week")
	habitAddCmd.Flags().StringVar(&habitWeekdays, "weekdays", "", "comma-separated weekday numbers, 0=Sunday (for weekdays schedule)")
	habitAddCmd.Flags().IntVar(&habitEveryN, "every", 0, "interval in days (for every-n-days schedule)")
	habitAddCmd.Flags().IntVar(&habitTimesPerWeek, "times-per-week", 0, "weekly target (for times-per-week schedule)")
	habitAddCmd.Flags().StringVar(&habitKind, "type", string(models.HabitCheck), "check, count, or time")
	habitAddCmd.Flags().Float64Var(&habitGoal, "goal", 0, "goal target per day (for count and time habits)")
	habitAddCmd.Flags().StringVar(&habitUnit, "unit", "", "display unit for the goal (e.g. min, pages)")
	habitAddCmd.Flags().BoolVar(&habitAllowPartial, "allow-partial", false, "give partial credit below the goal")
	habitAddCmd.Flags().BoolVar(&habitAllowSkip, "allow-skip", false, "allow deliberate skips")
	habitAddCmd.Flags().StringVar(&habitStart, "start", "", "start date (YYYY-MM-DD, default today)")

	habitLogCmd.Flags().StringVar(&habitLogDate, "date", "", "date to log (YYYY-MM-DD, default today)")
	habitLogCmd.Flags().StringVar(&habitLogNote, "note", "", "note to attach to the log")
	habitSkipCmd.Flags().StringVar(&habitLogDate, "date", "", "date to skip (YYYY-MM-DD, default today)")

	habitListCmd.Flags().StringVar(&habitRangeStr, "range", "week", "stats range: week, month, or quarter")
	habitListCmd.Flags().BoolVarP(&habitShowAll, "all", "a", false, "include archived habits")
	habitStatsCmd.Flags().StringVar(&habitRangeStr, "range", "week", "stats range: week, month, or quarter")
}

func runHabitAdd(cmd *cobra.Command, args []string) error {
	start := habitStart
	if start == "" {
		start = today()
	}
	if _, err := time.Parse(models.DateFormat, start); err != nil {
		return fmt.Errorf("invalid --start date %q: %w", habitStart, err)
	}

	h := models.NewHabit("", args[0], models.ScheduleType(habitSchedule), start)
	h.Type = models.HabitType(habitKind)
	h.Unit = habitUnit
	h.AllowPartial = habitAllowPartial
	h.AllowSkip = habitAllowSkip
	if habitGoal > 0 {
		h.GoalTarget = &habitGoal
	}

	switch h.ScheduleType {
	case models.ScheduleWeekdays:
		days, err := parseWeekdays(habitWeekdays)
		if err != nil {
			return err
		}
		h.Weekdays = days
	case models.ScheduleEveryNDays:
		if habitEveryN < 1 {
			return fmt.Errorf("every-n-days schedule requires --every >= 1")
		}
		h.EveryNDays = habitEveryN
	case models.ScheduleTimesPerWeek:
		if habitTimesPerWeek < 1 {
			return fmt.Errorf("times-per-week schedule requires --times-per-week >= 1")
		}
		h.TimesPerWeek = habitTimesPerWeek
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	created, err := taskStore.CreateHabit(*h)
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}

	if isJSON() {
		return printJSON(created)
	}
	cmd.Printf("Added habit %q (%s)\n", created.Name, created.ID)
	return nil
}

func runHabitLog(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	h, err := resolveHabit(taskStore, args[0])
	if err != nil {
		return err
	}

	date, err := logDate()
	if err != nil {
		return err
	}

	patch := store.LogPatch{Status: models.LogDone, Note: habitLogNote}
	if len(args) == 2 {
		value, perr := strconv.ParseFloat(args[1], 64)
		if perr != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], perr)
		}
		patch.Value = &value
		if h.GoalTarget != nil && value < *h.GoalTarget {
			patch.Status = models.LogPartial
		}
	} else if h.Type != models.HabitCheck && h.GoalTarget != nil {
		return fmt.Errorf("habit %q tracks a value; pass the amount (goal %g %s)", h.Name, *h.GoalTarget, h.Unit)
	}

	log, err := taskStore.UpsertHabitLog(h.ID, date, patch, time.Now())
	if err != nil {
		return fmt.Errorf("failed to log habit: %w", err)
	}

	if isJSON() {
		return printJSON(log)
	}
	cmd.Printf("Logged %q for %s (%s)\n", h.Name, date, log.Status)
	return nil
}

func runHabitSkip(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	h, err := resolveHabit(taskStore, args[0])
	if err != nil {
		return err
	}
	if !h.AllowSkip {
		return fmt.Errorf("habit %q does not allow skips", h.Name)
	}

	date, err := logDate()
	if err != nil {
		return err
	}

	log, err := taskStore.UpsertHabitLog(h.ID, date, store.LogPatch{Status: models.LogSkip}, time.Now())
	if err != nil {
		return fmt.Errorf("failed to skip habit: %w", err)
	}

	if isJSON() {
		return printJSON(log)
	}
	cmd.Printf("Skipped %q for %s\n", h.Name, date)
	return nil
}

func runHabitList(cmd *cobra.Command, args []string) error {
	r, err := parseRange(habitRangeStr)
	if err != nil {
		return err
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	habits, err := taskStore.ListHabits(habitShowAll)
	if err != nil {
		return fmt.Errorf("failed to list habits: %w", err)
	}

	day := today()
	dates := habit.RangeDates(r, day)

	summaries := make([]ui.HabitSummary, 0, len(habits))
	for _, h := range habits {
		logs, lerr := taskStore.ListHabitLogs(h.ID)
		if lerr != nil {
			return fmt.Errorf("failed to list logs for %s: %w", h.ID, lerr)
		}
		_, logged := logs[day]
		summaries = append(summaries, ui.HabitSummary{
			Habit:       h,
			Stats:       habit.ConsistencyStats(h, logs, dates),
			Streak:      habit.CurrentStreak(h, logs, day, habit.DefaultLookbackDays),
			DueToday:    habit.ScheduledOn(h, day),
			LoggedToday: logged,
		})
	}

	if isJSON() {
		return printJSON(summaries)
	}
	cmd.Print(ui.RenderHabits(summaries, r))
	return nil
}

func runHabitStats(cmd *cobra.Command, args []string) error {
	r, err := parseRange(habitRangeStr)
	if err != nil {
		return err
	}

	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	h, err := resolveHabit(taskStore, args[0])
	if err != nil {
		return err
	}

	logs, err := taskStore.ListHabitLogs(h.ID)
	if err != nil {
		return fmt.Errorf("failed to list logs: %w", err)
	}

	day := today()
	stats := habit.ConsistencyStats(h, logs, habit.RangeDates(r, day))
	streak := habit.CurrentStreak(h, logs, day, habit.DefaultLookbackDays)

	if isJSON() {
		return printJSON(map[string]any{
			"habit":       h,
			"range":       r,
			"consistency": stats,
			"streak":      streak,
		})
	}

	cmd.Println(ui.StyleSectionTitle.Render(h.Name))
	cmd.Printf("Schedule:     %s\n", describeSchedule(h))
	cmd.Printf("Consistency:  %d%% (%d/%d over the last %s, %d skipped)\n",
		stats.ConsistencyPct, stats.Numerator, stats.Denominator, r, stats.Skips)
	unit := "day"
	if h.ScheduleType == models.ScheduleTimesPerWeek {
		unit = "week"
	}
	cmd.Printf("Streak:       %d %s(s)\n", streak, unit)
	return nil
}

func runHabitArchive(cmd *cobra.Command, args []string) error {
	taskStore, err := GetStore()
	if err != nil {
		return err
	}
	defer func() { _ = taskStore.Close() }()

	h, err := resolveHabit(taskStore, args[0])
	if err != nil {
		return err
	}

	archived, err := taskStore.ArchiveHabit(h.ID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to archive habit: %w", err)
	}

	if isJSON() {
		return printJSON(archived)
	}
	cmd.Printf("Archived habit %q\n", archived.Name)
	return nil
}

// resolveHabit accepts a habit id or an unambiguous name prefix.
func resolveHabit(s store.Store, ref string) (models.Habit, error) {
	if h, err := s.GetHabit(ref); err == nil {
		return h, nil
	}

	habits, err := s.ListHabits(true)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to list habits: %w", err)
	}

	var matches []models.Habit
	needle := strings.ToLower(ref)
	for _, h := range habits {
		if strings.HasPrefix(strings.ToLower(h.Name), needle) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Habit{}, fmt.Errorf("no habit matches %q", ref)
	default:
		names := make([]string, len(matches))
		for i, h := range matches {
			names[i] = h.Name
		}
		return models.Habit{}, fmt.Errorf("habit %q is ambiguous: %s", ref, strings.Join(names, ", "))
	}
}

func logDate() (string, error) {
	if habitLogDate == "" {
		return today(), nil
	}
	if _, err := time.Parse(models.DateFormat, habitLogDate); err != nil {
		return "", fmt.Errorf("invalid --date %q: %w", habitLogDate, err)
	}
	return habitLogDate, nil
}

func parseWeekdays(value string) ([]int, error) {
	if value == "" {
		return nil, fmt.Errorf("weekdays schedule requires --weekdays (e.g. 1,3,5 with 0=Sunday)")
	}
	parts := strings.Split(value, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid weekday %q (expected 0-6, 0=Sunday)", p)
		}
		days = append(days, d)
	}
	return days, nil
}

func describeSchedule(h models.Habit) string {
	switch h.ScheduleType {
	case models.ScheduleDaily:
		return "daily"
	case models.ScheduleWeekdays:
		names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
		parts := make([]string, 0, len(h.Weekdays))
		for _, d := range h.Weekdays {
			if d >= 0 && d < len(names) {
				parts = append(parts, names[d])
			}
		}
		return strings.Join(parts, ", ")
	case models.ScheduleEveryNDays:
		return fmt.Sprintf("every %d days", h.EveryNDays)
	case models.ScheduleTimesPerWeek:
		return fmt.Sprintf("%d times per week", h.TimesPerWeek)
	}
	return string(h.ScheduleType)
}
