package models

import "time"

// DateFormat is the civil-date layout used for habit scheduling and logs.
// Habit math is calendar-day math; wall-clock times never enter into it.
const DateFormat = "2006-01-02"

// ScheduleType determines on which dates a habit is considered due.
type ScheduleType string

const (
	ScheduleDaily        ScheduleType = "daily"
	ScheduleWeekdays     ScheduleType = "weekdays"
	ScheduleEveryNDays   ScheduleType = "every-n-days"
	ScheduleTimesPerWeek ScheduleType = "times-per-week"
)

// HabitType determines how a habit is logged.
type HabitType string

const (
	HabitCheck HabitType = "check" // binary done/not-done
	HabitCount HabitType = "count" // numeric toward a goal target
	HabitTime  HabitType = "time"  // minutes toward a goal target
)

// Habit is a recurring intention tracked per calendar day.
type Habit struct {
	ID           string       `json:"id" yaml:"id" toml:"id" validate:"required,uuid4"`
	Name         string       `json:"name" yaml:"name" toml:"name" validate:"required,min=1,max=100"`
	ScheduleType ScheduleType `json:"scheduleType" yaml:"scheduleType" toml:"scheduleType" validate:"required,oneof=daily weekdays every-n-days times-per-week"`
	Weekdays     []int        `json:"weekdays,omitempty" yaml:"weekdays,omitempty" toml:"weekdays,omitempty" validate:"dive,min=0,max=6"` // 0 = Sunday
	EveryNDays   int          `json:"everyNDays,omitempty" yaml:"everyNDays,omitempty" toml:"everyNDays,omitempty"`
	TimesPerWeek int          `json:"timesPerWeek,omitempty" yaml:"timesPerWeek,omitempty" toml:"timesPerWeek,omitempty"`
	StartDate    string       `json:"startDate" yaml:"startDate" toml:"startDate" validate:"required,datetime=2006-01-02"`
	Type         HabitType    `json:"type" yaml:"type" toml:"type" validate:"required,oneof=check count time"`
	GoalTarget   *float64     `json:"goalTarget,omitempty" yaml:"goalTarget,omitempty" toml:"goalTarget,omitempty"`
	Unit         string       `json:"unit,omitempty" yaml:"unit,omitempty" toml:"unit,omitempty"`
	AllowPartial bool         `json:"allowPartial" yaml:"allowPartial" toml:"allowPartial"`
	AllowSkip    bool         `json:"allowSkip" yaml:"allowSkip" toml:"allowSkip"`
	CreatedAt    time.Time    `json:"createdAt" yaml:"createdAt" toml:"createdAt" validate:"required"`
	ArchivedAt   *time.Time   `json:"archivedAt,omitempty" yaml:"archivedAt,omitempty" toml:"archivedAt,omitempty"`
}

// IsArchived reports whether the habit has been soft-archived. Archived
// habits keep their logs but are excluded from active views.
func (h Habit) IsArchived() bool {
	return h.ArchivedAt != nil
}

// LogStatus is the recorded outcome for one habit on one date.
type LogStatus string

const (
	LogDone    LogStatus = "done"
	LogPartial LogStatus = "partial"
	LogSkip    LogStatus = "skip"
	LogNone    LogStatus = "none"
)

// HabitLog is one outcome record per (habit, calendar date) pair. Stores
// enforce at most one log per pair via upsert semantics.
type HabitLog struct {
	ID        string    `json:"id" yaml:"id" toml:"id" validate:"required,uuid4"`
	HabitID   string    `json:"habitId" yaml:"habitId" toml:"habitId" validate:"required,uuid4"`
	Date      string    `json:"date" yaml:"date" toml:"date" validate:"required,datetime=2006-01-02"`
	Status    LogStatus `json:"status" yaml:"status" toml:"status" validate:"required,oneof=done partial skip none"`
	Value     *float64  `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Note      string    `json:"note,omitempty" yaml:"note,omitempty" toml:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt" toml:"updatedAt"`
}

// DailyCapacity is a same-day override of the configured per-domain
// available-minutes default.
type DailyCapacity struct {
	Date    string `json:"date" yaml:"date" toml:"date" validate:"required,datetime=2006-01-02"`
	Domain  Domain `json:"domain" yaml:"domain" toml:"domain" validate:"required,oneof=life work"`
	Minutes int    `json:"minutes" yaml:"minutes" toml:"minutes" validate:"min=0"`
}

// NewHabit creates a habit with defaults applied.
func NewHabit(id, name string, schedule ScheduleType, startDate string) *Habit {
	return &Habit{
		ID:           id,
		Name:         name,
		ScheduleType: schedule,
		StartDate:    startDate,
		Type:         HabitCheck,
		CreatedAt:    time.Now(),
	}
}
