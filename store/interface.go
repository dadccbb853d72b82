package store

import (
	"time"

	"github.com/daystacklabs/daystack/models"
)

// LogPatch carries the caller-supplied fields of a habit log upsert.
type LogPatch struct {
	Status models.LogStatus
	Value  *float64
	Note   string
}

// Store defines the interface for daystack persistence. It is the single
// writer the engine's mutating helpers are serialized through: two
// concurrent transitions on the same record must not race, and at most one
// habit log may exist per (habit, date) pair.
type Store interface {
	// Initialize configures the store with backend-specific settings such
	// as file path and data format. It must be called before any other
	// store operation.
	Initialize(config map[string]string) error

	// CreateTask adds a new task, assigning it an id and timestamps.
	CreateTask(task models.Task) (models.Task, error)

	// GetTask retrieves a task by id.
	GetTask(id string) (models.Task, error)

	// UpdateTask applies the given field updates to a task. The updates map
	// contains field names to their new values.
	UpdateTask(id string, updates map[string]interface{}) (models.Task, error)

	// DeleteTask removes a task by id.
	DeleteTask(id string) error

	// ListTasks retrieves tasks, optionally filtered and sorted.
	ListTasks(filterFn func(models.Task) bool, sortFn func([]models.Task) []models.Task) ([]models.Task, error)

	// MarkTaskDone completes a task: status done, completedAt set. When the
	// task is the last incomplete subtask of its parent, the parent is
	// completed too.
	MarkTaskDone(id string, now time.Time) (models.Task, error)

	// ArchiveTask moves a task to archived, preserving an existing
	// completedAt.
	ArchiveTask(id string, now time.Time) (models.Task, error)

	// UndoTask revives a done or archived task back to backlog and clears
	// completedAt.
	UndoTask(id string, now time.Time) (models.Task, error)

	// PinTask and UnpinTask move a task between backlog and the pinned
	// "today" tier.
	PinTask(id string, now time.Time) (models.Task, error)
	UnpinTask(id string, now time.Time) (models.Task, error)

	// StartTask moves a task to in-progress.
	StartTask(id string, now time.Time) (models.Task, error)

	// DeferTask parks a task as pending until nextActionAt.
	DeferTask(id string, nextActionAt, now time.Time) (models.Task, error)

	// SweepDuePending moves pending tasks whose nextActionAt has elapsed
	// back to backlog and returns how many it transitioned.
	SweepDuePending(now time.Time) (int, error)

	// CreateCategory adds a new category.
	CreateCategory(category models.Category) (models.Category, error)

	// GetCategory retrieves a category by id.
	GetCategory(id string) (models.Category, error)

	// ListCategories retrieves all categories.
	ListCategories() ([]models.Category, error)

	// CreateHabit adds a new habit.
	CreateHabit(habit models.Habit) (models.Habit, error)

	// GetHabit retrieves a habit by id.
	GetHabit(id string) (models.Habit, error)

	// ListHabits retrieves habits, excluding soft-archived ones unless
	// includeArchived is set.
	ListHabits(includeArchived bool) ([]models.Habit, error)

	// ArchiveHabit soft-archives a habit; its logs are retained.
	ArchiveHabit(id string, now time.Time) (models.Habit, error)

	// UpsertHabitLog records the outcome for one habit on one date,
	// overwriting any existing record for the pair.
	UpsertHabitLog(habitID, date string, patch LogPatch, now time.Time) (models.HabitLog, error)

	// ListHabitLogs returns a habit's logs keyed by date.
	ListHabitLogs(habitID string) (map[string]models.HabitLog, error)

	// Backup copies the current data file to the destination path.
	Backup(destinationPath string) error

	// Restore replaces the current data with the contents of the source
	// path. Destructive to current data.
	Restore(sourcePath string) error

	// Close releases resources held by the store, such as file locks.
	Close() error
}
