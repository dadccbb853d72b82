package stack

import (
	"time"

	"github.com/daystacklabs/daystack/models"
)

// Task status transitions, expressed as pure functions from task value to
// task value so the host's storage layer stays the single writer. Each
// helper touches only the fields named in its doc comment.

// MarkDone completes a task: status done, completedAt set to now.
func MarkDone(t models.Task, now time.Time) models.Task {
	t.Status = models.StatusDone
	t.CompletedAt = &now
	t.UpdatedAt = now
	return t
}

// Archive moves a task to archived. An existing completedAt is preserved;
// an archive straight from an active status sets it to now.
func Archive(t models.Task, now time.Time) models.Task {
	t.Status = models.StatusArchived
	if t.CompletedAt == nil {
		t.CompletedAt = &now
	}
	t.UpdatedAt = now
	return t
}

// UndoCompletion revives a done or archived task. The task always lands in
// backlog, never back in today or pending: undo must not re-pin a task the
// user no longer intends to prioritize, nor re-trigger wait logic.
func UndoCompletion(t models.Task, now time.Time) models.Task {
	t.Status = models.StatusBacklog
	t.CompletedAt = nil
	t.UpdatedAt = now
	return t
}

// Pin promotes a backlog task into the pinned tier. Idempotent on an
// already-pinned task; any other status is left untouched.
func Pin(t models.Task, now time.Time) models.Task {
	if t.Status != models.StatusBacklog {
		return t
	}
	t.Status = models.StatusToday
	t.UpdatedAt = now
	return t
}

// Unpin returns a pinned task to backlog.
func Unpin(t models.Task, now time.Time) models.Task {
	if t.Status != models.StatusToday {
		return t
	}
	t.Status = models.StatusBacklog
	t.UpdatedAt = now
	return t
}

// Start moves a backlog, pinned, or pending task to in-progress.
func Start(t models.Task, now time.Time) models.Task {
	switch t.Status {
	case models.StatusBacklog, models.StatusToday, models.StatusPending:
		t.Status = models.StatusInProgress
		t.UpdatedAt = now
	}
	return t
}

// Defer parks a task until nextActionAt. Allowed from any status; the task
// becomes waiting and drops out of the actionable pool until the date
// elapses.
func Defer(t models.Task, nextActionAt, now time.Time) models.Task {
	t.Status = models.StatusPending
	t.NextActionAt = &nextActionAt
	t.UpdatedAt = now
	return t
}

// SweepDuePending moves every pending task whose nextActionAt has elapsed
// back to backlog and reports how many it transitioned. The host runs this
// before each stack build so newly actionable tasks are eligible.
func SweepDuePending(tasks []models.Task, now time.Time) ([]models.Task, int) {
	transitioned := 0
	for i, t := range tasks {
		if t.Status != models.StatusPending || t.NextActionAt == nil || t.NextActionAt.After(now) {
			continue
		}
		t.Status = models.StatusBacklog
		t.UpdatedAt = now
		tasks[i] = t
		transitioned++
	}
	return tasks, transitioned
}
