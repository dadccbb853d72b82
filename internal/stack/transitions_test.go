package stack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystacklabs/daystack/models"
	"github.com/daystacklabs/daystack/types"
)

func TestMarkDoneAndUndoRoundTrip(t *testing.T) {
	task := newTask(models.StatusInProgress)

	done := MarkDone(task, testNow)
	require.Equal(t, models.StatusDone, done.Status)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, testNow, *done.CompletedAt)

	revived := UndoCompletion(done, testNow.Add(time.Hour))
	assert.Equal(t, models.StatusBacklog, revived.Status)
	assert.Nil(t, revived.CompletedAt)
}

func TestArchivePreservesCompletedAt(t *testing.T) {
	completedAt := testNow.Add(-48 * time.Hour)
	task := newTask(models.StatusDone)
	task.CompletedAt = &completedAt

	archived := Archive(task, testNow)
	assert.Equal(t, models.StatusArchived, archived.Status)
	assert.Equal(t, completedAt, *archived.CompletedAt)
}

func TestArchiveActiveTaskStampsCompletedAt(t *testing.T) {
	archived := Archive(newTask(models.StatusBacklog), testNow)
	require.NotNil(t, archived.CompletedAt)
	assert.Equal(t, testNow, *archived.CompletedAt)
}

func TestUndoArchivedTaskLandsInBacklog(t *testing.T) {
	completedAt := testNow.Add(-time.Hour)
	task := newTask(models.StatusArchived)
	task.CompletedAt = &completedAt

	revived := UndoCompletion(task, testNow)
	assert.Equal(t, models.StatusBacklog, revived.Status)
	assert.Nil(t, revived.CompletedAt)
}

func TestPinOnlyFromBacklog(t *testing.T) {
	pinned := Pin(newTask(models.StatusBacklog), testNow)
	assert.Equal(t, models.StatusToday, pinned.Status)

	inProgress := Pin(newTask(models.StatusInProgress), testNow)
	assert.Equal(t, models.StatusInProgress, inProgress.Status)

	done := Pin(newTask(models.StatusDone), testNow)
	assert.Equal(t, models.StatusDone, done.Status)
}

func TestUnpinReturnsToBacklog(t *testing.T) {
	unpinned := Unpin(newTask(models.StatusToday), testNow)
	assert.Equal(t, models.StatusBacklog, unpinned.Status)

	untouched := Unpin(newTask(models.StatusPending), testNow)
	assert.Equal(t, models.StatusPending, untouched.Status)
}

func TestStartTransitions(t *testing.T) {
	for _, status := range []models.TaskStatus{models.StatusBacklog, models.StatusToday, models.StatusPending} {
		started := Start(newTask(status), testNow)
		assert.Equal(t, models.StatusInProgress, started.Status, "from %s", status)
	}

	done := Start(newTask(models.StatusDone), testNow)
	assert.Equal(t, models.StatusDone, done.Status)
}

func TestDeferParksUntilDate(t *testing.T) {
	until := testNow.Add(72 * time.Hour)
	deferred := Defer(newTask(models.StatusInProgress), until, testNow)

	require.Equal(t, models.StatusPending, deferred.Status)
	require.NotNil(t, deferred.NextActionAt)
	assert.Equal(t, until, *deferred.NextActionAt)
	assert.True(t, IsWaiting(deferred, testNow))
	assert.False(t, IsActionable(deferred, testNow))
}

func TestSweepDuePending(t *testing.T) {
	due := newTask(models.StatusPending)
	due.ID = "due"
	due.NextActionAt = timePtr(testNow.Add(-time.Hour))

	notDue := newTask(models.StatusPending)
	notDue.ID = "not-due"
	notDue.NextActionAt = timePtr(testNow.Add(time.Hour))

	backlog := newTask(models.StatusBacklog)
	backlog.ID = "backlog"

	swept, moved := SweepDuePending([]models.Task{due, notDue, backlog}, testNow)
	assert.Equal(t, 1, moved)
	assert.Equal(t, models.StatusBacklog, swept[0].Status)
	assert.Equal(t, models.StatusPending, swept[1].Status)
	assert.Equal(t, models.StatusBacklog, swept[2].Status)
}

func TestWaitingTasksOrderedBySoonest(t *testing.T) {
	later := newTask(models.StatusPending)
	later.ID = "later"
	later.NextActionAt = timePtr(testNow.Add(96 * time.Hour))

	sooner := newTask(models.StatusPending)
	sooner.ID = "sooner"
	sooner.NextActionAt = timePtr(testNow.Add(24 * time.Hour))

	work := newTask(models.StatusPending)
	work.ID = "work"
	work.Domain = models.DomainWork
	work.NextActionAt = timePtr(testNow.Add(24 * time.Hour))

	waiting := WaitingTasks([]models.Task{later, sooner, work}, models.DomainLife, testNow)
	assert.Equal(t, []string{"sooner", "later"}, taskIDs(waiting))
}

func TestPendingIsExactlyWaitingOrActionable(t *testing.T) {
	pending := newTask(models.StatusPending)
	for _, at := range []*time.Time{nil, timePtr(testNow.Add(-time.Hour)), timePtr(testNow.Add(time.Hour))} {
		pending.NextActionAt = at
		assert.NotEqual(t, IsWaiting(pending, testNow), IsActionable(pending, testNow))
	}
}

func TestResolveAvailableMinutes(t *testing.T) {
	cfg := types.CapacityConfig{Life: 90}
	override := &models.DailyCapacity{Date: "2026-03-10", Domain: models.DomainLife, Minutes: 45}

	assert.Equal(t, 45, ResolveAvailableMinutes(cfg, override, models.DomainLife, "2026-03-10"))

	// Stale override dates are ignored.
	assert.Equal(t, 90, ResolveAvailableMinutes(cfg, override, models.DomainLife, "2026-03-11"))

	// No configured default falls back to the fixed budget.
	assert.Equal(t, FallbackCapacityMinutes, ResolveAvailableMinutes(cfg, nil, models.DomainWork, "2026-03-10"))
}
