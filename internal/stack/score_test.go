package stack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daystacklabs/daystack/models"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) // a Tuesday

func newTask(status models.TaskStatus) models.Task {
	return models.Task{
		ID:        "t1",
		Title:     "test task",
		Domain:    models.DomainLife,
		Status:    status,
		Priority:  3,
		CreatedAt: testNow.Add(-24 * time.Hour),
		UpdatedAt: testNow.Add(-24 * time.Hour),
	}
}

func intPtr(v int) *int             { return &v }
func floatPtr(v float64) *float64   { return &v }
func timePtr(t time.Time) *time.Time { return &t }

func TestScoreTaskExcludesNonActionable(t *testing.T) {
	done := newTask(models.StatusDone)
	assert.Equal(t, float64(Excluded), ScoreTask(done, "", 120, testNow))

	archived := newTask(models.StatusArchived)
	assert.Equal(t, float64(Excluded), ScoreTask(archived, "", 120, testNow))

	waiting := newTask(models.StatusPending)
	waiting.NextActionAt = timePtr(testNow.Add(48 * time.Hour))
	assert.Equal(t, float64(Excluded), ScoreTask(waiting, "", 120, testNow))

	duePending := newTask(models.StatusPending)
	duePending.NextActionAt = timePtr(testNow.Add(-time.Hour))
	assert.GreaterOrEqual(t, ScoreTask(duePending, "", 120, testNow), 0.0)
}

func TestScoreTaskExcludesBlocked(t *testing.T) {
	blocked := newTask(models.StatusBacklog)
	blocked.BlockedBy = []string{"other"}
	assert.Equal(t, float64(Excluded), ScoreTask(blocked, models.KindLegal, 120, testNow))
}

func TestScoreTaskExcludesOverBudget(t *testing.T) {
	big := newTask(models.StatusBacklog)
	big.EstimateMinutes = intPtr(60)
	assert.Equal(t, float64(Excluded), ScoreTask(big, "", 30, testNow))

	// A zero remaining budget does not trigger the exclusion.
	assert.GreaterOrEqual(t, ScoreTask(big, "", 0, testNow), 0.0)
}

func TestScoreTaskCategoryWeightOrdering(t *testing.T) {
	task := newTask(models.StatusBacklog)
	legal := ScoreTask(task, models.KindLegal, 120, testNow)
	money := ScoreTask(task, models.KindMoney, 120, testNow)
	maintenance := ScoreTask(task, models.KindMaintenance, 120, testNow)
	caregiver := ScoreTask(task, models.KindCaregiver, 120, testNow)
	unknown := ScoreTask(task, "hobby", 120, testNow)

	assert.Greater(t, legal, money)
	assert.Greater(t, money, maintenance)
	assert.Greater(t, maintenance, caregiver)
	assert.Greater(t, caregiver, unknown)
	assert.Equal(t, 40.0, legal-unknown)
	assert.Equal(t, 30.0, money-unknown)
	assert.Equal(t, 10.0, maintenance-unknown)
	assert.Equal(t, 5.0, caregiver-unknown)
}

func TestScoreTaskDueDateUrgency(t *testing.T) {
	base := ScoreTask(newTask(models.StatusBacklog), "", 120, testNow)

	urgent := newTask(models.StatusBacklog)
	urgent.DueDate = timePtr(testNow.Add(48 * time.Hour))
	assert.Equal(t, base+35, ScoreTask(urgent, "", 120, testNow))

	overdue := newTask(models.StatusBacklog)
	overdue.DueDate = timePtr(testNow.Add(-96 * time.Hour))
	assert.Equal(t, base+35, ScoreTask(overdue, "", 120, testNow))

	soon := newTask(models.StatusBacklog)
	soon.DueDate = timePtr(testNow.Add(5 * 24 * time.Hour))
	assert.Equal(t, base+25, ScoreTask(soon, "", 120, testNow))

	distant := newTask(models.StatusBacklog)
	distant.DueDate = timePtr(testNow.Add(10 * 24 * time.Hour))
	assert.Equal(t, base, ScoreTask(distant, "", 120, testNow))
}

func TestScoreTaskSoftDeadline(t *testing.T) {
	base := ScoreTask(newTask(models.StatusBacklog), "", 120, testNow)

	soft := newTask(models.StatusBacklog)
	soft.SoftDeadline = timePtr(testNow.Add(6 * 24 * time.Hour))
	assert.Equal(t, base+15, ScoreTask(soft, "", 120, testNow))

	// Soft and hard deadlines stack.
	both := newTask(models.StatusBacklog)
	both.DueDate = timePtr(testNow.Add(24 * time.Hour))
	both.SoftDeadline = timePtr(testNow.Add(24 * time.Hour))
	assert.Equal(t, base+35+15, ScoreTask(both, "", 120, testNow))
}

func TestScoreTaskMomentum(t *testing.T) {
	base := ScoreTask(newTask(models.StatusBacklog), "", 120, testNow)
	inProgress := ScoreTask(newTask(models.StatusInProgress), "", 120, testNow)
	pinned := ScoreTask(newTask(models.StatusToday), "", 120, testNow)

	assert.Equal(t, base+20, inProgress)
	assert.Equal(t, base+50, pinned)
}

func TestScoreTaskQuickWinBias(t *testing.T) {
	quick := newTask(models.StatusBacklog)
	quick.EstimateMinutes = intPtr(15)
	medium := newTask(models.StatusBacklog)
	medium.EstimateMinutes = intPtr(30)
	long := newTask(models.StatusBacklog)
	long.EstimateMinutes = intPtr(45)

	longScore := ScoreTask(long, "", 120, testNow)
	assert.Equal(t, longScore+12, ScoreTask(quick, "", 120, testNow))
	assert.Equal(t, longScore+8, ScoreTask(medium, "", 120, testNow))

	// No estimate scores as a medium task, not a quick win.
	unsized := newTask(models.StatusBacklog)
	assert.Equal(t, longScore+8, ScoreTask(unsized, "", 120, testNow))
}

func TestScoreTaskMoneyImpact(t *testing.T) {
	base := ScoreTask(newTask(models.StatusBacklog), "", 120, testNow)

	small := newTask(models.StatusBacklog)
	small.MoneyImpact = floatPtr(100)
	assert.Equal(t, base+5, ScoreTask(small, "", 120, testNow))

	capped := newTask(models.StatusBacklog)
	capped.MoneyImpact = floatPtr(10000)
	assert.Equal(t, base+20, ScoreTask(capped, "", 120, testNow))

	negative := newTask(models.StatusBacklog)
	negative.MoneyImpact = floatPtr(-500)
	assert.Equal(t, base, ScoreTask(negative, "", 120, testNow))
}
