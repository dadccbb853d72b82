package stack

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daystacklabs/daystack/models"
)

var testCategories = []models.Category{
	{ID: "cat-legal", Name: "Legal", Domain: models.DomainLife, Kind: models.KindLegal},
	{ID: "cat-money", Name: "Money", Domain: models.DomainLife, Kind: models.KindMoney},
	{ID: "cat-maint", Name: "Maintenance", Domain: models.DomainLife, Kind: models.KindMaintenance},
	{ID: "cat-care", Name: "Caregiver", Domain: models.DomainLife, Kind: models.KindCaregiver},
}

func poolTask(id, categoryID string, estimate int) models.Task {
	t := newTask(models.StatusBacklog)
	t.ID = id
	t.Title = id
	t.CategoryID = categoryID
	if estimate > 0 {
		t.EstimateMinutes = intPtr(estimate)
	}
	return t
}

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func TestBuildSplitRespectsMaxTasks(t *testing.T) {
	var pool []models.Task
	kinds := []string{"cat-legal", "cat-money", "cat-maint", "cat-care"}
	for i := 0; i < 8; i++ {
		pool = append(pool, poolTask(fmt.Sprintf("t%d", i), kinds[i/2], 10))
	}

	split := BuildSplit(pool, testCategories, models.DomainLife, 1000, 5, testNow)
	assert.Empty(t, split.Pinned)
	assert.Len(t, split.Suggested, 5)
}

func TestBuildSplitBudgetSkipsThenBackfills(t *testing.T) {
	a := poolTask("a", "cat-legal", 20)
	b := poolTask("b", "cat-money", 20)
	c := poolTask("c", "cat-maint", 10)

	split := BuildSplit([]models.Task{a, b, c}, testCategories, models.DomainLife, 30, 5, testNow)

	// a fills 20 of the 30 minutes; b would overflow, c still fits.
	assert.Equal(t, []string{"a", "c"}, taskIDs(split.Suggested))
}

func TestBuildSplitFirstSuggestedBypassesBudget(t *testing.T) {
	pinned := poolTask("pinned", "", 50)
	pinned.Status = models.StatusToday
	big := poolTask("big", "cat-legal", 40)

	split := BuildSplit([]models.Task{pinned, big}, testCategories, models.DomainLife, 60, 5, testNow)

	require.Equal(t, []string{"pinned"}, taskIDs(split.Pinned))
	// Only 10 minutes remain after the pin, but the first suggested task
	// is admitted regardless.
	assert.Equal(t, []string{"big"}, taskIDs(split.Suggested))
}

func TestBuildSplitPinnedBypassesEverything(t *testing.T) {
	var pool []models.Task
	for i := 0; i < 3; i++ {
		p := poolTask(fmt.Sprintf("pin%d", i), "cat-legal", 40)
		p.Status = models.StatusToday
		p.BlockedBy = []string{"some-other-task"}
		pool = append(pool, p)
	}

	split := BuildSplit(pool, testCategories, models.DomainLife, 30, 5, testNow)

	// Three same-kind, blocked, over-budget pins all survive, in order.
	assert.Equal(t, []string{"pin0", "pin1", "pin2"}, taskIDs(split.Pinned))
	assert.Empty(t, split.Suggested)
}

func TestBuildSplitPinnedCappedAtMaxTasks(t *testing.T) {
	var pool []models.Task
	for i := 0; i < 6; i++ {
		p := poolTask(fmt.Sprintf("pin%d", i), "", 10)
		p.Status = models.StatusToday
		pool = append(pool, p)
	}

	split := BuildSplit(pool, testCategories, models.DomainLife, 120, 5, testNow)
	assert.Len(t, split.Pinned, 5)
	assert.Empty(t, split.Suggested)
}

func TestBuildSplitDiversityCap(t *testing.T) {
	pool := []models.Task{
		poolTask("legal1", "cat-legal", 10),
		poolTask("legal2", "cat-legal", 10),
		poolTask("legal3", "cat-legal", 10),
		poolTask("legal4", "cat-legal", 10),
		poolTask("care1", "cat-care", 10),
	}

	split := BuildSplit(pool, testCategories, models.DomainLife, 1000, 3, testNow)

	// The pool exceeds the open slots, so at most two legal tasks enter
	// and the caregiver task takes the third slot.
	assert.Equal(t, []string{"legal1", "legal2", "care1"}, taskIDs(split.Suggested))
}

func TestBuildSplitDiversityWaivedForSmallPool(t *testing.T) {
	pool := []models.Task{
		poolTask("legal1", "cat-legal", 10),
		poolTask("legal2", "cat-legal", 10),
		poolTask("legal3", "cat-legal", 10),
	}

	split := BuildSplit(pool, testCategories, models.DomainLife, 1000, 5, testNow)

	// Three candidates for five slots: the per-kind cap does not apply.
	assert.Len(t, split.Suggested, 3)
}

func TestBuildSplitFiltersDomain(t *testing.T) {
	life := poolTask("life", "cat-legal", 10)
	work := poolTask("work", "cat-legal", 10)
	work.Domain = models.DomainWork

	split := BuildSplit([]models.Task{life, work}, testCategories, models.DomainLife, 120, 5, testNow)
	assert.Equal(t, []string{"life"}, taskIDs(split.Suggested))
}

func TestBuildSplitOrdersByScore(t *testing.T) {
	legal := poolTask("legal", "cat-legal", 10)
	care := poolTask("care", "cat-care", 10)
	urgentCare := poolTask("urgent-care", "cat-care", 10)
	urgentCare.DueDate = timePtr(testNow.Add(24 * time.Hour))

	split := BuildSplit([]models.Task{care, legal, urgentCare}, testCategories, models.DomainLife, 120, 5, testNow)

	// urgent-care: 5 + 35 + 12 = 52, legal: 40 + 12 = 52 (stable tie keeps
	// input order), care: 5 + 12 = 17.
	assert.Equal(t, []string{"legal", "urgent-care", "care"}, taskIDs(split.Suggested))
}

func TestBuildSplitEndToEnd(t *testing.T) {
	legal := poolTask("legal", "cat-legal", 10)
	legal.DueDate = timePtr(testNow.Add(48 * time.Hour))
	money := poolTask("money", "cat-money", 10)
	maintenance := poolTask("maintenance", "cat-maint", 10)
	pool := []models.Task{maintenance, money, legal}

	// At 30 minutes everything fits, ordered by weight and urgency.
	split := BuildSplit(pool, testCategories, models.DomainLife, 30, 5, testNow)
	assert.Equal(t, []string{"legal", "money", "maintenance"}, taskIDs(split.Suggested))

	// At 15 minutes the legal task consumes 10 and nothing else fits.
	split = BuildSplit(pool, testCategories, models.DomainLife, 15, 5, testNow)
	assert.Equal(t, []string{"legal"}, taskIDs(split.Suggested))
}

func TestBuildTasksMergesPinnedFirst(t *testing.T) {
	pin := poolTask("pin", "", 10)
	pin.Status = models.StatusToday
	suggestion := poolTask("suggestion", "cat-legal", 10)

	merged := Build([]models.Task{suggestion, pin}, testCategories, models.DomainLife, 120, 5, testNow)
	assert.Equal(t, []string{"pin", "suggestion"}, taskIDs(merged))
}
