/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daystacklabs/daystack/internal/habit"
	"github.com/daystacklabs/daystack/models"
)

func TestParseDomain(t *testing.T) {
	domain, err := parseDomain("")
	assert.NoError(t, err)
	assert.Equal(t, models.DomainLife, domain, "empty defaults to life")

	domain, err = parseDomain("work")
	assert.NoError(t, err)
	assert.Equal(t, models.DomainWork, domain)

	_, err = parseDomain("hobby")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	for value, want := range map[string]habit.Range{
		"":             habit.RangeWeek,
		"week":         habit.RangeWeek,
		"month":        habit.RangeMonth,
		"quarter":      habit.RangeThreeMonths,
		"three-months": habit.RangeThreeMonths,
		"90d":          habit.RangeThreeMonths,
	} {
		got, err := parseRange(value)
		assert.NoError(t, err, value)
		assert.Equal(t, want, got, value)
	}

	_, err := parseRange("fortnight")
	assert.Error(t, err)
}

func TestParseWeekdays(t *testing.T) {
	days, err := parseWeekdays("1, 3,5")
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, days)

	_, err = parseWeekdays("")
	assert.Error(t, err)

	_, err = parseWeekdays("7")
	assert.Error(t, err)

	_, err = parseWeekdays("mon")
	assert.Error(t, err)
}

func TestParseDateIsEndOfDay(t *testing.T) {
	d, err := parseDate("2026-03-10")
	assert.NoError(t, err)
	assert.Equal(t, 23, d.Hour())
	assert.Equal(t, 59, d.Minute())
	assert.Equal(t, 10, d.Day())
}
