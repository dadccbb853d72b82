package habit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeDatesWeek(t *testing.T) {
	dates := RangeDates(RangeWeek, "2026-03-11") // a Wednesday

	require.Len(t, dates, 7)
	assert.Equal(t, "2026-03-09", dates[0], "starts on Monday")
	assert.Equal(t, "2026-03-15", dates[6])
}

func TestRangeDatesWeekOnSunday(t *testing.T) {
	dates := RangeDates(RangeWeek, "2026-03-15")

	// Sunday belongs to the week that started the previous Monday.
	assert.Equal(t, "2026-03-09", dates[0])
}

func TestRangeDatesMonth(t *testing.T) {
	dates := RangeDates(RangeMonth, "2026-02-15")

	require.Len(t, dates, 28)
	assert.Equal(t, "2026-02-01", dates[0])
	assert.Equal(t, "2026-02-28", dates[27])
}

func TestRangeDatesThreeMonths(t *testing.T) {
	dates := RangeDates(RangeThreeMonths, "2026-03-11")

	require.Len(t, dates, 90)
	assert.Equal(t, "2026-03-11", dates[89], "ends at the anchor")
	assert.Equal(t, "2025-12-12", dates[0])
}

func TestRangeDatesRejectsMalformedAnchor(t *testing.T) {
	assert.Nil(t, RangeDates(RangeWeek, "yesterday"))
}

func TestMondayOf(t *testing.T) {
	monday := mustDay(t, "2026-03-09")
	for _, date := range []string{"2026-03-09", "2026-03-11", "2026-03-15"} {
		assert.Equal(t, monday, mondayOf(mustDay(t, date)), date)
	}
}
