package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "JAN 2026", MonthLabel(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "DEC 2025", MonthLabel(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseMonthLabelAcceptsAnyCasing(t *testing.T) {
	for _, label := range []string{"JAN 2026", "Jan 2026", "jan 2026", " JAN 2026 "} {
		got, err := ParseMonthLabel(label)
		require.NoError(t, err, label)
		assert.Equal(t, time.January, got.Month())
		assert.Equal(t, 2026, got.Year())
	}
}

func TestParseMonthLabelRejectsGarbage(t *testing.T) {
	for _, label := range []string{"", "JANUARY 2026", "13 2026", "JAN26"} {
		_, err := ParseMonthLabel(label)
		assert.Error(t, err, label)
	}
}

func TestAddMonths(t *testing.T) {
	got, err := AddMonths("JAN 2026", 1)
	require.NoError(t, err)
	assert.Equal(t, "FEB 2026", got)

	got, err = AddMonths("JAN 2026", -1)
	require.NoError(t, err)
	assert.Equal(t, "DEC 2025", got)
}

func TestExpandMonthRange(t *testing.T) {
	labels, err := ExpandMonthRange("NOV 2025", "FEB 2026")
	require.NoError(t, err)
	assert.Equal(t, []string{"NOV 2025", "DEC 2025", "JAN 2026", "FEB 2026"}, labels)

	labels, err = ExpandMonthRange("JAN 2026", "JAN 2026")
	require.NoError(t, err)
	assert.Equal(t, []string{"JAN 2026"}, labels)

	_, err = ExpandMonthRange("FEB 2026", "JAN 2026")
	assert.Error(t, err)
}

func TestFinancialYearStart(t *testing.T) {
	// default window starts in April
	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), FinancialYearStart(jan, 0))

	may := time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), FinancialYearStart(may, 0))

	// calendar-year window
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), FinancialYearStart(jan, 1))
}
