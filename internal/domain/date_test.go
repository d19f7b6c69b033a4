package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
)

func TestParseDate_Valid(t *testing.T) {
	got, err := domain.ParseDate("2026-03-10")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2026-3-10", "10/03/2026", "2026-02-30"} {
		_, err := domain.ParseDate(s)
		assert.ErrorIs(t, err, domain.ErrValidation, "input %q", s)
	}
}

func TestAddDays_CrossesMonthAndYear(t *testing.T) {
	got, err := domain.AddDays("2025-12-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", got)

	got, err = domain.AddDays("2024-02-28", 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got, "leap day")
}

func TestDaysBetween(t *testing.T) {
	start, _ := domain.ParseDate("2026-03-10")
	end, _ := domain.ParseDate("2026-03-12")

	assert.Equal(t, 2, domain.DaysBetween(start, end))
	assert.Equal(t, 0, domain.DaysBetween(start, start))
	assert.Equal(t, -2, domain.DaysBetween(end, start))
}
