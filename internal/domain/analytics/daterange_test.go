package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/analytics"
)

func TestParseDateRange(t *testing.T) {
	r, err := analytics.ParseDateRange("")
	require.NoError(t, err)
	assert.Equal(t, analytics.ThisMonth, r)

	r, err = analytics.ParseDateRange("last_quarter")
	require.NoError(t, err)
	assert.Equal(t, "Last Quarter", r.Label())

	_, err = analytics.ParseDateRange("forever")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBounds(t *testing.T) {
	// miércoles 14 de mayo de 2025
	now := time.Date(2025, time.May, 14, 15, 30, 0, 0, time.UTC)
	day := func(y int, m time.Month, dd int) time.Time { return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC) }

	start, end := analytics.ThisWeek.Bounds(now)
	assert.Equal(t, day(2025, time.May, 12), start, "la semana empieza el lunes")
	assert.Equal(t, day(2025, time.May, 15), end)

	start, end = analytics.LastMonth.Bounds(now)
	assert.Equal(t, day(2025, time.April, 1), start)
	assert.Equal(t, day(2025, time.May, 1), end)

	start, end = analytics.LastQuarter.Bounds(now)
	assert.Equal(t, day(2025, time.January, 1), start)
	assert.Equal(t, day(2025, time.April, 1), end)

	start, _ = analytics.Last7Days.Bounds(now)
	assert.Equal(t, day(2025, time.May, 8), start)
}
