package build_timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateAxis_IndexRoundTrip(t *testing.T) {
	axis := newDateAxis(day(2025, 10, 1), 14)

	assert.Equal(t, 14, axis.dayCount())
	for i := 0; i < axis.dayCount(); i++ {
		assert.Equal(t, i, axis.indexOf(axis.day(i)))
	}
}

func TestDateAxis_IndexIgnoresTimeOfDay(t *testing.T) {
	axis := newDateAxis(day(2025, 10, 1), 7)

	evening := time.Date(2025, 10, 3, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 2, axis.indexOf(evening))
}

func TestDateAxis_IndexOutsideWindowIsMinusOne(t *testing.T) {
	axis := newDateAxis(day(2025, 10, 1), 7)

	assert.Equal(t, -1, axis.indexOf(day(2025, 9, 30)))
	assert.Equal(t, -1, axis.indexOf(day(2025, 10, 8)))
}

func TestDateAxis_WindowBounds(t *testing.T) {
	axis := newDateAxis(day(2025, 10, 1), 7)

	assert.Equal(t, day(2025, 10, 1), axis.windowStart())
	// Эксклюзивная граница: день после последней колонки
	assert.Equal(t, day(2025, 10, 8), axis.windowEnd())
}

func TestDateAxis_StartNormalizedToMidnight(t *testing.T) {
	noon := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	axis := newDateAxis(noon, 3)

	assert.Equal(t, day(2025, 10, 1), axis.windowStart())
}
