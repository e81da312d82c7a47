package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinutesAtY(t *testing.T) {
	m := Metrics{HourHeight: 2, GridWidth: 70, Days: 7}

	assert.Equal(t, 0, m.MinutesAtY(0))
	assert.Equal(t, 30, m.MinutesAtY(1))
	assert.Equal(t, 540, m.MinutesAtY(18)) // 09:00

	// Clamped to the day on both ends.
	assert.Equal(t, 0, m.MinutesAtY(-5))
	assert.Equal(t, DayMinutes-1, m.MinutesAtY(1000))
}

func TestDayAtX(t *testing.T) {
	m := Metrics{HourHeight: 2, GridWidth: 70, Days: 7}

	assert.Equal(t, 0, m.DayAtX(0))
	assert.Equal(t, 0, m.DayAtX(9))
	assert.Equal(t, 1, m.DayAtX(10))
	assert.Equal(t, 6, m.DayAtX(69))

	assert.Equal(t, 0, m.DayAtX(-3))
	assert.Equal(t, 6, m.DayAtX(700))
}

func TestSnapRoundsToNearestQuantum(t *testing.T) {
	assert.Equal(t, 0, Snap(0))
	assert.Equal(t, 0, Snap(7))
	assert.Equal(t, 15, Snap(8))
	assert.Equal(t, 555, Snap(550))
	assert.Equal(t, 60, Snap(61))
	assert.Equal(t, 75, Snap(70))

	// Negative deltas snap symmetrically.
	assert.Equal(t, 0, Snap(-7))
	assert.Equal(t, -15, Snap(-8))
	assert.Equal(t, -30, Snap(-30))
}

func TestWeekStartIsMondayMidnight(t *testing.T) {
	// 2026-01-22 is a Thursday.
	thursday := time.Date(2026, 1, 22, 15, 42, 0, 0, time.Local)
	start := WeekStart(thursday)

	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, "2026-01-19", start.Format("2006-01-02"))
	assert.Equal(t, 0, start.Hour())

	// Sunday belongs to the week that began the previous Monday.
	sunday := time.Date(2026, 1, 25, 8, 0, 0, 0, time.Local)
	assert.Equal(t, "2026-01-19", WeekStart(sunday).Format("2006-01-02"))

	// A Monday is its own week start.
	monday := time.Date(2026, 1, 19, 23, 59, 0, 0, time.Local)
	assert.Equal(t, "2026-01-19", WeekStart(monday).Format("2006-01-02"))
}

func TestDateOfDayAndDayOfDateRoundTrip(t *testing.T) {
	weekStart := time.Date(2026, 1, 19, 0, 0, 0, 0, time.Local)

	for day := 0; day < 7; day++ {
		date := DateOfDay(weekStart, day)
		assert.Equal(t, day, DayOfDate(weekStart, date))
	}

	assert.Equal(t, "2026-01-19", DateOfDay(weekStart, 0))
	assert.Equal(t, "2026-01-25", DateOfDay(weekStart, 6))
}

func TestDayOfDateOutsideWeek(t *testing.T) {
	weekStart := time.Date(2026, 1, 19, 0, 0, 0, 0, time.Local)

	assert.Equal(t, -1, DayOfDate(weekStart, "2026-01-18"))
	assert.Equal(t, -1, DayOfDate(weekStart, "2026-01-26"))
	assert.Equal(t, -1, DayOfDate(weekStart, "not-a-date"))
}
