// Package schedule computes week-grid geometry for calendar views: column
// packing for overlapping events, pointer-to-grid coordinate math, and the
// drag gesture state machine that turns pointer input into task mutations.
package schedule

import "time"

// Quantum is the grid rounding unit in minutes.
const Quantum = 15

// DayMinutes is the number of minutes in a grid day.
const DayMinutes = 24 * 60

// Metrics describes the rendered grid so pointer coordinates can be mapped
// back to days and minutes.
type Metrics struct {
	HourHeight int // vertical units per hour
	GridWidth  int // horizontal units across all day columns
	Days       int // number of day columns, 7 for a week
}

// MinutesAtY converts a vertical offset into minutes since midnight,
// clamped to the day.
func (m Metrics) MinutesAtY(y int) int {
	if m.HourHeight <= 0 {
		return 0
	}
	minutes := y * 60 / m.HourHeight
	return clamp(minutes, 0, DayMinutes-1)
}

// DayAtX converts a horizontal offset into a day index, clamped to the
// visible columns.
func (m Metrics) DayAtX(x int) int {
	if m.GridWidth <= 0 || m.Days <= 0 {
		return 0
	}
	day := x * m.Days / m.GridWidth
	return clamp(day, 0, m.Days-1)
}

// Snap rounds minutes to the nearest grid quantum.
func Snap(minutes int) int {
	rounded := (minutes + Quantum/2) / Quantum * Quantum
	if minutes < 0 {
		rounded = (minutes - Quantum/2) / Quantum * Quantum
	}
	return rounded
}

// WeekStart returns the Monday of the week containing t, at midnight.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// DateOfDay returns the YYYY-MM-DD date of a day column within the week
// starting at weekStart.
func DateOfDay(weekStart time.Time, day int) string {
	return weekStart.AddDate(0, 0, day).Format("2006-01-02")
}

// DayOfDate returns the day column of a date within the displayed week, or
// -1 when the date falls outside it.
func DayOfDate(weekStart time.Time, date string) int {
	parsed, err := time.ParseInLocation("2006-01-02", date, weekStart.Location())
	if err != nil {
		return -1
	}
	days := int(parsed.Sub(weekStart).Hours() / 24)
	if days < 0 || days > 6 {
		return -1
	}
	return days
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
