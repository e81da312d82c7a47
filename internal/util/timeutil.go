package util

import "time"

// IsWithinDateRange reports whether a YYYY-MM-DD date falls inside an
// optional from/to range. Empty bounds do not filter.
func IsWithinDateRange(date string, fromDate, toDate string) bool {
	if fromDate == "" && toDate == "" {
		return true
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}

	if fromDate != "" {
		fromTime, err := time.Parse("2006-01-02", fromDate)
		if err == nil && parsed.Before(fromTime) {
			return false
		}
	}

	if toDate != "" {
		toTime, err := time.Parse("2006-01-02", toDate)
		if err == nil && parsed.After(toTime) {
			return false
		}
	}

	return true
}

// Greeting picks the salutation for the hour of day.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Good Morning"
	case hour < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
