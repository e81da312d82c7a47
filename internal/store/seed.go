package store

import "github.com/sakethrapaka/remind/internal/model"

// seedTasks is the starter list written on a brand-new data directory, so
// the first `task list` is not an empty screen.
func seedTasks() []model.Task {
	return []model.Task{
		{
			ID:          "1",
			Title:       "Buy Medicine",
			Description: "Purchase aspirin and vitamin D supplements",
			Date:        "2026-01-22",
			Time:        "14:30",
			Category:    "medicine",
			CreatedAt:   "2026-01-20T10:00:00Z",
		},
		{
			ID:          "2",
			Title:       "Grocery Shopping",
			Description: "Buy vegetables, fruits, and milk",
			Date:        "2026-01-23",
			Time:        "10:00",
			Category:    "groceries",
			CreatedAt:   "2026-01-21T14:00:00Z",
		},
		{
			ID:          "3",
			Title:       "Doctor Appointment",
			Description: "Annual checkup at City Hospital",
			Date:        "2026-01-24",
			Time:        "09:00",
			Category:    "medical",
			CreatedAt:   "2026-01-19T08:00:00Z",
		},
	}
}
