package model

// QuickAddSuggestions are the one-action templates a user can instantiate.
// Instantiated copies point back at the template via SourceID.
var QuickAddSuggestions = []Task{
	{
		ID:          "q1",
		Title:       "Morning Medication",
		Description: "Take daily vitamins",
		Time:        "08:00",
		Category:    "medicine",
	},
	{
		ID:          "q2",
		Title:       "Grocery Shopping",
		Description: "Weekly grocery shopping",
		Time:        "10:00",
		Category:    "groceries",
	},
	{
		ID:          "q3",
		Title:       "Evening Walk",
		Description: "30 minutes walk",
		Time:        "18:00",
		Category:    "fitness",
	},
}

// SuggestionByID looks up a quick-add template.
func SuggestionByID(id string) (Task, bool) {
	for _, s := range QuickAddSuggestions {
		if s.ID == id {
			return s, true
		}
	}
	return Task{}, false
}
