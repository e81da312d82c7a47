// Package category guesses a task category from its free text.
package category

import "strings"

// Default is used when no keyword group matches.
const Default = "general"

// keywordGroups are tested in order; the first group with a hit wins.
var keywordGroups = []struct {
	name     string
	keywords []string
}{
	{"medicine", []string{"medicine", "pill", "drug", "pharmacy", "prescription", "vitamin"}},
	{"groceries", []string{"grocery", "vegetables", "fruits", "milk", "shopping", "food"}},
	{"medical", []string{"doctor", "hospital", "clinic", "checkup", "appointment"}},
	{"fitness", []string{"gym", "exercise", "workout", "run", "walk"}},
}

// Detect returns the best-guess category for a task's title and description.
func Detect(text string) string {
	text = strings.ToLower(text)
	for _, group := range keywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return group.name
			}
		}
	}
	return Default
}

// Known lists the categories users can pick directly.
func Known() []string {
	return []string{"medicine", "groceries", "medical", "fitness", Default}
}
