package model

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"
)

// DefaultDuration is assumed for tasks that never had a duration set.
const DefaultDuration = 60

type Task struct {
	ID           string `json:"id"`
	SourceID     string `json:"source_id,omitempty"` // suggestion this task was instantiated from
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category"`
	Date         string `json:"date"`           // YYYY-MM-DD
	Time         string `json:"time,omitempty"` // HH:mm, empty for all-day
	Duration     int    `json:"duration,omitempty"`
	Location     string `json:"location,omitempty"`
	IsAllDay     bool   `json:"is_all_day,omitempty"`
	Repeat       string `json:"repeat,omitempty"` // once, daily, 2days, weekly
	Priority     string `json:"priority,omitempty"`
	Completed    bool   `json:"completed"`
	CreatedAt    string `json:"created_at,omitempty"`
	NotifyAt     string `json:"notify_at,omitempty"` // RFC3339
	NotifyBefore int    `json:"notify_before,omitempty"`
}

// DueTime combines date and time into the task's scheduled instant.
func (t Task) DueTime() (time.Time, error) {
	if t.Time == "" {
		return time.ParseInLocation("2006-01-02", t.Date, time.Local)
	}
	return time.ParseInLocation("2006-01-02 15:04", t.Date+" "+t.Time, time.Local)
}

// StartMinutes returns minutes since midnight, or -1 when the task has no
// time and belongs in list views only.
func (t Task) StartMinutes() int {
	if t.Time == "" {
		return -1
	}
	parsed, err := time.Parse("15:04", t.Time)
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// EffectiveDuration falls back to the 60-minute default for tasks that have
// no duration or a degenerate one.
func (t Task) EffectiveDuration() int {
	if t.Duration <= 0 {
		return DefaultDuration
	}
	return t.Duration
}

// Metadata is the legacy block older clients embedded in the description
// because the persisted shape had no dedicated fields for these values.
type Metadata struct {
	Location string `json:"location,omitempty"`
	Duration int    `json:"duration,omitempty"`
	IsAllDay bool   `json:"isAllDay,omitempty"`
	Repeat   string `json:"repeat,omitempty"`
	Priority string `json:"priority,omitempty"`
}

var metadataPattern = regexp.MustCompile(`<!-- metadata: (.+) -->`)

// ParseMetadata extracts the legacy metadata block from a description, if
// present and well formed.
func ParseMetadata(description string) (Metadata, bool) {
	match := metadataPattern.FindStringSubmatch(description)
	if match == nil {
		return Metadata{}, false
	}
	var meta Metadata
	if err := json.Unmarshal([]byte(match[1]), &meta); err != nil {
		return Metadata{}, false
	}
	return meta, true
}

// StripMetadata removes the metadata block so descriptions display clean.
func StripMetadata(description string) string {
	return strings.TrimSpace(metadataPattern.ReplaceAllString(description, ""))
}

// NormalizeLegacyMetadata promotes metadata-block values into the structured
// fields. Explicit field values win over the embedded block.
func (t *Task) NormalizeLegacyMetadata() {
	meta, ok := ParseMetadata(t.Description)
	if !ok {
		t.Description = StripMetadata(t.Description)
		return
	}
	if t.Location == "" {
		t.Location = meta.Location
	}
	if t.Duration == 0 {
		t.Duration = meta.Duration
	}
	if !t.IsAllDay {
		t.IsAllDay = meta.IsAllDay
	}
	if t.Repeat == "" {
		t.Repeat = meta.Repeat
	}
	if t.Priority == "" {
		t.Priority = meta.Priority
	}
	t.Description = StripMetadata(t.Description)
}
