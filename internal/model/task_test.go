package model

import (
	"testing"
	"time"
)

func TestDueTime(t *testing.T) {
	task := Task{Date: "2026-01-22", Time: "14:30"}
	due, err := task.DueTime()
	if err != nil {
		t.Fatalf("due time: %v", err)
	}
	want := time.Date(2026, 1, 22, 14, 30, 0, 0, time.Local)
	if !due.Equal(want) {
		t.Fatalf("expected %v, got %v", want, due)
	}

	// All-day tasks are due at midnight.
	allDay := Task{Date: "2026-01-22"}
	due, err = allDay.DueTime()
	if err != nil {
		t.Fatalf("all-day due time: %v", err)
	}
	if due.Hour() != 0 || due.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", due)
	}
}

func TestStartMinutes(t *testing.T) {
	if got := (Task{Time: "09:15"}).StartMinutes(); got != 555 {
		t.Fatalf("expected 555, got %d", got)
	}
	if got := (Task{}).StartMinutes(); got != -1 {
		t.Fatalf("expected -1 for missing time, got %d", got)
	}
	if got := (Task{Time: "25:99"}).StartMinutes(); got != -1 {
		t.Fatalf("expected -1 for malformed time, got %d", got)
	}
}

func TestEffectiveDuration(t *testing.T) {
	if got := (Task{Duration: 45}).EffectiveDuration(); got != 45 {
		t.Fatalf("expected 45, got %d", got)
	}
	if got := (Task{}).EffectiveDuration(); got != DefaultDuration {
		t.Fatalf("expected default, got %d", got)
	}
	if got := (Task{Duration: -10}).EffectiveDuration(); got != DefaultDuration {
		t.Fatalf("expected default for negative duration, got %d", got)
	}
}

func TestParseMetadata(t *testing.T) {
	description := "Pick up order\n<!-- metadata: {\"location\":\"Fresh Mart\",\"duration\":45,\"priority\":\"high\"} -->"

	meta, ok := ParseMetadata(description)
	if !ok {
		t.Fatalf("expected metadata block to parse")
	}
	if meta.Location != "Fresh Mart" || meta.Duration != 45 || meta.Priority != "high" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}

	if _, ok := ParseMetadata("no block here"); ok {
		t.Fatalf("expected no metadata without a block")
	}
	if _, ok := ParseMetadata("<!-- metadata: {broken -->"); ok {
		t.Fatalf("expected malformed block to be rejected")
	}
}

func TestStripMetadata(t *testing.T) {
	description := "Pick up order\n<!-- metadata: {\"duration\":45} -->"
	if got := StripMetadata(description); got != "Pick up order" {
		t.Fatalf("expected clean description, got %q", got)
	}
	if got := StripMetadata("plain text"); got != "plain text" {
		t.Fatalf("expected plain text untouched, got %q", got)
	}
}

func TestNormalizeLegacyMetadataExplicitFieldsWin(t *testing.T) {
	task := Task{
		Description: "Gym\n<!-- metadata: {\"location\":\"Old Gym\",\"duration\":90,\"repeat\":\"weekly\"} -->",
		Location:    "New Gym",
	}
	task.NormalizeLegacyMetadata()

	if task.Location != "New Gym" {
		t.Fatalf("explicit location overwritten: %q", task.Location)
	}
	if task.Duration != 90 {
		t.Fatalf("expected duration promoted, got %d", task.Duration)
	}
	if task.Repeat != "weekly" {
		t.Fatalf("expected repeat promoted, got %q", task.Repeat)
	}
	if task.Description != "Gym" {
		t.Fatalf("expected block stripped, got %q", task.Description)
	}
}

func TestFestivalOn(t *testing.T) {
	festival, ok := FestivalOn("2026-01-26")
	if !ok {
		t.Fatalf("expected a festival on Republic Day")
	}
	if festival.Name != "Republic Day" {
		t.Fatalf("unexpected festival: %+v", festival)
	}
	if _, ok := FestivalOn("2026-01-27"); ok {
		t.Fatalf("expected no festival on an ordinary day")
	}
}

func TestSuggestionByID(t *testing.T) {
	suggestion, ok := SuggestionByID("q3")
	if !ok || suggestion.Category != "fitness" {
		t.Fatalf("unexpected suggestion lookup: ok=%v %+v", ok, suggestion)
	}
	if _, ok := SuggestionByID("q99"); ok {
		t.Fatalf("expected unknown suggestion id to miss")
	}
}
