package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sakethrapaka/remind/internal/model"
)

func newTestStorage(t *testing.T) *FileStorage {
	t.Helper()
	storage, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("create storage: %v", err)
	}
	return storage
}

func TestOpenTaskStoreSeedsFirstRun(t *testing.T) {
	storage := newTestStorage(t)

	ts, err := OpenTaskStore(storage)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if len(ts.Tasks()) != 3 {
		t.Fatalf("expected 3 seeded tasks, got %d", len(ts.Tasks()))
	}

	// The seed must be persisted, not just held in memory.
	reopened, err := OpenTaskStore(storage)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if len(reopened.Tasks()) != 3 {
		t.Fatalf("expected seeded tasks to survive reopen, got %d", len(reopened.Tasks()))
	}
}

func TestOpenTaskStoreDoesNotReseedEmptyList(t *testing.T) {
	storage := newTestStorage(t)

	ts, err := OpenTaskStore(storage)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	for _, task := range ts.Tasks() {
		if _, err := ts.Delete(task.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
	}

	reopened, err := OpenTaskStore(storage)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if len(reopened.Tasks()) != 0 {
		t.Fatalf("deliberately emptied list was reseeded: %d tasks", len(reopened.Tasks()))
	}
}

func TestTaskRoundTrip(t *testing.T) {
	storage := newTestStorage(t)
	ts, err := OpenTaskStore(storage)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	task := model.Task{
		ID:       "100",
		Title:    "Pick up prescription",
		Category: "medicine",
		Date:     "2026-02-03",
		Time:     "16:30",
		Duration: 30,
	}
	if err := ts.Add(task); err != nil {
		t.Fatalf("add: %v", err)
	}

	reopened, err := OpenTaskStore(storage)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	got, ok := reopened.Get("100")
	if !ok {
		t.Fatalf("expected task 100 after reopen")
	}
	if got.Title != task.Title || got.Time != task.Time || got.Duration != task.Duration {
		t.Fatalf("round-tripped task differs: %+v", got)
	}
}

func TestCorruptTasksFileFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	storage, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("create storage: %v", err)
	}
	ts, err := OpenTaskStore(storage)
	if err != nil {
		t.Fatalf("open store over corrupt file: %v", err)
	}
	// nil slice after a failed unmarshal counts as a first run.
	if len(ts.Tasks()) != 3 {
		t.Fatalf("expected seed fallback after corrupt file, got %d tasks", len(ts.Tasks()))
	}
}

func TestUpdateUnknownTask(t *testing.T) {
	ts, err := OpenTaskStore(newTestStorage(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := ts.Update(model.Task{ID: "missing"}); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestToggleCompleteFlipsBothWays(t *testing.T) {
	ts, err := OpenTaskStore(newTestStorage(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	task, err := ts.ToggleComplete("1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !task.Completed {
		t.Fatalf("expected task completed after first toggle")
	}

	task, err = ts.ToggleComplete("1")
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if task.Completed {
		t.Fatalf("expected task pending again after second toggle")
	}
}

func TestDeleteAbsentTaskIsNoOp(t *testing.T) {
	ts, err := OpenTaskStore(newTestStorage(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	removed, err := ts.Delete("1")
	if err != nil || !removed {
		t.Fatalf("first delete: removed=%v err=%v", removed, err)
	}
	removed, err = ts.Delete("1")
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if removed {
		t.Fatalf("second delete of the same id reported removal")
	}
}

func TestDeleteCompleted(t *testing.T) {
	ts, err := OpenTaskStore(newTestStorage(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	if _, err := ts.ToggleComplete("1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := ts.ToggleComplete("3"); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	removed, err := ts.DeleteCompleted()
	if err != nil {
		t.Fatalf("delete completed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if len(ts.Tasks()) != 1 {
		t.Fatalf("expected 1 task left, got %d", len(ts.Tasks()))
	}

	removed, err = ts.DeleteCompleted()
	if err != nil || removed != 0 {
		t.Fatalf("second pass: removed=%d err=%v", removed, err)
	}
}

func TestQuickAddRejectsPendingDuplicate(t *testing.T) {
	ts, err := OpenTaskStore(newTestStorage(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	suggestion, ok := model.SuggestionByID("q1")
	if !ok {
		t.Fatalf("missing suggestion q1")
	}

	// Instantiated for today at 08:00; evaluated later the same day it is
	// already pending.
	now := time.Date(2026, 1, 22, 12, 0, 0, 0, time.Local)
	task, err := ts.QuickAdd(suggestion, now)
	if err != nil {
		t.Fatalf("quick add: %v", err)
	}
	if task.SourceID != "q1" {
		t.Fatalf("expected SourceID q1, got %q", task.SourceID)
	}
	if task.Date != "2026-01-22" {
		t.Fatalf("expected today's date, got %q", task.Date)
	}

	if _, err := ts.QuickAdd(suggestion, now.Add(time.Minute)); !errors.Is(err, ErrDuplicateSuggestion) {
		t.Fatalf("expected ErrDuplicateSuggestion, got %v", err)
	}
}

func TestQuickAddAllowedAgainAfterCompletion(t *testing.T) {
	ts, err := OpenTaskStore(newTestStorage(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	suggestion, _ := model.SuggestionByID("q2")
	now := time.Date(2026, 1, 22, 12, 0, 0, 0, time.Local)

	first, err := ts.QuickAdd(suggestion, now)
	if err != nil {
		t.Fatalf("quick add: %v", err)
	}
	if _, err := ts.ToggleComplete(first.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if _, err := ts.QuickAdd(suggestion, now.Add(time.Hour)); err != nil {
		t.Fatalf("expected quick add after completion to succeed, got %v", err)
	}
}

func TestPendingAndUpcomingSplitOnNow(t *testing.T) {
	ts, err := OpenTaskStore(newTestStorage(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	// Seeds are 2026-01-22 14:30, 2026-01-23 10:00, 2026-01-24 09:00.
	now := time.Date(2026, 1, 23, 9, 0, 0, 0, time.Local)

	pending := ts.Pending(now)
	if len(pending) != 1 || pending[0].ID != "1" {
		t.Fatalf("unexpected pending set: %+v", pending)
	}

	upcoming := ts.Upcoming(now)
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(upcoming))
	}
	if upcoming[0].ID != "2" || upcoming[1].ID != "3" {
		t.Fatalf("upcoming not sorted by due time: %+v", upcoming)
	}
}

func TestLegacyMetadataNormalizedOnLoad(t *testing.T) {
	storage := newTestStorage(t)
	ts, err := OpenTaskStore(storage)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	legacy := model.Task{
		ID:          "legacy",
		Title:       "Gym session",
		Description: "Leg day\n<!-- metadata: {\"location\":\"Iron Works\",\"duration\":90} -->",
		Date:        "2026-02-05",
		Time:        "18:00",
	}
	if err := ts.Add(legacy); err != nil {
		t.Fatalf("add: %v", err)
	}

	reopened, err := OpenTaskStore(storage)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	got, ok := reopened.Get("legacy")
	if !ok {
		t.Fatalf("legacy task missing after reopen")
	}
	if got.Location != "Iron Works" {
		t.Fatalf("expected location promoted from metadata, got %q", got.Location)
	}
	if got.Duration != 90 {
		t.Fatalf("expected duration promoted from metadata, got %d", got.Duration)
	}
	if got.Description != "Leg day" {
		t.Fatalf("expected metadata stripped from description, got %q", got.Description)
	}
}
