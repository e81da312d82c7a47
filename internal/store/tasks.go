package store

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/sakethrapaka/remind/internal/model"
)

const tasksKey = "tasks"

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrDuplicateSuggestion = errors.New("task already exists in upcoming reminders")
)

// TaskStore owns the task list. It is the single source of truth: views get
// snapshots, mutations go through its methods, and every mutation is
// mirrored to storage before returning.
type TaskStore struct {
	storage Storage
	tasks   []model.Task
}

// OpenTaskStore loads the persisted list. A first run (no persisted list at
// all) is seeded with the starter tasks.
func OpenTaskStore(storage Storage) (*TaskStore, error) {
	ts := &TaskStore{storage: storage}
	if err := storage.Load(tasksKey, &ts.tasks); err != nil {
		return nil, fmt.Errorf("❌ Error loading tasks from JSON: %w", err)
	}

	if ts.tasks == nil {
		ts.tasks = seedTasks()
		if err := ts.persist(); err != nil {
			return nil, err
		}
		return ts, nil
	}

	for i := range ts.tasks {
		ts.tasks[i].NormalizeLegacyMetadata()
	}
	return ts, nil
}

func (ts *TaskStore) persist() error {
	if err := ts.storage.Save(tasksKey, ts.tasks); err != nil {
		return fmt.Errorf("❌ Failed to save tasks: %w", err)
	}
	return nil
}

// NewTaskID generates a unique time-based task id.
func NewTaskID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Tasks returns a snapshot of the full list.
func (ts *TaskStore) Tasks() []model.Task {
	snapshot := make([]model.Task, len(ts.tasks))
	copy(snapshot, ts.tasks)
	return snapshot
}

// Get looks a task up by id.
func (ts *TaskStore) Get(id string) (model.Task, bool) {
	for _, task := range ts.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

// Add appends an already-validated task and persists.
func (ts *TaskStore) Add(task model.Task) error {
	ts.tasks = append(ts.tasks, task)
	return ts.persist()
}

// Update replaces the task with the same id.
func (ts *TaskStore) Update(task model.Task) error {
	for i := range ts.tasks {
		if ts.tasks[i].ID == task.ID {
			ts.tasks[i] = task
			return ts.persist()
		}
	}
	return ErrTaskNotFound
}

// Delete removes a task by id. Deleting an absent task is a no-op.
func (ts *TaskStore) Delete(id string) (bool, error) {
	for i := range ts.tasks {
		if ts.tasks[i].ID == id {
			ts.tasks = append(ts.tasks[:i], ts.tasks[i+1:]...)
			return true, ts.persist()
		}
	}
	return false, nil
}

// ToggleComplete flips a task's completion state.
func (ts *TaskStore) ToggleComplete(id string) (model.Task, error) {
	for i := range ts.tasks {
		if ts.tasks[i].ID == id {
			ts.tasks[i].Completed = !ts.tasks[i].Completed
			return ts.tasks[i], ts.persist()
		}
	}
	return model.Task{}, ErrTaskNotFound
}

// DeleteCompleted removes every completed task and reports how many.
func (ts *TaskStore) DeleteCompleted() (int, error) {
	kept := ts.tasks[:0]
	removed := 0
	for _, task := range ts.tasks {
		if task.Completed {
			removed++
			continue
		}
		kept = append(kept, task)
	}
	ts.tasks = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, ts.persist()
}

// QuickAdd instantiates a suggestion for today. The same suggestion cannot
// be instantiated twice while a pending copy exists; completed or deleted
// copies are deliberately not checked.
func (ts *TaskStore) QuickAdd(suggestion model.Task, now time.Time) (model.Task, error) {
	for _, task := range ts.Pending(now) {
		if task.SourceID == suggestion.ID {
			return model.Task{}, ErrDuplicateSuggestion
		}
	}

	task := suggestion
	task.ID = NewTaskID(now)
	task.SourceID = suggestion.ID
	task.Date = now.Format("2006-01-02")
	task.CreatedAt = now.Format(time.RFC3339)

	if err := ts.Add(task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// Pending lists incomplete tasks already due, earliest first.
func (ts *TaskStore) Pending(now time.Time) []model.Task {
	return sortByDue(filter(ts.tasks, func(t model.Task) bool {
		if t.Completed {
			return false
		}
		due, err := t.DueTime()
		return err == nil && !due.After(now)
	}))
}

// Upcoming lists incomplete tasks still ahead, earliest first.
func (ts *TaskStore) Upcoming(now time.Time) []model.Task {
	return sortByDue(filter(ts.tasks, func(t model.Task) bool {
		if t.Completed {
			return false
		}
		due, err := t.DueTime()
		return err == nil && due.After(now)
	}))
}

// Completed lists completed tasks, earliest first.
func (ts *TaskStore) Completed() []model.Task {
	return sortByDue(filter(ts.tasks, func(t model.Task) bool {
		return t.Completed
	}))
}

func filter(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	var out []model.Task
	for _, task := range tasks {
		if keep(task) {
			out = append(out, task)
		}
	}
	return out
}

func sortByDue(tasks []model.Task) []model.Task {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, errA := tasks[i].DueTime()
		b, errB := tasks[j].DueTime()
		if errA != nil || errB != nil {
			return errB != nil && errA == nil
		}
		return a.Before(b)
	})
	return tasks
}
