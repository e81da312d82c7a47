// Package notify surfaces due tasks as in-app alerts. The set is recomputed
// from persisted notify timestamps on every scan, so nothing is lost across
// restarts.
package notify

import (
	"context"
	"time"

	"github.com/sakethrapaka/remind/internal/model"
)

// Source yields the current task list for a scan. It is a read, not a
// write; the poller never mutates tasks itself.
type Source interface {
	Tasks() []model.Task
}

// Scan returns the tasks whose notify timestamp has been reached and are
// not completed. Tasks without a notify timestamp fall back to their due
// time.
func Scan(tasks []model.Task, now time.Time) []model.Task {
	var due []model.Task
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		if at, ok := notifyTime(task); ok && !at.After(now) {
			due = append(due, task)
		}
	}
	return due
}

func notifyTime(task model.Task) (time.Time, bool) {
	if task.NotifyAt != "" {
		at, err := time.Parse(time.RFC3339, task.NotifyAt)
		if err == nil {
			return at, true
		}
	}
	due, err := task.DueTime()
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// Poller re-scans the task list on a fixed interval.
type Poller struct {
	source   Source
	interval time.Duration
}

func NewPoller(source Source, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Poller{source: source, interval: interval}
}

// Watch invokes alert with the due set on every tick until the context is
// cancelled. An empty due set still invokes alert so the caller can clear a
// previously shown list.
func (p *Poller) Watch(ctx context.Context, alert func([]model.Task)) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	alert(Scan(p.source.Tasks(), time.Now()))
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			alert(Scan(p.source.Tasks(), now))
		}
	}
}
