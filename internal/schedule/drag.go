package schedule

import (
	"fmt"
	"time"

	"github.com/sakethrapaka/remind/internal/model"
)

// State is the drag gesture state. A gesture is either inactive or exactly
// one of creating, moving, or resizing; release always returns to Idle.
type State int

const (
	StateIdle State = iota
	StateCreating
	StateMoving
	StateResizing
)

// minimum duration applied to a zero-delta create drag.
const createDefaultDuration = 30

// Intent is the mutation a completed gesture resolves to. A nil Intent
// means the gesture was a no-op (or was cancelled) and nothing should be
// persisted.
type Intent interface{ dragIntent() }

// CreateIntent asks for the creation form pre-filled with the dragged slot.
type CreateIntent struct {
	Date     string
	Time     string
	Duration int
}

// MoveIntent reschedules an existing task.
type MoveIntent struct {
	TaskID string
	Date   string
	Time   string
}

// ResizeIntent changes an existing task's duration.
type ResizeIntent struct {
	TaskID   string
	Duration int
}

func (CreateIntent) dragIntent() {}
func (MoveIntent) dragIntent()   {}
func (ResizeIntent) dragIntent() {}

// Ghost is the live preview geometry rendered while a gesture is active.
type Ghost struct {
	Day      int
	Start    int // minutes since midnight
	Duration int
}

// Drag interprets pointer gestures over a week grid. Coordinates passed in
// are already day/minute pairs (see Metrics); the machine snaps, clamps,
// and resolves them into intents on release.
type Drag struct {
	state     State
	weekStart time.Time

	task     model.Task // target of move/resize
	startDay int
	startMin int
	curDay   int
	curMin   int
}

func NewDrag(weekStart time.Time) *Drag {
	return &Drag{weekStart: weekStart}
}

func (d *Drag) State() State { return d.state }

// BeginCreate starts a create gesture from a pointer-down on empty grid
// background. Both anchors start equal.
func (d *Drag) BeginCreate(day, minute int) {
	d.state = StateCreating
	d.startDay, d.curDay = day, day
	d.startMin, d.curMin = minute, minute
}

// BeginMove starts a move gesture from a pointer-down on an event body.
func (d *Drag) BeginMove(task model.Task, day, minute int) {
	d.state = StateMoving
	d.task = task
	d.startDay, d.curDay = day, day
	d.startMin, d.curMin = minute, minute
}

// BeginResize starts a resize gesture from a pointer-down on an event's
// bottom edge. The moving anchor begins at the event's current end.
func (d *Drag) BeginResize(task model.Task) {
	d.state = StateResizing
	d.task = task
	d.startDay = DayOfDate(d.weekStart, task.Date)
	d.curDay = d.startDay
	d.startMin = task.StartMinutes()
	d.curMin = d.startMin + task.EffectiveDuration()
}

// Update tracks the pointer during an active gesture. It only moves the
// current anchor; no mutation happens until release.
func (d *Drag) Update(day, minute int) {
	if d.state == StateIdle {
		return
	}
	d.curDay = day
	d.curMin = clamp(minute, 0, DayMinutes-1)
}

// Cancel aborts the gesture without producing an intent.
func (d *Drag) Cancel() {
	*d = Drag{weekStart: d.weekStart}
}

// Ghost returns the preview geometry for the active gesture.
func (d *Drag) Ghost() (Ghost, bool) {
	switch d.state {
	case StateCreating:
		start, duration := d.createSlot()
		return Ghost{Day: d.startDay, Start: start, Duration: duration}, true
	case StateMoving:
		day, start := d.moveSlot()
		return Ghost{Day: day, Start: start, Duration: d.task.EffectiveDuration()}, true
	case StateResizing:
		return Ghost{Day: d.startDay, Start: d.startMin, Duration: d.resizeDuration()}, true
	}
	return Ghost{}, false
}

// Release resolves the gesture. The machine always resets to Idle, whatever
// the outcome; degenerate geometry is clamped, never rejected.
func (d *Drag) Release() Intent {
	state := d.state
	d.state = StateIdle

	switch state {
	case StateCreating:
		start, duration := d.createSlot()
		return CreateIntent{
			Date:     DateOfDay(d.weekStart, d.startDay),
			Time:     minutesToClock(start),
			Duration: duration,
		}

	case StateMoving:
		day, start := d.moveSlot()
		date := DateOfDay(d.weekStart, day)
		clock := minutesToClock(start)
		if date == d.task.Date && clock == d.task.Time {
			return nil // nothing changed, guard against a spurious write
		}
		return MoveIntent{TaskID: d.task.ID, Date: date, Time: clock}

	case StateResizing:
		duration := d.resizeDuration()
		if duration == d.task.EffectiveDuration() {
			return nil
		}
		return ResizeIntent{TaskID: d.task.ID, Duration: duration}
	}
	return nil
}

// createSlot derives the slot from the min/max of the two anchors. A
// zero-delta drag defaults to a 30-minute event.
func (d *Drag) createSlot() (start, duration int) {
	a, b := Snap(d.startMin), Snap(d.curMin)
	if b < a {
		a, b = b, a
	}
	start = clamp(a, 0, DayMinutes-Quantum)
	duration = b - a
	if duration == 0 {
		duration = createDefaultDuration
	} else if duration < Quantum {
		duration = Quantum
	}
	return start, duration
}

// moveSlot applies the drag delta to the task's original slot, clamping the
// time of day so the event cannot be pushed past midnight.
func (d *Drag) moveSlot() (day, start int) {
	deltaMin := Snap(d.curMin - d.startMin)
	deltaDay := d.curDay - d.startDay

	day = DayOfDate(d.weekStart, d.task.Date)
	if day < 0 {
		day = d.startDay
	}
	day = clamp(day+deltaDay, 0, 6)

	start = d.task.StartMinutes() + deltaMin
	start = clamp(start, 0, DayMinutes-d.task.EffectiveDuration())
	return day, start
}

func (d *Drag) resizeDuration() int {
	duration := Snap(d.curMin) - d.startMin
	if duration < Quantum {
		duration = Quantum
	}
	return duration
}

func minutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
