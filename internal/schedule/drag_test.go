package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakethrapaka/remind/internal/model"
)

var testWeekStart = time.Date(2026, 1, 19, 0, 0, 0, 0, time.Local)

func TestCreateClickDefaultsToHalfHour(t *testing.T) {
	d := NewDrag(testWeekStart)

	// Press at 09:10 and release without moving.
	d.BeginCreate(3, 550)
	intent := d.Release()

	create, ok := intent.(CreateIntent)
	require.True(t, ok)
	assert.Equal(t, "2026-01-22", create.Date)
	assert.Equal(t, "09:15", create.Time)
	assert.Equal(t, 30, create.Duration)
	assert.Equal(t, StateIdle, d.State())
}

func TestCreateDragSpansAnchors(t *testing.T) {
	d := NewDrag(testWeekStart)

	d.BeginCreate(0, 540)
	d.Update(0, 635) // snaps to 630
	intent := d.Release()

	create, ok := intent.(CreateIntent)
	require.True(t, ok)
	assert.Equal(t, "2026-01-19", create.Date)
	assert.Equal(t, "09:00", create.Time)
	assert.Equal(t, 90, create.Duration)
}

func TestCreateDragUpwardSwapsAnchors(t *testing.T) {
	d := NewDrag(testWeekStart)

	d.BeginCreate(0, 630)
	d.Update(0, 540)
	intent := d.Release()

	create, ok := intent.(CreateIntent)
	require.True(t, ok)
	assert.Equal(t, "09:00", create.Time)
	assert.Equal(t, 90, create.Duration)
}

func TestMoveAppliesSnappedDelta(t *testing.T) {
	task := model.Task{ID: "t1", Date: "2026-01-20", Time: "09:00", Duration: 60}
	d := NewDrag(testWeekStart)

	// Grab mid-body and drag 50 minutes down and one day right.
	d.BeginMove(task, 1, 560)
	d.Update(2, 610)
	intent := d.Release()

	move, ok := intent.(MoveIntent)
	require.True(t, ok)
	assert.Equal(t, "t1", move.TaskID)
	assert.Equal(t, "2026-01-21", move.Date)
	assert.Equal(t, "09:45", move.Time)
}

func TestMoveThenMoveBackRestoresOriginalSlot(t *testing.T) {
	task := model.Task{ID: "t1", Date: "2026-01-20", Time: "09:00", Duration: 60}
	d := NewDrag(testWeekStart)

	d.BeginMove(task, 1, 560)
	d.Update(2, 610)
	move := d.Release().(MoveIntent)
	task.Date, task.Time = move.Date, move.Time

	d.BeginMove(task, 2, 610)
	d.Update(1, 560)
	back := d.Release().(MoveIntent)

	assert.Equal(t, "2026-01-20", back.Date)
	assert.Equal(t, "09:00", back.Time)
}

func TestMoveClampsAtMidnight(t *testing.T) {
	task := model.Task{ID: "t1", Date: "2026-01-22", Time: "23:30", Duration: 60}
	d := NewDrag(testWeekStart)

	d.BeginMove(task, 3, 1415)
	d.Update(3, 1435)
	// The raw slot would cross midnight; the whole event is pulled back so
	// it ends exactly at 24:00.
	d.Update(3, 1439)
	intent := d.Release()

	move, ok := intent.(MoveIntent)
	require.True(t, ok)
	assert.Equal(t, "2026-01-22", move.Date)
	assert.Equal(t, "23:00", move.Time)
}

func TestMoveClampsDayToWeekEdges(t *testing.T) {
	task := model.Task{ID: "t1", Date: "2026-01-19", Time: "10:00", Duration: 30}
	d := NewDrag(testWeekStart)

	d.BeginMove(task, 0, 610)
	d.Update(-3, 670)
	intent := d.Release()

	move, ok := intent.(MoveIntent)
	require.True(t, ok)
	assert.Equal(t, "2026-01-19", move.Date) // day cannot leave the week
	assert.Equal(t, "11:00", move.Time)
}

func TestMoveWithoutDisplacementIsNoOp(t *testing.T) {
	task := model.Task{ID: "t1", Date: "2026-01-20", Time: "09:00", Duration: 60}
	d := NewDrag(testWeekStart)

	d.BeginMove(task, 1, 560)
	d.Update(1, 563) // snaps to zero delta
	intent := d.Release()

	assert.Nil(t, intent)
	assert.Equal(t, StateIdle, d.State())
}

func TestResizeSnapsDuration(t *testing.T) {
	task := model.Task{ID: "t1", Date: "2026-01-20", Time: "09:00", Duration: 60}
	d := NewDrag(testWeekStart)

	d.BeginResize(task)
	d.Update(1, 655) // bottom edge near 10:55
	intent := d.Release()

	resize, ok := intent.(ResizeIntent)
	require.True(t, ok)
	assert.Equal(t, "t1", resize.TaskID)
	assert.Equal(t, 120, resize.Duration)
}

func TestResizeNeverShrinksBelowQuantum(t *testing.T) {
	task := model.Task{ID: "t1", Date: "2026-01-20", Time: "09:00", Duration: 60}
	d := NewDrag(testWeekStart)

	d.BeginResize(task)
	d.Update(1, 500) // dragged above the event start
	intent := d.Release()

	resize, ok := intent.(ResizeIntent)
	require.True(t, ok)
	assert.Equal(t, Quantum, resize.Duration)
}

func TestResizeToSameDurationIsNoOp(t *testing.T) {
	task := model.Task{ID: "t1", Date: "2026-01-20", Time: "09:00", Duration: 60}
	d := NewDrag(testWeekStart)

	d.BeginResize(task)
	intent := d.Release()

	assert.Nil(t, intent)
}

func TestGhostTracksActiveGesture(t *testing.T) {
	task := model.Task{ID: "t1", Date: "2026-01-20", Time: "09:00", Duration: 60}
	d := NewDrag(testWeekStart)

	_, active := d.Ghost()
	assert.False(t, active)

	d.BeginMove(task, 1, 560)
	d.Update(2, 620)
	ghost, active := d.Ghost()
	require.True(t, active)
	assert.Equal(t, 2, ghost.Day)
	assert.Equal(t, 600, ghost.Start) // 09:00 + snapped 60
	assert.Equal(t, 60, ghost.Duration)
}

func TestCancelDropsGesture(t *testing.T) {
	d := NewDrag(testWeekStart)

	d.BeginCreate(0, 540)
	d.Update(0, 660)
	d.Cancel()

	assert.Equal(t, StateIdle, d.State())
	_, active := d.Ghost()
	assert.False(t, active)
	assert.Nil(t, d.Release())
}

func TestReleaseWhenIdleIsNil(t *testing.T) {
	d := NewDrag(testWeekStart)
	assert.Nil(t, d.Release())
}
