package schedule

import (
	"sort"
	"time"

	"github.com/sakethrapaka/remind/internal/model"
)

// Placement is the computed geometry for one event in a day column.
// Top and Height are in the vertical unit implied by rowHeight; Left and
// Width are percentages of the day column.
type Placement struct {
	Task   model.Task
	Start  int // minutes since midnight
	End    int
	Col    int
	Cols   int
	Top    float64
	Height float64
	Left   float64
	Width  float64
}

// PackDay assigns side-by-side columns to overlapping events of a single
// day. Events are placed greedily first-fit over a start-sorted order, which
// uses exactly as many columns as the maximum number of simultaneously
// overlapping events. Tasks without a time are skipped; they belong in list
// views only.
func PackDay(tasks []model.Task, rowHeight float64) []Placement {
	placements := make([]Placement, 0, len(tasks))
	for _, task := range tasks {
		start := task.StartMinutes()
		if start < 0 {
			continue
		}
		placements = append(placements, Placement{
			Task:  task,
			Start: start,
			End:   start + task.EffectiveDuration(),
		})
	}

	// Stable keeps same-start events in original list order.
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].Start < placements[j].Start
	})

	// columnEnds[c] holds the end of the most recent event in column c.
	var columnEnds []int
	for i := range placements {
		placed := false
		for col, end := range columnEnds {
			if end <= placements[i].Start {
				placements[i].Col = col
				columnEnds[col] = placements[i].End
				placed = true
				break
			}
		}
		if !placed {
			placements[i].Col = len(columnEnds)
			columnEnds = append(columnEnds, placements[i].End)
		}
	}

	totalCols := len(columnEnds)
	for i := range placements {
		placements[i].Cols = totalCols
		placements[i].Top = float64(placements[i].Start) / 60 * rowHeight
		placements[i].Height = float64(placements[i].End-placements[i].Start) / 60 * rowHeight
		placements[i].Left = float64(placements[i].Col) / float64(totalCols) * 100
		placements[i].Width = 1 / float64(totalCols) * 100
	}
	return placements
}

// WeekLayout computes placements for every day of the displayed week.
// Completed tasks and tasks outside the week are excluded. The result is
// indexed by day column (0 = Monday).
func WeekLayout(tasks []model.Task, weekStart time.Time, rowHeight float64) [7][]Placement {
	var byDay [7][]model.Task
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		day := DayOfDate(weekStart, task.Date)
		if day < 0 {
			continue
		}
		byDay[day] = append(byDay[day], task)
	}

	var week [7][]Placement
	for day := range byDay {
		week[day] = PackDay(byDay[day], rowHeight)
	}
	return week
}
