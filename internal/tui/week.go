// Package tui hosts the interactive week grid. Mouse gestures on the grid
// drive the schedule drag engine: drag on empty space creates a task, drag
// on an event body moves it, drag on an event's bottom edge resizes it.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sakethrapaka/remind/internal/category"
	"github.com/sakethrapaka/remind/internal/model"
	"github.com/sakethrapaka/remind/internal/schedule"
	"github.com/sakethrapaka/remind/internal/store"
)

const (
	hourRows   = 2 // grid rows per hour
	timeGutter = 6 // columns reserved for the hour labels
	headerRows = 2 // title line + day header line
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	todayStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	eventStyle   = lipgloss.NewStyle().Background(lipgloss.Color("25")).Foreground(lipgloss.Color("231"))
	ghostStyle   = lipgloss.NewStyle().Background(lipgloss.Color("60")).Foreground(lipgloss.Color("252"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// WeekModel is the bubbletea model for the calendar grid.
type WeekModel struct {
	tasks  *store.TaskStore
	config model.Config

	weekStart time.Time
	dayStart  int // first hour shown
	dayEnd    int // last hour shown, exclusive
	width     int
	height    int

	drag   *schedule.Drag
	layout [7][]schedule.Placement

	// create-form state, entered when a create gesture resolves
	formOpen     bool
	formDate     string
	formTime     string
	formDuration int
	titleInput   textinput.Model

	status string
}

func NewWeekModel(tasks *store.TaskStore, config model.Config, anchor time.Time) *WeekModel {
	dayStart, dayEnd := config.Week.DayStart, config.Week.DayEnd
	if dayEnd <= dayStart {
		dayStart, dayEnd = 0, 24
	}

	input := textinput.New()
	input.Placeholder = "Task title"
	input.CharLimit = 80

	m := &WeekModel{
		tasks:      tasks,
		config:     config,
		weekStart:  schedule.WeekStart(anchor),
		dayStart:   dayStart,
		dayEnd:     dayEnd,
		drag:       schedule.NewDrag(schedule.WeekStart(anchor)),
		titleInput: input,
		status:     "drag: create / move / resize · ←/→ week · q quit",
	}
	m.reload()
	return m
}

func (m *WeekModel) reload() {
	m.layout = schedule.WeekLayout(m.tasks.Tasks(), m.weekStart, hourRows)
}

func (m *WeekModel) setWeek(weekStart time.Time) {
	m.weekStart = weekStart
	m.drag = schedule.NewDrag(weekStart)
	m.reload()
}

func (m *WeekModel) Init() tea.Cmd {
	return nil
}

func (m *WeekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *WeekModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.formOpen {
		switch msg.String() {
		case "enter":
			m.submitForm()
		case "esc":
			m.closeForm("Creation cancelled")
		default:
			var cmd tea.Cmd
			m.titleInput, cmd = m.titleInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Escape aborts an in-flight gesture without mutating anything.
		if m.drag.State() != schedule.StateIdle {
			m.drag.Cancel()
			m.status = "Drag cancelled"
			return m, nil
		}
		return m, tea.Quit
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left":
		m.setWeek(m.weekStart.AddDate(0, 0, -7))
	case "right":
		m.setWeek(m.weekStart.AddDate(0, 0, 7))
	case "t":
		m.setWeek(schedule.WeekStart(time.Now()))
	}
	return m, nil
}

func (m *WeekModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.formOpen {
		return m, nil
	}

	day, minute, onGrid := m.cellAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onGrid {
			return m, nil
		}
		if placement, onEdge, hit := m.placementAt(day, minute); hit {
			if onEdge {
				m.drag.BeginResize(placement.Task)
			} else {
				m.drag.BeginMove(placement.Task, day, minute)
			}
		} else {
			m.drag.BeginCreate(day, minute)
		}

	case tea.MouseActionMotion:
		// Out-of-grid coordinates arrive clamped from cellAt, so a gesture
		// is squeezed to the edge rather than dropped.
		m.drag.Update(day, minute)

	case tea.MouseActionRelease:
		m.applyIntent(m.drag.Release())
	}
	return m, nil
}

// cellAt maps terminal coordinates to a grid day and minute. Coordinates
// outside the grid clamp to its nearest cell.
func (m *WeekModel) cellAt(x, y int) (day, minute int, onGrid bool) {
	metrics := schedule.Metrics{
		HourHeight: hourRows,
		GridWidth:  m.gridWidth(),
		Days:       7,
	}

	gridY := y - headerRows
	gridX := x - timeGutter
	onGrid = gridY >= 0 && gridX >= 0 && gridY < (m.dayEnd-m.dayStart)*hourRows && gridX < m.gridWidth()

	day = metrics.DayAtX(clampInt(gridX, 0, m.gridWidth()-1))
	minute = m.dayStart*60 + metrics.MinutesAtY(clampInt(gridY, 0, (m.dayEnd-m.dayStart)*hourRows-1))
	return day, minute, onGrid
}

// placementAt finds the event under a grid cell, and whether the cell is on
// its bottom edge (the resize handle).
func (m *WeekModel) placementAt(day, minute int) (schedule.Placement, bool, bool) {
	for _, placement := range m.layout[day] {
		if minute >= placement.Start && minute < placement.End {
			onEdge := placement.End-minute <= 60/hourRows
			return placement, onEdge, true
		}
	}
	return schedule.Placement{}, false, false
}

func (m *WeekModel) applyIntent(intent schedule.Intent) {
	switch intent := intent.(type) {
	case schedule.CreateIntent:
		m.formOpen = true
		m.formDate = intent.Date
		m.formTime = intent.Time
		m.formDuration = intent.Duration
		m.titleInput.SetValue("")
		m.titleInput.Focus()
		m.status = fmt.Sprintf("New task on %s at %s (%dm)", intent.Date, intent.Time, intent.Duration)

	case schedule.MoveIntent:
		task, ok := m.tasks.Get(intent.TaskID)
		if !ok {
			m.status = warningStyle.Render("Task vanished mid-drag")
			return
		}
		task.Date = intent.Date
		task.Time = intent.Time
		if err := m.tasks.Update(task); err != nil {
			m.status = warningStyle.Render(err.Error())
			return
		}
		m.reload()
		m.status = fmt.Sprintf("Moved %q to %s %s", task.Title, task.Date, task.Time)

	case schedule.ResizeIntent:
		task, ok := m.tasks.Get(intent.TaskID)
		if !ok {
			m.status = warningStyle.Render("Task vanished mid-drag")
			return
		}
		task.Duration = intent.Duration
		if err := m.tasks.Update(task); err != nil {
			m.status = warningStyle.Render(err.Error())
			return
		}
		m.reload()
		m.status = fmt.Sprintf("Resized %q to %dm", task.Title, task.Duration)

	case nil:
		// no-op gesture, nothing to persist
	}
}

func (m *WeekModel) submitForm() {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.status = warningStyle.Render("Title is required")
		return
	}

	now := time.Now()
	task := model.Task{
		ID:        store.NewTaskID(now),
		Title:     title,
		Category:  category.Detect(title),
		Date:      m.formDate,
		Time:      m.formTime,
		Duration:  m.formDuration,
		CreatedAt: now.Format(time.RFC3339),
	}
	if err := m.tasks.Add(task); err != nil {
		m.status = warningStyle.Render(err.Error())
		return
	}
	m.reload()
	m.closeForm(fmt.Sprintf("Created %q on %s at %s", title, m.formDate, m.formTime))
}

func (m *WeekModel) closeForm(status string) {
	m.formOpen = false
	m.titleInput.Blur()
	m.status = status
}

func (m *WeekModel) gridWidth() int {
	width := m.width - timeGutter
	if width < 7 {
		width = 7 * 10
	}
	return width - width%7
}

func (m *WeekModel) View() string {
	var b strings.Builder

	weekEnd := m.weekStart.AddDate(0, 0, 6)
	b.WriteString(headerStyle.Render(fmt.Sprintf("📅 %s – %s",
		m.weekStart.Format("Jan 2"), weekEnd.Format("Jan 2 2006"))))
	b.WriteString("\n")

	colWidth := m.gridWidth() / 7
	today := time.Now().Format("2006-01-02")

	b.WriteString(strings.Repeat(" ", timeGutter))
	for day := 0; day < 7; day++ {
		date := m.weekStart.AddDate(0, 0, day)
		label := date.Format("Mon 2")
		if _, ok := model.FestivalOn(date.Format("2006-01-02")); ok {
			label += "*"
		}
		cell := padCell(label, colWidth)
		if date.Format("2006-01-02") == today {
			cell = todayStyle.Render(cell)
		} else {
			cell = headerStyle.Render(cell)
		}
		b.WriteString(cell)
	}
	b.WriteString("\n")

	ghost, ghostActive := m.drag.Ghost()
	for row := 0; row < (m.dayEnd-m.dayStart)*hourRows; row++ {
		minute := m.dayStart*60 + row*60/hourRows

		if row%hourRows == 0 {
			b.WriteString(gutterStyle.Render(fmt.Sprintf("%5s ", fmt.Sprintf("%02d:00", minute/60))))
		} else {
			b.WriteString(strings.Repeat(" ", timeGutter))
		}

		for day := 0; day < 7; day++ {
			b.WriteString(m.renderCell(day, minute, colWidth, ghost, ghostActive))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.formOpen {
		b.WriteString(fmt.Sprintf("✏️  New task · %s at %s · %dm\n", m.formDate, m.formTime, m.formDuration))
		b.WriteString(m.titleInput.View())
		b.WriteString("\n(Enter to create, ESC to cancel)\n")
	} else {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

// renderCell draws one day cell at one grid row, splitting the cell into
// side-by-side lanes when events overlap.
func (m *WeekModel) renderCell(day, minute, colWidth int, ghost schedule.Ghost, ghostActive bool) string {
	slotEnd := minute + 60/hourRows

	type lane struct {
		placement schedule.Placement
		active    bool
	}

	cols := 1
	var lanes []lane
	for _, placement := range m.layout[day] {
		if placement.Cols > cols {
			cols = placement.Cols
		}
	}
	lanes = make([]lane, cols)
	for _, placement := range m.layout[day] {
		if placement.Start < slotEnd && placement.End > minute {
			lanes[placement.Col] = lane{placement: placement, active: true}
		}
	}

	ghostHere := ghostActive && ghost.Day == day &&
		ghost.Start < slotEnd && ghost.Start+ghost.Duration > minute

	laneWidth := colWidth / cols
	var cell strings.Builder
	for i, l := range lanes {
		width := laneWidth
		if i == cols-1 {
			width = colWidth - laneWidth*(cols-1)
		}
		switch {
		case ghostHere && i == 0:
			label := ""
			if ghost.Start >= minute {
				label = fmt.Sprintf("+%dm", ghost.Duration)
			}
			cell.WriteString(ghostStyle.Render(padCell(label, width)))
		case l.active:
			label := ""
			if l.placement.Start >= minute {
				label = l.placement.Task.Title
			}
			cell.WriteString(eventStyle.Render(padCell(label, width)))
		default:
			cell.WriteString(padCell("", width))
		}
	}
	return cell.String()
}

func padCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run starts the interactive week view.
func Run(tasks *store.TaskStore, config model.Config, anchor time.Time) error {
	program := tea.NewProgram(NewWeekModel(tasks, config, anchor), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
