package grid

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/routine-tracker/internal/editor"
	"github.com/nhle/routine-tracker/internal/keys"
	"github.com/nhle/routine-tracker/internal/model"
	"github.com/nhle/routine-tracker/internal/theme"
)

// ErrorMsg reports a storage-boundary failure to the parent view.
type ErrorMsg struct {
	Err error
}

// CommittedMsg is sent after a cell has been committed successfully.
type CommittedMsg struct {
	Cell editor.Cell
}

// Model is the routine grid view. All edit state lives in the shared
// editor; the model adds a cursor, a horizontal day window and the text
// input of the edited cell.
type Model struct {
	editor      *editor.Editor
	keys        *keys.KeyMap
	input       textinput.Model
	row         int
	day         int
	offset      int
	visibleDays int
	cellWidth   int
	width       int
	height      int
}

// New creates a grid over ed. visibleDays caps the day columns shown at
// once and cellWidth is the inner width of a day cell.
func New(ed *editor.Editor, k *keys.KeyMap, visibleDays, cellWidth, width, height int) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = cellWidth

	return Model{
		editor:      ed,
		keys:        k,
		input:       ti,
		day:         1,
		visibleDays: visibleDays,
		cellWidth:   cellWidth,
		width:       width,
		height:      height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Editing reports whether a cell is being edited.
func (m Model) Editing() bool {
	return m.editor.State() == editor.Editing
}

// Cursor returns the task row index and day under the cursor.
func (m Model) Cursor() (row, day int) {
	return m.row, m.day
}

// Update handles messages for the grid.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.Editing() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.Editing() {
		return m.handleEditingKeys(keyMsg)
	}
	return m.handleViewingKeys(keyMsg)
}

// handleViewingKeys moves the cursor, starts edits and switches month.
func (m Model) handleViewingKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Edit):
		return m, m.selectCursor()
	case key.Matches(msg, m.keys.PrevMonth), key.Matches(msg, m.keys.SwitchBack):
		return m, m.SetMonth(model.PrevMonth(m.editor.Month()))
	case key.Matches(msg, m.keys.NextMonth), key.Matches(msg, m.keys.SwitchFwd):
		return m, m.SetMonth(model.NextMonth(m.editor.Month()))
	}
	return m, nil
}

// handleEditingKeys routes keys while a cell is being edited. Every way
// out of the cell commits the draft, except a month switch.
func (m Model) handleEditingKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Commit), key.Matches(msg, m.keys.Leave):
		return m, m.blur()
	case key.Matches(msg, m.keys.NextCell):
		m.moveCursor(1, 0)
		return m, m.selectCursor()
	case key.Matches(msg, m.keys.PrevCell):
		m.moveCursor(-1, 0)
		return m, m.selectCursor()
	case key.Matches(msg, m.keys.SwitchBack):
		return m, m.SetMonth(model.PrevMonth(m.editor.Month()))
	case key.Matches(msg, m.keys.SwitchFwd):
		return m, m.SetMonth(model.NextMonth(m.editor.Month()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.editor.Input(m.input.Value())
	return m, cmd
}

// selectCursor begins editing the cell under the cursor. A cell already
// being edited is committed by the editor before the new edit begins.
func (m *Model) selectCursor() tea.Cmd {
	task, _ := model.TaskAt(m.row)
	prev, wasEditing := m.editor.Editing()

	err := m.editor.Select(context.Background(), m.day, task)

	m.input.SetValue(m.editor.Draft())
	m.input.CursorEnd()
	focus := m.input.Focus()

	if err != nil {
		return tea.Batch(focus, notify(err))
	}
	if wasEditing {
		return tea.Batch(focus, committed(prev))
	}
	return focus
}

// blur commits the edited cell and returns to viewing.
func (m *Model) blur() tea.Cmd {
	cell, _ := m.editor.Editing()
	m.input.Blur()
	if err := m.editor.Enter(context.Background()); err != nil {
		return notify(err)
	}
	return committed(cell)
}

// SetMonth switches the grid to month. Any draft is dropped.
func (m *Model) SetMonth(month int) tea.Cmd {
	m.input.Blur()
	m.input.Reset()
	err := m.editor.SetMonth(context.Background(), month)
	m.clampCursor()
	if err != nil {
		return notify(err)
	}
	return nil
}

// Reload re-reads the selected month from storage. Any draft is dropped.
func (m *Model) Reload() tea.Cmd {
	m.input.Blur()
	m.input.Reset()
	err := m.editor.Reload(context.Background())
	m.clampCursor()
	if err != nil {
		return notify(err)
	}
	return nil
}

// moveCursor shifts the cursor by the given task and day deltas,
// clamped to the grid.
func (m *Model) moveCursor(dRow, dDay int) {
	m.row += dRow
	m.day += dDay
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.row < 0 {
		m.row = 0
	}
	if last := model.TaskCount() - 1; m.row > last {
		m.row = last
	}
	days := m.editor.DaysInMonth()
	if m.day < 1 {
		m.day = 1
	}
	if m.day > days {
		m.day = days
	}
	m.scrollToCursor()
}

// scrollToCursor keeps the cursor day inside the visible window.
func (m *Model) scrollToCursor() {
	visible := m.fitDays()
	if m.day <= m.offset {
		m.offset = m.day - 1
	}
	if m.day > m.offset+visible {
		m.offset = m.day - visible
	}
	if limit := m.editor.DaysInMonth() - visible; m.offset > limit {
		m.offset = limit
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// fitDays returns how many day columns fit the current width, capped by
// the configured number of visible days.
func (m Model) fitDays() int {
	n := m.visibleDays
	if m.width > 0 {
		taskWidth := 0
		for _, t := range model.Tasks() {
			if w := lipgloss.Width(t); w > taskWidth {
				taskWidth = w
			}
		}
		// Task column padding and the outer borders.
		avail := m.width - taskWidth - 4
		if fit := avail / (m.cellWidth + 3); fit < n {
			n = fit
		}
	}
	if n < 1 {
		n = 1
	}
	if days := m.editor.DaysInMonth(); n > days {
		n = days
	}
	return n
}

// VisibleRange returns the first and last rendered day.
func (m Model) VisibleRange() (first, last int) {
	first = m.offset + 1
	last = m.offset + m.fitDays()
	if days := m.editor.DaysInMonth(); last > days {
		last = days
	}
	return first, last
}

// View renders the grid.
func (m Model) View() string {
	first, last := m.VisibleRange()

	opts := RenderOptions{
		FirstDay:  first,
		LastDay:   last,
		CellWidth: m.cellWidth,
		Value:     m.editor.Display,
		CursorRow: m.row,
		CursorDay: m.day,
	}
	if m.Editing() {
		opts.EditView = m.input.View()
	}

	month := m.editor.Month()
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).
		Render("Select Month: " + model.MonthName(month))
	scroll := theme.HelpStyle.Render(
		DayLabel(first) + " – " + DayLabel(last) + " of " + DayLabel(m.editor.DaysInMonth()),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", scroll),
		Render(opts),
	)
}

// SetSize updates the grid dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scrollToCursor()
}

func notify(err error) tea.Cmd {
	return func() tea.Msg { return ErrorMsg{Err: err} }
}

func committed(cell editor.Cell) tea.Cmd {
	return func() tea.Msg { return CommittedMsg{Cell: cell} }
}
