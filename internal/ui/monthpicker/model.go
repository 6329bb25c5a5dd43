package monthpicker

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/routine-tracker/internal/model"
)

// MonthSelectedMsg carries the month chosen in the picker.
type MonthSelectedMsg struct {
	Month int
}

// CloseMsg signals that the picker was dismissed without a choice.
type CloseMsg struct{}

type formBindings struct {
	month  int
	stored map[int]bool
}

// Model is the month selector: a huh select over the 12 month names of
// the reference year.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a month picker model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{month: 1},
		width:  width,
		height: height,
	}
}

// Open resets the picker with current preselected. Months listed in
// stored are marked as having saved progress.
func (m *Model) Open(current int, stored []int) tea.Cmd {
	if !model.ValidMonth(current) {
		current = 1
	}
	m.fb.month = current
	m.fb.stored = make(map[int]bool, len(stored))
	for _, month := range stored {
		m.fb.stored[month] = true
	}
	m.form = m.buildForm()
	return m.form.Init()
}

func (m Model) buildForm() *huh.Form {
	options := make([]huh.Option[int], 0, 12)
	for i, name := range model.MonthNames() {
		options = append(options, huh.NewOption(m.optionLabel(i+1, name), i+1))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select Month").
				Options(options...).
				Value(&m.fb.month),
		),
	).WithShowHelp(false).WithWidth(m.formWidth())
}

// optionLabel marks months that already have saved progress.
func (m Model) optionLabel(month int, name string) string {
	if m.fb.stored[month] {
		return name + " •"
	}
	return name
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.form = nil
		return m, func() tea.Msg { return CloseMsg{} }
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		month := m.fb.month
		m.form = nil
		return m, func() tea.Msg { return MonthSelectedMsg{Month: month} }
	case huh.StateAborted:
		m.form = nil
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, cmd
}

// View renders the picker.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 30 {
		w = 30
	}
	if w > 60 {
		w = 60
	}
	return w
}
