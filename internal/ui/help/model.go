package help

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/routine-tracker/internal/editor"
	"github.com/nhle/routine-tracker/internal/keys"
	"github.com/nhle/routine-tracker/internal/model"
	"github.com/nhle/routine-tracker/internal/theme"
	"github.com/nhle/routine-tracker/internal/ui/command"
)

type section struct {
	title    string
	bindings []key.Binding
}

// Model is the help overlay. The editing section is listed first while
// a cell is open, and the overlay reminds the user what a month switch
// would discard.
type Model struct {
	keys   *keys.KeyMap
	editor *editor.Editor
	help   help.Model
	width  int
	height int
}

// New creates a help view over km that reads the edit state from ed.
func New(km *keys.KeyMap, ed *editor.Editor, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		keys:   km,
		editor: ed,
		help:   h,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) sections() []section {
	k := m.keys
	viewing := section{"Moving around", []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Edit}}
	editing := section{"Editing a cell", []key.Binding{k.Commit, k.Leave, k.NextCell, k.PrevCell}}
	months := section{"Months", []key.Binding{k.PrevMonth, k.NextMonth, k.PickMonth, k.SwitchBack, k.SwitchFwd}}
	other := section{"Other", []key.Binding{k.Command, k.Help, k.Back, k.Quit}}

	if m.editor.State() == editor.Editing {
		return []section{editing, months, viewing, other}
	}
	return []section{viewing, editing, months, other}
}

// Status describes what leaving the current state does to the data.
func (m Model) Status() string {
	cell, editing := m.editor.Editing()
	if !editing {
		return fmt.Sprintf("Viewing %s (%d days). Leaving a cell always saves it.",
			model.MonthName(m.editor.Month()), m.editor.DaysInMonth())
	}
	return fmt.Sprintf("Editing Day %d, %s. Switching month now drops the draft %q.",
		cell.Day, cell.Task, m.editor.Draft())
}

// View renders the help overlay.
func (m Model) View() string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)

	m.help.Width = m.width - 4
	blocks := []string{heading.MarginBottom(1).Render("Keyboard Shortcuts")}
	for _, s := range m.sections() {
		blocks = append(blocks,
			theme.DayHeaderStyle.UnsetPadding().Render(s.title),
			m.help.FullHelpView([][]key.Binding{s.bindings}),
			"")
	}

	blocks = append(blocks, heading.Render("Commands"))
	for _, c := range command.Commands {
		blocks = append(blocks, ":"+c.Usage+"  "+theme.HelpStyle.Render(c.Summary))
	}

	status := theme.HelpStyle.Render(m.Status())
	if m.editor.State() == editor.Editing {
		status = theme.NoticeStyle.Render(m.Status())
	}
	blocks = append(blocks, "", status)

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
