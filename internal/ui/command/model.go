package command

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/routine-tracker/internal/theme"
)

// CommandMsg is emitted when the user executes a command.
type CommandMsg string

// CloseMsg is emitted when the palette is dismissed without a command.
type CloseMsg struct{}

// Spec describes one palette command.
type Spec struct {
	Name    string
	Usage   string
	Summary string
}

// Commands lists the palette commands in display order.
var Commands = []Spec{
	{Name: "month", Usage: "month <1-12|name>", Summary: "switch month, dropping an unsaved draft"},
	{Name: "today", Usage: "today", Summary: "switch to the current month"},
	{Name: "reload", Usage: "reload", Summary: "re-read the month from storage"},
	{Name: "export", Usage: "export <file.xlsx>", Summary: "save the month as a workbook"},
	{Name: "quit", Usage: "quit", Summary: "save the edited cell and exit"},
}

// Suggest returns the commands whose name starts with the verb typed so
// far. An empty line matches every command.
func Suggest(line string) []Spec {
	verb, _ := Split(line)
	var out []Spec
	for _, c := range Commands {
		if strings.HasPrefix(c.Name, verb) {
			out = append(out, c)
		}
	}
	return out
}

// Split separates a command line into its lower-cased verb and argument.
func Split(line string) (verb, arg string) {
	line = strings.TrimSpace(line)
	verb, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(verb), strings.TrimSpace(arg)
}

// Model is the ":" palette. Executed lines are kept so up/down can
// recall them.
type Model struct {
	input   textinput.Model
	history []string
	recall  int
	width   int
	height  int
}

// New creates a new command palette model.
func New(width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "month 3 | today | reload | export ~/march.xlsx | quit"
	ti.Prompt = ": "
	ti.Width = width - 6

	return Model{
		input:  ti,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			m.recall = len(m.history)
			if line == "" {
				return m, func() tea.Msg { return CloseMsg{} }
			}
			m.history = append(m.history, line)
			m.recall = len(m.history)
			return m, func() tea.Msg { return CommandMsg(line) }
		case "esc":
			m.input.Reset()
			m.recall = len(m.history)
			return m, func() tea.Msg { return CloseMsg{} }
		case "up":
			if m.recall > 0 {
				m.recall--
				m.input.SetValue(m.history[m.recall])
				m.input.CursorEnd()
			}
			return m, nil
		case "down":
			if m.recall < len(m.history)-1 {
				m.recall++
				m.input.SetValue(m.history[m.recall])
				m.input.CursorEnd()
			} else {
				m.recall = len(m.history)
				m.input.Reset()
			}
			return m, nil
		case "tab":
			// Complete a unique verb.
			if s := Suggest(m.input.Value()); len(s) == 1 {
				m.input.SetValue(s[0].Name + " ")
				m.input.CursorEnd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the palette with the commands matching the typed verb.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1).
		Render("Command Palette")

	lines := []string{title, m.input.View(), ""}
	for _, c := range Suggest(m.input.Value()) {
		lines = append(lines,
			theme.DayHeaderStyle.Render(c.Usage)+"  "+theme.HelpStyle.Render(c.Summary))
	}
	if len(lines) == 3 {
		lines = append(lines, theme.NoticeStyle.Render("no matching command"))
	}

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}
