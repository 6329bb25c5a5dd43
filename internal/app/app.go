package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/routine-tracker/internal/editor"
	"github.com/nhle/routine-tracker/internal/export"
	"github.com/nhle/routine-tracker/internal/keys"
	"github.com/nhle/routine-tracker/internal/logfields"
	"github.com/nhle/routine-tracker/internal/model"
	"github.com/nhle/routine-tracker/internal/progress"
	"github.com/nhle/routine-tracker/internal/ui"
	"github.com/nhle/routine-tracker/internal/ui/command"
	"github.com/nhle/routine-tracker/internal/ui/grid"
	helpview "github.com/nhle/routine-tracker/internal/ui/help"
	"github.com/nhle/routine-tracker/internal/ui/monthpicker"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewGrid ViewState = iota
	ViewMonthPicker
	ViewHelp
	ViewCommand
)

// Options configures the root model.
type Options struct {
	VisibleDays int
	CellWidth   int
	StartMonth  int
	Logger      *slog.Logger
}

// exportDoneMsg reports the outcome of an export started from the
// command palette.
type exportDoneMsg struct {
	path string
	err  error
}

// Model is the root Bubble Tea model that manages view routing and
// layout around the routine grid.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	editor       *editor.Editor
	progress     *progress.Store
	logger       *slog.Logger
	grid         grid.Model
	monthPicker  monthpicker.Model
	helpView     helpview.Model
	commandView  command.Model
	ready        bool
	notice       string
	status       string
}

// New creates the root model over p and hydrates opts.StartMonth, or the
// current month when it is not set. A hydrate failure does not prevent
// startup; it is shown as a notice.
func New(p *progress.Store, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	km := keys.DefaultKeyMap()
	ed := editor.New(p, logger)

	m := Model{
		currentView: ViewGrid,
		editor:      ed,
		progress:    p,
		logger:      logger,
		grid:        grid.New(ed, km, opts.VisibleDays, opts.CellWidth, 80, 24),
		monthPicker: monthpicker.New(80, 24),
		helpView:    helpview.New(km, ed, 80, 24),
		commandView: command.New(80, 24),
	}

	month := opts.StartMonth
	if !model.ValidMonth(month) {
		month = model.CurrentMonth(timeNow())
	}
	if err := ed.SetMonth(context.Background(), month); err != nil {
		m.setNotice(err)
	}
	m.grid.SetSize(80, 24)

	return m
}

// Editor exposes the edit state machine, mainly for tests.
func (m Model) Editor() *editor.Editor {
	return m.editor
}

// CurrentView returns the active view.
func (m Model) CurrentView() ViewState {
	return m.currentView
}

// Notice returns the error notification currently shown, if any.
func (m Model) Notice() string {
	return m.notice
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return m.grid.Init()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.grid.SetSize(contentWidth, contentHeight)
		m.monthPicker.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		return m, nil

	case grid.ErrorMsg:
		m.setNotice(msg.Err)
		return m, nil

	case grid.CommittedMsg:
		m.status = fmt.Sprintf("Saved %s, %s", grid.DayLabel(msg.Cell.Day), msg.Cell.Task)
		return m, nil

	case monthpicker.MonthSelectedMsg:
		m.currentView = ViewGrid
		return m, m.grid.SetMonth(msg.Month)

	case monthpicker.CloseMsg:
		m.currentView = ViewGrid
		return m, nil

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(string(msg))

	case command.CloseMsg:
		m.currentView = m.previousView
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.setNotice(msg.err)
			return m, nil
		}
		m.status = "Exported to " + msg.path
		return m, nil

	case tea.KeyMsg:
		m.notice = ""

		// While a cell is being edited every key belongs to the grid,
		// except ctrl+c.
		if m.currentView == ViewGrid && m.grid.Editing() {
			if msg.String() == "ctrl+c" {
				return m.quit()
			}
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m.quit()

		case "q":
			if m.currentView == ViewGrid {
				return m.quit()
			}

		case "?":
			if m.currentView == ViewCommand || m.currentView == ViewMonthPicker {
				break
			}
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return m, nil

		case "esc":
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}

		case ":":
			if m.currentView == ViewGrid {
				m.previousView = m.currentView
				m.currentView = ViewCommand
				return m, m.commandView.Focus()
			}

		case "m":
			if m.currentView == ViewGrid {
				m.previousView = m.currentView
				m.currentView = ViewMonthPicker
				stored, err := m.progress.StoredMonths(context.Background())
				if err != nil {
					m.logger.Warn("Could not list stored months", logfields.Error(err))
				}
				return m, m.monthPicker.Open(m.editor.Month(), stored)
			}
		}
	}

	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewGrid:
		m.grid, cmd = m.grid.Update(msg)
	case ViewMonthPicker:
		m.monthPicker, cmd = m.monthPicker.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	return m, cmd
}

// quit closes the program. A cell still being edited is treated as
// blurred and committed first.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if err := m.editor.Blur(context.Background()); err != nil {
		m.logger.Error("Failed to save cell on exit", logfields.Error(err))
	}
	return m, tea.Quit
}

// setNotice records err as the status bar notification.
func (m *Model) setNotice(err error) {
	var parseErr *progress.ParseError
	var persistErr *progress.PersistError
	switch {
	case errors.As(err, &parseErr):
		m.notice = fmt.Sprintf("Stored data for %s is unreadable; showing an empty month", model.MonthName(m.editor.Month()))
	case errors.As(err, &persistErr):
		m.notice = "Could not save progress: " + persistErr.Err.Error()
	default:
		m.notice = err.Error()
	}
	m.logger.Warn("Showing notice", logfields.Month(m.editor.Month()), logfields.Error(err))
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Monthly Routine Tracker", model.MonthName(m.editor.Month()))
	content := m.renderContent()

	var statusBar string
	if m.notice != "" {
		statusBar = m.layout.RenderNotice(m.notice)
	} else {
		statusBar = m.layout.RenderStatusBar(m.keyHints())
	}

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewGrid:
		return m.grid.View()
	case ViewMonthPicker:
		return m.monthPicker.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	default:
		return ""
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | esc back"
	case ViewMonthPicker:
		return "↑/↓ choose | enter select | esc back"
	}

	if m.grid.Editing() {
		return "enter/esc save | tab/↓ next | shift+tab/↑ previous | pgup/pgdn month (drops draft)"
	}
	hints := "q quit | ? help | enter edit | [ ] month | m select month | : command"
	if m.status != "" {
		return m.status + " | " + hints
	}
	return hints
}

// executeCommand handles a command string from the command palette.
func (m *Model) executeCommand(line string) tea.Cmd {
	verb, arg := command.Split(line)
	m.logger.Debug("Executing command", logfields.Command(verb))

	switch verb {
	case "month":
		month, ok := model.ParseMonth(arg)
		if !ok {
			m.notice = fmt.Sprintf("Unknown month %q", arg)
			return nil
		}
		return m.grid.SetMonth(month)
	case "today":
		return m.grid.SetMonth(model.CurrentMonth(timeNow()))
	case "reload":
		return m.grid.Reload()
	case "export":
		if arg == "" {
			m.notice = "export needs a file path"
			return nil
		}
		return m.exportMonth(arg)
	case "quit", "q":
		_, cmd := m.quit()
		return cmd
	default:
		m.notice = fmt.Sprintf("Unknown command %q", strings.TrimSpace(line))
		return nil
	}
}

// exportMonth writes the selected month to an .xlsx workbook.
func (m Model) exportMonth(path string) tea.Cmd {
	month := m.editor.Month()
	partition := m.progress.Partition()
	logger := m.logger
	return func() tea.Msg {
		err := export.SaveWorkbook(path, month, partition)
		if err != nil {
			logger.Error("Export failed", logfields.Path(path), logfields.Error(err))
		} else {
			logger.Info("Exported month", logfields.Month(month), logfields.Path(path))
		}
		return exportDoneMsg{path: path, err: err}
	}
}
