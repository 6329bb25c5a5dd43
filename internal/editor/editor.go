// Package editor implements the single-cell edit state machine of the
// routine grid. Every exit from editing commits the draft; there is no
// cancel transition.
package editor

import (
	"context"
	"log/slog"

	"github.com/nhle/routine-tracker/internal/logfields"
	"github.com/nhle/routine-tracker/internal/model"
	"github.com/nhle/routine-tracker/internal/progress"
)

// Cell addresses one (day, task) pair of the selected month.
type Cell struct {
	Day  int
	Task string
}

// State is the edit state of the grid.
type State int

const (
	Viewing State = iota
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

// Editor owns the application state of the grid: the selected month,
// the cell being edited and its draft. It is used by pointer.
type Editor struct {
	progress *progress.Store
	logger   *slog.Logger
	state    State
	cell     Cell
	draft    string
}

// New creates an Editor in the Viewing state over p.
func New(p *progress.Store, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		progress: p,
		logger:   logger,
		state:    Viewing,
	}
}

// State returns the current edit state.
func (e *Editor) State() State {
	return e.state
}

// Month returns the selected month.
func (e *Editor) Month() int {
	return e.progress.Month()
}

// DaysInMonth returns the number of day columns of the selected month.
func (e *Editor) DaysInMonth() int {
	return model.DaysInMonth(e.Month())
}

// Editing returns the cell being edited, if any.
func (e *Editor) Editing() (Cell, bool) {
	return e.cell, e.state == Editing
}

// Draft returns the uncommitted text of the edited cell.
func (e *Editor) Draft() string {
	return e.draft
}

// Value returns the committed value of a cell.
func (e *Editor) Value(day int, task string) string {
	return e.progress.Value(day, task)
}

// Display returns what the grid shows for a cell: the draft for the
// edited cell, otherwise the committed value.
func (e *Editor) Display(day int, task string) string {
	if e.state == Editing && e.cell.Day == day && e.cell.Task == task {
		return e.draft
	}
	return e.Value(day, task)
}

// Select begins editing (day, task). A cell already being edited is
// committed first, so an abandoned draft is saved before the new edit
// starts. The returned error comes from that commit; the new edit
// begins regardless.
func (e *Editor) Select(ctx context.Context, day int, task string) error {
	err := e.Blur(ctx)

	e.state = Editing
	e.cell = Cell{Day: day, Task: task}
	e.draft = e.progress.Value(day, task)
	return err
}

// Input replaces the draft of the edited cell.
func (e *Editor) Input(draft string) {
	if e.state != Editing {
		return
	}
	e.draft = draft
}

// Blur commits the draft unconditionally and returns to Viewing. The
// state is Viewing afterwards even when persisting fails.
func (e *Editor) Blur(ctx context.Context) error {
	if e.state != Editing {
		return nil
	}
	cell, draft := e.cell, e.draft
	e.state = Viewing
	e.cell = Cell{}
	e.draft = ""
	return e.progress.Commit(ctx, cell.Day, cell.Task, draft)
}

// Enter commits the edited cell, exactly like Blur.
func (e *Editor) Enter(ctx context.Context) error {
	return e.Blur(ctx)
}

// SetMonth discards any in-progress edit without committing it and
// hydrates month. A *progress.ParseError is returned after the switch
// has completed, with the month showing an empty grid.
func (e *Editor) SetMonth(ctx context.Context, month int) error {
	if e.state == Editing {
		e.logger.Info("Discarding unsaved draft on month change",
			logfields.Month(e.Month()), logfields.Day(e.cell.Day), logfields.Task(e.cell.Task))
	}
	e.state = Viewing
	e.cell = Cell{}
	e.draft = ""
	return e.progress.Hydrate(ctx, month)
}

// Reload re-reads the selected month from storage, discarding any draft.
func (e *Editor) Reload(ctx context.Context) error {
	return e.SetMonth(ctx, e.Month())
}
