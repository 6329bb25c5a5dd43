package grid

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/routine-tracker/internal/editor"
	"github.com/nhle/routine-tracker/internal/keys"
	"github.com/nhle/routine-tracker/internal/progress"
	"github.com/nhle/routine-tracker/internal/store"
	"github.com/nhle/routine-tracker/tests/testutil"
)

func newGrid(t *testing.T, kv store.Store, month int) (Model, *editor.Editor) {
	t.Helper()
	ed := editor.New(progress.NewStore(kv, nil), nil)
	require.NoError(t, ed.SetMonth(context.Background(), month))
	return New(ed, keys.DefaultKeyMap(), 7, 10, 0, 0), ed
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestGrid_CursorMovesAndClamps(t *testing.T) {
	m, _ := newGrid(t, testutil.NewTestStore(t), 2)

	m = press(m, runes("k"), runes("h"))
	row, day := m.Cursor()
	assert.Equal(t, 0, row)
	assert.Equal(t, 1, day)

	for i := 0; i < 40; i++ {
		m = press(m, runes("l"), runes("j"))
	}
	row, day = m.Cursor()
	assert.Equal(t, 17, row)
	assert.Equal(t, 29, day)

	first, last := m.VisibleRange()
	assert.Equal(t, 23, first)
	assert.Equal(t, 29, last)
}

func TestGrid_EditAndEnterCommits(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewTestStore(t)
	m, ed := newGrid(t, kv, 1)

	m = press(m, runes("j"), runes("l"), runes("l"), runes("l"), runes("l"))
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Editing())

	m = typeText(m, "Done")
	assert.Equal(t, "Done", ed.Draft())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Editing())
	require.NotNil(t, cmd)
	assert.Equal(t, CommittedMsg{Cell: editor.Cell{Day: 5, Task: "Fajr Prayer"}}, cmd())

	assert.Equal(t, "Done", ed.Value(5, "Fajr Prayer"))
	raw, ok, err := kv.Get(ctx, "routineProgress_1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"5":{"Fajr Prayer":"Done"}}`, raw)
	assert.Contains(t, m.View(), "Done")
}

func TestGrid_EscCommitsToo(t *testing.T) {
	m, ed := newGrid(t, testutil.NewTestStore(t), 1)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "ok")
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.Editing())
	assert.Equal(t, "ok", ed.Value(1, "Wake up before Fajr"))
}

func TestGrid_MovingToAnotherCellCommitsFirst(t *testing.T) {
	m, ed := newGrid(t, testutil.NewTestStore(t), 1)

	// Last task is "Sleep"; edit it on day 3.
	for i := 0; i < 17; i++ {
		m = press(m, runes("j"))
	}
	m = press(m, runes("l"), runes("l"))
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "X")

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})

	assert.Equal(t, "X", ed.Value(3, "Sleep"))
	cell, editing := ed.Editing()
	require.True(t, editing)
	assert.Equal(t, editor.Cell{Day: 3, Task: "Sunnah Before Sleep"}, cell)
	assert.True(t, m.Editing())
}

func TestGrid_MonthSwitchWhileEditingDropsDraft(t *testing.T) {
	m, ed := newGrid(t, testutil.NewTestStore(t), 1)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "unsaved")
	m = press(m, tea.KeyMsg{Type: tea.KeyPgDown})

	assert.False(t, m.Editing())
	assert.Equal(t, 2, ed.Month())

	m = press(m, runes("["))
	assert.Equal(t, 1, ed.Month())
	assert.Equal(t, "", ed.Value(1, "Wake up before Fajr"))
}

func TestGrid_CursorDayClampedOnShorterMonth(t *testing.T) {
	m, ed := newGrid(t, testutil.NewTestStore(t), 1)

	for i := 0; i < 30; i++ {
		m = press(m, runes("l"))
	}
	_, day := m.Cursor()
	require.Equal(t, 31, day)

	m = press(m, runes("]"))
	assert.Equal(t, 2, ed.Month())
	_, day = m.Cursor()
	assert.Equal(t, 29, day)
}

func TestGrid_PersistFailureNotifies(t *testing.T) {
	kv := &testutil.FailingStore{Store: testutil.NewTestStore(t)}
	m, ed := newGrid(t, kv, 1)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "X")
	kv.FailWrites = true

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(ErrorMsg)
	require.True(t, ok)
	var perr *progress.PersistError
	assert.ErrorAs(t, msg.Err, &perr)
	assert.False(t, m.Editing())
	assert.Equal(t, "X", ed.Value(1, "Wake up before Fajr"))
}

func TestGrid_FitDaysFollowsWidth(t *testing.T) {
	m, _ := newGrid(t, testutil.NewTestStore(t), 1)

	m.SetSize(40, 30)
	first, last := m.VisibleRange()
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, last)

	m.SetSize(400, 30)
	first, last = m.VisibleRange()
	assert.Equal(t, 1, first)
	assert.Equal(t, 7, last)
}

func TestGrid_ReloadLeavesEditing(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewTestStore(t)
	m, ed := newGrid(t, kv, 4)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(m, "draft")
	require.True(t, m.Editing())
	require.NoError(t, kv.Set(ctx, "routineProgress_4", `{"1":{"Wake up before Fajr":"yes"}}`))

	cmd := m.Reload()
	assert.Nil(t, cmd)
	assert.False(t, m.Editing())
	assert.Equal(t, "yes", ed.Display(1, "Wake up before Fajr"))
}
