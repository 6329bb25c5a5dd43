package help

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/routine-tracker/internal/editor"
	"github.com/nhle/routine-tracker/internal/keys"
	"github.com/nhle/routine-tracker/internal/progress"
	"github.com/nhle/routine-tracker/tests/testutil"
)

func newHelp(t *testing.T, month int) (Model, *editor.Editor) {
	t.Helper()
	ed := editor.New(progress.NewStore(testutil.NewTestStore(t), nil), nil)
	require.NoError(t, ed.SetMonth(context.Background(), month))
	return New(keys.DefaultKeyMap(), ed, 120, 40), ed
}

func TestStatus_Viewing(t *testing.T) {
	m, _ := newHelp(t, 2)

	assert.Equal(t, "Viewing February (29 days). Leaving a cell always saves it.", m.Status())
	assert.Equal(t, "Moving around", m.sections()[0].title)
}

func TestStatus_EditingWarnsAboutDraft(t *testing.T) {
	m, ed := newHelp(t, 1)
	require.NoError(t, ed.Select(context.Background(), 5, "Sleep"))
	ed.Input("8h")

	assert.Equal(t, `Editing Day 5, Sleep. Switching month now drops the draft "8h".`, m.Status())
	assert.Equal(t, "Editing a cell", m.sections()[0].title)
}

func TestView_ListsSectionsAndCommands(t *testing.T) {
	m, _ := newHelp(t, 1)

	view := m.View()
	for _, want := range []string{"Keyboard Shortcuts", "Moving around", "Editing a cell", "Months", "Commands", "export <file.xlsx>"} {
		assert.Contains(t, view, want)
	}
}
