package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasks_FixedOrder(t *testing.T) {
	got := Tasks()
	require.Len(t, got, 18)
	assert.Equal(t, "Wake up before Fajr", got[0])
	assert.Equal(t, "Fajr Prayer", got[1])
	assert.Equal(t, "Sleep", got[17])
	assert.Equal(t, 18, TaskCount())
}

func TestTasks_ReturnsCopy(t *testing.T) {
	got := Tasks()
	got[0] = "mutated"

	name, ok := TaskAt(0)
	require.True(t, ok)
	assert.Equal(t, "Wake up before Fajr", name)
}

func TestTaskIndex(t *testing.T) {
	assert.Equal(t, 1, TaskIndex("Fajr Prayer"))
	assert.Equal(t, 17, TaskIndex("Sleep"))
	assert.Equal(t, -1, TaskIndex("fajr prayer"))
	assert.Equal(t, -1, TaskIndex(""))
}

func TestTaskAt_OutOfRange(t *testing.T) {
	_, ok := TaskAt(-1)
	assert.False(t, ok)
	_, ok = TaskAt(18)
	assert.False(t, ok)
}
