package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestLayout_ContentHeight(t *testing.T) {
	assert.Equal(t, 22, NewLayout(80, 24).ContentHeight())
	assert.Equal(t, 0, NewLayout(80, 1).ContentHeight())
}

func TestLayout_BarsSpanWidth(t *testing.T) {
	l := NewLayout(60, 24)

	header := l.RenderHeader("Monthly Routine Tracker", "January")
	assert.Equal(t, 60, lipgloss.Width(header))
	assert.Contains(t, header, "January")

	status := l.RenderStatusBar("q quit")
	assert.Equal(t, 60, lipgloss.Width(status))

	notice := l.RenderNotice("persisting progress routineProgress_1: disk full")
	assert.True(t, strings.Contains(notice, "disk full"))
}
