package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/routine-tracker/internal/theme"
)

// Layout manages the terminal frame: a header line, the content area
// and a status line.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	h := l.Height - l.HeaderHeight - l.StatusBarHeight
	if h < 0 {
		return 0
	}
	return h
}

// RenderHeader renders the top header bar with a title on the left and
// the selected month on the right.
func (l Layout) RenderHeader(title string, right string) string {
	return l.bar(theme.HeaderStyle, theme.HeaderStyle.Render(title), theme.HeaderStyle.Render(right))
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	return l.bar(theme.StatusBarStyle, theme.StatusBarStyle.Render(hints), "")
}

// RenderNotice renders the bottom bar in the error style.
func (l Layout) RenderNotice(message string) string {
	return l.bar(theme.ErrorBarStyle, theme.ErrorBarStyle.Render(message), "")
}

// bar joins left and right with a filler in style's background so the
// bar spans the full width.
func (l Layout) bar(style lipgloss.Style, left, right string) string {
	gap := l.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(style.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, filler, right)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
