package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/routine-tracker/internal/ui/monthpicker"
)

func monthpickerClose() tea.Msg {
	return monthpicker.CloseMsg{}
}

func monthSelected(month int) tea.Msg {
	return monthpicker.MonthSelectedMsg{Month: month}
}
