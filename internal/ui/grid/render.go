package grid

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nhle/routine-tracker/internal/model"
	"github.com/nhle/routine-tracker/internal/theme"
)

// ValueFunc returns the text shown for a (day, task) cell.
type ValueFunc func(day int, task string) string

// RenderOptions describes one rendering of the routine table.
type RenderOptions struct {
	// FirstDay and LastDay bound the rendered day columns, inclusive.
	FirstDay int
	LastDay  int

	// CellWidth is the inner width of a day cell. Zero leaves cells at
	// their natural width.
	CellWidth int

	Value ValueFunc

	// CursorRow and CursorDay mark the highlighted cell. CursorDay 0
	// disables the highlight.
	CursorRow int
	CursorDay int

	// EditView, when not empty, replaces the cursor cell's content and
	// uses the editing style.
	EditView string
}

// DayLabel returns the header label of a day column.
func DayLabel(day int) string {
	return fmt.Sprintf("Day %d", day)
}

// Render draws the task × day table.
func Render(opts RenderOptions) string {
	if opts.FirstDay < 1 {
		opts.FirstDay = 1
	}
	if opts.LastDay < opts.FirstDay {
		opts.LastDay = opts.FirstDay
	}

	headers := []string{"Task"}
	for day := opts.FirstDay; day <= opts.LastDay; day++ {
		headers = append(headers, DayLabel(day))
	}

	tasks := model.Tasks()
	rows := make([][]string, len(tasks))
	for i, task := range tasks {
		row := []string{task}
		for day := opts.FirstDay; day <= opts.LastDay; day++ {
			if opts.EditView != "" && i == opts.CursorRow && day == opts.CursorDay {
				row = append(row, opts.EditView)
				continue
			}
			value := ""
			if opts.Value != nil {
				value = opts.Value(day, task)
			}
			row = append(row, truncate(value, opts.CellWidth))
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col == 0 {
					return theme.DayHeaderStyle
				}
				return theme.DayHeaderStyle.Width(cellWidth(opts.CellWidth))
			}
			if col == 0 {
				return theme.TaskNameStyle
			}
			style := theme.CellStyle
			if row == opts.CursorRow && opts.FirstDay+col-1 == opts.CursorDay {
				style = theme.CursorCellStyle
				if opts.EditView != "" {
					style = theme.EditingCellStyle
				}
			}
			return style.Width(cellWidth(opts.CellWidth))
		})

	return t.Render()
}

// cellWidth converts an inner width to a style width including padding.
func cellWidth(inner int) int {
	if inner <= 0 {
		return 0
	}
	return inner + 2
}

// truncate shortens s to at most width runes, marking the cut with "…".
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
