// Package export writes a month of routine progress to an Excel workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/nhle/routine-tracker/internal/model"
	"github.com/nhle/routine-tracker/internal/progress"
)

// defaultSheet is the sheet every new excelize file starts with.
const defaultSheet = "Sheet1"

// BuildWorkbook lays out month as a sheet named after the month: a
// header row "Task, Day 1 … Day N" and one row per task.
func BuildWorkbook(month int, p progress.Partition) (*excelize.File, error) {
	if !model.ValidMonth(month) {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	f := excelize.NewFile()
	sheet := model.MonthName(month)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("naming sheet %s: %w", sheet, err)
	}

	days := model.DaysInMonth(month)
	header := make([]interface{}, 0, days+1)
	header = append(header, "Task")
	for day := 1; day <= days; day++ {
		header = append(header, fmt.Sprintf("Day %d", day))
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing header row: %w", err)
	}

	for i, task := range model.Tasks() {
		row := make([]interface{}, 0, days+1)
		row = append(row, task)
		for day := 1; day <= days; day++ {
			row = append(row, p.Get(day, task))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("addressing row for %s: %w", task, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing row for %s: %w", task, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 38); err != nil {
		f.Close()
		return nil, fmt.Errorf("sizing task column: %w", err)
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("freezing header: %w", err)
	}

	return f, nil
}

// WriteWorkbook writes the month workbook to w.
func WriteWorkbook(w io.Writer, month int, p progress.Partition) error {
	f, err := BuildWorkbook(month, p)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the month workbook to path.
func SaveWorkbook(path string, month int, p progress.Partition) error {
	f, err := BuildWorkbook(month, p)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}
