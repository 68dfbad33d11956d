package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Subjects"

// WriteXLSX writes the subject table as a single-sheet workbook with the
// CGPA and prediction below it.
func WriteXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "F5F5F5"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"808080"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{"Subject", "Credits", "Grade", "Study Hours / Week", "Suggested Hours / Week"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}
	if err := f.SetCellStyle(sheetName, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "E", 22)

	rows := r.Rows()
	for i, row := range rows {
		line := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", line), row.Subject)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", line), row.Credits)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", line), row.Grade)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", line), row.StudyHours)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", line), row.SuggestedHours)
	}

	if r.Evaluation != nil {
		footer := len(rows) + 3
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", footer), "CGPA")
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", footer), r.Evaluation.CGPARounded)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", footer+1), fmt.Sprintf("Predicted CGPA (+%d hrs/week)", r.Evaluation.ExtraHours))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", footer+1), r.Evaluation.PredictedRounded)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", footer+2), "Scale")
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", footer+2), r.Evaluation.Scale)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx report: %w", err)
	}
	return nil
}
