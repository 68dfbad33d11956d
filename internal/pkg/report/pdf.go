package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
)

const chartImageName = "study-hours-chart"

var pdfColumnWidths = []float64{150, 80, 80, 130}

// WritePDF renders r as an A4 PDF: title, CGPA line, subject table and the
// chart image below it.
func WritePDF(w io.Writer, r Report) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(r.title(), true)
	pdf.SetCreator("cgpatracker", true)
	if !r.GeneratedAt.IsZero() {
		pdf.SetCreationDate(r.GeneratedAt)
	}
	pdf.SetMargins(50, 40, 50)
	pdf.AddPage()

	// core fonts are cp1252; translate subject names entered as UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 24, tr(r.title()), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 18, r.CGPAText(), "", 1, "L", false, 0, "")
	if r.Evaluation != nil && r.Evaluation.ExtraHours > 0 {
		pdf.CellFormat(0, 18,
			fmt.Sprintf("With +%d hrs/week the predicted CGPA is %.2f", r.Evaluation.ExtraHours, r.Evaluation.PredictedRounded),
			"", 1, "L", false, 0, "")
	}
	pdf.Ln(12)

	tableW := 0.0
	for _, cw := range pdfColumnWidths {
		tableW += cw
	}
	left := (pageW - tableW) / 2

	// header
	pdf.SetX(left)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	for i, h := range []string{"Subject", "Credits", "Grade", "Suggested Hours"} {
		pdf.CellFormat(pdfColumnWidths[i], 22, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// body
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range r.Rows() {
		pdf.SetX(left)
		cells := []string{tr(row.Subject), strconv.Itoa(row.Credits), tr(row.Grade), row.SuggestedText()}
		for i, c := range cells {
			pdf.CellFormat(pdfColumnWidths[i], 20, c, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(r.ChartPNG) > 0 {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(chartImageName, opts, bytes.NewReader(r.ChartPNG))
		pdf.Ln(20)
		const chartW, chartH = 400.0, 300.0
		pdf.ImageOptions(chartImageName, (pageW-chartW)/2, pdf.GetY(), chartW, chartH, true, opts, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build pdf report: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf report: %w", err)
	}
	return nil
}
