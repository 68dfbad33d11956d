// Package report writes the downloadable CGPA report documents.
package report

import (
	"fmt"
	"time"

	"github.com/yigit/cgpatracker/internal/pkg/grading"
)

// Report is everything a document needs: the evaluated gradebook and the
// rendered chart.
type Report struct {
	Title       string
	Gradebook   grading.Gradebook
	Evaluation  *grading.Evaluation
	ChartPNG    []byte
	GeneratedAt time.Time
}

// Row is one table line shared by every output format.
type Row struct {
	Subject        string
	Credits        int
	Grade          string
	StudyHours     int
	SuggestedHours int
}

// SuggestedText formats the suggested hours column.
func (r Row) SuggestedText() string {
	return fmt.Sprintf("%d hrs/week", r.SuggestedHours)
}

// Rows joins the gradebook records with their suggestions.
func (r Report) Rows() []Row {
	rows := make([]Row, 0, len(r.Gradebook.Records))
	for i, rec := range r.Gradebook.Records {
		suggested := grading.SuggestStudyHours(rec, r.Gradebook.Scale)
		if r.Evaluation != nil && i < len(r.Evaluation.Suggestions) {
			suggested = r.Evaluation.Suggestions[i].Hours
		}
		rows = append(rows, Row{
			Subject:        rec.Name,
			Credits:        rec.Credits,
			Grade:          rec.Grade,
			StudyHours:     rec.StudyHoursPerWeek,
			SuggestedHours: suggested,
		})
	}
	return rows
}

// CGPAText is the headline sentence of the report.
func (r Report) CGPAText() string {
	if r.Evaluation == nil {
		return "Your CGPA is: -"
	}
	return fmt.Sprintf("Your CGPA is: %.2f", r.Evaluation.CGPA)
}

func (r Report) title() string {
	if r.Title == "" {
		return "CGPA Report"
	}
	return r.Title
}
