package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yigit/cgpatracker/internal/pkg/chart"
	"github.com/yigit/cgpatracker/internal/pkg/grading"
)

func sampleReport(t *testing.T) Report {
	t.Helper()

	gb := grading.NewGradebook(grading.Extended())
	var err error
	gb, err = gb.Append(grading.SubjectRecord{Name: "Algorithms", Credits: 3, Grade: "A", StudyHoursPerWeek: 4})
	require.NoError(t, err)
	gb, err = gb.Append(grading.SubjectRecord{Name: "Çalculus", Credits: 3, Grade: "C", StudyHoursPerWeek: 2})
	require.NoError(t, err)

	eval, err := grading.Evaluate(gb, 4)
	require.NoError(t, err)

	png, err := chart.RenderStudyHours([]chart.Bar{{Label: "A", Value: 6}, {Label: "C", Value: 8}}, chart.DefaultOptions())
	require.NoError(t, err)

	return Report{Gradebook: gb, Evaluation: eval, ChartPNG: png, GeneratedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func TestRows(t *testing.T) {
	r := sampleReport(t)

	rows := r.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "6 hrs/week", rows[0].SuggestedText())
	assert.Equal(t, "8 hrs/week", rows[1].SuggestedText())
	assert.Equal(t, 2, rows[1].StudyHours)
	assert.Equal(t, "Your CGPA is: 7.00", r.CGPAText())
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleReport(t)))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestWritePDF_WithoutChart(t *testing.T) {
	r := sampleReport(t)
	r.ChartPNG = nil

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, r))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleReport(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 5)
	assert.Equal(t, []string{"Subject", "Credits", "Grade", "Study Hours / Week", "Suggested Hours / Week"}, rows[0])
	assert.Equal(t, []string{"Algorithms", "3", "A", "4", "6"}, rows[1])
	assert.Equal(t, "Çalculus", rows[2][0])

	cgpa, err := f.GetCellValue(sheetName, "B5")
	require.NoError(t, err)
	assert.Equal(t, "7", cgpa)
}
