package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/cgpatracker/internal/pkg/chart"
	"github.com/yigit/cgpatracker/internal/pkg/grading"
	"github.com/yigit/cgpatracker/internal/pkg/report"
)

// ReportService defines the interface for chart and report rendering
type ReportService interface {
	Chart(eval *grading.Evaluation) ([]byte, error)
	PDF(gb grading.Gradebook, eval *grading.Evaluation) ([]byte, error)
	XLSX(gb grading.Gradebook, eval *grading.Evaluation) ([]byte, error)
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	chartOptions chart.Options
	logger       zerolog.Logger
	now          func() time.Time
}

// NewReportService creates a new report service instance
func NewReportService(chartOptions chart.Options, logger zerolog.Logger) ReportService {
	return &reportServiceImpl{
		chartOptions: chartOptions,
		logger:       logger,
		now:          time.Now,
	}
}

// Chart renders the suggested-hours bar chart, one bar per subject labelled
// with its grade
func (s *reportServiceImpl) Chart(eval *grading.Evaluation) ([]byte, error) {
	if eval == nil {
		return nil, fmt.Errorf("chart requires an evaluation")
	}

	bars := make([]chart.Bar, 0, len(eval.Suggestions))
	for _, sug := range eval.Suggestions {
		bars = append(bars, chart.Bar{Label: sug.Grade, Value: sug.Hours})
	}

	png, err := chart.RenderStudyHours(bars, s.chartOptions)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to render study hours chart")
		return nil, fmt.Errorf("error rendering chart: %w", err)
	}
	return png, nil
}

func (s *reportServiceImpl) build(gb grading.Gradebook, eval *grading.Evaluation, withChart bool) (report.Report, error) {
	r := report.Report{
		Title:       "CGPA Report",
		Gradebook:   gb,
		Evaluation:  eval,
		GeneratedAt: s.now(),
	}
	if withChart {
		png, err := s.Chart(eval)
		if err != nil {
			return r, err
		}
		r.ChartPNG = png
	}
	return r, nil
}

// PDF renders the downloadable PDF report
func (s *reportServiceImpl) PDF(gb grading.Gradebook, eval *grading.Evaluation) ([]byte, error) {
	r, err := s.build(gb, eval, true)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, r); err != nil {
		s.logger.Error().Err(err).Int("subjects", gb.Len()).Msg("Failed to write PDF report")
		return nil, fmt.Errorf("error generating pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX renders the spreadsheet export
func (s *reportServiceImpl) XLSX(gb grading.Gradebook, eval *grading.Evaluation) ([]byte, error) {
	r, err := s.build(gb, eval, false)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, r); err != nil {
		s.logger.Error().Err(err).Int("subjects", gb.Len()).Msg("Failed to write XLSX report")
		return nil, fmt.Errorf("error generating xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
