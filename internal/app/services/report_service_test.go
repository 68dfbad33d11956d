package services

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/cgpatracker/internal/pkg/chart"
	"github.com/yigit/cgpatracker/internal/pkg/grading"
)

func evaluated(t *testing.T) (grading.Gradebook, *grading.Evaluation) {
	t.Helper()
	gb, err := grading.NewGradebook(grading.Extended()).Append(grading.SubjectRecord{Name: "Compilers", Credits: 4, Grade: "B+"})
	require.NoError(t, err)
	eval, err := grading.Evaluate(gb, 2)
	require.NoError(t, err)
	return gb, eval
}

func TestReportService(t *testing.T) {
	opts := chart.DefaultOptions()
	opts.Width, opts.Height = 320, 240
	svc := NewReportService(opts, zerolog.Nop())
	gb, eval := evaluated(t)

	png, err := svc.Chart(eval)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	pdf, err := svc.PDF(gb, eval)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	xlsx, err := svc.XLSX(gb, eval)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(xlsx, []byte("PK")))
}

func TestReportService_NoEvaluation(t *testing.T) {
	svc := NewReportService(chart.DefaultOptions(), zerolog.Nop())
	_, err := svc.Chart(nil)
	assert.Error(t, err)
}
