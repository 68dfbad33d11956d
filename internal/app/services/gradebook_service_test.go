package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/cgpatracker/internal/app/models/dto"
	"github.com/yigit/cgpatracker/internal/app/repositories"
	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
	"github.com/yigit/cgpatracker/internal/pkg/grading"
)

var testLimits = Limits{MinCredits: 1, MaxCredits: 10, MaxStudyHours: 50, MaxExtraHours: 20, DefaultExtraHours: 2}

func newTestService(t *testing.T, defaultScale string) GradebookService {
	t.Helper()
	reg, err := grading.NewRegistry(defaultScale)
	require.NoError(t, err)
	return NewGradebookService(repositories.NewMemorySessionRepository(time.Hour), reg, testLimits, zerolog.Nop())
}

func intPtr(v int) *int { return &v }

func TestAddSubjectAndEvaluate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, grading.ScaleCoarse)

	_, err := svc.AddSubject(ctx, "s1", dto.AddSubjectRequest{Name: " Maths ", Credits: 4, Grade: "A", StudyHoursPerWeek: 5})
	require.NoError(t, err)
	gb, err := svc.AddSubject(ctx, "s1", dto.AddSubjectRequest{Name: "Physics", Credits: 2, Grade: "C"})
	require.NoError(t, err)
	assert.Equal(t, 2, gb.Len())
	assert.Equal(t, "Maths", gb.Records[0].Name)

	eval, gb, err := svc.Evaluate(ctx, "s1", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, gb.Len())
	assert.Equal(t, 8.67, eval.CGPARounded)
	assert.Equal(t, 2, eval.ExtraHours)

	eval, _, err = svc.Evaluate(ctx, "s1", intPtr(20))
	require.NoError(t, err)
	assert.Equal(t, 10.0, eval.PredictedCGPA)

	// sessions are isolated
	other, err := svc.Gradebook(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, 0, other.Len())
	assert.Equal(t, grading.ScaleCoarse, other.Scale.Name)
}

func TestAddSubject_InputBoundary(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, grading.ScaleExtended)

	tests := []struct {
		name string
		req  dto.AddSubjectRequest
		want error
	}{
		{"blank name", dto.AddSubjectRequest{Name: "   ", Credits: 3, Grade: "A"}, apperrors.ErrValidationFailed},
		{"name too long", dto.AddSubjectRequest{Name: strings.Repeat("x", 101), Credits: 3, Grade: "A"}, apperrors.ErrValidationFailed},
		{"credits below range", dto.AddSubjectRequest{Name: "X", Credits: 0, Grade: "A"}, apperrors.ErrOutOfRange},
		{"credits above range", dto.AddSubjectRequest{Name: "X", Credits: 11, Grade: "A"}, apperrors.ErrOutOfRange},
		{"hours above range", dto.AddSubjectRequest{Name: "X", Credits: 3, Grade: "A", StudyHoursPerWeek: 51}, apperrors.ErrOutOfRange},
		{"negative hours", dto.AddSubjectRequest{Name: "X", Credits: 3, Grade: "A", StudyHoursPerWeek: -2}, apperrors.ErrOutOfRange},
		{"grade not on scale", dto.AddSubjectRequest{Name: "X", Credits: 3, Grade: "E"}, apperrors.ErrInvalidGrade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddSubject(ctx, "s", tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	gb, err := svc.Gradebook(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 0, gb.Len(), "rejected subjects never reach the gradebook")
}

func TestEvaluate_Errors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "")

	_, _, err := svc.Evaluate(ctx, "empty", nil)
	assert.ErrorIs(t, err, apperrors.ErrEmptyInput)

	_, _, err = svc.Evaluate(ctx, "empty", intPtr(21))
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)

	_, _, err = svc.Evaluate(ctx, "empty", intPtr(-1))
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)

	_, err = svc.Gradebook(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, grading.ScaleExtended)

	_, err := svc.AddSubject(ctx, "s1", dto.AddSubjectRequest{Name: "Maths", Credits: 3, Grade: "A+"})
	require.NoError(t, err)

	gb, err := svc.Reset(ctx, "s1", grading.ScaleCoarse)
	require.NoError(t, err)
	assert.Equal(t, 0, gb.Len())
	assert.Equal(t, grading.ScaleCoarse, gb.Scale.Name)

	// A+ is not on the coarse scale
	_, err = svc.AddSubject(ctx, "s1", dto.AddSubjectRequest{Name: "Maths", Credits: 3, Grade: "A+"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)

	_, err = svc.Reset(ctx, "s1", "nope")
	assert.ErrorIs(t, err, apperrors.ErrUnknownScale)
}

func TestReset_WithoutScaleDropsSession(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemorySessionRepository(time.Hour)
	reg, err := grading.NewRegistry(grading.ScaleCoarse)
	require.NoError(t, err)
	svc := NewGradebookService(repo, reg, testLimits, zerolog.Nop())

	_, err = svc.AddSubject(ctx, "s1", dto.AddSubjectRequest{Name: "Maths", Credits: 3, Grade: "A"})
	require.NoError(t, err)
	require.Equal(t, 1, repo.Len())

	gb, err := svc.Reset(ctx, "s1", "")
	require.NoError(t, err)
	assert.Equal(t, 0, gb.Len())
	assert.Equal(t, grading.ScaleCoarse, gb.Scale.Name)
	assert.Equal(t, 0, repo.Len())

	_, err = svc.Reset(ctx, "", "")
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

// slowRepo stretches every read-modify-write so concurrent calls overlap.
type slowRepo struct{ repositories.SessionRepository }

func (r slowRepo) Load(ctx context.Context, id string) (grading.Gradebook, error) {
	time.Sleep(5 * time.Millisecond)
	return r.SessionRepository.Load(ctx, id)
}

func (r slowRepo) Update(ctx context.Context, id string, fn repositories.UpdateFunc) (grading.Gradebook, error) {
	return r.SessionRepository.Update(ctx, id, func(gb grading.Gradebook, found bool) (grading.Gradebook, error) {
		time.Sleep(time.Millisecond)
		return fn(gb, found)
	})
}

func TestAddSubject_Concurrent(t *testing.T) {
	ctx := context.Background()
	reg, err := grading.NewRegistry("")
	require.NoError(t, err)
	svc := NewGradebookService(slowRepo{repositories.NewMemorySessionRepository(time.Hour)}, reg, testLimits, zerolog.Nop())

	const adds = 10
	var wg sync.WaitGroup
	errs := make(chan error, adds)
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.AddSubject(ctx, "s1", dto.AddSubjectRequest{Name: fmt.Sprintf("Subject %d", i), Credits: 2, Grade: "B"})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	gb, err := svc.Gradebook(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, adds, gb.Len())
}

func TestEvaluateBatch(t *testing.T) {
	svc := newTestService(t, grading.ScaleExtended)

	eval, gb, err := svc.EvaluateBatch(dto.BatchEvaluationRequest{
		Subjects: []dto.AddSubjectRequest{
			{Name: "Algorithms", Credits: 3, Grade: "A"},
			{Name: "", Credits: 1, Grade: "F"},
			{Name: "Networks", Credits: 3, Grade: "C"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, gb.Len(), "blank rows are skipped")
	assert.Equal(t, 7.0, eval.CGPA)
	assert.Equal(t, 6, eval.Suggestions[0].Hours)
	assert.Equal(t, 8, eval.Suggestions[1].Hours)

	_, _, err = svc.EvaluateBatch(dto.BatchEvaluationRequest{Subjects: []dto.AddSubjectRequest{{Name: " "}}})
	assert.ErrorIs(t, err, apperrors.ErrEmptyInput)

	_, _, err = svc.EvaluateBatch(dto.BatchEvaluationRequest{Scale: "coarse", Subjects: []dto.AddSubjectRequest{{Name: "X", Credits: 2, Grade: "B+"}}})
	assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)

	_, _, err = svc.EvaluateBatch(dto.BatchEvaluationRequest{Scale: "ten-point"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownScale)
}

type failingRepo struct{ repositories.SessionRepository }

func (failingRepo) Load(ctx context.Context, id string) (grading.Gradebook, error) {
	return grading.Gradebook{}, errors.New("connection refused")
}

func TestGradebook_RepositoryFailure(t *testing.T) {
	reg, err := grading.NewRegistry("")
	require.NoError(t, err)
	svc := NewGradebookService(failingRepo{}, reg, testLimits, zerolog.Nop())

	_, err = svc.Gradebook(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrSessionNotFound)
}
