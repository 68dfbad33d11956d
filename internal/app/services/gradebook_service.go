package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/cgpatracker/internal/app/models/dto"
	"github.com/yigit/cgpatracker/internal/app/repositories"
	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
	"github.com/yigit/cgpatracker/internal/pkg/grading"
	"github.com/yigit/cgpatracker/internal/pkg/validation"
)

// Limits are the input bounds enforced before anything reaches the evaluator
type Limits struct {
	MinCredits        int
	MaxCredits        int
	MaxStudyHours     int
	MaxExtraHours     int
	DefaultExtraHours int
}

// GradebookService defines the interface for gradebook operations
type GradebookService interface {
	Scales() ([]grading.GradeScale, string)
	Limits() Limits
	Gradebook(ctx context.Context, sessionID string) (grading.Gradebook, error)
	AddSubject(ctx context.Context, sessionID string, req dto.AddSubjectRequest) (grading.Gradebook, error)
	Reset(ctx context.Context, sessionID, scale string) (grading.Gradebook, error)
	Evaluate(ctx context.Context, sessionID string, extraHours *int) (*grading.Evaluation, grading.Gradebook, error)
	EvaluateBatch(req dto.BatchEvaluationRequest) (*grading.Evaluation, grading.Gradebook, error)
}

// gradebookServiceImpl implements the GradebookService interface
type gradebookServiceImpl struct {
	sessions repositories.SessionRepository
	scales   *grading.Registry
	limits   Limits
	logger   zerolog.Logger
}

// NewGradebookService creates a new gradebook service instance
func NewGradebookService(sessions repositories.SessionRepository, scales *grading.Registry, limits Limits, logger zerolog.Logger) GradebookService {
	return &gradebookServiceImpl{
		sessions: sessions,
		scales:   scales,
		limits:   limits,
		logger:   logger,
	}
}

// Scales returns every registered scale and the default scale name
func (s *gradebookServiceImpl) Scales() ([]grading.GradeScale, string) {
	return s.scales.All(), s.scales.Default().Name
}

// Limits returns the configured input bounds
func (s *gradebookServiceImpl) Limits() Limits {
	return s.limits
}

// Gradebook loads the session's gradebook; an unknown session starts empty on
// the default scale.
func (s *gradebookServiceImpl) Gradebook(ctx context.Context, sessionID string) (grading.Gradebook, error) {
	if sessionID == "" {
		return grading.Gradebook{}, errMissingSession()
	}

	gb, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return grading.NewGradebook(s.scales.Default()), nil
		}
		return grading.Gradebook{}, fmt.Errorf("error loading gradebook: %w", err)
	}
	return gb, nil
}

func errMissingSession() error {
	return apperrors.NewBadRequestError("missing session")
}

// isInputError reports whether err comes from validating user input
func isInputError(err error) bool {
	return apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrOutOfRange, apperrors.ErrInvalidGrade)
}

// validateSubject checks a subject against the limits and the active scale
func (s *gradebookServiceImpl) validateSubject(req dto.AddSubjectRequest, scale grading.GradeScale) error {
	if !validation.NewStringValidation(req.Name).Validate() {
		return fmt.Errorf("%w: subject name cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.NewStringValidation(req.Name).WithMaxLength(validation.SubjectNameMaxLength).Validate() {
		return fmt.Errorf("%w: subject name must be at most %d characters", apperrors.ErrValidationFailed, validation.SubjectNameMaxLength)
	}

	if !validation.NewRangeValidation(req.Credits).Between(s.limits.MinCredits, s.limits.MaxCredits).Validate() {
		return fmt.Errorf("%w: credits must be between %d and %d", apperrors.ErrOutOfRange, s.limits.MinCredits, s.limits.MaxCredits)
	}

	if !validation.NewRangeValidation(req.StudyHoursPerWeek).Between(0, s.limits.MaxStudyHours).Validate() {
		return fmt.Errorf("%w: study hours must be between 0 and %d", apperrors.ErrOutOfRange, s.limits.MaxStudyHours)
	}

	if !scale.Has(req.Grade) {
		return fmt.Errorf("%w: %q is not one of %s", apperrors.ErrInvalidGrade, req.Grade, strings.Join(scale.Labels(), ", "))
	}

	return nil
}

// extraHours applies the default and checks the prediction bound
func (s *gradebookServiceImpl) extraHours(extra *int) (int, error) {
	if extra == nil {
		return s.limits.DefaultExtraHours, nil
	}
	if !validation.NewRangeValidation(*extra).Between(0, s.limits.MaxExtraHours).Validate() {
		return 0, fmt.Errorf("%w: extra hours must be between 0 and %d", apperrors.ErrOutOfRange, s.limits.MaxExtraHours)
	}
	return *extra, nil
}

// AddSubject validates the subject and appends it to the session's gradebook.
// The read and write happen in one repository update so concurrent adds on a
// session all land.
func (s *gradebookServiceImpl) AddSubject(ctx context.Context, sessionID string, req dto.AddSubjectRequest) (grading.Gradebook, error) {
	if sessionID == "" {
		return grading.Gradebook{}, errMissingSession()
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Grade = strings.TrimSpace(req.Grade)

	next, err := s.sessions.Update(ctx, sessionID, func(gb grading.Gradebook, found bool) (grading.Gradebook, error) {
		if !found {
			gb = grading.NewGradebook(s.scales.Default())
		}
		if err := s.validateSubject(req, gb.Scale); err != nil {
			return gb, err
		}
		return gb.Append(req.Record())
	})
	if err != nil {
		if isInputError(err) {
			return next, err
		}
		return next, fmt.Errorf("error saving gradebook: %w", err)
	}

	s.logger.Debug().Str("session", sessionID).Str("subject", req.Name).Int("subjects", next.Len()).Msg("Subject added")
	return next, nil
}

// Reset discards the session's subjects. Without a scale the session is
// dropped and starts over on the default scale; otherwise an empty gradebook
// on the named scale is stored.
func (s *gradebookServiceImpl) Reset(ctx context.Context, sessionID, scale string) (grading.Gradebook, error) {
	if sessionID == "" {
		return grading.Gradebook{}, errMissingSession()
	}

	if scale == "" {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return grading.Gradebook{}, fmt.Errorf("error resetting gradebook: %w", err)
		}
		s.logger.Debug().Str("session", sessionID).Msg("Gradebook cleared")
		return grading.NewGradebook(s.scales.Default()), nil
	}

	chosen, err := s.scales.Get(scale)
	if err != nil {
		return grading.Gradebook{}, err
	}

	gb := grading.NewGradebook(chosen)
	if err := s.sessions.Save(ctx, sessionID, gb); err != nil {
		return grading.Gradebook{}, fmt.Errorf("error resetting gradebook: %w", err)
	}

	s.logger.Debug().Str("session", sessionID).Str("scale", chosen.Name).Msg("Gradebook reset")
	return gb, nil
}

// Evaluate computes the CGPA, suggestions and prediction for the session
func (s *gradebookServiceImpl) Evaluate(ctx context.Context, sessionID string, extraHours *int) (*grading.Evaluation, grading.Gradebook, error) {
	extra, err := s.extraHours(extraHours)
	if err != nil {
		return nil, grading.Gradebook{}, err
	}

	gb, err := s.Gradebook(ctx, sessionID)
	if err != nil {
		return nil, grading.Gradebook{}, err
	}
	if gb.Len() == 0 {
		return nil, gb, fmt.Errorf("%w: add a subject first", apperrors.ErrEmptyInput)
	}

	eval, err := grading.Evaluate(gb, extra)
	if err != nil {
		return nil, gb, err
	}
	return eval, gb, nil
}

// EvaluateBatch evaluates a full subject list on the requested scale without
// using the session
func (s *gradebookServiceImpl) EvaluateBatch(req dto.BatchEvaluationRequest) (*grading.Evaluation, grading.Gradebook, error) {
	extra, err := s.extraHours(req.ExtraHours)
	if err != nil {
		return nil, grading.Gradebook{}, err
	}

	scale := s.scales.Default()
	if req.Scale != "" {
		if scale, err = s.scales.Get(req.Scale); err != nil {
			return nil, grading.Gradebook{}, err
		}
	}

	gb := grading.NewGradebook(scale)
	for i, sub := range req.Subjects {
		sub.Name = strings.TrimSpace(sub.Name)
		sub.Grade = strings.TrimSpace(sub.Grade)
		if sub.Name == "" {
			continue
		}
		if err := s.validateSubject(sub, scale); err != nil {
			return nil, gb, fmt.Errorf("subject %d: %w", i+1, err)
		}
		if gb, err = gb.Append(sub.Record()); err != nil {
			return nil, gb, fmt.Errorf("subject %d: %w", i+1, err)
		}
	}

	if gb.Len() == 0 {
		return nil, gb, fmt.Errorf("%w: no named subjects submitted", apperrors.ErrEmptyInput)
	}

	eval, err := grading.Evaluate(gb, extra)
	if err != nil {
		return nil, gb, err
	}
	return eval, gb, nil
}
