package grading

import (
	"fmt"
	"strings"

	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
)

// SubjectRecord is one user-entered subject row.
type SubjectRecord struct {
	Name              string `json:"name"`
	Credits           int    `json:"credits"`
	Grade             string `json:"grade"`
	StudyHoursPerWeek int    `json:"studyHoursPerWeek"`
}

// Gradebook is the ordered list of subjects entered during one session,
// evaluated against a single scale. It is a value: Append returns a new
// Gradebook and leaves the receiver untouched.
type Gradebook struct {
	Scale   GradeScale      `json:"scale"`
	Records []SubjectRecord `json:"records"`
}

// NewGradebook returns an empty gradebook on the given scale.
func NewGradebook(scale GradeScale) Gradebook {
	return Gradebook{Scale: scale, Records: []SubjectRecord{}}
}

// Append validates rec against the gradebook's scale and returns a copy of
// the gradebook with rec added at the end.
func (g Gradebook) Append(rec SubjectRecord) (Gradebook, error) {
	if strings.TrimSpace(rec.Name) == "" {
		return g, fmt.Errorf("%w: subject name cannot be empty", apperrors.ErrValidationFailed)
	}
	if rec.Credits < 1 {
		return g, fmt.Errorf("%w: credits must be at least 1", apperrors.ErrOutOfRange)
	}
	if rec.StudyHoursPerWeek < 0 {
		return g, fmt.Errorf("%w: study hours cannot be negative", apperrors.ErrOutOfRange)
	}
	if !g.Scale.Has(rec.Grade) {
		return g, fmt.Errorf("%w: %q is not on scale %q", apperrors.ErrInvalidGrade, rec.Grade, g.Scale.Name)
	}

	records := make([]SubjectRecord, len(g.Records), len(g.Records)+1)
	copy(records, g.Records)
	return Gradebook{Scale: g.Scale, Records: append(records, rec)}, nil
}

// Len returns the number of subjects.
func (g Gradebook) Len() int {
	return len(g.Records)
}

// TotalCredits sums the credits of every subject.
func (g Gradebook) TotalCredits() int {
	total := 0
	for _, r := range g.Records {
		total += r.Credits
	}
	return total
}
