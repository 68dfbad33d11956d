package grading

import (
	"fmt"
	"strings"

	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
)

// Grade is a single letter grade and its grade-point value.
type Grade struct {
	Label  string `json:"label" yaml:"label"`
	Points int    `json:"points" yaml:"points"`
}

// GradeScale maps letter grades to grade points. The order of Grades is the
// display order (best first). LowGrades lists the labels that earn the extra
// study-hour penalty in SuggestStudyHours.
type GradeScale struct {
	Name      string   `json:"name" yaml:"name"`
	Grades    []Grade  `json:"grades" yaml:"grades"`
	LowGrades []string `json:"lowGrades" yaml:"low_grades"`
}

// Built-in scale names
const (
	ScaleExtended = "extended"
	ScaleCoarse   = "coarse"
)

// Extended is the 9-point scale with "+" grades.
func Extended() GradeScale {
	return GradeScale{
		Name: ScaleExtended,
		Grades: []Grade{
			{"A+", 10}, {"A", 9}, {"B+", 8}, {"B", 7},
			{"C+", 6}, {"C", 5}, {"D+", 4}, {"D", 3}, {"F", 0},
		},
		LowGrades: []string{"C+", "C", "D+", "D", "F"},
	}
}

// Coarse is the 5-point scale.
func Coarse() GradeScale {
	return GradeScale{
		Name: ScaleCoarse,
		Grades: []Grade{
			{"A", 10}, {"B", 8}, {"C", 6}, {"D", 4}, {"F", 0},
		},
		LowGrades: []string{"C", "D", "F"},
	}
}

// Points returns the grade-point value for label.
func (s GradeScale) Points(label string) (int, bool) {
	for _, g := range s.Grades {
		if g.Label == label {
			return g.Points, true
		}
	}
	return 0, false
}

// Has reports whether label is a grade of this scale.
func (s GradeScale) Has(label string) bool {
	_, ok := s.Points(label)
	return ok
}

// IsLow reports whether label belongs to the scale's low-grade subset.
func (s GradeScale) IsLow(label string) bool {
	for _, l := range s.LowGrades {
		if l == label {
			return true
		}
	}
	return false
}

// Max returns the highest grade-point value on the scale.
func (s GradeScale) Max() int {
	max := 0
	for _, g := range s.Grades {
		if g.Points > max {
			max = g.Points
		}
	}
	return max
}

// Labels returns the grade labels in display order.
func (s GradeScale) Labels() []string {
	labels := make([]string, 0, len(s.Grades))
	for _, g := range s.Grades {
		labels = append(labels, g.Label)
	}
	return labels
}

// Validate checks that the scale is usable: it has a name, at least one grade,
// unique labels, non-negative points, and a low-grade subset drawn from its labels.
func (s GradeScale) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: scale name cannot be empty", apperrors.ErrValidationFailed)
	}
	if len(s.Grades) == 0 {
		return fmt.Errorf("%w: scale %q has no grades", apperrors.ErrValidationFailed, s.Name)
	}

	seen := make(map[string]struct{}, len(s.Grades))
	for _, g := range s.Grades {
		if strings.TrimSpace(g.Label) == "" {
			return fmt.Errorf("%w: scale %q has an empty grade label", apperrors.ErrValidationFailed, s.Name)
		}
		if g.Points < 0 {
			return fmt.Errorf("%w: grade %q on scale %q has negative points", apperrors.ErrValidationFailed, g.Label, s.Name)
		}
		if _, dup := seen[g.Label]; dup {
			return fmt.Errorf("%w: grade %q appears twice on scale %q", apperrors.ErrValidationFailed, g.Label, s.Name)
		}
		seen[g.Label] = struct{}{}
	}

	for _, l := range s.LowGrades {
		if _, ok := seen[l]; !ok {
			return fmt.Errorf("%w: low grade %q is not on scale %q", apperrors.ErrValidationFailed, l, s.Name)
		}
	}
	return nil
}

// Registry holds the scales known to the application, keyed by name, and
// remembers registration order for listing.
type Registry struct {
	scales       map[string]GradeScale
	order        []string
	defaultScale string
}

// NewRegistry builds a registry from the built-in scales plus any extra ones.
// An extra scale with a built-in name replaces it.
func NewRegistry(defaultScale string, extra ...GradeScale) (*Registry, error) {
	r := &Registry{scales: make(map[string]GradeScale)}
	for _, s := range append([]GradeScale{Extended(), Coarse()}, extra...) {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.scales[s.Name]; !exists {
			r.order = append(r.order, s.Name)
		}
		r.scales[s.Name] = s
	}

	if defaultScale == "" {
		defaultScale = ScaleExtended
	}
	if _, ok := r.scales[defaultScale]; !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownScale, defaultScale)
	}
	r.defaultScale = defaultScale
	return r, nil
}

// Get returns the scale registered under name.
func (r *Registry) Get(name string) (GradeScale, error) {
	s, ok := r.scales[name]
	if !ok {
		return GradeScale{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownScale, name)
	}
	return s, nil
}

// Default returns the default scale.
func (r *Registry) Default() GradeScale {
	return r.scales[r.defaultScale]
}

// All returns every registered scale in registration order.
func (r *Registry) All() []GradeScale {
	out := make([]GradeScale, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.scales[name])
	}
	return out
}
