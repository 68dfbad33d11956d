package grading

import (
	"fmt"
	"math"

	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
)

const (
	// hoursPerCredit is the base weekly study load per credit.
	hoursPerCredit = 2
	// lowGradePenalty is added to the base load for low grades.
	lowGradePenalty = 2
	// improvementPerTwoHours is the CGPA gain assumed for every 2 extra hours a week.
	improvementPerTwoHours = 0.2
)

// Suggestion is the suggested weekly study load for one subject.
type Suggestion struct {
	Subject    string `json:"subject"`
	Grade      string `json:"grade"`
	Credits    int    `json:"credits"`
	Hours      int    `json:"hours"`
	NeedsFocus bool   `json:"needsFocus"`
}

// Message renders the suggestion the way the form shows it.
func (s Suggestion) Message() string {
	if s.NeedsFocus {
		return fmt.Sprintf("%s: Needs %d hrs/week (focus more here)", s.Subject, s.Hours)
	}
	return fmt.Sprintf("%s: %d hrs/week is enough", s.Subject, s.Hours)
}

// Evaluation is the full result for a gradebook.
type Evaluation struct {
	Scale            string       `json:"scale"`
	MaxPoints        int          `json:"maxPoints"`
	TotalCredits     int          `json:"totalCredits"`
	CGPA             float64      `json:"cgpa"`
	CGPARounded      float64      `json:"cgpaRounded"`
	Suggestions      []Suggestion `json:"suggestions"`
	ExtraHours       int          `json:"extraHours"`
	PredictedCGPA    float64      `json:"predictedCgpa"`
	PredictedRounded float64      `json:"predictedCgpaRounded"`
}

// ComputeCGPA returns the credit-weighted mean of grade points.
func ComputeCGPA(records []SubjectRecord, scale GradeScale) (float64, error) {
	totalCredits := 0
	totalPoints := 0
	for _, r := range records {
		points, ok := scale.Points(r.Grade)
		if !ok {
			return 0, fmt.Errorf("%w: %q is not on scale %q", apperrors.ErrInvalidGrade, r.Grade, scale.Name)
		}
		totalCredits += r.Credits
		totalPoints += points * r.Credits
	}

	if totalCredits == 0 {
		return 0, fmt.Errorf("%w: no credits to average", apperrors.ErrEmptyInput)
	}
	return float64(totalPoints) / float64(totalCredits), nil
}

// SuggestStudyHours returns credits*2 hours a week, plus 2 when the grade is
// in the scale's low set.
func SuggestStudyHours(rec SubjectRecord, scale GradeScale) int {
	hours := rec.Credits * hoursPerCredit
	if scale.IsLow(rec.Grade) {
		hours += lowGradePenalty
	}
	return hours
}

// PredictFutureCGPA projects the CGPA after studying extraHoursPerWeek more,
// capped at maxScale. The linear rule is illustrative only.
func PredictFutureCGPA(currentCGPA float64, extraHoursPerWeek int, maxScale int) float64 {
	improvement := (float64(extraHoursPerWeek) / 2) * improvementPerTwoHours
	return math.Min(float64(maxScale), currentCGPA+improvement)
}

// Suggest builds the suggestion list for every record in entry order.
func Suggest(records []SubjectRecord, scale GradeScale) []Suggestion {
	out := make([]Suggestion, 0, len(records))
	for _, r := range records {
		out = append(out, Suggestion{
			Subject:    r.Name,
			Grade:      r.Grade,
			Credits:    r.Credits,
			Hours:      SuggestStudyHours(r, scale),
			NeedsFocus: scale.IsLow(r.Grade),
		})
	}
	return out
}

// Evaluate computes the CGPA, suggestions and prediction for gb.
func Evaluate(gb Gradebook, extraHoursPerWeek int) (*Evaluation, error) {
	cgpa, err := ComputeCGPA(gb.Records, gb.Scale)
	if err != nil {
		return nil, err
	}

	max := gb.Scale.Max()
	predicted := PredictFutureCGPA(cgpa, extraHoursPerWeek, max)

	return &Evaluation{
		Scale:            gb.Scale.Name,
		MaxPoints:        max,
		TotalCredits:     gb.TotalCredits(),
		CGPA:             cgpa,
		CGPARounded:      Round2(cgpa),
		Suggestions:      Suggest(gb.Records, gb.Scale),
		ExtraHours:       extraHoursPerWeek,
		PredictedCGPA:    predicted,
		PredictedRounded: Round2(predicted),
	}, nil
}

// Round2 rounds x to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
