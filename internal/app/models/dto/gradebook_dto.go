package dto

import (
	"fmt"

	"github.com/yigit/cgpatracker/internal/pkg/grading"
)

// AddSubjectRequest is one subject as entered in the form or API.
// Numeric bounds are checked by the service against the configured limits.
type AddSubjectRequest struct {
	Name              string `json:"name" form:"name" binding:"required" example:"Data Structures"`
	Credits           int    `json:"credits" form:"credits" example:"4"`
	Grade             string `json:"grade" form:"grade" binding:"required" example:"A"`
	StudyHoursPerWeek int    `json:"studyHoursPerWeek" form:"studyHoursPerWeek" example:"6"`
}

// Record converts the request into a grading record.
func (r AddSubjectRequest) Record() grading.SubjectRecord {
	return grading.SubjectRecord{
		Name:              r.Name,
		Credits:           r.Credits,
		Grade:             r.Grade,
		StudyHoursPerWeek: r.StudyHoursPerWeek,
	}
}

// BatchEvaluationRequest evaluates a full subject list without touching the
// session. Rows with a blank name are ignored.
type BatchEvaluationRequest struct {
	Scale      string              `json:"scale" form:"scale" example:"extended"`
	Subjects   []AddSubjectRequest `json:"subjects" form:"subjects"`
	ExtraHours *int                `json:"extraHours" form:"extraHours" example:"2"`
}

// ScaleResponse describes one grade scale
type ScaleResponse struct {
	Name      string          `json:"name" example:"extended"`
	MaxPoints int             `json:"maxPoints" example:"10"`
	Grades    []grading.Grade `json:"grades"`
	LowGrades []string        `json:"lowGrades"`
	Default   bool            `json:"default"`
}

// NewScaleResponse converts a scale to its response
func NewScaleResponse(s grading.GradeScale, isDefault bool) ScaleResponse {
	return ScaleResponse{
		Name:      s.Name,
		MaxPoints: s.Max(),
		Grades:    s.Grades,
		LowGrades: s.LowGrades,
		Default:   isDefault,
	}
}

// GradebookResponse is the session's subject list
type GradebookResponse struct {
	Scale        string                  `json:"scale" example:"extended"`
	Subjects     []grading.SubjectRecord `json:"subjects"`
	TotalCredits int                     `json:"totalCredits" example:"12"`
}

// NewGradebookResponse converts a gradebook to its response
func NewGradebookResponse(gb grading.Gradebook) GradebookResponse {
	subjects := gb.Records
	if subjects == nil {
		subjects = []grading.SubjectRecord{}
	}
	return GradebookResponse{
		Scale:        gb.Scale.Name,
		Subjects:     subjects,
		TotalCredits: gb.TotalCredits(),
	}
}

// SuggestionResponse is one subject's suggested study load
type SuggestionResponse struct {
	grading.Suggestion
	Message string `json:"message" example:"Physics: Needs 6 hrs/week (focus more here)"`
}

// EvaluationResponse is the evaluated gradebook
type EvaluationResponse struct {
	Scale          string               `json:"scale" example:"extended"`
	MaxPoints      int                  `json:"maxPoints" example:"10"`
	TotalCredits   int                  `json:"totalCredits" example:"6"`
	CGPA           float64              `json:"cgpa" example:"8.67"`
	CGPAText       string               `json:"cgpaText" example:"Your CGPA is: 8.67"`
	Suggestions    []SuggestionResponse `json:"suggestions"`
	ExtraHours     int                  `json:"extraHours" example:"2"`
	PredictedCGPA  float64              `json:"predictedCgpa" example:"8.87"`
	PredictionText string               `json:"predictionText" example:"If you study +2 hrs/week → Predicted CGPA ≈ 8.87"`
}

// NewEvaluationResponse converts an evaluation to its response
func NewEvaluationResponse(e *grading.Evaluation) EvaluationResponse {
	suggestions := make([]SuggestionResponse, 0, len(e.Suggestions))
	for _, s := range e.Suggestions {
		suggestions = append(suggestions, SuggestionResponse{Suggestion: s, Message: s.Message()})
	}
	return EvaluationResponse{
		Scale:          e.Scale,
		MaxPoints:      e.MaxPoints,
		TotalCredits:   e.TotalCredits,
		CGPA:           e.CGPARounded,
		CGPAText:       fmt.Sprintf("Your CGPA is: %.2f", e.CGPA),
		Suggestions:    suggestions,
		ExtraHours:     e.ExtraHours,
		PredictedCGPA:  e.PredictedRounded,
		PredictionText: fmt.Sprintf("If you study +%d hrs/week → Predicted CGPA ≈ %.2f", e.ExtraHours, e.PredictedCGPA),
	}
}

// BatchEvaluationResponse carries the evaluated subjects back with the result
type BatchEvaluationResponse struct {
	Gradebook  GradebookResponse  `json:"gradebook"`
	Evaluation EvaluationResponse `json:"evaluation"`
}
