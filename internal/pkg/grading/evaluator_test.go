package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
)

func TestComputeCGPA_CoarseExample(t *testing.T) {
	records := []SubjectRecord{
		{Name: "Maths", Credits: 4, Grade: "A"},
		{Name: "Physics", Credits: 2, Grade: "C"},
	}

	cgpa, err := ComputeCGPA(records, Coarse())

	require.NoError(t, err)
	assert.InDelta(t, 52.0/6.0, cgpa, 1e-9)
	assert.Equal(t, 8.67, Round2(cgpa))
}

func TestComputeCGPA_SingleSubjectYieldsGradePoints(t *testing.T) {
	for _, scale := range []GradeScale{Extended(), Coarse()} {
		for _, g := range scale.Grades {
			cgpa, err := ComputeCGPA([]SubjectRecord{{Name: "Only", Credits: 1, Grade: g.Label}}, scale)
			require.NoError(t, err)
			assert.Equal(t, float64(g.Points), cgpa, "scale %s grade %s", scale.Name, g.Label)
		}
	}
}

func TestComputeCGPA_OrderInvariantAndBounded(t *testing.T) {
	scale := Extended()
	records := []SubjectRecord{
		{Name: "A", Credits: 3, Grade: "A+"},
		{Name: "B", Credits: 1, Grade: "F"},
		{Name: "C", Credits: 4, Grade: "C+"},
		{Name: "D", Credits: 2, Grade: "B"},
	}
	reversed := make([]SubjectRecord, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}

	forward, err := ComputeCGPA(records, scale)
	require.NoError(t, err)
	backward, err := ComputeCGPA(reversed, scale)
	require.NoError(t, err)

	assert.InDelta(t, forward, backward, 1e-12)
	assert.GreaterOrEqual(t, forward, 0.0)
	assert.LessOrEqual(t, forward, float64(scale.Max()))
}

func TestComputeCGPA_EmptyInput(t *testing.T) {
	_, err := ComputeCGPA(nil, Extended())
	assert.ErrorIs(t, err, apperrors.ErrEmptyInput)
}

func TestComputeCGPA_GradeNotOnScale(t *testing.T) {
	_, err := ComputeCGPA([]SubjectRecord{{Name: "X", Credits: 2, Grade: "A+"}}, Coarse())
	assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)
}

func TestSuggestStudyHours(t *testing.T) {
	tests := []struct {
		name    string
		scale   GradeScale
		credits int
		grade   string
		want    int
	}{
		{"extended top grade", Extended(), 3, "A", 6},
		{"extended low grade", Extended(), 3, "C", 8},
		{"extended C+ counts as low", Extended(), 2, "C+", 6},
		{"extended B is not low", Extended(), 2, "B", 4},
		{"coarse low grade", Coarse(), 4, "D", 10},
		{"coarse B is not low", Coarse(), 4, "B", 8},
		{"fail is always low", Coarse(), 1, "F", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestStudyHours(SubjectRecord{Name: "S", Credits: tt.credits, Grade: tt.grade}, tt.scale)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPredictFutureCGPA(t *testing.T) {
	assert.InDelta(t, 9.0, PredictFutureCGPA(8.0, 10, 10), 1e-9)
	assert.InDelta(t, 8.0, PredictFutureCGPA(8.0, 0, 10), 1e-9)
	assert.InDelta(t, 7.1, PredictFutureCGPA(7.0, 1, 10), 1e-9)

	for extra := 0; extra <= 200; extra += 5 {
		assert.LessOrEqual(t, PredictFutureCGPA(9.5, extra, 10), 10.0)
	}
}

func TestEvaluate(t *testing.T) {
	gb := NewGradebook(Coarse())
	gb, err := gb.Append(SubjectRecord{Name: "Maths", Credits: 4, Grade: "A", StudyHoursPerWeek: 5})
	require.NoError(t, err)
	gb, err = gb.Append(SubjectRecord{Name: "Physics", Credits: 2, Grade: "C", StudyHoursPerWeek: 3})
	require.NoError(t, err)

	eval, err := Evaluate(gb, 2)
	require.NoError(t, err)

	assert.Equal(t, ScaleCoarse, eval.Scale)
	assert.Equal(t, 10, eval.MaxPoints)
	assert.Equal(t, 6, eval.TotalCredits)
	assert.Equal(t, 8.67, eval.CGPARounded)
	assert.Equal(t, 8.87, eval.PredictedRounded)
	require.Len(t, eval.Suggestions, 2)
	assert.Equal(t, Suggestion{Subject: "Maths", Grade: "A", Credits: 4, Hours: 8}, eval.Suggestions[0])
	assert.Equal(t, Suggestion{Subject: "Physics", Grade: "C", Credits: 2, Hours: 6, NeedsFocus: true}, eval.Suggestions[1])
	assert.Equal(t, "Physics: Needs 6 hrs/week (focus more here)", eval.Suggestions[1].Message())
	assert.Equal(t, "Maths: 8 hrs/week is enough", eval.Suggestions[0].Message())
}

func TestEvaluate_EmptyGradebook(t *testing.T) {
	_, err := Evaluate(NewGradebook(Extended()), 2)
	assert.ErrorIs(t, err, apperrors.ErrEmptyInput)
}
