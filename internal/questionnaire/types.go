package questionnaire

import (
	"fmt"

	"github.com/amahle/famcheck/internal/store"
)

// Answer type identifiers. The answer type drives which scale and labels the
// subject is shown, and therefore the valid value range.
const (
	ScaleLikert5 = "likert5" // 0-4, frequency scale
	ScaleImpact4 = "impact4" // 0-3, burden scale
	ScaleYesNo   = "yesno"   // 0-1
	ScaleAgree6  = "agree6"  // 0-5, agreement scale
)

// SkipValue is the sentinel stored when a subject skips a question.
const SkipValue = -1

// Question is one item in a questionnaire flow. Its position in the flow's
// question list is its step index.
type Question struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	Text       string `json:"text"`
	Category   string `json:"category"`
	AnswerType string `json:"answer_type"`
	Reverse    bool   `json:"reverse,omitempty"`
}

// Flow is a complete questionnaire instrument for one assessment type.
type Flow struct {
	Type           store.AssessmentType `json:"type"`
	Title          string               `json:"title"`
	InterludeIndex int                  `json:"interlude_index"` // -1 when the flow has no interlude
	Questions      []Question           `json:"questions"`
}

// TotalSteps returns the number of answer steps in the flow.
func (f *Flow) TotalSteps() int {
	return len(f.Questions)
}

// QuestionAt returns the question at the given step index.
func (f *Flow) QuestionAt(step int) (*Question, error) {
	if step < 0 || step >= len(f.Questions) {
		return nil, fmt.Errorf("step %d out of range for %s flow (%d steps)", step, f.Type, len(f.Questions))
	}
	return &f.Questions[step], nil
}

// HasInterlude reports whether step is the flow's interlude checkpoint.
func (f *Flow) HasInterlude(step int) bool {
	return f.InterludeIndex >= 0 && step == f.InterludeIndex
}

// DomainMax returns the maximum achievable score per scoring domain,
// summing each question's scale maximum. Used for progress normalization,
// never for classification.
func (f *Flow) DomainMax() map[string]int {
	out := make(map[string]int)
	for _, q := range f.Questions {
		_, max, ok := ValueRange(q.AnswerType)
		if !ok {
			continue
		}
		out[q.Category] += max
	}
	return out
}

// ValueRange returns the valid raw value range for an answer type.
func ValueRange(answerType string) (min, max int, ok bool) {
	switch answerType {
	case ScaleLikert5:
		return 0, 4, true
	case ScaleImpact4:
		return 0, 3, true
	case ScaleYesNo:
		return 0, 1, true
	case ScaleAgree6:
		return 0, 5, true
	}
	return 0, 0, false
}

// NextFlow returns the assessment type that follows typ in the household's
// overall sequence: checkup -> parent -> family.
func NextFlow(typ store.AssessmentType) (store.AssessmentType, bool) {
	switch typ {
	case store.TypeCheckup:
		return store.TypeParent, true
	case store.TypeParent:
		return store.TypeFamily, true
	}
	return "", false
}
