package scoring

import (
	"fmt"

	"github.com/amahle/famcheck/internal/questionnaire"
	"github.com/amahle/famcheck/internal/store"
)

// SkipPolicy controls how a skipped answer (-1) affects a domain.
type SkipPolicy int

const (
	// SkipCountsZero treats a skip as a zero contribution; the domain max is
	// unchanged.
	SkipCountsZero SkipPolicy = iota

	// SkipExcluded removes the skipped question from the domain entirely:
	// zero contribution and the domain max shrinks by that question's scale
	// maximum.
	SkipExcluded
)

// RecalculationError indicates scoring failed on a malformed answer set.
type RecalculationError struct {
	AssessmentType store.AssessmentType
	Reason         string
	Err            error
}

func (e *RecalculationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("score %s assessment: %s: %v", e.AssessmentType, e.Reason, e.Err)
	}
	return fmt.Sprintf("score %s assessment: %s", e.AssessmentType, e.Reason)
}

func (e *RecalculationError) Unwrap() error { return e.Err }

// Engine aggregates stored answers into per-domain scores and statuses.
// It is a pure function of its inputs: re-scoring an unchanged answer set
// reproduces the same result exactly.
type Engine struct {
	cutoffs *CutoffTable
	policy  SkipPolicy
}

// NewEngine creates an engine with the given cutoff table and skip policy.
func NewEngine(cutoffs *CutoffTable, policy SkipPolicy) *Engine {
	return &Engine{cutoffs: cutoffs, policy: policy}
}

// Score groups the stored (post-transform) answers by category, sums them
// per domain, and classifies each sum against the cutoff table.
func (e *Engine) Score(typ store.AssessmentType, answers []*store.Answer) (map[string]store.DomainResult, error) {
	flow, err := questionnaire.FlowFor(typ)
	if err != nil {
		return nil, &RecalculationError{AssessmentType: typ, Reason: "unknown flow", Err: err}
	}

	byCode := make(map[string]*questionnaire.Question, flow.TotalSteps())
	for i := range flow.Questions {
		q := &flow.Questions[i]
		byCode[q.Code] = q
	}

	sums := make(map[string]int)
	maxes := flow.DomainMax()

	for _, a := range answers {
		q, ok := byCode[a.QuestionCode]
		if !ok {
			return nil, &RecalculationError{
				AssessmentType: typ,
				Reason:         fmt.Sprintf("answer for unknown question code %q", a.QuestionCode),
			}
		}
		_, scaleMax, _ := questionnaire.ValueRange(q.AnswerType)

		if a.Value == SkipValue {
			if e.policy == SkipExcluded {
				maxes[q.Category] -= scaleMax
			}
			continue
		}
		if a.Value < 0 || a.Value > scaleMax {
			return nil, &RecalculationError{
				AssessmentType: typ,
				Reason:         fmt.Sprintf("answer %q value %d outside 0-%d", a.QuestionCode, a.Value, scaleMax),
			}
		}
		sums[q.Category] += a.Value
	}

	results := make(map[string]store.DomainResult, len(maxes))
	for domain, max := range maxes {
		score := sums[domain]
		status, err := e.cutoffs.Classify(domain, score)
		if err != nil {
			return nil, &RecalculationError{AssessmentType: typ, Reason: "classify", Err: err}
		}
		results[domain] = store.DomainResult{
			Score:  score,
			Max:    max,
			Status: string(status),
		}
	}
	return results, nil
}
