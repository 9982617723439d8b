package progression

import (
	"fmt"

	"github.com/amahle/famcheck/internal/questionnaire"
)

// State is the explicit progression state of a questionnaire session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateInterlude
	StateAwaitingNextSubject
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateInterlude:
		return "interlude"
	case StateAwaitingNextSubject:
		return "awaiting_next_subject"
	case StateCompleted:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session tracks one subject's run through a questionnaire flow. It is a
// cursor over the flow plus the identifiers needed to persist against the
// store; all durable state lives in the Assessment and Answer rows, so a
// session can be rebuilt from the store by any process.
type Session struct {
	// State is the current progression state.
	State State

	// Step is the 0-based index of the step awaiting an answer. After the
	// interlude checkpoint fires it already points past the checkpoint.
	Step int

	// AssessmentID is the persisted run this session drives.
	AssessmentID string

	// ProfileID is the subject. Empty only for detached historical runs.
	ProfileID string

	// HouseholdID scopes subject sequencing.
	HouseholdID string

	// Flow is the questionnaire instrument being administered.
	Flow *questionnaire.Flow

	// NextProfileID is set while AwaitingNextSubject: the sibling subject
	// that should run this flow next.
	NextProfileID string
}

// LastStep returns the final step index of the flow.
func (s *Session) LastStep() int {
	return s.Flow.TotalSteps() - 1
}

// SavedAnswer is a previously stored answer re-hydrated for display.
// Value is the pre-transform value the subject originally selected;
// Skipped answers redisplay as "no answer selected".
type SavedAnswer struct {
	Step    int
	Code    string
	Value   int
	Skipped bool
}
