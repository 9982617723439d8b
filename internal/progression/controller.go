package progression

import (
	"context"
	"fmt"
	"os"

	"github.com/amahle/famcheck/internal/questionnaire"
	"github.com/amahle/famcheck/internal/scoring"
	"github.com/amahle/famcheck/internal/store"
)

// Controller drives questionnaire sessions: it records answers, advances the
// step cursor, fires the interlude checkpoint, scores completed runs, and
// sequences sibling subjects through the same flow.
type Controller struct {
	profiles    store.ProfileRepo
	assessments store.AssessmentRepo
	answers     store.AnswerRepo
	events      store.EventRepo // nil disables the audit log
	engine      *scoring.Engine
}

// NewController wires a controller against the given repositories.
func NewController(
	profiles store.ProfileRepo,
	assessments store.AssessmentRepo,
	answers store.AnswerRepo,
	engine *scoring.Engine,
	events store.EventRepo,
) *Controller {
	return &Controller{
		profiles:    profiles,
		assessments: assessments,
		answers:     answers,
		events:      events,
		engine:      engine,
	}
}

// Begin starts or resumes a session for (subject, flow type). If an
// in-progress assessment already exists the session resumes it; a second
// in-progress run is never created.
func (c *Controller) Begin(ctx context.Context, profileID string, typ store.AssessmentType) (*Session, error) {
	if profileID == "" {
		return nil, &ValidationError{Field: "profile id", Reason: "missing"}
	}

	profile, err := c.profiles.Get(ctx, profileID)
	if err != nil {
		return nil, err
	}

	flow, err := questionnaire.FlowFor(typ)
	if err != nil {
		return nil, &ValidationError{Field: "assessment type", Reason: err.Error()}
	}

	existing, err := c.assessments.FindInProgress(ctx, profileID, typ)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &Session{
			State:        StateInProgress,
			Step:         resumeStep(existing, flow),
			AssessmentID: existing.ID,
			ProfileID:    profileID,
			HouseholdID:  existing.HouseholdID,
			Flow:         flow,
		}, nil
	}

	tags, err := c.snapshotWorryTags(ctx, profile.HouseholdID)
	if err != nil {
		return nil, err
	}

	a := &store.Assessment{
		HouseholdID: profile.HouseholdID,
		ProfileID:   profileID,
		Type:        typ,
		TotalSteps:  flow.TotalSteps(),
		WorryTags:   tags,
	}
	if err := c.assessments.Create(ctx, a); err != nil {
		return nil, err
	}

	s := &Session{
		State:        StateInProgress,
		Step:         0,
		AssessmentID: a.ID,
		ProfileID:    profileID,
		HouseholdID:  profile.HouseholdID,
		Flow:         flow,
	}
	c.logTransition(ctx, s.AssessmentID, StateNotStarted, StateInProgress, 0, "begin")
	return s, nil
}

// snapshotWorryTags freezes the household's live worry tags into the
// assessment at creation time. Tags bucket by profile role: child profiles
// feed the child bucket, parents and caregivers the personal bucket, and
// everyone else the family bucket. Later edits to live tags never touch the
// frozen copy.
func (c *Controller) snapshotWorryTags(ctx context.Context, householdID string) (store.WorryTags, error) {
	profiles, err := c.profiles.List(ctx, householdID)
	if err != nil {
		return store.WorryTags{}, err
	}

	var tags store.WorryTags
	for _, p := range profiles {
		switch p.Type {
		case store.ProfileChild:
			tags.Child = append(tags.Child, p.WorryTags...)
		case store.ProfileParent, store.ProfileCaregiver:
			tags.Personal = append(tags.Personal, p.WorryTags...)
		default:
			tags.Family = append(tags.Family, p.WorryTags...)
		}
	}
	return tags, nil
}

// resumeStep clamps the persisted cursor so a resumed session never points
// past the final step.
func resumeStep(a *store.Assessment, flow *questionnaire.Flow) int {
	step := a.CurrentStep
	if last := flow.TotalSteps() - 1; step > last {
		step = last
	}
	return step
}

// Submit records the raw answer for the session's current step and advances
// the state machine. Raw is pre-transform: reverse-scored questions are
// inverted before persistence.
func (c *Controller) Submit(ctx context.Context, s *Session, raw int) error {
	return c.advance(ctx, s, raw, "answer")
}

// Skip records the skip sentinel for the current step. It is a first-class
// transition: the cursor, interlude and completion logic fire exactly as for
// an answered step.
func (c *Controller) Skip(ctx context.Context, s *Session) error {
	return c.advance(ctx, s, scoring.SkipValue, "skip")
}

func (c *Controller) advance(ctx context.Context, s *Session, raw int, trigger string) error {
	if s.State != StateInProgress {
		return &ValidationError{Field: "state", Reason: fmt.Sprintf("cannot %s while %s", trigger, s.State)}
	}

	q, err := s.Flow.QuestionAt(s.Step)
	if err != nil {
		return &ValidationError{Field: "step", Reason: err.Error()}
	}

	if raw != scoring.SkipValue {
		min, max, _ := questionnaire.ValueRange(q.AnswerType)
		if raw < min || raw > max {
			return &ValidationError{
				Field:  "value",
				Reason: fmt.Sprintf("%d outside %d-%d for %s", raw, min, max, q.AnswerType),
			}
		}
	}

	c.record(ctx, s, q, scoring.Transform(raw, q.Reverse))

	from := s.State
	switch {
	case s.Flow.HasInterlude(s.Step):
		s.State = StateInterlude
		s.Step++
		c.logTransition(ctx, s.AssessmentID, from, StateInterlude, s.Step-1, trigger)
		return nil
	case s.Step < s.LastStep():
		s.Step++
		c.logTransition(ctx, s.AssessmentID, from, StateInProgress, s.Step-1, trigger)
		return nil
	default:
		return c.complete(ctx, s, trigger)
	}
}

// record persists the answer and bumps the step pointer. Failures here are
// logged and swallowed so the questionnaire stays responsive; an answer may
// be silently lost under store failure. Completion re-reads the store, so a
// lost write surfaces at the latest in the final score.
func (c *Controller) record(ctx context.Context, s *Session, q *questionnaire.Question, stored int) {
	err := c.answers.Upsert(ctx, &store.Answer{
		AssessmentID: s.AssessmentID,
		QuestionID:   q.ID,
		QuestionCode: q.Code,
		Category:     q.Category,
		Value:        stored,
		AnswerType:   q.AnswerType,
		StepNumber:   s.Step,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save answer %s: %v\n", q.Code, err)
	}

	// The stored cursor points at the next unanswered step.
	if err := c.assessments.AdvanceStep(ctx, s.AssessmentID, s.Step+1); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to advance step for %s: %v\n", s.AssessmentID, err)
	}
}

// AcknowledgeInterlude dismisses the interlude checkpoint and returns the
// session to InProgress at the step already pointed at by the cursor.
func (c *Controller) AcknowledgeInterlude(ctx context.Context, s *Session) error {
	if s.State != StateInterlude {
		return &ValidationError{Field: "state", Reason: fmt.Sprintf("cannot acknowledge interlude while %s", s.State)}
	}
	s.State = StateInProgress
	c.logTransition(ctx, s.AssessmentID, StateInterlude, StateInProgress, s.Step, "interlude-ack")
	return nil
}

// complete scores the run, persists the results summary, marks the run
// completed, then picks the next subject. Unlike per-answer saves, every
// failure here surfaces: subject sequencing depends on a correctly persisted
// result.
func (c *Controller) complete(ctx context.Context, s *Session, trigger string) error {
	answers, err := c.answers.ListByAssessment(ctx, s.AssessmentID)
	if err != nil {
		return err
	}

	results, err := c.engine.Score(s.Flow.Type, answers)
	if err != nil {
		return err
	}

	if err := c.assessments.Complete(ctx, s.AssessmentID, results); err != nil {
		return err
	}

	from := s.State
	next, err := c.nextSubject(ctx, s)
	if err != nil {
		return err
	}
	if next != "" {
		s.State = StateAwaitingNextSubject
		s.NextProfileID = next
		c.logTransition(ctx, s.AssessmentID, from, StateAwaitingNextSubject, s.Step, trigger)
		return nil
	}

	s.State = StateCompleted
	c.logTransition(ctx, s.AssessmentID, from, StateCompleted, s.Step, trigger)
	return nil
}

// nextSubject re-queries the live subject list (profiles created or deleted
// mid-flow are respected) and returns the first same-role subject, ascending
// by creation time, that has no completed run of this flow. Empty when the
// flow is done for the household.
func (c *Controller) nextSubject(ctx context.Context, s *Session) (string, error) {
	role, ok := subjectRole(s.Flow.Type)
	if !ok {
		return "", nil // household-level flow, single run
	}

	profiles, err := c.profiles.List(ctx, s.HouseholdID)
	if err != nil {
		return "", err
	}

	for _, p := range profiles {
		if p.Type != role || p.ID == s.ProfileID {
			continue
		}
		done, err := c.assessments.FindCompleted(ctx, p.ID, s.Flow.Type)
		if err != nil {
			return "", err
		}
		if done == nil {
			return p.ID, nil
		}
	}
	return "", nil
}

// subjectRole maps a flow to the profile type it sequences over. The family
// flow runs once per household, not per subject.
func subjectRole(typ store.AssessmentType) (store.ProfileType, bool) {
	switch typ {
	case store.TypeCheckup:
		return store.ProfileChild, true
	case store.TypeParent:
		return store.ProfileParent, true
	}
	return "", false
}

// AdvanceToNextSubject hands the flow to the pending sibling subject,
// returning a fresh session at step 0 (or resuming that subject's partial
// run if one exists).
func (c *Controller) AdvanceToNextSubject(ctx context.Context, s *Session) (*Session, error) {
	if s.State != StateAwaitingNextSubject {
		return nil, &ValidationError{Field: "state", Reason: fmt.Sprintf("no pending subject while %s", s.State)}
	}
	next, err := c.Begin(ctx, s.NextProfileID, s.Flow.Type)
	if err != nil {
		return nil, err
	}
	c.logTransition(ctx, s.AssessmentID, StateAwaitingNextSubject, StateInProgress, 0, "next-subject")
	return next, nil
}

// NextFlowType returns the assessment type that follows a fully completed
// flow in the household sequence.
func (c *Controller) NextFlowType(s *Session) (store.AssessmentType, bool) {
	if s.State != StateCompleted {
		return "", false
	}
	return questionnaire.NextFlow(s.Flow.Type)
}

// Subjects returns the profiles that still need a run of the given flow,
// ascending by creation time. The family flow returns at most one subject:
// the first parent or caregiver without a completed run.
func (c *Controller) Subjects(ctx context.Context, householdID string, typ store.AssessmentType) ([]*store.Profile, error) {
	profiles, err := c.profiles.List(ctx, householdID)
	if err != nil {
		return nil, err
	}

	role, sequenced := subjectRole(typ)
	var out []*store.Profile
	for _, p := range profiles {
		if sequenced {
			if p.Type != role {
				continue
			}
		} else {
			// Household-level flow: answered by a caregiver.
			if p.Type != store.ProfileParent && p.Type != store.ProfileCaregiver {
				continue
			}
		}
		done, err := c.assessments.FindCompleted(ctx, p.ID, typ)
		if err != nil {
			return nil, err
		}
		if done != nil {
			continue
		}
		out = append(out, p)
		if !sequenced {
			break
		}
	}
	return out, nil
}

// Hydrate returns every previously saved answer at its original displayed
// value: reverse-scored answers are un-inverted and skips come back as
// "no answer selected".
func (c *Controller) Hydrate(ctx context.Context, s *Session) ([]SavedAnswer, error) {
	answers, err := c.answers.ListByAssessment(ctx, s.AssessmentID)
	if err != nil {
		return nil, err
	}

	reverse := make(map[string]bool, s.Flow.TotalSteps())
	for _, q := range s.Flow.Questions {
		reverse[q.Code] = q.Reverse
	}

	out := make([]SavedAnswer, 0, len(answers))
	for _, a := range answers {
		sa := SavedAnswer{
			Step:    a.StepNumber,
			Code:    a.QuestionCode,
			Value:   scoring.Display(a.Value, reverse[a.QuestionCode]),
			Skipped: a.Value == scoring.SkipValue,
		}
		out = append(out, sa)
	}
	return out, nil
}

// Reanswer overwrites a previously answered step. It is a fresh upsert: the
// cursor never moves backward and no checkpoint re-fires.
func (c *Controller) Reanswer(ctx context.Context, s *Session, step, raw int) error {
	q, err := s.Flow.QuestionAt(step)
	if err != nil {
		return &ValidationError{Field: "step", Reason: err.Error()}
	}
	if raw != scoring.SkipValue {
		min, max, _ := questionnaire.ValueRange(q.AnswerType)
		if raw < min || raw > max {
			return &ValidationError{
				Field:  "value",
				Reason: fmt.Sprintf("%d outside %d-%d for %s", raw, min, max, q.AnswerType),
			}
		}
	}

	return c.answers.Upsert(ctx, &store.Answer{
		AssessmentID: s.AssessmentID,
		QuestionID:   q.ID,
		QuestionCode: q.Code,
		Category:     q.Category,
		Value:        scoring.Transform(raw, q.Reverse),
		AnswerType:   q.AnswerType,
		StepNumber:   step,
	})
}

func (c *Controller) logTransition(ctx context.Context, assessmentID string, from, to State, step int, trigger string) {
	if c.events == nil {
		return
	}
	err := c.events.AppendTransition(ctx, store.TransitionEventData{
		AssessmentID: assessmentID,
		FromState:    from.String(),
		ToState:      to.String(),
		Step:         step,
		Trigger:      trigger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log transition for %s: %v\n", assessmentID, err)
	}
}
