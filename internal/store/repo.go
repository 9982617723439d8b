package store

import (
	"context"
	"time"
)

// ProfileType classifies a household member.
type ProfileType string

const (
	ProfileParent    ProfileType = "parent"
	ProfileChild     ProfileType = "child"
	ProfilePartner   ProfileType = "partner"
	ProfileSibling   ProfileType = "sibling"
	ProfileCaregiver ProfileType = "caregiver"
	ProfileOther     ProfileType = "other"
)

// AssessmentType identifies which questionnaire flow a run belongs to.
type AssessmentType string

const (
	TypeCheckup AssessmentType = "checkup"
	TypeParent  AssessmentType = "parent"
	TypeFamily  AssessmentType = "family"
)

// AssessmentStatus is the lifecycle state of a run.
type AssessmentStatus string

const (
	StatusInProgress AssessmentStatus = "in_progress"
	StatusCompleted  AssessmentStatus = "completed"
	StatusAbandoned  AssessmentStatus = "abandoned"
)

// WorryTags is the caregiver's concern labels partitioned by bucket.
// Attached to an Assessment it is a frozen copy-on-create snapshot.
type WorryTags struct {
	Child    []string `json:"child,omitempty"`
	Personal []string `json:"personal,omitempty"`
	Family   []string `json:"family,omitempty"`
}

// DomainResult is one scored clinical domain inside a results summary.
type DomainResult struct {
	Score  int    `json:"score"`
	Max    int    `json:"max"`
	Status string `json:"status"`
}

// Profile is a household member.
type Profile struct {
	ID          string
	HouseholdID string
	Type        ProfileType
	DateOfBirth *time.Time
	WorryTags   []string
	CreatedAt   time.Time
}

// Assessment is one questionnaire run for a single subject.
type Assessment struct {
	ID          string
	HouseholdID string
	ProfileID   string // empty once the subject profile has been deleted
	Type        AssessmentType
	Status      AssessmentStatus
	CurrentStep int
	TotalSteps  int
	WorryTags   WorryTags
	Results     map[string]DomainResult // nil until computed
	StartedAt   time.Time
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

// Answer is one stored response. Value is post-transform; -1 means skipped.
type Answer struct {
	ID           string
	AssessmentID string
	QuestionID   string
	QuestionCode string
	Category     string
	Value        int
	AnswerType   string
	StepNumber   int
}

// TransitionEventData captures one progression state change for the audit log.
type TransitionEventData struct {
	AssessmentID string
	FromState    string
	ToState      string
	Step         int
	Trigger      string
}

// ProfileRepo manages household members.
type ProfileRepo interface {
	// Create persists a new profile, assigning ID and CreatedAt.
	Create(ctx context.Context, p *Profile) error

	// Get returns the profile or a *NotFoundError.
	Get(ctx context.Context, id string) (*Profile, error)

	// List returns every profile in the household, ascending by creation time.
	List(ctx context.Context, householdID string) ([]*Profile, error)

	// UpdateWorryTags replaces the live worry tags on a profile.
	UpdateWorryTags(ctx context.Context, id string, tags []string) error

	// Delete removes a profile and detaches its assessments, which survive
	// with an empty profile id.
	Delete(ctx context.Context, id string) error
}

// AssessmentRepo manages questionnaire runs.
type AssessmentRepo interface {
	// Create persists a new in-progress assessment, assigning ID and StartedAt.
	Create(ctx context.Context, a *Assessment) error

	// Get returns the assessment or a *NotFoundError.
	Get(ctx context.Context, id string) (*Assessment, error)

	// FindInProgress returns the in-progress run for (profile, type),
	// or nil if none exists.
	FindInProgress(ctx context.Context, profileID string, typ AssessmentType) (*Assessment, error)

	// FindCompleted returns the most recently completed run for
	// (profile, type), or nil if none exists.
	FindCompleted(ctx context.Context, profileID string, typ AssessmentType) (*Assessment, error)

	// LatestCompleted returns, in one query, the most recently completed run
	// per (profile, type) across the household.
	LatestCompleted(ctx context.Context, householdID string) ([]*Assessment, error)

	// AdvanceStep moves current_step forward to step if it is greater.
	AdvanceStep(ctx context.Context, id string, step int) error

	// SaveResults overwrites the results summary without touching status.
	// Used by the recompute path for stale summaries.
	SaveResults(ctx context.Context, id string, results map[string]DomainResult) error

	// Complete marks the run completed with the given results summary.
	Complete(ctx context.Context, id string, results map[string]DomainResult) error

	// AbandonStale marks in-progress runs untouched since cutoff as abandoned
	// and returns how many were changed.
	AbandonStale(ctx context.Context, householdID string, cutoff time.Time) (int, error)
}

// AnswerRepo manages stored responses.
type AnswerRepo interface {
	// Upsert writes the answer keyed by (assessment_id, question_code);
	// last write wins.
	Upsert(ctx context.Context, a *Answer) error

	// ListByAssessment returns all answers for a run, ascending by step.
	ListByAssessment(ctx context.Context, assessmentID string) ([]*Answer, error)
}

// EventRepo appends progression audit events.
type EventRepo interface {
	// AppendTransition records a state change.
	AppendTransition(ctx context.Context, data TransitionEventData) error

	// CountTransitions returns how many events with the given trigger were
	// recorded for an assessment.
	CountTransitions(ctx context.Context, assessmentID, trigger string) (int, error)
}
