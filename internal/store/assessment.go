package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amahle/famcheck/ent"
	"github.com/amahle/famcheck/ent/assessment"
	entschema "github.com/amahle/famcheck/ent/schema"
)

type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Create(ctx context.Context, a *Assessment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = StatusInProgress
	}

	created, err := r.client.Assessment.Create().
		SetID(a.ID).
		SetHouseholdID(a.HouseholdID).
		SetProfileID(a.ProfileID).
		SetType(assessment.Type(a.Type)).
		SetStatus(assessment.Status(a.Status)).
		SetCurrentStep(a.CurrentStep).
		SetTotalSteps(a.TotalSteps).
		SetWorryTags(toEntWorryTags(a.WorryTags)).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "create assessment", Err: err}
	}
	a.StartedAt = created.StartedAt
	a.UpdatedAt = created.UpdatedAt
	return nil
}

func (r *assessmentRepo) Get(ctx context.Context, id string) (*Assessment, error) {
	row, err := r.client.Assessment.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "assessment", ID: id}
		}
		return nil, &PersistenceError{Op: "get assessment", Err: err}
	}
	return fromEntAssessment(row), nil
}

func (r *assessmentRepo) FindInProgress(ctx context.Context, profileID string, typ AssessmentType) (*Assessment, error) {
	row, err := r.client.Assessment.Query().
		Where(
			assessment.ProfileID(profileID),
			assessment.TypeEQ(assessment.Type(typ)),
			assessment.StatusEQ(assessment.StatusInProgress),
		).
		Order(ent.Desc(assessment.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "find in-progress assessment", Err: err}
	}
	return fromEntAssessment(row), nil
}

func (r *assessmentRepo) FindCompleted(ctx context.Context, profileID string, typ AssessmentType) (*Assessment, error) {
	row, err := r.client.Assessment.Query().
		Where(
			assessment.ProfileID(profileID),
			assessment.TypeEQ(assessment.Type(typ)),
			assessment.StatusEQ(assessment.StatusCompleted),
		).
		Order(ent.Desc(assessment.FieldCompletedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "find completed assessment", Err: err}
	}
	return fromEntAssessment(row), nil
}

// LatestCompleted fetches every completed run for the household in one query
// and keeps the newest per (profile, type) in Go. Detached runs (profile
// deleted) key by the empty profile id and are still reported.
func (r *assessmentRepo) LatestCompleted(ctx context.Context, householdID string) ([]*Assessment, error) {
	rows, err := r.client.Assessment.Query().
		Where(
			assessment.HouseholdID(householdID),
			assessment.StatusEQ(assessment.StatusCompleted),
		).
		Order(ent.Desc(assessment.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list completed assessments", Err: err}
	}

	type key struct {
		profileID string
		typ       assessment.Type
	}
	seen := make(map[key]bool)
	var out []*Assessment
	for _, row := range rows {
		k := key{profileID: row.ProfileID, typ: row.Type}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, fromEntAssessment(row))
	}
	return out, nil
}

func (r *assessmentRepo) AdvanceStep(ctx context.Context, id string, step int) error {
	// Monotonic: re-answering an earlier question never moves the pointer back.
	_, err := r.client.Assessment.Update().
		Where(
			assessment.ID(id),
			assessment.CurrentStepLT(step),
		).
		SetCurrentStep(step).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "advance step", Err: err}
	}
	return nil
}

func (r *assessmentRepo) SaveResults(ctx context.Context, id string, results map[string]DomainResult) error {
	err := r.client.Assessment.UpdateOneID(id).
		SetResultsSummary(toEntResults(results)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &NotFoundError{Kind: "assessment", ID: id}
		}
		return &PersistenceError{Op: "save results", Err: err}
	}
	return nil
}

func (r *assessmentRepo) Complete(ctx context.Context, id string, results map[string]DomainResult) error {
	err := r.client.Assessment.UpdateOneID(id).
		SetStatus(assessment.StatusCompleted).
		SetResultsSummary(toEntResults(results)).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &NotFoundError{Kind: "assessment", ID: id}
		}
		return &PersistenceError{Op: "complete assessment", Err: err}
	}
	return nil
}

func (r *assessmentRepo) AbandonStale(ctx context.Context, householdID string, cutoff time.Time) (int, error) {
	n, err := r.client.Assessment.Update().
		Where(
			assessment.HouseholdID(householdID),
			assessment.StatusEQ(assessment.StatusInProgress),
			assessment.UpdatedAtLT(cutoff),
		).
		SetStatus(assessment.StatusAbandoned).
		Save(ctx)
	if err != nil {
		return 0, &PersistenceError{Op: "abandon stale assessments", Err: err}
	}
	return n, nil
}

func fromEntAssessment(row *ent.Assessment) *Assessment {
	a := &Assessment{
		ID:          row.ID,
		HouseholdID: row.HouseholdID,
		ProfileID:   row.ProfileID,
		Type:        AssessmentType(row.Type),
		Status:      AssessmentStatus(row.Status),
		CurrentStep: row.CurrentStep,
		TotalSteps:  row.TotalSteps,
		WorryTags:   fromEntWorryTags(row.WorryTags),
		Results:     fromEntResults(row.ResultsSummary),
		StartedAt:   row.StartedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.CompletedAt != nil {
		t := *row.CompletedAt
		a.CompletedAt = &t
	}
	return a
}

func toEntWorryTags(w WorryTags) entschema.WorryTagsSnapshot {
	return entschema.WorryTagsSnapshot{
		Child:    w.Child,
		Personal: w.Personal,
		Family:   w.Family,
	}
}

func fromEntWorryTags(w entschema.WorryTagsSnapshot) WorryTags {
	return WorryTags{
		Child:    w.Child,
		Personal: w.Personal,
		Family:   w.Family,
	}
}

func toEntResults(results map[string]DomainResult) map[string]entschema.DomainResult {
	if results == nil {
		return nil
	}
	out := make(map[string]entschema.DomainResult, len(results))
	for domain, r := range results {
		out[domain] = entschema.DomainResult{Score: r.Score, Max: r.Max, Status: r.Status}
	}
	return out
}

func fromEntResults(results map[string]entschema.DomainResult) map[string]DomainResult {
	if len(results) == 0 {
		return nil
	}
	out := make(map[string]DomainResult, len(results))
	for domain, r := range results {
		out[domain] = DomainResult{Score: r.Score, Max: r.Max, Status: r.Status}
	}
	return out
}
