package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amahle/famcheck/internal/scoring"
	"github.com/amahle/famcheck/internal/store"
)

type fakeProfiles struct {
	profiles []*store.Profile
}

func (f *fakeProfiles) Create(ctx context.Context, p *store.Profile) error { return nil }
func (f *fakeProfiles) Get(ctx context.Context, id string) (*store.Profile, error) {
	return nil, &store.NotFoundError{Kind: "profile", ID: id}
}
func (f *fakeProfiles) List(ctx context.Context, householdID string) ([]*store.Profile, error) {
	return f.profiles, nil
}
func (f *fakeProfiles) UpdateWorryTags(ctx context.Context, id string, tags []string) error {
	return nil
}
func (f *fakeProfiles) Delete(ctx context.Context, id string) error { return nil }

type fakeAssessments struct {
	runs []*store.Assessment

	saved    map[string]map[string]store.DomainResult
	failSave bool
}

func (f *fakeAssessments) Create(ctx context.Context, a *store.Assessment) error { return nil }
func (f *fakeAssessments) Get(ctx context.Context, id string) (*store.Assessment, error) {
	return nil, &store.NotFoundError{Kind: "assessment", ID: id}
}
func (f *fakeAssessments) FindInProgress(ctx context.Context, profileID string, typ store.AssessmentType) (*store.Assessment, error) {
	return nil, nil
}
func (f *fakeAssessments) FindCompleted(ctx context.Context, profileID string, typ store.AssessmentType) (*store.Assessment, error) {
	return nil, nil
}
func (f *fakeAssessments) LatestCompleted(ctx context.Context, householdID string) ([]*store.Assessment, error) {
	return f.runs, nil
}
func (f *fakeAssessments) AdvanceStep(ctx context.Context, id string, step int) error { return nil }
func (f *fakeAssessments) SaveResults(ctx context.Context, id string, results map[string]store.DomainResult) error {
	if f.failSave {
		return &store.PersistenceError{Op: "save results", Err: errors.New("disk full")}
	}
	if f.saved == nil {
		f.saved = make(map[string]map[string]store.DomainResult)
	}
	f.saved[id] = results
	return nil
}
func (f *fakeAssessments) Complete(ctx context.Context, id string, results map[string]store.DomainResult) error {
	return nil
}
func (f *fakeAssessments) AbandonStale(ctx context.Context, householdID string, cutoff time.Time) (int, error) {
	return 0, nil
}

type fakeAnswers struct {
	byRun map[string][]*store.Answer
}

func (f *fakeAnswers) Upsert(ctx context.Context, a *store.Answer) error { return nil }
func (f *fakeAnswers) ListByAssessment(ctx context.Context, assessmentID string) ([]*store.Answer, error) {
	return f.byRun[assessmentID], nil
}

func newTestAggregator(t *testing.T, profiles *fakeProfiles, assessments *fakeAssessments, answers *fakeAnswers) *Aggregator {
	t.Helper()
	table, err := scoring.DefaultCutoffs()
	require.NoError(t, err)
	return NewAggregator(profiles, assessments, answers, scoring.NewEngine(table, scoring.SkipCountsZero))
}

func completedRun(id, profileID string, typ store.AssessmentType, at time.Time, results map[string]store.DomainResult) *store.Assessment {
	return &store.Assessment{
		ID:          id,
		HouseholdID: "h1",
		ProfileID:   profileID,
		Type:        typ,
		Status:      store.StatusCompleted,
		Results:     results,
		CompletedAt: &at,
	}
}

func parentStressAnswers(runID string, values ...int) []*store.Answer {
	codes := []string{"par_01", "par_02", "par_03", "par_04"}
	out := make([]*store.Answer, 0, len(values))
	for i, v := range values {
		out = append(out, &store.Answer{
			AssessmentID: runID,
			QuestionCode: codes[i],
			Category:     "family_stress",
			Value:        v,
			AnswerType:   "yesno",
			StepNumber:   i,
		})
	}
	return out
}

func TestBuildHouseholdReportAssemblesSections(t *testing.T) {
	now := time.Now()
	child := &store.Profile{ID: "p1", HouseholdID: "h1", Type: store.ProfileChild, CreatedAt: now}
	parent := &store.Profile{ID: "p2", HouseholdID: "h1", Type: store.ProfileParent, CreatedAt: now}

	cached := map[string]store.DomainResult{
		"emotional": {Score: 4, Max: 20, Status: "typical"},
	}
	assessments := &fakeAssessments{runs: []*store.Assessment{
		completedRun("a1", "p1", store.TypeCheckup, now, cached),
		completedRun("a2", "p2", store.TypeParent, now, map[string]store.DomainResult{
			"family_stress": {Score: 1, Max: 4, Status: "typical"},
		}),
		completedRun("a3", "p2", store.TypeFamily, now, map[string]store.DomainResult{
			"coparenting": {Score: 2, Max: 10, Status: "typical"},
		}),
	}}

	g := newTestAggregator(t, &fakeProfiles{profiles: []*store.Profile{child, parent}}, assessments, &fakeAnswers{})
	rep, err := g.BuildHouseholdReport(context.Background(), "h1")
	require.NoError(t, err)

	assert.Equal(t, "h1", rep.HouseholdID)
	require.Len(t, rep.Children, 1)
	assert.True(t, rep.Children[0].ResultsAvailable)
	assert.Equal(t, cached["emotional"], rep.Children[0].Domains["emotional"])
	require.NotNil(t, rep.Parent)
	assert.Equal(t, store.TypeParent, rep.Parent.Type)
	require.NotNil(t, rep.Family)
	assert.Equal(t, store.TypeFamily, rep.Family.Type)
}

func TestStaleSummaryRecomputedAndPersisted(t *testing.T) {
	now := time.Now()
	parent := &store.Profile{ID: "p1", HouseholdID: "h1", Type: store.ProfileParent, CreatedAt: now}
	assessments := &fakeAssessments{runs: []*store.Assessment{
		completedRun("a1", "p1", store.TypeParent, now, nil), // stale: no summary
	}}
	answers := &fakeAnswers{byRun: map[string][]*store.Answer{
		"a1": parentStressAnswers("a1", 1, 1, 0, 1),
	}}

	g := newTestAggregator(t, &fakeProfiles{profiles: []*store.Profile{parent}}, assessments, answers)
	rep, err := g.BuildHouseholdReport(context.Background(), "h1")
	require.NoError(t, err)

	require.NotNil(t, rep.Parent)
	require.True(t, rep.Parent.ResultsAvailable)
	assert.Equal(t, 3, rep.Parent.Domains["family_stress"].Score)

	// The refreshed summary is written back before being reported.
	require.Contains(t, assessments.saved, "a1")
	assert.Equal(t, 3, assessments.saved["a1"]["family_stress"].Score)
}

func TestRecomputeFailureMarksResultsUnavailable(t *testing.T) {
	now := time.Now()
	parent := &store.Profile{ID: "p1", HouseholdID: "h1", Type: store.ProfileParent, CreatedAt: now}
	assessments := &fakeAssessments{runs: []*store.Assessment{
		completedRun("a1", "p1", store.TypeParent, now, nil),
	}}
	// Unknown question code makes rescoring fail.
	answers := &fakeAnswers{byRun: map[string][]*store.Answer{
		"a1": {{AssessmentID: "a1", QuestionCode: "bogus", Value: 1}},
	}}

	g := newTestAggregator(t, &fakeProfiles{profiles: []*store.Profile{parent}}, assessments, answers)
	rep, err := g.BuildHouseholdReport(context.Background(), "h1")
	require.NoError(t, err, "one broken run must not sink the whole report")

	require.NotNil(t, rep.Parent)
	assert.False(t, rep.Parent.ResultsAvailable)
	assert.Nil(t, rep.Parent.Domains)
}

func TestRecomputePersistFailureStillReportsNothing(t *testing.T) {
	now := time.Now()
	parent := &store.Profile{ID: "p1", HouseholdID: "h1", Type: store.ProfileParent, CreatedAt: now}
	assessments := &fakeAssessments{
		runs:     []*store.Assessment{completedRun("a1", "p1", store.TypeParent, now, nil)},
		failSave: true,
	}
	answers := &fakeAnswers{byRun: map[string][]*store.Answer{
		"a1": parentStressAnswers("a1", 1, 0, 0, 0),
	}}

	g := newTestAggregator(t, &fakeProfiles{profiles: []*store.Profile{parent}}, assessments, answers)
	rep, err := g.BuildHouseholdReport(context.Background(), "h1")
	require.NoError(t, err)

	require.NotNil(t, rep.Parent)
	assert.False(t, rep.Parent.ResultsAvailable, "a summary that could not be persisted is not reported")
}

func TestLegacyImpactTranslatedInReport(t *testing.T) {
	now := time.Now()
	child := &store.Profile{ID: "p1", HouseholdID: "h1", Type: store.ProfileChild, CreatedAt: now}
	assessments := &fakeAssessments{runs: []*store.Assessment{
		completedRun("a1", "p1", store.TypeCheckup, now, map[string]store.DomainResult{
			"emotional": {Score: 3, Max: 20, Status: "typical"},
			"impact":    {Score: 2, Max: 3, Status: "high_impact"},
		}),
	}}

	g := newTestAggregator(t, &fakeProfiles{profiles: []*store.Profile{child}}, assessments, &fakeAnswers{})
	rep, err := g.BuildHouseholdReport(context.Background(), "h1")
	require.NoError(t, err)

	require.Len(t, rep.Children, 1)
	impact, ok := rep.Children[0].Domains["impact"]
	require.True(t, ok)
	assert.Equal(t, "concerning", impact.Status)
	assert.Equal(t, 2, impact.Score, "legacy score passes through untouched")
}

func TestChildrenOrderedByProfileCreation(t *testing.T) {
	base := time.Now()
	older := &store.Profile{ID: "p1", HouseholdID: "h1", Type: store.ProfileChild, CreatedAt: base}
	younger := &store.Profile{ID: "p2", HouseholdID: "h1", Type: store.ProfileChild, CreatedAt: base.Add(time.Hour)}

	results := map[string]store.DomainResult{"emotional": {Score: 0, Max: 20, Status: "typical"}}
	// Runs arrive in scrambled order; a detached run (profile deleted) sorts
	// last by completion time.
	assessments := &fakeAssessments{runs: []*store.Assessment{
		completedRun("a-detached", "", store.TypeCheckup, base.Add(2*time.Hour), results),
		completedRun("a-younger", "p2", store.TypeCheckup, base, results),
		completedRun("a-older", "p1", store.TypeCheckup, base, results),
	}}

	g := newTestAggregator(t, &fakeProfiles{profiles: []*store.Profile{older, younger}}, assessments, &fakeAnswers{})
	rep, err := g.BuildHouseholdReport(context.Background(), "h1")
	require.NoError(t, err)

	require.Len(t, rep.Children, 3)
	assert.Equal(t, "a-older", rep.Children[0].AssessmentID)
	assert.Equal(t, "a-younger", rep.Children[1].AssessmentID)
	assert.Equal(t, "a-detached", rep.Children[2].AssessmentID)
}
