package progression

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amahle/famcheck/internal/scoring"
	"github.com/amahle/famcheck/internal/store"
)

// memStore is an in-memory implementation of the store repositories.
type memStore struct {
	profiles    []*store.Profile
	assessments map[string]*store.Assessment
	answers     map[string]map[string]*store.Answer // assessment -> code
	events      []store.TransitionEventData

	nextID int

	failAnswerSave bool
	failComplete   bool
}

func newMemStore() *memStore {
	return &memStore{
		assessments: make(map[string]*store.Assessment),
		answers:     make(map[string]map[string]*store.Answer),
	}
}

func (m *memStore) id(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func (m *memStore) addProfile(typ store.ProfileType, createdAt time.Time) *store.Profile {
	p := &store.Profile{
		ID:          m.id("prof"),
		HouseholdID: "h1",
		Type:        typ,
		CreatedAt:   createdAt,
	}
	m.profiles = append(m.profiles, p)
	return p
}

func (m *memStore) removeProfile(id string) {
	out := m.profiles[:0]
	for _, p := range m.profiles {
		if p.ID != id {
			out = append(out, p)
		}
	}
	m.profiles = out
}

// ProfileRepo

func (m *memStore) Create(ctx context.Context, p *store.Profile) error {
	p.ID = m.id("prof")
	p.CreatedAt = time.Now()
	m.profiles = append(m.profiles, p)
	return nil
}

func (m *memStore) Get(ctx context.Context, id string) (*store.Profile, error) {
	for _, p := range m.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, &store.NotFoundError{Kind: "profile", ID: id}
}

func (m *memStore) List(ctx context.Context, householdID string) ([]*store.Profile, error) {
	var out []*store.Profile
	for _, p := range m.profiles {
		if p.HouseholdID == householdID {
			out = append(out, p)
		}
	}
	// profiles are appended in creation order
	return out, nil
}

func (m *memStore) UpdateWorryTags(ctx context.Context, id string, tags []string) error { return nil }
func (m *memStore) Delete(ctx context.Context, id string) error {
	m.removeProfile(id)
	return nil
}

// AssessmentRepo

func (m *memStore) CreateAssessment(ctx context.Context, a *store.Assessment) error {
	a.ID = m.id("asmt")
	a.Status = store.StatusInProgress
	a.StartedAt = time.Now()
	m.assessments[a.ID] = a
	return nil
}

func (m *memStore) GetAssessment(ctx context.Context, id string) (*store.Assessment, error) {
	a, ok := m.assessments[id]
	if !ok {
		return nil, &store.NotFoundError{Kind: "assessment", ID: id}
	}
	return a, nil
}

func (m *memStore) FindInProgress(ctx context.Context, profileID string, typ store.AssessmentType) (*store.Assessment, error) {
	for _, a := range m.assessments {
		if a.ProfileID == profileID && a.Type == typ && a.Status == store.StatusInProgress {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memStore) FindCompleted(ctx context.Context, profileID string, typ store.AssessmentType) (*store.Assessment, error) {
	for _, a := range m.assessments {
		if a.ProfileID == profileID && a.Type == typ && a.Status == store.StatusCompleted {
			return a, nil
		}
	}
	return nil, nil
}

func (m *memStore) LatestCompleted(ctx context.Context, householdID string) ([]*store.Assessment, error) {
	var out []*store.Assessment
	for _, a := range m.assessments {
		if a.HouseholdID == householdID && a.Status == store.StatusCompleted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) AdvanceStep(ctx context.Context, id string, step int) error {
	a, ok := m.assessments[id]
	if !ok {
		return &store.NotFoundError{Kind: "assessment", ID: id}
	}
	if step > a.CurrentStep {
		a.CurrentStep = step
	}
	return nil
}

func (m *memStore) SaveResults(ctx context.Context, id string, results map[string]store.DomainResult) error {
	a, ok := m.assessments[id]
	if !ok {
		return &store.NotFoundError{Kind: "assessment", ID: id}
	}
	a.Results = results
	return nil
}

func (m *memStore) Complete(ctx context.Context, id string, results map[string]store.DomainResult) error {
	if m.failComplete {
		return &store.PersistenceError{Op: "complete assessment", Err: errors.New("disk full")}
	}
	a, ok := m.assessments[id]
	if !ok {
		return &store.NotFoundError{Kind: "assessment", ID: id}
	}
	now := time.Now()
	a.Status = store.StatusCompleted
	a.Results = results
	a.CompletedAt = &now
	return nil
}

func (m *memStore) AbandonStale(ctx context.Context, householdID string, cutoff time.Time) (int, error) {
	return 0, nil
}

// AnswerRepo

func (m *memStore) Upsert(ctx context.Context, a *store.Answer) error {
	if m.failAnswerSave {
		return &store.PersistenceError{Op: "create answer", Err: errors.New("disk full")}
	}
	byCode, ok := m.answers[a.AssessmentID]
	if !ok {
		byCode = make(map[string]*store.Answer)
		m.answers[a.AssessmentID] = byCode
	}
	if existing, ok := byCode[a.QuestionCode]; ok {
		existing.Value = a.Value
		existing.StepNumber = a.StepNumber
		return nil
	}
	cp := *a
	cp.ID = m.id("ans")
	byCode[a.QuestionCode] = &cp
	return nil
}

func (m *memStore) ListByAssessment(ctx context.Context, assessmentID string) ([]*store.Answer, error) {
	var out []*store.Answer
	for _, a := range m.answers[assessmentID] {
		out = append(out, a)
	}
	return out, nil
}

// EventRepo

func (m *memStore) AppendTransition(ctx context.Context, data store.TransitionEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *memStore) CountTransitions(ctx context.Context, assessmentID, trigger string) (int, error) {
	n := 0
	for _, e := range m.events {
		if e.AssessmentID == assessmentID && e.Trigger == trigger {
			n++
		}
	}
	return n, nil
}

// adapters split the single memStore across the repo interfaces.

type assessmentAdapter struct{ *memStore }

func (a assessmentAdapter) Create(ctx context.Context, x *store.Assessment) error {
	return a.CreateAssessment(ctx, x)
}
func (a assessmentAdapter) Get(ctx context.Context, id string) (*store.Assessment, error) {
	return a.GetAssessment(ctx, id)
}

func newTestController(t *testing.T, m *memStore) *Controller {
	t.Helper()
	table, err := scoring.DefaultCutoffs()
	require.NoError(t, err)
	engine := scoring.NewEngine(table, scoring.SkipCountsZero)
	return NewController(m, assessmentAdapter{m}, m, engine, m)
}

func interludeCount(m *memStore, assessmentID string) int {
	n := 0
	for _, e := range m.events {
		if e.AssessmentID == assessmentID && e.ToState == StateInterlude.String() {
			n++
		}
	}
	return n
}

func TestBeginCreatesAssessment(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	c := newTestController(t, m)

	sess, err := c.Begin(context.Background(), child.ID, store.TypeCheckup)
	require.NoError(t, err)

	assert.Equal(t, StateInProgress, sess.State)
	assert.Equal(t, 0, sess.Step)
	assert.Equal(t, 30, sess.Flow.TotalSteps())

	a := m.assessments[sess.AssessmentID]
	require.NotNil(t, a)
	assert.Equal(t, store.StatusInProgress, a.Status)
	assert.Equal(t, 30, a.TotalSteps)
}

func TestBeginRequiresProfile(t *testing.T) {
	m := newMemStore()
	c := newTestController(t, m)

	_, err := c.Begin(context.Background(), "", store.TypeCheckup)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = c.Begin(context.Background(), "missing", store.TypeCheckup)
	var nferr *store.NotFoundError
	require.ErrorAs(t, err, &nferr)
}

func TestBeginResumesInsteadOfDuplicating(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	c := newTestController(t, m)
	ctx := context.Background()

	first, err := c.Begin(ctx, child.ID, store.TypeCheckup)
	require.NoError(t, err)
	require.NoError(t, c.Submit(ctx, first, 2))
	require.NoError(t, c.Submit(ctx, first, 3))

	second, err := c.Begin(ctx, child.ID, store.TypeCheckup)
	require.NoError(t, err)

	assert.Equal(t, first.AssessmentID, second.AssessmentID, "must resume, not restart")
	assert.Equal(t, 2, second.Step, "resume at next unanswered step")

	inProgress := 0
	for _, a := range m.assessments {
		if a.Status == store.StatusInProgress {
			inProgress++
		}
	}
	assert.Equal(t, 1, inProgress, "never a second in_progress row")
}

func TestBeginFreezesWorryTags(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	child.WorryTags = []string{"sleep"}
	parent := m.addProfile(store.ProfileParent, time.Now())
	parent.WorryTags = []string{"stress"}
	c := newTestController(t, m)

	sess, err := c.Begin(context.Background(), child.ID, store.TypeCheckup)
	require.NoError(t, err)

	a := m.assessments[sess.AssessmentID]
	assert.Equal(t, []string{"sleep"}, a.WorryTags.Child)
	assert.Equal(t, []string{"stress"}, a.WorryTags.Personal)

	// Editing live tags later must not touch the snapshot.
	child.WorryTags = append(child.WorryTags, "appetite")
	assert.Equal(t, []string{"sleep"}, a.WorryTags.Child)
}

func TestSubmitStoresTransformedValue(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	c := newTestController(t, m)
	ctx := context.Background()

	sess, err := c.Begin(ctx, child.ID, store.TypeCheckup)
	require.NoError(t, err)

	// Steps 0-5 plain; step 6 (chk_07) is reverse-scored.
	for i := 0; i < 6; i++ {
		require.NoError(t, c.Submit(ctx, sess, 1))
	}
	require.NoError(t, c.Submit(ctx, sess, 1))

	stored := m.answers[sess.AssessmentID]["chk_07"]
	require.NotNil(t, stored)
	assert.Equal(t, 3, stored.Value, "reverse question stored as 4-raw")

	plain := m.answers[sess.AssessmentID]["chk_01"]
	require.NotNil(t, plain)
	assert.Equal(t, 1, plain.Value)
}

func TestSubmitRejectsOutOfRange(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	c := newTestController(t, m)
	ctx := context.Background()

	sess, err := c.Begin(ctx, child.ID, store.TypeCheckup)
	require.NoError(t, err)

	err = c.Submit(ctx, sess, 9)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, sess.Step, "invalid answer must not advance")
}

func TestInterludeFiresExactlyOnce(t *testing.T) {
	for _, skipAtCheckpoint := range []bool{false, true} {
		name := "answered"
		if skipAtCheckpoint {
			name = "skipped"
		}
		t.Run(name, func(t *testing.T) {
			m := newMemStore()
			child := m.addProfile(store.ProfileChild, time.Now())
			c := newTestController(t, m)
			ctx := context.Background()

			sess, err := c.Begin(ctx, child.ID, store.TypeCheckup)
			require.NoError(t, err)

			for i := 0; i < 20; i++ {
				require.NoError(t, c.Submit(ctx, sess, 0))
			}
			require.Equal(t, StateInProgress, sess.State)
			require.Equal(t, 20, sess.Step)

			// The checkpoint step transitions to Interlude whether answered
			// or skipped.
			if skipAtCheckpoint {
				require.NoError(t, c.Skip(ctx, sess))
			} else {
				require.NoError(t, c.Submit(ctx, sess, 2))
			}
			assert.Equal(t, StateInterlude, sess.State)
			assert.Equal(t, 21, sess.Step)

			require.NoError(t, c.AcknowledgeInterlude(ctx, sess))
			assert.Equal(t, StateInProgress, sess.State)

			for sess.State == StateInProgress {
				require.NoError(t, c.Submit(ctx, sess, 0))
			}
			assert.Equal(t, StateCompleted, sess.State)
			assert.Equal(t, 1, interludeCount(m, sess.AssessmentID))
		})
	}
}

func TestSkipStoresSentinelAndRedisplaysAsSkipped(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	c := newTestController(t, m)
	ctx := context.Background()

	sess, err := c.Begin(ctx, child.ID, store.TypeCheckup)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Submit(ctx, sess, 2))
	}
	require.NoError(t, c.Skip(ctx, sess)) // step 5
	assert.Equal(t, 6, sess.Step)

	stored := m.answers[sess.AssessmentID]["chk_06"]
	require.NotNil(t, stored)
	assert.Equal(t, -1, stored.Value)

	resumed, err := c.Begin(ctx, child.ID, store.TypeCheckup)
	require.NoError(t, err)
	saved, err := c.Hydrate(ctx, resumed)
	require.NoError(t, err)

	var found bool
	for _, sa := range saved {
		if sa.Code == "chk_06" {
			found = true
			assert.True(t, sa.Skipped, "skip must redisplay as no answer selected")
		}
	}
	assert.True(t, found)
}

func TestHydrateRestoresDisplayedValues(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	c := newTestController(t, m)
	ctx := context.Background()

	sess, err := c.Begin(ctx, child.ID, store.TypeCheckup)
	require.NoError(t, err)

	raws := []int{2, 1, 3, 0, 4, 1, 1} // step 6 is reverse-scored
	for _, raw := range raws {
		require.NoError(t, c.Submit(ctx, sess, raw))
	}

	saved, err := c.Hydrate(ctx, sess)
	require.NoError(t, err)

	byCode := make(map[string]SavedAnswer)
	for _, sa := range saved {
		byCode[sa.Code] = sa
	}
	assert.Equal(t, 2, byCode["chk_01"].Value)
	assert.Equal(t, 1, byCode["chk_07"].Value, "reverse answer redisplays pre-transform")
}

func TestAnswerSaveFailureDoesNotBlockProgression(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	c := newTestController(t, m)
	ctx := context.Background()

	sess, err := c.Begin(ctx, child.ID, store.TypeCheckup)
	require.NoError(t, err)

	m.failAnswerSave = true
	require.NoError(t, c.Submit(ctx, sess, 2), "save failure is swallowed")
	assert.Equal(t, 1, sess.Step, "UI still advances")
}

func TestCompletionFailureBlocksNextSubject(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	m.addProfile(store.ProfileChild, time.Now().Add(time.Minute))
	c := newTestController(t, m)
	ctx := context.Background()

	sess, err := c.Begin(ctx, child.ID, store.TypeCheckup)
	require.NoError(t, err)

	for i := 0; i < 29; i++ {
		require.NoError(t, c.Submit(ctx, sess, 0))
		if sess.State == StateInterlude {
			require.NoError(t, c.AcknowledgeInterlude(ctx, sess))
		}
	}

	m.failComplete = true
	err = c.Submit(ctx, sess, 0)
	require.Error(t, err, "completion failure must surface")
	assert.NotEqual(t, StateAwaitingNextSubject, sess.State)
	assert.NotEqual(t, StateCompleted, sess.State)
}

// finishCheckup drives a session from its current step to the end.
func finishCheckup(t *testing.T, c *Controller, sess *Session, raw int) {
	t.Helper()
	ctx := context.Background()
	for sess.State == StateInProgress || sess.State == StateInterlude {
		if sess.State == StateInterlude {
			require.NoError(t, c.AcknowledgeInterlude(ctx, sess))
			continue
		}
		require.NoError(t, c.Submit(ctx, sess, raw))
	}
}

func TestCompletionComputesResults(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	c := newTestController(t, m)

	sess, err := c.Begin(context.Background(), child.ID, store.TypeCheckup)
	require.NoError(t, err)
	finishCheckup(t, c, sess, 0)

	a := m.assessments[sess.AssessmentID]
	require.Equal(t, store.StatusCompleted, a.Status)
	require.NotNil(t, a.CompletedAt)
	require.NotEmpty(t, a.Results)

	// All-zero raw answers: reverse-scored items store 4 each. Conduct has
	// one reverse item, hyperactivity two, peer_problems two.
	assert.Equal(t, 0, a.Results["emotional"].Score)
	assert.Equal(t, 4, a.Results["conduct"].Score)
	assert.Equal(t, 8, a.Results["hyperactivity"].Score)
	assert.Equal(t, 8, a.Results["peer_problems"].Score)
}

func TestMultiChildSequencing(t *testing.T) {
	m := newMemStore()
	first := m.addProfile(store.ProfileChild, time.Now())
	second := m.addProfile(store.ProfileChild, time.Now().Add(time.Minute))
	third := m.addProfile(store.ProfileChild, time.Now().Add(2*time.Minute))
	c := newTestController(t, m)
	ctx := context.Background()

	sess, err := c.Begin(ctx, first.ID, store.TypeCheckup)
	require.NoError(t, err)
	finishCheckup(t, c, sess, 0)

	require.Equal(t, StateAwaitingNextSubject, sess.State)
	assert.Equal(t, second.ID, sess.NextProfileID, "next child in creation order")

	sess, err = c.AdvanceToNextSubject(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, StateInProgress, sess.State)
	assert.Equal(t, 0, sess.Step)
	assert.Equal(t, second.ID, sess.ProfileID)

	finishCheckup(t, c, sess, 0)
	require.Equal(t, StateAwaitingNextSubject, sess.State)
	assert.Equal(t, third.ID, sess.NextProfileID)

	sess, err = c.AdvanceToNextSubject(ctx, sess)
	require.NoError(t, err)
	finishCheckup(t, c, sess, 0)

	assert.Equal(t, StateCompleted, sess.State, "last child completes the flow")
	next, ok := c.NextFlowType(sess)
	require.True(t, ok)
	assert.Equal(t, store.TypeParent, next, "checkup flow hands over to parent flow")
}

func TestSubjectListRequeriedAtCompletion(t *testing.T) {
	m := newMemStore()
	first := m.addProfile(store.ProfileChild, time.Now())
	second := m.addProfile(store.ProfileChild, time.Now().Add(time.Minute))
	c := newTestController(t, m)
	ctx := context.Background()

	sess, err := c.Begin(ctx, first.ID, store.TypeCheckup)
	require.NoError(t, err)

	// The sibling is deleted mid-flow; completion must see the live list.
	m.removeProfile(second.ID)
	finishCheckup(t, c, sess, 0)

	assert.Equal(t, StateCompleted, sess.State, "deleted sibling must not be sequenced")
}

func TestReanswerDoesNotMoveCursor(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	c := newTestController(t, m)
	ctx := context.Background()

	sess, err := c.Begin(ctx, child.ID, store.TypeCheckup)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, c.Submit(ctx, sess, 1))
	}

	require.NoError(t, c.Reanswer(ctx, sess, 0, 4))
	assert.Equal(t, 10, sess.Step)
	assert.Equal(t, 4, m.answers[sess.AssessmentID]["chk_01"].Value)
	assert.Equal(t, 0, interludeCount(m, sess.AssessmentID), "no checkpoint refire")
}

func TestSubjects(t *testing.T) {
	m := newMemStore()
	child1 := m.addProfile(store.ProfileChild, time.Now())
	child2 := m.addProfile(store.ProfileChild, time.Now().Add(time.Minute))
	parent := m.addProfile(store.ProfileParent, time.Now().Add(2*time.Minute))
	c := newTestController(t, m)
	ctx := context.Background()

	subjects, err := c.Subjects(ctx, "h1", store.TypeCheckup)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, child1.ID, subjects[0].ID)
	assert.Equal(t, child2.ID, subjects[1].ID)

	sess, err := c.Begin(ctx, child1.ID, store.TypeCheckup)
	require.NoError(t, err)
	finishCheckup(t, c, sess, 0)

	subjects, err = c.Subjects(ctx, "h1", store.TypeCheckup)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, child2.ID, subjects[0].ID)

	subjects, err = c.Subjects(ctx, "h1", store.TypeFamily)
	require.NoError(t, err)
	require.Len(t, subjects, 1, "family flow runs once, answered by a caregiver")
	assert.Equal(t, parent.ID, subjects[0].ID)
}

func TestSubmitInvalidState(t *testing.T) {
	m := newMemStore()
	child := m.addProfile(store.ProfileChild, time.Now())
	c := newTestController(t, m)
	ctx := context.Background()

	sess, err := c.Begin(ctx, child.ID, store.TypeCheckup)
	require.NoError(t, err)
	finishCheckup(t, c, sess, 0)

	err = c.Submit(ctx, sess, 1)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	err = c.AcknowledgeInterlude(ctx, sess)
	require.ErrorAs(t, err, &verr)

	_, err = c.AdvanceToNextSubject(ctx, sess)
	require.ErrorAs(t, err, &verr)
}
