package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	dob := time.Date(2018, 3, 14, 0, 0, 0, 0, time.UTC)
	p := &Profile{
		HouseholdID: "h1",
		Type:        ProfileChild,
		DateOfBirth: &dob,
		WorryTags:   []string{"sleep", "appetite"},
	}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected assigned id")
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Type != ProfileChild {
		t.Errorf("type = %s, want child", got.Type)
	}
	if len(got.WorryTags) != 2 || got.WorryTags[0] != "sleep" {
		t.Errorf("worry tags = %v", got.WorryTags)
	}
	if got.DateOfBirth == nil || !got.DateOfBirth.Equal(dob) {
		t.Errorf("dob = %v, want %v", got.DateOfBirth, dob)
	}

	if _, err := repo.Get(ctx, "nope"); !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestProfileListOrderedByCreation(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		p := &Profile{HouseholdID: "h1", Type: ProfileChild}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	if err := repo.Create(ctx, &Profile{HouseholdID: "other", Type: ProfileChild}); err != nil {
		t.Fatalf("create other household: %v", err)
	}

	got, err := repo.List(ctx, "h1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (household scoped)", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.Before(got[i-1].CreatedAt) {
			t.Error("list not ascending by creation time")
		}
	}
}

func TestProfileUpdateWorryTags(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p := &Profile{HouseholdID: "h1", Type: ProfileParent, WorryTags: []string{"stress"}}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	if err := repo.UpdateWorryTags(ctx, p.ID, []string{"stress", "sleep"}); err != nil {
		t.Fatalf("update tags: %v", err)
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.WorryTags) != 2 {
		t.Errorf("tags = %v, want 2 entries", got.WorryTags)
	}
}

func TestProfileDeleteDetachesAssessments(t *testing.T) {
	s := openTestStore(t)
	profiles := s.ProfileRepo()
	assessments := s.AssessmentRepo()
	ctx := context.Background()

	p := &Profile{HouseholdID: "h1", Type: ProfileChild}
	if err := profiles.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	a := &Assessment{HouseholdID: "h1", ProfileID: p.ID, Type: TypeCheckup, TotalSteps: 30}
	if err := assessments.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	if err := profiles.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := assessments.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("assessment must survive profile deletion: %v", err)
	}
	if got.ProfileID != "" {
		t.Errorf("profile id = %q, want empty after detach", got.ProfileID)
	}
}

func TestAssessmentLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	a := &Assessment{
		HouseholdID: "h1",
		ProfileID:   "p1",
		Type:        TypeCheckup,
		TotalSteps:  30,
		WorryTags:   WorryTags{Child: []string{"sleep"}},
	}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}

	open, err := repo.FindInProgress(ctx, "p1", TypeCheckup)
	if err != nil {
		t.Fatalf("find in-progress: %v", err)
	}
	if open == nil || open.ID != a.ID {
		t.Fatal("expected to find the in-progress run")
	}
	if len(open.WorryTags.Child) != 1 || open.WorryTags.Child[0] != "sleep" {
		t.Errorf("worry tags = %+v", open.WorryTags)
	}

	results := map[string]DomainResult{
		"emotional": {Score: 4, Max: 20, Status: "typical"},
	}
	if err := repo.Complete(ctx, a.ID, results); err != nil {
		t.Fatalf("complete: %v", err)
	}

	open, err = repo.FindInProgress(ctx, "p1", TypeCheckup)
	if err != nil {
		t.Fatal(err)
	}
	if open != nil {
		t.Error("completed run still reported in-progress")
	}

	done, err := repo.FindCompleted(ctx, "p1", TypeCheckup)
	if err != nil {
		t.Fatal(err)
	}
	if done == nil {
		t.Fatal("expected completed run")
	}
	if done.CompletedAt == nil {
		t.Error("completed_at not set")
	}
	if done.Results["emotional"].Score != 4 {
		t.Errorf("results = %+v", done.Results)
	}
}

func TestAdvanceStepMonotonic(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	a := &Assessment{HouseholdID: "h1", ProfileID: "p1", Type: TypeCheckup, TotalSteps: 30}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	if err := repo.AdvanceStep(ctx, a.ID, 5); err != nil {
		t.Fatal(err)
	}
	// Moving backward is a no-op, not an error.
	if err := repo.AdvanceStep(ctx, a.ID, 2); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.CurrentStep != 5 {
		t.Errorf("current step = %d, want 5", got.CurrentStep)
	}
}

func TestLatestCompletedDeduplicates(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	// Two completed check-ups for the same subject; only the newer counts.
	for i := 0; i < 2; i++ {
		a := &Assessment{HouseholdID: "h1", ProfileID: "p1", Type: TypeCheckup, TotalSteps: 30}
		if err := repo.Create(ctx, a); err != nil {
			t.Fatal(err)
		}
		if err := repo.Complete(ctx, a.ID, map[string]DomainResult{
			"emotional": {Score: i, Max: 20, Status: "typical"},
		}); err != nil {
			t.Fatal(err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	// A parent run for another profile keeps its own slot.
	b := &Assessment{HouseholdID: "h1", ProfileID: "p2", Type: TypeParent, TotalSteps: 4}
	if err := repo.Create(ctx, b); err != nil {
		t.Fatal(err)
	}
	if err := repo.Complete(ctx, b.ID, map[string]DomainResult{
		"family_stress": {Score: 0, Max: 4, Status: "typical"},
	}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.LatestCompleted(ctx, "h1")
	if err != nil {
		t.Fatalf("latest completed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (one per profile+type)", len(got))
	}
	for _, a := range got {
		if a.ProfileID == "p1" && a.Results["emotional"].Score != 1 {
			t.Errorf("kept the older run: %+v", a.Results)
		}
	}
}

func TestAbandonStale(t *testing.T) {
	s := openTestStore(t)
	repo := s.AssessmentRepo()
	ctx := context.Background()

	a := &Assessment{HouseholdID: "h1", ProfileID: "p1", Type: TypeCheckup, TotalSteps: 30}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	// Cutoff in the past abandons nothing.
	n, err := repo.AbandonStale(ctx, "h1", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("abandoned %d, want 0", n)
	}

	// Cutoff in the future catches the untouched run.
	n, err = repo.AbandonStale(ctx, "h1", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("abandoned %d, want 1", n)
	}

	got, err := repo.Get(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != StatusAbandoned {
		t.Errorf("status = %s, want abandoned", got.Status)
	}
}

func TestAnswerUpsertLastWriteWins(t *testing.T) {
	s := openTestStore(t)
	assessments := s.AssessmentRepo()
	answers := s.AnswerRepo()
	ctx := context.Background()

	a := &Assessment{HouseholdID: "h1", ProfileID: "p1", Type: TypeCheckup, TotalSteps: 30}
	if err := assessments.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	ans := &Answer{
		AssessmentID: a.ID,
		QuestionCode: "chk_01",
		Category:     "emotional",
		Value:        2,
		AnswerType:   "likert5",
		StepNumber:   0,
	}
	if err := answers.Upsert(ctx, ans); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	ans.Value = 4
	if err := answers.Upsert(ctx, ans); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := answers.ListByAssessment(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (keyed by assessment+code)", len(got))
	}
	if got[0].Value != 4 {
		t.Errorf("value = %d, want 4", got[0].Value)
	}
}

func TestAnswersOrderedByStep(t *testing.T) {
	s := openTestStore(t)
	assessments := s.AssessmentRepo()
	answers := s.AnswerRepo()
	ctx := context.Background()

	a := &Assessment{HouseholdID: "h1", ProfileID: "p1", Type: TypeCheckup, TotalSteps: 30}
	if err := assessments.Create(ctx, a); err != nil {
		t.Fatal(err)
	}

	// Insert out of step order.
	for _, step := range []int{2, 0, 1} {
		err := answers.Upsert(ctx, &Answer{
			AssessmentID: a.ID,
			QuestionCode: []string{"chk_01", "chk_02", "chk_03"}[step],
			Category:     "emotional",
			Value:        step,
			AnswerType:   "likert5",
			StepNumber:   step,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	got, err := answers.ListByAssessment(ctx, a.ID)
	if err != nil {
		t.Fatal(err)
	}
	for i, ans := range got {
		if ans.StepNumber != i {
			t.Errorf("got[%d].StepNumber = %d", i, ans.StepNumber)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestTransitionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendTransition(ctx, TransitionEventData{
			AssessmentID: "a1",
			FromState:    "in_progress",
			ToState:      "in_progress",
			Step:         i,
			Trigger:      "answer",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	err := repo.AppendTransition(ctx, TransitionEventData{
		AssessmentID: "a1",
		FromState:    "in_progress",
		ToState:      "interlude",
		Step:         20,
		Trigger:      "skip",
	})
	if err != nil {
		t.Fatal(err)
	}

	n, err := repo.CountTransitions(ctx, "a1", "answer")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 3 {
		t.Errorf("answer transitions = %d, want 3", n)
	}

	n, err = repo.CountTransitions(ctx, "a1", "skip")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("skip transitions = %d, want 1", n)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"profiles", "assessments", "answers", "transition_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
