package scoring

import (
	"encoding/json"
	"testing"

	"github.com/amahle/famcheck/internal/store"
)

func testEngine(t *testing.T, policy SkipPolicy) *Engine {
	t.Helper()
	table, err := DefaultCutoffs()
	if err != nil {
		t.Fatalf("default cutoffs: %v", err)
	}
	return NewEngine(table, policy)
}

// parentAnswers builds a full answer set for the 4-question parent flow.
func parentAnswers(values ...int) []*store.Answer {
	codes := []string{"par_01", "par_02", "par_03", "par_04"}
	out := make([]*store.Answer, 0, len(values))
	for i, v := range values {
		out = append(out, &store.Answer{
			AssessmentID: "a1",
			QuestionCode: codes[i],
			Category:     "family_stress",
			Value:        v,
			AnswerType:   "yesno",
			StepNumber:   i,
		})
	}
	return out
}

func TestScoreSumsByCategory(t *testing.T) {
	e := testEngine(t, SkipCountsZero)

	results, err := e.Score(store.TypeParent, parentAnswers(1, 0, 1, 1))
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	r, ok := results["family_stress"]
	if !ok {
		t.Fatal("missing family_stress domain")
	}
	if r.Score != 3 {
		t.Errorf("score = %d, want 3", r.Score)
	}
	if r.Max != 4 {
		t.Errorf("max = %d, want 4", r.Max)
	}
	if r.Status != "concerning" {
		t.Errorf("status = %s, want concerning", r.Status)
	}
}

func TestScoreIdempotent(t *testing.T) {
	e := testEngine(t, SkipCountsZero)
	answers := parentAnswers(1, -1, 0, 1)

	first, err := e.Score(store.TypeParent, answers)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Score(store.TypeParent, answers)
	if err != nil {
		t.Fatal(err)
	}

	// Byte-identical once serialized (json sorts map keys).
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("re-scoring differed:\n%s\n%s", a, b)
	}
}

func TestScoreSkipCountsZero(t *testing.T) {
	e := testEngine(t, SkipCountsZero)

	results, err := e.Score(store.TypeParent, parentAnswers(1, -1, -1, 0))
	if err != nil {
		t.Fatal(err)
	}
	r := results["family_stress"]
	if r.Score != 1 {
		t.Errorf("score = %d, want 1", r.Score)
	}
	if r.Max != 4 {
		t.Errorf("max = %d, want 4 (skips keep full denominator)", r.Max)
	}
}

func TestScoreSkipExcluded(t *testing.T) {
	e := testEngine(t, SkipExcluded)

	results, err := e.Score(store.TypeParent, parentAnswers(1, -1, -1, 0))
	if err != nil {
		t.Fatal(err)
	}
	r := results["family_stress"]
	if r.Score != 1 {
		t.Errorf("score = %d, want 1", r.Score)
	}
	if r.Max != 2 {
		t.Errorf("max = %d, want 2 (two skipped yes/no questions excluded)", r.Max)
	}
}

func TestScoreEmptyAnswersCoversAllDomains(t *testing.T) {
	e := testEngine(t, SkipCountsZero)

	results, err := e.Score(store.TypeFamily, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, domain := range []string{"partner_relationship", "coparenting"} {
		r, ok := results[domain]
		if !ok {
			t.Fatalf("missing domain %q", domain)
		}
		if r.Score != 0 {
			t.Errorf("%s score = %d, want 0", domain, r.Score)
		}
		if r.Max != 10 {
			t.Errorf("%s max = %d, want 10", domain, r.Max)
		}
	}
}

func TestScoreStatusMonotonicInScore(t *testing.T) {
	e := testEngine(t, SkipCountsZero)
	rank := map[string]int{"typical": 0, "borderline": 1, "concerning": 2}

	low, err := e.Score(store.TypeParent, parentAnswers(1, 0, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	high, err := e.Score(store.TypeParent, parentAnswers(1, 1, 1, 0))
	if err != nil {
		t.Fatal(err)
	}

	if rank[high["family_stress"].Status] < rank[low["family_stress"].Status] {
		t.Errorf("status moved toward typical as score rose: %s -> %s",
			low["family_stress"].Status, high["family_stress"].Status)
	}
}

func TestScoreRejectsUnknownQuestionCode(t *testing.T) {
	e := testEngine(t, SkipCountsZero)

	_, err := e.Score(store.TypeParent, []*store.Answer{
		{QuestionCode: "bogus", Value: 1},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*RecalculationError); !ok {
		t.Errorf("error type = %T, want *RecalculationError", err)
	}
}

func TestScoreRejectsOutOfRangeValue(t *testing.T) {
	e := testEngine(t, SkipCountsZero)

	_, err := e.Score(store.TypeParent, parentAnswers(3))
	if err == nil {
		t.Fatal("expected error for yes/no value 3")
	}
	if _, ok := err.(*RecalculationError); !ok {
		t.Errorf("error type = %T, want *RecalculationError", err)
	}
}

// TestScoreCheckupScenario walks a known checkup answer set: the emotional
// score must equal the exact post-transform sum of its five items.
func TestScoreCheckupScenario(t *testing.T) {
	e := testEngine(t, SkipCountsZero)

	// Raw answers 2,1,3,0,4 on the emotional items (none reverse-scored),
	// stored as-is.
	codes := []string{"chk_01", "chk_02", "chk_03", "chk_04", "chk_05"}
	values := []int{2, 1, 3, 0, 4}
	var answers []*store.Answer
	for i, code := range codes {
		answers = append(answers, &store.Answer{
			QuestionCode: code,
			Category:     "emotional",
			Value:        values[i],
			AnswerType:   "likert5",
			StepNumber:   i,
		})
	}

	results, err := e.Score(store.TypeCheckup, answers)
	if err != nil {
		t.Fatal(err)
	}
	r := results["emotional"]
	if r.Score != 10 {
		t.Errorf("emotional score = %d, want 10", r.Score)
	}
	if r.Max != 20 {
		t.Errorf("emotional max = %d, want 20", r.Max)
	}
}
