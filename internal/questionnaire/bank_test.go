package questionnaire

import (
	"testing"

	"github.com/amahle/famcheck/internal/store"
)

func TestFlowsLoad(t *testing.T) {
	flows, err := Flows()
	if err != nil {
		t.Fatalf("load flows: %v", err)
	}
	if len(flows) != 3 {
		t.Fatalf("flow count = %d, want 3", len(flows))
	}
	// Household sequence order.
	wantOrder := []store.AssessmentType{store.TypeCheckup, store.TypeParent, store.TypeFamily}
	for i, f := range flows {
		if f.Type != wantOrder[i] {
			t.Errorf("flows[%d].Type = %s, want %s", i, f.Type, wantOrder[i])
		}
	}
}

func TestCheckupFlowShape(t *testing.T) {
	f, err := FlowFor(store.TypeCheckup)
	if err != nil {
		t.Fatal(err)
	}
	if f.TotalSteps() != 30 {
		t.Errorf("total steps = %d, want 30", f.TotalSteps())
	}
	if f.InterludeIndex != 20 {
		t.Errorf("interlude index = %d, want 20", f.InterludeIndex)
	}
	if !f.HasInterlude(20) {
		t.Error("expected interlude at step 20")
	}
	if f.HasInterlude(19) || f.HasInterlude(21) {
		t.Error("interlude fired at wrong step")
	}
}

func TestDomainMaxima(t *testing.T) {
	tests := []struct {
		typ    store.AssessmentType
		domain string
		want   int
	}{
		{store.TypeCheckup, "emotional", 20},
		{store.TypeCheckup, "conduct", 20},
		{store.TypeCheckup, "hyperactivity", 20},
		{store.TypeCheckup, "peer_problems", 24},
		{store.TypeCheckup, "impact_child", 3},
		{store.TypeCheckup, "impact_parent", 6},
		{store.TypeCheckup, "impact_family", 18},
		{store.TypeParent, "family_stress", 4},
		{store.TypeFamily, "partner_relationship", 10},
		{store.TypeFamily, "coparenting", 10},
	}
	for _, tt := range tests {
		f, err := FlowFor(tt.typ)
		if err != nil {
			t.Fatal(err)
		}
		if got := f.DomainMax()[tt.domain]; got != tt.want {
			t.Errorf("%s/%s max = %d, want %d", tt.typ, tt.domain, got, tt.want)
		}
	}
}

func TestReverseOnlyOnLikert5(t *testing.T) {
	flows, err := Flows()
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range flows {
		for _, q := range f.Questions {
			if q.Reverse && q.AnswerType != ScaleLikert5 {
				t.Errorf("%s: reverse flag on %s scale", q.Code, q.AnswerType)
			}
		}
	}
}

func TestQuestionCodesUnique(t *testing.T) {
	flows, err := Flows()
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, f := range flows {
		for _, q := range f.Questions {
			if seen[q.Code] {
				t.Errorf("duplicate question code %q", q.Code)
			}
			seen[q.Code] = true
		}
	}
}

func TestQuestionAt(t *testing.T) {
	f, err := FlowFor(store.TypeParent)
	if err != nil {
		t.Fatal(err)
	}
	q, err := f.QuestionAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if q.Code != "par_01" {
		t.Errorf("step 0 code = %s, want par_01", q.Code)
	}
	if _, err := f.QuestionAt(f.TotalSteps()); err == nil {
		t.Error("expected out-of-range error")
	}
	if _, err := f.QuestionAt(-1); err == nil {
		t.Error("expected out-of-range error for negative step")
	}
}

func TestValueRange(t *testing.T) {
	tests := []struct {
		scale    string
		min, max int
	}{
		{ScaleLikert5, 0, 4},
		{ScaleImpact4, 0, 3},
		{ScaleYesNo, 0, 1},
		{ScaleAgree6, 0, 5},
	}
	for _, tt := range tests {
		min, max, ok := ValueRange(tt.scale)
		if !ok {
			t.Fatalf("ValueRange(%s) not ok", tt.scale)
		}
		if min != tt.min || max != tt.max {
			t.Errorf("ValueRange(%s) = %d-%d, want %d-%d", tt.scale, min, max, tt.min, tt.max)
		}
	}
	if _, _, ok := ValueRange("bogus"); ok {
		t.Error("expected not ok for unknown scale")
	}
}

func TestNextFlow(t *testing.T) {
	next, ok := NextFlow(store.TypeCheckup)
	if !ok || next != store.TypeParent {
		t.Errorf("NextFlow(checkup) = %s, %v", next, ok)
	}
	next, ok = NextFlow(store.TypeParent)
	if !ok || next != store.TypeFamily {
		t.Errorf("NextFlow(parent) = %s, %v", next, ok)
	}
	if _, ok := NextFlow(store.TypeFamily); ok {
		t.Error("family flow should be last")
	}
}
