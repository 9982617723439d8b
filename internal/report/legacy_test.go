package report

import (
	"testing"

	"github.com/amahle/famcheck/internal/store"
)

func TestNormalizeResultsPassthrough(t *testing.T) {
	if got := NormalizeResults(nil); got != nil {
		t.Errorf("NormalizeResults(nil) = %v, want nil", got)
	}

	in := map[string]store.DomainResult{
		"emotional": {Score: 3, Max: 20, Status: "typical"},
	}
	out := NormalizeResults(in)
	if len(out) != 1 || out["emotional"] != in["emotional"] {
		t.Errorf("modern results changed: %v", out)
	}
}

func TestNormalizeResultsTranslatesLegacyImpact(t *testing.T) {
	tests := []struct {
		legacy string
		want   string
	}{
		{"high_impact", "concerning"},
		{"medium_impact", "borderline"},
		{"low_impact", "typical"},
	}
	for _, tt := range tests {
		out := NormalizeResults(map[string]store.DomainResult{
			"impact": {Score: 1, Max: 3, Status: tt.legacy},
		})
		r, ok := out["impact"]
		if !ok {
			t.Fatalf("legacy impact dropped for %s", tt.legacy)
		}
		if r.Status != tt.want {
			t.Errorf("status %s translated to %s, want %s", tt.legacy, r.Status, tt.want)
		}
		if r.Score != 1 || r.Max != 3 {
			t.Errorf("score or max changed: %+v", r)
		}
	}
}

func TestNormalizeResultsDropsLegacyWhenSplitImpactPresent(t *testing.T) {
	out := NormalizeResults(map[string]store.DomainResult{
		"impact":       {Score: 2, Max: 3, Status: "high_impact"},
		"impact_child": {Score: 1, Max: 3, Status: "concerning"},
	})

	if _, ok := out["impact"]; ok {
		t.Error("legacy impact should be dropped when split domains exist")
	}
	if _, ok := out["impact_child"]; !ok {
		t.Error("split impact domain missing")
	}
}
