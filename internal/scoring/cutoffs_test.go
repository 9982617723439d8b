package scoring

import "testing"

func TestDefaultCutoffsLoad(t *testing.T) {
	table, err := DefaultCutoffs()
	if err != nil {
		t.Fatalf("default cutoffs: %v", err)
	}

	// Every scored domain must be covered.
	domains := []string{
		"emotional", "conduct", "hyperactivity", "peer_problems",
		"impact_child", "impact_parent", "impact_family",
		"family_stress", "partner_relationship", "coparenting",
	}
	for _, d := range domains {
		if _, ok := table.Domains[d]; !ok {
			t.Errorf("missing cutoffs for domain %q", d)
		}
	}
}

func TestClassifyThreeTier(t *testing.T) {
	borderline := 4
	table := &CutoffTable{Domains: map[string]DomainCutoff{
		"emotional": {Borderline: &borderline, Concerning: 6},
	}}

	tests := []struct {
		score int
		want  Status
	}{
		{0, StatusTypical},
		{3, StatusTypical},
		{4, StatusBorderline},
		{5, StatusBorderline},
		{6, StatusConcerning},
		{20, StatusConcerning},
	}
	for _, tt := range tests {
		got, err := table.Classify("emotional", tt.score)
		if err != nil {
			t.Fatalf("classify %d: %v", tt.score, err)
		}
		if got != tt.want {
			t.Errorf("Classify(emotional, %d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestClassifyTwoTier(t *testing.T) {
	table := &CutoffTable{Domains: map[string]DomainCutoff{
		"impact_child": {Concerning: 1},
	}}

	got, err := table.Classify("impact_child", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != StatusTypical {
		t.Errorf("Classify(0) = %s, want typical", got)
	}

	got, _ = table.Classify("impact_child", 1)
	if got != StatusConcerning {
		t.Errorf("Classify(1) = %s, want concerning", got)
	}
}

func TestClassifyMonotonic(t *testing.T) {
	table, err := DefaultCutoffs()
	if err != nil {
		t.Fatal(err)
	}

	rank := map[Status]int{StatusTypical: 0, StatusBorderline: 1, StatusConcerning: 2}
	for domain := range table.Domains {
		prev := -1
		for score := 0; score <= 24; score++ {
			status, err := table.Classify(domain, score)
			if err != nil {
				t.Fatalf("%s/%d: %v", domain, score, err)
			}
			if rank[status] < prev {
				t.Errorf("domain %s: status rank decreased at score %d", domain, score)
			}
			prev = rank[status]
		}
	}
}

func TestClassifyUnknownDomain(t *testing.T) {
	table := &CutoffTable{Domains: map[string]DomainCutoff{}}
	if _, err := table.Classify("nonsense", 3); err == nil {
		t.Error("expected error for unknown domain")
	}
}

func TestParseCutoffsRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", "version: 1\n"},
		{"borderline above concerning", "version: 1\ndomains:\n  x:\n    borderline: 9\n    concerning: 3\n"},
		{"negative concerning", "version: 1\ndomains:\n  x:\n    concerning: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseCutoffs([]byte(tt.yaml)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}
