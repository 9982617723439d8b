package report

import "github.com/amahle/famcheck/internal/store"

// legacyImpactDomain is the single impact field older records carry instead
// of the current impact_child/impact_parent/impact_family split.
const legacyImpactDomain = "impact"

// legacyStatuses maps the retired impact status vocabulary onto the current
// one. Scores pass through untouched, so nothing is lost in translation.
var legacyStatuses = map[string]string{
	"high_impact":   "concerning",
	"medium_impact": "borderline",
	"low_impact":    "typical",
}

// NormalizeResults presents old and new result shapes uniformly. The legacy
// "impact" entry has its status translated into the current vocabulary; when
// the current impact sub-domains are also present they win and the legacy
// entry is dropped.
func NormalizeResults(in map[string]store.DomainResult) map[string]store.DomainResult {
	if in == nil {
		return nil
	}

	legacy, hasLegacy := in[legacyImpactDomain]
	if !hasLegacy {
		return in
	}

	out := make(map[string]store.DomainResult, len(in))
	for domain, r := range in {
		if domain == legacyImpactDomain {
			continue
		}
		out[domain] = r
	}

	if hasNewImpact(in) {
		return out
	}

	if mapped, ok := legacyStatuses[legacy.Status]; ok {
		legacy.Status = mapped
	}
	out[legacyImpactDomain] = legacy
	return out
}

func hasNewImpact(in map[string]store.DomainResult) bool {
	for _, domain := range []string{"impact_child", "impact_parent", "impact_family"} {
		if _, ok := in[domain]; ok {
			return true
		}
	}
	return false
}
