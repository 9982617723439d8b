package report

import (
	"time"

	"github.com/amahle/famcheck/internal/store"
)

// SubjectReport is one completed assessment rendered for the report layer.
type SubjectReport struct {
	AssessmentID string                        `json:"assessment_id"`
	ProfileID    string                        `json:"profile_id,omitempty"`
	Type         store.AssessmentType          `json:"type"`
	CompletedAt  time.Time                     `json:"completed_at"`
	WorryTags    store.WorryTags               `json:"worry_tags"`
	Domains      map[string]store.DomainResult `json:"domains,omitempty"`

	// ResultsAvailable is false when scoring failed and no cached summary
	// exists; Domains is nil in that case.
	ResultsAvailable bool `json:"results_available"`
}

// CompositeReport is the household-level report: one record per completed
// child check-up plus optional parent and family records. A household need
// not have completed all three.
type CompositeReport struct {
	HouseholdID string          `json:"household_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Children    []SubjectReport `json:"children,omitempty"`
	Parent      *SubjectReport  `json:"parent,omitempty"`
	Family      *SubjectReport  `json:"family,omitempty"`
}
