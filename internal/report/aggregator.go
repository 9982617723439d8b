package report

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/amahle/famcheck/internal/scoring"
	"github.com/amahle/famcheck/internal/store"
)

// Aggregator reconciles a household's completed assessments into one
// composite report. It is safe to invoke concurrently from multiple report
// views: recomputation is idempotent and last-write-wins.
type Aggregator struct {
	profiles    store.ProfileRepo
	assessments store.AssessmentRepo
	answers     store.AnswerRepo
	engine      *scoring.Engine
}

// NewAggregator wires an aggregator against the given repositories.
func NewAggregator(
	profiles store.ProfileRepo,
	assessments store.AssessmentRepo,
	answers store.AnswerRepo,
	engine *scoring.Engine,
) *Aggregator {
	return &Aggregator{
		profiles:    profiles,
		assessments: assessments,
		answers:     answers,
		engine:      engine,
	}
}

// BuildHouseholdReport fetches the latest completed assessment per
// (profile, type) in one batched query, recomputes any stale results
// summary, normalizes legacy shapes, and assembles the composite report.
func (g *Aggregator) BuildHouseholdReport(ctx context.Context, householdID string) (*CompositeReport, error) {
	profiles, err := g.profiles.List(ctx, householdID)
	if err != nil {
		return nil, err
	}
	createdAt := make(map[string]time.Time, len(profiles))
	for _, p := range profiles {
		createdAt[p.ID] = p.CreatedAt
	}

	runs, err := g.assessments.LatestCompleted(ctx, householdID)
	if err != nil {
		return nil, err
	}

	rep := &CompositeReport{
		HouseholdID: householdID,
		GeneratedAt: time.Now(),
	}

	for _, run := range runs {
		sub := g.subjectReport(ctx, run)
		switch run.Type {
		case store.TypeCheckup:
			rep.Children = append(rep.Children, sub)
		case store.TypeParent:
			if rep.Parent == nil {
				s := sub
				rep.Parent = &s
			}
		case store.TypeFamily:
			if rep.Family == nil {
				s := sub
				rep.Family = &s
			}
		}
	}

	// Children in subject creation order; detached runs (profile deleted)
	// sort last by completion time.
	sort.SliceStable(rep.Children, func(i, j int) bool {
		ci, iOK := createdAt[rep.Children[i].ProfileID]
		cj, jOK := createdAt[rep.Children[j].ProfileID]
		switch {
		case iOK && jOK:
			return ci.Before(cj)
		case iOK:
			return true
		case jOK:
			return false
		default:
			return rep.Children[i].CompletedAt.Before(rep.Children[j].CompletedAt)
		}
	})

	return rep, nil
}

// subjectReport converts one completed run, recomputing its summary when the
// store carries the "not yet computed" sentinel (missing or empty map).
// A recompute failure falls back to the cached summary if one exists;
// otherwise the record is included with results marked unavailable.
func (g *Aggregator) subjectReport(ctx context.Context, run *store.Assessment) SubjectReport {
	sub := SubjectReport{
		AssessmentID: run.ID,
		ProfileID:    run.ProfileID,
		Type:         run.Type,
		WorryTags:    run.WorryTags,
	}
	if run.CompletedAt != nil {
		sub.CompletedAt = *run.CompletedAt
	}

	results := run.Results
	if len(results) == 0 {
		recomputed, err := g.recompute(ctx, run)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: recompute results for %s: %v\n", run.ID, err)
		} else {
			results = recomputed
		}
	}

	if len(results) == 0 {
		return sub
	}

	sub.Domains = NormalizeResults(results)
	sub.ResultsAvailable = true
	return sub
}

// recompute re-scores the run from its stored answers and persists the
// refreshed summary before it is reported.
func (g *Aggregator) recompute(ctx context.Context, run *store.Assessment) (map[string]store.DomainResult, error) {
	answers, err := g.answers.ListByAssessment(ctx, run.ID)
	if err != nil {
		return nil, err
	}

	results, err := g.engine.Score(run.Type, answers)
	if err != nil {
		return nil, err
	}

	if err := g.assessments.SaveResults(ctx, run.ID, results); err != nil {
		return nil, err
	}
	return results, nil
}
