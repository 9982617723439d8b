package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/amahle/famcheck/ent"
	"github.com/amahle/famcheck/ent/transitionevent"
)

// sequenceCounter manages the global monotonic sequence number shared across
// all event types. Each event type lives in its own ent-managed table, so
// per-table auto-increment IDs can't establish cross-type ordering. This
// shared counter assigns a single increasing sequence to every event
// regardless of type, so the progression history replays in exact order.
//
// Uses raw SQL outside ent because ent doesn't support database-level atomic
// counters. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendTransition(ctx context.Context, data TransitionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return &PersistenceError{Op: "next sequence", Err: err}
	}

	_, err = r.client.TransitionEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetFromState(data.FromState).
		SetToState(data.ToState).
		SetStep(data.Step).
		SetTrigger(data.Trigger).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "append transition event", Err: err}
	}
	return nil
}

func (r *eventRepo) CountTransitions(ctx context.Context, assessmentID, trigger string) (int, error) {
	n, err := r.client.TransitionEvent.Query().
		Where(
			transitionevent.AssessmentID(assessmentID),
			transitionevent.Trigger(trigger),
		).
		Count(ctx)
	if err != nil {
		return 0, &PersistenceError{Op: "count transition events", Err: err}
	}
	return n, nil
}
