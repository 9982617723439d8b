package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/amahle/famcheck/ent"
	"github.com/amahle/famcheck/ent/answer"
)

type answerRepo struct {
	client *ent.Client
}

// Upsert writes the answer keyed by (assessment_id, question_code).
// The single-writer model means a plain find-then-write is race-free; the
// unique index backstops it against duplicate submissions.
func (r *answerRepo) Upsert(ctx context.Context, a *Answer) error {
	existing, err := r.client.Answer.Query().
		Where(
			answer.AssessmentID(a.AssessmentID),
			answer.QuestionCode(a.QuestionCode),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return &PersistenceError{Op: "find answer", Err: err}
	}

	if existing != nil {
		err := r.client.Answer.UpdateOne(existing).
			SetValue(a.Value).
			SetAnswerType(a.AnswerType).
			SetStepNumber(a.StepNumber).
			Exec(ctx)
		if err != nil {
			return &PersistenceError{Op: "update answer", Err: err}
		}
		a.ID = existing.ID
		return nil
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err = r.client.Answer.Create().
		SetID(a.ID).
		SetAssessmentID(a.AssessmentID).
		SetQuestionID(a.QuestionID).
		SetQuestionCode(a.QuestionCode).
		SetCategory(a.Category).
		SetValue(a.Value).
		SetAnswerType(a.AnswerType).
		SetStepNumber(a.StepNumber).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "create answer", Err: err}
	}
	return nil
}

func (r *answerRepo) ListByAssessment(ctx context.Context, assessmentID string) ([]*Answer, error) {
	rows, err := r.client.Answer.Query().
		Where(answer.AssessmentID(assessmentID)).
		Order(ent.Asc(answer.FieldStepNumber)).
		All(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list answers", Err: err}
	}

	out := make([]*Answer, 0, len(rows))
	for _, row := range rows {
		out = append(out, &Answer{
			ID:           row.ID,
			AssessmentID: row.AssessmentID,
			QuestionID:   row.QuestionID,
			QuestionCode: row.QuestionCode,
			Category:     row.Category,
			Value:        row.Value,
			AnswerType:   row.AnswerType,
			StepNumber:   row.StepNumber,
		})
	}
	return out, nil
}
