// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/amahle/famcheck/ent/answer"
	"github.com/amahle/famcheck/ent/assessment"
	"github.com/amahle/famcheck/ent/profile"
	"github.com/amahle/famcheck/ent/schema"
	"github.com/amahle/famcheck/ent/transitionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescAssessmentID is the schema descriptor for assessment_id field.
	answerDescAssessmentID := answerFields[1].Descriptor()
	// answer.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	answer.AssessmentIDValidator = answerDescAssessmentID.Validators[0].(func(string) error)
	// answerDescQuestionID is the schema descriptor for question_id field.
	answerDescQuestionID := answerFields[2].Descriptor()
	// answer.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answer.QuestionIDValidator = answerDescQuestionID.Validators[0].(func(string) error)
	// answerDescQuestionCode is the schema descriptor for question_code field.
	answerDescQuestionCode := answerFields[3].Descriptor()
	// answer.QuestionCodeValidator is a validator for the "question_code" field. It is called by the builders before save.
	answer.QuestionCodeValidator = answerDescQuestionCode.Validators[0].(func(string) error)
	// answerDescCategory is the schema descriptor for category field.
	answerDescCategory := answerFields[4].Descriptor()
	// answer.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	answer.CategoryValidator = answerDescCategory.Validators[0].(func(string) error)
	// answerDescAnswerType is the schema descriptor for answer_type field.
	answerDescAnswerType := answerFields[6].Descriptor()
	// answer.AnswerTypeValidator is a validator for the "answer_type" field. It is called by the builders before save.
	answer.AnswerTypeValidator = answerDescAnswerType.Validators[0].(func(string) error)
	// answerDescCreatedAt is the schema descriptor for created_at field.
	answerDescCreatedAt := answerFields[8].Descriptor()
	// answer.DefaultCreatedAt holds the default value on creation for the created_at field.
	answer.DefaultCreatedAt = answerDescCreatedAt.Default.(func() time.Time)
	// answerDescUpdatedAt is the schema descriptor for updated_at field.
	answerDescUpdatedAt := answerFields[9].Descriptor()
	// answer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	answer.DefaultUpdatedAt = answerDescUpdatedAt.Default.(func() time.Time)
	// answer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	answer.UpdateDefaultUpdatedAt = answerDescUpdatedAt.UpdateDefault.(func() time.Time)
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescHouseholdID is the schema descriptor for household_id field.
	assessmentDescHouseholdID := assessmentFields[1].Descriptor()
	// assessment.HouseholdIDValidator is a validator for the "household_id" field. It is called by the builders before save.
	assessment.HouseholdIDValidator = assessmentDescHouseholdID.Validators[0].(func(string) error)
	// assessmentDescCurrentStep is the schema descriptor for current_step field.
	assessmentDescCurrentStep := assessmentFields[5].Descriptor()
	// assessment.DefaultCurrentStep holds the default value on creation for the current_step field.
	assessment.DefaultCurrentStep = assessmentDescCurrentStep.Default.(int)
	// assessmentDescStartedAt is the schema descriptor for started_at field.
	assessmentDescStartedAt := assessmentFields[9].Descriptor()
	// assessment.DefaultStartedAt holds the default value on creation for the started_at field.
	assessment.DefaultStartedAt = assessmentDescStartedAt.Default.(func() time.Time)
	// assessmentDescUpdatedAt is the schema descriptor for updated_at field.
	assessmentDescUpdatedAt := assessmentFields[11].Descriptor()
	// assessment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assessment.DefaultUpdatedAt = assessmentDescUpdatedAt.Default.(func() time.Time)
	// assessment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assessment.UpdateDefaultUpdatedAt = assessmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescHouseholdID is the schema descriptor for household_id field.
	profileDescHouseholdID := profileFields[1].Descriptor()
	// profile.HouseholdIDValidator is a validator for the "household_id" field. It is called by the builders before save.
	profile.HouseholdIDValidator = profileDescHouseholdID.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[5].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	transitioneventMixin := schema.TransitionEvent{}.Mixin()
	transitioneventMixinFields0 := transitioneventMixin[0].Fields()
	_ = transitioneventMixinFields0
	transitioneventFields := schema.TransitionEvent{}.Fields()
	_ = transitioneventFields
	// transitioneventDescTimestamp is the schema descriptor for timestamp field.
	transitioneventDescTimestamp := transitioneventMixinFields0[1].Descriptor()
	// transitionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	transitionevent.DefaultTimestamp = transitioneventDescTimestamp.Default.(func() time.Time)
	// transitioneventDescAssessmentID is the schema descriptor for assessment_id field.
	transitioneventDescAssessmentID := transitioneventFields[0].Descriptor()
	// transitionevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	transitionevent.AssessmentIDValidator = transitioneventDescAssessmentID.Validators[0].(func(string) error)
	// transitioneventDescFromState is the schema descriptor for from_state field.
	transitioneventDescFromState := transitioneventFields[1].Descriptor()
	// transitionevent.FromStateValidator is a validator for the "from_state" field. It is called by the builders before save.
	transitionevent.FromStateValidator = transitioneventDescFromState.Validators[0].(func(string) error)
	// transitioneventDescToState is the schema descriptor for to_state field.
	transitioneventDescToState := transitioneventFields[2].Descriptor()
	// transitionevent.ToStateValidator is a validator for the "to_state" field. It is called by the builders before save.
	transitionevent.ToStateValidator = transitioneventDescToState.Validators[0].(func(string) error)
	// transitioneventDescTrigger is the schema descriptor for trigger field.
	transitioneventDescTrigger := transitioneventFields[4].Descriptor()
	// transitionevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	transitionevent.TriggerValidator = transitioneventDescTrigger.Validators[0].(func(string) error)
}
