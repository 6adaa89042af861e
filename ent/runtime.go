// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/quantatutor/quanta/ent/answerevent"
	"github.com/quantatutor/quanta/ent/gateevent"
	"github.com/quantatutor/quanta/ent/llmrequestevent"
	"github.com/quantatutor/quanta/ent/schema"
	"github.com/quantatutor/quanta/ent/sessionevent"
	"github.com/quantatutor/quanta/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescTopicID is the schema descriptor for topic_id field.
	answereventDescTopicID := answereventFields[1].Descriptor()
	// answerevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	answerevent.TopicIDValidator = answereventDescTopicID.Validators[0].(func(string) error)
	// answereventDescTier is the schema descriptor for tier field.
	answereventDescTier := answereventFields[2].Descriptor()
	// answerevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	answerevent.TierValidator = answereventDescTier.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[4].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[5].Descriptor()
	// answerevent.LearnerAnswerValidator is a validator for the "learner_answer" field. It is called by the builders before save.
	answerevent.LearnerAnswerValidator = answereventDescLearnerAnswer.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[7].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	gateeventMixin := schema.GateEvent{}.Mixin()
	gateeventMixinFields0 := gateeventMixin[0].Fields()
	_ = gateeventMixinFields0
	gateeventFields := schema.GateEvent{}.Fields()
	_ = gateeventFields
	// gateeventDescTimestamp is the schema descriptor for timestamp field.
	gateeventDescTimestamp := gateeventMixinFields0[1].Descriptor()
	// gateevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gateevent.DefaultTimestamp = gateeventDescTimestamp.Default.(func() time.Time)
	// gateeventDescTopicID is the schema descriptor for topic_id field.
	gateeventDescTopicID := gateeventFields[0].Descriptor()
	// gateevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	gateevent.TopicIDValidator = gateeventDescTopicID.Validators[0].(func(string) error)
	// gateeventDescOutcome is the schema descriptor for outcome field.
	gateeventDescOutcome := gateeventFields[1].Descriptor()
	// gateevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	gateevent.OutcomeValidator = gateeventDescOutcome.Validators[0].(func(string) error)
	// gateeventDescQuestionsAsked is the schema descriptor for questions_asked field.
	gateeventDescQuestionsAsked := gateeventFields[2].Descriptor()
	// gateevent.DefaultQuestionsAsked holds the default value on creation for the questions_asked field.
	gateevent.DefaultQuestionsAsked = gateeventDescQuestionsAsked.Default.(int)
	// gateeventDescCorrectAnswers is the schema descriptor for correct_answers field.
	gateeventDescCorrectAnswers := gateeventFields[3].Descriptor()
	// gateevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	gateevent.DefaultCorrectAnswers = gateeventDescCorrectAnswers.Default.(int)
	// gateeventDescErrorMessage is the schema descriptor for error_message field.
	gateeventDescErrorMessage := gateeventFields[5].Descriptor()
	// gateevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	gateevent.DefaultErrorMessage = gateeventDescErrorMessage.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTopicID is the schema descriptor for topic_id field.
	sessioneventDescTopicID := sessioneventFields[2].Descriptor()
	// sessionevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	sessionevent.TopicIDValidator = sessioneventDescTopicID.Validators[0].(func(string) error)
	// sessioneventDescStartTier is the schema descriptor for start_tier field.
	sessioneventDescStartTier := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultStartTier holds the default value on creation for the start_tier field.
	sessionevent.DefaultStartTier = sessioneventDescStartTier.Default.(string)
	// sessioneventDescEndTier is the schema descriptor for end_tier field.
	sessioneventDescEndTier := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultEndTier holds the default value on creation for the end_tier field.
	sessionevent.DefaultEndTier = sessioneventDescEndTier.Default.(string)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
