package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GateEvent records the outcome of a prerequisite gate check for a topic
// the learner tried to skip ahead to.
type GateEvent struct {
	ent.Schema
}

func (GateEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GateEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").
			NotEmpty().
			Comment("Target topic the gate guarded"),
		field.String("outcome").
			NotEmpty().
			Comment("passed, failed, or error"),
		field.Int("questions_asked").
			Default(0).
			Comment("Diagnostic quiz length"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct answers in the quiz"),
		field.Strings("weak_prerequisites").
			Optional().
			Comment("Prerequisite topic IDs that were below the mastery cutoff"),
		field.String("error_message").
			Default("").
			Comment("Failure detail when outcome is error"),
	}
}

func (GateEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("outcome"),
	}
}
