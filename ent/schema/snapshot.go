package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot is a point-in-time capture of the learner's progression state:
// per-topic tier, per-(topic, tier) performance records, and gate-unlocked
// topics. Loading the latest snapshot restores a session without replaying
// the answer event log.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Event-log sequence number the snapshot folds up to"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was written"),
		field.JSON("data", map[string]any{}).
			Comment("Versioned progression state (store.SnapshotData) as JSON"),
	}
}

// Latest-lookup and pruning both order by recency; sequence supports
// reconciling a snapshot against the event log.
func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
