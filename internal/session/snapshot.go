package session

import (
	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/store"
)

// SnapshotVersion is the current snapshot data format version.
const SnapshotVersion = 1

// LoadTopicProgress extracts the starting tier and per-tier performance
// records for a topic from a snapshot. A nil snapshot or an unseen topic
// yields the easy tier with empty records.
func LoadTopicProgress(snap *store.Snapshot, topicID string) (progression.Tier, map[progression.Tier]progression.PerformanceRecord) {
	records := make(map[progression.Tier]progression.PerformanceRecord)
	if snap == nil {
		return progression.TierEasy, records
	}

	tp, ok := snap.Data.Topics[topicID]
	if !ok {
		return progression.TierEasy, records
	}

	for name, rec := range tp.Records {
		records[progression.TierFromString(name)] = rec
	}
	return progression.TierFromString(tp.Tier), records
}

// ApplyTopicProgress writes a session's final tier and records for its topic
// into snapshot data, preserving other topics' entries.
func ApplyTopicProgress(data *store.SnapshotData, state *State) {
	if data.Topics == nil {
		data.Topics = make(map[string]store.TopicProgress)
	}
	data.Version = SnapshotVersion

	recs := make(map[string]progression.PerformanceRecord, len(state.Records))
	for tier, rec := range state.Records {
		recs[tier.String()] = rec
	}

	data.Topics[state.Topic.ID] = store.TopicProgress{
		Tier:    state.Drift.Tier().String(),
		Records: recs,
	}
}
