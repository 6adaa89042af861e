package tutor

import (
	"context"
	"fmt"

	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/topics"
)

// TopicStatus is one topic's standing for map display and recommendation.
type TopicStatus struct {
	Topic      topics.Topic
	MasteryPct int
	Attempts   int

	// Tier is the difficulty tier the learner last practiced this topic
	// at, from the snapshot. Empty when never practiced.
	Tier string

	// Unlocked marks topics opened early through a passed skip-ahead check.
	Unlocked bool

	// Accessible reports whether practice can start without a gate check:
	// every prerequisite is strong, or the topic was unlocked.
	Accessible bool
}

// TopicStatuses derives the standing of every catalog topic from the answer
// event log and the latest snapshot, in topological order.
func TopicStatuses(ctx context.Context, events store.EventRepo, snap *store.Snapshot) ([]TopicStatus, error) {
	unlocked := make(map[string]bool)
	progress := make(map[string]store.TopicProgress)
	if snap != nil {
		for _, id := range snap.Data.UnlockedTopics {
			unlocked[id] = true
		}
		progress = snap.Data.Topics
	}

	mastery := make(map[string]int)
	attempts := make(map[string]int)
	for _, t := range topics.All() {
		acc, n, err := events.TopicAccuracy(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("topic accuracy for %s: %w", t.ID, err)
		}
		mastery[t.ID] = int(acc*100 + 0.5)
		attempts[t.ID] = n
	}

	var statuses []TopicStatus
	for _, t := range topics.TopologicalOrder() {
		st := TopicStatus{
			Topic:      t,
			MasteryPct: mastery[t.ID],
			Attempts:   attempts[t.ID],
			Unlocked:   unlocked[t.ID],
		}
		if tp, ok := progress[t.ID]; ok {
			st.Tier = tp.Tier
		}

		st.Accessible = unlocked[t.ID] || allPrereqsStrong(t, mastery)
		statuses = append(statuses, st)
	}
	return statuses, nil
}

func allPrereqsStrong(t topics.Topic, mastery map[string]int) bool {
	for _, id := range t.Prerequisites {
		if mastery[id] < topics.WeakMasteryCutoff {
			return false
		}
	}
	return true
}

// RecommendNext picks the topic a quick-practice session should open with:
// the first accessible topic, in topological order, that has not reached a
// strong mastery level. Falls back to the last accessible topic when all
// are strong, and to the first catalog topic when nothing is accessible
// (an empty event log leaves every root accessible, so that is the
// degenerate single-topic catalog case).
func RecommendNext(statuses []TopicStatus) topics.Topic {
	var lastAccessible *TopicStatus
	for i := range statuses {
		st := &statuses[i]
		if !st.Accessible {
			continue
		}
		if st.MasteryPct < topics.WeakMasteryCutoff || st.Attempts == 0 {
			return st.Topic
		}
		lastAccessible = st
	}
	if lastAccessible != nil {
		return lastAccessible.Topic
	}
	if len(statuses) > 0 {
		return statuses[0].Topic
	}
	return topics.Topic{}
}
