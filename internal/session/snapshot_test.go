package session

import (
	"testing"

	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/store"
)

func TestLoadTopicProgress_NilSnapshot(t *testing.T) {
	tier, records := LoadTopicProgress(nil, "linear-equations")
	if tier != progression.TierEasy {
		t.Errorf("tier = %v, want easy", tier)
	}
	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
}

func TestLoadTopicProgress_UnseenTopic(t *testing.T) {
	snap := &store.Snapshot{Data: store.SnapshotData{Version: 1}}

	tier, records := LoadTopicProgress(snap, "limits")
	if tier != progression.TierEasy {
		t.Errorf("tier = %v, want easy", tier)
	}
	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
}

func TestTopicProgressRoundTrip(t *testing.T) {
	s := newTestState()
	for i := 0; i < 3; i++ {
		s.CurrentExercise = testExercise(s.Drift.Tier())
		HandleAnswer(s, "5")
	}

	var data store.SnapshotData
	ApplyTopicProgress(&data, s)

	if data.Version != SnapshotVersion {
		t.Errorf("version = %d, want %d", data.Version, SnapshotVersion)
	}

	snap := &store.Snapshot{Data: data}
	tier, records := LoadTopicProgress(snap, "linear-equations")

	if tier != s.Drift.Tier() {
		t.Errorf("tier = %v, want %v", tier, s.Drift.Tier())
	}
	easy := records[progression.TierEasy]
	if easy.TotalAttempts != s.Records[progression.TierEasy].TotalAttempts {
		t.Errorf("easy attempts = %d, want %d", easy.TotalAttempts, s.Records[progression.TierEasy].TotalAttempts)
	}
}

func TestApplyTopicProgress_PreservesOtherTopics(t *testing.T) {
	data := store.SnapshotData{
		Version: 1,
		Topics: map[string]store.TopicProgress{
			"fractions-decimals": {Tier: "hard"},
		},
	}

	s := newTestState()
	s.CurrentExercise = testExercise(progression.TierEasy)
	HandleAnswer(s, "5")

	ApplyTopicProgress(&data, s)

	if _, ok := data.Topics["fractions-decimals"]; !ok {
		t.Error("existing topic entry was dropped")
	}
	if _, ok := data.Topics["linear-equations"]; !ok {
		t.Error("session topic entry missing")
	}
}
