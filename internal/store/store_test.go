package store

import (
	"context"
	"testing"
	"time"

	"github.com/quantatutor/quanta/internal/progression"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Topics: map[string]TopicProgress{
				"linear-equations": {
					Tier: "medium",
					Records: map[string]progression.PerformanceRecord{
						"easy": {
							ConsecutiveCorrect: 3,
							TotalAttempts:      8,
							CorrectAttempts:    6,
							RecentOutcomes:     []bool{true, false, true, true, true},
						},
					},
				},
			},
			UnlockedTopics: []string{"quadratic-equations"},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}

	tp, ok := snap.Data.Topics["linear-equations"]
	if !ok {
		t.Fatal("expected linear-equations in snapshot topics")
	}
	if tp.Tier != "medium" {
		t.Errorf("tier = %q, want medium", tp.Tier)
	}
	rec := tp.Records["easy"]
	if rec.ConsecutiveCorrect != 3 || rec.TotalAttempts != 8 || rec.CorrectAttempts != 6 {
		t.Errorf("record = %+v, want streak 3, total 8, correct 6", rec)
	}
	if len(rec.RecentOutcomes) != 5 {
		t.Errorf("recent outcomes = %d, want 5", len(rec.RecentOutcomes))
	}
	if len(snap.Data.UnlockedTopics) != 1 || snap.Data.UnlockedTopics[0] != "quadratic-equations" {
		t.Errorf("unlocked topics = %v", snap.Data.UnlockedTopics)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", TopicID: "fractions-decimals", StartTier: "easy",
	}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", TopicID: "fractions-decimals", Tier: "easy",
		QuestionText: "1/2 + 1/4 = ?", CorrectAnswer: "3/4", LearnerAnswer: "3/4",
		Correct: true, TimeMs: 4200,
	}); err != nil {
		t.Fatalf("append answer event: %v", err)
	}
	if err := repo.AppendGateEvent(ctx, GateEventData{
		TopicID: "quadratic-equations", Outcome: "failed",
		QuestionsAsked: 3, CorrectAnswers: 1,
		WeakPrerequisites: []string{"polynomials-factoring"},
	}); err != nil {
		t.Fatalf("append gate event: %v", err)
	}

	se, err := s.Client().SessionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session event: %v", err)
	}
	ae, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer event: %v", err)
	}
	ge, err := s.Client().GateEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query gate event: %v", err)
	}

	if se.Sequence != 1 || ae.Sequence != 2 || ge.Sequence != 3 {
		t.Errorf("sequences = %d, %d, %d, want 1, 2, 3", se.Sequence, ae.Sequence, ge.Sequence)
	}
}

func TestTopicAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Empty topic reports zero with no error.
	acc, n, err := repo.TopicAccuracy(ctx, "limits")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 || n != 0 {
		t.Errorf("accuracy = %v, count = %d, want 0, 0", acc, n)
	}

	outcomes := []bool{true, true, false, true}
	for i, correct := range outcomes {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID: "s1", TopicID: "limits", Tier: "easy",
			QuestionText: "q", CorrectAnswer: "a", LearnerAnswer: "a",
			Correct: correct,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	// Answers for another topic must not leak in.
	err = repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1", TopicID: "derivatives", Tier: "easy",
		QuestionText: "q", CorrectAnswer: "a", LearnerAnswer: "b",
		Correct: false,
	})
	if err != nil {
		t.Fatalf("append other topic: %v", err)
	}

	acc, n, err = repo.TopicAccuracy(ctx, "limits")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if n != 4 {
		t.Errorf("count = %d, want 4", n)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		err := repo.AppendLLMEvent(ctx, LLMEventData{
			Provider:     "anthropic",
			Model:        "claude-sonnet",
			Purpose:      "exercise-gen",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    900,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("len = %d, want 4", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Sequence <= events[i-1].Sequence {
			t.Errorf("events not in sequence order: %d after %d", events[i].Sequence, events[i-1].Sequence)
		}
	}

	// After + Limit.
	events, err = repo.QueryLLMEvents(ctx, QueryOpts{After: events[0].Sequence, Limit: 2})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("len = %d, want 2", len(events))
	}
	if events[0].InputTokens != 101 {
		t.Errorf("first input tokens = %d, want 101", events[0].InputTokens)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"snapshots", "answer_events", "gate_events", "session_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
