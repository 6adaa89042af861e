package tutor

import (
	"context"
	"errors"
	"testing"

	"github.com/quantatutor/quanta/internal/store"
)

// mockEventRepo implements store.EventRepo with canned per-topic accuracy.
type mockEventRepo struct {
	accuracy map[string]float64
	attempts map[string]int
	err      error
}

func (m *mockEventRepo) AppendLLMEvent(context.Context, store.LLMEventData) error        { return nil }
func (m *mockEventRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error  { return nil }
func (m *mockEventRepo) AppendGateEvent(context.Context, store.GateEventData) error      { return nil }
func (m *mockEventRepo) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }

func (m *mockEventRepo) TopicAccuracy(_ context.Context, topicID string) (float64, int, error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	return m.accuracy[topicID], m.attempts[topicID], nil
}

func (m *mockEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func TestFetchPrerequisites(t *testing.T) {
	repo := &mockEventRepo{
		accuracy: map[string]float64{
			"linear-functions":    0.85,
			"quadratic-equations": 0.42,
		},
		attempts: map[string]int{
			"linear-functions":    20,
			"quadratic-equations": 12,
		},
	}
	src := NewPrereqSource(repo)

	prereqs, err := src.FetchPrerequisites(context.Background(), "quadratic-functions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prereqs) != 2 {
		t.Fatalf("prereqs = %d, want 2", len(prereqs))
	}

	byID := make(map[string]int, len(prereqs))
	for _, p := range prereqs {
		byID[p.ID] = p.MasteryPercentage
	}
	if byID["linear-functions"] != 85 {
		t.Errorf("linear-functions mastery = %d, want 85", byID["linear-functions"])
	}
	if byID["quadratic-equations"] != 42 {
		t.Errorf("quadratic-equations mastery = %d, want 42", byID["quadratic-equations"])
	}
}

func TestFetchPrerequisites_NeverAttemptedIsWeak(t *testing.T) {
	src := NewPrereqSource(&mockEventRepo{})

	prereqs, err := src.FetchPrerequisites(context.Background(), "derivatives")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prereqs) == 0 {
		t.Fatal("expected at least one prerequisite")
	}
	for _, p := range prereqs {
		if p.MasteryPercentage != 0 {
			t.Errorf("%s mastery = %d, want 0", p.ID, p.MasteryPercentage)
		}
		if !p.IsWeak() {
			t.Errorf("%s should be weak at 0%% mastery", p.ID)
		}
	}
}

func TestFetchPrerequisites_UnknownTopic(t *testing.T) {
	src := NewPrereqSource(&mockEventRepo{})

	if _, err := src.FetchPrerequisites(context.Background(), "no-such-topic"); err == nil {
		t.Fatal("expected error for unknown topic")
	}
}

func TestFetchPrerequisites_StoreError(t *testing.T) {
	src := NewPrereqSource(&mockEventRepo{err: errors.New("db locked")})

	if _, err := src.FetchPrerequisites(context.Background(), "quadratic-functions"); err == nil {
		t.Fatal("expected error when the store fails")
	}
}
