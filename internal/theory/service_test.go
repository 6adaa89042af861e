package theory

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/quantatutor/quanta/internal/llm"
	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/topics"
)

func panelJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Solving Linear Equations",
		"explanation": "A linear equation has one unknown. Undo operations in reverse order to isolate it.",
		"worked_example": "1. 3x + 5 = 20\n2. 3x = 15\n3. x = 5",
		"key_points": ["Do the same thing to both sides", "Undo addition before multiplication"]
	}`)
}

func theoryInput() Input {
	return Input{
		Topic: topics.Topic{
			ID:          "linear-equations",
			Name:        "Linear Equations",
			Description: "Solving one-variable linear equations",
		},
		Tier:         progression.TierMedium,
		RecentErrors: []string{"answered 6 for 3x = 15, correct was 5"},
		Accuracy:     0.6,
	}
}

func waitForPanel(t *testing.T, s *Service) *Panel {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if panel, ok := s.Consume(); ok {
			return panel
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("panel generation did not complete in time")
	return nil
}

func TestService_RequestAndConsume(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: panelJSON()})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), theoryInput())
	panel := waitForPanel(t, s)

	if panel.TopicID != "linear-equations" {
		t.Errorf("topic ID = %q", panel.TopicID)
	}
	if panel.Title != "Solving Linear Equations" {
		t.Errorf("title = %q", panel.Title)
	}
	if len(panel.KeyPoints) != 2 {
		t.Errorf("key points = %d, want 2", len(panel.KeyPoints))
	}
	if panel.GeneratedAt.IsZero() {
		t.Error("expected non-zero GeneratedAt")
	}
}

func TestService_ConsumeClearsPending(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: panelJSON()})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), theoryInput())
	waitForPanel(t, s)

	if _, ok := s.Consume(); ok {
		t.Error("second consume should report nothing ready")
	}
}

func TestService_ConsumeBeforeReady(t *testing.T) {
	s := NewService(llm.NewMockProvider(), DefaultConfig())

	if _, ok := s.Consume(); ok {
		t.Error("consume with no request should report nothing ready")
	}
}

func TestService_GenerationFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), theoryInput())

	// Wait for the in-flight generation to settle, then confirm failure
	// surfaces as "nothing ready" rather than a panel.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		ready := s.ready
		s.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if panel, ok := s.Consume(); ok || panel != nil {
		t.Error("failed generation should not produce a panel")
	}
}

func TestService_PromptIncludesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: panelJSON()})
	s := NewService(mock, DefaultConfig())

	s.Request(context.Background(), theoryInput())
	waitForPanel(t, s)

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Linear Equations",
		"tier: medium",
		"accuracy on this topic: 60%",
		"answered 6 for 3x = 15",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
