package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/quantatutor/quanta/internal/llm"
	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/topics"
)

func testTopic() topics.Topic {
	return topics.Topic{
		ID:          "linear-equations",
		Name:        "Linear Equations",
		Description: "Solving one-variable linear equations",
		Keywords:    []string{"solve", "equation", "variable"},
	}
}

func validExerciseJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "Solve for x: 3x + 5 = 20",
		"format": "numeric",
		"answer": "5",
		"answer_type": "integer",
		"choices": [],
		"hint": "Subtract 5 from both sides first.",
		"explanation": "3x + 5 = 20, so 3x = 15, so x = 5."
	}`)
}

func TestGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExerciseJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	ex, err := gen.Generate(context.Background(), GenerateInput{
		Topic: testTopic(),
		Tier:  progression.TierEasy,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ex.Text != "Solve for x: 3x + 5 = 20" {
		t.Errorf("text = %q", ex.Text)
	}
	if ex.Answer != "5" {
		t.Errorf("answer = %q, want 5", ex.Answer)
	}
	if ex.TopicID != "linear-equations" {
		t.Errorf("topic ID = %q", ex.TopicID)
	}
	if ex.Tier != progression.TierEasy {
		t.Errorf("tier = %v, want easy", ex.Tier)
	}
}

func TestGenerate_PromptIncludesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExerciseJSON()})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic:          testTopic(),
		Tier:           progression.TierHard,
		PriorQuestions: []string{"Solve for x: 2x = 10"},
		RecentErrors:   []string{"answered 6 for 3x = 15, correct was 5"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Linear Equations",
		"Tier: hard",
		"Hints allowed: false",
		"Solve for x: 2x = 10",
		"answered 6 for 3x = 15",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerate_PromptTruncatesPriorQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExerciseJSON()})
	cfg := DefaultConfig()
	cfg.MaxPriorQuestions = 2
	gen := NewGenerator(mock, cfg)

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic:          testTopic(),
		Tier:           progression.TierEasy,
		PriorQuestions: []string{"first", "second", "third"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if strings.Contains(msg, "first") {
		t.Error("oldest prior question should be dropped")
	}
	if !strings.Contains(msg, "second") || !strings.Contains(msg, "third") {
		t.Error("most recent prior questions should be kept")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic: testTopic(),
		Tier:  progression.TierEasy,
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerate_ValidationFailure(t *testing.T) {
	// The text computes to 623 but the claimed answer is 624.
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"question_text": "What is 345 + 278?",
		"format": "numeric",
		"answer": "624",
		"answer_type": "integer",
		"choices": [],
		"hint": "",
		"explanation": "Add the numbers column by column."
	}`)})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic: testTopic(),
		Tier:  progression.TierEasy,
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T, want ValidationError", err)
	}
	if verr.Validator != "math-check" {
		t.Errorf("validator = %q, want math-check", verr.Validator)
	}
	if !verr.Retryable {
		t.Error("math-check failures should be retryable")
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic: testTopic(),
		Tier:  progression.TierEasy,
	})
	if err == nil {
		t.Fatal("expected error for malformed response")
	}
}
