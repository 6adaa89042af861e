package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/quantatutor/quanta/internal/gate"
	"github.com/quantatutor/quanta/internal/llm"
)

func diagnosticQuestion() gate.Question {
	return gate.Question{
		PrerequisiteID:   "polynomials-factoring",
		PrerequisiteName: "Polynomials and Factoring",
		Text:             "Factor: x^2 - 9",
		CorrectAnswer:    "(x-3)(x+3)",
	}
}

func TestGradeAnswer_HighConfidenceCorrect(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":true,"confidence":"high"}`),
	})
	g := NewGrader(mock, DefaultGraderConfig())

	v, err := g.GradeAnswer(context.Background(), diagnosticQuestion(), "(x+3)(x-3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsCorrect {
		t.Error("expected correct verdict")
	}
	if v.Confidence != gate.ConfidenceHigh {
		t.Errorf("confidence = %q, want high", v.Confidence)
	}
}

func TestGradeAnswer_PromptIncludesQuestionContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":false,"confidence":"high"}`),
	})
	g := NewGrader(mock, DefaultGraderConfig())

	_, err := g.GradeAnswer(context.Background(), diagnosticQuestion(), "x - 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Factor: x^2 - 9", "(x-3)(x+3)", "x - 3"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGradeAnswer_UncertainConfidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":true,"confidence":"uncertain"}`),
	})
	g := NewGrader(mock, DefaultGraderConfig())

	v, err := g.GradeAnswer(context.Background(), diagnosticQuestion(), "something")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Confidence != gate.ConfidenceUncertain {
		t.Errorf("confidence = %q, want uncertain", v.Confidence)
	}
}

func TestGradeAnswer_MissingConfidenceTreatedAsUncertain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":true}`),
	})
	g := NewGrader(mock, DefaultGraderConfig())

	v, err := g.GradeAnswer(context.Background(), diagnosticQuestion(), "(x-3)(x+3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Confidence != gate.ConfidenceUncertain {
		t.Errorf("confidence = %q, want uncertain for missing field", v.Confidence)
	}
}

func TestGradeAnswer_UnknownConfidenceTreatedAsUncertain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":true,"confidence":"medium"}`),
	})
	g := NewGrader(mock, DefaultGraderConfig())

	v, err := g.GradeAnswer(context.Background(), diagnosticQuestion(), "(x-3)(x+3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Confidence != gate.ConfidenceUncertain {
		t.Errorf("confidence = %q, want uncertain for unknown value", v.Confidence)
	}
}

func TestGradeAnswer_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	g := NewGrader(mock, DefaultGraderConfig())

	if _, err := g.GradeAnswer(context.Background(), diagnosticQuestion(), "x"); err == nil {
		t.Fatal("expected error")
	}
}

func TestGradeAnswer_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	g := NewGrader(mock, DefaultGraderConfig())

	if _, err := g.GradeAnswer(context.Background(), diagnosticQuestion(), "x"); err == nil {
		t.Fatal("expected error for malformed response")
	}
}
