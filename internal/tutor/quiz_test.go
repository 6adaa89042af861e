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

func weakPrereqs() []gate.Prerequisite {
	return []gate.Prerequisite{
		{ID: "linear-equations", Name: "Linear Equations", MasteryPercentage: 40},
		{ID: "polynomials-factoring", Name: "Polynomials and Factoring", MasteryPercentage: 55},
	}
}

func TestGenerateDiagnostic_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions":[
			{"prerequisite_id":"linear-equations","question_text":"Solve for x: 2x + 3 = 11","correct_answer":"4"},
			{"prerequisite_id":"polynomials-factoring","question_text":"Factor: x^2 - 4","correct_answer":"(x-2)(x+2)"}
		]}`),
	})
	g := NewQuizGenerator(mock, DefaultQuizConfig())

	qs, err := g.GenerateDiagnostic(context.Background(), weakPrereqs(), "Quadratic Equations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("questions = %d, want 2", len(qs))
	}
	if qs[0].PrerequisiteID != "linear-equations" {
		t.Errorf("first prerequisite = %q", qs[0].PrerequisiteID)
	}
	if qs[0].PrerequisiteName != "Linear Equations" {
		t.Errorf("prerequisite name = %q, want resolved display name", qs[0].PrerequisiteName)
	}
	if qs[1].CorrectAnswer != "(x-2)(x+2)" {
		t.Errorf("second answer = %q", qs[1].CorrectAnswer)
	}
}

func TestGenerateDiagnostic_PromptListsPrerequisites(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions":[]}`),
	})
	g := NewQuizGenerator(mock, DefaultQuizConfig())

	_, err := g.GenerateDiagnostic(context.Background(), weakPrereqs(), "Quadratic Equations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Quadratic Equations",
		"linear-equations: Linear Equations (current mastery 40%)",
		"polynomials-factoring: Polynomials and Factoring (current mastery 55%)",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateDiagnostic_DropsUnknownPrerequisiteIDs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions":[
			{"prerequisite_id":"made-up-topic","question_text":"?","correct_answer":"?"},
			{"prerequisite_id":"linear-equations","question_text":"Solve for x: x + 1 = 2","correct_answer":"1"}
		]}`),
	})
	g := NewQuizGenerator(mock, DefaultQuizConfig())

	qs, err := g.GenerateDiagnostic(context.Background(), weakPrereqs(), "Quadratic Equations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("questions = %d, want 1 (invented ID dropped)", len(qs))
	}
	if qs[0].PrerequisiteID != "linear-equations" {
		t.Errorf("kept question = %q", qs[0].PrerequisiteID)
	}
}

func TestGenerateDiagnostic_DropsIncompleteQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions":[
			{"prerequisite_id":"linear-equations","question_text":"","correct_answer":"4"},
			{"prerequisite_id":"linear-equations","question_text":"Solve for x: 2x = 8","correct_answer":""}
		]}`),
	})
	g := NewQuizGenerator(mock, DefaultQuizConfig())

	qs, err := g.GenerateDiagnostic(context.Background(), weakPrereqs(), "Quadratic Equations")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 0 {
		t.Errorf("questions = %d, want 0", len(qs))
	}
}

func TestGenerateDiagnostic_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{Err: errors.New("429")},
	})
	g := NewQuizGenerator(mock, DefaultQuizConfig())

	if _, err := g.GenerateDiagnostic(context.Background(), weakPrereqs(), "Quadratic Equations"); err == nil {
		t.Fatal("expected error")
	}
}
