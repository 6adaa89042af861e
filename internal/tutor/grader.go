package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quantatutor/quanta/internal/gate"
	"github.com/quantatutor/quanta/internal/llm"
)

// GraderConfig holds configuration for the LLM grader.
type GraderConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultGraderConfig returns sensible defaults. Grading wants low
// temperature: the task is judgment, not creativity.
func DefaultGraderConfig() GraderConfig {
	return GraderConfig{
		MaxTokens:   128,
		Temperature: 0.1,
	}
}

// Grader judges free-text answers to diagnostic questions using the LLM.
// It implements gate.AnswerGrader.
type Grader struct {
	provider llm.Provider
	cfg      GraderConfig
}

// NewGrader creates an LLM-backed answer grader.
func NewGrader(provider llm.Provider, cfg GraderConfig) *Grader {
	return &Grader{provider: provider, cfg: cfg}
}

const gradingSystemPrompt = `You judge whether a student's free-text answer to a math question is correct.

Instructions:
- Accept mathematically equivalent forms: "0.5" matches "1/2", "x = 5" matches "5", case and spacing never matter.
- Mark "high" confidence only when the judgment is unambiguous.
- If the answer is blank, off-topic, or you cannot tell whether it is equivalent, mark "uncertain".
- Never guess. An uncertain verdict is always safer than a wrong one.`

// verdictOutput is the raw LLM grading response.
type verdictOutput struct {
	IsCorrect  bool   `json:"is_correct"`
	Confidence string `json:"confidence"`
}

// GradeAnswer asks the LLM to judge one answer. A verdict whose confidence
// is anything other than "high" comes back as uncertain, including responses
// where the field is missing entirely.
func (g *Grader) GradeAnswer(ctx context.Context, q gate.Question, answer string) (gate.Verdict, error) {
	ctx = llm.WithPurpose(ctx, "grading")

	userMsg := fmt.Sprintf(
		"Question: %s\nCorrect answer: %s\nStudent's answer: %s",
		q.Text, q.CorrectAnswer, answer,
	)

	req := llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      VerdictSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return gate.Verdict{}, fmt.Errorf("LLM grading failed: %w", err)
	}

	var raw verdictOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return gate.Verdict{}, fmt.Errorf("failed to parse grading response: %w", err)
	}

	confidence := gate.ConfidenceUncertain
	if raw.Confidence == string(gate.ConfidenceHigh) {
		confidence = gate.ConfidenceHigh
	}

	return gate.Verdict{
		IsCorrect:  raw.IsCorrect,
		Confidence: confidence,
	}, nil
}
