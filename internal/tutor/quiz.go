package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quantatutor/quanta/internal/gate"
	"github.com/quantatutor/quanta/internal/llm"
)

// QuizConfig holds configuration for the diagnostic quiz generator.
type QuizConfig struct {
	// QuestionsPerPrerequisite is how many questions to request for each
	// weak prerequisite.
	QuestionsPerPrerequisite int

	MaxTokens   int
	Temperature float64
}

// DefaultQuizConfig returns sensible defaults.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		QuestionsPerPrerequisite: 1,
		MaxTokens:                1024,
		Temperature:              0.5,
	}
}

// QuizGenerator produces short diagnostic quizzes probing weak prerequisite
// topics. It implements gate.DiagnosticGenerator.
type QuizGenerator struct {
	provider llm.Provider
	cfg      QuizConfig
}

// NewQuizGenerator creates an LLM-backed diagnostic quiz generator.
func NewQuizGenerator(provider llm.Provider, cfg QuizConfig) *QuizGenerator {
	return &QuizGenerator{provider: provider, cfg: cfg}
}

const quizSystemPrompt = `You create short diagnostic quizzes that test whether a student has the prerequisite knowledge to start a more advanced math topic.

Rules:
- Generate exactly the requested number of questions per listed prerequisite topic, in the order the topics are listed.
- Each question must probe the core idea of its prerequisite, not trivia.
- Use plain ASCII text. No LaTeX, no Unicode symbols.
- Questions must be answerable in one line of free text.
- The correct_answer must be the canonical answer in simplest form.
- Set prerequisite_id to the exact ID from the list. Never invent IDs.`

// quizOutput is the raw LLM quiz response.
type quizOutput struct {
	Questions []struct {
		PrerequisiteID string `json:"prerequisite_id"`
		QuestionText   string `json:"question_text"`
		CorrectAnswer  string `json:"correct_answer"`
	} `json:"questions"`
}

// GenerateDiagnostic produces quiz questions covering each weak prerequisite.
// Questions citing an unknown prerequisite ID are dropped rather than failing
// the whole quiz; the gate treats an empty result as a failure.
func (g *QuizGenerator) GenerateDiagnostic(ctx context.Context, weak []gate.Prerequisite, targetName string) ([]gate.Question, error) {
	ctx = llm.WithPurpose(ctx, "gate-quiz")

	var b strings.Builder
	fmt.Fprintf(&b, "Target topic the student wants to start: %s\n", targetName)
	fmt.Fprintf(&b, "Questions per prerequisite: %d\n", g.cfg.QuestionsPerPrerequisite)
	b.WriteString("\nWeak prerequisite topics:\n")
	for _, p := range weak {
		fmt.Fprintf(&b, "- %s: %s (current mastery %d%%)\n", p.ID, p.Name, p.MasteryPercentage)
	}

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM quiz generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse quiz response: %w", err)
	}

	names := make(map[string]string, len(weak))
	for _, p := range weak {
		names[p.ID] = p.Name
	}

	var questions []gate.Question
	for _, q := range raw.Questions {
		name, ok := names[q.PrerequisiteID]
		if !ok || q.QuestionText == "" || q.CorrectAnswer == "" {
			continue
		}
		questions = append(questions, gate.Question{
			PrerequisiteID:   q.PrerequisiteID,
			PrerequisiteName: name,
			Text:             q.QuestionText,
			CorrectAnswer:    q.CorrectAnswer,
		})
	}

	return questions, nil
}
