package tutor

import (
	"fmt"
	"strings"

	"github.com/quantatutor/quanta/internal/progression"
)

const systemPrompt = `You are a math tutor creating practice exercises for secondary school students.

Rules:
- Generate a single math exercise appropriate for the given topic and difficulty tier.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, ^ for exponents, and standard operators.
- The exercise text should be clear, self-contained, and solvable without a calculator.
- The answer must be correct and in the simplest form (reduce fractions, no trailing zeros on decimals).
- The explanation should show the solution step by step.
- Choose "numeric" format for computation problems (the student types the answer).
- Choose "multiple_choice" format for conceptual, comparison, or identification problems (the student picks from 4 options).
- For multiple choice, provide exactly 4 options where exactly one is correct. Distractors should reflect common mistakes, not random values.
- Tier meanings: "easy" is a one-step warm-up, "medium" needs two or three steps, "hard" is multi-step, "exam" mimics a written exam question.
- Include a helpful hint for the easy and medium tiers. Leave the hint empty for hard and exam tiers.
- Do not repeat any exercise from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	hintsAllowed := input.Tier == progression.TierEasy || input.Tier == progression.TierMedium

	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Topic.Description)
	fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(input.Topic.Keywords, ", "))
	fmt.Fprintf(&b, "Tier: %s\n", input.Tier)
	fmt.Fprintf(&b, "Hints allowed: %t\n", hintsAllowed)

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildList(input.PriorQuestions, cfg.MaxPriorQuestions))

	b.WriteString("\nRecent errors by this student:\n")
	b.WriteString(buildList(input.RecentErrors, cfg.MaxRecentErrors))

	return b.String()
}

// buildList formats a numbered list for the prompt, keeping only the most
// recent max entries. Returns "None" for an empty list.
func buildList(items []string, max int) string {
	if len(items) == 0 {
		return "None"
	}

	if max > 0 && len(items) > max {
		items = items[len(items)-max:]
	}

	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it)
	}
	return strings.TrimRight(b.String(), "\n")
}
