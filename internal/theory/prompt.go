package theory

import (
	"fmt"
	"strings"
)

const theorySystemPrompt = `You are a patient, encouraging math tutor for secondary school students. A student needs a short theory refresher before or during practice on a topic.`

func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Topic.Description)
	fmt.Fprintf(&b, "Current difficulty tier: %s\n", input.Tier)
	fmt.Fprintf(&b, "Student accuracy on this topic: %.0f%%\n", input.Accuracy*100)

	b.WriteString("\nRecent Errors:\n")
	if len(input.RecentErrors) == 0 {
		b.WriteString("None\n")
	} else {
		for _, e := range input.RecentErrors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	b.WriteString(`
Instructions:
Create a theory refresher that:
1. Explains the core concept clearly in 4-6 sentences. Address the specific errors shown above when there are any.
2. Shows one complete worked example with numbered steps, pitched at the current difficulty tier. Show every step.
3. Lists 2-4 key points worth remembering, each one sentence.
4. Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, ^ for exponents.`)

	return b.String()
}
