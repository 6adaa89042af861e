package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/quantatutor/quanta/internal/llm"
	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/topics"
	"github.com/quantatutor/quanta/internal/tutor"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated exercises for a topic (no database)",
	Long: `Generate and interactively answer exercises for a specific topic and tier.

This is a stateless developer tool — no database, no progression tracking, no events.
Useful for evaluating exercise quality and testing new topics.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Topic ID or name fragment (required)")
	previewCmd.Flags().String("tier", "easy", "Difficulty tier: easy, medium, hard, or exam")
	previewCmd.Flags().Int("count", 5, "Number of exercises to generate")
	_ = previewCmd.MarkFlagRequired("topic")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topicVal, _ := cmd.Flags().GetString("topic")
	tierVal, _ := cmd.Flags().GetString("tier")
	count, _ := cmd.Flags().GetInt("count")

	topic, err := resolveTopic(topicVal)
	if err != nil {
		return err
	}

	tierName := strings.ToLower(tierVal)
	tier := progression.TierFromString(tierName)
	if tier.String() != tierName {
		return fmt.Errorf("invalid tier %q: must be easy, medium, hard, or exam", tierVal)
	}

	// Create LLM provider (no EventRepo, so request logging is skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := tutor.NewGenerator(provider, tutor.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Topic: %s — %s (%s, %s)\n",
		topic.ID, topic.Name, topics.StrandDisplayName(topic.Strand), tier.Label())
	fmt.Printf("Generating %d exercises...\n\n", count)

	var correct int
	var priorQuestions []string

	for i := 1; i <= count; i++ {
		input := tutor.GenerateInput{
			Topic:          topic,
			Tier:           tier,
			PriorQuestions: priorQuestions,
		}

		ex, err := gen.Generate(ctx, input)
		if err != nil {
			fmt.Printf("Exercise %d: generation failed: %v\n\n", i, err)
			continue
		}

		priorQuestions = append(priorQuestions, ex.Text)

		fmt.Printf("── Exercise %d/%d ──\n", i, count)
		fmt.Println(ex.Text)
		if ex.Format == tutor.FormatMultipleChoice && len(ex.Choices) > 0 {
			for j, c := range ex.Choices {
				fmt.Printf("  %d) %s\n", j+1, c)
			}
		}
		if ex.Hint != "" {
			fmt.Printf("  (hint: %s)\n", ex.Hint)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		if tutor.CheckAnswer(answer, ex) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", ex.Answer)
		}

		if ex.Explanation != "" {
			fmt.Printf("Explanation: %s\n", ex.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}

// resolveTopic finds a topic by ID first, then by name fragment fallback.
func resolveTopic(val string) (topics.Topic, error) {
	if t, err := topics.Get(val); err == nil {
		return t, nil
	}

	frag := strings.ToLower(val)
	var matches []topics.Topic
	for _, t := range topics.All() {
		if strings.Contains(strings.ToLower(t.Name), frag) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return topics.Topic{}, fmt.Errorf("no topic found for %q", val)
	case 1:
		return matches[0], nil
	default:
		var ids []string
		for _, t := range matches {
			ids = append(ids, t.ID)
		}
		return topics.Topic{}, fmt.Errorf("multiple topics match %q: %s — use --topic with a specific ID",
			val, strings.Join(ids, ", "))
	}
}
