package session

import (
	"time"

	"github.com/quantatutor/quanta/internal/progression"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	TopicID        string
	TopicName      string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	StartTier      progression.Tier
	EndTier        progression.Tier

	// Decision is the mastery evaluation at the tier the session ended on.
	Decision progression.GateDecision
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *State) *Summary {
	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}

	endTier := state.Drift.Tier()

	return &Summary{
		TopicID:        state.Topic.ID,
		TopicName:      state.Topic.Name,
		Duration:       state.Elapsed,
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		StartTier:      state.StartTier,
		EndTier:        endTier,
		Decision:       progression.CheckMastery(endTier, state.Records[endTier]),
	}
}
