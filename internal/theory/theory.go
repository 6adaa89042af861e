// Package theory generates short theory refreshers for a topic: a concept
// explanation with a worked example, shown when the learner is struggling or
// asks for a recap before practice.
package theory

import (
	"time"

	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/topics"
)

// Panel is an LLM-generated theory refresher for a specific topic.
type Panel struct {
	TopicID       string
	Title         string
	Explanation   string
	WorkedExample string
	KeyPoints     []string
	GeneratedAt   time.Time
}

// Input holds all context needed to generate a theory panel.
type Input struct {
	Topic topics.Topic
	Tier  progression.Tier

	// RecentErrors contains descriptions of the learner's recent mistakes
	// on this topic, so the refresher can target the shaky parts.
	RecentErrors []string

	// Accuracy is the learner's historical accuracy on this topic (0.0-1.0).
	Accuracy float64
}

// Config holds theory generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for theory generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.5,
	}
}
