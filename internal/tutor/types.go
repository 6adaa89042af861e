package tutor

import (
	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/topics"
)

// Exercise represents a generated math exercise ready for display.
type Exercise struct {
	// Text is the exercise prompt displayed to the learner.
	// Plain ASCII text, e.g. "Solve for x: 3x + 5 = 20".
	Text string

	// Format indicates how the learner answers this exercise.
	Format AnswerFormat

	// Answer is the canonical correct answer as a string.
	// For numeric: "5", "0.75", "3/4"
	// For multiple choice: the text of the correct option
	Answer string

	// AnswerType describes the numeric type of the answer for validation.
	AnswerType AnswerType

	// Choices is populated only when Format is FormatMultipleChoice.
	// Contains exactly 4 options, one of which matches Answer.
	Choices []string

	// Hint is an optional short hint the learner can request.
	// Empty on hard and exam tiers.
	Hint string

	// Explanation is a brief worked solution shown after the learner answers.
	// Always present.
	Explanation string

	// TopicID is the topic this exercise was generated for.
	TopicID string

	// Tier is the difficulty tier this exercise was generated for.
	Tier progression.Tier
}

// AnswerType describes the numeric representation of the correct answer.
type AnswerType string

const (
	AnswerTypeInteger  AnswerType = "integer"  // e.g. "623", "-15"
	AnswerTypeDecimal  AnswerType = "decimal"  // e.g. "3.75", "0.5"
	AnswerTypeFraction AnswerType = "fraction" // e.g. "3/4", "7/2"
	AnswerTypeText     AnswerType = "text"     // multiple choice only
)

// AnswerFormat describes how the learner provides their answer.
type AnswerFormat string

const (
	// FormatNumeric means the learner types a numeric answer.
	FormatNumeric AnswerFormat = "numeric"

	// FormatMultipleChoice means the learner picks from 4 choices.
	FormatMultipleChoice AnswerFormat = "multiple_choice"
)

// GenerateInput holds all context needed to generate an exercise.
type GenerateInput struct {
	// Topic is the target topic for the exercise.
	Topic topics.Topic

	// Tier is the difficulty tier to generate for.
	Tier progression.Tier

	// PriorQuestions contains the Text of exercises already asked in this
	// session for this topic. Used for deduplication in the prompt.
	PriorQuestions []string

	// RecentErrors contains descriptions of the learner's recent mistakes
	// on this topic (e.g. "answered 6 for 3x = 15, correct was 5").
	// Up to 5 most recent errors. Empty slice if no history.
	RecentErrors []string
}
