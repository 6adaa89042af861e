// Package gate implements the skip-ahead prerequisite check: a fail-closed
// state machine that blocks a learner from jumping to a topic until weak
// prerequisites are verified through a short AI-graded diagnostic quiz.
package gate

import (
	"context"

	"github.com/quantatutor/quanta/internal/topics"
)

// State is the gate's position in its lifecycle. A gate instance lives for
// one skip-ahead attempt and is discarded when the modal closes; it is never
// persisted.
type State string

const (
	StateChecking State = "checking" // fetching prerequisites / generating questions
	StateReady    State = "ready"    // weak prerequisites found, quiz prepared
	StateQuiz     State = "quiz"     // diagnostic quiz in progress
	StatePassed   State = "passed"   // terminal: caller may proceed to the target
	StateFailed   State = "failed"   // terminal: caller must redirect to review
	StateError    State = "error"    // external failure; retry is explicit
)

// Prerequisite is one prior topic with its recorded mastery.
type Prerequisite struct {
	ID                string
	Name              string
	MasteryPercentage int
}

// IsWeak reports whether this prerequisite's mastery is below the cutoff.
func (p Prerequisite) IsWeak() bool {
	return p.MasteryPercentage < topics.WeakMasteryCutoff
}

// Question is one diagnostic question, generated per weak prerequisite.
// Immutable for the lifetime of one check session.
type Question struct {
	PrerequisiteID   string
	PrerequisiteName string
	Text             string
	CorrectAnswer    string // canonical answer, passed to the grader as context
}

// Confidence is the grader's certainty about its verdict.
type Confidence string

const (
	ConfidenceHigh      Confidence = "high"
	ConfidenceUncertain Confidence = "uncertain"
)

// Verdict is the grader's judgment of one answer.
type Verdict struct {
	IsCorrect  bool
	Confidence Confidence
}

// AnswerRecord is a graded answer retained for scoring. Only answers graded
// with high confidence are ever recorded.
type AnswerRecord struct {
	Answer    string
	IsCorrect bool
}

// PrereqSource looks up a topic's prerequisites with current mastery.
type PrereqSource interface {
	FetchPrerequisites(ctx context.Context, topicID string) ([]Prerequisite, error)
}

// DiagnosticGenerator produces quiz questions for weak prerequisites.
// Returning an empty list is treated as a failure by the gate.
type DiagnosticGenerator interface {
	GenerateDiagnostic(ctx context.Context, weak []Prerequisite, targetName string) ([]Question, error)
}

// AnswerGrader judges a free-text answer to a diagnostic question.
type AnswerGrader interface {
	GradeAnswer(ctx context.Context, q Question, answer string) (Verdict, error)
}
