package gate

import (
	"context"
	"fmt"
	"sort"
)

// PassThreshold is the fraction of questions that must be answered correctly
// with high confidence for the quiz to pass.
const PassThreshold = 0.70

// Gate is one skip-ahead check for one (learner, target topic) pair.
//
// The defining contract is fail closed: no external failure, timeout, or
// uncertain grading verdict ever lands in StatePassed. Failures funnel to
// StateError, weak performance to StateFailed, and both require an explicit
// learner action to leave.
//
// A Gate issues at most one outstanding collaborator call at a time and is
// not safe for concurrent use; the caller must not resubmit while a call is
// in flight.
type Gate struct {
	source    PrereqSource
	generator DiagnosticGenerator
	grader    AnswerGrader

	targetID   string
	targetName string

	state     State
	prereqs   []Prerequisite
	weak      []Prerequisite
	questions []Question
	index     int
	answers   []AnswerRecord
	errMsg    string
}

// New creates a gate for the given target topic. The gate starts in
// StateChecking; call Check to run the prerequisite lookup.
func New(source PrereqSource, generator DiagnosticGenerator, grader AnswerGrader, targetID, targetName string) *Gate {
	return &Gate{
		source:     source,
		generator:  generator,
		grader:     grader,
		targetID:   targetID,
		targetName: targetName,
		state:      StateChecking,
	}
}

// State returns the gate's current state.
func (g *Gate) State() State { return g.state }

// TargetName returns the display name of the topic being gated.
func (g *Gate) TargetName() string { return g.targetName }

// ErrorMessage returns the human-readable message for StateError.
func (g *Gate) ErrorMessage() string { return g.errMsg }

// WeakPrerequisites returns the prerequisites that triggered the quiz.
func (g *Gate) WeakPrerequisites() []Prerequisite { return g.weak }

// CurrentQuestion returns the active quiz question, or nil outside the quiz.
func (g *Gate) CurrentQuestion() *Question {
	if g.state != StateQuiz && g.state != StateReady {
		return nil
	}
	if g.index < 0 || g.index >= len(g.questions) {
		return nil
	}
	return &g.questions[g.index]
}

// QuestionIndex returns the zero-based index of the active question.
func (g *Gate) QuestionIndex() int { return g.index }

// QuestionCount returns the number of questions in the diagnostic.
func (g *Gate) QuestionCount() int { return len(g.questions) }

// Score returns correct answers recorded so far and the question total.
func (g *Gate) Score() (correct, total int) {
	for _, a := range g.answers {
		if a.IsCorrect {
			correct++
		}
	}
	return correct, len(g.questions)
}

// WeakestPrerequisite returns the prerequisite with the lowest mastery, for
// redirecting the learner after a failed quiz. Nil if none were fetched.
func (g *Gate) WeakestPrerequisite() *Prerequisite {
	if len(g.prereqs) == 0 {
		return nil
	}
	sorted := make([]Prerequisite, len(g.prereqs))
	copy(sorted, g.prereqs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MasteryPercentage < sorted[j].MasteryPercentage
	})
	return &sorted[0]
}

// Check runs the prerequisite lookup and, when weak prerequisites are found,
// diagnostic question generation. Valid only from StateChecking.
//
// Transitions: checking→passed (no prerequisites, or none weak),
// checking→ready (quiz prepared), checking→error (lookup or generation
// failure, or zero questions generated).
func (g *Gate) Check(ctx context.Context) State {
	if g.state != StateChecking {
		return g.state
	}

	prereqs, err := g.source.FetchPrerequisites(ctx, g.targetID)
	if err != nil {
		return g.fail(&LookupError{TopicID: g.targetID, Err: err})
	}
	g.prereqs = prereqs

	g.weak = nil
	for _, p := range prereqs {
		if p.IsWeak() {
			g.weak = append(g.weak, p)
		}
	}

	if len(g.weak) == 0 {
		g.state = StatePassed
		return g.state
	}

	questions, err := g.generator.GenerateDiagnostic(ctx, g.weak, g.targetName)
	if err != nil {
		return g.fail(&GenerationError{Err: err})
	}
	if len(questions) == 0 {
		return g.fail(&GenerationError{})
	}

	g.questions = questions
	g.index = 0
	g.answers = nil
	g.state = StateReady
	return g.state
}

// Start begins the diagnostic quiz. Valid only from StateReady; the quiz is
// never started automatically.
func (g *Gate) Start() error {
	if g.state != StateReady {
		return fmt.Errorf("cannot start quiz from state %q", g.state)
	}
	g.state = StateQuiz
	return nil
}

// SubmitAnswer grades the learner's answer to the current question.
//
// A verdict the grader is not sure of is a hard stop: the answer is neither
// scored as correct nor silently counted wrong. The gate moves to
// StateError so the learner can retry or rephrase. Any confidence value
// other than high, including an absent one, counts as uncertain.
func (g *Gate) SubmitAnswer(ctx context.Context, answer string) State {
	if g.state != StateQuiz {
		return g.state
	}
	q := g.CurrentQuestion()
	if q == nil {
		return g.fail(&GradingError{Err: fmt.Errorf("no active question at index %d", g.index)})
	}

	verdict, err := g.grader.GradeAnswer(ctx, *q, answer)
	if err != nil {
		return g.fail(&GradingError{Err: err})
	}
	if verdict.Confidence != ConfidenceHigh {
		return g.fail(&GradingError{Err: fmt.Errorf("grader was not confident in its verdict")})
	}

	g.answers = append(g.answers, AnswerRecord{Answer: answer, IsCorrect: verdict.IsCorrect})

	if g.index < len(g.questions)-1 {
		g.index++
		return g.state
	}

	// Final question: score the quiz.
	correct, total := g.Score()
	if float64(correct)/float64(total) >= PassThreshold {
		g.state = StatePassed
	} else {
		g.state = StateFailed
	}
	return g.state
}

// Retry re-enters the checking phase after an error or a failed quiz.
// Prerequisites are refetched and questions regenerated from scratch; valid
// only from StateError or StateFailed, and only via this explicit action.
func (g *Gate) Retry(ctx context.Context) State {
	if g.state != StateError && g.state != StateFailed {
		return g.state
	}
	g.state = StateChecking
	g.errMsg = ""
	g.prereqs = nil
	g.weak = nil
	g.questions = nil
	g.index = 0
	g.answers = nil
	return g.Check(ctx)
}

// fail moves the gate to StateError with a human-readable message. The
// in-progress question index and recorded answers are left untouched so a
// retry after a grading error can be reasoned about, but no recording or
// advancing happens on the failure itself.
func (g *Gate) fail(err error) State {
	g.state = StateError
	g.errMsg = err.Error()
	return g.state
}
