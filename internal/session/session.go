package session

import (
	"context"
	"fmt"
	"time"

	"github.com/quantatutor/quanta/internal/drift"
	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/theory"
	"github.com/quantatutor/quanta/internal/tutor"
)

// MaxRecentErrors is the maximum number of recent errors tracked per session.
const MaxRecentErrors = 5

// theoryTriggerWrongCount is the per-session wrong count that triggers an
// automatic theory refresher request.
const theoryTriggerWrongCount = 2

// Outcome is what one answer did to the session, for feedback display.
type Outcome struct {
	Correct bool

	// Move reports whether the difficulty tier drifted and which way.
	Move drift.Move

	// Decision is the mastery evaluation at the tier the exercise was
	// served at, after recording the answer.
	Decision progression.GateDecision
}

// HandleAnswer processes a learner's answer: checks it, updates the per-tier
// performance record, re-evaluates mastery, and feeds the drift controller.
func HandleAnswer(state *State, learnerAnswer string) *Outcome {
	ex := state.CurrentExercise
	if ex == nil {
		return nil
	}

	correct := tutor.CheckAnswer(learnerAnswer, ex)
	state.LastAnswerCorrect = correct
	state.TotalQuestions++
	if correct {
		state.TotalCorrect++
	}

	// Track prior exercises for dedup.
	state.PriorQuestions = append(state.PriorQuestions, ex.Text)

	if !correct {
		state.WrongCount++

		errCtx := BuildErrorContext(ex, learnerAnswer)
		state.ErrorMu.Lock()
		state.RecentErrors = append(state.RecentErrors, errCtx)
		if len(state.RecentErrors) > MaxRecentErrors {
			state.RecentErrors = state.RecentErrors[len(state.RecentErrors)-MaxRecentErrors:]
		}
		recentCopy := make([]string, len(state.RecentErrors))
		copy(recentCopy, state.RecentErrors)
		state.ErrorMu.Unlock()

		// Mark hint available (if the exercise has one and it wasn't shown).
		if ex.Hint != "" && !state.HintShown {
			state.HintAvailable = true
		}

		// Request a theory refresher after repeated misses.
		if state.WrongCount >= theoryTriggerWrongCount && state.TheoryService != nil && !state.PendingTheory {
			state.PendingTheory = true
			var accuracy float64
			if state.EventRepo != nil {
				accuracy, _, _ = state.EventRepo.TopicAccuracy(context.Background(), state.Topic.ID)
			}
			state.TheoryService.Request(context.Background(), theory.Input{
				Topic:        state.Topic,
				Tier:         state.Drift.Tier(),
				RecentErrors: recentCopy,
				Accuracy:     accuracy,
			})
		}
	}

	// Record the attempt at the tier the exercise was served at, then
	// re-evaluate mastery there before the drift controller moves on.
	tier := ex.Tier
	rec := progression.RecordAttempt(state.Records[tier], correct)
	state.Records[tier] = rec
	decision := progression.CheckMastery(tier, rec)

	move := state.Drift.OnAnswer(correct)

	state.LastMove = move
	state.LastDecision = decision

	if state.EventRepo != nil {
		data := store.AnswerEventData{
			SessionID:     state.SessionID,
			TopicID:       state.Topic.ID,
			Tier:          tier.String(),
			QuestionText:  ex.Text,
			CorrectAnswer: ex.Answer,
			LearnerAnswer: learnerAnswer,
			Correct:       correct,
			TimeMs:        int(time.Since(state.QuestionStartTime).Milliseconds()),
		}
		// Persistence failures never interrupt the session.
		_ = state.EventRepo.AppendAnswerEvent(context.Background(), data)
	}

	return &Outcome{
		Correct:  correct,
		Move:     move,
		Decision: decision,
	}
}

// BuildErrorContext constructs an error description string for LLM context.
func BuildErrorContext(ex *tutor.Exercise, learnerAnswer string) string {
	return fmt.Sprintf(
		"Answered %s for '%s', correct answer was %s",
		learnerAnswer,
		ex.Text,
		ex.Answer,
	)
}
