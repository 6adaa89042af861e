package session

import (
	"sync"
	"time"

	"github.com/quantatutor/quanta/internal/drift"
	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/theory"
	"github.com/quantatutor/quanta/internal/topics"
	"github.com/quantatutor/quanta/internal/tutor"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseLoading  Phase = iota // Loading state from snapshot
	PhaseActive                // Serving exercises
	PhaseFeedback              // Showing answer feedback
	PhaseEnding                // Session time expired or quit confirmed
	PhaseSummary               // Showing summary screen
)

// State tracks the runtime state of an active practice session.
// One session practices one topic.
type State struct {
	// Topic is the topic being practiced.
	Topic topics.Topic

	// SessionID is the UUID for this session.
	SessionID string

	// Drift retunes the active difficulty tier as answers come in.
	Drift *drift.Controller

	// Records holds the per-tier performance record for this topic,
	// loaded from the latest snapshot and updated live.
	Records map[progression.Tier]progression.PerformanceRecord

	// CurrentExercise is the active exercise being displayed (nil between exercises).
	CurrentExercise *tutor.Exercise

	// TotalQuestions is the count of exercises served so far.
	TotalQuestions int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// StartTier is the tier the session opened at, for the end event.
	StartTier progression.Tier

	// StartTime is when the session began.
	StartTime time.Time

	// Elapsed tracks total elapsed time.
	Elapsed time.Duration

	// Phase is the current session phase.
	Phase Phase

	// PriorQuestions tracks exercises asked this session (for dedup).
	PriorQuestions []string

	// RecentErrors tracks recent errors (for LLM context).
	RecentErrors []string

	// WrongCount is the number of wrong answers this session.
	WrongCount int

	// ShowingFeedback is true when the feedback overlay is displayed.
	ShowingFeedback bool

	// ShowingQuitConfirm is true when the quit confirmation dialog is displayed.
	ShowingQuitConfirm bool

	// LastAnswerCorrect records whether the most recent answer was correct.
	LastAnswerCorrect bool

	// LastMove is the drift outcome of the most recent answer.
	LastMove drift.Move

	// LastDecision is the mastery evaluation after the most recent answer,
	// at the tier the answer was served at.
	LastDecision progression.GateDecision

	// QuestionStartTime tracks when the current exercise was first displayed.
	QuestionStartTime time.Time

	// TimeExpired indicates the session timer has run out.
	TimeExpired bool

	// HintShown is true if the hint was shown for the current exercise.
	HintShown bool

	// HintAvailable is true if a hint can be shown (wrong answer + hint exists).
	HintAvailable bool

	// TheoryService generates theory refreshers (nil if disabled).
	TheoryService *theory.Service

	// PendingTheory is true when a refresher has been requested but not consumed.
	PendingTheory bool

	// EventRepo persists answer events (nil in tests).
	EventRepo store.EventRepo

	// ErrorMu protects RecentErrors during async callbacks.
	ErrorMu sync.Mutex
}

// NewState creates a session state for one topic, starting at the given tier
// with previously recorded per-tier performance.
func NewState(topic topics.Topic, sessionID string, startTier progression.Tier, records map[progression.Tier]progression.PerformanceRecord) *State {
	if records == nil {
		records = make(map[progression.Tier]progression.PerformanceRecord)
	}

	return &State{
		Topic:     topic,
		SessionID: sessionID,
		Drift:     drift.NewController(startTier),
		Records:   records,
		StartTier: startTier,
		StartTime: time.Now(),
		Phase:     PhaseActive,
	}
}
