package practice

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quantatutor/quanta/internal/router"
	"github.com/quantatutor/quanta/internal/screen"
	sess "github.com/quantatutor/quanta/internal/session"
	"github.com/quantatutor/quanta/internal/screens/summary"
	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/theory"
	"github.com/quantatutor/quanta/internal/topics"
	"github.com/quantatutor/quanta/internal/tutor"
	"github.com/quantatutor/quanta/internal/ui/components"
	"github.com/quantatutor/quanta/internal/ui/layout"

	"github.com/google/uuid"
)

// sessionDuration caps one practice session. The timer lets the learner
// finish the exercise in front of them before ending.
const sessionDuration = 10 * time.Minute

// snapshotsKept is how many snapshots survive the post-session prune.
const snapshotsKept = 10

// Deps are the collaborators a practice session needs. Generator may be nil
// when no LLM provider is configured; the screen then shows an error.
type Deps struct {
	Generator tutor.Generator
	Theory    *theory.Service
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
}

// PracticeScreen runs one practice session on one topic.
type PracticeScreen struct {
	deps  Deps
	topic topics.Topic

	state      *sess.State
	input      components.TextInput
	mc         *components.MultiChoice
	generating bool
	panel      *theory.Panel
	errMsg     string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.HeaderStatusProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the given topic.
func New(deps Deps, topic topics.Topic) *PracticeScreen {
	return &PracticeScreen{
		deps:  deps,
		topic: topic,
		input: components.NewTextInput("Type your answer...", true, 20),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	if s.deps.Generator == nil {
		s.errMsg = "No LLM provider configured. Set QUANTA_ANTHROPIC_API_KEY (or OpenAI/Gemini equivalents) and restart."
		return nil
	}
	return tea.Batch(
		s.initSession(),
		s.input.Init(),
	)
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

// HeaderStatus shows the topic and the tier exercises are currently drawn from.
func (s *PracticeScreen) HeaderStatus() string {
	if s.state == nil {
		return s.topic.Name
	}
	return s.topic.Name + " · " + s.state.Drift.Tier().String()
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.state == nil {
		return nil
	}
	if s.state.ShowingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state.ShowingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
	}
	if s.state.HintAvailable && !s.state.HintShown {
		hints = append(hints, layout.KeyHint{Key: "H", Description: "Hint"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "End"})
	return hints
}

func (s *PracticeScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width, height, "Preparing session...")
	}
	if s.state.ShowingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.state.ShowingFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderExerciseView(width, height)
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case exerciseReadyMsg:
		return s.handleExerciseReady(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.textInputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *PracticeScreen) textInputActive() bool {
	return s.state != nil &&
		s.state.Phase == sess.PhaseActive &&
		s.state.CurrentExercise != nil &&
		!s.state.ShowingFeedback &&
		!s.state.ShowingQuitConfirm &&
		s.mc == nil
}

// initSession loads progression state from the latest snapshot and records
// the session start event.
func (s *PracticeScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var snap *store.Snapshot
		if s.deps.Snapshots != nil {
			var err error
			snap, err = s.deps.Snapshots.Latest(ctx)
			if err != nil {
				return sessionInitMsg{Err: err}
			}
		}

		startTier, records := sess.LoadTopicProgress(snap, s.topic.ID)
		state := sess.NewState(s.topic, uuid.New().String(), startTier, records)
		state.TheoryService = s.deps.Theory
		state.EventRepo = s.deps.Events

		if s.deps.Events != nil {
			_ = s.deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID: state.SessionID,
				Action:    "start",
				TopicID:   s.topic.ID,
				StartTier: startTier.String(),
			})
		}

		return sessionInitMsg{State: state}
	}
}

func (s *PracticeScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	return s, tea.Batch(
		s.generateNext(),
		tickCmd(),
	)
}

func (s *PracticeScreen) handleExerciseReady(msg exerciseReadyMsg) (screen.Screen, tea.Cmd) {
	s.generating = false

	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.state.CurrentExercise = msg.Exercise
	s.state.QuestionStartTime = time.Now()
	s.state.HintShown = false
	s.state.HintAvailable = false

	if msg.Exercise.Format == tutor.FormatMultipleChoice {
		correct := 0
		for i, c := range msg.Exercise.Choices {
			if c == msg.Exercise.Answer {
				correct = i
				break
			}
		}
		mc := components.NewMultiChoice("", msg.Exercise.Choices, correct)
		s.mc = &mc
		return s, nil
	}
	s.mc = nil
	s.input = components.NewTextInput("Type your answer...", true, 20)
	return s, s.input.Init()
}

func (s *PracticeScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.Phase == sess.PhaseEnding || s.state.Phase == sess.PhaseSummary {
		return s, nil
	}

	s.state.Elapsed = time.Since(s.state.StartTime)

	// A finished theory refresher becomes available for the next feedback
	// overlay.
	if s.panel == nil && s.state.PendingTheory && s.state.TheoryService != nil {
		if p, ok := s.state.TheoryService.Consume(); ok {
			s.panel = p
			s.state.PendingTheory = false
		}
	}

	if s.state.Elapsed >= sessionDuration {
		s.state.TimeExpired = true
		// Let the learner finish the exercise in front of them.
		if s.state.ShowingFeedback || s.state.CurrentExercise == nil {
			return s, func() tea.Msg { return sessionEndMsg{} }
		}
	}

	return s, tickCmd()
}

func (s *PracticeScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, nil
	}

	s.state.ShowingFeedback = false
	s.state.Phase = sess.PhaseActive
	s.state.CurrentExercise = nil
	s.mc = nil
	s.panel = nil

	if s.state.TimeExpired {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	return s, s.generateNext()
}

func (s *PracticeScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	s.state.Phase = sess.PhaseEnding
	ctx := context.Background()

	if s.deps.Events != nil {
		_ = s.deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       s.state.SessionID,
			Action:          "end",
			TopicID:         s.topic.ID,
			StartTier:       s.state.StartTier.String(),
			EndTier:         s.state.Drift.Tier().String(),
			QuestionsServed: s.state.TotalQuestions,
			CorrectAnswers:  s.state.TotalCorrect,
			DurationSecs:    int(s.state.Elapsed.Seconds()),
		})
	}

	s.saveSnapshot(ctx)

	sum := sess.BuildSummary(s.state)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil {
		return s, nil
	}

	if s.state.ShowingQuitConfirm {
		switch key {
		case "y", "Y":
			s.state.ShowingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.state.ShowingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	// Feedback overlay: any key dismisses.
	if s.state.ShowingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.state.Phase == sess.PhaseActive {
		if key == "esc" {
			s.state.ShowingQuitConfirm = true
			return s, nil
		}

		if s.mc != nil && s.state.CurrentExercise != nil {
			mc, _ := s.mc.Update(msg)
			*s.mc = mc
			if mc.Submitted {
				return s.submitAnswer()
			}
			return s, nil
		}

		if key == "enter" {
			return s.submitAnswer()
		}

		if key == "h" && s.state.HintAvailable && !s.state.HintShown {
			s.state.HintShown = true
			return s, nil
		}

		if s.textInputActive() {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
	}

	return s, nil
}

// submitAnswer runs the answer through the session pipeline and switches to
// the feedback overlay.
func (s *PracticeScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.state.CurrentExercise == nil {
		return s, nil
	}

	var learnerAnswer string
	if s.mc != nil {
		choices := s.state.CurrentExercise.Choices
		if s.mc.ChosenIndex >= 0 && s.mc.ChosenIndex < len(choices) {
			learnerAnswer = choices[s.mc.ChosenIndex]
		}
	} else {
		learnerAnswer = s.input.Value()
		if learnerAnswer == "" {
			return s, nil
		}
	}

	if out := sess.HandleAnswer(s.state, learnerAnswer); out == nil {
		return s, nil
	}

	s.state.ShowingFeedback = true
	s.state.Phase = sess.PhaseFeedback
	return s, nil
}

// generateNext produces the next exercise asynchronously, retrying transient
// validation failures.
func (s *PracticeScreen) generateNext() tea.Cmd {
	if s.generating {
		return nil
	}
	s.generating = true
	state := s.state
	gen := s.deps.Generator

	return func() tea.Msg {
		state.ErrorMu.Lock()
		recentErrors := make([]string, len(state.RecentErrors))
		copy(recentErrors, state.RecentErrors)
		state.ErrorMu.Unlock()

		input := tutor.GenerateInput{
			Topic:          state.Topic,
			Tier:           state.Drift.Tier(),
			PriorQuestions: state.PriorQuestions,
			RecentErrors:   recentErrors,
		}

		var ex *tutor.Exercise
		var err error
		for attempt := 0; attempt < 3; attempt++ {
			ex, err = gen.Generate(context.Background(), input)
			if err == nil {
				break
			}
			var valErr *tutor.ValidationError
			if errors.As(err, &valErr) && !valErr.Retryable {
				break
			}
		}
		if err != nil {
			return exerciseReadyMsg{Err: err}
		}
		return exerciseReadyMsg{Exercise: ex}
	}
}

// saveSnapshot folds this session's progression into the latest snapshot and
// prunes old ones.
func (s *PracticeScreen) saveSnapshot(ctx context.Context) {
	if s.deps.Snapshots == nil {
		return
	}

	var data store.SnapshotData
	if snap, err := s.deps.Snapshots.Latest(ctx); err == nil && snap != nil {
		data = snap.Data
	}

	sess.ApplyTopicProgress(&data, s.state)

	_ = s.deps.Snapshots.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      data,
	})
	_ = s.deps.Snapshots.Prune(ctx, snapshotsKept)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
