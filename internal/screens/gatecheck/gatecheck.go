package gatecheck

import (
	"context"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quantatutor/quanta/internal/gate"
	"github.com/quantatutor/quanta/internal/router"
	"github.com/quantatutor/quanta/internal/screen"
	"github.com/quantatutor/quanta/internal/screens/practice"
	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/topics"
	"github.com/quantatutor/quanta/internal/ui/components"
	"github.com/quantatutor/quanta/internal/ui/layout"
)

// Deps are the collaborators a skip-ahead check needs. Source, Generator,
// and Grader feed the gate state machine; Practice is passed through to the
// practice screen the check opens on pass or redirect.
type Deps struct {
	Source    gate.PrereqSource
	Generator gate.DiagnosticGenerator
	Grader    gate.AnswerGrader
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Practice  practice.Deps
}

// gateResultMsg carries the gate's state after an async transition.
type gateResultMsg struct {
	State gate.State
}

// GateCheckScreen runs one skip-ahead prerequisite check for one target
// topic. The gate instance is discarded when the screen closes.
type GateCheckScreen struct {
	deps   Deps
	target topics.Topic
	gate   *gate.Gate

	input    components.TextInput
	inFlight bool
	recorded bool
}

var _ screen.Screen = (*GateCheckScreen)(nil)
var _ screen.KeyHintProvider = (*GateCheckScreen)(nil)
var _ screen.HeaderStatusProvider = (*GateCheckScreen)(nil)

// New creates a gate check screen for the given locked target topic.
func New(deps Deps, target topics.Topic) *GateCheckScreen {
	return &GateCheckScreen{
		deps:   deps,
		target: target,
		gate:   gate.New(deps.Source, deps.Generator, deps.Grader, target.ID, target.Name),
		input:  components.NewTextInput("Your answer...", false, 40),
	}
}

func (s *GateCheckScreen) Init() tea.Cmd {
	return tea.Batch(s.runCheck(), s.input.Init())
}

func (s *GateCheckScreen) Title() string {
	return "Skip-Ahead Check"
}

func (s *GateCheckScreen) HeaderStatus() string {
	return s.target.Name
}

func (s *GateCheckScreen) KeyHints() []layout.KeyHint {
	if s.inFlight {
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	}
	switch s.gate.State() {
	case gate.StateReady:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start quiz"},
			{Key: "Esc", Description: "Cancel"},
		}
	case gate.StateQuiz:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	case gate.StateFailed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Review weak topic"},
			{Key: "R", Description: "Retry quiz"},
			{Key: "Esc", Description: "Back"},
		}
	case gate.StateError:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *GateCheckScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gateResultMsg:
		return s.handleGateResult(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.gate.State() == gate.StateQuiz && !s.inFlight {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *GateCheckScreen) handleGateResult(msg gateResultMsg) (screen.Screen, tea.Cmd) {
	s.inFlight = false

	switch msg.State {
	case gate.StatePassed:
		s.recordOutcome("passed", "")
		s.unlockTarget()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: practice.New(s.deps.Practice, s.target)}
		}

	case gate.StateFailed:
		s.recordOutcome("failed", "")
		return s, nil

	case gate.StateError:
		s.recordOutcome("error", s.gate.ErrorMessage())
		return s, nil

	case gate.StateQuiz:
		// Advanced to the next question; fresh input.
		s.input = components.NewTextInput("Your answer...", false, 40)
		return s, s.input.Init()
	}

	return s, nil
}

func (s *GateCheckScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.inFlight {
		return s, nil
	}

	switch s.gate.State() {
	case gate.StateReady:
		if key == "enter" {
			if err := s.gate.Start(); err != nil {
				return s, nil
			}
			s.recorded = false
			return s, nil
		}

	case gate.StateQuiz:
		if key == "enter" {
			answer := s.input.Value()
			if answer == "" {
				return s, nil
			}
			return s, s.submitAnswer(answer)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case gate.StateFailed:
		switch key {
		case "enter":
			return s, s.openWeakest()
		case "r", "R":
			return s, s.retry()
		}

	case gate.StateError:
		if key == "r" || key == "R" {
			return s, s.retry()
		}
	}

	return s, nil
}

// runCheck fetches prerequisites and, when needed, generates the quiz.
func (s *GateCheckScreen) runCheck() tea.Cmd {
	s.inFlight = true
	g := s.gate
	return func() tea.Msg {
		return gateResultMsg{State: g.Check(context.Background())}
	}
}

func (s *GateCheckScreen) submitAnswer(answer string) tea.Cmd {
	s.inFlight = true
	g := s.gate
	return func() tea.Msg {
		return gateResultMsg{State: g.SubmitAnswer(context.Background(), answer)}
	}
}

func (s *GateCheckScreen) retry() tea.Cmd {
	s.inFlight = true
	s.recorded = false
	g := s.gate
	return func() tea.Msg {
		return gateResultMsg{State: g.Retry(context.Background())}
	}
}

// openWeakest redirects the learner into a practice session on the weakest
// prerequisite instead of the blocked target.
func (s *GateCheckScreen) openWeakest() tea.Cmd {
	weakest := s.gate.WeakestPrerequisite()
	if weakest == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	topic, err := topics.Get(weakest.ID)
	if err != nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: practice.New(s.deps.Practice, topic)}
	}
}

// recordOutcome appends a gate event once per terminal outcome.
func (s *GateCheckScreen) recordOutcome(outcome, errMsg string) {
	if s.recorded || s.deps.Events == nil {
		return
	}
	s.recorded = true

	correct, total := s.gate.Score()
	var weakIDs []string
	for _, p := range s.gate.WeakPrerequisites() {
		weakIDs = append(weakIDs, p.ID)
	}

	_ = s.deps.Events.AppendGateEvent(context.Background(), store.GateEventData{
		TopicID:           s.target.ID,
		Outcome:           outcome,
		QuestionsAsked:    total,
		CorrectAnswers:    correct,
		WeakPrerequisites: weakIDs,
		ErrorMessage:      errMsg,
	})
}

// unlockTarget marks the target topic as open in the snapshot so the topic
// map stops gating it.
func (s *GateCheckScreen) unlockTarget() {
	if s.deps.Snapshots == nil {
		return
	}
	ctx := context.Background()

	var data store.SnapshotData
	if snap, err := s.deps.Snapshots.Latest(ctx); err == nil && snap != nil {
		data = snap.Data
	}
	if slices.Contains(data.UnlockedTopics, s.target.ID) {
		return
	}
	data.UnlockedTopics = append(data.UnlockedTopics, s.target.ID)

	_ = s.deps.Snapshots.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      data,
	})
}
