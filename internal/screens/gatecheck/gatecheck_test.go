package gatecheck

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quantatutor/quanta/internal/gate"
	"github.com/quantatutor/quanta/internal/router"
	"github.com/quantatutor/quanta/internal/screens/practice"
	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/topics"
)

// mockSource implements gate.PrereqSource with canned results.
type mockSource struct {
	prereqs []gate.Prerequisite
	err     error
}

func (m *mockSource) FetchPrerequisites(_ context.Context, _ string) ([]gate.Prerequisite, error) {
	return m.prereqs, m.err
}

// mockQuizGen implements gate.DiagnosticGenerator with canned questions.
type mockQuizGen struct {
	questions []gate.Question
	err       error
}

func (m *mockQuizGen) GenerateDiagnostic(_ context.Context, _ []gate.Prerequisite, _ string) ([]gate.Question, error) {
	return m.questions, m.err
}

// mockGrader returns canned verdicts in FIFO order.
type mockGrader struct {
	verdicts []gate.Verdict
	errs     []error
	calls    int
}

func (m *mockGrader) GradeAnswer(_ context.Context, _ gate.Question, _ string) (gate.Verdict, error) {
	i := m.calls
	m.calls++
	var err error
	if i < len(m.errs) {
		err = m.errs[i]
	}
	var v gate.Verdict
	if i < len(m.verdicts) {
		v = m.verdicts[i]
	}
	return v, err
}

// mockEventRepo records appended events in memory.
type mockEventRepo struct {
	gateEvents []store.GateEventData
}

func (m *mockEventRepo) AppendLLMEvent(_ context.Context, _ store.LLMEventData) error { return nil }

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}

func (m *mockEventRepo) AppendGateEvent(_ context.Context, data store.GateEventData) error {
	m.gateEvents = append(m.gateEvents, data)
	return nil
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}

func (m *mockEventRepo) TopicAccuracy(_ context.Context, _ string) (float64, int, error) {
	return 0, 0, nil
}

func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

// mockSnapshotRepo keeps snapshots in memory.
type mockSnapshotRepo struct {
	latest *store.Snapshot
	saved  []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.saved = append(m.saved, snap)
	return nil
}

func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	return m.latest, nil
}

func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }

func targetTopic() topics.Topic {
	return topics.Topic{
		ID:            "quadratic-equations",
		Name:          "Quadratic Equations",
		Strand:        topics.StrandAlgebra,
		Prerequisites: []string{"linear-equations"},
	}
}

func oneQuestion() []gate.Question {
	return []gate.Question{{
		PrerequisiteID:   "linear-equations",
		PrerequisiteName: "Linear Equations",
		Text:             "Solve for x: 2x = 10",
		CorrectAnswer:    "5",
	}}
}

func newScreen(src *mockSource, gen *mockQuizGen, grader *mockGrader, events *mockEventRepo, snaps *mockSnapshotRepo) *GateCheckScreen {
	return New(Deps{
		Source:    src,
		Generator: gen,
		Grader:    grader,
		Events:    events,
		Snapshots: snaps,
	}, targetTopic())
}

// check runs the prerequisite lookup synchronously and feeds the result back.
func check(t *testing.T, s *GateCheckScreen) {
	t.Helper()
	msg := s.runCheck()()
	result, ok := msg.(gateResultMsg)
	if !ok {
		t.Fatalf("runCheck produced %T, want gateResultMsg", msg)
	}
	s.Update(result)
}

func TestGateCheck_StrongPrereqsPassStraightToPractice(t *testing.T) {
	src := &mockSource{prereqs: []gate.Prerequisite{
		{ID: "linear-equations", Name: "Linear Equations", MasteryPercentage: 85},
	}}
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	s := newScreen(src, &mockQuizGen{}, &mockGrader{}, events, snaps)

	msg := s.runCheck()()
	result := msg.(gateResultMsg)
	if result.State != gate.StatePassed {
		t.Fatalf("check state = %s, want passed", result.State)
	}

	_, cmd := s.Update(result)
	if cmd == nil {
		t.Fatal("passing should hand off to practice")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("pass should replace the gate screen")
	}
	if _, ok := replace.Screen.(*practice.PracticeScreen); !ok {
		t.Errorf("replacement screen is %T, want practice", replace.Screen)
	}

	if len(events.gateEvents) != 1 || events.gateEvents[0].Outcome != "passed" {
		t.Errorf("gate events = %+v, want one passed", events.gateEvents)
	}
	if len(snaps.saved) != 1 {
		t.Fatalf("got %d snapshots saved, want 1 (unlock)", len(snaps.saved))
	}
	unlocked := snaps.saved[0].Data.UnlockedTopics
	if len(unlocked) != 1 || unlocked[0] != "quadratic-equations" {
		t.Errorf("UnlockedTopics = %v", unlocked)
	}
}

func TestGateCheck_WeakPrereqReadiesQuiz(t *testing.T) {
	src := &mockSource{prereqs: []gate.Prerequisite{
		{ID: "linear-equations", Name: "Linear Equations", MasteryPercentage: 40},
	}}
	s := newScreen(src, &mockQuizGen{questions: oneQuestion()}, &mockGrader{}, &mockEventRepo{}, &mockSnapshotRepo{})

	check(t, s)
	if s.gate.State() != gate.StateReady {
		t.Fatalf("state = %s, want ready", s.gate.State())
	}
	if !strings.Contains(s.View(80, 24), "Linear Equations") {
		t.Error("ready view should name the weak prerequisite")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.gate.State() != gate.StateQuiz {
		t.Errorf("state after Enter = %s, want quiz", s.gate.State())
	}
}

func TestGateCheck_QuizPassUnlocksTarget(t *testing.T) {
	src := &mockSource{prereqs: []gate.Prerequisite{
		{ID: "linear-equations", Name: "Linear Equations", MasteryPercentage: 40},
	}}
	grader := &mockGrader{verdicts: []gate.Verdict{{IsCorrect: true, Confidence: gate.ConfidenceHigh}}}
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	s := newScreen(src, &mockQuizGen{questions: oneQuestion()}, grader, events, snaps)

	check(t, s)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // start quiz

	s.input.Model.SetValue("5")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a grading command")
	}
	result := cmd().(gateResultMsg)
	if result.State != gate.StatePassed {
		t.Fatalf("quiz state = %s, want passed", result.State)
	}

	_, cmd = s.Update(result)
	if cmd == nil {
		t.Fatal("passing should hand off to practice")
	}
	if len(events.gateEvents) != 1 {
		t.Fatalf("got %d gate events, want 1", len(events.gateEvents))
	}
	ev := events.gateEvents[0]
	if ev.Outcome != "passed" || ev.QuestionsAsked != 1 || ev.CorrectAnswers != 1 {
		t.Errorf("gate event = %+v", ev)
	}
	if len(snaps.saved) != 1 {
		t.Error("passing the quiz should save the unlock")
	}
}

func TestGateCheck_EmptyAnswerNotSubmitted(t *testing.T) {
	src := &mockSource{prereqs: []gate.Prerequisite{
		{ID: "linear-equations", Name: "Linear Equations", MasteryPercentage: 40},
	}}
	grader := &mockGrader{}
	s := newScreen(src, &mockQuizGen{questions: oneQuestion()}, grader, &mockEventRepo{}, &mockSnapshotRepo{})

	check(t, s)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // start quiz

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty answer should not reach the grader")
	}
	if grader.calls != 0 {
		t.Errorf("grader called %d times, want 0", grader.calls)
	}
}

func TestGateCheck_FailedQuizRecordsScoreAndWeakPrereqs(t *testing.T) {
	src := &mockSource{prereqs: []gate.Prerequisite{
		{ID: "linear-equations", Name: "Linear Equations", MasteryPercentage: 40},
	}}
	grader := &mockGrader{verdicts: []gate.Verdict{{IsCorrect: false, Confidence: gate.ConfidenceHigh}}}
	events := &mockEventRepo{}
	s := newScreen(src, &mockQuizGen{questions: oneQuestion()}, grader, events, &mockSnapshotRepo{})

	check(t, s)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.input.Model.SetValue("7")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	result := cmd().(gateResultMsg)
	if result.State != gate.StateFailed {
		t.Fatalf("quiz state = %s, want failed", result.State)
	}
	s.Update(result)

	if len(events.gateEvents) != 1 {
		t.Fatalf("got %d gate events, want 1", len(events.gateEvents))
	}
	ev := events.gateEvents[0]
	if ev.Outcome != "failed" || ev.CorrectAnswers != 0 || ev.QuestionsAsked != 1 {
		t.Errorf("gate event = %+v", ev)
	}
	if len(ev.WeakPrerequisites) != 1 || ev.WeakPrerequisites[0] != "linear-equations" {
		t.Errorf("WeakPrerequisites = %v", ev.WeakPrerequisites)
	}
}

func TestGateCheck_FailedEnterOpensWeakestPrereq(t *testing.T) {
	// linear-equations is a real catalog topic, so the redirect can resolve it.
	src := &mockSource{prereqs: []gate.Prerequisite{
		{ID: "linear-equations", Name: "Linear Equations", MasteryPercentage: 40},
	}}
	grader := &mockGrader{verdicts: []gate.Verdict{{IsCorrect: false, Confidence: gate.ConfidenceHigh}}}
	s := newScreen(src, &mockQuizGen{questions: oneQuestion()}, grader, &mockEventRepo{}, &mockSnapshotRepo{})

	check(t, s)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.input.Model.SetValue("7")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(cmd().(gateResultMsg))

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a redirect command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("failed+Enter should replace with a review session")
	}
	if _, ok := replace.Screen.(*practice.PracticeScreen); !ok {
		t.Errorf("redirect screen is %T, want practice", replace.Screen)
	}
}

func TestGateCheck_GraderErrorFailsClosed(t *testing.T) {
	src := &mockSource{prereqs: []gate.Prerequisite{
		{ID: "linear-equations", Name: "Linear Equations", MasteryPercentage: 40},
	}}
	grader := &mockGrader{errs: []error{errors.New("timeout")}}
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	s := newScreen(src, &mockQuizGen{questions: oneQuestion()}, grader, events, snaps)

	check(t, s)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.input.Model.SetValue("5")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	result := cmd().(gateResultMsg)
	if result.State != gate.StateError {
		t.Fatalf("state = %s, want error", result.State)
	}
	s.Update(result)

	if len(events.gateEvents) != 1 || events.gateEvents[0].Outcome != "error" {
		t.Errorf("gate events = %+v, want one error", events.gateEvents)
	}
	if events.gateEvents[0].ErrorMessage == "" {
		t.Error("error outcome should carry the message")
	}
	if len(snaps.saved) != 0 {
		t.Error("an errored check must never unlock the target")
	}
	if !strings.Contains(s.View(80, 24), "Nothing was recorded against you") {
		t.Error("error view should reassure the learner")
	}
}

func TestGateCheck_RetryAfterErrorRechecks(t *testing.T) {
	src := &mockSource{err: errors.New("db locked")}
	s := newScreen(src, &mockQuizGen{}, &mockGrader{}, &mockEventRepo{}, &mockSnapshotRepo{})

	check(t, s)
	if s.gate.State() != gate.StateError {
		t.Fatalf("state = %s, want error", s.gate.State())
	}

	src.err = nil
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("R should retry")
	}
	result := cmd().(gateResultMsg)
	if result.State != gate.StatePassed {
		t.Errorf("retry state = %s, want passed (no prerequisites)", result.State)
	}
}

func TestGateCheck_OutcomeRecordedOnce(t *testing.T) {
	src := &mockSource{err: errors.New("db locked")}
	events := &mockEventRepo{}
	s := newScreen(src, &mockQuizGen{}, &mockGrader{}, events, &mockSnapshotRepo{})

	check(t, s)
	s.Update(gateResultMsg{State: gate.StateError})

	if len(events.gateEvents) != 1 {
		t.Errorf("got %d gate events, want 1", len(events.gateEvents))
	}
}

func TestGateCheck_EscPops(t *testing.T) {
	s := newScreen(&mockSource{}, &mockQuizGen{}, &mockGrader{}, &mockEventRepo{}, &mockSnapshotRepo{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("Esc should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("Esc should produce PopScreenMsg")
	}
}
