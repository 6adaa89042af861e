package practice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/router"
	"github.com/quantatutor/quanta/internal/screens/summary"
	sess "github.com/quantatutor/quanta/internal/session"
	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/topics"
	"github.com/quantatutor/quanta/internal/tutor"
)

// mockGenerator returns canned exercises in FIFO order.
type mockGenerator struct {
	exercises []*tutor.Exercise
	err       error
	calls     int
}

func (m *mockGenerator) Generate(_ context.Context, _ tutor.GenerateInput) (*tutor.Exercise, error) {
	i := m.calls
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if i < len(m.exercises) {
		return m.exercises[i], nil
	}
	return m.exercises[len(m.exercises)-1], nil
}

// mockEventRepo records appended events in memory.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
	gateEvents    []store.GateEventData
	llmEvents     []store.LLMEventData
}

func (m *mockEventRepo) AppendLLMEvent(_ context.Context, data store.LLMEventData) error {
	m.llmEvents = append(m.llmEvents, data)
	return nil
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}

func (m *mockEventRepo) AppendGateEvent(_ context.Context, data store.GateEventData) error {
	m.gateEvents = append(m.gateEvents, data)
	return nil
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
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
	pruned []int
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.saved = append(m.saved, snap)
	return nil
}

func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	return m.latest, nil
}

func (m *mockSnapshotRepo) Prune(_ context.Context, keep int) error {
	m.pruned = append(m.pruned, keep)
	return nil
}

func testTopic() topics.Topic {
	return topics.Topic{ID: "linear-equations", Name: "Linear Equations", Strand: topics.StrandAlgebra}
}

func mcExercise() *tutor.Exercise {
	return &tutor.Exercise{
		Text:        "What is 3 + 4?",
		Format:      tutor.FormatMultipleChoice,
		Answer:      "7",
		AnswerType:  tutor.AnswerTypeText,
		Choices:     []string{"7", "6", "8", "12"},
		Explanation: "Add the two numbers.",
		TopicID:     "linear-equations",
		Tier:        progression.TierEasy,
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// newActiveScreen builds a screen with an initialized session, skipping the
// async snapshot load.
func newActiveScreen(gen *mockGenerator, events *mockEventRepo, snaps *mockSnapshotRepo) *PracticeScreen {
	s := New(Deps{Generator: gen, Events: events, Snapshots: snaps}, testTopic())
	state := sess.NewState(testTopic(), "test-session", progression.TierEasy, nil)
	state.EventRepo = events
	s.Update(sessionInitMsg{State: state})
	return s
}

func TestPracticeScreen_NoGeneratorShowsError(t *testing.T) {
	s := New(Deps{}, testTopic())
	if cmd := s.Init(); cmd != nil {
		t.Error("Init should not start a session without a generator")
	}
	if !strings.Contains(s.View(80, 24), "No LLM provider") {
		t.Error("view should explain the missing provider")
	}
}

func TestPracticeScreen_InitSessionRecordsStartEvent(t *testing.T) {
	events := &mockEventRepo{}
	s := New(Deps{Generator: &mockGenerator{}, Events: events, Snapshots: &mockSnapshotRepo{}}, testTopic())

	msg := s.initSession()()
	initMsg, ok := msg.(sessionInitMsg)
	if !ok {
		t.Fatalf("initSession returned %T, want sessionInitMsg", msg)
	}
	if initMsg.Err != nil {
		t.Fatalf("init error: %v", initMsg.Err)
	}
	if initMsg.State == nil {
		t.Fatal("init produced no state")
	}

	if len(events.sessionEvents) != 1 {
		t.Fatalf("got %d session events, want 1", len(events.sessionEvents))
	}
	ev := events.sessionEvents[0]
	if ev.Action != "start" || ev.TopicID != "linear-equations" {
		t.Errorf("start event = %+v", ev)
	}
}

func TestPracticeScreen_InitSessionResumesSnapshotTier(t *testing.T) {
	snaps := &mockSnapshotRepo{latest: &store.Snapshot{
		Data: store.SnapshotData{
			Version: 1,
			Topics: map[string]store.TopicProgress{
				"linear-equations": {Tier: "hard"},
			},
		},
	}}
	s := New(Deps{Generator: &mockGenerator{}, Snapshots: snaps}, testTopic())

	msg := s.initSession()()
	initMsg := msg.(sessionInitMsg)
	if initMsg.Err != nil {
		t.Fatalf("init error: %v", initMsg.Err)
	}
	if got := initMsg.State.Drift.Tier(); got != progression.TierHard {
		t.Errorf("resumed tier = %s, want hard", got)
	}
}

func TestPracticeScreen_MultipleChoiceAnswerByNumberKey(t *testing.T) {
	events := &mockEventRepo{}
	s := newActiveScreen(&mockGenerator{exercises: []*tutor.Exercise{mcExercise()}}, events, &mockSnapshotRepo{})

	s.Update(exerciseReadyMsg{Exercise: mcExercise()})
	if s.mc == nil {
		t.Fatal("multiple choice exercise should activate choice input")
	}

	// "1" selects the first choice ("7", correct) and submits in one stroke.
	s.Update(keyPress('1'))

	if !s.state.ShowingFeedback {
		t.Error("submitting should switch to the feedback overlay")
	}
	if s.state.TotalQuestions != 1 || s.state.TotalCorrect != 1 {
		t.Errorf("served/correct = %d/%d, want 1/1", s.state.TotalQuestions, s.state.TotalCorrect)
	}
	if len(events.answerEvents) != 1 {
		t.Fatalf("got %d answer events, want 1", len(events.answerEvents))
	}
	if !events.answerEvents[0].Correct || events.answerEvents[0].LearnerAnswer != "7" {
		t.Errorf("answer event = %+v", events.answerEvents[0])
	}
}

func TestPracticeScreen_WrongAnswerCounted(t *testing.T) {
	events := &mockEventRepo{}
	s := newActiveScreen(&mockGenerator{exercises: []*tutor.Exercise{mcExercise()}}, events, &mockSnapshotRepo{})

	s.Update(exerciseReadyMsg{Exercise: mcExercise()})
	s.Update(keyPress('2')) // "6", wrong

	if s.state.TotalCorrect != 0 {
		t.Errorf("TotalCorrect = %d, want 0", s.state.TotalCorrect)
	}
	if s.state.WrongCount != 1 {
		t.Errorf("WrongCount = %d, want 1", s.state.WrongCount)
	}
	if len(events.answerEvents) != 1 || events.answerEvents[0].Correct {
		t.Errorf("answer events = %+v", events.answerEvents)
	}
}

func TestPracticeScreen_FeedbackDismissGeneratesNext(t *testing.T) {
	gen := &mockGenerator{exercises: []*tutor.Exercise{mcExercise()}}
	s := newActiveScreen(gen, &mockEventRepo{}, &mockSnapshotRepo{})

	s.Update(exerciseReadyMsg{Exercise: mcExercise()})
	s.Update(keyPress('1'))

	// Any key on the feedback overlay requests dismissal.
	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command from the feedback keypress")
	}
	if _, ok := cmd().(feedbackDoneMsg); !ok {
		t.Fatal("feedback keypress should produce feedbackDoneMsg")
	}

	_, cmd = s.Update(feedbackDoneMsg{})
	if s.state.CurrentExercise != nil {
		t.Error("dismissing feedback should clear the exercise")
	}
	if cmd == nil {
		t.Error("dismissing feedback should start generating the next exercise")
	}
}

func TestPracticeScreen_QuitConfirmFlow(t *testing.T) {
	s := newActiveScreen(&mockGenerator{exercises: []*tutor.Exercise{mcExercise()}}, &mockEventRepo{}, &mockSnapshotRepo{})
	s.Update(exerciseReadyMsg{Exercise: mcExercise()})

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.state.ShowingQuitConfirm {
		t.Fatal("Esc should open the quit confirmation")
	}

	s.Update(keyPress('n'))
	if s.state.ShowingQuitConfirm {
		t.Fatal("N should dismiss the quit confirmation")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("Y should end the session")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("Y should produce sessionEndMsg")
	}
}

func TestPracticeScreen_SessionEndRecordsAndReplacesWithSummary(t *testing.T) {
	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}
	s := newActiveScreen(&mockGenerator{exercises: []*tutor.Exercise{mcExercise()}}, events, snaps)

	s.Update(exerciseReadyMsg{Exercise: mcExercise()})
	s.Update(keyPress('1'))

	_, cmd := s.Update(sessionEndMsg{})
	if cmd == nil {
		t.Fatal("expected a command from session end")
	}

	if len(events.sessionEvents) != 1 {
		t.Fatalf("got %d session events, want 1 (end)", len(events.sessionEvents))
	}
	end := events.sessionEvents[0]
	if end.Action != "end" || end.QuestionsServed != 1 || end.CorrectAnswers != 1 {
		t.Errorf("end event = %+v", end)
	}

	if len(snaps.saved) != 1 {
		t.Fatalf("got %d snapshots saved, want 1", len(snaps.saved))
	}
	if _, ok := snaps.saved[0].Data.Topics["linear-equations"]; !ok {
		t.Error("snapshot should carry progress for the practiced topic")
	}
	if len(snaps.pruned) != 1 || snaps.pruned[0] != snapshotsKept {
		t.Errorf("pruned = %v, want [%d]", snaps.pruned, snapshotsKept)
	}

	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("session end produced %T, want ReplaceScreenMsg", msg)
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("replacement screen is %T, want summary", replace.Screen)
	}
}

func TestPracticeScreen_TimeExpiredEndsBetweenExercises(t *testing.T) {
	s := newActiveScreen(&mockGenerator{exercises: []*tutor.Exercise{mcExercise()}}, &mockEventRepo{}, &mockSnapshotRepo{})
	s.state.StartTime = time.Now().Add(-sessionDuration - time.Minute)
	s.state.CurrentExercise = nil

	_, cmd := s.Update(timerTickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected a command from the expired tick")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("expired timer with no active exercise should end the session")
	}
	if !s.state.TimeExpired {
		t.Error("TimeExpired not set")
	}
}

func TestPracticeScreen_TimeExpiredWaitsForActiveExercise(t *testing.T) {
	s := newActiveScreen(&mockGenerator{exercises: []*tutor.Exercise{mcExercise()}}, &mockEventRepo{}, &mockSnapshotRepo{})
	s.Update(exerciseReadyMsg{Exercise: mcExercise()})
	s.state.StartTime = time.Now().Add(-sessionDuration - time.Minute)

	_, cmd := s.Update(timerTickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected the tick to reschedule")
	}
	if !s.state.TimeExpired {
		t.Error("TimeExpired not set")
	}
	if s.state.Phase == sess.PhaseEnding {
		t.Error("session should not end while an exercise is on screen")
	}
}

func TestPracticeScreen_GenerationErrorShown(t *testing.T) {
	s := newActiveScreen(&mockGenerator{err: errors.New("model unavailable")}, &mockEventRepo{}, &mockSnapshotRepo{})

	s.Update(exerciseReadyMsg{Err: errors.New("model unavailable")})
	if !strings.Contains(s.View(80, 24), "model unavailable") {
		t.Error("generation errors should be shown to the learner")
	}
}

func TestPracticeScreen_HeaderStatusNamesTopicAndTier(t *testing.T) {
	s := newActiveScreen(&mockGenerator{exercises: []*tutor.Exercise{mcExercise()}}, &mockEventRepo{}, &mockSnapshotRepo{})
	got := s.HeaderStatus()
	if !strings.Contains(got, "Linear Equations") || !strings.Contains(got, "easy") {
		t.Errorf("HeaderStatus = %q", got)
	}
}

func TestPracticeScreen_ExamTierFeedbackNeverClearsTier(t *testing.T) {
	events := &mockEventRepo{}
	s := New(Deps{Generator: &mockGenerator{}, Events: events, Snapshots: &mockSnapshotRepo{}}, testTopic())
	state := sess.NewState(testTopic(), "test-session", progression.TierExam, nil)
	state.EventRepo = events
	s.Update(sessionInitMsg{State: state})

	ex := mcExercise()
	ex.Tier = progression.TierExam
	s.Update(exerciseReadyMsg{Exercise: ex})
	s.Update(keyPress('2')) // "6", wrong

	view := s.View(80, 24)
	if strings.Contains(view, "Tier cleared") {
		t.Error("exam tier feedback must not report a cleared tier")
	}
	if !strings.Contains(view, "exam level") {
		t.Error("exam tier feedback should show the exam-level line")
	}
}
