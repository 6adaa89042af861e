package session

import (
	"testing"
	"time"

	"github.com/quantatutor/quanta/internal/drift"
	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/topics"
	"github.com/quantatutor/quanta/internal/tutor"
)

func testTopic() topics.Topic {
	return topics.Topic{
		ID:   "linear-equations",
		Name: "Linear Equations",
	}
}

func testExercise(tier progression.Tier) *tutor.Exercise {
	return &tutor.Exercise{
		Text:       "Solve for x: 3x + 5 = 20",
		Format:     tutor.FormatNumeric,
		Answer:     "5",
		AnswerType: tutor.AnswerTypeInteger,
		Hint:       "Subtract 5 from both sides first.",
		TopicID:    "linear-equations",
		Tier:       tier,
	}
}

func newTestState() *State {
	s := NewState(testTopic(), "session-1", progression.TierEasy, nil)
	s.CurrentExercise = testExercise(progression.TierEasy)
	s.QuestionStartTime = time.Now()
	return s
}

func TestHandleAnswer_Correct(t *testing.T) {
	s := newTestState()

	out := HandleAnswer(s, "5")
	if out == nil {
		t.Fatal("expected outcome")
	}
	if !out.Correct {
		t.Error("expected correct")
	}
	if s.TotalQuestions != 1 || s.TotalCorrect != 1 {
		t.Errorf("totals = %d/%d, want 1/1", s.TotalCorrect, s.TotalQuestions)
	}

	rec := s.Records[progression.TierEasy]
	if rec.ConsecutiveCorrect != 1 || rec.TotalAttempts != 1 || rec.CorrectAttempts != 1 {
		t.Errorf("record = %+v", rec)
	}
}

func TestHandleAnswer_Wrong(t *testing.T) {
	s := newTestState()

	out := HandleAnswer(s, "6")
	if out.Correct {
		t.Error("expected wrong")
	}
	if s.TotalCorrect != 0 {
		t.Errorf("total correct = %d, want 0", s.TotalCorrect)
	}
	if s.WrongCount != 1 {
		t.Errorf("wrong count = %d, want 1", s.WrongCount)
	}
	if len(s.RecentErrors) != 1 {
		t.Fatalf("recent errors = %d, want 1", len(s.RecentErrors))
	}
	want := "Answered 6 for 'Solve for x: 3x + 5 = 20', correct answer was 5"
	if s.RecentErrors[0] != want {
		t.Errorf("error context = %q", s.RecentErrors[0])
	}
	if !s.HintAvailable {
		t.Error("expected hint availability after a miss")
	}
}

func TestHandleAnswer_NoExercise(t *testing.T) {
	s := NewState(testTopic(), "session-1", progression.TierEasy, nil)

	if out := HandleAnswer(s, "5"); out != nil {
		t.Error("expected nil outcome without an active exercise")
	}
}

func TestHandleAnswer_DriftPromotesAfterTwoCorrect(t *testing.T) {
	s := newTestState()

	HandleAnswer(s, "5")
	s.CurrentExercise = testExercise(progression.TierEasy)
	out := HandleAnswer(s, "5")

	if !out.Move.Changed || out.Move.Direction != drift.DirectionUp {
		t.Errorf("move = %+v, want promotion", out.Move)
	}
	if s.Drift.Tier() != progression.TierMedium {
		t.Errorf("tier = %v, want medium", s.Drift.Tier())
	}
}

func TestHandleAnswer_RecordsKeyedByServedTier(t *testing.T) {
	s := newTestState()

	HandleAnswer(s, "5")
	s.CurrentExercise = testExercise(progression.TierEasy)
	HandleAnswer(s, "5") // promoted to medium

	s.CurrentExercise = testExercise(progression.TierMedium)
	HandleAnswer(s, "5")

	if got := s.Records[progression.TierEasy].TotalAttempts; got != 2 {
		t.Errorf("easy attempts = %d, want 2", got)
	}
	if got := s.Records[progression.TierMedium].TotalAttempts; got != 1 {
		t.Errorf("medium attempts = %d, want 1", got)
	}
}

func TestHandleAnswer_DecisionTracksProgress(t *testing.T) {
	s := newTestState()

	var out *Outcome
	for i := 0; i < 3; i++ {
		s.CurrentExercise = testExercise(progression.TierEasy)
		out = HandleAnswer(s, "5")
	}

	if !out.Decision.CanAdvance {
		t.Errorf("decision = %+v, want advance after 3-streak at easy", out.Decision)
	}
	if out.Decision.PathUsed != progression.PathStreak {
		t.Errorf("path = %v, want streak", out.Decision.PathUsed)
	}
}

func TestHandleAnswer_RecentErrorsCapped(t *testing.T) {
	s := newTestState()

	for i := 0; i < MaxRecentErrors+3; i++ {
		s.CurrentExercise = testExercise(progression.TierEasy)
		HandleAnswer(s, "wrong")
	}

	if len(s.RecentErrors) != MaxRecentErrors {
		t.Errorf("recent errors = %d, want %d", len(s.RecentErrors), MaxRecentErrors)
	}
}

func TestHandleAnswer_PriorQuestionsTracked(t *testing.T) {
	s := newTestState()

	HandleAnswer(s, "5")
	if len(s.PriorQuestions) != 1 || s.PriorQuestions[0] != "Solve for x: 3x + 5 = 20" {
		t.Errorf("prior questions = %v", s.PriorQuestions)
	}
}

func TestBuildSummary(t *testing.T) {
	s := newTestState()

	for i := 0; i < 3; i++ {
		s.CurrentExercise = testExercise(s.Drift.Tier())
		HandleAnswer(s, "5")
	}
	s.CurrentExercise = testExercise(s.Drift.Tier())
	HandleAnswer(s, "wrong")
	s.Elapsed = 5 * time.Minute

	sum := BuildSummary(s)
	if sum.TopicID != "linear-equations" {
		t.Errorf("topic = %q", sum.TopicID)
	}
	if sum.TotalQuestions != 4 || sum.TotalCorrect != 3 {
		t.Errorf("totals = %d/%d, want 3/4", sum.TotalCorrect, sum.TotalQuestions)
	}
	if sum.Accuracy != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", sum.Accuracy)
	}
	if sum.StartTier != progression.TierEasy {
		t.Errorf("start tier = %v", sum.StartTier)
	}
	if sum.EndTier != s.Drift.Tier() {
		t.Errorf("end tier = %v, want %v", sum.EndTier, s.Drift.Tier())
	}
}
