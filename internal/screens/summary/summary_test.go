package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/quantatutor/quanta/internal/progression"
	"github.com/quantatutor/quanta/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		TopicID:        "linear-equations",
		TopicName:      "Linear Equations",
		Duration:       9 * time.Minute,
		TotalQuestions: 12,
		TotalCorrect:   9,
		Accuracy:       0.75,
		StartTier:      progression.TierEasy,
		EndTier:        progression.TierMedium,
		Decision: progression.GateDecision{
			ProgressFraction: 0.6,
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Linear Equations") {
		t.Error("view does not name the topic")
	}
	if !strings.Contains(view, "75%") {
		t.Error("view does not show accuracy")
	}
}

func TestSummaryScreen_TierMovementShown(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if !strings.Contains(view, "easy") || !strings.Contains(view, "medium") {
		t.Error("view does not show the tier movement")
	}
}

func TestSummaryScreen_BorderlineNote(t *testing.T) {
	sum := testSummary()
	sum.Decision.IsBorderline = true
	s := New(sum)

	if !strings.Contains(s.View(80, 24), "Borderline") {
		t.Error("borderline decision should surface a note")
	}
}

func TestSummaryScreen_AdvanceNote(t *testing.T) {
	sum := testSummary()
	sum.Decision.CanAdvance = true
	sum.Decision.PathUsed = progression.PathStreak
	s := New(sum)

	if !strings.Contains(s.View(80, 24), "Ready to advance") {
		t.Error("advance-ready decision should surface a note")
	}
}

func TestSummaryScreen_ExamTierNote(t *testing.T) {
	sum := testSummary()
	sum.EndTier = progression.TierExam
	s := New(sum)

	if !strings.Contains(s.View(80, 24), "exam level") {
		t.Error("exam tier should get its own note")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	s := New(testSummary())
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}
