package gatecheck

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quantatutor/quanta/internal/gate"
	"github.com/quantatutor/quanta/internal/ui/theme"
)

func (s *GateCheckScreen) View(width, height int) string {
	if s.inFlight {
		return s.renderCentered(width, height, s.loadingText())
	}

	switch s.gate.State() {
	case gate.StateChecking:
		return s.renderCentered(width, height, s.loadingText())
	case gate.StateReady:
		return s.renderReady(width, height)
	case gate.StateQuiz:
		return s.renderQuiz(width, height)
	case gate.StateFailed:
		return s.renderFailed(width, height)
	case gate.StateError:
		return s.renderErr(width, height)
	}

	// StatePassed hands off to the practice screen immediately; this
	// renders for at most one frame.
	return s.renderCentered(width, height, lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render("Prerequisites look solid. Opening "+s.target.Name+"..."))
}

func (s *GateCheckScreen) loadingText() string {
	if s.gate.State() == gate.StateQuiz {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Grading your answer...")
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Checking what %s builds on...", s.target.Name))
}

func (s *GateCheckScreen) renderCentered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderReady lists the weak prerequisites and offers to start the quiz.
func (s *GateCheckScreen) renderReady(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%s builds on topics you haven't locked in yet:", s.target.Name)))
	b.WriteString("\n\n")

	for _, p := range s.gate.WeakPrerequisites() {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Render(
			fmt.Sprintf("  • %s (%d%% mastery)", p.Name, p.MasteryPercentage)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("Answer a short %d-question check to skip ahead.", s.gate.QuestionCount())))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Enter to start, Esc to go back"))

	return s.renderCentered(width, height, b.String())
}

// renderQuiz shows the active diagnostic question.
func (s *GateCheckScreen) renderQuiz(width, height int) string {
	q := s.gate.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d of %d  ·  %s",
			s.gate.QuestionIndex()+1, s.gate.QuestionCount(), q.PrerequisiteName)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString("Answer: " + s.input.View())

	return s.renderCentered(width, height, b.String())
}

func (s *GateCheckScreen) renderFailed(width, height int) string {
	correct, total := s.gate.Score()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Not this time"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
		fmt.Sprintf("You got %d of %d — the check needs %.0f%%.", correct, total, gate.PassThreshold*100)))
	b.WriteString("\n\n")

	if weakest := s.gate.WeakestPrerequisite(); weakest != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(
			fmt.Sprintf("Strongest move now: shore up %s (%d%% mastery).",
				weakest.Name, weakest.MasteryPercentage)))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Enter to practice it, R to retry the check, Esc to go back"))
	} else {
		b.WriteString(theme.Hint.Render("R to retry the check, Esc to go back"))
	}

	return s.renderCentered(width, height, b.String())
}

func (s *GateCheckScreen) renderErr(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("The check hit a snag"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(s.gate.ErrorMessage()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		"Nothing was recorded against you."))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("R to retry, Esc to go back"))

	return s.renderCentered(width, height, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
