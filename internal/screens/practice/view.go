package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quantatutor/quanta/internal/drift"
	"github.com/quantatutor/quanta/internal/ui/components"
	"github.com/quantatutor/quanta/internal/ui/theme"
)

func renderLoading(width, height int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg)
}

func renderError(width, height int, msg string) string {
	content := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Something went wrong") +
		"\n\n" +
		lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(msg) +
		"\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Press any key to go back")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func renderQuitConfirm(width, height int) string {
	content := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("End this session?") +
		"\n\n" +
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Your progress is saved either way.") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Success).Render("[Y]es") +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Error).Render("[N]o")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderExerciseView renders the active exercise display.
func (s *PracticeScreen) renderExerciseView(width, height int) string {
	state := s.state
	ex := state.CurrentExercise
	if ex == nil {
		return renderLoading(width, height, "Generating exercise...")
	}

	var b strings.Builder

	// Info line: topic and tier left, question count and countdown right.
	remaining := sessionDuration - state.Elapsed
	if remaining < 0 {
		remaining = 0
	}
	timerStr := fmt.Sprintf("%d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", state.Topic.Name)) +
		lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("  [%s]", ex.Tier))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  %s %d  %s",
			state.TotalQuestions+1,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			state.TotalCorrect,
			timerStr,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Exercise text (centered).
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(ex.Text))
	b.WriteString("\n\n")

	if state.HintShown && ex.Hint != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Hint: "+ex.Hint)))
		b.WriteString("\n\n")
	}

	if s.mc != nil {
		b.WriteString(s.renderChoices(width))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}

	return b.String()
}

func (s *PracticeScreen) renderChoices(width int) string {
	// The exercise text is already rendered above, so the component carries
	// an empty question line.
	out := strings.TrimLeft(s.mc.View(), "\n")

	out += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, out)
}

// renderFeedback renders the post-answer overlay: verdict, explanation,
// drift move, mastery progress, and a theory refresher when one is ready.
func (s *PracticeScreen) renderFeedback(width, height int) string {
	state := s.state
	ex := state.CurrentExercise

	var b strings.Builder
	b.WriteString("\n\n")

	if state.LastAnswerCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if ex != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct answer: %s", ex.Answer)))
		}
	}
	b.WriteString("\n\n")

	if ex != nil && ex.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(ex.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	// Difficulty drift notification.
	if state.LastMove.Changed {
		var note string
		style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Bold(true)
		switch state.LastMove.Direction {
		case drift.DirectionUp:
			note = fmt.Sprintf("Difficulty up: %s", state.LastMove.Tier)
			style = style.Foreground(theme.Accent)
		case drift.DirectionDown:
			note = fmt.Sprintf("Let's ease off: %s", state.LastMove.Tier)
			style = style.Foreground(theme.Secondary)
		}
		if note != "" {
			b.WriteString(style.Render(note))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(s.renderMasteryLine(width))

	if s.panel != nil {
		b.WriteString("\n\n")
		b.WriteString(renderTheoryPanel(s.panel.Title, s.panel.Explanation, s.panel.WorkedExample, s.panel.KeyPoints, width))
	}

	return b.String()
}

// renderMasteryLine shows progress toward advancing out of the answered tier.
func (s *PracticeScreen) renderMasteryLine(width int) string {
	state := s.state
	decision := state.LastDecision

	tier := state.Drift.Tier()
	if ex := state.CurrentExercise; ex != nil {
		tier = ex.Tier
	}

	if tier.IsTerminal() {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("You're working at exam level. Keep it sharp!")
	}

	if decision.CanAdvance {
		msg := fmt.Sprintf("Tier cleared: %s, %s is open", tier, tier.Next())
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(msg)
	}

	bar := components.NewProgressBar("Tier progress", decision.ProgressFraction, true, min(width-8, 50))
	if decision.IsBorderline {
		bar.FillColor = theme.Warning
	}
	line := lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View())

	if decision.IsBorderline {
		line += "\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render("So close — a couple more clean answers will do it")
	}
	return line
}

func renderTheoryPanel(title, explanation, workedExample string, keyPoints []string, width int) string {
	inner := min(width-12, 66)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(explanation))
	if workedExample != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Worked example"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(workedExample))
	}
	for _, p := range keyPoints {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render("• " + p))
	}

	card := theme.Card.Width(inner + 4).Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
