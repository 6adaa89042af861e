package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quantatutor/quanta/internal/router"
	"github.com/quantatutor/quanta/internal/screen"
	"github.com/quantatutor/quanta/internal/session"
	"github.com/quantatutor/quanta/internal/ui/components"
	"github.com/quantatutor/quanta/internal/ui/layout"
	"github.com/quantatutor/quanta/internal/ui/theme"
)

// SummaryScreen displays the end-of-session summary.
type SummaryScreen struct {
	summary *session.Summary
	done    components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	// The practice screen replaced itself with this one, so a single pop
	// lands back where the session was started from.
	done := components.NewButton("Done", true, func() tea.Cmd {
		return func() tea.Msg { return router.PopScreenMsg{} }
	})
	return &SummaryScreen{summary: summary, done: done}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "q":
			return s, s.done.OnPress()
		}
	}
	var cmd tea.Cmd
	s.done, cmd = s.done.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(sum.TopicName))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	// Tier movement.
	tierStr := sum.EndTier.String()
	tierStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if sum.StartTier != sum.EndTier {
		tierStr = fmt.Sprintf("%s → %s", sum.StartTier, sum.EndTier)
		if sum.EndTier > sum.StartTier {
			tierStyle = tierStyle.Foreground(theme.Success).Bold(true)
		} else {
			tierStyle = tierStyle.Foreground(theme.Secondary)
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Difficulty tier:  ")+
			tierStyle.Render(tierStr)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	b.WriteString(s.renderDecision(width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.done.View()))

	return b.String()
}

// renderDecision shows where the learner stands against the mastery bar at
// the tier the session ended on.
func (s *SummaryScreen) renderDecision(width int) string {
	sum := s.summary
	d := sum.Decision

	if sum.EndTier.IsTerminal() {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("You're working at exam level. Keep it sharp!")
	}

	if d.CanAdvance {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Ready to advance: next session starts at %s", sum.EndTier.Next()))
	}

	bar := components.NewProgressBar(
		fmt.Sprintf("Progress at %s", sum.EndTier),
		d.ProgressFraction, true, min(width-8, 50))
	if d.IsBorderline {
		bar.FillColor = theme.Warning
	}

	out := lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View())
	if d.IsBorderline {
		out += "\n\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render("Borderline — one more strong run clears this tier")
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
