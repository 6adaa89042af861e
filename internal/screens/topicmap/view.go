package topicmap

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/quantatutor/quanta/internal/topics"
	"github.com/quantatutor/quanta/internal/ui/theme"
)

func (s *TopicMapScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg)
	}
	if s.loading || len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Loading topic map...")
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowStrandHeader:
			lines = append(lines, s.renderStrandHeader(r.strand, width))
		case rowTopic:
			lines = append(lines, s.renderTopicRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *TopicMapScreen) adjustScroll(height int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

func (s *TopicMapScreen) renderStrandHeader(strand topics.Strand, width int) string {
	name := topics.StrandDisplayName(strand)
	line := "  " + name + " " + strings.Repeat("─", max(width-len(name)-8, 0))
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line)
}

func (s *TopicMapScreen) renderTopicRow(r row, selected bool, width int) string {
	st := r.status

	marker := "  "
	if selected {
		marker = "▸ "
	}

	// Standing badge: lock state, tier, mastery.
	var badge string
	switch {
	case !st.Accessible:
		badge = "locked · skip-ahead check"
	case st.Attempts == 0:
		badge = "new"
	default:
		tier := st.Tier
		if tier == "" {
			tier = "easy"
		}
		badge = fmt.Sprintf("%s · %d%%", tier, st.MasteryPct)
		if st.Unlocked {
			badge += " · unlocked"
		}
	}

	name := st.Topic.Name
	line := fmt.Sprintf("    %s%s", marker, name)

	pad := width - lipgloss.Width(line) - len(badge) - 6
	if pad < 1 {
		pad = 1
	}
	line += strings.Repeat(" ", pad) + badge

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case !st.Accessible:
		style = theme.Locked
	case st.MasteryPct >= topics.WeakMasteryCutoff && st.Attempts > 0:
		style = lipgloss.NewStyle().Foreground(theme.Success)
	}
	if selected {
		style = style.Bold(true)
		if st.Accessible {
			style = style.Foreground(theme.Primary)
		}
	}

	return style.Render(line)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
