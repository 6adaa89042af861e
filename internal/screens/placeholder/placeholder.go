package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quantatutor/quanta/internal/screen"
	"github.com/quantatutor/quanta/internal/ui/theme"
)

// PlaceholderScreen stands in for a feature that needs an LLM provider when
// none is configured.
type PlaceholderScreen struct {
	title string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a new PlaceholderScreen with the given title.
func New(title string) *PlaceholderScreen {
	return &PlaceholderScreen{title: title}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("This needs an AI provider.\n\nSet QUANTA_ANTHROPIC_API_KEY, QUANTA_OPENAI_API_KEY,\nor QUANTA_GEMINI_API_KEY and restart.")
}

func (p *PlaceholderScreen) Title() string {
	return p.title
}
