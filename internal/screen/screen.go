package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/quantatutor/quanta/internal/ui/layout"
)

// Screen is one full-screen view managed by the router. Screens own their
// content area only; the header and footer are rendered by the app frame.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// HeaderStatusProvider is an optional interface for screens that want
// to show live status (current topic, tier) on the right of the header.
type HeaderStatusProvider interface {
	HeaderStatus() string
}
