package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quantatutor/quanta/internal/router"
	"github.com/quantatutor/quanta/internal/screen"
	"github.com/quantatutor/quanta/internal/screens/gatecheck"
	"github.com/quantatutor/quanta/internal/screens/placeholder"
	"github.com/quantatutor/quanta/internal/screens/practice"
	"github.com/quantatutor/quanta/internal/screens/topicmap"
	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/topics"
	"github.com/quantatutor/quanta/internal/tutor"
	"github.com/quantatutor/quanta/internal/ui/components"
	"github.com/quantatutor/quanta/internal/ui/theme"
)

// HomeScreen is the main entry screen of the application.
type HomeScreen struct {
	menu components.Menu

	started     int
	strong      int
	unlocked    int
	recommended topics.Topic
	aiOffline   bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen, deriving the stat line and the recommended
// next topic from the event log and latest snapshot.
func New(practiceDeps practice.Deps, gateDeps gatecheck.Deps, events store.EventRepo, snapshots store.SnapshotRepo) *HomeScreen {
	h := &HomeScreen{
		aiOffline: practiceDeps.Generator == nil,
	}

	ctx := context.Background()
	var snap *store.Snapshot
	if snapshots != nil {
		snap, _ = snapshots.Latest(ctx)
	}

	if events != nil {
		if statuses, err := tutor.TopicStatuses(ctx, events, snap); err == nil {
			for _, st := range statuses {
				if st.Attempts > 0 {
					h.started++
				}
				if st.Attempts > 0 && st.MasteryPct >= topics.WeakMasteryCutoff {
					h.strong++
				}
				if st.Unlocked {
					h.unlocked++
				}
			}
			h.recommended = tutor.RecommendNext(statuses)
		}
	}
	if h.recommended.ID == "" {
		if all := topics.TopologicalOrder(); len(all) > 0 {
			h.recommended = all[0]
		}
	}

	practiceLabel := "CONTINUE PRACTICE"
	if h.started == 0 {
		practiceLabel = "START PRACTICE"
	}

	items := []components.MenuItem{
		{Label: practiceLabel, Action: func() tea.Cmd {
			if h.aiOffline {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Practice")}
				}
			}
			rec := h.recommended
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(practiceDeps, rec)}
			}
		}},
		{Label: "TOPIC MAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: topicmap.New(practiceDeps, gateDeps, events, snapshots),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Q U A N T A")
	subtitle := theme.Subtitle.Render("adaptive math practice")
	sections = append(sections, title+"\n"+subtitle)

	stats := fmt.Sprintf("Topics started: %d    Strong: %d    Unlocked early: %d",
		h.started, h.strong, h.unlocked)
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats))

	if !h.aiOffline && h.recommended.ID != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("Up next: "+h.recommended.Name))
	}
	if h.aiOffline {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Warning).
			Render("No LLM provider configured — practice is unavailable"))
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
