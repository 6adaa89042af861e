package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quantatutor/quanta/internal/gate"
	"github.com/quantatutor/quanta/internal/router"
	"github.com/quantatutor/quanta/internal/screen"
	"github.com/quantatutor/quanta/internal/screens/gatecheck"
	"github.com/quantatutor/quanta/internal/screens/home"
	"github.com/quantatutor/quanta/internal/screens/practice"
	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/theory"
	"github.com/quantatutor/quanta/internal/tutor"
	"github.com/quantatutor/quanta/internal/ui/layout"
)

// Options carries the collaborators built in cmd and injected into the
// screen tree. The LLM-backed fields are nil when no provider is
// configured; screens degrade to offline placeholders.
type Options struct {
	EventRepo    store.EventRepo
	SnapshotRepo store.SnapshotRepo

	Generator     tutor.Generator
	TheoryService *theory.Service
	PrereqSource  gate.PrereqSource
	QuizGenerator gate.DiagnosticGenerator
	Grader        gate.AnswerGrader
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model with the home screen at the bottom of
// the stack.
func newAppModel(opts Options) AppModel {
	practiceDeps := practice.Deps{
		Generator: opts.Generator,
		Theory:    opts.TheoryService,
		Events:    opts.EventRepo,
		Snapshots: opts.SnapshotRepo,
	}
	gateDeps := gatecheck.Deps{
		Source:    opts.PrereqSource,
		Generator: opts.QuizGenerator,
		Grader:    opts.Grader,
		Events:    opts.EventRepo,
		Snapshots: opts.SnapshotRepo,
		Practice:  practiceDeps,
	}

	homeScreen := home.New(practiceDeps, gateDeps, opts.EventRepo, opts.SnapshotRepo)
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.HeaderStatusProvider); ok {
			status = sp.HeaderStatus()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
