package topicmap

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/quantatutor/quanta/internal/router"
	"github.com/quantatutor/quanta/internal/screen"
	"github.com/quantatutor/quanta/internal/screens/gatecheck"
	"github.com/quantatutor/quanta/internal/screens/practice"
	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/topics"
	"github.com/quantatutor/quanta/internal/tutor"
	"github.com/quantatutor/quanta/internal/ui/layout"
)

type rowKind int

const (
	rowStrandHeader rowKind = iota
	rowTopic
)

type row struct {
	kind   rowKind
	strand topics.Strand
	status *tutor.TopicStatus
}

// statusesMsg delivers the async topic standing lookup.
type statusesMsg struct {
	Statuses []tutor.TopicStatus
	Err      error
}

// TopicMapScreen displays the topic catalog organized by strand, with
// mastery, tier, and gate standing per topic. Selecting an open topic starts
// practice; selecting a gated one starts a skip-ahead check.
type TopicMapScreen struct {
	practiceDeps practice.Deps
	gateDeps     gatecheck.Deps
	events       store.EventRepo
	snapshots    store.SnapshotRepo

	rows         []row
	cursor       int
	scrollOffset int
	loading      bool
	errMsg       string
}

var _ screen.Screen = (*TopicMapScreen)(nil)
var _ screen.KeyHintProvider = (*TopicMapScreen)(nil)

// New creates a topic map screen.
func New(practiceDeps practice.Deps, gateDeps gatecheck.Deps, events store.EventRepo, snapshots store.SnapshotRepo) *TopicMapScreen {
	return &TopicMapScreen{
		practiceDeps: practiceDeps,
		gateDeps:     gateDeps,
		events:       events,
		snapshots:    snapshots,
		loading:      true,
	}
}

func (s *TopicMapScreen) Init() tea.Cmd {
	return s.loadStatuses()
}

func (s *TopicMapScreen) Title() string {
	return "Topic Map"
}

func (s *TopicMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Next strand"},
		{Key: "Enter", Description: "Practice / check"},
		{Key: "Esc", Description: "Back"},
	}
}

// loadStatuses derives every topic's standing from the event log and the
// latest snapshot.
func (s *TopicMapScreen) loadStatuses() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		var snap *store.Snapshot
		if s.snapshots != nil {
			var err error
			snap, err = s.snapshots.Latest(ctx)
			if err != nil {
				return statusesMsg{Err: err}
			}
		}

		statuses, err := tutor.TopicStatuses(ctx, s.events, snap)
		if err != nil {
			return statusesMsg{Err: err}
		}
		return statusesMsg{Statuses: statuses}
	}
}

func (s *TopicMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statusesMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.buildRows(msg.Statuses)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextStrand()
		case "shift+tab":
			s.prevStrand()
		case "enter":
			return s, s.selectTopic()
		case "q", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// buildRows groups statuses under strand headers, preserving the
// topological order within each strand.
func (s *TopicMapScreen) buildRows(statuses []tutor.TopicStatus) {
	byStrand := make(map[topics.Strand][]*tutor.TopicStatus)
	for i := range statuses {
		st := &statuses[i]
		byStrand[st.Topic.Strand] = append(byStrand[st.Topic.Strand], st)
	}

	s.rows = nil
	for _, strand := range topics.AllStrands() {
		group := byStrand[strand]
		if len(group) == 0 {
			continue
		}
		s.rows = append(s.rows, row{kind: rowStrandHeader, strand: strand})
		for _, st := range group {
			s.rows = append(s.rows, row{kind: rowTopic, strand: strand, status: st})
		}
	}

	for i, r := range s.rows {
		if r.kind == rowTopic {
			s.cursor = i
			break
		}
	}
}

func (s *TopicMapScreen) moveCursor(delta int) {
	i := s.cursor + delta
	for i >= 0 && i < len(s.rows) {
		if s.rows[i].kind == rowTopic {
			s.cursor = i
			return
		}
		i += delta
	}
}

func (s *TopicMapScreen) nextStrand() {
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowStrandHeader {
			s.moveCursorFrom(i)
			return
		}
	}
}

func (s *TopicMapScreen) prevStrand() {
	headers := 0
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowStrandHeader {
			headers++
			// The first header above the cursor is the current strand;
			// the second is the previous one.
			if headers == 2 {
				s.moveCursorFrom(i)
				return
			}
		}
	}
	// Already in the first strand: snap to its first topic.
	s.moveCursorFrom(0)
}

func (s *TopicMapScreen) moveCursorFrom(headerIdx int) {
	for i := headerIdx; i < len(s.rows); i++ {
		if s.rows[i].kind == rowTopic {
			s.cursor = i
			return
		}
	}
}

// selectTopic opens practice for an accessible topic, or a skip-ahead check
// for a gated one.
func (s *TopicMapScreen) selectTopic() tea.Cmd {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return nil
	}
	r := s.rows[s.cursor]
	if r.kind != rowTopic || r.status == nil {
		return nil
	}

	topic := r.status.Topic
	if r.status.Accessible {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: practice.New(s.practiceDeps, topic)}
		}
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: gatecheck.New(s.gateDeps, topic)}
	}
}
