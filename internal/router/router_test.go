package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quantatutor/quanta/internal/screen"
)

// stubScreen is a minimal screen.Screen for router tests.
type stubScreen struct {
	title    string
	initRan  bool
	lastMsg  tea.Msg
	initsRun *int
}

func newStub(title string) *stubScreen {
	return &stubScreen{title: title}
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	if s.initsRun != nil {
		*s.initsRun++
	}
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.title }
func (s *stubScreen) Title() string                 { return s.title }

func TestPushAndPop(t *testing.T) {
	home := newStub("home")
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}

	next := newStub("practice")
	r.Update(PushScreenMsg{Screen: next})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active() != screen.Screen(next) {
		t.Error("active screen is not the pushed screen")
	}
	if !next.initRan {
		t.Error("pushed screen's Init was not called")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != screen.Screen(home) {
		t.Error("pop did not restore the previous screen")
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	r := New(newStub("home"))

	r.Update(PopScreenMsg{})
	r.Update(PopScreenMsg{})

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active() == nil {
		t.Error("active screen is nil after popping the root")
	}
}

func TestReplaceSwapsTopScreen(t *testing.T) {
	home := newStub("home")
	r := New(home)
	r.Update(PushScreenMsg{Screen: newStub("practice")})

	summary := newStub("summary")
	r.Update(ReplaceScreenMsg{Screen: summary})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active() != screen.Screen(summary) {
		t.Error("active screen is not the replacement")
	}
	if !summary.initRan {
		t.Error("replacement screen's Init was not called")
	}

	// Popping the replacement lands on home, not the replaced screen.
	r.Update(PopScreenMsg{})
	if r.Active() != screen.Screen(home) {
		t.Error("pop after replace did not land on the screen below")
	}
}

func TestUpdateForwardsToActiveScreen(t *testing.T) {
	home := newStub("home")
	top := newStub("top")
	r := New(home)
	r.Push(top)

	msg := tea.KeyPressMsg{Code: 'x', Text: "x"}
	r.Update(msg)

	if top.lastMsg == nil {
		t.Fatal("active screen did not receive the message")
	}
	if home.lastMsg != nil {
		t.Error("inactive screen received the message")
	}
}

func TestViewRendersActiveScreen(t *testing.T) {
	r := New(newStub("home"))
	r.Push(newStub("topics"))

	if got := r.View(80, 24); got != "topics" {
		t.Errorf("View() = %q, want %q", got, "topics")
	}
}
