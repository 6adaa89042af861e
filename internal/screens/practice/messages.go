package practice

import (
	"time"

	sess "github.com/quantatutor/quanta/internal/session"
	"github.com/quantatutor/quanta/internal/tutor"
)

// sessionInitMsg is sent when session state has been loaded from the snapshot.
type sessionInitMsg struct {
	State *sess.State
	Err   error
}

// exerciseReadyMsg is sent when an exercise has been generated.
type exerciseReadyMsg struct {
	Exercise *tutor.Exercise
	Err      error
}

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the feedback display is dismissed.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
