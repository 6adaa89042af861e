package store

import (
	"context"
	"time"

	"github.com/quantatutor/quanta/internal/progression"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// TopicProgress is the persisted progression state for one topic.
type TopicProgress struct {
	// Tier is the difficulty tier the learner currently sits at.
	Tier string `json:"tier"`
	// Records holds one performance record per tier, keyed by tier name.
	Records map[string]progression.PerformanceRecord `json:"records,omitempty"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version int `json:"version"`
	// Topics maps topic ID to the learner's progression state for it.
	Topics map[string]TopicProgress `json:"topics,omitempty"`
	// UnlockedTopics lists topics the learner skipped ahead to by
	// passing a prerequisite gate check.
	UnlockedTopics []string `json:"unlocked_topics,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMEventData captures the data for a single LLM request event.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a stored LLM request event with its log position.
type LLMEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMEventData
}

// AnswerEventData captures a single graded answer.
type AnswerEventData struct {
	SessionID     string
	TopicID       string
	Tier          string
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	TimeMs        int
}

// GateEventData captures the outcome of a prerequisite gate check.
type GateEventData struct {
	TopicID           string
	Outcome           string // passed, failed, or error
	QuestionsAsked    int
	CorrectAnswers    int
	WeakPrerequisites []string
	ErrorMessage      string
}

// SessionEventData captures a practice session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string // start or end
	TopicID         string
	StartTier       string
	EndTier         string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMEvent records an LLM API call event.
	AppendLLMEvent(ctx context.Context, data LLMEventData) error

	// AppendAnswerEvent records a graded answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendGateEvent records a gate check outcome.
	AppendGateEvent(ctx context.Context, data GateEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// TopicAccuracy returns the all-time correct fraction and attempt
	// count for a topic. A topic with no answers reports (0, 0, nil).
	TopicAccuracy(ctx context.Context, topicID string) (float64, int, error)

	// QueryLLMEvents returns LLM request events in sequence order.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
}
