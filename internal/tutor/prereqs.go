package tutor

import (
	"context"
	"fmt"

	"github.com/quantatutor/quanta/internal/gate"
	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/topics"
)

// PrereqSource resolves a topic's prerequisites from the catalog and their
// mastery percentages from the answer history. It implements
// gate.PrereqSource.
type PrereqSource struct {
	events store.EventRepo
}

// NewPrereqSource creates a store-backed prerequisite source.
func NewPrereqSource(events store.EventRepo) *PrereqSource {
	return &PrereqSource{events: events}
}

// FetchPrerequisites returns the topic's direct prerequisites with their
// current mastery. A prerequisite the learner has never attempted reports
// 0% mastery, which always counts as weak.
func (s *PrereqSource) FetchPrerequisites(ctx context.Context, topicID string) ([]gate.Prerequisite, error) {
	if _, err := topics.Get(topicID); err != nil {
		return nil, err
	}
	prereqs := topics.Prerequisites(topicID)

	out := make([]gate.Prerequisite, 0, len(prereqs))
	for _, p := range prereqs {
		acc, _, err := s.events.TopicAccuracy(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("mastery for %s: %w", p.ID, err)
		}
		out = append(out, gate.Prerequisite{
			ID:                p.ID,
			Name:              p.Name,
			MasteryPercentage: int(acc*100 + 0.5),
		})
	}
	return out, nil
}
