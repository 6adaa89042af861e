package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendGateEvent(ctx context.Context, data GateEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.GateEvent.Create().
		SetSequence(seqNum).
		SetTopicID(data.TopicID).
		SetOutcome(data.Outcome).
		SetQuestionsAsked(data.QuestionsAsked).
		SetCorrectAnswers(data.CorrectAnswers).
		SetErrorMessage(data.ErrorMessage)

	if len(data.WeakPrerequisites) > 0 {
		builder = builder.SetWeakPrerequisites(data.WeakPrerequisites)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save gate event: %w", err)
	}
	return nil
}
