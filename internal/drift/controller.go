// Package drift retunes the active difficulty tier within a live session.
// Unlike the cross-session mastery check it reacts within a couple of
// answers, and it never blocks progress: it only changes which tier the next
// exercise is drawn from.
package drift

import "github.com/quantatutor/quanta/internal/progression"

const (
	// promoteStreak is the consecutive-correct count that promotes immediately.
	promoteStreak = 2

	// promoteMinExercises is the attempt count at the current tier before the
	// accuracy-based promotion check applies.
	promoteMinExercises = 3

	// promoteAccuracy is the running accuracy that promotes once
	// promoteMinExercises have been answered at the tier.
	promoteAccuracy = 0.7

	// demoteStreak is the consecutive-incorrect count that demotes.
	demoteStreak = 2
)

// Direction indicates which way a drift move went.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionNone Direction = "none"
)

// Move is the outcome of feeding one answer into the controller.
type Move struct {
	Tier      progression.Tier
	Changed   bool
	Direction Direction
}

// Controller drifts the session's difficulty tier in response to answers.
// State is scoped to the current tier within the current session and resets
// on every tier change. Not safe for concurrent use; each session owns one.
type Controller struct {
	tier                 progression.Tier
	consecutiveCorrect   int
	consecutiveIncorrect int
	exercisesAtTier      int
	correctAtTier        int
}

// NewController creates a controller starting at the given tier.
func NewController(start progression.Tier) *Controller {
	return &Controller{tier: start}
}

// Tier returns the active difficulty tier.
func (c *Controller) Tier() progression.Tier {
	return c.tier
}

// OnAnswer feeds one graded answer into the controller and returns the
// resulting tier move.
//
// Promotion is evaluated before demotion and the two are mutually exclusive
// per answer, so a learner whose very next answer after reaching a promotion
// threshold is wrong keeps the gained tier for at least one more attempt.
func (c *Controller) OnAnswer(correct bool) Move {
	c.exercisesAtTier++
	if correct {
		c.correctAtTier++
		c.consecutiveCorrect++
		c.consecutiveIncorrect = 0
	} else {
		c.consecutiveIncorrect++
		c.consecutiveCorrect = 0
	}

	if c.shouldPromote() {
		if c.tier.IsTerminal() {
			// Already at the top; promotion is a no-op, not a demotion check.
			return Move{Tier: c.tier, Direction: DirectionNone}
		}
		c.tier = c.tier.Next()
		c.resetTierCounters()
		c.consecutiveCorrect = 0
		return Move{Tier: c.tier, Changed: true, Direction: DirectionUp}
	}

	if c.consecutiveIncorrect >= demoteStreak {
		if c.tier == progression.TierEasy {
			return Move{Tier: c.tier, Direction: DirectionNone}
		}
		c.tier = c.tier.Prev()
		c.resetTierCounters()
		c.consecutiveIncorrect = 0
		return Move{Tier: c.tier, Changed: true, Direction: DirectionDown}
	}

	return Move{Tier: c.tier, Direction: DirectionNone}
}

func (c *Controller) shouldPromote() bool {
	if c.consecutiveCorrect >= promoteStreak {
		return true
	}
	if c.exercisesAtTier >= promoteMinExercises {
		accuracy := float64(c.correctAtTier) / float64(c.exercisesAtTier)
		return accuracy >= promoteAccuracy
	}
	return false
}

func (c *Controller) resetTierCounters() {
	c.exercisesAtTier = 0
	c.correctAtTier = 0
}
