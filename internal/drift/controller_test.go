package drift

import (
	"testing"

	"github.com/quantatutor/quanta/internal/progression"
)

func TestController_TwoCorrectPromotes(t *testing.T) {
	c := NewController(progression.TierEasy)

	m := c.OnAnswer(true)
	if m.Changed {
		t.Fatal("promoted after one correct answer")
	}

	m = c.OnAnswer(true)
	if !m.Changed || m.Direction != DirectionUp {
		t.Fatalf("move = %+v, want promotion", m)
	}
	if m.Tier != progression.TierMedium {
		t.Errorf("Tier = %s, want medium", m.Tier)
	}
}

func TestController_PromotesWithMissInHistory(t *testing.T) {
	// 3 of 4 at the tier (>= 0.7) with the streak rebuilt after a miss.
	c := NewController(progression.TierEasy)
	c.OnAnswer(true)
	c.OnAnswer(false)
	c.OnAnswer(true)

	m := c.OnAnswer(true)
	if !m.Changed || m.Direction != DirectionUp {
		t.Fatalf("move = %+v, want promotion", m)
	}
}

func TestController_TwoWrongDemotes(t *testing.T) {
	c := NewController(progression.TierHard)

	m := c.OnAnswer(false)
	if m.Changed {
		t.Fatal("demoted after one wrong answer")
	}

	m = c.OnAnswer(false)
	if !m.Changed || m.Direction != DirectionDown {
		t.Fatalf("move = %+v, want demotion", m)
	}
	if m.Tier != progression.TierMedium {
		t.Errorf("Tier = %s, want medium", m.Tier)
	}
}

func TestController_NeverDemotesBelowEasy(t *testing.T) {
	c := NewController(progression.TierEasy)
	for i := 0; i < 6; i++ {
		m := c.OnAnswer(false)
		if m.Changed {
			t.Fatalf("move = %+v, want no change at the floor", m)
		}
		if m.Tier != progression.TierEasy {
			t.Fatalf("Tier = %s, want easy", m.Tier)
		}
	}
}

func TestController_NeverPromotesPastExam(t *testing.T) {
	c := NewController(progression.TierExam)
	for i := 0; i < 6; i++ {
		m := c.OnAnswer(true)
		if m.Changed {
			t.Fatalf("move = %+v, want no change at the ceiling", m)
		}
		if m.Tier != progression.TierExam {
			t.Fatalf("Tier = %s, want exam", m.Tier)
		}
	}
}

func TestController_WrongAnswerResetsCorrectStreak(t *testing.T) {
	c := NewController(progression.TierEasy)
	c.OnAnswer(true)
	c.OnAnswer(false)

	// Streak broken; one more correct must not promote via the streak rule.
	m := c.OnAnswer(true)
	if m.Changed {
		t.Fatalf("move = %+v, want hold after broken streak", m)
	}
}

func TestController_CountersResetOnChange(t *testing.T) {
	c := NewController(progression.TierEasy)
	c.OnAnswer(true)
	m := c.OnAnswer(true)
	if !m.Changed {
		t.Fatal("expected promotion")
	}

	// Fresh tier: a single correct answer must not promote again.
	m = c.OnAnswer(true)
	if m.Changed {
		t.Fatalf("move = %+v, want hold right after promotion", m)
	}
}

func TestController_KeepsTierOnFirstMissAfterPromotion(t *testing.T) {
	c := NewController(progression.TierEasy)
	c.OnAnswer(true)
	c.OnAnswer(true) // promoted to medium

	m := c.OnAnswer(false)
	if m.Changed || m.Tier != progression.TierMedium {
		t.Fatalf("move = %+v, want to keep medium on the first miss", m)
	}
}

func TestController_DemotesOnlyWhenPromotionIdle(t *testing.T) {
	c := NewController(progression.TierMedium)
	c.OnAnswer(true)
	c.OnAnswer(false)
	c.OnAnswer(true)
	c.OnAnswer(false)
	// 2/4 at the tier, streak broken: promotion cannot fire. A second
	// consecutive miss demotes.
	m := c.OnAnswer(false)
	if !m.Changed || m.Direction != DirectionDown {
		t.Fatalf("move = %+v, want demotion when promotion does not fire", m)
	}
	if m.Tier != progression.TierEasy {
		t.Errorf("Tier = %s, want easy", m.Tier)
	}
}
