package progression

// Tier represents a difficulty tier. The ordering of the constants defines
// the promotion/demotion direction.
type Tier int

const (
	TierEasy Tier = iota // Entry difficulty, generous scaffolding
	TierMedium
	TierHard
	TierExam // Terminal tier, exam-style problems
)

// AllTiers returns all tiers in ascending difficulty order.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard, TierExam}
}

// Next returns the tier one step up, capped at TierExam.
func (t Tier) Next() Tier {
	if t >= TierExam {
		return TierExam
	}
	return t + 1
}

// Prev returns the tier one step down, capped at TierEasy.
func (t Tier) Prev() Tier {
	if t <= TierEasy {
		return TierEasy
	}
	return t - 1
}

// IsTerminal reports whether there is no tier above t.
func (t Tier) IsTerminal() bool {
	return t == TierExam
}

// String returns the canonical lowercase name for the tier.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	case TierExam:
		return "exam"
	default:
		return "unknown"
	}
}

// Label returns the display label for the tier.
func (t Tier) Label() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	case TierExam:
		return "Exam"
	default:
		return "Unknown"
	}
}

// TierFromString parses a tier name back to the Tier type.
// Unknown names map to TierEasy, matching the zero value.
func TierFromString(s string) Tier {
	switch s {
	case "medium":
		return TierMedium
	case "hard":
		return TierHard
	case "exam":
		return TierExam
	default:
		return TierEasy
	}
}
