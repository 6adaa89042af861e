package progression

import (
	"fmt"
	"strings"
)

// ThresholdSpec holds the advancement requirements for one tier.
// A learner advances out of a tier via the streak path or the accuracy path;
// the accuracy path only opens once MinAttempts have been recorded.
type ThresholdSpec struct {
	// RequiredStreak is the consecutive-correct count for the streak path.
	RequiredStreak int

	// RequiredAccuracy is the accuracy percentage (0-100] for the accuracy path.
	RequiredAccuracy int

	// MinAttempts is the attempt floor before the accuracy path opens.
	// Must be >= RequiredStreak.
	MinAttempts int
}

// thresholds maps each non-terminal tier to its advancement requirements.
// TierExam has no entry: there is nothing to advance to.
var thresholds = map[Tier]ThresholdSpec{
	TierEasy:   {RequiredStreak: 3, RequiredAccuracy: 70, MinAttempts: 5},
	TierMedium: {RequiredStreak: 3, RequiredAccuracy: 70, MinAttempts: 5},
	TierHard:   {RequiredStreak: 4, RequiredAccuracy: 80, MinAttempts: 6},
}

func init() {
	if err := ValidateThresholds(); err != nil {
		panic(err)
	}
}

// ThresholdFor returns the advancement requirements for a non-terminal tier.
// A missing entry is a configuration bug caught by ValidateThresholds in the
// package init, so this returns the zero spec rather than an error.
func ThresholdFor(tier Tier) ThresholdSpec {
	return thresholds[tier]
}

// ValidateThresholds checks the threshold table for internal consistency.
// Run from the package init; a failure here means the binary shipped with a
// broken table.
func ValidateThresholds() error {
	return validateTable(thresholds)
}

func validateTable(table map[Tier]ThresholdSpec) error {
	var errs []string

	for _, tier := range AllTiers() {
		spec, ok := table[tier]
		if tier.IsTerminal() {
			if ok {
				errs = append(errs, fmt.Sprintf("tier %s is terminal but has a threshold entry", tier))
			}
			continue
		}
		if !ok {
			errs = append(errs, fmt.Sprintf("tier %s has no threshold entry", tier))
			continue
		}
		prefix := fmt.Sprintf("tier %s", tier)
		if spec.RequiredStreak <= 0 {
			errs = append(errs, fmt.Sprintf("%s: RequiredStreak must be > 0, got %d", prefix, spec.RequiredStreak))
		}
		if spec.RequiredAccuracy <= 0 || spec.RequiredAccuracy > 100 {
			errs = append(errs, fmt.Sprintf("%s: RequiredAccuracy must be in (0, 100], got %d", prefix, spec.RequiredAccuracy))
		}
		if spec.MinAttempts < spec.RequiredStreak {
			errs = append(errs, fmt.Sprintf("%s: MinAttempts (%d) must be >= RequiredStreak (%d)", prefix, spec.MinAttempts, spec.RequiredStreak))
		}
	}

	if len(errs) > 0 {
		return &ConfigurationError{Problems: errs}
	}
	return nil
}

// ConfigurationError reports an inconsistent threshold table.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("threshold table validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}
