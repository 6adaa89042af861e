package progression

import (
	"errors"
	"testing"
)

func TestValidateThresholds(t *testing.T) {
	if err := ValidateThresholds(); err != nil {
		t.Fatalf("ValidateThresholds() = %v, want nil", err)
	}
}

func TestThresholdTable_InternallyConsistent(t *testing.T) {
	for _, tier := range AllTiers() {
		if tier.IsTerminal() {
			continue
		}
		spec := ThresholdFor(tier)
		if spec.RequiredStreak <= 0 {
			t.Errorf("tier %s: RequiredStreak = %d, want > 0", tier, spec.RequiredStreak)
		}
		if spec.RequiredAccuracy <= 0 || spec.RequiredAccuracy > 100 {
			t.Errorf("tier %s: RequiredAccuracy = %d, want in (0, 100]", tier, spec.RequiredAccuracy)
		}
		if spec.MinAttempts < spec.RequiredStreak {
			t.Errorf("tier %s: MinAttempts = %d < RequiredStreak = %d", tier, spec.MinAttempts, spec.RequiredStreak)
		}
		// The accuracy bar must be achievable at the attempt floor.
		pass := spec.MinAttempts * spec.RequiredAccuracy / 100
		if pass > spec.MinAttempts {
			t.Errorf("tier %s: required pass count %d exceeds MinAttempts %d", tier, pass, spec.MinAttempts)
		}
	}
}

func TestTier_Bounds(t *testing.T) {
	if got := TierExam.Next(); got != TierExam {
		t.Errorf("TierExam.Next() = %s, want exam", got)
	}
	if got := TierEasy.Prev(); got != TierEasy {
		t.Errorf("TierEasy.Prev() = %s, want easy", got)
	}
	if got := TierEasy.Next(); got != TierMedium {
		t.Errorf("TierEasy.Next() = %s, want medium", got)
	}
	if got := TierHard.Prev(); got != TierMedium {
		t.Errorf("TierHard.Prev() = %s, want medium", got)
	}
}

func TestTierFromString_RoundTrip(t *testing.T) {
	for _, tier := range AllTiers() {
		if got := TierFromString(tier.String()); got != tier {
			t.Errorf("TierFromString(%q) = %s, want %s", tier.String(), got, tier)
		}
	}
	if got := TierFromString("bogus"); got != TierEasy {
		t.Errorf("TierFromString(bogus) = %s, want easy fallback", got)
	}
}

func TestValidateTable_CatchesBrokenEntries(t *testing.T) {
	broken := map[Tier]ThresholdSpec{
		TierEasy:   {RequiredStreak: 0, RequiredAccuracy: 70, MinAttempts: 5},
		TierMedium: {RequiredStreak: 3, RequiredAccuracy: 101, MinAttempts: 5},
		TierHard:   {RequiredStreak: 4, RequiredAccuracy: 80, MinAttempts: 2},
		TierExam:   {RequiredStreak: 1, RequiredAccuracy: 50, MinAttempts: 1},
	}

	err := validateTable(broken)
	if err == nil {
		t.Fatal("validateTable accepted a broken table")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error type = %T, want *ConfigurationError", err)
	}
	if len(cfgErr.Problems) != 4 {
		t.Errorf("got %d problems, want 4:\n%v", len(cfgErr.Problems), cfgErr.Problems)
	}
}

func TestValidateTable_MissingTierEntry(t *testing.T) {
	partial := map[Tier]ThresholdSpec{
		TierEasy: {RequiredStreak: 3, RequiredAccuracy: 70, MinAttempts: 5},
	}

	err := validateTable(partial)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want *ConfigurationError for missing entries", err)
	}
	if len(cfgErr.Problems) != 2 {
		t.Errorf("got %d problems, want 2 (medium and hard missing): %v", len(cfgErr.Problems), cfgErr.Problems)
	}
}
