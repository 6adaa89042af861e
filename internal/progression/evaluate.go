package progression

// borderlineMargin is how close (in accuracy points) a learner must be to the
// accuracy bar to be flagged as borderline.
const borderlineMargin = 5

// Path identifies which qualification path satisfied an advancement check.
type Path string

const (
	PathStreak   Path = "streak"
	PathAccuracy Path = "accuracy"
	PathNone     Path = "none"
)

// GateDecision is the result of a mastery check against a tier's thresholds.
type GateDecision struct {
	// CanAdvance reports whether the learner met the advancement bar.
	CanAdvance bool

	// PathUsed is the qualification path that fired, preferring the streak
	// path when both hold.
	PathUsed Path

	// ProgressFraction is the learner's progress toward the nearer bar,
	// in [0, 1]. Intended for progress bars.
	ProgressFraction float64

	// IsBorderline is set when the accuracy path narrowly missed: attempt
	// floor met, accuracy within borderlineMargin of the bar, not advancing.
	IsBorderline bool
}

// CheckMastery evaluates a performance record against a tier's thresholds.
// Pure function of its inputs: same record, same decision.
//
// The streak path rewards hot performance without forcing a learner with
// occasional mistakes to wait for an unbroken run; the accuracy path rewards
// overall competence once MinAttempts samples exist. The attempt floor keeps
// a lucky 2-for-2 from satisfying the accuracy path.
func CheckMastery(tier Tier, rec PerformanceRecord) GateDecision {
	// A terminal tier has nothing to advance to and no threshold entry;
	// the decision is always "hold".
	if tier.IsTerminal() {
		return GateDecision{PathUsed: PathNone}
	}

	spec := ThresholdFor(tier)
	accuracy := rec.Accuracy()

	hasFloor := rec.TotalAttempts >= spec.MinAttempts
	streakPath := rec.ConsecutiveCorrect >= spec.RequiredStreak
	accuracyPath := hasFloor && accuracy >= spec.RequiredAccuracy

	d := GateDecision{
		CanAdvance:       streakPath || accuracyPath,
		PathUsed:         PathNone,
		ProgressFraction: progressFraction(spec, rec, accuracy),
	}

	switch {
	case streakPath:
		d.PathUsed = PathStreak
	case accuracyPath:
		d.PathUsed = PathAccuracy
	}

	d.IsBorderline = !d.CanAdvance && hasFloor && accuracy >= spec.RequiredAccuracy-borderlineMargin

	return d
}

// progressFraction returns the greater of the streak and accuracy
// sub-progresses, each clamped to 1.
func progressFraction(spec ThresholdSpec, rec PerformanceRecord, accuracy int) float64 {
	streakProgress := ratio(rec.ConsecutiveCorrect, spec.RequiredStreak)
	accuracyProgress := ratio(accuracy, spec.RequiredAccuracy)
	if streakProgress > accuracyProgress {
		return streakProgress
	}
	return accuracyProgress
}

func ratio(current, required int) float64 {
	if required <= 0 {
		return 1
	}
	r := float64(current) / float64(required)
	if r > 1 {
		return 1
	}
	return r
}
