package progression

// RecentWindow is the number of outcomes kept for recency weighting.
const RecentWindow = 5

// PerformanceRecord is the rolling performance history for one learner on one
// topic at one tier. It is created at the first attempt on a tier, reset on
// any tier change, and mutated only through RecordAttempt.
type PerformanceRecord struct {
	// ConsecutiveCorrect is the current correct-answer streak.
	ConsecutiveCorrect int `json:"consecutive_correct"`

	// TotalAttempts is the number of graded attempts at this tier.
	TotalAttempts int `json:"total_attempts"`

	// CorrectAttempts is the number of correct attempts at this tier.
	CorrectAttempts int `json:"correct_attempts"`

	// RecentOutcomes holds the last RecentWindow outcomes, most-recent-last.
	RecentOutcomes []bool `json:"recent_outcomes"`
}

// Accuracy returns the rounded accuracy percentage (0-100).
// Zero attempts yields 0, not NaN.
func (r PerformanceRecord) Accuracy() int {
	if r.TotalAttempts == 0 {
		return 0
	}
	return int(float64(100*r.CorrectAttempts)/float64(r.TotalAttempts) + 0.5)
}

// Struggling reports whether the two most recent outcomes are both wrong.
func (r PerformanceRecord) Struggling() bool {
	n := len(r.RecentOutcomes)
	return n >= 2 && !r.RecentOutcomes[n-1] && !r.RecentOutcomes[n-2]
}

// RecordAttempt returns the record updated with one graded attempt.
//
// The streak carries the recency override: two trailing misses zero it even
// when the miss itself would not, since a correct answer between two misses
// can mask struggle inside the window. Without the override a long stale
// streak lets a learner average out consecutive misses.
func RecordAttempt(r PerformanceRecord, correct bool) PerformanceRecord {
	outcomes := make([]bool, 0, RecentWindow+1)
	outcomes = append(outcomes, r.RecentOutcomes...)
	outcomes = append(outcomes, correct)
	if len(outcomes) > RecentWindow {
		outcomes = outcomes[len(outcomes)-RecentWindow:]
	}
	r.RecentOutcomes = outcomes

	switch {
	case r.Struggling():
		r.ConsecutiveCorrect = 0
	case correct:
		r.ConsecutiveCorrect++
	default:
		r.ConsecutiveCorrect = 0
	}

	r.TotalAttempts++
	if correct {
		r.CorrectAttempts++
	}
	return r
}
