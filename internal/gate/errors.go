package gate

import "fmt"

// LookupError indicates the prerequisite fetch failed.
type LookupError struct {
	TopicID string
	Err     error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("prerequisite lookup for %q failed: %v", e.TopicID, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// GenerationError indicates diagnostic question generation failed or
// produced nothing usable.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("diagnostic generation failed: %v", e.Err)
	}
	return "diagnostic generation returned no questions"
}

func (e *GenerationError) Unwrap() error { return e.Err }

// GradingError indicates the answer grading call failed or returned an
// unusable verdict.
type GradingError struct {
	Err error
}

func (e *GradingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("answer grading failed: %v", e.Err)
	}
	return "answer grading returned no verdict"
}

func (e *GradingError) Unwrap() error { return e.Err }
