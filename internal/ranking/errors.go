package ranking

import "fmt"

// ScoringError represents a failure while scoring a single candidate. It
// carries the candidate's identifier so batch callers can report which
// candidate was skipped.
type ScoringError struct {
	CandidateID string
	Message     string
	Cause       error
}

func (e *ScoringError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("candidate %s: %s: %v", e.CandidateID, e.Message, e.Cause)
	}
	return fmt.Sprintf("candidate %s: %s", e.CandidateID, e.Message)
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}
