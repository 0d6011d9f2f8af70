// Package types provides type definitions for structured data used throughout the matching engine.
package types

// TextItem pairs a text snippet with the embedding vector produced for it by
// the upstream embedding service. Items are treated as immutable once built.
type TextItem struct {
	Text      string    `json:"text" validate:"required"`
	Embedding []float64 `json:"embedding" validate:"required,min=1"`
}

// CategorySet is an ordered sequence of TextItems for one category (skills,
// responsibilities) belonging to either the JD or one CV. Order is preserved
// so assignments and alternatives can reference items by index, but carries
// no semantic weight.
type CategorySet []TextItem

// Texts returns the raw text of every item in the set, in order.
func (cs CategorySet) Texts() []string {
	out := make([]string, len(cs))
	for i, item := range cs {
		out[i] = item.Text
	}
	return out
}

// JDBundle is the job-description side of a matching request: one title item,
// an optional years-of-experience requirement, and the per-category item lists.
type JDBundle struct {
	JobTitle         TextItem    `json:"job_title"`
	YearsRequired    *float64    `json:"years_required,omitempty"`
	Skills           CategorySet `json:"skills"`
	Responsibilities CategorySet `json:"responsibilities"`
}

// CVBundle is one candidate's evidence bundle, shaped like the JD side.
// CandidateID is assigned upstream (typically the resume record ID) and is
// echoed back verbatim in the result so callers can correlate.
type CVBundle struct {
	CandidateID      string      `json:"candidate_id"`
	CandidateName    string      `json:"candidate_name,omitempty"`
	JobTitle         TextItem    `json:"job_title"`
	YearsExperience  *float64    `json:"years_experience,omitempty"`
	Skills           CategorySet `json:"skills"`
	Responsibilities CategorySet `json:"responsibilities"`
}
