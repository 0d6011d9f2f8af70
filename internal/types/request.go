package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// WeightsInput is the wire shape for weights on an incoming request. Fields
// are pointers so an omitted field can be told apart from an explicit zero:
// omitted fields take the documented baseline split value, explicit values
// are kept as-is and validated during normalization.
type WeightsInput struct {
	Skills           *float64 `json:"skills,omitempty"`
	Responsibilities *float64 `json:"responsibilities,omitempty"`
	JobTitle         *float64 `json:"job_title,omitempty"`
	Experience       *float64 `json:"experience,omitempty"`
}

// Resolve fills omitted fields from the baseline split and returns the
// concrete raw weights. A nil receiver resolves to the full default split.
func (wi *WeightsInput) Resolve() Weights {
	w := DefaultWeights()
	if wi == nil {
		return w
	}
	if wi.Skills != nil {
		w.Skills = *wi.Skills
	}
	if wi.Responsibilities != nil {
		w.Responsibilities = *wi.Responsibilities
	}
	if wi.JobTitle != nil {
		w.JobTitle = *wi.JobTitle
	}
	if wi.Experience != nil {
		w.Experience = *wi.Experience
	}
	return w
}

// MatchRequest is the closed ingestion shape for one matching request: one JD
// against N candidates. Anything outside this shape is rejected at the
// boundary rather than tolerated inside the scoring logic.
type MatchRequest struct {
	JD              JDBundle      `json:"jd" validate:"required"`
	Candidates      []CVBundle    `json:"candidates" validate:"required,min=1"`
	Weights         *WeightsInput `json:"weights,omitempty"`
	TopAlternatives *int          `json:"top_alternatives,omitempty" validate:"omitempty,gte=0"`
}

// InvalidRequestError represents a structurally invalid request that cannot
// produce a meaningful result (e.g. no candidates). Surfaced to the caller
// before any scoring begins.
type InvalidRequestError struct {
	Message string
	Cause   error
}

func (e *InvalidRequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InvalidRequestError) Unwrap() error {
	return e.Cause
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return &InvalidRequestError{Message: "invalid match request", Cause: err}
	}
	return nil
}
