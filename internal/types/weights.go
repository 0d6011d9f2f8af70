package types

import (
	"fmt"
	"math"
)

// Baseline weight split used when a request omits a weight field. The raw
// values sum to 100 and are normalized to 1 before use.
const (
	BaselineSkillsWeight           = 80.0
	BaselineResponsibilitiesWeight = 15.0
	BaselineJobTitleWeight         = 2.5
	BaselineExperienceWeight       = 2.5
)

// Weights holds the relative importance of each scoring category. Values are
// raw (pre-normalization) and must be non-negative; Normalized rescales them
// to sum to 1.
type Weights struct {
	Skills           float64 `json:"skills" validate:"gte=0"`
	Responsibilities float64 `json:"responsibilities" validate:"gte=0"`
	JobTitle         float64 `json:"job_title" validate:"gte=0"`
	Experience       float64 `json:"experience" validate:"gte=0"`
}

// InvalidWeightsError reports a weight configuration that cannot be
// normalized: a negative or non-finite field, or all four fields zero.
type InvalidWeightsError struct {
	Weights Weights
	Reason  string
}

func (e *InvalidWeightsError) Error() string {
	return fmt.Sprintf("invalid weights %+v: %s", e.Weights, e.Reason)
}

// DefaultWeights returns the documented baseline split
// (skills 80, responsibilities 15, job title 2.5, experience 2.5).
func DefaultWeights() Weights {
	return Weights{
		Skills:           BaselineSkillsWeight,
		Responsibilities: BaselineResponsibilitiesWeight,
		JobTitle:         BaselineJobTitleWeight,
		Experience:       BaselineExperienceWeight,
	}
}

// Sum returns the raw sum of the four fields.
func (w Weights) Sum() float64 {
	return w.Skills + w.Responsibilities + w.JobTitle + w.Experience
}

// Normalized rescales the weights so the four fields sum to 1. Normalizing an
// already-normalized Weights value returns it unchanged up to floating-point
// tolerance. Negative or non-finite fields, or an all-zero vector, yield an
// InvalidWeightsError: no meaningful split can be derived from them.
func (w Weights) Normalized() (Weights, error) {
	for _, v := range []float64{w.Skills, w.Responsibilities, w.JobTitle, w.Experience} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Weights{}, &InvalidWeightsError{Weights: w, Reason: "non-finite weight field"}
		}
		if v < 0 {
			return Weights{}, &InvalidWeightsError{Weights: w, Reason: "negative weight field"}
		}
	}

	sum := w.Sum()
	if sum == 0 {
		return Weights{}, &InvalidWeightsError{Weights: w, Reason: "all weight fields are zero"}
	}

	return Weights{
		Skills:           w.Skills / sum,
		Responsibilities: w.Responsibilities / sum,
		JobTitle:         w.JobTitle / sum,
		Experience:       w.Experience / sum,
	}, nil
}
