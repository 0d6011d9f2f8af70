// Package scoring provides the deterministic scalar scoring rules: the
// years-of-experience comparison and the weighted aggregation of per-category
// scores into one overall score.
package scoring

import "math"

// Experience scores returned by CompareYears.
const (
	ExperienceMet   = 1.0
	ExperienceShort = 0.5
)

// CompareYears compares required vs. candidate years of experience. Returns
// ExperienceMet when the candidate meets or exceeds the requirement and
// ExperienceShort otherwise.
//
// A nil, negative, or non-finite value on either side is treated as unknown
// and scores ExperienceMet: an unspecified requirement cannot penalize, and
// missing candidate data gets the benefit of the doubt. That leniency is
// deliberate policy, not a bug. Total over all inputs; never returns anything
// but the two constants.
func CompareYears(required, candidate *float64) float64 {
	if !knownYears(required) {
		return ExperienceMet
	}
	if !knownYears(candidate) {
		return ExperienceMet
	}
	if *candidate >= *required {
		return ExperienceMet
	}
	return ExperienceShort
}

// knownYears reports whether a years value is present and usable.
func knownYears(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) && *v >= 0
}
