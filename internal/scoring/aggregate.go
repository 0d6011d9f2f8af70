package scoring

import "github.com/talentmatch/matchcore/internal/types"

// Aggregate combines the four per-category sub-scores into one overall score.
// All sub-scores are on the canonical 0–1 scale and the weights must already
// be normalized (sum to 1); the aggregator does not re-normalize. Pure and
// deterministic; callers must guarantee finite inputs.
func Aggregate(skills, responsibilities, jobTitle, years float64, weights types.Weights) float64 {
	overall := skills*weights.Skills +
		responsibilities*weights.Responsibilities +
		jobTitle*weights.JobTitle +
		years*weights.Experience

	// Guard against float drift at the boundaries.
	if overall > 1.0 {
		overall = 1.0
	}
	if overall < 0.0 {
		overall = 0.0
	}
	return overall
}
