package types

import "github.com/google/uuid"

// AssignmentItem is one chosen pairing in the optimal assignment for a
// category. Within one CategoryResult, each JDIndex and each CVIndex appears
// at most once.
type AssignmentItem struct {
	JDIndex int     `json:"jd_index"`
	CVIndex int     `json:"cv_index"`
	JDItem  string  `json:"jd_item"`
	CVItem  string  `json:"cv_item"`
	Score   float64 `json:"score"`
}

// AlternativeMatch is one near-miss CV item for a JD requirement.
type AlternativeMatch struct {
	CVItem  string  `json:"cv_item"`
	CVIndex int     `json:"cv_index"`
	Score   float64 `json:"score"`
}

// AlternativesItem holds the top-k highest-scoring CV items for one JD item,
// sorted descending by score, excluding the item chosen by the optimal
// assignment. Emitted for every JD index with at least one CV candidate so a
// reviewer can always see what else was close.
type AlternativesItem struct {
	JDIndex int                `json:"jd_index"`
	Items   []AlternativeMatch `json:"items"`
}

// CategoryResult is the full outcome of matching one category: the optimal
// assignment, the ranked alternatives, and the threshold-gated match
// percentage. MissingItems lists the JD requirements that received no
// assignment meeting the quality threshold.
type CategoryResult struct {
	Assignments     []AssignmentItem   `json:"assignments"`
	Alternatives    []AlternativesItem `json:"alternatives"`
	MatchPercentage float64            `json:"match_percentage"`
	MatchedCount    int                `json:"matched_count"`
	TotalRequired   int                `json:"total_required"`
	MissingItems    []string           `json:"missing_items,omitempty"`
}

// CandidateBreakdown aggregates one candidate's per-category scores (each in
// [0,1]), the overall weighted score, and the per-category detail. It is
// owned exclusively by the MatchResult that produced it.
type CandidateBreakdown struct {
	CandidateID           string         `json:"candidate_id"`
	CandidateName         string         `json:"candidate_name,omitempty"`
	SkillsScore           float64        `json:"skills_score"`
	ResponsibilitiesScore float64        `json:"responsibilities_score"`
	JobTitleScore         float64        `json:"job_title_score"`
	YearsScore            float64        `json:"years_score"`
	OverallScore          float64        `json:"overall_score"`
	Skills                CategoryResult `json:"skills"`
	Responsibilities      CategoryResult `json:"responsibilities"`
	Notes                 string         `json:"notes,omitempty"`
}

// FailedCandidate records a candidate that could not be scored. Failures are
// isolated per candidate and surfaced on this side channel rather than
// aborting the batch or silently dropping the entry.
type FailedCandidate struct {
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name,omitempty"`
	Reason        string `json:"reason"`
}

// MatchResult is the sole output artifact of a matching request: candidates
// ranked descending by overall score, plus the failed-candidate side channel.
// It is created fresh per request and never mutated afterward. Embeddings are
// an internal computation detail and are deliberately absent.
type MatchResult struct {
	RunID             uuid.UUID            `json:"run_id"`
	JDJobTitle        string               `json:"jd_job_title"`
	JDYears           *float64             `json:"jd_years,omitempty"`
	NormalizedWeights Weights              `json:"normalized_weights"`
	Candidates        []CandidateBreakdown `json:"candidates"`
	Failed            []FailedCandidate    `json:"failed_candidates,omitempty"`
}
