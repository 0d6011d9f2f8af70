package ranking

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/talentmatch/matchcore/internal/config"
	"github.com/talentmatch/matchcore/internal/matching"
	"github.com/talentmatch/matchcore/internal/scoring"
	"github.com/talentmatch/matchcore/internal/similarity"
	"github.com/talentmatch/matchcore/internal/types"
)

// ProgressEvent reports the completion of one candidate's scoring.
type ProgressEvent struct {
	CandidateID  string  `json:"candidate_id"`
	Completed    int     `json:"completed"`
	Total        int     `json:"total"`
	OverallScore float64 `json:"overall_score"`
}

// ProgressCallback is called as candidates finish scoring. Invocations are
// serialized by the ranker.
type ProgressCallback func(event ProgressEvent)

// Ranker matches candidate CVs against one JD and ranks them by overall
// score. Safe for concurrent use across requests: all per-request state lives
// inside Rank.
type Ranker struct {
	cfg        config.Config
	log        *zap.Logger
	onProgress ProgressCallback
}

// New creates a Ranker with the given configuration. A nil logger disables
// logging.
func New(cfg config.Config, log *zap.Logger) *Ranker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ranker{cfg: cfg, log: log}
}

// WithProgress registers a callback invoked after each candidate completes.
func (r *Ranker) WithProgress(cb ProgressCallback) *Ranker {
	r.onProgress = cb
	return r
}

// Rank scores every candidate in the request against the JD and returns the
// candidates sorted descending by overall score, ties preserving submission
// order. Scoring is fanned out across a bounded worker pool; each candidate
// writes only its own result slot, so no shared mutable state exists between
// scoring tasks.
//
// Structurally invalid requests (no candidates, unusable weights) fail before
// any scoring begins. A failure while scoring one candidate is recorded on
// the result's failed-candidates channel and does not affect the others. If
// ctx is cancelled mid-batch, not-yet-started candidates are abandoned and
// the result holds only the completed ones; callers must treat that as a
// partial result, not an error.
func (r *Ranker) Rank(ctx context.Context, req *types.MatchRequest) (*types.MatchResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	weights, err := req.Weights.Resolve().Normalized()
	if err != nil {
		return nil, err
	}

	topK := r.cfg.TopAlternatives
	if req.TopAlternatives != nil {
		topK = *req.TopAlternatives
	}

	runID := uuid.New()
	log := r.log.With(zap.String("run_id", runID.String()))
	log.Info("ranking candidates",
		zap.String("jd_title", req.JD.JobTitle.Text),
		zap.Int("candidates", len(req.Candidates)),
	)

	slots := make([]*types.CandidateBreakdown, len(req.Candidates))
	failed := make([]*types.FailedCandidate, len(req.Candidates))

	var progressMu sync.Mutex
	completed := 0

	limit := r.cfg.MaxConcurrent
	if limit <= 0 {
		limit = config.DefaultMaxConcurrent
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range req.Candidates {
		i := i
		g.Go(func() error {
			// Cancelled batches abandon not-yet-started candidates; their
			// slots stay empty and the result is partial.
			if gctx.Err() != nil {
				return nil
			}

			cv := &req.Candidates[i]
			breakdown, scoreErr := r.scoreCandidate(&req.JD, cv, weights, topK)
			if scoreErr != nil {
				log.Warn("candidate scoring failed",
					zap.String("candidate_id", cv.CandidateID),
					zap.Error(scoreErr),
				)
				failed[i] = &types.FailedCandidate{
					CandidateID:   cv.CandidateID,
					CandidateName: cv.CandidateName,
					Reason:        scoreErr.Error(),
				}
				return nil
			}

			slots[i] = breakdown
			log.Debug("candidate scored",
				zap.String("candidate_id", cv.CandidateID),
				zap.Float64("overall_score", breakdown.OverallScore),
			)

			if r.onProgress != nil {
				progressMu.Lock()
				completed++
				event := ProgressEvent{
					CandidateID:  cv.CandidateID,
					Completed:    completed,
					Total:        len(req.Candidates),
					OverallScore: breakdown.OverallScore,
				}
				r.onProgress(event)
				progressMu.Unlock()
			}
			return nil
		})
	}

	// Workers never return errors; Wait is only the fan-in barrier.
	_ = g.Wait()

	result := &types.MatchResult{
		RunID:             runID,
		JDJobTitle:        req.JD.JobTitle.Text,
		JDYears:           req.JD.YearsRequired,
		NormalizedWeights: weights,
		Candidates:        make([]types.CandidateBreakdown, 0, len(req.Candidates)),
	}
	for i := range slots {
		if slots[i] != nil {
			result.Candidates = append(result.Candidates, *slots[i])
		}
		if failed[i] != nil {
			result.Failed = append(result.Failed, *failed[i])
		}
	}

	// Stable: equal overall scores keep submission order.
	sort.SliceStable(result.Candidates, func(a, b int) bool {
		return result.Candidates[a].OverallScore > result.Candidates[b].OverallScore
	})

	log.Info("ranking complete",
		zap.Int("ranked", len(result.Candidates)),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}

// scoreCandidate builds one candidate's breakdown: category matching for
// skills and responsibilities, a single-pair title similarity, the experience
// comparison, and the weighted aggregate. A panic while scoring is recovered
// and surfaced as a ScoringError so one corrupt candidate cannot take down
// the batch.
func (r *Ranker) scoreCandidate(jd *types.JDBundle, cv *types.CVBundle, weights types.Weights, topK int) (breakdown *types.CandidateBreakdown, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			breakdown = nil
			err = &ScoringError{
				CandidateID: cv.CandidateID,
				Message:     fmt.Sprintf("unexpected panic while scoring: %v", rec),
			}
		}
	}()

	if len(cv.Skills) == 0 && len(cv.Responsibilities) == 0 && len(cv.JobTitle.Embedding) == 0 {
		return nil, &ScoringError{
			CandidateID: cv.CandidateID,
			Message:     "candidate has no scorable evidence",
		}
	}

	skills := matching.MatchCategory(jd.Skills, cv.Skills, matching.Options{
		Threshold:       r.cfg.SkillsThreshold,
		TopAlternatives: topK,
	})
	responsibilities := matching.MatchCategory(jd.Responsibilities, cv.Responsibilities, matching.Options{
		Threshold:       r.cfg.ResponsibilitiesThreshold,
		TopAlternatives: topK,
	})

	// Exactly one title on each side, so this is a single similarity call
	// rather than an assignment problem. A mismatched title embedding
	// degrades to 0 like any other malformed pair.
	titleScore, titleErr := similarity.Cosine(jd.JobTitle.Embedding, cv.JobTitle.Embedding)
	if titleErr != nil {
		titleScore = 0
	}

	yearsScore := scoring.CompareYears(jd.YearsRequired, cv.YearsExperience)

	skillsScore := skills.MatchPercentage / 100
	responsibilitiesScore := responsibilities.MatchPercentage / 100
	overall := scoring.Aggregate(skillsScore, responsibilitiesScore, titleScore, yearsScore, weights)

	return &types.CandidateBreakdown{
		CandidateID:           cv.CandidateID,
		CandidateName:         cv.CandidateName,
		SkillsScore:           skillsScore,
		ResponsibilitiesScore: responsibilitiesScore,
		JobTitleScore:         titleScore,
		YearsScore:            yearsScore,
		OverallScore:          overall,
		Skills:                skills,
		Responsibilities:      responsibilities,
		Notes:                 buildNotes(skills, responsibilities, titleScore, yearsScore),
	}, nil
}
