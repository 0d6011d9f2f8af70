// Package matchcore matches candidate resumes against a job description and
// produces an explainable, per-item ranked score: the optimal one-to-one
// assignment between JD requirements and CV evidence, a weighted overall
// score per candidate, and the ranked alternatives behind each pairing.
//
// The engine owns only similarity, assignment, aggregation, and explanation
// logic. Text extraction, embedding generation, and persistence are upstream
// collaborators; callers supply already-embedded text items.
package matchcore

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/talentmatch/matchcore/internal/config"
	"github.com/talentmatch/matchcore/internal/observability"
	"github.com/talentmatch/matchcore/internal/ranking"
	"github.com/talentmatch/matchcore/internal/schemas"
	"github.com/talentmatch/matchcore/internal/types"
)

// Re-exported request/result shapes. These are the closed boundary types;
// anything outside them is rejected at ingestion.
type (
	TextItem           = types.TextItem
	CategorySet        = types.CategorySet
	JDBundle           = types.JDBundle
	CVBundle           = types.CVBundle
	Weights            = types.Weights
	WeightsInput       = types.WeightsInput
	MatchRequest       = types.MatchRequest
	MatchResult        = types.MatchResult
	CandidateBreakdown = types.CandidateBreakdown
	CategoryResult     = types.CategoryResult
	FailedCandidate    = types.FailedCandidate

	Config           = config.Config
	ProgressEvent    = ranking.ProgressEvent
	ProgressCallback = ranking.ProgressCallback
	Printer          = observability.Printer
)

// DefaultConfig returns the documented default thresholds, alternatives
// count, and concurrency limit.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig loads engine configuration from a JSON file on top of the
// defaults.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// DefaultWeights returns the baseline weight split
// (skills 80, responsibilities 15, job title 2.5, experience 2.5).
func DefaultWeights() Weights {
	return types.DefaultWeights()
}

// ValidateRequestDocument validates a raw JSON match-request document against
// the engine's closed request schema before decoding.
func ValidateRequestDocument(document []byte) error {
	return schemas.ValidateMatchRequest(document)
}

// NewPrinter creates a printer that renders match results human-readably.
func NewPrinter(out io.Writer) *Printer {
	return observability.NewPrinter(out)
}

// Engine scores candidate CVs against one JD. Safe for concurrent use across
// requests.
type Engine struct {
	ranker *ranking.Ranker
}

// New creates an Engine. A nil logger disables logging.
func New(cfg Config, log *zap.Logger) *Engine {
	return &Engine{ranker: ranking.New(cfg, log)}
}

// WithProgress registers a callback invoked as candidates finish scoring.
func (e *Engine) WithProgress(cb ProgressCallback) *Engine {
	e.ranker.WithProgress(cb)
	return e
}

// Match scores every candidate in the request against the JD and returns
// them ranked descending by overall score. See ranking.Ranker.Rank for the
// failure isolation and cancellation semantics.
func (e *Engine) Match(ctx context.Context, req *MatchRequest) (*MatchResult, error) {
	return e.ranker.Rank(ctx, req)
}
