package matching

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/recruiterlab/talentmatch/internal/corpus"
)

// ScoredCandidate ties a candidate to its score breakdown and skill gap.
// Instances live only for the duration of one matching run.
type ScoredCandidate struct {
	Candidate *corpus.Candidate `json:"candidate"`
	Score     ScoreBreakdown    `json:"score"`
	Gap       SkillGap          `json:"skill_gap"`
}

// Result is the outcome of one matching run. Criteria echoes the request
// back for traceability.
type Result struct {
	RunID    string             `json:"run_id"`
	Matches  []*ScoredCandidate `json:"matches"`
	Total    int                `json:"total"`
	Criteria *Request           `json:"criteria"`
}

// Pipeline wires the corpus, filters, scorer and ranker together. It holds
// no per-run state and is safe for concurrent use.
type Pipeline struct {
	corpus  *corpus.Corpus
	scorer  *Scorer
	logger  *zap.Logger
	workers int
}

// NewPipeline builds a pipeline over the given corpus. Zero-value weights
// select the default policy.
func NewPipeline(pool *corpus.Corpus, weights Weights, logger *zap.Logger) (*Pipeline, error) {
	if pool == nil {
		return nil, fmt.Errorf("corpus is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	scorer, err := NewScorer(weights)
	if err != nil {
		return nil, fmt.Errorf("building scorer: %w", err)
	}

	return &Pipeline{
		corpus:  pool,
		scorer:  scorer,
		logger:  logger,
		workers: runtime.NumCPU(),
	}, nil
}

// Match validates the request and runs filter, score and rank stages.
// Scoring fans out across workers; each candidate depends only on itself
// and the read-only request, so no locking is needed. Results are
// collected by index before ranking, keeping output deterministic.
func (p *Pipeline) Match(ctx context.Context, req *Request) (*Result, error) {
	if req == nil {
		return nil, fmt.Errorf("request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pool := runFilters(p.logger, filtersFor(req), p.corpus.Candidates())
	p.logger.Info("filtering finished",
		zap.Int("corpus", p.corpus.Len()),
		zap.Int("left", len(pool)),
	)

	scored := make([]*ScoredCandidate, len(pool))
	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(p.workers)
	for idx, candidate := range pool {
		group.Go(func() error {
			scored[idx] = &ScoredCandidate{
				Candidate: candidate,
				Score:     p.scorer.Score(candidate, req),
				Gap:       analyzeGaps(candidate, req),
			}
			return nil
		})
	}
	// Scoring never fails per candidate; the group is a join barrier and a
	// worker limit.
	_ = group.Wait()

	matches := rankCandidates(scored, req.TopN)

	result := &Result{
		RunID:    uuid.NewString(),
		Matches:  matches,
		Total:    len(matches),
		Criteria: req,
	}

	p.logger.Info("matching finished",
		zap.String("run_id", result.RunID),
		zap.Int("scored", len(scored)),
		zap.Int("returned", result.Total),
	)

	return result, nil
}
