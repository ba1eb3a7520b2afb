package matching

import (
	"strings"

	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/corpus"
)

// Filter represents a single hard pass/fail constraint applied to the
// candidate pool before scoring. A candidate failing any active filter is
// dropped entirely and never receives a score.
type Filter interface {
	Name() string
	IsEnabled() bool
	Apply(pool []*corpus.Candidate) ([]*corpus.Candidate, Step)
}

// Step describes the result of executing a filter step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// filtersFor builds the filter chain for a validated request. Filters with
// no criterion report themselves disabled and are skipped.
func filtersFor(req *Request) []Filter {
	return []Filter{
		&seniorityFilter{enabled: req.hasSeniority, want: req.seniority},
		&locationFilter{want: req.Location},
		&employmentFilter{enabled: req.hasEmployment, want: req.employment},
		&experienceFilter{minYears: req.minExperience},
	}
}

// runFilters executes the filters sequentially, logging per-step drop
// statistics. An empty result is a valid outcome, not an error.
func runFilters(logger *zap.Logger, filters []Filter, pool []*corpus.Candidate) []*corpus.Candidate {
	for _, step := range filters {
		if !step.IsEnabled() {
			logger.Debug("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info := step.Apply(pool)
		logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)
		pool = next
	}
	return pool
}

func retain(pool []*corpus.Candidate, keep func(*corpus.Candidate) bool) ([]*corpus.Candidate, Step) {
	initial := len(pool)
	kept := make([]*corpus.Candidate, 0, initial)
	for _, candidate := range pool {
		if keep(candidate) {
			kept = append(kept, candidate)
		}
	}
	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}
}

type seniorityFilter struct {
	enabled bool
	want    corpus.Seniority
}

func (f *seniorityFilter) Name() string { return "seniority" }

func (f *seniorityFilter) IsEnabled() bool { return f.enabled }

func (f *seniorityFilter) Apply(pool []*corpus.Candidate) ([]*corpus.Candidate, Step) {
	return retain(pool, func(c *corpus.Candidate) bool {
		return c.Seniority == f.want
	})
}

type locationFilter struct {
	want string
}

func (f *locationFilter) Name() string { return "location" }

func (f *locationFilter) IsEnabled() bool { return strings.TrimSpace(f.want) != "" }

func (f *locationFilter) Apply(pool []*corpus.Candidate) ([]*corpus.Candidate, Step) {
	// Exact case-insensitive match. No substring or fuzzy matching.
	return retain(pool, func(c *corpus.Candidate) bool {
		return strings.EqualFold(strings.TrimSpace(c.Location), strings.TrimSpace(f.want))
	})
}

type employmentFilter struct {
	enabled bool
	want    corpus.EmploymentType
}

func (f *employmentFilter) Name() string { return "employment_type" }

func (f *employmentFilter) IsEnabled() bool { return f.enabled }

func (f *employmentFilter) Apply(pool []*corpus.Candidate) ([]*corpus.Candidate, Step) {
	return retain(pool, func(c *corpus.Candidate) bool {
		return c.EmploymentType == f.want
	})
}

type experienceFilter struct {
	minYears float64
}

func (f *experienceFilter) Name() string { return "min_experience" }

func (f *experienceFilter) IsEnabled() bool { return f.minYears > 0 }

func (f *experienceFilter) Apply(pool []*corpus.Candidate) ([]*corpus.Candidate, Step) {
	return retain(pool, func(c *corpus.Candidate) bool {
		return c.ExperienceYears >= f.minYears
	})
}
