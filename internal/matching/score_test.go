package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recruiterlab/talentmatch/internal/corpus"
)

func validRequest(t *testing.T, req *Request) *Request {
	t.Helper()
	require.NoError(t, req.Validate())
	return req
}

func TestScoreFullMatch(t *testing.T) {
	req := validRequest(t, &Request{
		RequiredSkills:  []string{"Python", "Machine Learning"},
		PreferredSkills: []string{"TensorFlow"},
	})

	candidate := &corpus.Candidate{
		ID:     "c1",
		Name:   "Ada",
		Skills: []string{"python", "machine learning", "tensorflow"},
	}

	scorer, err := NewScorer(Weights{})
	require.NoError(t, err)

	breakdown := scorer.Score(candidate, req)

	assert.Equal(t, 1.0, breakdown.RequiredMatchRatio)
	assert.Equal(t, 1.0, breakdown.PreferredMatchRatio)
	assert.Equal(t, 1.0, breakdown.ExperienceScore)
	assert.Equal(t, 0.5, breakdown.SeniorityScore)

	gap := analyzeGaps(candidate, req)
	assert.Empty(t, gap.MissingRequired)
	assert.Empty(t, gap.MissingPreferred)
	assert.True(t, gap.Empty())
}

func TestScoreNoMatchingSkills(t *testing.T) {
	req := validRequest(t, &Request{RequiredSkills: []string{"Python"}})

	candidate := &corpus.Candidate{ID: "c1", Name: "Bob", Skills: []string{"java"}}

	scorer, err := NewScorer(Weights{})
	require.NoError(t, err)

	breakdown := scorer.Score(candidate, req)
	assert.Equal(t, 0.0, breakdown.RequiredMatchRatio)
	assert.Greater(t, breakdown.TotalScore, 0.0, "unmatched skills still leave a defined low score")

	gap := analyzeGaps(candidate, req)
	assert.Equal(t, []string{"python"}, gap.MissingRequired)
}

func TestScoreBounds(t *testing.T) {
	scorer, err := NewScorer(Weights{})
	require.NoError(t, err)

	candidates := []*corpus.Candidate{
		{ID: "a", Name: "a", Skills: []string{"go"}},
		{ID: "b", Name: "b", Skills: []string{"go", "python", "rust"}, ExperienceYears: 30, Seniority: corpus.SenioritySenior},
		{ID: "c", Name: "c", Skills: []string{"cobol"}, ExperienceYears: 0.5},
	}

	req := validRequest(t, &Request{
		RequiredSkills:  []string{"go", "python"},
		PreferredSkills: []string{"rust"},
		Seniority:       "senior",
		Experience:      "5+",
	})

	for _, candidate := range candidates {
		breakdown := scorer.Score(candidate, req)
		assert.GreaterOrEqual(t, breakdown.TotalScore, 0.0)
		assert.LessOrEqual(t, breakdown.TotalScore, 1.0)
	}
}

func TestScoreMonotonicInSkills(t *testing.T) {
	scorer, err := NewScorer(Weights{})
	require.NoError(t, err)

	req := validRequest(t, &Request{
		RequiredSkills:  []string{"go", "python", "kubernetes"},
		PreferredSkills: []string{"terraform"},
	})

	base := &corpus.Candidate{ID: "c", Name: "c", Skills: []string{"go"}}
	score := scorer.Score(base, req).TotalScore

	for _, extra := range []string{"python", "kubernetes", "terraform"} {
		grown := &corpus.Candidate{ID: "c", Name: "c", Skills: append([]string{extra}, base.Skills...)}
		grownScore := scorer.Score(grown, req).TotalScore
		assert.GreaterOrEqual(t, grownScore, score, "adding matching skill %q must not decrease the score", extra)
		base = grown
		score = grownScore
	}
}

func TestScoreSeniorityDimension(t *testing.T) {
	scorer, err := NewScorer(Weights{})
	require.NoError(t, err)

	exact := validRequest(t, &Request{RequiredSkills: []string{"go"}, Seniority: "senior"})
	unset := validRequest(t, &Request{RequiredSkills: []string{"go"}})

	senior := &corpus.Candidate{ID: "s", Name: "s", Skills: []string{"go"}, Seniority: corpus.SenioritySenior}
	junior := &corpus.Candidate{ID: "j", Name: "j", Skills: []string{"go"}, Seniority: corpus.SeniorityJunior}

	assert.Equal(t, 1.0, scorer.Score(senior, exact).SeniorityScore)
	assert.Equal(t, 0.0, scorer.Score(junior, exact).SeniorityScore)
	assert.Equal(t, 0.5, scorer.Score(senior, unset).SeniorityScore)
	assert.Equal(t, 0.5, scorer.Score(junior, unset).SeniorityScore)
}

func TestScoreExperienceCapped(t *testing.T) {
	scorer, err := NewScorer(Weights{})
	require.NoError(t, err)

	req := validRequest(t, &Request{RequiredSkills: []string{"go"}, Experience: "5"})

	halfway := &corpus.Candidate{ID: "a", Name: "a", Skills: []string{"go"}, ExperienceYears: 2.5}
	exact := &corpus.Candidate{ID: "b", Name: "b", Skills: []string{"go"}, ExperienceYears: 5}
	veteran := &corpus.Candidate{ID: "c", Name: "c", Skills: []string{"go"}, ExperienceYears: 25}

	assert.InDelta(t, 0.5, scorer.Score(halfway, req).ExperienceScore, 1e-9)
	assert.Equal(t, 1.0, scorer.Score(exact, req).ExperienceScore)
	assert.Equal(t, 1.0, scorer.Score(veteran, req).ExperienceScore, "experience beyond the bar earns no extra credit")
}

func TestScoreWeightsRenormalized(t *testing.T) {
	// Scaled weights behave exactly like the defaults.
	scaled, err := NewScorer(Weights{Required: 5, Preferred: 2, Experience: 2, Seniority: 1})
	require.NoError(t, err)
	defaults, err := NewScorer(DefaultWeights())
	require.NoError(t, err)

	req := validRequest(t, &Request{
		RequiredSkills:  []string{"go", "python"},
		PreferredSkills: []string{"rust"},
		Seniority:       "senior",
	})
	candidate := &corpus.Candidate{
		ID: "c", Name: "c",
		Skills:          []string{"go", "rust"},
		ExperienceYears: 4,
		Seniority:       corpus.SenioritySenior,
	}

	assert.InDelta(t,
		defaults.Score(candidate, req).TotalScore,
		scaled.Score(candidate, req).TotalScore,
		1e-9,
	)
}

func TestScorePreferredWeightRedistributed(t *testing.T) {
	scorer, err := NewScorer(Weights{})
	require.NoError(t, err)

	// Without preferred skills the remaining dimensions carry full weight,
	// so a perfect candidate still reaches a 1.0 total.
	req := validRequest(t, &Request{RequiredSkills: []string{"go"}, Seniority: "senior"})
	candidate := &corpus.Candidate{
		ID: "c", Name: "c",
		Skills:    []string{"go"},
		Seniority: corpus.SenioritySenior,
	}

	breakdown := scorer.Score(candidate, req)
	assert.Equal(t, 0.0, breakdown.PreferredMatchRatio)
	assert.InDelta(t, 1.0, breakdown.TotalScore, 1e-9)
}

func TestNewScorerRejectsNegativeWeights(t *testing.T) {
	_, err := NewScorer(Weights{Required: -1, Preferred: 1, Experience: 1, Seniority: 1})
	assert.Error(t, err)
}

func TestGapUsesSameNormalizationAsScore(t *testing.T) {
	scorer, err := NewScorer(Weights{})
	require.NoError(t, err)

	req := validRequest(t, &Request{RequiredSkills: []string{"  PyTHON ", "Go"}})
	candidate := &corpus.Candidate{ID: "c", Name: "c", Skills: []string{"PYTHON"}}

	breakdown := scorer.Score(candidate, req)
	gap := analyzeGaps(candidate, req)

	assert.InDelta(t, 0.5, breakdown.RequiredMatchRatio, 1e-9)
	assert.Equal(t, []string{"go"}, gap.MissingRequired, "a matched skill must never appear as missing")
}
