package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/corpus"
)

func testPipeline(t *testing.T, candidates []*corpus.Candidate) *Pipeline {
	t.Helper()
	pipeline, err := NewPipeline(corpus.FromCandidates(candidates), Weights{}, zap.NewNop())
	require.NoError(t, err)
	return pipeline
}

func pipelinePool() []*corpus.Candidate {
	return []*corpus.Candidate{
		{ID: "1", Name: "Full Match", Skills: []string{"go", "kubernetes"}, ExperienceYears: 6, Seniority: corpus.SenioritySenior},
		{ID: "2", Name: "Partial Match", Skills: []string{"go"}, ExperienceYears: 3, Seniority: corpus.SeniorityMid},
		{ID: "3", Name: "No Match", Skills: []string{"cobol"}, ExperienceYears: 20, Seniority: corpus.SenioritySenior},
		{ID: "4", Name: "Junior Match", Skills: []string{"go", "kubernetes"}, ExperienceYears: 1, Seniority: corpus.SeniorityJunior},
	}
}

func TestPipelineMatch(t *testing.T) {
	pipeline := testPipeline(t, pipelinePool())

	result, err := pipeline.Match(context.Background(), &Request{
		RequiredSkills:  []string{"go"},
		PreferredSkills: []string{"kubernetes"},
	})
	require.NoError(t, err)

	require.Len(t, result.Matches, 4)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, "1", result.Matches[0].Candidate.ID)

	for i := 1; i < len(result.Matches); i++ {
		assert.GreaterOrEqual(t,
			result.Matches[i-1].Score.TotalScore,
			result.Matches[i].Score.TotalScore,
			"matches must be ordered by descending score",
		)
	}
}

func TestPipelineMatchAppliesFilters(t *testing.T) {
	pipeline := testPipeline(t, pipelinePool())

	result, err := pipeline.Match(context.Background(), &Request{
		RequiredSkills: []string{"go"},
		Seniority:      "senior",
	})
	require.NoError(t, err)

	require.Len(t, result.Matches, 2)
	for _, match := range result.Matches {
		assert.Equal(t, corpus.SenioritySenior, match.Candidate.Seniority)
	}
}

func TestPipelineMatchTopN(t *testing.T) {
	pipeline := testPipeline(t, pipelinePool())

	result, err := pipeline.Match(context.Background(), &Request{
		RequiredSkills: []string{"go"},
		TopN:           2,
	})
	require.NoError(t, err)

	assert.Len(t, result.Matches, 2)
	assert.Equal(t, 2, result.Total)
}

func TestPipelineMatchDeterministic(t *testing.T) {
	pool := make([]*corpus.Candidate, 0, 60)
	for i := 0; i < 60; i++ {
		pool = append(pool, &corpus.Candidate{
			ID:              string(rune('a'+i%26)) + string(rune('a'+i/26)),
			Name:            "clone",
			Skills:          []string{"go"},
			ExperienceYears: float64(i % 7),
		})
	}
	pipeline := testPipeline(t, pool)

	req := func() *Request {
		return &Request{RequiredSkills: []string{"go"}, TopN: 30}
	}

	first, err := pipeline.Match(context.Background(), req())
	require.NoError(t, err)
	second, err := pipeline.Match(context.Background(), req())
	require.NoError(t, err)

	require.Equal(t, len(first.Matches), len(second.Matches))
	for i := range first.Matches {
		assert.Equal(t, first.Matches[i].Candidate.ID, second.Matches[i].Candidate.ID)
		assert.Equal(t, first.Matches[i].Score, second.Matches[i].Score)
	}
}

func TestPipelineMatchEmptyCorpus(t *testing.T) {
	pipeline := testPipeline(t, nil)

	result, err := pipeline.Match(context.Background(), &Request{RequiredSkills: []string{"go"}})
	require.NoError(t, err)

	assert.Empty(t, result.Matches)
	assert.Equal(t, 0, result.Total)
}

func TestPipelineMatchInvalidRequest(t *testing.T) {
	pipeline := testPipeline(t, pipelinePool())

	_, err := pipeline.Match(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrNoRequiredSkills)

	_, err = pipeline.Match(context.Background(), nil)
	assert.Error(t, err)
}

func TestPipelineDoesNotMutateCorpus(t *testing.T) {
	pool := pipelinePool()
	pipeline := testPipeline(t, pool)

	_, err := pipeline.Match(context.Background(), &Request{
		RequiredSkills: []string{"go"},
		Seniority:      "senior",
		TopN:           1,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, pipeline.corpus.Len())
}

func TestNewPipelineRequiresCorpus(t *testing.T) {
	_, err := NewPipeline(nil, Weights{}, zap.NewNop())
	assert.Error(t, err)
}
