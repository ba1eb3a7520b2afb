package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/logger"
	"github.com/recruiterlab/talentmatch/internal/matching"
)

//go:embed outreach_prompt.md
var outreachPromptTemplate string

// Outreach composes personalized first-contact messages for scored
// candidates.
type Outreach struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewOutreach(generator contentGenerator, log *zap.Logger, maxLogLength int) *Outreach {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Outreach{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

func (o *Outreach) Compose(ctx context.Context, requirement string, scored *matching.ScoredCandidate) (string, error) {
	if scored == nil || scored.Candidate == nil {
		return "", fmt.Errorf("scored candidate is required")
	}

	payload, err := json.MarshalIndent(map[string]any{
		"name":             scored.Candidate.Name,
		"seniority":        scored.Candidate.Seniority,
		"skills":           scored.Candidate.Skills,
		"experience_years": scored.Candidate.ExperienceYears,
		"total_score":      scored.Score.TotalScore,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidate payload: %w", err)
	}

	prompt := strings.ReplaceAll(outreachPromptTemplate, "{{REQUIREMENT}}", strings.TrimSpace(requirement))
	prompt = strings.ReplaceAll(prompt, "{{CANDIDATE_JSON}}", string(payload))

	raw, err := o.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	o.logger.Debug("gemini outreach response",
		zap.String("candidate_id", scored.Candidate.ID),
		zap.String("response_preview", logger.TruncateForLog(raw, o.maxLogLen)),
	)

	message := strings.TrimSpace(raw)
	if message == "" {
		return "", fmt.Errorf("gemini returned an empty message")
	}

	return message, nil
}
