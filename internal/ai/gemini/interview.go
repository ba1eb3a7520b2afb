package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/logger"
	"github.com/recruiterlab/talentmatch/internal/matching"
)

//go:embed interview_prompt.md
var interviewPromptTemplate string

// Interviewer generates interview questions that probe a candidate's
// skill gaps against the job requirement.
type Interviewer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewInterviewer(generator contentGenerator, log *zap.Logger, maxLogLength int) *Interviewer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Interviewer{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

func (i *Interviewer) Questions(ctx context.Context, requirement string, scored *matching.ScoredCandidate) ([]string, error) {
	if scored == nil || scored.Candidate == nil {
		return nil, fmt.Errorf("scored candidate is required")
	}

	payload, err := json.MarshalIndent(map[string]any{
		"name":              scored.Candidate.Name,
		"seniority":         scored.Candidate.Seniority,
		"skills":            scored.Candidate.Skills,
		"experience_years":  scored.Candidate.ExperienceYears,
		"missing_required":  scored.Gap.MissingRequired,
		"missing_preferred": scored.Gap.MissingPreferred,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal candidate payload: %w", err)
	}

	prompt := strings.ReplaceAll(interviewPromptTemplate, "{{REQUIREMENT}}", strings.TrimSpace(requirement))
	prompt = strings.ReplaceAll(prompt, "{{CANDIDATE_JSON}}", string(payload))

	i.logger.Debug("gemini interview questions request",
		zap.String("model", i.generator.Model()),
		zap.String("candidate_id", scored.Candidate.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	)

	raw, err := i.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	i.logger.Debug("gemini interview questions response",
		zap.String("candidate_id", scored.Candidate.ID),
		zap.String("response_preview", logger.TruncateForLog(raw, i.maxLogLen)),
	)

	questions, err := decodeStringList(raw)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("gemini returned no questions")
	}

	return questions, nil
}
