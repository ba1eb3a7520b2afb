package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/corpus"
	"github.com/recruiterlab/talentmatch/internal/logger"
)

//go:embed profile_prompt.md
var profilePromptTemplate string

// ProfileExtractor turns raw resume text into a structured candidate
// profile using Gemini. It receives plain text only; PDF and DOCX
// extraction happens before this point.
type ProfileExtractor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewProfileExtractor(generator contentGenerator, log *zap.Logger, maxLogLength int) *ProfileExtractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &ProfileExtractor{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

func (e *ProfileExtractor) Extract(ctx context.Context, resumeText string) (*corpus.Candidate, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, fmt.Errorf("resume text must not be empty")
	}

	prompt := strings.ReplaceAll(profilePromptTemplate, "{{RESUME_TEXT}}", resumeText)

	e.logger.Debug("gemini profile extract request",
		zap.String("model", e.generator.Model()),
		zap.Int("resume_length", utf8.RuneCountInString(resumeText)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("gemini profile extract response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
	)

	return decodeCandidate(raw)
}

// decodeCandidate reuses the corpus record decoding so dataset quirks
// (range experience strings, location arrays) are tolerated in model
// output as well.
func decodeCandidate(raw string) (*corpus.Candidate, error) {
	candidate, err := corpus.UnmarshalCandidate([]byte(extractJSON(raw)))
	if err != nil {
		return nil, fmt.Errorf("parse extracted profile: %w", err)
	}

	candidate.ID = uuid.NewString()
	return candidate, nil
}
