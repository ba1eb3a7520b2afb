package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/ai"
	"github.com/recruiterlab/talentmatch/internal/logger"
)

//go:embed compare_prompt.md
var comparePromptTemplate string

// Each CV is capped before prompting so two long resumes cannot blow the
// model's context window.
const maxCVRunes = 8000

// Comparer weighs two resumes against recruiter criteria using Gemini and
// recommends the better fit.
type Comparer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewComparer(generator contentGenerator, log *zap.Logger, maxLogLength int) *Comparer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Comparer{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

func (c *Comparer) Compare(ctx context.Context, criteria, firstCV, secondCV string) (*ai.Comparison, error) {
	criteria = strings.TrimSpace(criteria)
	if criteria == "" {
		return nil, fmt.Errorf("criteria must not be empty")
	}
	firstCV = strings.TrimSpace(firstCV)
	secondCV = strings.TrimSpace(secondCV)
	if firstCV == "" || secondCV == "" {
		return nil, fmt.Errorf("both cv texts must not be empty")
	}

	prompt := strings.ReplaceAll(comparePromptTemplate, "{{CRITERIA}}", criteria)
	prompt = strings.ReplaceAll(prompt, "{{CV1_TEXT}}", capRunes(firstCV, maxCVRunes))
	prompt = strings.ReplaceAll(prompt, "{{CV2_TEXT}}", capRunes(secondCV, maxCVRunes))

	c.logger.Debug("gemini cv comparison request",
		zap.String("model", c.generator.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("criteria_preview", logger.TruncateForLog(criteria, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gemini cv comparison response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, c.maxLogLen)),
	)

	data, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	return decodeComparison(data)
}

// decodeComparison maps the loose LLM payload onto a Comparison, tolerating
// best_candidate arriving as a string.
func decodeComparison(data map[string]any) (*ai.Comparison, error) {
	var comparison ai.Comparison
	cfg := &mapstructure.DecoderConfig{
		Result:           &comparison,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode comparison: %w", err)
	}

	if comparison.BestCandidate != 1 && comparison.BestCandidate != 2 {
		return nil, fmt.Errorf("comparison did not pick a candidate: got %d", comparison.BestCandidate)
	}

	return &comparison, nil
}

func capRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
