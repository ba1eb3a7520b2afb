package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/logger"
	"github.com/recruiterlab/talentmatch/internal/matching"
)

//go:embed query_prompt.md
var queryPromptTemplate string

// QueryParser interprets a free-text recruiter query into a structured
// match request using Gemini.
type QueryParser struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

const defaultMaxLogLength = 200

func NewQueryParser(generator contentGenerator, log *zap.Logger, maxLogLength int) *QueryParser {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &QueryParser{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Parse sends the query to the model and decodes the structured reply.
// The resulting request is not validated here; the matching pipeline
// applies the same validation it applies to any request.
func (p *QueryParser) Parse(ctx context.Context, query string) (*matching.Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	prompt := strings.ReplaceAll(queryPromptTemplate, "{{QUERY}}", query)

	p.logger.Debug("gemini query parse request",
		zap.String("model", p.generator.Model()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("query_preview", logger.TruncateForLog(query, p.maxLogLen)),
	)

	raw, err := p.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("gemini query parse response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, p.maxLogLen)),
	)

	data, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	return decodeRequest(data)
}

// decodeRequest maps the loose LLM payload onto a Request. Weak typing
// tolerates numbers arriving as strings and vice versa.
func decodeRequest(data map[string]any) (*matching.Request, error) {
	var req matching.Request
	cfg := &mapstructure.DecoderConfig{
		Result:           &req,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode parsed query: %w", err)
	}
	return &req, nil
}
