package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/ai/gemini"
	"github.com/recruiterlab/talentmatch/internal/corpus"
	"github.com/recruiterlab/talentmatch/internal/matching"
	"github.com/recruiterlab/talentmatch/internal/secrets"
)

// loadPipeline builds the corpus and the matching pipeline from config.
func loadPipeline(config *Config, logger *zap.Logger) (*corpus.Corpus, *matching.Pipeline, error) {
	dataset := viper.GetString("dataset")
	if config != nil && config.Dataset != "" {
		dataset = config.Dataset
	}

	pool, err := corpus.Load(dataset, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("loading candidate dataset: %w", err)
	}

	logger.Info("loaded candidate dataset",
		zap.String("path", dataset),
		zap.Int("candidates", pool.Len()),
	)

	weights := matching.DefaultWeights()
	if config != nil && config.Weights != nil {
		weights = *config.Weights
	}

	pipeline, err := matching.NewPipeline(pool, weights, logger)
	if err != nil {
		return nil, nil, err
	}

	return pool, pipeline, nil
}

// newGenerator builds the Gemini content generator when AI features are
// enabled, or returns nil when they are not configured.
func newGenerator(ctx context.Context, config *AIConfig, logger *zap.Logger) (*gemini.Generator, error) {
	if config == nil || !config.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.Provider)
	}

	geminiCfg := config.Gemini
	if geminiCfg == nil {
		geminiCfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: firstNonEmpty(geminiCfg.APIKey, viper.GetString("ai.gemini.api-key")),
		File:  firstNonEmpty(geminiCfg.APIKeyFile, viper.GetString("ai.gemini.api-key-file")),
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", geminiCfg.Model),
	)

	return gemini.NewGenerator(ctx, apiKey, geminiCfg.Model, geminiCfg.MaxRetries, genLogger)
}

func maxLogLength(config *AIConfig) int {
	if config != nil && config.Gemini != nil {
		return config.Gemini.MaxLogLength
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
