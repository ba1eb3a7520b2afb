package cmd

import (
	"context"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/ai/gemini"
	"github.com/recruiterlab/talentmatch/internal/logger"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search candidates with a natural-language query",
	Long: "Search interprets a free-text query (e.g. \"senior python dev with " +
		"kubernetes, at least 5 years\") into a structured requirement via " +
		"Gemini, then runs the standard matching pipeline on it.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, query string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	generator, err := requireGenerator(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the query parser", zap.Error(err))
	}

	parser := gemini.NewQueryParser(generator, logger, maxLogLength(config.AI))

	logger.Info("interpreting query", zap.String("query", query))

	req, err := parser.Parse(ctx, query)
	if err != nil {
		logger.Fatal("interpreting the query", zap.Error(err))
	}

	_, pipeline, err := loadPipeline(config, logger)
	if err != nil {
		logger.Fatal("preparing the pipeline", zap.Error(err))
	}

	result, err := pipeline.Match(ctx, req)
	if err != nil {
		logger.Fatal("matching failed",
			zap.Error(err),
			zap.Any("parsed_request", req),
		)
	}

	printJSON(result)
}
