package cmd

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/ai/gemini"
	"github.com/recruiterlab/talentmatch/internal/extract"
	"github.com/recruiterlab/talentmatch/internal/logger"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Extract a structured candidate profile from a resume file",
	Long: "Analyze reads a PDF, DOCX or plain-text resume, extracts its text " +
		"and asks Gemini to produce a candidate profile record in the dataset " +
		"format, printed as JSON.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runAnalyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("reading resume file", zap.Error(err))
	}

	text, err := extract.Text(filepath.Base(path), data)
	if err != nil {
		logger.Fatal("extracting resume text", zap.Error(err))
	}

	logger.Info("extracted resume text",
		zap.String("file", path),
		zap.Int("characters", len(text)),
	)

	generator, err := requireGenerator(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the profile extractor", zap.Error(err))
	}

	extractor := gemini.NewProfileExtractor(generator, logger, maxLogLength(config.AI))

	candidate, err := extractor.Extract(ctx, text)
	if err != nil {
		logger.Fatal("extracting the profile", zap.Error(err))
	}

	printJSON(candidate)
}
