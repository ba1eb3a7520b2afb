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

var compareCmd = &cobra.Command{
	Use:   "compare <first-cv> <second-cv>",
	Short: "Compare two resumes against recruiter criteria",
	Long: "Compare reads two PDF, DOCX or plain-text resumes and asks Gemini " +
		"which candidate better fits the criteria, printing a structured " +
		"recommendation with strengths and red flags per candidate.",
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCompare(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringP("criteria", "c", "", "description of the ideal candidate (default: match.requirement from config)")
}

func runCompare(cmd *cobra.Command, firstPath, secondPath string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	criteria, _ := cmd.Flags().GetString("criteria")
	if criteria == "" {
		criteria = requirementText(config)
	}

	firstText, err := resumeText(firstPath)
	if err != nil {
		logger.Fatal("reading the first resume", zap.Error(err))
	}
	secondText, err := resumeText(secondPath)
	if err != nil {
		logger.Fatal("reading the second resume", zap.Error(err))
	}

	generator, err := requireGenerator(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the comparer", zap.Error(err))
	}

	comparer := gemini.NewComparer(generator, logger, maxLogLength(config.AI))

	comparison, err := comparer.Compare(ctx, criteria, firstText, secondText)
	if err != nil {
		logger.Fatal("comparing the resumes", zap.Error(err))
	}

	printJSON(comparison)
}

func resumeText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return extract.Text(filepath.Base(path), data)
}
