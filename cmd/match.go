package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/ai"
	"github.com/recruiterlab/talentmatch/internal/ai/gemini"
	"github.com/recruiterlab/talentmatch/internal/logger"
	"github.com/recruiterlab/talentmatch/internal/matching"
)

const (
	PromptShowGaps   = "Show skill gaps"
	PromptInterview  = "Generate interview questions"
	PromptOutreach   = "Generate outreach message"
	PromptDumpToFile = "Dump matches to file"
	PromptExit       = "Exit"
	PromptBack       = "back"
)

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowGaps, PromptInterview, PromptOutreach, PromptDumpToFile, PromptExit},
}

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Filter and rank the candidate pool against a job requirement",
	Run: func(cmd *cobra.Command, _ []string) {
		runMatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringSliceP("required", "r", nil, "required skills (repeatable or comma-separated)")
	matchCmd.Flags().StringSliceP("preferred", "p", nil, "preferred skills")
	matchCmd.Flags().String("seniority", "", "seniority filter (junior, mid-level, senior, lead, principal)")
	matchCmd.Flags().String("location", "", "location filter, exact match")
	matchCmd.Flags().String("employment-type", "", "employment type filter")
	matchCmd.Flags().String("experience", "", "minimum experience, a number or range like 3-5 or 5+")
	matchCmd.Flags().IntP("top-n", "n", 0, "number of top candidates to return (default 10)")
	matchCmd.Flags().BoolP("no-prompt", "y", false, "print the result and exit without the interactive menu")
}

func runMatch(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	req := requestFromConfig(config)
	applyFlagOverrides(cmd, req)

	_, pipeline, err := loadPipeline(config, logger)
	if err != nil {
		logger.Fatal("preparing the pipeline", zap.Error(err))
	}

	result, err := pipeline.Match(ctx, req)
	if err != nil {
		logger.Fatal("matching failed", zap.Error(err))
	}

	if result.Total == 0 {
		logger.Info("exiting", zap.String("reason", "no candidates matched the requirement"))
		return
	}

	printJSON(result)

	if noPrompt, _ := cmd.Flags().GetBool("no-prompt"); noPrompt {
		return
	}

	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, action, config, result, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func requestFromConfig(config *Config) *matching.Request {
	req := &matching.Request{}
	if config == nil || config.Match == nil {
		return req
	}
	req.RequiredSkills = config.Match.RequiredSkills
	req.PreferredSkills = config.Match.PreferredSkills
	req.Seniority = config.Match.Seniority
	req.Location = config.Match.Location
	req.EmploymentType = config.Match.EmploymentType
	req.Experience = config.Match.Experience
	req.TopN = config.Match.TopN
	return req
}

func applyFlagOverrides(cmd *cobra.Command, req *matching.Request) {
	if skills, _ := cmd.Flags().GetStringSlice("required"); len(skills) > 0 {
		req.RequiredSkills = skills
	}
	if skills, _ := cmd.Flags().GetStringSlice("preferred"); len(skills) > 0 {
		req.PreferredSkills = skills
	}
	if v, _ := cmd.Flags().GetString("seniority"); v != "" {
		req.Seniority = v
	}
	if v, _ := cmd.Flags().GetString("location"); v != "" {
		req.Location = v
	}
	if v, _ := cmd.Flags().GetString("employment-type"); v != "" {
		req.EmploymentType = v
	}
	if v, _ := cmd.Flags().GetString("experience"); v != "" {
		req.Experience = v
	}
	if v, _ := cmd.Flags().GetInt("top-n"); v != 0 {
		req.TopN = v
	}
}

func handleAction(ctx context.Context, action string, config *Config, result *matching.Result, logger *zap.Logger) error {
	switch action {
	case PromptShowGaps:
		report := make(map[string]matching.SkillGap, len(result.Matches))
		for _, match := range result.Matches {
			report[fmt.Sprintf("%s (%s)", match.Candidate.Name, match.Candidate.ID)] = match.Gap
		}
		printJSON(report)
		return nil
	case PromptInterview:
		return withSelectedCandidate(result, func(scored *matching.ScoredCandidate) error {
			interviewer, requirement, err := newInterviewer(ctx, config, logger)
			if err != nil {
				return err
			}
			questions, err := interviewer.Questions(ctx, requirement, scored)
			if err != nil {
				return fmt.Errorf("generating interview questions: %w", err)
			}
			printJSON(questions)
			return nil
		})
	case PromptOutreach:
		return withSelectedCandidate(result, func(scored *matching.ScoredCandidate) error {
			outreach, requirement, err := newOutreach(ctx, config, logger)
			if err != nil {
				return err
			}
			message, err := outreach.Compose(ctx, requirement, scored)
			if err != nil {
				return fmt.Errorf("composing outreach message: %w", err)
			}
			fmt.Println(message)
			return nil
		})
	case PromptDumpToFile:
		filename, err := dumpToTmpFile(result)
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// withSelectedCandidate asks which match to act on, then runs fn on it.
func withSelectedCandidate(result *matching.Result, fn func(*matching.ScoredCandidate) error) error {
	items := make([]string, 0, len(result.Matches)+1)
	for _, match := range result.Matches {
		items = append(items, fmt.Sprintf("%s %s / score %.2f",
			match.Candidate.ID, match.Candidate.Name, match.Score.TotalScore,
		))
	}

	candidatePrompt := promptui.Select{
		Label: "Choose a candidate and press ENTER",
		Items: append(items, PromptBack),
	}

	_, selected, err := candidatePrompt.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return nil
	}

	id := strings.Split(selected, " ")[0]
	for _, match := range result.Matches {
		if match.Candidate.ID == id {
			return fn(match)
		}
	}
	return fmt.Errorf("there is no such candidate id %s", id)
}

func newInterviewer(ctx context.Context, config *Config, logger *zap.Logger) (ai.Interviewer, string, error) {
	generator, err := requireGenerator(ctx, config, logger)
	if err != nil {
		return nil, "", err
	}
	return gemini.NewInterviewer(generator, logger, maxLogLength(config.AI)), requirementText(config), nil
}

func newOutreach(ctx context.Context, config *Config, logger *zap.Logger) (ai.Outreach, string, error) {
	generator, err := requireGenerator(ctx, config, logger)
	if err != nil {
		return nil, "", err
	}
	return gemini.NewOutreach(generator, logger, maxLogLength(config.AI)), requirementText(config), nil
}

func requireGenerator(ctx context.Context, config *Config, logger *zap.Logger) (*gemini.Generator, error) {
	if config == nil || config.AI == nil || !config.AI.Enabled {
		return nil, errors.New("ai features are disabled; set ai.enabled in the config")
	}
	return newGenerator(ctx, config.AI, logger)
}

// requirementText is the free-text job description handed to prompt
// templates. It falls back to the required skills list when the config
// has no prose description.
func requirementText(config *Config) string {
	if config != nil && config.Match != nil {
		if req := strings.TrimSpace(config.Match.Requirement); req != "" {
			return req
		}
		if len(config.Match.RequiredSkills) > 0 {
			return "A role requiring: " + strings.Join(config.Match.RequiredSkills, ", ")
		}
	}
	return "A role matching the listed required skills."
}

func printJSON(v any) {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "rendering output: %v\n", err)
		return
	}
	fmt.Println(string(pretty))
}

func dumpToTmpFile(result *matching.Result) (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return "", err
	}
	return file.Name(), nil
}
