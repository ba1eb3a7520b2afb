package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/recruiterlab/talentmatch/internal/matching"
)

const (
	app = "talentmatch"
)

type Config struct {
	Dataset string            `mapstructure:"dataset"`
	Weights *matching.Weights `mapstructure:"weights"`
	Match   *MatchConfig      `mapstructure:"match"`
	Server  *ServerConfig     `mapstructure:"server"`
	AI      *AIConfig         `mapstructure:"ai"`
}

// MatchConfig holds the job requirement used by the match command when no
// flags override it. Requirement is the free-text description handed to
// the AI question and outreach generators.
type MatchConfig struct {
	RequiredSkills  []string `mapstructure:"required-skills"`
	PreferredSkills []string `mapstructure:"preferred-skills"`
	Seniority       string   `mapstructure:"seniority"`
	Location        string   `mapstructure:"location"`
	EmploymentType  string   `mapstructure:"employment-type"`
	Experience      string   `mapstructure:"experience"`
	TopN            int      `mapstructure:"top-n"`
	Requirement     string   `mapstructure:"requirement"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentmatch filters and ranks candidate profiles against a job requirement",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A local .env is optional; ignore its absence.
	_ = godotenv.Load()

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("dataset", "", "path to the candidate dataset (default dataset.json)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("dataset", rootCmd.PersistentFlags().Lookup("dataset"))

	viper.SetDefault("dataset", "dataset.json")
	viper.SetDefault("server.listen", ":8080")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// Flags and env are enough for most commands; only an explicitly
		// requested file must exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
