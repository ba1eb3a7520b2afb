package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/recruiterlab/talentmatch/internal/ai/gemini"
	"github.com/recruiterlab/talentmatch/internal/logger"
	"github.com/recruiterlab/talentmatch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve matching and candidate analysis over HTTP",
	Run: func(cmd *cobra.Command, _ []string) {
		runServe(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address (default :8080)")
	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

func runServe(_ *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	pool, pipeline, err := loadPipeline(config, logger)
	if err != nil {
		logger.Fatal("preparing the pipeline", zap.Error(err))
	}

	deps := server.Deps{
		Corpus:   pool,
		Pipeline: pipeline,
		Logger:   logger,
	}

	// AI-backed endpoints stay up but answer 503 when no key is configured.
	var aiCfg *AIConfig
	if config != nil {
		aiCfg = config.AI
	}
	generator, err := newGenerator(ctx, aiCfg, logger)
	if err != nil {
		logger.Warn("ai endpoints disabled", zap.Error(err))
	} else if generator != nil {
		deps.Parser = gemini.NewQueryParser(generator, logger, maxLogLength(aiCfg))
		deps.Extractor = gemini.NewProfileExtractor(generator, logger, maxLogLength(aiCfg))
		deps.Comparer = gemini.NewComparer(generator, logger, maxLogLength(aiCfg))
	}

	srv, err := server.New(deps)
	if err != nil {
		logger.Fatal("building the server", zap.Error(err))
	}

	listen := viper.GetString("server.listen")
	if config != nil && config.Server != nil && config.Server.Listen != "" {
		listen = config.Server.Listen
	}

	if err := srv.Run(listen); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
