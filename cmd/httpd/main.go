// Command httpd runs the opportunity-radar HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonesrussell/opportunity-radar/internal/analyzer"
	"github.com/jonesrussell/opportunity-radar/internal/api"
	"github.com/jonesrussell/opportunity-radar/internal/config"
	"github.com/jonesrussell/opportunity-radar/internal/logger"
	"github.com/jonesrussell/opportunity-radar/internal/telemetry"
)

const defaultConfigPath = "config.yml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "opportunity-radar: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := os.Getenv("RADAR_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting opportunity-radar",
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	lexicons, err := cfg.LoadLexicons(analyzer.DefaultLexicons())
	if err != nil {
		return fmt.Errorf("load lexicons: %w", err)
	}

	tp := telemetry.NewProvider()
	engine := analyzer.New(log, lexicons, tp)
	handler := api.NewHandler(engine, tp, log, cfg.Radar.MaxBatchSize)
	server := api.NewServer(handler, tp, cfg, log)

	return server.Run(context.Background())
}
