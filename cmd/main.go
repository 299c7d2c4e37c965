package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/fitsense/internal/services"
	"github.com/desertthunder/fitsense/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	configPath := "config.toml"
	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config, using defaults", "error", err)
		}
	}

	gemini := services.NewGeminiService(services.GeminiOpts{
		BaseURL:           config.Credentials.Gemini.BaseURL,
		Model:             config.Credentials.Gemini.Model,
		APIKey:            config.Credentials.Gemini.APIKey,
		AccessToken:       config.Credentials.Gemini.AccessToken,
		RequestsPerMinute: config.Credentials.Gemini.RequestsPerMinute,
	})

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Analyzer:   gemini,
		Planner:    gemini,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "fitsense",
		Usage:    "AI workout analysis, plans, and progress tracking",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			logger.Error("not signed in, run 'fitsense auth login' first")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
