package main

import (
	"context"
	"os"

	"github.com/desertthunder/pathfound/internal/shared"
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

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "pathfound",
		Usage:    "Track YouTube playlists as courses",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	err := app.Run(context.Background(), os.Args)
	runner.Close()
	if err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
