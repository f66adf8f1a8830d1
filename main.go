package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/inkwise/inkwise/cmd"
	"github.com/inkwise/inkwise/pkg/logging"
)

func main() {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	logging.CreateLogger()
	logger := logging.GetLogger()

	fs := afero.NewOsFs()
	ctx := context.Background()

	rootCmd := cmd.NewRootCommand(fs, ctx, logger)
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
