package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pancake-labs/lead-ingest/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "lead-ingest",
	Short: "Pancake webhook to Google Sheets lead recorder",
	Long:  "Receives comment-automation webhooks from Pancake, extracts customer phone numbers, and appends deduplicated lead rows to monthly spreadsheet tabs.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Local development convenience; deployments set real env vars.
		_ = godotenv.Load()

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
