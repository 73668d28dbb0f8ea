package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"library-catalog/internal/config"
)

var (
	// Global flags
	databaseURL string
	logLevel    string
	logFormat   string

	rootCmd = &cobra.Command{
		Use:   "catalog",
		Short: "Library catalog server",
		Long: `Library catalog server exposes the author catalog over HTTP.

The server supports:
- GET /authors, listing authors ordered by family name
- SQLite (default) or Postgres storage with embedded migrations
- Seeding from YAML and importing authors from Open Library`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
	}
)

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "database URL or SQLite path (default: $DATABASE_URL or file:library.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error) (default: info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console) (default: json)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if databaseURL != "" {
		cfg.Database.URL = databaseURL
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	return cfg, cfg.Validate()
}
