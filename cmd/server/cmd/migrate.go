package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"library-catalog/internal/config"
	"library-catalog/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		logger := config.NewLogger(cfg.Logging)

		repo, err := database.Open(cmd.Context(), cfg.Database.URL)
		if err != nil {
			return err
		}
		defer repo.Close()

		logger.Info().Msg("migrations applied")
		return nil
	},
}
