package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"library-catalog/internal/config"
	"library-catalog/internal/database"
	"library-catalog/internal/services"
)

var (
	importConcurrency int
	importDryRun      bool
)

var importCmd = &cobra.Command{
	Use:   "import <author name>...",
	Short: "Resolve authors on Open Library and add them to the catalog",
	Long: `Resolve authors on Open Library and add them to the catalog.

Each argument is searched on Open Library; the match with the most works is
stored with its name in "Family, Given" form and its lifespan.

Examples:
  catalog import "H.G. Wells" "Ursula K. Le Guin"
  catalog import --dry-run "Andy Weir"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		logger := config.NewLogger(cfg.Logging)
		ctx := logger.WithContext(cmd.Context())

		importer := services.NewAuthorImporter(
			cfg.OpenLibrary.BaseURL,
			services.WithRateLimit(cfg.OpenLibrary.RateLimit),
			services.WithConcurrency(importConcurrency),
		)
		authors, err := importer.Resolve(ctx, args)
		if err != nil {
			return fmt.Errorf("resolve authors: %w", err)
		}

		if importDryRun {
			for _, author := range authors {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", author.Name, author.Lifespan)
			}
			return nil
		}

		repo, err := database.Open(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer repo.Close()

		if err := repo.InsertAuthors(ctx, authors); err != nil {
			return err
		}
		logger.Info().Int("requested", len(args)).Int("imported", len(authors)).Msg("import finished")
		return nil
	},
}

func init() {
	importCmd.Flags().IntVar(&importConcurrency, "concurrency", services.DefaultConcurrency, "maximum concurrent Open Library searches")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "print resolved authors without storing them")
}
