package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"library-catalog/internal/config"
	"library-catalog/internal/database"
	"library-catalog/internal/models"
)

var (
	seedFile  string
	seedForce bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load authors from a YAML seed file",
	Long: `Load authors from a YAML seed file into the catalog.

The file lists authors as:

  authors:
    - name: "Wells, H. G."
      lifespan: "1866-1946"

Without --file the authors bundled with the binary are used. Seeding is
skipped when the catalog already has authors unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		logger := config.NewLogger(cfg.Logging)

		authors, err := readSeed(seedFile)
		if err != nil {
			return err
		}

		repo, err := database.Open(cmd.Context(), cfg.Database.URL)
		if err != nil {
			return err
		}
		defer repo.Close()

		if seedForce {
			if err := repo.InsertAuthors(cmd.Context(), authors); err != nil {
				return err
			}
			logger.Info().Int("authors", len(authors)).Msg("seeded")
			return nil
		}

		seeded, err := database.SeedIfEmpty(cmd.Context(), repo, authors)
		if err != nil {
			return err
		}
		if !seeded {
			logger.Warn().Msg("catalog already has authors; use --force to append")
			return nil
		}
		logger.Info().Int("authors", len(authors)).Msg("seeded")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file (default: bundled authors)")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "insert even when the catalog is not empty")
}

func readSeed(path string) ([]models.Author, error) {
	if path == "" {
		return database.DefaultSeed()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return database.LoadSeed(f)
}
