package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"library-catalog/internal/config"
	"library-catalog/internal/database"
	"library-catalog/internal/handlers"
)

var (
	serverHost string
	serverPort int
	seedOnBoot bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog HTTP server",
	Long: `Start the catalog HTTP server and begin accepting API requests.

The server will:
- Load configuration from environment variables (and .env when present)
- Open the database and apply pending migrations
- Seed the bundled authors into an empty catalog when --seed is set
- Handle graceful shutdown on SIGINT/SIGTERM

Examples:
  # Start with default configuration
  catalog serve

  # Start on a specific port against Postgres
  catalog serve --port 9090 --database-url postgres://catalog@localhost/catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func init() {
	// The root command runs serve by default, so it takes the same flags.
	for _, c := range []*cobra.Command{serveCmd, rootCmd} {
		c.Flags().StringVar(&serverHost, "host", "", "server host address (default: 0.0.0.0)")
		c.Flags().IntVar(&serverPort, "port", 0, "server port (default: 8080)")
		c.Flags().BoolVar(&seedOnBoot, "seed", false, "seed bundled authors when the catalog is empty")
	}
}

func runServer(ctx context.Context) error {
	startTime := time.Now()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	logger := config.NewLogger(cfg.Logging)
	logger.Info().Str("environment", cfg.Environment).Msg("starting catalog server")

	openCtx, openCancel := context.WithTimeout(ctx, 10*time.Second)
	repo, err := database.Open(openCtx, cfg.Database.URL)
	openCancel()
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error().Err(err).Msg("close database")
		}
	}()

	if seedOnBoot {
		authors, err := database.DefaultSeed()
		if err != nil {
			return err
		}
		seeded, err := database.SeedIfEmpty(ctx, repo, authors)
		if err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
		logger.Info().Bool("seeded", seeded).Int("authors", len(authors)).Msg("seed checked")
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handlers.NewRouter(repo, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Dur("setup", time.Since(startTime)).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	return gracefulShutdown(server, serverErr, logger)
}

func gracefulShutdown(server *http.Server, serverErr <-chan error, logger zerolog.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-stop:
	}
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
