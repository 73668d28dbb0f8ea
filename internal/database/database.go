package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// migrations
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"library-catalog/internal/repository"
)

//go:embed migrations
var migrationsFS embed.FS

// Open connects to the store named by databaseURL, applies pending
// migrations and returns the matching author repository. postgres:// and
// postgresql:// URLs select Postgres; anything else is a SQLite DSN.
func Open(ctx context.Context, databaseURL string) (repository.AuthorRepository, error) {
	if IsPostgresURL(databaseURL) {
		if err := MigratePostgres(databaseURL); err != nil {
			return nil, err
		}
		pool, err := pgxpool.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return repository.NewPostgresAuthorRepository(pool), nil
	}

	db, err := OpenSQLite(databaseURL)
	if err != nil {
		return nil, err
	}
	if err := MigrateSQLite(db.DB); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repository.NewSQLiteAuthorRepository(db), nil
}

// IsPostgresURL reports whether databaseURL points at a Postgres server.
func IsPostgresURL(databaseURL string) bool {
	return strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://")
}

// OpenSQLite opens the SQLite database at dsn.
func OpenSQLite(dsn string) (*sqlx.DB, error) {
	dsn = strings.TrimPrefix(dsn, "sqlite3://")
	if dsn == "" {
		return nil, errors.New("sqlite dsn is empty")
	}
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite serialises writers; one connection avoids "database is locked".
	db.SetMaxOpenConns(1)
	return db, nil
}

// MigrateSQLite applies the embedded SQLite migrations to db.
func MigrateSQLite(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	defer src.Close()

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	// m.Close would close db as well, which the caller still owns.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// MigratePostgres applies the embedded Postgres migrations.
func MigratePostgres(databaseURL string) error {
	src, err := iofs.New(migrationsFS, "migrations/postgres")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
