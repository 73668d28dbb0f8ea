package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // dialect registration
	"github.com/jmoiron/sqlx"

	"library-catalog/internal/models"
)

const dialectSQLite = "sqlite3"

// SQLiteAuthorRepository stores authors in a SQLite database.
type SQLiteAuthorRepository struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
}

// NewSQLiteAuthorRepository wraps an open, migrated SQLite handle.
func NewSQLiteAuthorRepository(db *sqlx.DB) *SQLiteAuthorRepository {
	return &SQLiteAuthorRepository{db: db, dialect: goqu.Dialect(dialectSQLite)}
}

func (r *SQLiteAuthorRepository) GetAllAuthors(ctx context.Context, opts SortOptions) ([]models.Author, error) {
	sqlQuery, err := listAuthorsQuery(r.dialect, opts)
	if err != nil {
		return nil, err
	}

	var authors []models.Author
	if err := r.db.SelectContext(ctx, &authors, sqlQuery); err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	if len(authors) == 0 {
		return nil, ErrNoAuthors
	}
	return authors, nil
}

func (r *SQLiteAuthorRepository) InsertAuthors(ctx context.Context, authors []models.Author) error {
	if len(authors) == 0 {
		return nil
	}
	sqlQuery, err := insertAuthorsQuery(r.dialect, authors)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, sqlQuery); err != nil {
		return fmt.Errorf("insert authors: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit authors: %w", err)
	}
	return nil
}

func (r *SQLiteAuthorRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteAuthorRepository) Close() error {
	return r.db.Close()
}
