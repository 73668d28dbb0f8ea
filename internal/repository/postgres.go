package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/models"
)

const dialectPostgres = "postgres"

// PostgresAuthorRepository stores authors in Postgres through a pgx pool.
type PostgresAuthorRepository struct {
	pool    *pgxpool.Pool
	dialect goqu.DialectWrapper
}

func NewPostgresAuthorRepository(pool *pgxpool.Pool) *PostgresAuthorRepository {
	return &PostgresAuthorRepository{pool: pool, dialect: goqu.Dialect(dialectPostgres)}
}

func (r *PostgresAuthorRepository) GetAllAuthors(ctx context.Context, opts SortOptions) ([]models.Author, error) {
	sqlQuery, err := listAuthorsQuery(r.dialect, opts)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	authors, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[models.Author])
	if err != nil {
		return nil, fmt.Errorf("scan authors: %w", err)
	}
	if len(authors) == 0 {
		return nil, ErrNoAuthors
	}
	return authors, nil
}

func (r *PostgresAuthorRepository) InsertAuthors(ctx context.Context, authors []models.Author) error {
	if len(authors) == 0 {
		return nil
	}
	sqlQuery, err := insertAuthorsQuery(r.dialect, authors)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, sqlQuery); err != nil {
		return fmt.Errorf("insert authors: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit authors: %w", err)
	}
	return nil
}

func (r *PostgresAuthorRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *PostgresAuthorRepository) Close() error {
	r.pool.Close()
	return nil
}
