// Package repository holds the author storage adapters consumed by the HTTP
// handlers.
package repository

import (
	"context"
	"errors"

	"library-catalog/internal/models"
)

// ErrNoAuthors is returned when a listing finds no authors at all.
var ErrNoAuthors = errors.New("no authors found")

const (
	Ascending  = 1
	Descending = -1
)

// SortOptions mirrors the { family_name: 1 | -1 } sort directive. A zero
// FamilyName keeps insertion order.
type SortOptions struct {
	FamilyName int
}

// AuthorRepository is the storage capability shared by the SQLite and
// Postgres adapters.
type AuthorRepository interface {
	GetAllAuthors(ctx context.Context, opts SortOptions) ([]models.Author, error)
	InsertAuthors(ctx context.Context, authors []models.Author) error
	Ping(ctx context.Context) error
	Close() error
}
