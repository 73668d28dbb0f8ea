package database

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"library-catalog/internal/models"
	"library-catalog/internal/repository"
)

// ErrInvalidSeed wraps every seed file problem.
var ErrInvalidSeed = errors.New("invalid seed")

//go:embed seed/authors.yaml
var defaultSeed []byte

type seedFile struct {
	Authors []models.Author `yaml:"authors"`
}

// LoadSeed parses a YAML seed document and validates each author.
func LoadSeed(r io.Reader) ([]models.Author, error) {
	var file seedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidSeed, err)
	}

	v := models.NewValidator()
	for i, author := range file.Authors {
		if err := v.Struct(author); err != nil {
			return nil, fmt.Errorf("%w: author %d (%q): %v", ErrInvalidSeed, i, author.Name, err)
		}
	}
	return file.Authors, nil
}

// DefaultSeed returns the authors bundled with the binary.
func DefaultSeed() ([]models.Author, error) {
	return LoadSeed(bytes.NewReader(defaultSeed))
}

// SeedIfEmpty inserts authors only when the store holds none yet. It reports
// whether anything was inserted.
func SeedIfEmpty(ctx context.Context, repo repository.AuthorRepository, authors []models.Author) (bool, error) {
	_, err := repo.GetAllAuthors(ctx, repository.SortOptions{})
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, repository.ErrNoAuthors):
		return false, fmt.Errorf("check existing authors: %w", err)
	}

	if err := repo.InsertAuthors(ctx, authors); err != nil {
		return false, err
	}
	return len(authors) > 0, nil
}
