package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"library-catalog/internal/models"
	"library-catalog/internal/repository"
)

func TestLoadSeed(t *testing.T) {
	doc := `
authors:
  - name: "Zy, Xw"
    lifespan: "1800-1900"
  - name: "Ab, Cd"
    lifespan: "1900-2000"
`
	authors, err := LoadSeed(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []models.Author{
		{Name: "Zy, Xw", Lifespan: "1800-1900"},
		{Name: "Ab, Cd", Lifespan: "1900-2000"},
	}, authors)
}

func TestLoadSeedEmptyDocument(t *testing.T) {
	authors, err := LoadSeed(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, authors)
}

func TestLoadSeedRejectsInvalidLifespan(t *testing.T) {
	doc := `
authors:
  - name: "Ab, Cd"
    lifespan: "nineteen hundred"
`
	_, err := LoadSeed(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrInvalidSeed)
}

func TestLoadSeedRejectsMalformedYAML(t *testing.T) {
	_, err := LoadSeed(strings.NewReader("authors: [name: {"))
	require.ErrorIs(t, err, ErrInvalidSeed)
}

func TestDefaultSeed(t *testing.T) {
	authors, err := DefaultSeed()
	require.NoError(t, err)
	require.NotEmpty(t, authors)
}

type stubRepo struct {
	listErr  error
	inserted []models.Author
}

func (s *stubRepo) GetAllAuthors(_ context.Context, _ repository.SortOptions) ([]models.Author, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return []models.Author{{Name: "Ab, Cd", Lifespan: "1900-2000"}}, nil
}

func (s *stubRepo) InsertAuthors(_ context.Context, authors []models.Author) error {
	s.inserted = append(s.inserted, authors...)
	return nil
}

func (s *stubRepo) Ping(context.Context) error { return nil }
func (s *stubRepo) Close() error               { return nil }

func TestSeedIfEmpty(t *testing.T) {
	authors := []models.Author{{Name: "Ij, Kl", Lifespan: "1700-1800"}}

	t.Run("empty store is seeded", func(t *testing.T) {
		repo := &stubRepo{listErr: repository.ErrNoAuthors}
		seeded, err := SeedIfEmpty(context.Background(), repo, authors)
		require.NoError(t, err)
		require.True(t, seeded)
		require.Equal(t, authors, repo.inserted)
	})

	t.Run("populated store is left alone", func(t *testing.T) {
		repo := &stubRepo{}
		seeded, err := SeedIfEmpty(context.Background(), repo, authors)
		require.NoError(t, err)
		require.False(t, seeded)
		require.Empty(t, repo.inserted)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		repo := &stubRepo{listErr: errors.New("disk on fire")}
		_, err := SeedIfEmpty(context.Background(), repo, authors)
		require.Error(t, err)
		require.Empty(t, repo.inserted)
	})
}
