package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/models"
	"library-catalog/internal/repository"
)

type memoryRepo struct {
	authors []models.Author
}

func (m *memoryRepo) GetAllAuthors(_ context.Context, _ repository.SortOptions) ([]models.Author, error) {
	if len(m.authors) == 0 {
		return nil, repository.ErrNoAuthors
	}
	return m.authors, nil
}

func (m *memoryRepo) InsertAuthors(_ context.Context, authors []models.Author) error {
	m.authors = append(m.authors, authors...)
	return nil
}

func (m *memoryRepo) Ping(context.Context) error { return nil }
func (m *memoryRepo) Close() error               { return nil }

func TestRouter(t *testing.T) {
	repo := &memoryRepo{}
	server := httptest.NewServer(NewRouter(repo, zerolog.Nop()))
	t.Cleanup(server.Close)

	get := func(path string) *http.Response {
		t.Helper()
		res, err := http.Get(server.URL + path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = res.Body.Close() })
		return res
	}

	res := get("/authors")
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("X-Request-ID"))

	require.NoError(t, repo.InsertAuthors(context.Background(), []models.Author{{Name: "Ab, Cd", Lifespan: "1900-2000"}}))
	require.Equal(t, http.StatusOK, get("/authors").StatusCode)

	require.Equal(t, http.StatusOK, get("/healthz").StatusCode)
	require.Equal(t, http.StatusOK, get("/metrics").StatusCode)

	post, err := http.Post(server.URL+"/authors", "application/json", nil)
	require.NoError(t, err)
	_ = post.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, post.StatusCode)
}
