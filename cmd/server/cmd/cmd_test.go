package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"library-catalog/internal/database"
	"library-catalog/internal/repository"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		databaseURL, logLevel, logFormat = "", "", ""
		seedFile, seedForce = "", false
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")
	require.Contains(t, out, "catalog dev")
}

func TestSeedCommandFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DATABASE_URL", "")

	seedPath := filepath.Join(dir, "authors.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`
authors:
  - name: "Zy, Xw"
    lifespan: "1800-1900"
  - name: "Ab, Cd"
    lifespan: "1900-2000"
  - name: "Ij, Kl"
    lifespan: "1700-1800"
`), 0o600))
	dbPath := filepath.Join(dir, "library.db")

	runCommand(t, "seed", "--database-url", dbPath, "--file", seedPath, "--log-level", "error")

	repo, err := database.Open(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	authors, err := repo.GetAllAuthors(context.Background(), repository.SortOptions{FamilyName: repository.Ascending})
	require.NoError(t, err)
	require.Len(t, authors, 3)
	require.Equal(t, "Ab, Cd", authors[0].Name)
	require.Equal(t, "Zy, Xw", authors[2].Name)
}

func TestReadSeedDefault(t *testing.T) {
	authors, err := readSeed("")
	require.NoError(t, err)
	require.NotEmpty(t, authors)

	_, err = readSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRootAcceptsServeFlags(t *testing.T) {
	t.Cleanup(func() {
		serverHost, serverPort, seedOnBoot = "", 0, false
	})

	require.NoError(t, rootCmd.ParseFlags([]string{"--host", "127.0.0.1", "--port", "9090", "--seed"}))
	require.Equal(t, "127.0.0.1", serverHost)
	require.Equal(t, 9090, serverPort)
	require.True(t, seedOnBoot)
}
