package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "production")
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(dir, "words.db"))
	t.Setenv("STORAGE_BACKEND", backend)
	t.Setenv("DEFAULT_WORDS_FILE", "")
	return dir
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestImportStatsDelete(t *testing.T) {
	for _, backend := range []string{"database", "keyvalue"} {
		t.Run(backend, func(t *testing.T) {
			dir := setupEnv(t, backend)

			file := filepath.Join(dir, "import.csv")
			require.NoError(t, os.WriteFile(file, []byte("foreign,native\nzebra,зебра\nwhat,что\n"), 0644))

			out := run(t, "import", file)
			assert.Contains(t, out, "Processed: 2, added: 1, skipped: 1")

			out = run(t, "stats", "--sort", "alpha", "--reverse=false")
			assert.Contains(t, out, "zebra")
			assert.Contains(t, out, "зебра")

			out = run(t, "delete", "zebra")
			assert.Contains(t, out, "Deleted zebra")

			out = run(t, "stats", "--sort", "rating", "--reverse=true")
			assert.NotContains(t, out, "zebra")
			assert.Contains(t, out, "what")
		})
	}
}

func TestStatsUnknownSort(t *testing.T) {
	setupEnv(t, "database")

	rootCmd.SetArgs([]string{"stats", "--sort", "length"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	assert.Error(t, rootCmd.ExecuteContext(context.Background()))
}
