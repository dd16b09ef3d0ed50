package main_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/helpview"
	main "github.com/fwojciec/helpview/cmd/helpview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults for missing file", func(t *testing.T) {
		t.Parallel()

		config, err := main.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
		require.NoError(t, err)
		assert.Equal(t, main.DefaultConfig(), config)
	})

	t.Run("reads all keys", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
db_path = "/var/lib/helpview.db"
title = "Office Help"
http_timeout = "3s"
log_level = "warn"
load_concurrency = 2

[search]
case_sensitive = true
whole_word = true
regex = false
full_text = true
`)

		config, err := main.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/helpview.db", config.DBPath)
		assert.Equal(t, "Office Help", config.Title)
		assert.Equal(t, 3*time.Second, config.HTTPTimeout.Duration)
		assert.Equal(t, "warn", config.LogLevel)
		assert.Equal(t, 2, config.LoadConcurrency)
		assert.Equal(t, helpview.SearchFlags{CaseSensitive: true, WholeWord: true, FullText: true}, config.Search.Flags())
	})

	t.Run("keeps defaults for absent keys", func(t *testing.T) {
		t.Parallel()

		config, err := main.LoadConfig(writeConfig(t, `title = "Office Help"`))
		require.NoError(t, err)
		assert.Equal(t, "Office Help", config.Title)
		assert.Equal(t, 10*time.Second, config.HTTPTimeout.Duration)
		assert.Equal(t, 4, config.LoadConcurrency)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		t.Parallel()

		for _, content := range []string{
			`http_timeout = "soon"`,
			`http_timeout = "0s"`,
			`load_concurrency = 0`,
			`log_level = "loud"`,
			`title = `,
		} {
			_, err := main.LoadConfig(writeConfig(t, content))
			assert.Error(t, err, content)
		}
	})
}
