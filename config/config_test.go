package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitws/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	t.Run("should use the CLI git backend and the standard manifest name", func(t *testing.T) {
		t.Parallel()

		// when
		cfg := config.Default()

		// then
		assert.Equal(t, "workspace.toml", cfg.Manifest)
		assert.Equal(t, config.BackendCLI, cfg.Git.Backend)
		assert.Equal(t, "info", cfg.Log.Level)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("should override the git backend", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "gitws.yaml")
		content := "git:\n  backend: gogit\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, config.BackendGoGit, cfg.Git.Backend)
		assert.Equal(t, "workspace.toml", cfg.Manifest)
	})

	t.Run("should keep defaults for fields the file omits", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "gitws.yaml")
		content := "log:\n  level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, config.BackendCLI, cfg.Git.Backend)
	})

	t.Run("should reject an unknown git backend", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "gitws.yaml")
		content := "git:\n  backend: subversion\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown git backend")
	})

	t.Run("should reject an empty manifest name", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "gitws.yaml")
		content := "manifest: \"\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})
}
