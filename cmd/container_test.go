package cmd //nolint:testpackage // tests unexported wiring functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitws/config"
	"github.com/rios0rios0/gitws/infrastructure/gitcli"
	"github.com/rios0rios0/gitws/infrastructure/gogit"
)

func TestBuildService(t *testing.T) {
	t.Parallel()

	t.Run("should wire a service with the closed provider set", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.Default()

		// when
		svc, err := buildService(cfg)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"github", "gitlab"}, svc.Registry().Names())
	})
}

func TestNewGitClient(t *testing.T) {
	t.Parallel()

	t.Run("should select the CLI backend by default", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.Default()

		// when
		client := newGitClient(cfg)

		// then
		assert.IsType(t, &gitcli.Client{}, client)
	})

	t.Run("should select the go-git backend when configured", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.Default()
		cfg.Git.Backend = config.BackendGoGit

		// when
		client := newGitClient(cfg)

		// then
		assert.IsType(t, &gogit.Client{}, client)
	})
}
