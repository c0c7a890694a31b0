package gogit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitws/infrastructure/gogit"
)

// initRepoWithCommit creates a repository with a single commit so it
// can serve as a clone/pull source on the local filesystem.
func initRepoWithCommit(t *testing.T, dir string) {
	t.Helper()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello\n"), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("README.md")
	require.NoError(t, err)

	//nolint:exhaustruct // go-git options default sensibly
	_, err = worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}

func TestRemoteURL(t *testing.T) {
	t.Parallel()

	t.Run("should return the configured origin URL", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		//nolint:exhaustruct // only name and URLs are relevant
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"https://github.com/octo/widget.git"},
		})
		require.NoError(t, err)
		client := gogit.NewClient()

		// when
		url, urlErr := client.RemoteURL(context.Background(), dir)

		// then
		require.NoError(t, urlErr)
		assert.Equal(t, "https://github.com/octo/widget.git", url)
	})

	t.Run("should fail when origin is not configured", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		client := gogit.NewClient()

		// when
		_, urlErr := client.RemoteURL(context.Background(), dir)

		// then
		require.Error(t, urlErr)
	})

	t.Run("should fail on a directory that is not a repository", func(t *testing.T) {
		t.Parallel()

		// given
		client := gogit.NewClient()

		// when
		_, err := client.RemoteURL(context.Background(), t.TempDir())

		// then
		require.Error(t, err)
	})
}

func TestClone(t *testing.T) {
	t.Parallel()

	t.Run("should clone a repository from a local source", func(t *testing.T) {
		t.Parallel()

		// given
		src := filepath.Join(t.TempDir(), "src")
		initRepoWithCommit(t, src)
		dest := filepath.Join(t.TempDir(), "dest")
		client := gogit.NewClient()

		// when
		err := client.Clone(context.Background(), src, dest)

		// then
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dest, "README.md"))
	})

	t.Run("should fail for a missing source", func(t *testing.T) {
		t.Parallel()

		// given
		client := gogit.NewClient()
		dest := filepath.Join(t.TempDir(), "dest")

		// when
		err := client.Clone(context.Background(), filepath.Join(t.TempDir(), "missing"), dest)

		// then
		require.Error(t, err)
	})
}

func TestPullAndFetch(t *testing.T) {
	t.Parallel()

	t.Run("should treat an already up-to-date pull as success", func(t *testing.T) {
		t.Parallel()

		// given
		src := filepath.Join(t.TempDir(), "src")
		initRepoWithCommit(t, src)
		dest := filepath.Join(t.TempDir(), "dest")
		client := gogit.NewClient()
		require.NoError(t, client.Clone(context.Background(), src, dest))

		// when
		err := client.Pull(context.Background(), dest)

		// then
		require.NoError(t, err)
	})

	t.Run("should treat an already up-to-date fetch as success", func(t *testing.T) {
		t.Parallel()

		// given
		src := filepath.Join(t.TempDir(), "src")
		initRepoWithCommit(t, src)
		dest := filepath.Join(t.TempDir(), "dest")
		client := gogit.NewClient()
		require.NoError(t, client.Clone(context.Background(), src, dest))

		// when
		err := client.Fetch(context.Background(), dest)

		// then
		require.NoError(t, err)
	})

	t.Run("should fail to pull outside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		client := gogit.NewClient()

		// when
		err := client.Pull(context.Background(), t.TempDir())

		// then
		require.Error(t, err)
	})
}
