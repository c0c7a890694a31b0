// Package gogit implements the GitClient capability in-process with
// go-git, so no git binary is required on the host. Selected with the
// "gogit" backend in the tool configuration.
package gogit

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"

	"github.com/rios0rios0/gitws/domain"
)

const remoteName = "origin"

// Client performs version-control operations with go-git.
type Client struct{}

// NewClient creates a new go-git client.
func NewClient() domain.GitClient {
	return &Client{}
}

// Clone clones remoteURL into dir.
func (c *Client) Clone(ctx context.Context, remoteURL, dir string) error {
	//nolint:exhaustruct // go-git options default sensibly
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL: remoteURL,
	})
	if err != nil {
		return fmt.Errorf("failed to clone %s: %w", remoteURL, err)
	}
	return nil
}

// Pull merge-pulls the checkout at dir from origin. An already
// up-to-date worktree is a success, matching `git pull`.
func (c *Client) Pull(ctx context.Context, dir string) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree at %s: %w", dir, err)
	}

	//nolint:exhaustruct // go-git options default sensibly
	pullErr := worktree.PullContext(ctx, &git.PullOptions{RemoteName: remoteName})
	if pullErr != nil && !errors.Is(pullErr, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to pull %s: %w", dir, pullErr)
	}
	return nil
}

// Fetch updates remote refs of the checkout at dir without merging.
func (c *Client) Fetch(ctx context.Context, dir string) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	//nolint:exhaustruct // go-git options default sensibly
	fetchErr := repo.FetchContext(ctx, &git.FetchOptions{RemoteName: remoteName})
	if fetchErr != nil && !errors.Is(fetchErr, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to fetch %s: %w", dir, fetchErr)
	}
	return nil
}

// RemoteURL returns the first URL configured for origin.
func (c *Client) RemoteURL(_ context.Context, dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	remote, err := repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("failed to read remote %q at %s: %w", remoteName, dir, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q at %s has no URL configured", remoteName, dir)
	}
	return urls[0], nil
}
