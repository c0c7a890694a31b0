// Package gitcli implements the GitClient capability by shelling out
// to the git binary. This is the default backend: it behaves exactly
// like the git the user has configured, including credential helpers.
package gitcli

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rios0rios0/gitws/domain"
)

// Client runs git as a subprocess. Every invocation blocks until the
// subprocess exits; cancellation goes through the context.
type Client struct{}

// NewClient creates a new git CLI client.
func NewClient() domain.GitClient {
	return &Client{}
}

// Clone clones remoteURL into dir, letting git create the directory.
func (c *Client) Clone(ctx context.Context, remoteURL, dir string) error {
	_, err := c.run(ctx, "", "clone", remoteURL, dir)
	return err
}

// Pull runs `git pull` inside dir.
func (c *Client) Pull(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, "pull")
	return err
}

// Fetch runs `git fetch` inside dir.
func (c *Client) Fetch(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, "fetch")
	return err
}

// RemoteURL returns the configured origin remote URL of the checkout
// at dir. The dir is passed through verbatim, relative or not.
func (c *Client) RemoteURL(ctx context.Context, dir string) (string, error) {
	out, err := c.run(ctx, dir, "config", "--get", "remote.origin.url")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// run executes git with the given arguments. An empty dir leaves the
// working directory of the subprocess at the process's own.
func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf(
			"git %s: %w: %s",
			strings.Join(args, " "), err, strings.TrimSpace(string(output)),
		)
	}

	return string(output), nil
}
