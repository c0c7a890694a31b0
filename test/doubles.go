// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"
	"os"

	"github.com/rios0rios0/gitws/domain"
)

// ---------------------------------------------------------------------------
// SpyGitClient
// ---------------------------------------------------------------------------

// CloneCall records the arguments of a single Clone invocation.
type CloneCall struct {
	RemoteURL string
	Dir       string
}

// SpyGitClient implements domain.GitClient as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyGitClient struct {
	// --- Clone ---
	CloneErr error
	// CreateDir makes Clone create the target directory, imitating the
	// side effect of a real clone.
	CreateDir bool
	// spy: calls received
	CloneCalls []CloneCall

	// --- Pull ---
	PullErr error
	// spy: dirs pulled
	PullDirs []string

	// --- Fetch ---
	FetchErr error
	// spy: dirs fetched
	FetchDirs []string

	// --- RemoteURL ---
	RemoteURLs   map[string]string // dir -> url
	RemoteURLErr error
	// spy: dirs queried, exactly as passed in
	RemoteURLDirs []string
}

var _ domain.GitClient = (*SpyGitClient)(nil)

func (c *SpyGitClient) Clone(_ context.Context, remoteURL, dir string) error {
	c.CloneCalls = append(c.CloneCalls, CloneCall{RemoteURL: remoteURL, Dir: dir})
	if c.CloneErr != nil {
		return c.CloneErr
	}
	if c.CreateDir {
		return os.MkdirAll(dir, 0o755)
	}
	return nil
}

func (c *SpyGitClient) Pull(_ context.Context, dir string) error {
	c.PullDirs = append(c.PullDirs, dir)
	return c.PullErr
}

func (c *SpyGitClient) Fetch(_ context.Context, dir string) error {
	c.FetchDirs = append(c.FetchDirs, dir)
	return c.FetchErr
}

func (c *SpyGitClient) RemoteURL(_ context.Context, dir string) (string, error) {
	c.RemoteURLDirs = append(c.RemoteURLDirs, dir)
	if c.RemoteURLErr != nil {
		return "", c.RemoteURLErr
	}
	if url, ok := c.RemoteURLs[dir]; ok {
		return url, nil
	}
	return "", fmt.Errorf("no remote configured for %s", dir)
}

// ---------------------------------------------------------------------------
// SpyBuildRunner
// ---------------------------------------------------------------------------

// RunCall records the arguments of a single Run invocation.
type RunCall struct {
	Dir  string
	Argv []string
}

// SpyBuildRunner implements domain.BuildRunner as a configurable spy.
type SpyBuildRunner struct {
	RunErr error
	// spy: calls received
	RunCalls []RunCall
}

var _ domain.BuildRunner = (*SpyBuildRunner)(nil)

func (r *SpyBuildRunner) Run(_ context.Context, dir string, argv []string) error {
	r.RunCalls = append(r.RunCalls, RunCall{Dir: dir, Argv: argv})
	return r.RunErr
}
