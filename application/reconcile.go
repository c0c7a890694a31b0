package application

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitws/domain"
)

// Add registers the checkout at dir as a new project. The directory
// must contain git metadata; its origin remote URL determines the
// provider (by host) and the manifest path (the URL path with one
// leading slash stripped and a trailing ".git" dropped).
//
// Every parse or resolution failure is reported and leaves the
// workspace untouched, so a scan can keep going with its siblings.
// Adding an already-declared (provider, path) pair is a no-op.
func (s *WorkspaceService) Add(
	ctx context.Context,
	ws *domain.Workspace,
	dir, buildCmd string,
) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine current directory: %w", err)
	}

	abs := dir
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(cwd, dir)
	}

	if _, statErr := os.Stat(filepath.Join(abs, ".git")); statErr != nil {
		logger.Errorf("%s is not a git repository", dir)
		return nil
	}

	// The remote query runs with the directory exactly as given, which
	// may be a path relative to the working directory. Pinned by test.
	remoteURL, urlErr := s.client.RemoteURL(ctx, dir)
	if urlErr != nil {
		logger.Errorf("Invalid remote for %s: %v", dir, urlErr)
		return nil
	}

	parsed, parseErr := url.Parse(strings.TrimSpace(remoteURL))
	if parseErr != nil {
		logger.Errorf("Could not parse url %q: %v", remoteURL, parseErr)
		return nil
	}

	host := parsed.Hostname()
	if host == "" {
		logger.Errorf("Invalid remote-url %q. Could not determine host.", remoteURL)
		return nil
	}

	prov, ok := s.registry.ForHost(host)
	if !ok {
		logger.Errorf("Could not identify provider for %q", host)
		return nil
	}

	path := strings.TrimPrefix(parsed.Path, "/")
	path = strings.TrimSuffix(path, ".git")

	project := domain.Project{
		Provider: prov.Name(),
		Path:     path,
		Cmd:      splitBuildCmd(buildCmd),
	}

	if ws.Contains(project.Key()) {
		logger.Infof("Path %q with provider %q is already declared", path, prov.Name())
		return nil
	}

	logger.Infof("Path %q with provider %q", path, prov.Name())
	ws.Append(project)
	return nil
}

// Remove deletes the project matching (provider, path) from the
// workspace, preserving the order of the remaining entries. Removing
// an absent entry is not an error.
func (s *WorkspaceService) Remove(ws *domain.Workspace, path string, prov domain.Provider) {
	key := domain.ProjectKey{Provider: prov.Name(), Path: path}
	index := ws.Find(key)
	if index < 0 {
		return
	}

	ws.Remove(index)
	logger.Infof("Path %q with provider %q was removed", path, prov.Name())
}

// Scan walks the immediate entries of the given directory (or the
// working directory when dir is empty) and best-effort adds every
// entry that is not a regular file. It does not recurse.
func (s *WorkspaceService) Scan(ctx context.Context, ws *domain.Workspace, dir string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine current directory: %w", err)
	}

	root := cwd
	if dir != "" {
		if filepath.IsAbs(dir) {
			root = dir
		} else {
			root = filepath.Join(cwd, dir)
		}
	}

	logger.Infof("Scanning %s...", root)

	entries, readErr := os.ReadDir(root)
	if readErr != nil {
		return fmt.Errorf("failed to scan %s: %w", root, readErr)
	}

	for _, entry := range entries {
		full := filepath.Join(root, entry.Name())

		info, statErr := os.Stat(full)
		if statErr != nil {
			return fmt.Errorf("failed to inspect %s: %w", full, statErr)
		}
		if info.Mode().IsRegular() {
			continue
		}

		if addErr := s.Add(ctx, ws, full, ""); addErr != nil {
			logger.Debugf("skipping %s: %v", full, addErr)
		}
	}

	return nil
}

// splitBuildCmd splits an optional build-command string on single
// spaces. An empty string means "no build step".
func splitBuildCmd(buildCmd string) []string {
	if buildCmd == "" {
		return nil
	}
	return strings.Split(buildCmd, " ")
}
