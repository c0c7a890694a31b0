package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Repository describes where a project lives on disk and on the remote.
// It is derived on demand and never persisted: LocalPath is a pure
// function of the project's remote path and the current working
// directory, so it stays correct across directory changes between
// operations.
type Repository struct {
	LocalPath  string
	RemotePath string
}

// Repository derives the local checkout location for this project from
// the current working directory and the final segment of the remote
// path, stripped of any extension (so "octo/widget.git" checks out
// into "widget").
func (p Project) Repository() (Repository, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Repository{}, fmt.Errorf("failed to determine current directory: %w", err)
	}

	folder := fileStem(p.Path)
	if folder == "" {
		return Repository{}, fmt.Errorf("cannot derive local folder from path %q", p.Path)
	}

	return Repository{
		LocalPath:  filepath.Join(cwd, folder),
		RemotePath: p.Path,
	}, nil
}

// ExistsLocal reports whether the local checkout directory is present.
// This is the only state bit driving sync decisions.
func (r Repository) ExistsLocal() bool {
	_, err := os.Stat(r.LocalPath)
	return err == nil
}

// fileStem returns the final path segment without its extension,
// mirroring how git names the directory it clones into.
func fileStem(remotePath string) string {
	base := filepath.Base(strings.TrimRight(remotePath, "/"))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
