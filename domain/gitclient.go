package domain

import "context"

// GitClient executes version-control operations against the filesystem
// and the network. The core treats it as a fallible capability and only
// interprets success or failure — it never reimplements git semantics.
type GitClient interface {
	// Clone clones remoteURL into the dir directory, creating it.
	Clone(ctx context.Context, remoteURL, dir string) error

	// Pull runs a merge-pull with the working directory set to dir.
	Pull(ctx context.Context, dir string) error

	// Fetch updates remote refs with the working directory set to dir.
	Fetch(ctx context.Context, dir string) error

	// RemoteURL returns the configured origin remote URL of the
	// checkout at dir.
	RemoteURL(ctx context.Context, dir string) (string, error)
}
