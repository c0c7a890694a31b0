package domain

import "context"

// Provider abstracts a Git hosting service (GitHub, GitLab, etc.).
// Each implementation knows its base URL and how to perform the three
// remote actions against a repository by delegating to a GitClient.
// The set of providers is closed: implementations are registered once
// at startup and an unknown name or host resolves to "no provider",
// never to a default.
type Provider interface {
	// Name returns the provider identifier as stored in the manifest
	// (e.g. "github").
	Name() string

	// BaseURL returns the HTTPS base URL of the hosting service,
	// without a trailing slash.
	BaseURL() string

	// MatchesHost returns true if the given remote URL host belongs to
	// this provider. Matching is case-sensitive and covers both the
	// bare provider name and its fully-qualified domain.
	MatchesHost(host string) bool

	// Clone clones the repository into its local path. The remote URL
	// is built from the base URL and the repository's remote path.
	Clone(ctx context.Context, repo Repository) error

	// Pull runs a merge-pull inside the existing local checkout.
	Pull(ctx context.Context, repo Repository) error

	// Fetch updates remote refs inside the existing local checkout
	// without merging.
	Fetch(ctx context.Context, repo Repository) error
}
