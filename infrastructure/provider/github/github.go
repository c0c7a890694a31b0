package github

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitws/domain"
)

const (
	providerName = "github"
	baseURL      = "https://github.com"
	hostFQDN     = "github.com"
)

// Provider implements domain.Provider for GitHub. All remote actions
// are delegated to the injected GitClient; the provider itself only
// builds URLs and logs the action about to be taken.
type Provider struct {
	client domain.GitClient
}

// New creates a new GitHub provider backed by the given client.
func New(client domain.GitClient) domain.Provider {
	return &Provider{client: client}
}

func (p *Provider) Name() string    { return providerName }
func (p *Provider) BaseURL() string { return baseURL }

// MatchesHost accepts the bare provider name and its fully-qualified
// domain. Matching is case-sensitive.
func (p *Provider) MatchesHost(host string) bool {
	return host == providerName || host == hostFQDN
}

// Clone clones the repository into its derived local path.
func (p *Provider) Clone(ctx context.Context, repo domain.Repository) error {
	url := fmt.Sprintf("%s/%s", baseURL, repo.RemotePath)
	logger.Infof("- Clone %s...", url)

	if err := p.client.Clone(ctx, url, repo.LocalPath); err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}

// Pull runs a merge-pull inside the existing checkout.
func (p *Provider) Pull(ctx context.Context, repo domain.Repository) error {
	logger.Infof("- Pull %s...", repo.RemotePath)

	if err := p.client.Pull(ctx, repo.LocalPath); err != nil {
		return fmt.Errorf("failed to pull %s: %w", repo.RemotePath, err)
	}
	return nil
}

// Fetch updates remote refs inside the existing checkout.
func (p *Provider) Fetch(ctx context.Context, repo domain.Repository) error {
	logger.Infof("- Fetch %s...", repo.RemotePath)

	if err := p.client.Fetch(ctx, repo.LocalPath); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", repo.RemotePath, err)
	}
	return nil
}
