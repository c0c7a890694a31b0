package gitlab

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitws/domain"
)

const (
	providerName = "gitlab"
	baseURL      = "https://gitlab.com"
	hostFQDN     = "gitlab.com"
)

// Provider implements domain.Provider for GitLab.
type Provider struct {
	client domain.GitClient
}

// New creates a new GitLab provider backed by the given client.
func New(client domain.GitClient) domain.Provider {
	return &Provider{client: client}
}

func (p *Provider) Name() string    { return providerName }
func (p *Provider) BaseURL() string { return baseURL }

func (p *Provider) MatchesHost(host string) bool {
	return host == providerName || host == hostFQDN
}

func (p *Provider) Clone(ctx context.Context, repo domain.Repository) error {
	url := fmt.Sprintf("%s/%s", baseURL, repo.RemotePath)
	logger.Infof("- Clone %s...", url)

	if err := p.client.Clone(ctx, url, repo.LocalPath); err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}

func (p *Provider) Pull(ctx context.Context, repo domain.Repository) error {
	logger.Infof("- Pull %s...", repo.RemotePath)

	if err := p.client.Pull(ctx, repo.LocalPath); err != nil {
		return fmt.Errorf("failed to pull %s: %w", repo.RemotePath, err)
	}
	return nil
}

func (p *Provider) Fetch(ctx context.Context, repo domain.Repository) error {
	logger.Infof("- Fetch %s...", repo.RemotePath)

	if err := p.client.Fetch(ctx, repo.LocalPath); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", repo.RemotePath, err)
	}
	return nil
}
