package cmd

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/rios0rios0/gitws/application"
	"github.com/rios0rios0/gitws/config"
	"github.com/rios0rios0/gitws/domain"
	"github.com/rios0rios0/gitws/infrastructure/gitcli"
	"github.com/rios0rios0/gitws/infrastructure/gogit"
	providerPkg "github.com/rios0rios0/gitws/infrastructure/provider"
	"github.com/rios0rios0/gitws/infrastructure/provider/github"
	"github.com/rios0rios0/gitws/infrastructure/provider/gitlab"
	"github.com/rios0rios0/gitws/infrastructure/shell"
)

// buildService wires the workspace service through a DIG container:
// config -> git client -> provider registry / build runner -> service.
func buildService(cfg *config.Config) (*application.WorkspaceService, error) {
	container := dig.New()

	constructors := []any{
		func() *config.Config { return cfg },
		newGitClient,
		shell.NewRunner,
		newProviderRegistry,
		application.NewWorkspaceService,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return nil, fmt.Errorf("failed to wire dependencies: %w", err)
		}
	}

	var svc *application.WorkspaceService
	if err := container.Invoke(func(s *application.WorkspaceService) {
		svc = s
	}); err != nil {
		return nil, fmt.Errorf("failed to build workspace service: %w", err)
	}

	return svc, nil
}

// newGitClient selects the version-control backend from the config.
func newGitClient(cfg *config.Config) domain.GitClient {
	if cfg.Git.Backend == config.BackendGoGit {
		return gogit.NewClient()
	}
	return gitcli.NewClient()
}

// newProviderRegistry builds the closed set of hosting providers.
// Adding a provider means adding its package and one line here.
func newProviderRegistry(client domain.GitClient) *providerPkg.Registry {
	registry := providerPkg.NewRegistry()
	registry.Register(github.New(client))
	registry.Register(gitlab.New(client))
	return registry
}
