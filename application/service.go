package application

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitws/domain"
	providerPkg "github.com/rios0rios0/gitws/infrastructure/provider"
)

// WorkspaceService implements every workspace-level operation: the
// sync fan-out (pull/clone/fetch/sync/build/list) and the manifest
// reconciliation (add/remove/scan).
//
// Sync operations derive local presence on every call instead of
// caching state, so each one is idempotent and safe to re-run after
// external changes to the filesystem. The manifest only records which
// projects exist, never their observed state.
type WorkspaceService struct {
	registry *providerPkg.Registry
	client   domain.GitClient
	runner   domain.BuildRunner
}

// NewWorkspaceService creates a service with the given provider
// registry, version-control client, and build runner.
func NewWorkspaceService(
	registry *providerPkg.Registry,
	client domain.GitClient,
	runner domain.BuildRunner,
) *WorkspaceService {
	return &WorkspaceService{
		registry: registry,
		client:   client,
		runner:   runner,
	}
}

// Registry exposes the provider registry for name/host resolution at
// the CLI boundary.
func (s *WorkspaceService) Registry() *providerPkg.Registry {
	return s.registry
}

// Pull merge-pulls every cloned project, in declared order. Projects
// without a local checkout are skipped with an informational log line.
// The first failure aborts the remaining projects.
func (s *WorkspaceService) Pull(ctx context.Context, ws *domain.Workspace) error {
	logger.Info("Pull...")
	for _, p := range ws.Projects {
		if err := s.pullProject(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Clone clones every project that has no local checkout yet.
func (s *WorkspaceService) Clone(ctx context.Context, ws *domain.Workspace) error {
	logger.Info("Clone...")
	for _, p := range ws.Projects {
		if err := s.cloneProject(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Fetch updates remote refs for every cloned project.
func (s *WorkspaceService) Fetch(ctx context.Context, ws *domain.Workspace) error {
	logger.Info("Fetch...")
	for _, p := range ws.Projects {
		if err := s.fetchProject(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Sync pulls cloned projects and clones the missing ones. It never
// fails due to a state mismatch, only when the underlying client does.
func (s *WorkspaceService) Sync(ctx context.Context, ws *domain.Workspace) error {
	logger.Info("Synchronize...")
	for _, p := range ws.Projects {
		if err := s.syncProject(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Build runs every project's build command inside its local checkout.
// Projects without a command succeed trivially.
func (s *WorkspaceService) Build(ctx context.Context, ws *domain.Workspace) error {
	logger.Info("Build...")
	for _, p := range ws.Projects {
		if err := s.buildProject(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// List returns the declared projects, optionally restricted to the
// ones with a local checkout.
func (s *WorkspaceService) List(ws *domain.Workspace, clonedOnly bool) ([]domain.Project, error) {
	if !clonedOnly {
		return ws.Projects, nil
	}

	var cloned []domain.Project
	for _, p := range ws.Projects {
		repo, err := p.Repository()
		if err != nil {
			return nil, err
		}
		if repo.ExistsLocal() {
			cloned = append(cloned, p)
		}
	}
	return cloned, nil
}

func (s *WorkspaceService) pullProject(ctx context.Context, p domain.Project) error {
	prov, repo, err := s.resolve(p)
	if err != nil {
		return err
	}

	if !repo.ExistsLocal() {
		logger.Infof("~ %s is not cloned yet", p.Path)
		return nil
	}
	return prov.Pull(ctx, repo)
}

func (s *WorkspaceService) cloneProject(ctx context.Context, p domain.Project) error {
	prov, repo, err := s.resolve(p)
	if err != nil {
		return err
	}

	if repo.ExistsLocal() {
		logger.Infof("~ %s is already cloned", p.Path)
		return nil
	}
	return prov.Clone(ctx, repo)
}

func (s *WorkspaceService) fetchProject(ctx context.Context, p domain.Project) error {
	prov, repo, err := s.resolve(p)
	if err != nil {
		return err
	}

	if !repo.ExistsLocal() {
		logger.Infof("~ %s is not cloned yet", p.Path)
		return nil
	}
	return prov.Fetch(ctx, repo)
}

func (s *WorkspaceService) syncProject(ctx context.Context, p domain.Project) error {
	repo, err := p.Repository()
	if err != nil {
		return err
	}

	if repo.ExistsLocal() {
		return s.pullProject(ctx, p)
	}
	return s.cloneProject(ctx, p)
}

func (s *WorkspaceService) buildProject(ctx context.Context, p domain.Project) error {
	if !p.HasBuildCmd() {
		return nil
	}

	repo, err := p.Repository()
	if err != nil {
		return err
	}

	return s.runner.Run(ctx, repo.LocalPath, p.Cmd)
}

// resolve looks up the project's provider and derives its repository.
// An unrecognized provider name in the manifest is an error, never a
// silent default.
func (s *WorkspaceService) resolve(p domain.Project) (domain.Provider, domain.Repository, error) {
	prov, err := s.registry.Get(p.Provider)
	if err != nil {
		return nil, domain.Repository{}, fmt.Errorf("project %s: %w", p.Path, err)
	}

	repo, repoErr := p.Repository()
	if repoErr != nil {
		return nil, domain.Repository{}, repoErr
	}

	return prov, repo, nil
}
