package cmd

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitws/application"
	"github.com/rios0rios0/gitws/config"
	"github.com/rios0rios0/gitws/domain"
	"github.com/rios0rios0/gitws/manifest"
)

// workspaceFn is the body of a subcommand. The returned flag decides
// whether the (possibly mutated) workspace is persisted afterwards.
type workspaceFn func(
	ctx context.Context,
	svc *application.WorkspaceService,
	ws *domain.Workspace,
) (save bool, err error)

// withWorkspace loads the configuration, wires the service, loads the
// manifest, runs fn, and saves the manifest when fn asks for it.
// A missing manifest means "not a valid workspace here": the command
// is skipped with an informational message, never an error.
func withWorkspace(fn workspaceFn) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyLogging(cfg)

	svc, buildErr := buildService(cfg)
	if buildErr != nil {
		return buildErr
	}

	ws, loadErr := manifest.Load(cfg.Manifest)
	if loadErr != nil {
		if errors.Is(loadErr, manifest.ErrNotFound) {
			logger.Infof("That is not a valid workspace; missing %s", cfg.Manifest)
			return nil
		}
		return loadErr
	}

	save, runErr := fn(ctx, svc, ws)
	if runErr != nil {
		return runErr
	}

	if save {
		return manifest.Save(cfg.Manifest, ws)
	}
	return nil
}

// loadConfig resolves the configuration: the --config flag first, then
// the default search locations, then built-in defaults.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	path, err := config.FindConfigFile()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(path)
}

// applyLogging sets the log level from the config, with --verbose
// taking precedence.
func applyLogging(cfg *config.Config) {
	if verbose {
		logger.SetLevel(logger.DebugLevel)
		return
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warnf("Unknown log level %q, keeping default", cfg.Log.Level)
		return
	}
	logger.SetLevel(level)
}
