package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Git backend identifiers.
const (
	BackendCLI   = "cli"
	BackendGoGit = "gogit"
)

// Config is the optional tool configuration for gitws. Every field has
// a default, so running without a config file is fully supported.
type Config struct {
	Manifest string    `yaml:"manifest"` // Manifest file name, relative to the working directory
	Git      GitConfig `yaml:"git"`
	Log      LogConfig `yaml:"log"`
}

// GitConfig selects how version-control operations are executed.
type GitConfig struct {
	Backend string `yaml:"backend"` // "cli" (git subprocess) or "gogit" (in-process)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // logrus level name, e.g. "info", "debug"
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Manifest: "workspace.toml",
		Git:      GitConfig{Backend: BackendCLI},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads and parses a configuration file, filling unset fields with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{"."}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gitws.yaml",
		".gitws.yml",
		"gitws.yaml",
		"gitws.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// validate checks the configuration values against the known sets.
func validate(cfg *Config) error {
	if cfg.Manifest == "" {
		return errors.New("manifest file name must not be empty")
	}

	switch cfg.Git.Backend {
	case BackendCLI, BackendGoGit:
	default:
		return fmt.Errorf(
			"unknown git backend %q (expected %q or %q)",
			cfg.Git.Backend, BackendCLI, BackendGoGit,
		)
	}

	return nil
}
