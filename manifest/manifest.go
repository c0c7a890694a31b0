// Package manifest persists the workspace as a TOML document. The file
// is the declarative source of truth: it records which projects the
// workspace should manage, never their observed local state.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/rios0rios0/gitws/domain"
)

// DefaultFile is the manifest file name looked up in the working directory.
const DefaultFile = "workspace.toml"

const fileMode = 0o644

// ErrNotFound is returned by Load when no manifest file exists. The
// calling layer treats this as "not a valid workspace here" and skips
// all operations instead of failing.
var ErrNotFound = errors.New("workspace manifest not found")

// Load reads and parses the manifest at the given path.
func Load(path string) (*domain.Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	var ws domain.Workspace
	if unmarshalErr := toml.Unmarshal(data, &ws); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse manifest %q: %w", path, unmarshalErr)
	}

	return &ws, nil
}

// Save writes the workspace back to the given path, overwriting any
// previous content.
func Save(path string, ws *domain.Workspace) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(ws); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), fileMode); err != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, err)
	}

	return nil
}
