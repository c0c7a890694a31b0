package domain

import "context"

// BuildRunner spawns a project's build command. Failure to spawn the
// process is an error; a non-zero exit of the spawned process is not —
// the build's own outcome is deliberately not inspected.
type BuildRunner interface {
	Run(ctx context.Context, dir string, argv []string) error
}
