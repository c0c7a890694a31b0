// Package shell runs per-project build commands as subprocesses.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitws/domain"
)

// Runner spawns build commands with os/exec. Only a failure to spawn
// is reported as an error; the exit code of the build itself is logged
// and otherwise ignored.
type Runner struct{}

// NewRunner creates a new shell build runner.
func NewRunner() domain.BuildRunner {
	return &Runner{}
}

// Run executes argv[0] with the remaining elements as arguments, with
// the working directory set to dir.
func (r *Runner) Run(ctx context.Context, dir string, argv []string) error {
	if len(argv) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logger.Warnf(
			"build command %q exited with code %d",
			strings.Join(argv, " "), exitErr.ExitCode(),
		)
		logger.Debugf("build output:\n%s", output)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run build command %q: %w", argv[0], err)
	}

	logger.Debugf("build output:\n%s", output)
	return nil
}
