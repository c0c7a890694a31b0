package shell_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitws/infrastructure/shell"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("should do nothing for an empty command", func(t *testing.T) {
		t.Parallel()

		// given
		runner := shell.NewRunner()

		// when
		err := runner.Run(context.Background(), t.TempDir(), nil)

		// then
		require.NoError(t, err)
	})

	t.Run("should run the command inside the given directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		runner := shell.NewRunner()

		// when
		err := runner.Run(context.Background(), dir, []string{"sh", "-c", "touch built.txt"})

		// then
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "built.txt"))
	})

	t.Run("should tolerate a non-zero exit code", func(t *testing.T) {
		t.Parallel()

		// given
		runner := shell.NewRunner()

		// when
		err := runner.Run(context.Background(), t.TempDir(), []string{"sh", "-c", "exit 1"})

		// then
		require.NoError(t, err)
	})

	t.Run("should fail when the command cannot be spawned", func(t *testing.T) {
		t.Parallel()

		// given
		runner := shell.NewRunner()

		// when
		err := runner.Run(context.Background(), t.TempDir(), []string{"definitely-not-a-binary-xyz"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to run build command")
	})
}
