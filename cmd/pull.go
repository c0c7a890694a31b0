package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitws/application"
	"github.com/rios0rios0/gitws/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull all cloned repositories",
	RunE:  runPull,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(pullCmd)
}

func runPull(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(
		ctx context.Context,
		svc *application.WorkspaceService,
		ws *domain.Workspace,
	) (bool, error) {
		return false, svc.Pull(ctx, ws)
	})
}
