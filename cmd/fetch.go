package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitws/application"
	"github.com/rios0rios0/gitws/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch all cloned repositories",
	RunE:  runFetch,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(
		ctx context.Context,
		svc *application.WorkspaceService,
		ws *domain.Workspace,
	) (bool, error) {
		return false, svc.Fetch(ctx, ws)
	})
}
