package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitws/application"
	"github.com/rios0rios0/gitws/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the build command of every repository that declares one",
	RunE:  runBuild,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(
		ctx context.Context,
		svc *application.WorkspaceService,
		ws *domain.Workspace,
	) (bool, error) {
		return false, svc.Build(ctx, ws)
	})
}
