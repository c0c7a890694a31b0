package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitws/application"
	"github.com/rios0rios0/gitws/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone all repositories that are not cloned yet",
	RunE:  runClone,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(cloneCmd)
}

func runClone(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(
		ctx context.Context,
		svc *application.WorkspaceService,
		ws *domain.Workspace,
	) (bool, error) {
		return false, svc.Clone(ctx, ws)
	})
}
