package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitws/application"
	"github.com/rios0rios0/gitws/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	addPath     string
	addBuildCmd string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an existing local checkout to the workspace",
	Long: `Add registers a local checkout as a workspace project. The provider
and manifest path are inferred from the checkout's origin remote URL.`,
	RunE: runAdd,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	addCmd.Flags().StringVar(&addPath, "path", "",
		"Path of the local checkout")
	addCmd.Flags().StringVar(&addBuildCmd, "cmd", "",
		"Optional build command for the repository")
	_ = addCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(
		ctx context.Context,
		svc *application.WorkspaceService,
		ws *domain.Workspace,
	) (bool, error) {
		if err := svc.Add(ctx, ws, addPath, addBuildCmd); err != nil {
			return false, err
		}
		return true, nil
	})
}
