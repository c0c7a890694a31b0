package cmd

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitws/application"
	"github.com/rios0rios0/gitws/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	rmPath     string
	rmProvider string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove a repository from the workspace",
	RunE:  runRemove,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rmCmd.Flags().StringVar(&rmPath, "path", "",
		"Remote path of the repository (e.g. owner/repo)")
	rmCmd.Flags().StringVar(&rmProvider, "provider", "",
		"Provider of the repository (name or domain)")
	_ = rmCmd.MarkFlagRequired("path")
	_ = rmCmd.MarkFlagRequired("provider")
	rootCmd.AddCommand(rmCmd)
}

func runRemove(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(
		_ context.Context,
		svc *application.WorkspaceService,
		ws *domain.Workspace,
	) (bool, error) {
		// The provider argument accepts the same spellings as host
		// resolution during add: "github" and "github.com" are the
		// same provider.
		prov, ok := svc.Registry().ForHost(rmProvider)
		if !ok {
			logger.Errorf("Invalid provider: %s", rmProvider)
			return false, nil
		}

		svc.Remove(ws, rmPath, prov)
		return true, nil
	})
}
