package cmd

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitws/application"
	"github.com/rios0rios0/gitws/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var listClonedOnly bool

//nolint:gochecknoglobals // required by cobra CLI pattern
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all workspace repositories",
	RunE:  runList,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	listCmd.Flags().BoolVar(&listClonedOnly, "cloned", false,
		"List only cloned workspace repositories")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(
		_ context.Context,
		svc *application.WorkspaceService,
		ws *domain.Workspace,
	) (bool, error) {
		projects, err := svc.List(ws, listClonedOnly)
		if err != nil {
			return false, err
		}

		for _, p := range projects {
			logger.Infof(" - %s", p.Path)
		}
		return false, nil
	})
}
