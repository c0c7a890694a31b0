package cmd

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitws/application"
	"github.com/rios0rios0/gitws/domain"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var scanPath string

//nolint:gochecknoglobals // required by cobra CLI pattern
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a directory for checkouts and add them to the workspace",
	Long: `Scan looks at the immediate entries of a directory (default: the
current directory) and registers every git checkout it finds, skipping
entries that are not checkouts. It does not recurse.`,
	RunE: runScan,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	scanCmd.Flags().StringVar(&scanPath, "path", "",
		"Directory to scan (default: current directory)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	return withWorkspace(func(
		ctx context.Context,
		svc *application.WorkspaceService,
		ws *domain.Workspace,
	) (bool, error) {
		// Scan is best-effort: a failure is reported, and whatever
		// progress was made is still persisted.
		if err := svc.Scan(ctx, ws, scanPath); err != nil {
			logger.Errorf("Scan failed: %v", err)
		}
		return true, nil
	})
}
