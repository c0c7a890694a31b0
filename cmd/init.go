package cmd

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitws/domain"
	"github.com/rios0rios0/gitws/manifest"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty workspace manifest in the current directory",
	RunE:  runInit,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyLogging(cfg)

	if _, statErr := os.Stat(cfg.Manifest); statErr == nil {
		logger.Errorf("%s already exists", cfg.Manifest)
		return nil
	}

	if saveErr := manifest.Save(cfg.Manifest, &domain.Workspace{}); saveErr != nil {
		return saveErr
	}

	logger.Infof("Created empty workspace manifest %s", cfg.Manifest)
	return nil
}
