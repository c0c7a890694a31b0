package cmd

import (
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath string
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "gitws",
	Short: "Declarative multi-repository workspace manager",
	Long: `A CLI tool that keeps a set of local checkouts in sync with a
declarative manifest (workspace.toml).

Each manifest entry names a hosting provider, a remote path, and an
optional build command. gitws clones the projects that are missing,
pulls or fetches the ones already checked out, and can discover
existing checkouts by scanning a directory tree.`,
}

func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}
