package mealplan

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/saadjs/mealplan-cli/cmd/mealplan.version=..." at release.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version/build metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printVersion(cmd)
	},
}

func printVersion(cmd *cobra.Command) error {
	if jsonOut {
		return printJSON(cmd, map[string]string{
			"version": version,
			"commit":  commit,
			"date":    date,
			"go":      runtime.Version(),
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "mealplan %s (commit %s, built %s, %s)\n", version, commit, date, runtime.Version())
	return nil
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
