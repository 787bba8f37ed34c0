package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosbc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosbc",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gosbc v%s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		fmt.Fprintln(out, "Steel Beam Design Check Tool")
		fmt.Fprintln(out, "Based on IS 800:2007 (General Construction in Steel)")
		fmt.Fprintf(out, "Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
