package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/echoproc"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and supported inputs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := echoproc.GetBuildInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "echoproc %s (commit %s, built %s, %s)\n",
				info.Version, info.GitCommit, info.BuildTime, info.GoVersion)
			fmt.Fprintf(out, "formats: %v\n", info.Formats)
			fmt.Fprintf(out, "models:  %v\n", info.Models)
		},
	}
}
