package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/echoproc"
)

func inspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PATH...",
		Short: "Report the echosounder that recorded each dataset",
		Long: `Dispatch each dataset and print its echosounder model and manufacturer.

Failures are printed with their kind (invalid-format, incompatible-file,
unsupported-type, corrupted, io). The command exits non-zero if any dataset
failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0

			for _, path := range args {
				p, err := echoproc.ProcessContext(cmd.Context(), path, a.options()...)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s\t%s\t%v\n", path, echoproc.Classify(err), err)
					continue
				}

				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", path, p.Format(), p.Model(), p.Manufacturer())
				for _, w := range p.Warnings() {
					fmt.Fprintf(out, "  warning: %s\n", w)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d datasets failed", failed, len(args))
			}
			return nil
		},
	}
}
