package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonhull/echoproc/internal/catalog"
)

func catalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the dataset catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List catalogued datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Catalog.Path
			if path == "" {
				return errors.New("no catalog configured: pass --catalog or set catalog.path")
			}

			store, err := catalog.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tFORMAT\tMODEL\tSTATUS\tKIND\tSCANNED")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Path, e.Format, e.SonarModel, e.Status, e.ErrorKind, e.ScannedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
	list.Flags().String("catalog", "", "SQLite catalog to read")

	cmd.AddCommand(list)
	return cmd
}
