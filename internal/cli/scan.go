package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/simonhull/echoproc"
	"github.com/simonhull/echoproc/internal/catalog"
	"github.com/simonhull/echoproc/internal/report"
)

// summaryOrder fixes the order kinds are printed in.
var summaryOrder = []echoproc.ErrorKind{
	echoproc.KindNone,
	echoproc.KindInvalidFormat,
	echoproc.KindIncompatibleFile,
	echoproc.KindUnsupportedType,
	echoproc.KindCorrupted,
	echoproc.KindIO,
	echoproc.KindCanceled,
}

func scanCmd(a *app) *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "scan DIR",
		Short: "Dispatch every dataset under a directory",
		Long: `Discover .nc files and .zarr stores under DIR, dispatch them in parallel
and print a summary by outcome.

With --report the per-dataset results are written as CSV or Excel. With
--catalog (or catalog.path in the config) they are upserted into a SQLite
catalog.`,
		Example: `
  echoproc scan /data/cruise
  echoproc scan /data/cruise --workers 8 --report scan.csv
  echoproc scan /data/cruise --report scan.xlsx --report-format excel --catalog cruise.db
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := echoproc.Discover(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("discovered datasets", "root", args[0], "count", len(paths))

			results := echoproc.ProcessAll(cmd.Context(), paths, a.options()...)
			for _, r := range results {
				if r.Err != nil {
					a.logger.Warn("dispatch failed", "path", r.Path, "kind", r.Kind().String(), "error", r.Err)
				}
			}

			writeSummary(cmd.OutOrStdout(), results)

			if reportPath != "" {
				w, err := report.WriterForFormat(a.cfg.Report.Format)
				if err != nil {
					return err
				}
				if err := w.Write(reportPath, report.RowsFromResults(results)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", reportPath)
			}

			if a.cfg.Catalog.Path != "" {
				if err := recordCatalog(a.cfg.Catalog.Path, results); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "catalog updated: %s\n", a.cfg.Catalog.Path)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&reportPath, "report", "r", "", "Write per-dataset results to this file")
	cmd.Flags().String("report-format", "", "Report format: csv or excel (default from config)")
	cmd.Flags().String("catalog", "", "SQLite catalog to record results in")
	cmd.Flags().Int("workers", 0, "Parallel dispatches (default from config)")

	return cmd
}

func writeSummary(out io.Writer, results []echoproc.Result) {
	counts := make(map[echoproc.ErrorKind]int)
	for _, r := range results {
		counts[r.Kind()]++
	}

	fmt.Fprintf(out, "scanned %d datasets\n", len(results))
	for _, kind := range summaryOrder {
		n := counts[kind]
		if n == 0 {
			continue
		}
		label := kind.String()
		if kind == echoproc.KindNone {
			label = "ok"
		}
		fmt.Fprintf(out, "  %-18s %d\n", label, n)
	}
}

func recordCatalog(path string, results []echoproc.Result) (err error) {
	store, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = store.Record(results)
	return err
}
