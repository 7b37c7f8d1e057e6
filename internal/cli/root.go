// Package cli implements the echoproc command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonhull/echoproc"
	"github.com/simonhull/echoproc/internal/config"
	"github.com/simonhull/echoproc/internal/logging"
)

// app is the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
	closer  io.Closer
}

// NewRootCmd builds the echoproc command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:   "echoproc",
		Short: "Dispatch echosounder datasets to their processing objects",
		Long: `echoproc inspects NetCDF (.nc) and Zarr (.zarr) sonar datasets and
reports which echosounder recorded them, based on the global "keywords"
attribute. Supported instruments are EK60, EK80 and AZFP.

Configuration is read from --config, $HOME/.echoproc.yaml or ./.echoproc.yaml,
and ECHOPROC_* environment variables.
`,
		Example: `
  # Identify a single dataset
  echoproc inspect D20190101-T000000.nc

  # Scan a cruise directory and write an Excel report
  echoproc scan /data/cruise --report scan.xlsx --report-format excel

  # Record a scan in a catalog and list it
  echoproc scan /data/cruise --catalog cruise.db
  echoproc catalog list --catalog cruise.db
`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Config file override (default discovery: $HOME/.echoproc.yaml, then ./.echoproc.yaml)")

	cmd.AddCommand(inspectCmd(a))
	cmd.AddCommand(scanCmd(a))
	cmd.AddCommand(catalogCmd(a))
	cmd.AddCommand(configCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}

// flagKeys maps command flags onto config keys. Several commands share a
// flag name, so binding happens for the executing command only.
var flagKeys = map[string]string{
	"report-format": config.KeyReportFormat,
	"catalog":       config.KeyCatalogPath,
	"workers":       config.KeyScanWorkers,
}

// setup reads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}

	home, _ := os.UserHomeDir()
	if err := config.ReadFile(a.v, a.cfgFile, home); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, closer, err := logging.New(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	a.closer = closer

	if used := a.v.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "file", used)
	}
	return nil
}

// options returns the dispatch options implied by the configuration.
func (a *app) options() []echoproc.Option {
	opts := []echoproc.Option{
		echoproc.WithLogger(a.logger),
		echoproc.WithConcurrency(a.cfg.Scan.Workers),
	}
	if a.cfg.Scan.Strict {
		opts = append(opts, echoproc.WithStrict())
	}
	return opts
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
