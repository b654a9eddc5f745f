// Package cli builds the weathercodes command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/couchcryptid/weather-codes/internal/catalog"
	"github.com/couchcryptid/weather-codes/internal/config"
	"github.com/couchcryptid/weather-codes/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app carries what the subcommands share once the root has loaded config.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	// Overridable in tests.
	sources    []catalog.Source
	clock      clockwork.Clock
	registerer prometheus.Registerer
}

// NewRootCommand returns the weathercodes command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:          "weathercodes",
		Short:        "Present-weather code tables (WMO 4677, open-meteo)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = observability.NewLogger(cfg, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json or text (overrides LOG_FORMAT)")

	root.AddCommand(
		newValidateCommand(a),
		newExportCommand(a),
		newLookupCommand(a),
		newServeCommand(a),
	)
	return root
}

// oneShotCatalog builds a catalog whose metrics go to a private registry,
// since nothing scrapes a short-lived command.
func (a *app) oneShotCatalog() *catalog.Catalog {
	return catalog.New(a.logger, observability.NewMetricsWith(prometheus.NewRegistry()), a.sources...)
}
