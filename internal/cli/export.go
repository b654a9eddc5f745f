package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/weather-codes/internal/export"
	"github.com/spf13/cobra"
)

func newExportCommand(a *app) *cobra.Command {
	var (
		tables []string
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write code tables with their derived severity ranges as JSON or YAML",
		Example: `  weathercodes export --format yaml --out tables.yaml
  weathercodes export --table openmeteo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format == "" {
				format = a.cfg.ExportFormat
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			snaps, err := export.NewExporter(a.oneShotCatalog(), a.clock).Snapshots(tables...)
			if err != nil {
				return err
			}

			if out == "" {
				return export.Write(cmd.OutOrStdout(), f, snaps)
			}
			if err := writeFile(out, func(w io.Writer) error { return export.Write(w, f, snaps) }); err != nil {
				return err
			}
			a.logger.Info("snapshot written", "path", out, "format", string(f), "tables", len(snaps))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tables, "table", nil, "table to export; repeat for several (default: all)")
	cmd.Flags().StringVar(&format, "format", "", "output format: json or yaml (default: EXPORT_FORMAT)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
