package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/couchcryptid/weather-codes/internal/catalog"
	"github.com/couchcryptid/weather-codes/internal/export"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newLookupCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "lookup [table] <code|key>",
		Short: "Print the metadata of one code",
		Long: `Looks up a code by number or symbolic key. When the table is omitted,
DEFAULT_TABLE is used.`,
		Example: `  weathercodes lookup 82
  weathercodes lookup openmeteo thunderstorm_with_heavy_hail`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, ref := a.cfg.DefaultTable, args[0]
			if len(args) == 2 {
				table, ref = args[0], args[1]
			}
			if format == "" {
				format = a.cfg.ExportFormat
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			cat := a.oneShotCatalog()
			var entry catalog.Entry
			if code, convErr := strconv.Atoi(ref); convErr == nil {
				entry, err = cat.Lookup(table, code)
			} else {
				entry, err = cat.LookupKey(table, ref)
			}
			if err != nil {
				return err
			}

			var data []byte
			if f == export.FormatYAML {
				data, err = yaml.Marshal(entry)
			} else {
				data, err = json.MarshalIndent(entry, "", "  ")
				data = append(data, '\n')
			}
			if err != nil {
				return fmt.Errorf("encode entry: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: json or yaml (default: EXPORT_FORMAT)")
	return cmd
}
