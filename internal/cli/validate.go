package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/couchcryptid/weather-codes/internal/catalog"
	"github.com/couchcryptid/weather-codes/internal/export"
	"github.com/couchcryptid/weather-codes/pkg/weather"
	"github.com/spf13/cobra"
)

var errValidationFailed = errors.New("validation failed")

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func newValidateCommand(a *app) *cobra.Command {
	var snapshotPath, format string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every code table and, optionally, an exported snapshot",
		Long: `Runs the metadata contract over every registered table: field rules,
precipitation variants, key uniqueness and code/key consistency in both
directions. With --snapshot, a previously exported file is also checked
against the contract and compared with the tables for drift.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := a.oneShotCatalog()

			var phases []*phase
			for _, name := range cat.Names() {
				phases = append(phases, checkContract(cat, name), checkSeverityRanges(cat, name))
			}

			if snapshotPath != "" {
				f, err := snapshotFormat(format, snapshotPath, a.cfg.ExportFormat)
				if err != nil {
					return err
				}
				phases = append(phases, checkSnapshotFile(cat, snapshotPath, f))
			}

			return report(cmd.OutOrStdout(), phases)
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "exported snapshot file to check for drift")
	cmd.Flags().StringVar(&format, "format", "", "snapshot format: json or yaml (default: from file extension)")
	return cmd
}

func checkContract(cat *catalog.Catalog, table string) *phase {
	p := &phase{name: fmt.Sprintf("Contract: %s", table)}
	problems, err := cat.Problems(table)
	if err != nil {
		p.errorf("%v", err)
		return p
	}
	for _, prob := range problems {
		p.errorf("%s", prob.Error())
	}
	return p
}

// checkSeverityRanges verifies the derived range of every entry: both ends
// present exactly for current precipitation, ordered, and drawn from the list.
func checkSeverityRanges(cat *catalog.Catalog, table string) *phase {
	p := &phase{name: fmt.Sprintf("Severity ranges: %s", table)}
	entries, err := cat.List(table)
	if err != nil {
		p.errorf("%v", err)
		return p
	}

	for _, e := range entries {
		lo, hi := e.LowestPossiblePrecipitationSeverity, e.HighestPossiblePrecipitationSeverity
		current := e.Precipitation == weather.StateCurrent && len(e.PossiblePrecipitationSeverities) > 0
		switch {
		case !current && (lo != nil || hi != nil):
			p.errorf("code %d: severity range set for state %q", e.Code, e.Precipitation)
		case !current:
		case lo == nil || hi == nil:
			p.errorf("code %d: severity range missing", e.Code)
		case weather.CompareSeverity(*lo, *hi) > 0:
			p.errorf("code %d: lowest %s above highest %s", e.Code, *lo, *hi)
		case !slices.Contains(e.PossiblePrecipitationSeverities, *lo) || !slices.Contains(e.PossiblePrecipitationSeverities, *hi):
			p.errorf("code %d: range %s..%s not drawn from %v", e.Code, *lo, *hi, e.PossiblePrecipitationSeverities)
		}
	}
	return p
}

func checkSnapshotFile(cat *catalog.Catalog, path string, format export.Format) *phase {
	p := &phase{name: fmt.Sprintf("Snapshot: %s", filepath.Base(path))}

	f, err := os.Open(path)
	if err != nil {
		p.errorf("open snapshot: %v", err)
		return p
	}
	defer f.Close()

	snaps, err := export.Read(f, format)
	if err != nil {
		p.errorf("%v", err)
		return p
	}
	if len(snaps) == 0 {
		p.errorf("snapshot holds no tables")
	}
	for _, snap := range snaps {
		for _, msg := range export.CheckSnapshot(cat, snap) {
			p.errorf("%s: %s", snap.Table, msg)
		}
	}
	return p
}

func snapshotFormat(flag, path, fallback string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return export.FormatJSON, nil
	case ".yaml", ".yml":
		return export.FormatYAML, nil
	default:
		return export.ParseFormat(fallback)
	}
}

func report(w io.Writer, phases []*phase) error {
	fmt.Fprintln(w, "=== Weather Code Validation ===")
	fmt.Fprintln(w)

	failed := false
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			failed = true
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
		}
		fmt.Fprintf(w, "  %-42s %s\n", p.name, status)
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, e)
		}
	}

	if !failed {
		fmt.Fprintln(w, "\nAll validations passed.")
		return nil
	}
	fmt.Fprintln(w, "\nValidation FAILED.")
	return errValidationFailed
}
