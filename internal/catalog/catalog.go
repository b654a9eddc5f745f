// Package catalog registers the code tables, validates them once at startup
// and serves lookups over precomputed per-code views.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/couchcryptid/weather-codes/internal/observability"
	"github.com/couchcryptid/weather-codes/pkg/weather"
)

var (
	ErrUnknownTable = errors.New("unknown table")
	ErrUnknownCode  = errors.New("unknown code")
	ErrUnknownKey   = errors.New("unknown key")
)

// TableInfo summarizes a registered table.
type TableInfo struct {
	Name     string `json:"name" yaml:"name"`
	Count    int    `json:"count" yaml:"count"`
	Valid    bool   `json:"valid" yaml:"valid"`
	Problems int    `json:"problems" yaml:"problems"`
}

type view struct {
	entries  []Entry // ordered by code
	byCode   map[int]int
	byKey    map[string]int
	problems []*weather.ValidationError
}

// Catalog is an immutable set of validated tables. It is safe for concurrent use.
type Catalog struct {
	views   map[string]*view
	names   []string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New builds a catalog from the given sources, or from DefaultSources when
// none are given. Invalid tables are still served; they make the catalog
// report not ready.
func New(logger *slog.Logger, metrics *observability.Metrics, sources ...Source) *Catalog {
	if len(sources) == 0 {
		sources = DefaultSources()
	}

	c := &Catalog{
		views:   make(map[string]*view, len(sources)),
		logger:  logger,
		metrics: metrics,
	}

	for _, src := range sources {
		v := &view{
			entries:  src.Entries(),
			problems: src.Check(),
		}
		v.byCode = make(map[int]int, len(v.entries))
		v.byKey = make(map[string]int, len(v.entries))
		for i, e := range v.entries {
			v.byCode[e.Code] = i
			if _, dup := v.byKey[e.Key]; !dup {
				v.byKey[e.Key] = i
			}
		}

		c.views[src.Name()] = v
		c.names = append(c.names, src.Name())
		metrics.ValidationProblems.WithLabelValues(src.Name()).Set(float64(len(v.problems)))

		if len(v.problems) > 0 {
			logger.Error("code table failed validation",
				"table", src.Name(), "problems", len(v.problems), "first", v.problems[0].Error())
			continue
		}
		logger.Info("code table loaded", "table", src.Name(), "codes", len(v.entries))
	}

	slices.Sort(c.names)
	metrics.TablesLoaded.Set(float64(len(c.views)))
	return c
}

// Names returns the registered table names in sorted order.
func (c *Catalog) Names() []string { return slices.Clone(c.names) }

// Tables summarizes every registered table.
func (c *Catalog) Tables() []TableInfo {
	infos := make([]TableInfo, 0, len(c.names))
	for _, name := range c.names {
		v := c.views[name]
		infos = append(infos, TableInfo{
			Name:     name,
			Count:    len(v.entries),
			Valid:    len(v.problems) == 0,
			Problems: len(v.problems),
		})
	}
	return infos
}

// Problems returns the contract violations found in a table.
func (c *Catalog) Problems(table string) ([]*weather.ValidationError, error) {
	v, ok := c.views[table]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTable, table)
	}
	return slices.Clone(v.problems), nil
}

// CheckReadiness returns nil when every table passed validation.
func (c *Catalog) CheckReadiness(_ context.Context) error {
	var invalid []string
	for _, name := range c.names {
		if len(c.views[name].problems) > 0 {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("code tables failed validation: %v", invalid)
	}
	return nil
}

// List returns every entry of a table ordered by code.
func (c *Catalog) List(table string) ([]Entry, error) {
	v, err := c.view(table, "list")
	if err != nil {
		return nil, err
	}
	c.metrics.Lookups.WithLabelValues(table, "list", "hit").Inc()
	return cloneEntries(v.entries), nil
}

// Lookup returns the entry for a code.
func (c *Catalog) Lookup(table string, code int) (Entry, error) {
	v, err := c.view(table, "code")
	if err != nil {
		return Entry{}, err
	}
	i, ok := v.byCode[code]
	if !ok {
		c.metrics.Lookups.WithLabelValues(table, "code", "miss").Inc()
		c.logger.Debug("code not found", "table", table, "code", code)
		return Entry{}, fmt.Errorf("%w %d in %s", ErrUnknownCode, code, table)
	}
	c.metrics.Lookups.WithLabelValues(table, "code", "hit").Inc()
	return cloneEntry(v.entries[i]), nil
}

// LookupKey returns the entry for a symbolic key.
func (c *Catalog) LookupKey(table, key string) (Entry, error) {
	v, err := c.view(table, "key")
	if err != nil {
		return Entry{}, err
	}
	i, ok := v.byKey[key]
	if !ok {
		c.metrics.Lookups.WithLabelValues(table, "key", "miss").Inc()
		c.logger.Debug("key not found", "table", table, "key", key)
		return Entry{}, fmt.Errorf("%w %q in %s", ErrUnknownKey, key, table)
	}
	c.metrics.Lookups.WithLabelValues(table, "key", "hit").Inc()
	return cloneEntry(v.entries[i]), nil
}

func (c *Catalog) view(table, method string) (*view, error) {
	v, ok := c.views[table]
	if !ok {
		c.metrics.Lookups.WithLabelValues("", method, "unknown_table").Inc()
		return nil, fmt.Errorf("%w %q", ErrUnknownTable, table)
	}
	return v, nil
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// cloneEntry copies the slices and pointers so callers cannot alter the
// catalog's views.
func cloneEntry(e Entry) Entry {
	e.PossiblePrecipitationSeverities = slices.Clone(e.PossiblePrecipitationSeverities)
	e.PossiblePrecipitationTypes = slices.Clone(e.PossiblePrecipitationTypes)
	if e.LowestPossiblePrecipitationSeverity != nil {
		lo := *e.LowestPossiblePrecipitationSeverity
		e.LowestPossiblePrecipitationSeverity = &lo
	}
	if e.HighestPossiblePrecipitationSeverity != nil {
		hi := *e.HighestPossiblePrecipitationSeverity
		e.HighestPossiblePrecipitationSeverity = &hi
	}
	return e
}
