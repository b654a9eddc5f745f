package catalog

import (
	"github.com/couchcryptid/weather-codes/pkg/weather"
	"github.com/couchcryptid/weather-codes/pkg/weather/openmeteo"
	"github.com/couchcryptid/weather-codes/pkg/weather/wmo4677"
)

// Source is a code table with its code type erased, so tables of different
// code types can sit in one catalog.
type Source struct {
	name    string
	entries func() []Entry
	check   func() []*weather.ValidationError
}

// FromTable wraps a typed table as a Source.
func FromTable[C ~int](t *weather.Table[C]) Source {
	return Source{
		name: t.Name(),
		entries: func() []Entry {
			items := t.Items()
			entries := make([]Entry, 0, len(items))
			for _, item := range items {
				entries = append(entries, NewEntry(item))
			}
			return entries
		},
		check: t.Check,
	}
}

// Name identifies the table.
func (s Source) Name() string { return s.name }

// Check runs the table's contract validation.
func (s Source) Check() []*weather.ValidationError { return s.check() }

// Entries returns the table's records with their derived severity range.
func (s Source) Entries() []Entry { return s.entries() }

// DefaultSources returns the bundled tables.
func DefaultSources() []Source {
	return []Source{
		FromTable(wmo4677.Table()),
		FromTable(openmeteo.Table()),
	}
}
