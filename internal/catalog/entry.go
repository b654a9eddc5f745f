package catalog

import "github.com/couchcryptid/weather-codes/pkg/weather"

// Entry is a record in its wire shape plus the severity range derived from it.
// A nil severity means the record has no current precipitation.
type Entry struct {
	weather.Record `yaml:",inline"`

	LowestPossiblePrecipitationSeverity  *weather.PrecipitationSeverity `json:"lowestPossiblePrecipitationSeverity" yaml:"lowestPossiblePrecipitationSeverity"`
	HighestPossiblePrecipitationSeverity *weather.PrecipitationSeverity `json:"highestPossiblePrecipitationSeverity" yaml:"highestPossiblePrecipitationSeverity"`
}

// NewEntry flattens an item and precomputes its severity extremes.
func NewEntry[C ~int](item weather.Item[C]) Entry {
	e := Entry{Record: weather.RecordOf(item)}
	if lo, hi, ok := weather.SeverityRange(item); ok {
		e.LowestPossiblePrecipitationSeverity = &lo
		e.HighestPossiblePrecipitationSeverity = &hi
	}
	return e
}
