// Package weathercodes is the public entry point of the library: the metadata
// model, the two severity derivations, and the bundled code tables.
//
//	item, _ := weathercodes.WMO4677().LookupKey("rain_showers_violent")
//	sev, ok := weathercodes.HighestPossiblePrecipitationSeverity(item) // "violent", true
//
// The model lives in package weather and the tables in packages wmo4677 and
// openmeteo; the names here are aliases of those.
package weathercodes

import (
	"github.com/couchcryptid/weather-codes/pkg/weather"
	"github.com/couchcryptid/weather-codes/pkg/weather/openmeteo"
	"github.com/couchcryptid/weather-codes/pkg/weather/wmo4677"
)

type (
	PrecipitationSeverity = weather.PrecipitationSeverity
	PrecipitationType     = weather.PrecipitationType
	PrecipitationState    = weather.PrecipitationState
	Precipitation         = weather.Precipitation
	CurrentPrecipitation  = weather.CurrentPrecipitation
	Record                = weather.Record
	ValidationError       = weather.ValidationError

	Item[C ~int]     = weather.Item[C]
	Metadata[C ~int] = weather.Metadata[C]
	Codes[C ~int]    = weather.Codes[C]
	Table[C ~int]    = weather.Table[C]
)

const (
	SeveritySlight   = weather.SeveritySlight
	SeverityModerate = weather.SeverityModerate
	SeverityHeavy    = weather.SeverityHeavy
	SeverityViolent  = weather.SeverityViolent
)

// HighestPossiblePrecipitationSeverity returns the most severe label the item
// may represent, or false when it has no current precipitation.
func HighestPossiblePrecipitationSeverity[C ~int](item Item[C]) (PrecipitationSeverity, bool) {
	return weather.HighestPossiblePrecipitationSeverity(item)
}

// LowestPossiblePrecipitationSeverity returns the least severe label the item
// may represent, or false when it has no current precipitation.
func LowestPossiblePrecipitationSeverity[C ~int](item Item[C]) (PrecipitationSeverity, bool) {
	return weather.LowestPossiblePrecipitationSeverity(item)
}

// WMO4677 returns the WMO 4677 present-weather table.
func WMO4677() *Table[wmo4677.Code] { return wmo4677.Table() }

// OpenMeteo returns the open-meteo weather code table.
func OpenMeteo() *Table[openmeteo.Code] { return openmeteo.Table() }
