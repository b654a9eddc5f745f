// Package wmo4677 holds the WMO 4677 present-weather ("ww") code table used in
// SYNOP reports: codes 0 to 99, covering cloud development, haze and dust,
// fog, precipitation in the preceding hour, duststorms, blowing snow and the
// present-precipitation groups 50-99.
//
// Lookup by number or by symbolic key:
//
//	item, ok := wmo4677.Lookup(wmo4677.RainShowersViolent)
//	item, ok = wmo4677.Table().LookupKey("rain_showers_violent")
package wmo4677

import "github.com/couchcryptid/weather-codes/pkg/weather"

// Name identifies this table in tooling and over HTTP.
const Name = "wmo4677"

var table = weather.NewTable(Name, codes, metadata)

// Table returns the WMO 4677 table.
func Table() *weather.Table[Code] { return table }

// Codes returns a copy of the key->code mapping.
func Codes() weather.Codes[Code] { return table.Codes() }

// Metadata returns a copy of the code->metadata mapping.
func Metadata() weather.Metadata[Code] { return table.Metadata() }

// Lookup returns the metadata for a code.
func Lookup(code Code) (weather.Item[Code], bool) { return table.Lookup(code) }
