// Package openmeteo holds the present-weather codes emitted by the open-meteo
// forecast API in its "weather_code" fields. They are a subset of WMO 4677
// numbers, but open-meteo gives several of them different meanings (45 and 48
// are plain fog, 57 and 67 are "dense"/"heavy"), so the table is kept apart
// from package wmo4677.
package openmeteo

import "github.com/couchcryptid/weather-codes/pkg/weather"

const Name = "openmeteo"

var table = weather.NewTable(Name, codes, metadata)

// Table returns the open-meteo table.
func Table() *weather.Table[Code] { return table }

func Codes() weather.Codes[Code] { return table.Codes() }

func Metadata() weather.Metadata[Code] { return table.Metadata() }

// Lookup returns the metadata for a code.
func Lookup(code Code) (weather.Item[Code], bool) { return table.Lookup(code) }
