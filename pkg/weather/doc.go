// Package weather models present-weather code metadata and derives
// precipitation severity from it.
//
// # Records
//
// An [Item] describes one code of a code table: its number, a symbolic key
// unique within the table, an English description, three independent
// condition flags (dust or sandstorm, fog or mist, thunderstorm) and a
// [Precipitation] value. Precipitation is a closed union discriminated by
// [PrecipitationState]:
//
//	none               no precipitation at the station
//	in_preceding_hour  precipitation, fog or thunder ended within the last hour
//	current            precipitation at the time of observation
//
// Only [CurrentPrecipitation] carries detail: the possible severities, the
// possible precipitation types, and the primary type among them. Some codes
// are deliberately ambiguous ("moderate or heavy"), which is why severities
// and types are lists.
//
// # Severity
//
// Severities are ordered slight < moderate < heavy < violent through an
// explicit precedence table (see [CompareSeverity]).
// [HighestPossiblePrecipitationSeverity] and
// [LowestPossiblePrecipitationSeverity] reduce a record's list to one extreme
// and report false for records without current precipitation or with an
// empty list. They never panic.
//
// # Tables
//
// A [Table] pairs the hand-written key->code mapping with the code->metadata
// mapping. The two are authored separately, so [Table.Validate] checks that
// every record is stored under its own code, that every key resolves back to
// the record carrying it, and that current-precipitation records have
// non-empty lists, a primary type among the possible types, and only known
// labels. Field rules are declared as struct tags and evaluated with
// go-playground/validator.
//
// # Wire shape
//
// [Record] is the flat JSON/YAML layout used by exports and the lookup API:
//
//	{"code":61,"key":"rain_continuous_slight","description":"...",
//	 "precipitation":"current",
//	 "possiblePrecipitationSeverities":["slight"],
//	 "possiblePrecipitationTypes":["rain"],
//	 "primaryPrecipitationType":"rain",
//	 "dustOrSandstorm":false,"fogOrMist":false,"thunderstorm":false}
package weather
