package export

import (
	"fmt"
	"slices"

	"github.com/couchcryptid/weather-codes/internal/catalog"
	"github.com/couchcryptid/weather-codes/pkg/weather"
)

// CheckSnapshot validates a snapshot's records against the metadata contract
// and compares them with the catalog's current table. It returns one message
// per problem.
func CheckSnapshot(c *catalog.Catalog, snap Snapshot) []string {
	var problems []string
	errorf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if snap.Count != len(snap.Entries) {
		errorf("count is %d but snapshot holds %d entries", snap.Count, len(snap.Entries))
	}

	codes := make(weather.Codes[int], len(snap.Entries))
	metadata := make(weather.Metadata[int], len(snap.Entries))
	for i, e := range snap.Entries {
		item, err := weather.ItemFromRecord[int](e.Record)
		if err != nil {
			errorf("entry %d: %v", i, err)
			continue
		}
		if _, dup := metadata[item.Code]; dup {
			errorf("entry %d: code %d appears more than once", i, item.Code)
			continue
		}
		metadata[item.Code] = item
		if _, dup := codes[item.Key]; !dup {
			codes[item.Key] = item.Code
		}
	}
	for _, p := range weather.NewTable(snap.Table, codes, metadata).Check() {
		problems = append(problems, p.Error())
	}

	current, err := c.List(snap.Table)
	if err != nil {
		errorf("%v", err)
		return problems
	}

	byCode := make(map[int]catalog.Entry, len(current))
	for _, e := range current {
		byCode[e.Code] = e
	}
	seen := make(map[int]bool, len(snap.Entries))
	for _, e := range snap.Entries {
		seen[e.Code] = true
		want, ok := byCode[e.Code]
		if !ok {
			errorf("code %d: not present in table %s", e.Code, snap.Table)
			continue
		}
		problems = append(problems, compareEntries(want, e)...)
	}
	for _, e := range current {
		if !seen[e.Code] {
			errorf("code %d: missing from snapshot", e.Code)
		}
	}
	return problems
}

// compareEntries reports every field where got differs from want.
func compareEntries(want, got catalog.Entry) []string {
	var out []string
	diff := func(field string, w, g any) {
		out = append(out, fmt.Sprintf("code %d: %s: expected %v, got %v", want.Code, field, w, g))
	}

	if got.Key != want.Key {
		diff("key", want.Key, got.Key)
	}
	if got.Description != want.Description {
		diff("description", want.Description, got.Description)
	}
	if got.Precipitation != want.Precipitation {
		diff("precipitation", want.Precipitation, got.Precipitation)
	}
	if !slices.Equal(got.PossiblePrecipitationSeverities, want.PossiblePrecipitationSeverities) {
		diff("possiblePrecipitationSeverities", want.PossiblePrecipitationSeverities, got.PossiblePrecipitationSeverities)
	}
	if !slices.Equal(got.PossiblePrecipitationTypes, want.PossiblePrecipitationTypes) {
		diff("possiblePrecipitationTypes", want.PossiblePrecipitationTypes, got.PossiblePrecipitationTypes)
	}
	if got.PrimaryPrecipitationType != want.PrimaryPrecipitationType {
		diff("primaryPrecipitationType", want.PrimaryPrecipitationType, got.PrimaryPrecipitationType)
	}
	if got.DustOrSandstorm != want.DustOrSandstorm {
		diff("dustOrSandstorm", want.DustOrSandstorm, got.DustOrSandstorm)
	}
	if got.FogOrMist != want.FogOrMist {
		diff("fogOrMist", want.FogOrMist, got.FogOrMist)
	}
	if got.Thunderstorm != want.Thunderstorm {
		diff("thunderstorm", want.Thunderstorm, got.Thunderstorm)
	}
	if !ptrSeverityEq(got.LowestPossiblePrecipitationSeverity, want.LowestPossiblePrecipitationSeverity) {
		diff("lowestPossiblePrecipitationSeverity", ptrSeverity(want.LowestPossiblePrecipitationSeverity), ptrSeverity(got.LowestPossiblePrecipitationSeverity))
	}
	if !ptrSeverityEq(got.HighestPossiblePrecipitationSeverity, want.HighestPossiblePrecipitationSeverity) {
		diff("highestPossiblePrecipitationSeverity", ptrSeverity(want.HighestPossiblePrecipitationSeverity), ptrSeverity(got.HighestPossiblePrecipitationSeverity))
	}
	return out
}

func ptrSeverityEq(a, b *weather.PrecipitationSeverity) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

func ptrSeverity(s *weather.PrecipitationSeverity) string {
	if s == nil {
		return "<nil>"
	}
	return string(*s)
}
