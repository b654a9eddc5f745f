package weather

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrecipitation struct{ NoPrecipitation }

func fields(problems []*ValidationError) []string {
	out := make([]string, len(problems))
	for i, p := range problems {
		out[i] = p.Field
	}
	return out
}

func TestValidateItemAcceptsEveryVariant(t *testing.T) {
	items := []Item[int]{
		{Code: 0, Key: "clear", Description: "Clear", Precipitation: NoPrecipitation{}},
		{Code: 20, Key: "drizzle_ended", Description: "Drizzle ended", Precipitation: PrecipitationInPrecedingHour{}},
		{Code: 68, Key: "rain_and_snow", Description: "Rain and snow", Precipitation: Current(
			[]PrecipitationSeverity{SeveritySlight}, TypeRain, TypeSnow)},
		{Code: 99, Key: "storm", Description: "Storm", Thunderstorm: true, Precipitation: &CurrentPrecipitation{
			PossiblePrecipitationSeverities: []PrecipitationSeverity{SeverityHeavy},
			PossiblePrecipitationTypes:      []PrecipitationType{TypeHail},
			PrimaryPrecipitationType:        TypeHail,
		}},
	}

	for _, item := range items {
		assert.NoError(t, ValidateItem(item), item.Key)
	}
}

func TestCheckItemProblems(t *testing.T) {
	tests := []struct {
		name      string
		item      Item[int]
		wantField string
	}{
		{
			name:      "missing key",
			item:      Item[int]{Code: 1, Description: "x", Precipitation: NoPrecipitation{}},
			wantField: "key",
		},
		{
			name:      "missing description",
			item:      Item[int]{Code: 1, Key: "x", Precipitation: NoPrecipitation{}},
			wantField: "description",
		},
		{
			name:      "code out of range",
			item:      Item[int]{Code: 100, Key: "x", Description: "x", Precipitation: NoPrecipitation{}},
			wantField: "code",
		},
		{
			name:      "missing precipitation",
			item:      Item[int]{Code: 1, Key: "x", Description: "x"},
			wantField: "precipitation",
		},
		{
			name:      "unsupported variant",
			item:      Item[int]{Code: 1, Key: "x", Description: "x", Precipitation: fakePrecipitation{}},
			wantField: "precipitation",
		},
		{
			name: "empty severities",
			item: Item[int]{Code: 61, Key: "x", Description: "x",
				Precipitation: Current(nil, TypeRain)},
			wantField: "precipitation.possiblePrecipitationSeverities",
		},
		{
			name: "unknown severity",
			item: Item[int]{Code: 61, Key: "x", Description: "x",
				Precipitation: Current([]PrecipitationSeverity{"extreme"}, TypeRain)},
			wantField: "precipitation.possiblePrecipitationSeverities[0]",
		},
		{
			name: "empty types",
			item: Item[int]{Code: 61, Key: "x", Description: "x",
				Precipitation: Current([]PrecipitationSeverity{SeveritySlight})},
			wantField: "precipitation.possiblePrecipitationTypes",
		},
		{
			name: "unknown type",
			item: Item[int]{Code: 61, Key: "x", Description: "x",
				Precipitation: Current([]PrecipitationSeverity{SeveritySlight}, "sleet")},
			wantField: "precipitation.possiblePrecipitationTypes[0]",
		},
		{
			name: "primary not possible",
			item: Item[int]{Code: 61, Key: "x", Description: "x", Precipitation: CurrentPrecipitation{
				PossiblePrecipitationSeverities: []PrecipitationSeverity{SeveritySlight},
				PossiblePrecipitationTypes:      []PrecipitationType{TypeRain},
				PrimaryPrecipitationType:        TypeSnow,
			}},
			wantField: "precipitation.primaryPrecipitationType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := checkItem("test", int(tt.item.Code), tt.item)
			require.NotEmpty(t, problems)
			assert.Contains(t, fields(problems), tt.wantField)

			err := ValidateItem(tt.item)
			require.Error(t, err)
			var ve *ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	withTable := &ValidationError{Table: "wmo4677", Code: 57, Field: "key", Message: "boom"}
	assert.Equal(t, "validation error in wmo4677 for code 57 field 'key': boom", withTable.Error())

	bare := &ValidationError{Code: 57, Field: "key", Message: "boom"}
	assert.Equal(t, "validation error for code 57 field 'key': boom", bare.Error())
}

func TestTableCheck(t *testing.T) {
	rain := Item[int]{Code: 61, Key: "rain", Description: "Rain",
		Precipitation: Current([]PrecipitationSeverity{SeveritySlight}, TypeRain)}
	clear := Item[int]{Code: 0, Key: "clear", Description: "Clear", Precipitation: NoPrecipitation{}}

	tests := []struct {
		name     string
		codes    Codes[int]
		metadata Metadata[int]
		wantMsg  string
	}{
		{
			name:    "empty table",
			wantMsg: "table has no records",
		},
		{
			name:     "code stored under wrong number",
			codes:    Codes[int]{"rain": 62},
			metadata: Metadata[int]{62: rain},
			wantMsg:  "record carries code 61 but is stored under 62",
		},
		{
			name:     "key missing from codes",
			codes:    Codes[int]{},
			metadata: Metadata[int]{61: rain},
			wantMsg:  `key "rain" is missing from the code mapping`,
		},
		{
			name:     "key resolves elsewhere",
			codes:    Codes[int]{"rain": 0, "clear": 0},
			metadata: Metadata[int]{0: clear, 61: rain},
			wantMsg:  `key "rain" resolves to code 0`,
		},
		{
			name:  "duplicate key",
			codes: Codes[int]{"rain": 61},
			metadata: Metadata[int]{61: rain, 0: {
				Code: 0, Key: "rain", Description: "Clear", Precipitation: NoPrecipitation{},
			}},
			wantMsg: `key "rain" is already used by code 0`,
		},
		{
			name:     "code without metadata",
			codes:    Codes[int]{"rain": 61, "snow": 71},
			metadata: Metadata[int]{61: rain},
			wantMsg:  `key "snow" maps to code 71 which has no metadata`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := NewTable("test", tt.codes, tt.metadata)
			err := tbl.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			for _, p := range tbl.Check() {
				assert.Equal(t, "test", p.Table)
			}
		})
	}
}

func TestTableValidAndLookups(t *testing.T) {
	rain := Item[int]{Code: 61, Key: "rain", Description: "Rain",
		Precipitation: Current([]PrecipitationSeverity{SeveritySlight, SeverityModerate}, TypeRain)}
	clear := Item[int]{Code: 0, Key: "clear", Description: "Clear", Precipitation: NoPrecipitation{}}
	tbl := NewTable("test", Codes[int]{"rain": 61, "clear": 0}, Metadata[int]{61: rain, 0: clear})

	require.NoError(t, tbl.Validate())
	assert.Equal(t, "test", tbl.Name())
	assert.Equal(t, 2, tbl.Len())

	code, ok := tbl.Code("rain")
	require.True(t, ok)
	assert.Equal(t, 61, code)

	item, ok := tbl.LookupKey("clear")
	require.True(t, ok)
	assert.Equal(t, StateNone, item.PrecipitationState())

	_, ok = tbl.Lookup(99)
	assert.False(t, ok)
	_, ok = tbl.LookupKey("hail")
	assert.False(t, ok)

	items := tbl.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 0, items[0].Code)
	assert.Equal(t, 61, items[1].Code)
}

func TestTableHandsOutCopies(t *testing.T) {
	rain := Item[int]{Code: 61, Key: "rain", Description: "Rain",
		Precipitation: Current([]PrecipitationSeverity{SeveritySlight}, TypeRain)}
	codes := Codes[int]{"rain": 61}
	tbl := NewTable("test", codes, Metadata[int]{61: rain})

	codes["snow"] = 71
	_, ok := tbl.Code("snow")
	assert.False(t, ok, "table must not alias the caller's map")

	item, _ := tbl.Lookup(61)
	c, _ := item.CurrentPrecipitation()
	c.PossiblePrecipitationSeverities[0] = SeverityViolent

	again, _ := tbl.Lookup(61)
	hi, _ := HighestPossiblePrecipitationSeverity(again)
	assert.Equal(t, SeveritySlight, hi)

	tbl.Metadata()[61] = Item[int]{}
	assert.Equal(t, 1, tbl.Len())
	_, ok = tbl.Lookup(61)
	assert.True(t, ok)
}

func TestPrecipitationTypes(t *testing.T) {
	types := PrecipitationTypes()
	assert.Len(t, types, 10)
	for _, typ := range types {
		assert.True(t, typ.Valid(), typ)
		assert.False(t, strings.Contains(string(typ), " "))
	}
	assert.False(t, PrecipitationType("sleet").Valid())
}
