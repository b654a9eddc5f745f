package weather

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemJSONShape(t *testing.T) {
	item := Item[int]{
		Code:          68,
		Key:           "rain_and_snow_slight",
		Description:   "Rain or drizzle and snow, slight",
		Precipitation: Current([]PrecipitationSeverity{SeveritySlight}, TypeRain, TypeSnow),
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "current", raw["precipitation"])
	assert.Equal(t, "rain", raw["primaryPrecipitationType"])
	assert.Equal(t, []any{"slight"}, raw["possiblePrecipitationSeverities"])
	assert.Equal(t, []any{"rain", "snow"}, raw["possiblePrecipitationTypes"])
	assert.Equal(t, false, raw["thunderstorm"])

	var back Item[int]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, item, back)
}

func TestItemJSONOmitsDetailsWhenNotCurrent(t *testing.T) {
	item := Item[int]{Code: 25, Key: "rain_showers_ended", Description: "Showers of rain ended",
		Precipitation: PrecipitationInPrecedingHour{}}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "possiblePrecipitationSeverities")
	assert.Contains(t, string(data), `"precipitation":"in_preceding_hour"`)

	var back Item[int]
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, PrecipitationInPrecedingHour{}, back.Precipitation)
}

func TestRecordOfNilPrecipitation(t *testing.T) {
	r := RecordOf(Item[int]{Code: 3, Key: "x", Description: "x"})
	assert.Equal(t, StateNone, r.Precipitation)
	assert.Empty(t, r.PossiblePrecipitationTypes)
}

func TestItemFromRecordRejects(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		wantErr string
	}{
		{
			name:    "unknown state",
			record:  Record{Code: 1, Precipitation: "sometimes"},
			wantErr: `unknown precipitation state "sometimes"`,
		},
		{
			name:    "empty state",
			record:  Record{Code: 1},
			wantErr: `unknown precipitation state ""`,
		},
		{
			name: "details on none",
			record: Record{Code: 2, Precipitation: StateNone,
				PossiblePrecipitationSeverities: []PrecipitationSeverity{SeveritySlight}},
			wantErr: `precipitation details given for state "none"`,
		},
		{
			name:    "primary on preceding hour",
			record:  Record{Code: 20, Precipitation: StateInPrecedingHour, PrimaryPrecipitationType: TypeDrizzle},
			wantErr: `precipitation details given for state "in_preceding_hour"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ItemFromRecord[int](tt.record)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUnmarshalJSONInvalid(t *testing.T) {
	var item Item[int]
	require.Error(t, json.Unmarshal([]byte(`{"code":1,"precipitation":"maybe"}`), &item))
	require.Error(t, json.Unmarshal([]byte(`{"code":"one"}`), &item))
}
