package wmo4677_test

import (
	"testing"

	"github.com/couchcryptid/weather-codes/pkg/weather"
	"github.com/couchcryptid/weather-codes/pkg/weather/wmo4677"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIsValid(t *testing.T) {
	require.NoError(t, wmo4677.Table().Validate())
}

func TestCoversEveryCode(t *testing.T) {
	meta := wmo4677.Metadata()
	assert.Len(t, meta, 100)
	assert.Len(t, wmo4677.Codes(), 100)
	for c := wmo4677.Code(0); c <= 99; c++ {
		_, ok := meta[c]
		assert.True(t, ok, "missing code %d", c)
	}
}

func TestCodesAndMetadataAgree(t *testing.T) {
	codes := wmo4677.Codes()
	for code, item := range wmo4677.Metadata() {
		assert.Equal(t, code, item.Code, "metadata[%d].Code", code)
		assert.Equal(t, code, codes[item.Key], "codes[%q]", item.Key)
	}
	for key, code := range codes {
		item, ok := wmo4677.Lookup(code)
		require.True(t, ok, "key %q maps to unknown code %d", key, code)
		assert.Equal(t, key, item.Key)
	}
}

func TestSeverityRangeForEveryCode(t *testing.T) {
	for _, item := range wmo4677.Table().Items() {
		lo, okLo := weather.LowestPossiblePrecipitationSeverity(item)
		hi, okHi := weather.HighestPossiblePrecipitationSeverity(item)
		assert.Equal(t, okLo, okHi, item.Key)

		current, isCurrent := item.CurrentPrecipitation()
		assert.Equal(t, isCurrent, okLo, item.Key)
		if !isCurrent {
			continue
		}
		assert.LessOrEqual(t, weather.CompareSeverity(lo, hi), 0, item.Key)
		assert.Contains(t, current.PossiblePrecipitationSeverities, lo, item.Key)
		assert.Contains(t, current.PossiblePrecipitationSeverities, hi, item.Key)
	}
}

func TestSpotChecks(t *testing.T) {
	tests := []struct {
		code         wmo4677.Code
		key          string
		state        weather.PrecipitationState
		lowest       weather.PrecipitationSeverity
		highest      weather.PrecipitationSeverity
		primary      weather.PrecipitationType
		fog          bool
		dust         bool
		thunderstorm bool
	}{
		{code: wmo4677.Mist, key: "mist", state: weather.StateNone, fog: true},
		{code: wmo4677.LightningNoThunder, key: "lightning_no_thunder", state: weather.StateNone},
		{code: wmo4677.RecentFog, key: "recent_fog", state: weather.StateInPrecedingHour},
		{
			code: wmo4677.FreezingDrizzleModerateOrHeavy, key: "freezing_drizzle_moderate_or_heavy",
			state: weather.StateCurrent, lowest: weather.SeverityModerate, highest: weather.SeverityHeavy,
			primary: weather.TypeFreezingDrizzle,
		},
		{
			code: wmo4677.DrizzleAndRainSlight, key: "drizzle_and_rain_slight",
			state: weather.StateCurrent, lowest: weather.SeveritySlight, highest: weather.SeveritySlight,
			primary: weather.TypeRain,
		},
		{
			code: wmo4677.DiamondDust, key: "diamond_dust",
			state: weather.StateCurrent, lowest: weather.SeveritySlight, highest: weather.SeveritySlight,
			primary: weather.TypeIcePrisms,
		},
		{
			code: wmo4677.SnowGrains, key: "snow_grains",
			state: weather.StateCurrent, lowest: weather.SeveritySlight, highest: weather.SeverityHeavy,
			primary: weather.TypeSnowGrains,
		},
		{
			code: wmo4677.RainShowersViolent, key: "rain_showers_violent",
			state: weather.StateCurrent, lowest: weather.SeverityViolent, highest: weather.SeverityViolent,
			primary: weather.TypeRain,
		},
		{
			code: wmo4677.ThunderstormWithDuststorm, key: "thunderstorm_with_duststorm",
			state: weather.StateNone, dust: true, thunderstorm: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			item, ok := wmo4677.Lookup(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.key, item.Key)
			assert.Equal(t, tt.state, item.PrecipitationState())
			assert.Equal(t, tt.fog, item.FogOrMist)
			assert.Equal(t, tt.dust, item.DustOrSandstorm)
			assert.Equal(t, tt.thunderstorm, item.Thunderstorm)

			lo, hi, _ := weather.SeverityRange(item)
			assert.Equal(t, tt.lowest, lo)
			assert.Equal(t, tt.highest, hi)

			current, _ := item.CurrentPrecipitation()
			assert.Equal(t, tt.primary, current.PrimaryPrecipitationType)
		})
	}
}

func TestMutatingCopiesLeavesTableIntact(t *testing.T) {
	codes := wmo4677.Codes()
	delete(codes, "mist")
	_, ok := wmo4677.Table().Code("mist")
	assert.True(t, ok)
}
