package weathercodes

import (
	"testing"

	"github.com/couchcryptid/weather-codes/pkg/weather/openmeteo"
	"github.com/couchcryptid/weather-codes/pkg/weather/wmo4677"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeTables(t *testing.T) {
	require.NoError(t, WMO4677().Validate())
	require.NoError(t, OpenMeteo().Validate())
	assert.Equal(t, wmo4677.Name, WMO4677().Name())
	assert.Equal(t, openmeteo.Name, OpenMeteo().Name())
}

func TestFacadeDerivations(t *testing.T) {
	item, ok := WMO4677().LookupKey("rain_showers_violent")
	require.True(t, ok)

	hi, ok := HighestPossiblePrecipitationSeverity(item)
	require.True(t, ok)
	assert.Equal(t, SeverityViolent, hi)

	lo, ok := LowestPossiblePrecipitationSeverity(item)
	require.True(t, ok)
	assert.Equal(t, SeverityViolent, lo)

	var fog Item[openmeteo.Code]
	fog, ok = OpenMeteo().Lookup(openmeteo.Fog)
	require.True(t, ok)
	_, ok = HighestPossiblePrecipitationSeverity(fog)
	assert.False(t, ok)
}
