package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeveritiesAscending(t *testing.T) {
	sevs := Severities()
	require.Len(t, sevs, 4)
	for i := 1; i < len(sevs); i++ {
		assert.Equal(t, -1, CompareSeverity(sevs[i-1], sevs[i]), "%s < %s", sevs[i-1], sevs[i])
	}
}

func TestCompareSeverity(t *testing.T) {
	tests := []struct {
		a, b PrecipitationSeverity
		want int
	}{
		{SeveritySlight, SeverityModerate, -1},
		{SeverityModerate, SeverityHeavy, -1},
		{SeverityHeavy, SeverityViolent, -1},
		{SeveritySlight, SeverityViolent, -1},
		{SeverityViolent, SeveritySlight, 1},
		{SeverityHeavy, SeverityHeavy, 0},
		{"", SeveritySlight, -1},
		{"extreme", "", 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.a)+"_vs_"+string(tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, CompareSeverity(tt.a, tt.b))
		})
	}
}

func TestRank(t *testing.T) {
	r, ok := SeverityViolent.Rank()
	assert.True(t, ok)
	assert.Equal(t, 3, r)

	_, ok = PrecipitationSeverity("light").Rank()
	assert.False(t, ok)
}

func TestParseSeverity(t *testing.T) {
	sev, err := ParseSeverity("heavy")
	require.NoError(t, err)
	assert.Equal(t, SeverityHeavy, sev)

	_, err = ParseSeverity("Heavy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Heavy"`)
}
