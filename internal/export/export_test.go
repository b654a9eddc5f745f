package export

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/weather-codes/internal/catalog"
	"github.com/couchcryptid/weather-codes/internal/observability"
	"github.com/couchcryptid/weather-codes/pkg/weather"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 4, 26, 12, 0, 0, 0, time.UTC)

func newTestCatalog() *catalog.Catalog {
	return catalog.New(slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewMetricsForTesting())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toml")
}

func TestSnapshotsUseClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(fixedTime)
	exp := NewExporter(newTestCatalog(), clock)

	snaps, err := exp.Snapshots()
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "openmeteo", snaps[0].Table)
	assert.Equal(t, "wmo4677", snaps[1].Table)
	for _, s := range snaps {
		assert.True(t, fixedTime.Equal(s.GeneratedAt))
		assert.Equal(t, len(s.Entries), s.Count)
	}

	clock.Advance(time.Hour)
	later, err := exp.Snapshots("wmo4677")
	require.NoError(t, err)
	require.Len(t, later, 1)
	assert.True(t, fixedTime.Add(time.Hour).Equal(later[0].GeneratedAt))
}

func TestSnapshotsUnknownTable(t *testing.T) {
	exp := NewExporter(newTestCatalog(), clockwork.NewFakeClockAt(fixedTime))
	_, err := exp.Snapshots("metar")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export metar")
}

func TestWriteReadRoundTrip(t *testing.T) {
	c := newTestCatalog()
	snaps, err := NewExporter(c, clockwork.NewFakeClockAt(fixedTime)).Snapshots()
	require.NoError(t, err)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, format, snaps))

			got, err := Read(&buf, format)
			require.NoError(t, err)
			require.Len(t, got, len(snaps))

			for i := range got {
				assert.Equal(t, snaps[i].Table, got[i].Table)
				assert.True(t, snaps[i].GeneratedAt.Equal(got[i].GeneratedAt))
				assert.Empty(t, CheckSnapshot(c, got[i]))
			}
		})
	}
}

func TestWriteJSONShape(t *testing.T) {
	c := newTestCatalog()
	snaps, err := NewExporter(c, clockwork.NewFakeClockAt(fixedTime)).Snapshots("openmeteo")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, snaps))
	out := buf.String()
	assert.Contains(t, out, `"generatedAt": "2024-04-26T12:00:00Z"`)
	assert.Contains(t, out, `"key": "rain_showers_violent"`)
	assert.Contains(t, out, `"highestPossiblePrecipitationSeverity": "violent"`)
	assert.Contains(t, out, `"lowestPossiblePrecipitationSeverity": null`)
}

func TestWriteYAMLShape(t *testing.T) {
	c := newTestCatalog()
	snaps, err := NewExporter(c, clockwork.NewFakeClockAt(fixedTime)).Snapshots("openmeteo")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, snaps))
	out := buf.String()
	assert.Contains(t, out, "table: openmeteo")
	assert.Contains(t, out, "key: clear_sky")
	assert.NotContains(t, out, "record:", "record fields are inlined")
}

func TestUnknownFormat(t *testing.T) {
	require.Error(t, Write(io.Discard, "toml", nil))
	_, err := Read(strings.NewReader(""), "toml")
	require.Error(t, err)
}

func TestCheckSnapshotDetectsDrift(t *testing.T) {
	c := newTestCatalog()
	snaps, err := NewExporter(c, clockwork.NewFakeClockAt(fixedTime)).Snapshots("openmeteo")
	require.NoError(t, err)
	snap := snaps[0]

	// Violent showers downgraded, fog code dropped, an unknown code added.
	for i := range snap.Entries {
		if snap.Entries[i].Code == 82 {
			heavy := weather.SeverityHeavy
			snap.Entries[i].PossiblePrecipitationSeverities = []weather.PrecipitationSeverity{heavy}
			snap.Entries[i].HighestPossiblePrecipitationSeverity = &heavy
		}
	}
	kept := snap.Entries[:0]
	for _, e := range snap.Entries {
		if e.Code != 45 {
			kept = append(kept, e)
		}
	}
	snap.Entries = append(kept, catalog.Entry{Record: weather.Record{
		Code: 4, Key: "smoke", Description: "Smoke", Precipitation: weather.StateNone,
	}})

	problems := CheckSnapshot(c, snap)
	joined := strings.Join(problems, "\n")
	assert.Contains(t, joined, "code 82: possiblePrecipitationSeverities")
	assert.Contains(t, joined, "code 82: highestPossiblePrecipitationSeverity: expected violent, got heavy")
	assert.Contains(t, joined, "code 45: missing from snapshot")
	assert.Contains(t, joined, "code 4: not present in table openmeteo")
	assert.NotContains(t, joined, "count is", "count still matches the entries")
}

func TestCheckSnapshotStructuralProblems(t *testing.T) {
	c := newTestCatalog()
	snap := Snapshot{
		Table: "openmeteo",
		Count: 3,
		Entries: []catalog.Entry{
			{Record: weather.Record{Code: 0, Key: "clear_sky", Description: "Clear sky", Precipitation: "sunny"}},
			{Record: weather.Record{Code: 1, Key: "mainly_clear", Description: "Mainly clear", Precipitation: weather.StateNone}},
			{Record: weather.Record{Code: 1, Key: "mainly_clear", Description: "Mainly clear", Precipitation: weather.StateNone}},
			{Record: weather.Record{Code: 61, Key: "rain_slight", Description: "Rain", Precipitation: weather.StateCurrent,
				PossiblePrecipitationTypes: []weather.PrecipitationType{weather.TypeRain},
				PrimaryPrecipitationType:   weather.TypeRain}},
		},
	}

	joined := strings.Join(CheckSnapshot(c, snap), "\n")
	assert.Contains(t, joined, "count is 3 but snapshot holds 4 entries")
	assert.Contains(t, joined, `unknown precipitation state "sunny"`)
	assert.Contains(t, joined, "code 1 appears more than once")
	assert.Contains(t, joined, "possiblePrecipitationSeverities")
}

func TestCheckSnapshotUnknownTable(t *testing.T) {
	problems := CheckSnapshot(newTestCatalog(), Snapshot{Table: "metar"})
	joined := strings.Join(problems, "\n")
	assert.Contains(t, joined, "table has no records")
	assert.Contains(t, joined, `unknown table "metar"`)
}
