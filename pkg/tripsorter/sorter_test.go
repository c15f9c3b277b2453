package tripsorter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/itinerary/pkg/ctdf"
	"github.com/travigo/itinerary/pkg/journey"
	"github.com/travigo/itinerary/pkg/legparser"
)

type recordingArchive struct {
	saved []*ctdf.ArchivedItinerary
	err   error
}

func (r *recordingArchive) Save(_ context.Context, itinerary *ctdf.ArchivedItinerary) error {
	r.saved = append(r.saved, itinerary)
	return r.err
}

type memoryCache struct {
	values map[string]string
	gets   int
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	m.gets++

	value, exists := m.values[key]
	if !exists {
		return "", errors.New("value not found")
	}

	return value, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value string) error {
	m.values[key] = value
	return nil
}

const scenarioCSV = `mode,vehicle_id,seat_number,gate_number,baggage_counter,platform_number,source_name,source_city,source_station,destination_name,destination_city,destination_station
Train,NY TRAIN 01,B64,,,7,Newburgh,New York,SWF,Ithaca,New York,ITH
Bus,NY BUS 01,12,,,,Syracuse,New York,SYR,Newburgh,New York,SWF
Airplane,AB-001,45B,3A,344,,Albany,New York,ALB,Syracuse,New York,SYR
`

var scenarioNarration = []string{
	"1. Take flight AB-001 from Albany (ALB) airport in New York to Syracuse (SYR) airport in New York. Seat # 45B, gate 3A. Baggage drop at counter 344",
	"2. Take bus NY BUS 01 from Syracuse (SYR) bus stop in New York to Newburgh (SWF) bus stop in New York. Seat # 12",
	"3. Take train NY TRAIN 01 from Newburgh (SWF) railway station in New York to Ithaca (ITH) railway station in New York. Seat # B64 Platform # 7",
	"4. You have arrived at your final destination.",
}

func scenarioRecords(t *testing.T) []legparser.LegRecord {
	t.Helper()

	records, err := legparser.Decode(strings.NewReader(scenarioCSV), legparser.FormatCSV)
	require.NoError(t, err)

	return records
}

func TestSortArchivesResult(t *testing.T) {
	archive := &recordingArchive{}
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	sorter := &Sorter{
		Archive:    archive,
		DataSource: &ctdf.DataSource{Provider: "test"},
		now:        func() time.Time { return now },
	}

	result, err := sorter.Sort(context.Background(), "scenario", scenarioRecords(t))
	require.NoError(t, err)

	assert.Equal(t, "scenario", result.Identifier)
	assert.Equal(t, scenarioNarration, result.Narration)
	require.Len(t, result.Trips, 3)
	assert.Equal(t, "ALB", result.Trips[0].Leg.SourceStation.Code)

	require.Len(t, archive.saved, 1)
	assert.Equal(t, "scenario", archive.saved[0].PrimaryIdentifier)
	assert.Equal(t, now, archive.saved[0].CreationDateTime)
	assert.Equal(t, scenarioNarration, archive.saved[0].Narration)
	assert.Equal(t, "test", archive.saved[0].DataSource.Provider)
}

func TestSortGeneratesIdentifier(t *testing.T) {
	result, err := (&Sorter{}).Sort(context.Background(), "", scenarioRecords(t))
	require.NoError(t, err)

	assert.Len(t, result.Identifier, 36)
}

func TestSortArchiveFailureDoesNotFailSort(t *testing.T) {
	sorter := &Sorter{Archive: &recordingArchive{err: errors.New("mongo unavailable")}}

	result, err := sorter.Sort(context.Background(), "", scenarioRecords(t))
	require.NoError(t, err)

	assert.Equal(t, scenarioNarration, result.Narration)
}

func TestSortUsesCache(t *testing.T) {
	cache := &memoryCache{values: map[string]string{}}
	sorter := &Sorter{Cache: cache}

	first, err := sorter.Sort(context.Background(), "first", scenarioRecords(t))
	require.NoError(t, err)
	assert.Len(t, cache.values, 1)

	second, err := sorter.Sort(context.Background(), "second", scenarioRecords(t))
	require.NoError(t, err)

	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, first.Narration, second.Narration)
	assert.Equal(t, "second", second.Identifier)
	require.Len(t, second.Trips, 3)
	assert.Equal(t, first.Trips[2].Leg.Narration(), second.Trips[2].Leg.Narration())
}

func TestSortErrors(t *testing.T) {
	records := scenarioRecords(t)

	unsupported := append([]legparser.LegRecord{}, records...)
	unsupported[1].Transport.Mode = "Boat"

	_, err := (&Sorter{}).Sort(context.Background(), "", unsupported)
	assert.ErrorIs(t, err, legparser.ErrUnsupportedTransportMode)

	disconnected := records[1:]
	disconnected = append(disconnected, records[0])
	disconnected[2].Source.Location.Station = "BUF"

	archive := &recordingArchive{}
	_, err = (&Sorter{Archive: archive}).Sort(context.Background(), "", disconnected)

	var malformed *journey.MalformedJourneyError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, journey.MalformedJourneyDisconnected, malformed.Kind)
	assert.Empty(t, archive.saved)
}

func TestSortFilesKeepsArgumentOrder(t *testing.T) {
	directory := t.TempDir()

	scenarioFile := filepath.Join(directory, "scenario.csv")
	require.NoError(t, os.WriteFile(scenarioFile, []byte(scenarioCSV), 0o644))

	singleFile := filepath.Join(directory, "single.json")
	require.NoError(t, os.WriteFile(singleFile, []byte(`[{"transport": {"mode": "Bus", "vehicle_id": "X1"},
		"source": {"location": {"name": "A", "city": "C", "station": "A"}},
		"destination": {"location": {"name": "B", "city": "C", "station": "B"}}}]`), 0o644))

	results := SortFiles(context.Background(), &Sorter{}, "", []string{singleFile, filepath.Join(directory, "missing.yaml"), scenarioFile})
	require.Len(t, results, 3)

	assert.Equal(t, singleFile, results[0].Filename)
	require.NoError(t, results[0].Err)
	assert.Equal(t, []string{
		"1. Take bus X1 from A (A) bus stop in C to B (B) bus stop in C. No seat assigned",
		"2. You have arrived at your final destination.",
	}, results[0].Result.Narration)

	assert.Error(t, results[1].Err)

	require.NoError(t, results[2].Err)
	assert.Equal(t, scenarioNarration, results[2].Result.Narration)
}
