package legparser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/itinerary/pkg/ctdf"
)

const scenarioJSON = `[
  {"transport": {"mode": "Train", "vehicle_id": "NY TRAIN 01", "seat_number": "B64", "platform_number": "7"},
   "source": {"location": {"name": "Newburgh", "city": "New York", "station": "SWF"}},
   "destination": {"location": {"name": "Ithaca", "city": "New York", "station": "ITH"}}},
  {"transport": {"mode": "Bus", "vehicle_id": "NY BUS 01", "seat_number": "12"},
   "source": {"location": {"name": "Syracuse", "city": "New York", "station": "SYR"}},
   "destination": {"location": {"name": "Newburgh", "city": "New York", "station": "SWF"}}},
  {"transport": {"mode": "Airplane", "vehicle_id": "AB-001", "seat_number": "45B", "gate_number": "3A", "baggage_counter": "344", "platform_number": null},
   "source": {"location": {"name": "Albany", "city": "New York", "station": "ALB"}},
   "destination": {"location": {"name": "Syracuse", "city": "New York", "station": "SYR"}}}
]`

const scenarioYAML = `
- transport: {mode: Train, vehicle_id: NY TRAIN 01, seat_number: B64, platform_number: "7"}
  source: {location: {name: Newburgh, city: New York, station: SWF}}
  destination: {location: {name: Ithaca, city: New York, station: ITH}}
- transport: {mode: Bus, vehicle_id: NY BUS 01, seat_number: "12"}
  source: {location: {name: Syracuse, city: New York, station: SYR}}
  destination: {location: {name: Newburgh, city: New York, station: SWF}}
- transport: {mode: Airplane, vehicle_id: AB-001, seat_number: 45B, gate_number: 3A, baggage_counter: "344"}
  source: {location: {name: Albany, city: New York, station: ALB}}
  destination: {location: {name: Syracuse, city: New York, station: SYR}}
`

const scenarioCSV = `mode,vehicle_id,seat_number,gate_number,baggage_counter,platform_number,source_name,source_city,source_station,destination_name,destination_city,destination_station
Train,NY TRAIN 01,B64,,,7,Newburgh,New York,SWF,Ithaca,New York,ITH
Bus,NY BUS 01,12,,,,Syracuse,New York,SYR,Newburgh,New York,SWF
Airplane,AB-001,45B,3A,344,,Albany,New York,ALB,Syracuse,New York,SYR
`

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		format Format
		input  string
	}{
		{FormatJSON, scenarioJSON},
		{FormatYAML, scenarioYAML},
		{FormatCSV, scenarioCSV},
	}

	for _, test := range tests {
		t.Run(string(test.format), func(t *testing.T) {
			records, err := Decode(strings.NewReader(test.input), test.format)
			require.NoError(t, err)
			require.Len(t, records, 3)

			assert.Equal(t, "Train", records[0].Transport.Mode)
			assert.Equal(t, "7", *records[0].Transport.PlatformNumber)
			assert.Nil(t, records[1].Transport.GateNumber)
			assert.Equal(t, "344", *records[2].Transport.BaggageCounter)
			assert.Nil(t, records[2].Transport.PlatformNumber)
			assert.Equal(t, "ALB", records[2].Source.Location.Station)

			trips, err := ToTrips(records)
			require.NoError(t, err)
			assert.Len(t, trips, 3)
			assert.Equal(t, ctdf.TransportModeAir, trips[2].Leg.TransportMode)
		})
	}
}

func TestFormatFromFilename(t *testing.T) {
	format, err := FormatFromFilename("legs/trip.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)

	_, err = FormatFromFilename("legs/trip")
	assert.Error(t, err)

	_, err = FormatFromFilename("legs/trip.xml")
	assert.Error(t, err)
}

func TestParseTransportMode(t *testing.T) {
	for name, expected := range map[string]ctdf.TransportMode{
		"Airplane": ctdf.TransportModeAir,
		"Air":      ctdf.TransportModeAir,
		"Train":    ctdf.TransportModeTrain,
		"bus":      ctdf.TransportModeBus,
	} {
		mode, err := ParseTransportMode(name)
		require.NoError(t, err)
		assert.Equal(t, expected, mode)
	}

	_, err := ParseTransportMode("Boat")
	assert.ErrorIs(t, err, ErrUnsupportedTransportMode)
}

func TestToTripsUnsupportedModeWins(t *testing.T) {
	records := []LegRecord{
		{Transport: TransportRecord{Mode: "Bus"}},
		{Transport: TransportRecord{Mode: "Boat", VehicleID: "B-1"}},
	}

	trips, err := ToTrips(records)

	assert.Nil(t, trips)
	assert.ErrorIs(t, err, ErrUnsupportedTransportMode)
	assert.Equal(t, "Transport mode not supported", err.Error())
}

func TestToTravelLegMissingFields(t *testing.T) {
	record := SampleRecords()["Bus"]
	record.Transport.VehicleID = ""

	_, err := ToTravelLeg(2, record)

	var recordError *RecordError
	require.ErrorAs(t, err, &recordError)
	assert.Equal(t, 2, recordError.Index)
	assert.Equal(t, "transport.vehicle_id", recordError.Field)

	record = SampleRecords()["Train"]
	record.Destination.Location.Station = ""

	_, err = ToTravelLeg(0, record)
	require.ErrorAs(t, err, &recordError)
	assert.Equal(t, "destination.location.station", recordError.Field)
}

func TestToTravelLegDegenerate(t *testing.T) {
	record := SampleRecords()["Airplane"]
	record.Destination = record.Source

	_, err := ToTravelLeg(0, record)

	assert.True(t, errors.Is(err, &ctdf.ValidationError{Kind: ctdf.ValidationErrorDegenerateLeg}))
}

func TestSampleRecordsAreValid(t *testing.T) {
	for _, name := range SupportedModeNames {
		record, exists := SampleRecords()[name]
		require.True(t, exists, name)

		_, err := ToTravelLeg(0, record)
		assert.NoError(t, err, name)
	}
}
