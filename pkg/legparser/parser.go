package legparser

import (
	"fmt"
	"strings"

	"github.com/travigo/itinerary/pkg/ctdf"
)

var transportModeNames = map[string]ctdf.TransportMode{
	"airplane": ctdf.TransportModeAir,
	"air":      ctdf.TransportModeAir,
	"train":    ctdf.TransportModeTrain,
	"bus":      ctdf.TransportModeBus,
}

// SupportedModeNames are the mode values advertised to clients
var SupportedModeNames = []string{"Airplane", "Train", "Bus"}

func ParseTransportMode(mode string) (ctdf.TransportMode, error) {
	transportMode, exists := transportModeNames[strings.ToLower(strings.TrimSpace(mode))]
	if !exists {
		return "", ErrUnsupportedTransportMode
	}

	return transportMode, nil
}

// ToTravelLeg validates a single record and builds the matching TravelLeg variant
func ToTravelLeg(index int, record LegRecord) (*ctdf.TravelLeg, error) {
	transportMode, err := ParseTransportMode(record.Transport.Mode)
	if err != nil {
		return nil, err
	}

	if record.Transport.VehicleID == "" {
		return nil, &RecordError{Index: index, Field: "transport.vehicle_id", Message: "is required"}
	}

	source, err := toStation(index, "source", record.Source, transportMode)
	if err != nil {
		return nil, err
	}
	destination, err := toStation(index, "destination", record.Destination, transportMode)
	if err != nil {
		return nil, err
	}

	transport := record.Transport

	var leg *ctdf.TravelLeg
	switch transportMode {
	case ctdf.TransportModeAir:
		leg, err = ctdf.NewAirLeg(source, destination, transport.VehicleID, transport.SeatNumber, transport.GateNumber, transport.BaggageCounter)
	case ctdf.TransportModeTrain:
		leg, err = ctdf.NewTrainLeg(source, destination, transport.VehicleID, transport.SeatNumber, transport.PlatformNumber)
	case ctdf.TransportModeBus:
		leg, err = ctdf.NewBusLeg(source, destination, transport.VehicleID, transport.SeatNumber)
	}

	if err != nil {
		return nil, fmt.Errorf("leg %d: %w", index, err)
	}

	return leg, nil
}

// ToTrips converts every record, the transport modes of all records are checked before
// any other validation so an unsupported mode always wins
func ToTrips(records []LegRecord) ([]*ctdf.Trip, error) {
	for _, record := range records {
		if _, err := ParseTransportMode(record.Transport.Mode); err != nil {
			return nil, err
		}
	}

	trips := make([]*ctdf.Trip, 0, len(records))
	for index, record := range records {
		leg, err := ToTravelLeg(index, record)
		if err != nil {
			return nil, err
		}

		trips = append(trips, ctdf.NewTrip(leg))
	}

	return trips, nil
}

func toStation(index int, name string, endpoint EndpointRecord, transportMode ctdf.TransportMode) (ctdf.Station, error) {
	location := endpoint.Location

	switch {
	case location.Station == "":
		return ctdf.Station{}, &RecordError{Index: index, Field: name + ".location.station", Message: "is required"}
	case location.Name == "":
		return ctdf.Station{}, &RecordError{Index: index, Field: name + ".location.name", Message: "is required"}
	case location.City == "":
		return ctdf.Station{}, &RecordError{Index: index, Field: name + ".location.city", Message: "is required"}
	}

	return ctdf.NewStation(ctdf.GeoPoint{Name: location.Name, City: location.City}, location.Station, transportMode)
}
