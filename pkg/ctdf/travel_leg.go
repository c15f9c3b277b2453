package ctdf

import (
	"fmt"
	"strings"
)

// AirDetails is the mode specific payload of an Air TravelLeg
type AirDetails struct {
	GateNumber     *string `groups:"detailed"`
	BaggageCounter *string `groups:"detailed"`
}

// TrainDetails is the mode specific payload of a Train TravelLeg
type TrainDetails struct {
	PlatformNumber *string `groups:"detailed"`
}

// BusDetails is empty, a Bus leg carries only the shared fields
type BusDetails struct{}

// LegDetails is implemented by the per mode payloads
type LegDetails interface {
	transportMode() TransportMode
}

func (AirDetails) transportMode() TransportMode   { return TransportModeAir }
func (TrainDetails) transportMode() TransportMode { return TransportModeTrain }
func (BusDetails) transportMode() TransportMode   { return TransportModeBus }

// TravelLeg is a single hop between two stations of the same transport mode.
// Exactly one of Air or Train is set for those modes, neither is set for Bus.
type TravelLeg struct {
	TransportMode TransportMode `groups:"basic"`

	SourceStation      Station `groups:"basic"`
	DestinationStation Station `groups:"basic"`

	VehicleID  string  `groups:"basic"`
	SeatNumber *string `groups:"basic"`

	Air   *AirDetails   `groups:"detailed" json:",omitempty"`
	Train *TrainDetails `groups:"detailed" json:",omitempty"`
}

func NewTravelLeg(transportMode TransportMode, source Station, destination Station, vehicleID string, seatNumber *string, details LegDetails) (*TravelLeg, error) {
	if !transportMode.IsSupported() {
		return nil, &ValidationError{
			Kind:    ValidationErrorUnsupportedMode,
			Message: fmt.Sprintf("'%s' travel leg not supported", transportMode),
		}
	}

	if source.TransportMode != transportMode || destination.TransportMode != transportMode {
		return nil, &ValidationError{
			Kind: ValidationErrorModeMismatch,
			Message: fmt.Sprintf("%s leg cannot run from a %s station to a %s station",
				transportMode, source.TransportMode, destination.TransportMode),
		}
	}

	if details != nil && details.transportMode() != transportMode {
		return nil, &ValidationError{
			Kind:    ValidationErrorModeMismatch,
			Message: fmt.Sprintf("%s leg given %s details", transportMode, details.transportMode()),
		}
	}

	if source.Equal(destination) {
		return nil, &ValidationError{
			Kind:    ValidationErrorDegenerateLeg,
			Message: fmt.Sprintf("leg starts and ends at %s", source.Code),
		}
	}

	leg := &TravelLeg{
		TransportMode:      transportMode,
		SourceStation:      source,
		DestinationStation: destination,
		VehicleID:          vehicleID,
		SeatNumber:         seatNumber,
	}

	switch d := details.(type) {
	case AirDetails:
		leg.Air = &d
	case *AirDetails:
		leg.Air = d
	case TrainDetails:
		leg.Train = &d
	case *TrainDetails:
		leg.Train = d
	}

	switch transportMode {
	case TransportModeAir:
		if leg.Air == nil {
			leg.Air = &AirDetails{}
		}
	case TransportModeTrain:
		if leg.Train == nil {
			leg.Train = &TrainDetails{}
		}
	}

	return leg, nil
}

func NewAirLeg(source Station, destination Station, vehicleID string, seatNumber *string, gateNumber *string, baggageCounter *string) (*TravelLeg, error) {
	return NewTravelLeg(TransportModeAir, source, destination, vehicleID, seatNumber, AirDetails{
		GateNumber:     gateNumber,
		BaggageCounter: baggageCounter,
	})
}

func NewTrainLeg(source Station, destination Station, vehicleID string, seatNumber *string, platformNumber *string) (*TravelLeg, error) {
	return NewTravelLeg(TransportModeTrain, source, destination, vehicleID, seatNumber, TrainDetails{
		PlatformNumber: platformNumber,
	})
}

func NewBusLeg(source Station, destination Station, vehicleID string, seatNumber *string) (*TravelLeg, error) {
	return NewTravelLeg(TransportModeBus, source, destination, vehicleID, seatNumber, BusDetails{})
}

// Equal compares legs by their source and destination stations only
func (l *TravelLeg) Equal(other *TravelLeg) bool {
	return l.SourceStation.Equal(other.SourceStation) && l.DestinationStation.Equal(other.DestinationStation)
}

// Narration renders the leg as a single human readable instruction
func (l *TravelLeg) Narration() string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Take %s %s from %s to %s. %s",
		l.TransportMode.Metadata().VehicleNoun,
		l.VehicleID,
		l.SourceStation.Description(),
		l.DestinationStation.Description(),
		seatNote(l.SeatNumber),
	)

	switch l.TransportMode {
	case TransportModeAir:
		var gateNumber, baggageCounter *string
		if l.Air != nil {
			gateNumber = l.Air.GateNumber
			baggageCounter = l.Air.BaggageCounter
		}

		if gateNumber == nil {
			builder.WriteString(", gate not assigned. ")
		} else {
			fmt.Fprintf(&builder, ", gate %s. ", *gateNumber)
		}

		if baggageCounter == nil {
			builder.WriteString("Baggage will be automatically transferred from your last leg")
		} else {
			fmt.Fprintf(&builder, "Baggage drop at counter %s", *baggageCounter)
		}
	case TransportModeTrain:
		if l.Train == nil || l.Train.PlatformNumber == nil {
			builder.WriteString(" Platform # not available")
		} else {
			fmt.Fprintf(&builder, " Platform # %s", *l.Train.PlatformNumber)
		}
	case TransportModeBus:
	}

	return builder.String()
}

func (l *TravelLeg) String() string {
	return l.Narration()
}

func seatNote(seatNumber *string) string {
	if seatNumber == nil {
		return "No seat assigned"
	}

	return fmt.Sprintf("Seat # %s", *seatNumber)
}
