package ctdf

import (
	"time"

	"github.com/jinzhu/copier"
)

// ArchivedItinerary is the persisted outcome of a sorted journey
type ArchivedItinerary struct {
	PrimaryIdentifier string `groups:"basic"`

	CreationDateTime time.Time `groups:"detailed"`

	DataSource *DataSource `groups:"internal"`

	Narration []string `groups:"basic"`

	Legs []*ArchivedItineraryLeg `groups:"basic"`
}

type ArchivedItineraryLeg struct {
	TransportMode TransportMode `groups:"basic"`

	SourceStation      Station `groups:"basic"`
	DestinationStation Station `groups:"basic"`

	VehicleID  string  `groups:"basic"`
	SeatNumber *string `groups:"basic"`

	GateNumber     *string `groups:"detailed" bson:",omitempty" json:",omitempty"`
	BaggageCounter *string `groups:"detailed" bson:",omitempty" json:",omitempty"`
	PlatformNumber *string `groups:"detailed" bson:",omitempty" json:",omitempty"`
}

func NewArchivedItinerary(identifier string, trips []*Trip, narration []string, now time.Time) (*ArchivedItinerary, error) {
	archived := &ArchivedItinerary{
		PrimaryIdentifier: identifier,
		CreationDateTime:  now,
		Narration:         narration,
		Legs:              []*ArchivedItineraryLeg{},
	}

	for _, trip := range trips {
		archivedLeg := &ArchivedItineraryLeg{}

		err := copier.CopyWithOption(archivedLeg, trip.Leg, copier.Option{IgnoreEmpty: true, DeepCopy: true})
		if err != nil {
			return nil, err
		}

		if trip.Leg.Air != nil {
			archivedLeg.GateNumber = trip.Leg.Air.GateNumber
			archivedLeg.BaggageCounter = trip.Leg.Air.BaggageCounter
		}
		if trip.Leg.Train != nil {
			archivedLeg.PlatformNumber = trip.Leg.Train.PlatformNumber
		}

		archived.Legs = append(archived.Legs, archivedLeg)
	}

	return archived, nil
}
