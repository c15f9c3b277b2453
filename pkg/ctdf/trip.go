package ctdf

import "fmt"

// Trip wraps a TravelLeg with the GeoPoints it connects
type Trip struct {
	Source      GeoPoint `groups:"basic"`
	Destination GeoPoint `groups:"basic"`

	Leg *TravelLeg `groups:"basic"`
}

func NewTrip(leg *TravelLeg) *Trip {
	return &Trip{
		Source:      leg.SourceStation.Location,
		Destination: leg.DestinationStation.Location,
		Leg:         leg,
	}
}

func (t *Trip) Equal(other *Trip) bool {
	return t.Leg.Equal(other.Leg)
}

func (t *Trip) String() string {
	return fmt.Sprintf("%s -> %s", t.Source, t.Destination)
}
