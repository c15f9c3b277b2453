package ctdf

import "fmt"

// Station is a stop for a single transport mode at a GeoPoint, eg. an airport or a railway station
type Station struct {
	Location      GeoPoint      `groups:"basic"`
	Code          string        `groups:"basic"`
	TransportMode TransportMode `groups:"basic"`
}

func NewStation(location GeoPoint, code string, transportMode TransportMode) (Station, error) {
	if !transportMode.IsSupported() {
		return Station{}, &ValidationError{
			Kind:    ValidationErrorUnsupportedMode,
			Message: fmt.Sprintf("'%s' station not supported", transportMode),
		}
	}

	return Station{
		Location:      location,
		Code:          code,
		TransportMode: transportMode,
	}, nil
}

// Equal compares stations by code and transport mode, the location is descriptive only
func (s Station) Equal(other Station) bool {
	return s.Code == other.Code && s.TransportMode == other.TransportMode
}

func (s Station) Description() string {
	return fmt.Sprintf("%s (%s) %s in %s", s.Location.Name, s.Code, s.TransportMode.Metadata().StationNoun, s.Location.City)
}

func (s Station) String() string {
	return s.Description()
}
