package ctdf

type TransportMode string

const (
	TransportModeAir   TransportMode = "Air"
	TransportModeBus   TransportMode = "Bus"
	TransportModeTrain TransportMode = "Train"
)

// TransportModeMetadata holds the nouns used when narrating a leg of a given transport mode
type TransportModeMetadata struct {
	StationNoun string
	VehicleNoun string
}

var transportModeMetadata = map[TransportMode]TransportModeMetadata{
	TransportModeAir:   {StationNoun: "airport", VehicleNoun: "flight"},
	TransportModeTrain: {StationNoun: "railway station", VehicleNoun: "train"},
	TransportModeBus:   {StationNoun: "bus stop", VehicleNoun: "bus"},
}

func SupportedTransportModes() []TransportMode {
	return []TransportMode{TransportModeAir, TransportModeTrain, TransportModeBus}
}

func (t TransportMode) IsSupported() bool {
	_, exists := transportModeMetadata[t]
	return exists
}

func (t TransportMode) Metadata() TransportModeMetadata {
	return transportModeMetadata[t]
}
