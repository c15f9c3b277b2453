package legparser

// LegRecord is the wire representation of a single travel leg
type LegRecord struct {
	Transport   TransportRecord `json:"transport" yaml:"transport"`
	Source      EndpointRecord  `json:"source" yaml:"source"`
	Destination EndpointRecord  `json:"destination" yaml:"destination"`
}

type TransportRecord struct {
	Mode           string  `json:"mode" yaml:"mode"`
	VehicleID      string  `json:"vehicle_id" yaml:"vehicle_id"`
	SeatNumber     *string `json:"seat_number,omitempty" yaml:"seat_number,omitempty"`
	GateNumber     *string `json:"gate_number,omitempty" yaml:"gate_number,omitempty"`
	BaggageCounter *string `json:"baggage_counter,omitempty" yaml:"baggage_counter,omitempty"`
	PlatformNumber *string `json:"platform_number,omitempty" yaml:"platform_number,omitempty"`
}

type EndpointRecord struct {
	Location LocationRecord `json:"location" yaml:"location"`
}

type LocationRecord struct {
	Name    string `json:"name" yaml:"name"`
	City    string `json:"city" yaml:"city"`
	Station string `json:"station" yaml:"station"`
}

// csvRecord is the flattened form of LegRecord, an empty cell is treated as absent
type csvRecord struct {
	Mode           string `csv:"mode"`
	VehicleID      string `csv:"vehicle_id"`
	SeatNumber     string `csv:"seat_number"`
	GateNumber     string `csv:"gate_number"`
	BaggageCounter string `csv:"baggage_counter"`
	PlatformNumber string `csv:"platform_number"`

	SourceName    string `csv:"source_name"`
	SourceCity    string `csv:"source_city"`
	SourceStation string `csv:"source_station"`

	DestinationName    string `csv:"destination_name"`
	DestinationCity    string `csv:"destination_city"`
	DestinationStation string `csv:"destination_station"`
}

func (c *csvRecord) toLegRecord() LegRecord {
	return LegRecord{
		Transport: TransportRecord{
			Mode:           c.Mode,
			VehicleID:      c.VehicleID,
			SeatNumber:     optional(c.SeatNumber),
			GateNumber:     optional(c.GateNumber),
			BaggageCounter: optional(c.BaggageCounter),
			PlatformNumber: optional(c.PlatformNumber),
		},
		Source: EndpointRecord{
			Location: LocationRecord{Name: c.SourceName, City: c.SourceCity, Station: c.SourceStation},
		},
		Destination: EndpointRecord{
			Location: LocationRecord{Name: c.DestinationName, City: c.DestinationCity, Station: c.DestinationStation},
		},
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
