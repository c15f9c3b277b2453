package legparser

func sampleEndpoints() (EndpointRecord, EndpointRecord) {
	return EndpointRecord{Location: LocationRecord{Name: "Buffalo", City: "New York", Station: "BUF"}},
		EndpointRecord{Location: LocationRecord{Name: "Albany", City: "New York", Station: "ALB"}}
}

func value(s string) *string { return &s }

// SampleRecords returns one example request per supported mode
func SampleRecords() map[string]LegRecord {
	source, destination := sampleEndpoints()

	return map[string]LegRecord{
		"Airplane": {
			Transport: TransportRecord{
				Mode:           "Airplane",
				VehicleID:      "ABC",
				SeatNumber:     value("B65"),
				GateNumber:     value("3A"),
				BaggageCounter: value("344"),
			},
			Source:      source,
			Destination: destination,
		},
		"Train": {
			Transport: TransportRecord{
				Mode:           "Train",
				VehicleID:      "T-12",
				SeatNumber:     value("B65"),
				PlatformNumber: value("7"),
			},
			Source:      source,
			Destination: destination,
		},
		"Bus": {
			Transport: TransportRecord{
				Mode:       "Bus",
				VehicleID:  "NY-123",
				SeatNumber: value("B65"),
			},
			Source:      source,
			Destination: destination,
		},
	}
}
