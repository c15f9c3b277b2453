package journey

import "fmt"

type MalformedJourneyKind string

const (
	MalformedJourneyCycle        MalformedJourneyKind = "Cycle"
	MalformedJourneyDisconnected MalformedJourneyKind = "Disconnected"
	MalformedJourneyBranching    MalformedJourneyKind = "Branching"
)

// MalformedJourneyError is returned when the trips of a Journey do not form exactly one simple path
type MalformedJourneyError struct {
	Kind        MalformedJourneyKind
	StationCode string
	Message     string
}

func (e *MalformedJourneyError) Error() string {
	if e.StationCode == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%s at %s: %s", e.Kind, e.StationCode, e.Message)
}

func (e *MalformedJourneyError) Is(target error) bool {
	t, ok := target.(*MalformedJourneyError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}
