package journey

import (
	"fmt"
	"iter"

	"github.com/travigo/itinerary/pkg/ctdf"
)

// Journey is an unordered collection of Trips that should chain into a single itinerary
type Journey struct {
	trips []*ctdf.Trip
}

func NewJourney(trips []*ctdf.Trip) *Journey {
	return &Journey{
		trips: append([]*ctdf.Trip(nil), trips...),
	}
}

func (j *Journey) Len() int {
	return len(j.trips)
}

// SortedTrips validates the shape of the journey and returns its trips in travel order.
// Validation is complete before the sequence is returned so a caller never observes a
// partial itinerary.
func (j *Journey) SortedTrips() (iter.Seq[*ctdf.Trip], error) {
	if len(j.trips) == 0 {
		return func(yield func(*ctdf.Trip) bool) {}, nil
	}

	bySourceCode := make(map[string]*ctdf.Trip, len(j.trips))
	byDestinationCode := make(map[string]*ctdf.Trip, len(j.trips))

	for _, trip := range j.trips {
		sourceCode := trip.Leg.SourceStation.Code
		destinationCode := trip.Leg.DestinationStation.Code

		if _, exists := bySourceCode[sourceCode]; exists {
			return nil, &MalformedJourneyError{
				Kind:        MalformedJourneyBranching,
				StationCode: sourceCode,
				Message:     "more than one trip departs from this station",
			}
		}
		if _, exists := byDestinationCode[destinationCode]; exists {
			return nil, &MalformedJourneyError{
				Kind:        MalformedJourneyBranching,
				StationCode: destinationCode,
				Message:     "more than one trip arrives at this station",
			}
		}

		bySourceCode[sourceCode] = trip
		byDestinationCode[destinationCode] = trip
	}

	var head *ctdf.Trip
	headCandidates := 0
	for _, trip := range j.trips {
		if _, hasIncoming := byDestinationCode[trip.Leg.SourceStation.Code]; !hasIncoming {
			head = trip
			headCandidates++
		}
	}

	switch {
	case headCandidates == 0:
		return nil, &MalformedJourneyError{
			Kind:    MalformedJourneyCycle,
			Message: "every station is arrived at by another trip",
		}
	case headCandidates > 1:
		return nil, &MalformedJourneyError{
			Kind:    MalformedJourneyDisconnected,
			Message: fmt.Sprintf("%d trips could start the journey", headCandidates),
		}
	}

	// Sources and destinations are unique so the walk visits each trip at most once
	visited := 0
	for current := head; current != nil; current = bySourceCode[current.Leg.DestinationStation.Code] {
		visited++
	}

	// With duplicate sources and destinations already rejected, trips the walk never reached
	// can only close back on themselves, so this is a loop rather than a branch
	if visited != len(j.trips) {
		return nil, &MalformedJourneyError{
			Kind:    MalformedJourneyCycle,
			Message: fmt.Sprintf("%d trips form a loop detached from the journey", len(j.trips)-visited),
		}
	}

	return func(yield func(*ctdf.Trip) bool) {
		for current := head; current != nil; current = bySourceCode[current.Leg.DestinationStation.Code] {
			if !yield(current) {
				return
			}
		}
	}, nil
}
