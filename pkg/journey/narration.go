package journey

import (
	"fmt"
	"iter"

	"github.com/travigo/itinerary/pkg/ctdf"
)

const ArrivalNarration = "You have arrived at your final destination."

// Narrate numbers each trip from 1 and finishes with the arrival line
func Narrate(trips iter.Seq[*ctdf.Trip]) []string {
	var lines []string

	position := 1
	for trip := range trips {
		lines = append(lines, fmt.Sprintf("%d. %s", position, trip.Leg.Narration()))
		position++
	}

	return append(lines, fmt.Sprintf("%d. %s", position, ArrivalNarration))
}
