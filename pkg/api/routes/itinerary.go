package routes

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/itinerary/pkg/api/stats"
	"github.com/travigo/itinerary/pkg/ctdf"
	"github.com/travigo/itinerary/pkg/journey"
	"github.com/travigo/itinerary/pkg/legparser"
	"github.com/travigo/itinerary/pkg/tripsorter"
)

type ItinerarySorter interface {
	Sort(ctx context.Context, identifier string, records []legparser.LegRecord) (*tripsorter.Result, error)
}

type detailedSortResponse struct {
	Identifier string            `groups:"basic"`
	Narration  []string          `groups:"basic"`
	Legs       []*ctdf.TravelLeg `groups:"basic"`
}

func ItineraryRouter(router fiber.Router, sorter ItinerarySorter) {
	router.Get("/sort", getSortSamples)
	router.Post("/sort", func(c *fiber.Ctx) error {
		return postSort(c, sorter)
	})
}

func getSortSamples(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"supported transport modes": legparser.SupportedModeNames,
		"sample requests":           legparser.SampleRecords(),
	})
}

func postSort(c *fiber.Ctx, sorter ItinerarySorter) error {
	var records []legparser.LegRecord
	if err := c.BodyParser(&records); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Request body must be a list of travel legs",
		})
	}

	result, err := sorter.Sort(c.UserContext(), c.Query("identifier"), records)
	stats.RecordSort(err)
	if err != nil {
		return sortErrorResponse(c, err)
	}

	if !c.QueryBool("detailed") {
		return c.JSON(result.Narration)
	}

	response := detailedSortResponse{
		Identifier: result.Identifier,
		Narration:  result.Narration,
		Legs:       []*ctdf.TravelLeg{},
	}
	for _, trip := range result.Trips {
		response.Legs = append(response.Legs, trip.Leg)
	}

	responseReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, response)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce itinerary",
		})
	}

	return c.JSON(responseReduced)
}

func sortErrorResponse(c *fiber.Ctx, err error) error {
	var validationError *ctdf.ValidationError
	var recordError *legparser.RecordError
	var malformedJourneyError *journey.MalformedJourneyError

	switch {
	case errors.Is(err, legparser.ErrUnsupportedTransportMode):
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.As(err, &validationError):
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
			"kind":  validationError.Kind,
		})
	case errors.As(err, &recordError):
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
			"kind":  "MalformedRecord",
		})
	case errors.As(err, &malformedJourneyError):
		c.SendStatus(fiber.StatusUnprocessableEntity)
		return c.JSON(fiber.Map{
			"error": err.Error(),
			"kind":  malformedJourneyError.Kind,
		})
	default:
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to sort itinerary",
		})
	}
}
