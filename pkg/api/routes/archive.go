package routes

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/itinerary/pkg/archive"
	"github.com/travigo/itinerary/pkg/ctdf"
)

type ArchiveLookup interface {
	Lookup(ctx context.Context, identifier string) (*ctdf.ArchivedItinerary, error)
}

func ArchiveRouter(router fiber.Router, lookup ArchiveLookup) {
	router.Get("/:identifier", func(c *fiber.Ctx) error {
		return getArchivedItinerary(c, lookup)
	})
}

func getArchivedItinerary(c *fiber.Ctx, lookup ArchiveLookup) error {
	identifier := c.Params("identifier")

	itinerary, err := lookup.Lookup(c.UserContext(), identifier)
	if errors.Is(err, archive.ErrNotFound) {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	} else if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Failed to lookup archived itinerary",
		})
	}

	itineraryReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic", "detailed"},
	}, itinerary)
	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sherrif could not reduce archived itinerary",
		})
	}

	return c.JSON(itineraryReduced)
}
