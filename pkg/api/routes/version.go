package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/itinerary/pkg/tripsorter"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": tripsorter.Version,
	})
}
