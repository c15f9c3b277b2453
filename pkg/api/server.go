package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/itinerary/pkg/api/routes"
	"github.com/travigo/itinerary/pkg/util"
)

// NewApp builds the web API, the archive routes are only registered when itineraryArchive is set
func NewApp(sorter routes.ItinerarySorter, itineraryArchive routes.ArchiveLookup) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)
	group.Get("stats", routes.Stats)

	routes.ItineraryRouter(group.Group("/itinerary"), sorter)

	if itineraryArchive != nil {
		if util.GetEnvironmentVariables()["AUTH0_DOMAIN"] != "" {
			routes.ArchiveRouter(group.Group("/itinerary/archive", EnsureValidToken()), itineraryArchive)
		} else {
			routes.ArchiveRouter(group.Group("/itinerary/archive"), itineraryArchive)
		}
	}

	return webApp
}

func SetupServer(listen string, sorter routes.ItinerarySorter, itineraryArchive routes.ArchiveLookup) error {
	return NewApp(sorter, itineraryArchive).Listen(listen)
}
