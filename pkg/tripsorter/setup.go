package tripsorter

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/itinerary/pkg/archive"
	"github.com/travigo/itinerary/pkg/cachedresults"
	"github.com/travigo/itinerary/pkg/ctdf"
	"github.com/travigo/itinerary/pkg/database"
	"github.com/travigo/itinerary/pkg/elastic_client"
	"github.com/travigo/itinerary/pkg/redis_client"
)

const Version = "v1.0"

// ConnectBackends connects to whichever optional backends have been configured
func ConnectBackends() error {
	if database.IsConfigured() {
		if err := database.Connect(); err != nil {
			return err
		}
	} else {
		log.Info().Msg("Skipping MongoDB setup")
	}

	if redis_client.IsConfigured() {
		if err := redis_client.Connect(); err != nil {
			return err
		}
	} else {
		log.Info().Msg("Skipping Redis setup")
	}

	return elastic_client.Connect(false)
}

// Setup builds a Sorter wired to the connected backends, provider names the calling entry point
func Setup(provider string) (*Sorter, *archive.Archive, error) {
	sorter := &Sorter{
		DataSource: &ctdf.DataSource{
			Provider: provider,
			Version:  Version,
		},
	}

	itineraryArchive, err := archive.Setup()
	if err != nil {
		return nil, nil, err
	}
	if itineraryArchive != nil {
		sorter.Archive = itineraryArchive
	}

	if redis_client.Client != nil {
		resultCache := &cachedresults.Cache{Prefix: "sorted-itinerary/"}
		if err := resultCache.Setup(redis_client.Client); err != nil {
			return nil, nil, err
		}

		sorter.Cache = resultCache
	}

	return sorter, itineraryArchive, nil
}
