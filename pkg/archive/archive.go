package archive

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/travigo/itinerary/pkg/cachedresults"
	"github.com/travigo/itinerary/pkg/ctdf"
	"github.com/travigo/itinerary/pkg/database"
	"github.com/travigo/itinerary/pkg/elastic_client"
	"github.com/travigo/itinerary/pkg/redis_client"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

// Archive persists sorted itineraries. Cache and Indexer are optional.
type Archive struct {
	Store   Store
	Cache   Cache
	Indexer Indexer
}

func (a *Archive) Save(ctx context.Context, itinerary *ctdf.ArchivedItinerary) error {
	if err := a.Store.Save(ctx, itinerary); err != nil {
		return err
	}

	// Identifiers can be reused so a previous lookup may have cached an older itinerary
	a.cache(ctx, itinerary)

	if a.Indexer != nil {
		if err := a.Indexer.Index(itinerary); err != nil {
			log.Error().Err(err).Str("identifier", itinerary.PrimaryIdentifier).Msg("Failed to index archived itinerary")
		}
	}

	return nil
}

// Lookup checks the cache before the store and fills the cache on a store hit
func (a *Archive) Lookup(ctx context.Context, identifier string) (*ctdf.ArchivedItinerary, error) {
	if a.Cache != nil {
		if cached, err := a.Cache.Get(ctx, identifier); err == nil && cached != "" {
			var itinerary *ctdf.ArchivedItinerary
			if err := json.Unmarshal([]byte(cached), &itinerary); err == nil {
				return itinerary, nil
			}
		}
	}

	itinerary, err := a.Store.Lookup(ctx, identifier)
	if err != nil {
		return nil, err
	}

	a.cache(ctx, itinerary)

	return itinerary, nil
}

func (a *Archive) cache(ctx context.Context, itinerary *ctdf.ArchivedItinerary) {
	if a.Cache == nil {
		return
	}

	itineraryJSON, err := json.Marshal(itinerary)
	if err != nil {
		log.Error().Err(err).Str("identifier", itinerary.PrimaryIdentifier).Msg("Failed to encode archived itinerary for cache")
		return
	}

	if err := a.Cache.Set(ctx, itinerary.PrimaryIdentifier, string(itineraryJSON)); err != nil {
		log.Error().Err(err).Str("identifier", itinerary.PrimaryIdentifier).Msg("Failed to cache archived itinerary")
	}
}

// Setup builds an Archive from whichever backends are connected, it returns nil when
// MongoDB is not available since there is nowhere to archive to
func Setup() (*Archive, error) {
	if database.MongoGlobalInstance == nil {
		log.Info().Msg("Skipping itinerary archive setup")
		return nil, nil
	}

	archive := &Archive{
		Store: &MongoStore{Collection: database.GetCollection(database.ArchivedItinerariesCollection)},
	}

	if redis_client.Client != nil {
		lookupCache := &cachedresults.Cache{Prefix: "archived-itinerary/"}
		if err := lookupCache.Setup(redis_client.Client); err != nil {
			return nil, err
		}

		archive.Cache = lookupCache
	}

	if elastic_client.IsConnected() {
		archive.Indexer = ElasticIndexer{IndexName: IndexName}
	}

	return archive, nil
}
