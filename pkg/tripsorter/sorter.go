package tripsorter

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/travigo/itinerary/pkg/cachedresults"
	"github.com/travigo/itinerary/pkg/ctdf"
	"github.com/travigo/itinerary/pkg/journey"
	"github.com/travigo/itinerary/pkg/legparser"
)

type Archiver interface {
	Save(ctx context.Context, itinerary *ctdf.ArchivedItinerary) error
}

type ResultCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

// Sorter turns raw leg records into a narrated itinerary. Archive and Cache are optional
// and their failures never fail a sort.
type Sorter struct {
	Archive Archiver
	Cache   ResultCache

	DataSource *ctdf.DataSource

	now func() time.Time
}

type Result struct {
	Identifier string `groups:"basic"`

	Narration []string     `groups:"basic"`
	Trips     []*ctdf.Trip `groups:"detailed"`
}

type cachedResult struct {
	Narration []string
	Trips     []*ctdf.Trip
}

func (s *Sorter) Sort(ctx context.Context, identifier string, records []legparser.LegRecord) (*Result, error) {
	if identifier == "" {
		identifier = uuid.NewString()
	}

	result := &Result{Identifier: identifier}

	cacheKey := ""
	if s.Cache != nil {
		if recordsJSON, err := json.Marshal(records); err == nil {
			cacheKey = cachedresults.Digest(recordsJSON)
		}
	}

	if cached := s.getCached(ctx, cacheKey); cached != nil {
		result.Narration = cached.Narration
		result.Trips = cached.Trips
	} else {
		trips, err := legparser.ToTrips(records)
		if err != nil {
			return nil, err
		}

		sortedTrips, err := journey.NewJourney(trips).SortedTrips()
		if err != nil {
			return nil, err
		}

		result.Trips = slices.Collect(sortedTrips)
		result.Narration = journey.Narrate(slices.Values(result.Trips))

		s.setCached(ctx, cacheKey, result)
	}

	log.Debug().Str("identifier", identifier).Int("legs", len(result.Trips)).Msg("Sorted itinerary")

	s.archive(ctx, result)

	return result, nil
}

func (s *Sorter) getCached(ctx context.Context, key string) *cachedResult {
	if key == "" {
		return nil
	}

	value, err := s.Cache.Get(ctx, key)
	if err != nil || value == "" {
		return nil
	}

	var cached cachedResult
	if err := json.Unmarshal([]byte(value), &cached); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to decode cached itinerary")
		return nil
	}

	return &cached
}

func (s *Sorter) setCached(ctx context.Context, key string, result *Result) {
	if key == "" {
		return
	}

	value, err := json.Marshal(cachedResult{Narration: result.Narration, Trips: result.Trips})
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode itinerary for cache")
		return
	}

	if err := s.Cache.Set(ctx, key, string(value)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to cache itinerary")
	}
}

func (s *Sorter) archive(ctx context.Context, result *Result) {
	if s.Archive == nil {
		return
	}

	now := time.Now
	if s.now != nil {
		now = s.now
	}

	archived, err := ctdf.NewArchivedItinerary(result.Identifier, result.Trips, result.Narration, now())
	if err != nil {
		log.Error().Err(err).Str("identifier", result.Identifier).Msg("Failed to build archived itinerary")
		return
	}
	archived.DataSource = s.DataSource

	if err := s.Archive.Save(ctx, archived); err != nil {
		log.Error().Err(err).Str("identifier", result.Identifier).Msg("Failed to archive itinerary")
	}
}
