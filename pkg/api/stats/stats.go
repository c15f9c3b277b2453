package stats

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/itinerary/pkg/database"
	"go.mongodb.org/mongo-driver/bson"
)

type RecordsStats struct {
	SortedItineraries   int64
	FailedSorts         int64
	ArchivedItineraries int64
}

var sortedItineraries atomic.Int64
var failedSorts atomic.Int64
var archivedItineraries atomic.Int64

func RecordSort(err error) {
	if err == nil {
		sortedItineraries.Add(1)
	} else {
		failedSorts.Add(1)
	}
}

func CurrentRecordsStats() *RecordsStats {
	return &RecordsStats{
		SortedItineraries:   sortedItineraries.Load(),
		FailedSorts:         failedSorts.Load(),
		ArchivedItineraries: archivedItineraries.Load(),
	}
}

// UpdateRecordsStats refreshes the archived itinerary count every minute until ctx is done
func UpdateRecordsStats(ctx context.Context) {
	if database.MongoGlobalInstance == nil {
		return
	}

	archivedItinerariesCollection := database.GetCollection(database.ArchivedItinerariesCollection)

	for {
		numberArchived, err := archivedItinerariesCollection.CountDocuments(ctx, bson.D{})
		if err != nil {
			log.Error().Err(err).Msg("Failed to count archived itineraries")
		} else {
			archivedItineraries.Store(numberArchived)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(1 * time.Minute):
		}
	}
}
