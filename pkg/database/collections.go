package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ArchivedItinerariesCollection = "archived_itineraries"

func createIndexes(ctx context.Context) {
	createArchivedItinerariesIndexes(ctx)
}

func createArchivedItinerariesIndexes(ctx context.Context) {
	archivedItinerariesCollection := GetCollection(ArchivedItinerariesCollection)
	_, err := archivedItinerariesCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "primaryidentifier", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "legs.sourcestation.code", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "legs.destinationstation.code", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "creationdatetime", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(30 * 24 * 3600), // Expire after 30 days
		},
	}, options.CreateIndexes())
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
