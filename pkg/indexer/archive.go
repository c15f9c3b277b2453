package indexer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/rs/zerolog/log"
	"github.com/travigo/itinerary/pkg/archive"
	"github.com/travigo/itinerary/pkg/ctdf"
	"github.com/travigo/itinerary/pkg/database"
	"github.com/travigo/itinerary/pkg/elastic_client"
	"go.mongodb.org/mongo-driver/bson"
)

const archiveIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 1
	},
	"mappings": {
		"properties": {
			"PrimaryIdentifier": {"type": "keyword"},
			"CreationDateTime": {"type": "date"},
			"TransportModes": {"type": "keyword"},
			"StationCodes": {"type": "keyword"},
			"Origin": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword", "ignore_above": 256}}
			},
			"Destination": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword", "ignore_above": 256}}
			},
			"LegCount": {"type": "integer"}
		}
	}
}`

// IndexArchive drops the archived itinerary index and refills it from MongoDB
func IndexArchive(ctx context.Context) error {
	if err := recreateArchiveIndex(ctx); err != nil {
		return err
	}

	cursor, err := database.GetCollection(database.ArchivedItinerariesCollection).Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	indexer := archive.ElasticIndexer{IndexName: archive.IndexName}
	count := 0

	for cursor.Next(ctx) {
		var itinerary *ctdf.ArchivedItinerary
		if err := cursor.Decode(&itinerary); err != nil {
			log.Error().Err(err).Msg("Failed to decode archived itinerary")
			continue
		}

		if err := indexer.Index(itinerary); err != nil {
			log.Error().Err(err).Str("identifier", itinerary.PrimaryIdentifier).Msg("Failed to index archived itinerary")
			continue
		}

		count++
	}

	log.Info().Int("count", count).Msg("Sent all index requests to queue")

	return cursor.Err()
}

func recreateArchiveIndex(ctx context.Context) error {
	deleteReq := esapi.IndicesDeleteRequest{
		Index:             []string{archive.IndexName},
		IgnoreUnavailable: esapi.BoolPtr(true),
	}
	deleteResp, err := deleteReq.Do(ctx, elastic_client.Client)
	if err != nil {
		return err
	}
	deleteResp.Body.Close()

	createReq := esapi.IndicesCreateRequest{
		Index: archive.IndexName,
		Body:  strings.NewReader(archiveIndexMapping),
	}
	createResp, err := createReq.Do(ctx, elastic_client.Client)
	if err != nil {
		return err
	}
	defer createResp.Body.Close()

	if createResp.IsError() {
		responseBytes, _ := io.ReadAll(createResp.Body)
		return fmt.Errorf("creating index %s: %s", archive.IndexName, responseBytes)
	}

	log.Info().Str("index", archive.IndexName).Msg("Created index")

	return nil
}
