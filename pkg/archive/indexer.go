package archive

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/travigo/itinerary/pkg/ctdf"
	"github.com/travigo/itinerary/pkg/elastic_client"
)

const IndexName = "itinerary-archive"

type Indexer interface {
	Index(itinerary *ctdf.ArchivedItinerary) error
}

// ElasticIndexer queues archived itineraries onto the elastic_client bulk indexer
type ElasticIndexer struct {
	IndexName string
}

type IndexedItinerary struct {
	PrimaryIdentifier string
	CreationDateTime  string
	TransportModes    []ctdf.TransportMode
	StationCodes      []string
	Origin            string
	Destination       string
	LegCount          int
}

func (e ElasticIndexer) Index(itinerary *ctdf.ArchivedItinerary) error {
	documentJSON, err := json.Marshal(NewIndexedItinerary(itinerary))
	if err != nil {
		return err
	}

	indexName := e.IndexName
	if indexName == "" {
		indexName = IndexName
	}

	elastic_client.IndexRequest(indexName, itinerary.PrimaryIdentifier, bytes.NewReader(documentJSON))

	return nil
}

// NewIndexedItinerary flattens an archived itinerary into the searchable document
func NewIndexedItinerary(itinerary *ctdf.ArchivedItinerary) IndexedItinerary {
	document := IndexedItinerary{
		PrimaryIdentifier: itinerary.PrimaryIdentifier,
		CreationDateTime:  itinerary.CreationDateTime.Format(time.RFC3339),
		LegCount:          len(itinerary.Legs),
	}

	for _, leg := range itinerary.Legs {
		document.TransportModes = append(document.TransportModes, leg.TransportMode)
		document.StationCodes = append(document.StationCodes, leg.SourceStation.Code)
	}

	if len(itinerary.Legs) > 0 {
		first := itinerary.Legs[0]
		last := itinerary.Legs[len(itinerary.Legs)-1]

		document.Origin = first.SourceStation.Location.String()
		document.Destination = last.DestinationStation.Location.String()
		document.StationCodes = append(document.StationCodes, last.DestinationStation.Code)
	}

	return document
}
