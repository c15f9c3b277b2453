package archive

import (
	"context"
	"errors"

	"github.com/travigo/itinerary/pkg/ctdf"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("Could not find archived itinerary matching identifier")

type Store interface {
	Save(ctx context.Context, itinerary *ctdf.ArchivedItinerary) error
	Lookup(ctx context.Context, identifier string) (*ctdf.ArchivedItinerary, error)
}

type MongoStore struct {
	Collection *mongo.Collection
}

func (m *MongoStore) Save(ctx context.Context, itinerary *ctdf.ArchivedItinerary) error {
	_, err := m.Collection.ReplaceOne(
		ctx,
		bson.M{"primaryidentifier": itinerary.PrimaryIdentifier},
		itinerary,
		options.Replace().SetUpsert(true),
	)

	return err
}

func (m *MongoStore) Lookup(ctx context.Context, identifier string) (*ctdf.ArchivedItinerary, error) {
	var itinerary *ctdf.ArchivedItinerary

	err := m.Collection.FindOne(ctx, bson.M{"primaryidentifier": identifier}).Decode(&itinerary)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return itinerary, nil
}
