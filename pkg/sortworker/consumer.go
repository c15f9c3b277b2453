package sortworker

import (
	"context"
	"encoding/json"

	"github.com/adjust/rmq/v5"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/itinerary/pkg/legparser"
	"github.com/travigo/itinerary/pkg/tripsorter"
)

type ItinerarySorter interface {
	Sort(ctx context.Context, identifier string, records []legparser.LegRecord) (*tripsorter.Result, error)
}

type BatchConsumer struct {
	Sorter ItinerarySorter

	MaxGoroutines int
}

func NewBatchConsumer(sorter ItinerarySorter) *BatchConsumer {
	return &BatchConsumer{
		Sorter:        sorter,
		MaxGoroutines: 10,
	}
}

func (c *BatchConsumer) Consume(batch rmq.Deliveries) {
	p := pool.New().WithMaxGoroutines(c.MaxGoroutines)

	for _, delivery := range batch {
		p.Go(func() {
			c.consumeDelivery(delivery)
		})
	}

	p.Wait()
}

func (c *BatchConsumer) consumeDelivery(delivery rmq.Delivery) {
	var job Job
	if err := json.Unmarshal([]byte(delivery.Payload()), &job); err != nil {
		log.Error().Err(err).Msg("Failed to decode sort job")
		c.reject(delivery)
		return
	}

	result, err := c.Sorter.Sort(context.Background(), job.Identifier, job.Legs)
	if err != nil {
		log.Error().Err(err).Str("identifier", job.Identifier).Msg("Failed to sort itinerary")
		c.reject(delivery)
		return
	}

	log.Info().Str("identifier", result.Identifier).Int("legs", len(result.Trips)).Msg("Sorted itinerary")

	if err := delivery.Ack(); err != nil {
		log.Error().Err(err).Str("identifier", job.Identifier).Msg("Failed to ack sort job")
	}
}

func (c *BatchConsumer) reject(delivery rmq.Delivery) {
	if err := delivery.Reject(); err != nil {
		log.Error().Err(err).Msg("Failed to reject sort job")
	}
}
