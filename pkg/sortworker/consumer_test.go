package sortworker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/adjust/rmq/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/itinerary/pkg/legparser"
	"github.com/travigo/itinerary/pkg/tripsorter"
)

type recordingSorter struct {
	mutex       sync.Mutex
	identifiers []string
}

func (r *recordingSorter) Sort(ctx context.Context, identifier string, records []legparser.LegRecord) (*tripsorter.Result, error) {
	r.mutex.Lock()
	r.identifiers = append(r.identifiers, identifier)
	r.mutex.Unlock()

	return (&tripsorter.Sorter{}).Sort(ctx, identifier, records)
}

func jobPayload(t *testing.T, identifier string, legs []legparser.LegRecord) string {
	t.Helper()

	payload, err := json.Marshal(Job{Identifier: identifier, Legs: legs})
	require.NoError(t, err)

	return string(payload)
}

func TestBatchConsumerAcksAndRejects(t *testing.T) {
	sample := legparser.SampleRecords()

	valid := rmq.NewTestDeliveryString(jobPayload(t, "valid", []legparser.LegRecord{sample["Bus"]}))

	unsupportedLeg := sample["Train"]
	unsupportedLeg.Transport.Mode = "Boat"
	unsupported := rmq.NewTestDeliveryString(jobPayload(t, "unsupported", []legparser.LegRecord{unsupportedLeg}))

	cycle := rmq.NewTestDeliveryString(jobPayload(t, "cycle", []legparser.LegRecord{
		sample["Bus"],
		{
			Transport:   sample["Bus"].Transport,
			Source:      sample["Bus"].Destination,
			Destination: sample["Bus"].Source,
		},
	}))

	garbage := rmq.NewTestDeliveryString("not json")

	sorter := &recordingSorter{}
	NewBatchConsumer(sorter).Consume(rmq.Deliveries{valid, unsupported, cycle, garbage})

	assert.Equal(t, rmq.Acked, valid.State)
	assert.Equal(t, rmq.Rejected, unsupported.State)
	assert.Equal(t, rmq.Rejected, cycle.State)
	assert.Equal(t, rmq.Rejected, garbage.State)
	assert.ElementsMatch(t, []string{"valid", "unsupported", "cycle"}, sorter.identifiers)
}

type failingSorter struct{}

func (failingSorter) Sort(context.Context, string, []legparser.LegRecord) (*tripsorter.Result, error) {
	return nil, errors.New("unavailable")
}

func TestBatchConsumerRejectsOnSortFailure(t *testing.T) {
	delivery := rmq.NewTestDeliveryString(jobPayload(t, "any", nil))

	NewBatchConsumer(failingSorter{}).Consume(rmq.Deliveries{delivery})

	assert.Equal(t, rmq.Rejected, delivery.State)
}

func TestSubmit(t *testing.T) {
	connection := rmq.NewTestConnection()
	queue, err := connection.OpenQueue(QueueName)
	require.NoError(t, err)

	identifier, err := Submit(queue, "", []legparser.LegRecord{legparser.SampleRecords()["Bus"]})
	require.NoError(t, err)
	assert.Len(t, identifier, 36)

	deliveries := connection.GetDeliveries(QueueName)
	require.Len(t, deliveries, 1)

	var job Job
	require.NoError(t, json.Unmarshal([]byte(deliveries[0]), &job))
	assert.Equal(t, identifier, job.Identifier)
	require.Len(t, job.Legs, 1)
	assert.Equal(t, "NY-123", job.Legs[0].Transport.VehicleID)
}
