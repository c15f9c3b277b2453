package sortworker

import (
	"encoding/json"

	"github.com/adjust/rmq/v5"
	"github.com/google/uuid"
	"github.com/travigo/itinerary/pkg/legparser"
)

const QueueName = "itinerary-sort-queue"

// Job is the queue payload, Identifier becomes the archived itinerary identifier
type Job struct {
	Identifier string
	Legs       []legparser.LegRecord
}

// Submit publishes a job and returns its identifier, generating one when empty
func Submit(queue rmq.Queue, identifier string, legs []legparser.LegRecord) (string, error) {
	if identifier == "" {
		identifier = uuid.NewString()
	}

	payload, err := json.Marshal(Job{Identifier: identifier, Legs: legs})
	if err != nil {
		return "", err
	}

	if err := queue.PublishBytes(payload); err != nil {
		return "", err
	}

	return identifier, nil
}
