package util

import (
	"fmt"
	"time"

	iso8601 "github.com/senseyeio/duration"
)

// ParseDuration accepts either an ISO8601 duration (PT90M) or a Go duration string (90m)
func ParseDuration(value string) (time.Duration, error) {
	if goDuration, err := time.ParseDuration(value); err == nil {
		return goDuration, nil
	}

	isoDuration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %s: %w", value, err)
	}

	// Shift from a fixed point so years/months resolve to a concrete length
	epoch := time.Unix(0, 0).UTC()
	return isoDuration.Shift(epoch).Sub(epoch), nil
}
