package legparser

import (
	"errors"
	"fmt"
)

// ErrUnsupportedTransportMode fails a whole request, its message is returned to clients verbatim
var ErrUnsupportedTransportMode = errors.New("Transport mode not supported")

// RecordError is returned when a leg record is missing a required field
type RecordError struct {
	Index   int
	Field   string
	Message string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("leg %d: %s %s", e.Index, e.Field, e.Message)
}
