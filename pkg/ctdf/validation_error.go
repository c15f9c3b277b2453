package ctdf

import "fmt"

type ValidationErrorKind string

const (
	ValidationErrorUnsupportedMode ValidationErrorKind = "UnsupportedMode"
	ValidationErrorModeMismatch    ValidationErrorKind = "ModeMismatch"
	ValidationErrorDegenerateLeg   ValidationErrorKind = "DegenerateLeg"
)

// ValidationError is returned when a Station or TravelLeg cannot be constructed
type ValidationError struct {
	Kind    ValidationErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any ValidationError of the same Kind so callers can use errors.Is with a bare kind
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}
