package trainer

import (
	"errors"
	"fmt"
)

// ErrZeroDuration is returned when a speed or calorie figure is
// requested for a session of zero length.
var ErrZeroDuration = errors.New("duration is zero")

// InvalidInputError reports a sensor field that failed validation.
type InvalidInputError struct {
	Field      string
	Constraint string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Constraint)
}

// UnknownActivityError reports an activity code outside the fixed set.
type UnknownActivityError struct {
	Code string
}

func (e *UnknownActivityError) Error() string {
	return fmt.Sprintf("unknown activity code %q", e.Code)
}

func invalid(field, constraint string) error {
	return &InvalidInputError{Field: field, Constraint: constraint}
}
