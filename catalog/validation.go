package catalog

import (
	"errors"
	"fmt"
)

// FieldError reports a single menu input field that failed validation.
type FieldError struct {
	Field string
	Rule  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q failed %q", e.Field, e.Rule)
}

// IsValidationError reports whether err stems from rejected input rather
// than a store failure.
func IsValidationError(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}
