package domain

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrDuplicateName = errors.New("cafe with this name already exists")
	ErrNotFound      = errors.New("not found")

	ErrCafeNotFound = fmt.Errorf("cafe %w", ErrNotFound)
	ErrItemNotFound = fmt.Errorf("item %w", ErrNotFound)
)

// Validationf wraps ErrValidation with a client-facing message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ParseID parses a hex object id. A malformed id is a validation error,
// distinct from an id that does not resolve.
func ParseID(field, raw string) (primitive.ObjectID, error) {
	if raw == "" {
		return primitive.NilObjectID, Validationf("%s is required", field)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, Validationf("invalid %s %q", field, raw)
	}
	return id, nil
}
