package model

import "errors"

// ErrNotFound is returned by stores when no record has the requested identifier.
var ErrNotFound = errors.New("not found")

// ValidationKind classifies why a write payload was rejected.
type ValidationKind string

const (
	// ValidationMissingFields means one or more required fields are absent or empty.
	ValidationMissingFields ValidationKind = "missing_fields"
	// ValidationInvalidEnum means an enumerated field holds a value outside its set.
	ValidationInvalidEnum ValidationKind = "invalid_enum"
	// ValidationMissingID means an update or delete did not name a record.
	ValidationMissingID ValidationKind = "missing_id"
	// ValidationMalformedBody means the request body could not be decoded.
	ValidationMalformedBody ValidationKind = "malformed_body"
)

// ValidationError describes a rejected write payload.
type ValidationError struct {
	Kind    ValidationKind
	Message string
	Err     error
}

// NewValidationError creates a ValidationError of the given kind.
func NewValidationError(kind ValidationKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
