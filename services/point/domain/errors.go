package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the point domain. Use errors.Is() to check these.
var (
	// ErrPointNotFound indicates no point exists with the requested id.
	ErrPointNotFound = errors.New("point not found")

	// ErrInvalidSubmission indicates a missing or malformed submission field.
	// Returned wrapped in a *FieldError naming the offending field.
	ErrInvalidSubmission = errors.New("invalid submission")

	// ErrUnknownItem indicates a submitted item id is not in the catalog.
	// No point or association rows are persisted when this is returned.
	ErrUnknownItem = errors.New("unknown item")

	// ErrImageStorage indicates the uploaded image could not be persisted.
	ErrImageStorage = errors.New("image storage failed")

	// ErrImageRejected indicates the upload is not a recognized image type.
	ErrImageRejected = errors.New("image type not accepted")

	// ErrImageTooLarge indicates the upload exceeds the configured size limit.
	ErrImageTooLarge = errors.New("image too large")
)

// FieldError reports which submission field failed validation.
type FieldError struct {
	Field   string
	Message string
}

// NewFieldError returns a *FieldError for field with a formatted message.
func NewFieldError(field, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidSubmission, e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidSubmission) match any field error.
func (e *FieldError) Unwrap() error {
	return ErrInvalidSubmission
}
