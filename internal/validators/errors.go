package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is returned when a required field is missing or empty.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a start date or deadline is missing
	// or is not a calendar date.
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
)
