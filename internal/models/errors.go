package models

import "errors"

var (
	ErrInvalidID = errors.New("invalid ID format")
	ErrNotFound  = errors.New("not found")
)

var (
	ErrFieldTooLong  = errors.New("field too long")
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidValue  = errors.New("invalid value")
)

var (
	ErrMissingFilename = errors.New("filename is required")
	ErrUploadFailed    = errors.New("upload failed")
)

// IsValidation reports whether err is one of the field-level validation failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrFieldTooLong) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidValue)
}
