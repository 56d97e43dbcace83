package leads

import "errors"

var (
	// ErrMissingRequiredFields is returned when name or email is absent.
	ErrMissingRequiredFields = errors.New("name and email are required")
)
