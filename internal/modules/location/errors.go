package location

import "errors"

var (
	ErrMissingFields = errors.New("Title, latitude and longitude are required")
	ErrNotFound      = errors.New("location not found")
	ErrValueTooLong  = errors.New("Title is too long (maximum 255 characters)")
)
