package image

import (
	"errors"
	"fmt"
)

// Validation messages are user-facing and German, matching the map UI.
// Operational errors stay English.
var (
	ErrInvalidFormat     = errors.New("Ungültiges Dateiformat. Nur JPG, PNG und WebP sind erlaubt.")
	ErrExtensionMismatch = errors.New("Dateiendung passt nicht zum Bildformat.")
	ErrMissingName       = errors.New("Dateiname oder MIME-Typ fehlt.")
	ErrNoImageData       = errors.New("Es wurde keine Bilddatei oder Base64-Daten übermittelt.")
	ErrMalformedData     = errors.New("Die übermittelten Bilddaten sind ungültig.")

	// ErrProcessing marks undecodable or corrupt payloads of an otherwise
	// admissible format, distinct from the validation errors above.
	ErrProcessing = errors.New("Failed to process image")

	ErrLocationNotFound  = errors.New("location does not exist")
	ErrImageNotFound     = errors.New("Image not found for this location")
	ErrThumbnailNotFound = errors.New("Thumbnail not found for this location")

	// ErrCorruptStored means a stored blob no longer matches the data URI
	// pattern. That is a server-side integrity fault, never a caller error.
	ErrCorruptStored = errors.New("Invalid image data format")
)

// SizeError carries the configured ceiling so the message can name it.
type SizeError struct {
	Limit int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("Image size exceeds the maximum allowed size of %gMB", float64(e.Limit)/(1024*1024))
}
