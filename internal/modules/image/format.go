package image

import (
	"path/filepath"
	"strings"
)

// allowedExtensions maps each admissible MIME type to the filename suffixes
// that may carry it. The extension check is a deliberate anti-spoofing guard
// on top of the MIME check, not a replacement for it.
var allowedExtensions = map[string][]string{
	"image/jpeg": {"jpg", "jpeg"},
	"image/png":  {"png"},
	"image/webp": {"webp"},
}

func ValidateFormat(mimeType string) error {
	if _, ok := allowedExtensions[mimeType]; !ok {
		return ErrInvalidFormat
	}
	return nil
}

func ValidateExtension(filename, mimeType string) error {
	if filename == "" || mimeType == "" {
		return ErrMissingName
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, allowed := range allowedExtensions[mimeType] {
		if ext == allowed {
			return nil
		}
	}
	return ErrExtensionMismatch
}
