package image

import (
	"io"
	"mime/multipart"
	"strings"
)

// Payload is the canonical form both ingestion paths converge on. Everything
// downstream of the normalizer is shape-agnostic.
type Payload struct {
	Data     []byte
	MimeType string
	FileName string
}

// FromMultipart builds the canonical payload from an uploaded file part.
// Format and extension are checked before the part is read so rejected
// uploads never allocate the full buffer.
func FromMultipart(fh *multipart.FileHeader) (*Payload, error) {
	mimeType := fh.Header.Get("Content-Type")
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	if err := ValidateFormat(mimeType); err != nil {
		return nil, err
	}
	if err := ValidateExtension(fh.Filename, mimeType); err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &Payload{Data: data, MimeType: mimeType, FileName: fh.Filename}, nil
}

// FromDataURI builds the canonical payload from a JSON-embedded data URI and
// a separately supplied filename.
func FromDataURI(dataURI, fileName string) (*Payload, error) {
	mimeType := MimeFromDataURI(dataURI)
	if mimeType == "" {
		return nil, ErrMalformedData
	}

	if err := ValidateFormat(mimeType); err != nil {
		return nil, err
	}
	if err := ValidateExtension(fileName, mimeType); err != nil {
		return nil, err
	}

	_, data, err := DecodeDataURI(dataURI)
	if err != nil {
		return nil, ErrMalformedData
	}

	return &Payload{Data: data, MimeType: mimeType, FileName: fileName}, nil
}
