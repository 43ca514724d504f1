package image

import (
	"encoding/base64"
	"errors"
	"regexp"
)

// Both derivatives are stored as self-describing text: the MIME type and the
// base64 payload travel together in one column. Reads re-validate against the
// same strict pattern instead of trusting the stored value.
var dataURIPattern = regexp.MustCompile(`^data:([A-Za-z-+/]+);base64,(.+)$`)

var errNotDataURI = errors.New("value does not match the data URI pattern")

func EncodeDataURI(data []byte, mimeType string) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI splits a data URI into its MIME type and raw bytes. Callers
// map the error to their own taxonomy: malformed client input on ingest,
// storage corruption on read.
func DecodeDataURI(s string) (string, []byte, error) {
	m := dataURIPattern.FindStringSubmatch(s)
	if m == nil {
		return "", nil, errNotDataURI
	}
	data, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", nil, errNotDataURI
	}
	return m[1], data, nil
}

// MimeFromDataURI returns the MIME type of a data URI, or "" if the value
// does not match the pattern.
func MimeFromDataURI(s string) string {
	m := dataURIPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}
