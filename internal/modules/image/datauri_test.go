package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURIRoundTrip(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0x00, 0x01, 0x02}

	uri := EncodeDataURI(payload, "image/jpeg")
	assert.True(t, len(uri) > len("data:image/jpeg;base64,"))

	mime, data, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
	assert.Equal(t, payload, data)
}

func TestDecodeDataURIRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"garbage",
		"data:image/png",
		"data:image/png;base64,",
		"image/png;base64,AAAA",
		"data:image/png;base64,!!!not-base64!!!",
	} {
		_, _, err := DecodeDataURI(s)
		assert.Error(t, err, s)
	}
}

func TestMimeFromDataURI(t *testing.T) {
	assert.Equal(t, "image/webp", MimeFromDataURI("data:image/webp;base64,AAAA"))
	assert.Equal(t, "", MimeFromDataURI("not a data uri"))
	assert.Equal(t, "", MimeFromDataURI(""))
}
