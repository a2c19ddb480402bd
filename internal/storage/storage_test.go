package storage

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImageDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("\x89PNG fake"))

	ct, data, err := DecodeImageDataURI("data:image/png;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, []byte("\x89PNG fake"), data)

	for _, bad := range []string{
		"https://example.com/a.png",
		"data:image/png;base64",
		"data:text/plain;base64," + payload,
		"data:image/png," + payload,
		"data:image/png;base64,!!!",
		"data:image/png;base64,",
	} {
		_, _, err := DecodeImageDataURI(bad)
		assert.ErrorIs(t, err, ErrInvalidDataURI, bad)
	}
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("DATA:image/png;base64,xx"))
	assert.False(t, IsDataURI("https://cdn/x.png"))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", ExtensionFor("image/jpeg"))
	assert.Equal(t, ".img", ExtensionFor("image/x-unknown"))
}

func TestS3Service_ObjectKeyAndURL(t *testing.T) {
	svc := &S3Service{opts: Options{Bucket: "avatars", KeyPrefix: "/profiles/", Region: "eu-west-1"}}
	key := svc.objectKey("a b.png")
	assert.Equal(t, "profiles/a b.png", key)
	assert.Equal(t, "https://avatars.s3.eu-west-1.amazonaws.com/profiles/a%20b.png", svc.objectURL(key))

	svc.opts.Endpoint = "http://localhost:9000/"
	assert.Equal(t, "http://localhost:9000/avatars/profiles/x.png", svc.objectURL("profiles/x.png"))

	svc.opts.PublicBaseURL = "https://cdn.example.com"
	assert.Equal(t, "https://cdn.example.com/profiles/x.png", svc.objectURL("profiles/x.png"))

	svc.opts.KeyPrefix = ""
	assert.Equal(t, "x.png", svc.objectKey("/x.png"))
}
