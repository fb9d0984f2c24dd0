package cryptography

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashVectors pins end-to-end scenario 5's literal base64 digests.
func TestHashVectors(t *testing.T) {
	plain := []byte("- Do you think she's expecting something big?- You mean, like anal?")

	digest, err := Hash(SHA256, plain)
	require.NoError(t, err)
	assert.Equal(t, "Ooj0FMtgjoI7saciFCZ/Xg8eXJWFhzXn89mZide6oeI=", base64.StdEncoding.EncodeToString(digest))

	digest, err = Hash(SHA1, plain)
	require.NoError(t, err)
	assert.Equal(t, "LMHmhHUOH8N3mGo1HTRFd6vbmXk=", base64.StdEncoding.EncodeToString(digest))
}

func TestHashDeterministic(t *testing.T) {
	plain := []byte("determinism matters")
	d1, err := Hash(SHA256, plain)
	require.NoError(t, err)
	d2, err := Hash(SHA256, plain)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestHashUnknownOneway(t *testing.T) {
	_, err := Hash(Oneway("bogus"), []byte("x"))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
