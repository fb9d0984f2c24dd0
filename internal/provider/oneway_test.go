package provider

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestSize(t *testing.T) {
	cases := []struct {
		id   OnewayID
		size int
	}{
		{MD5, 16},
		{SHA, 20},
		{SHA1, 20},
		{SHA224, 28},
		{SHA256, 32},
		{SHA384, 48},
		{SHA512, 64},
	}
	for _, tc := range cases {
		n, err := DigestSize(tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.size, n)
	}
}

func TestResolveDigestUnknown(t *testing.T) {
	_, err := ResolveDigest("nonsense")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

// TestHashVectors pins the two base64 digests the end-to-end scenarios
// specify, so a change to digest wiring fails loudly.
func TestHashVectors(t *testing.T) {
	plain := []byte("- Do you think she's expecting something big?- You mean, like anal?")

	newHash, err := ResolveDigest(SHA256)
	require.NoError(t, err)
	h := newHash()
	h.Write(plain)
	assert.Equal(t, "Ooj0FMtgjoI7saciFCZ/Xg8eXJWFhzXn89mZide6oeI=", base64.StdEncoding.EncodeToString(h.Sum(nil)))

	newHash, err = ResolveDigest(SHA1)
	require.NoError(t, err)
	h = newHash()
	h.Write(plain)
	assert.Equal(t, "LMHmhHUOH8N3mGo1HTRFd6vbmXk=", base64.StdEncoding.EncodeToString(h.Sum(nil)))
}
