package raw

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitio/cryptography-go/internal/provider"
)

func TestHashDeterministic(t *testing.T) {
	plain := []byte("the quick brown fox jumps over the lazy dog")
	d1, err := Hash(provider.SHA256, bytes.NewReader(plain))
	require.NoError(t, err)
	d2, err := Hash(provider.SHA256, bytes.NewReader(plain))
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 32)
}

func TestHashDistinctOnewaysDiffer(t *testing.T) {
	plain := []byte("distinct oneways must yield distinct digests")
	sha256Digest, err := Hash(provider.SHA256, bytes.NewReader(plain))
	require.NoError(t, err)
	sha1Digest, err := Hash(provider.SHA1, bytes.NewReader(plain))
	require.NoError(t, err)
	assert.NotEqual(t, sha256Digest, sha1Digest)
}

func TestHashUnknownOneway(t *testing.T) {
	_, err := Hash("bogus", bytes.NewReader(nil))
	assert.ErrorIs(t, err, provider.ErrUnknownAlgorithm)
}

func TestHashStreamsAcrossBlockBoundaries(t *testing.T) {
	// Exercise the read loop across more than one StreamBlockSize iteration.
	large := bytes.Repeat([]byte{0xAA}, StreamBlockSize+1024)
	digest, err := Hash(provider.SHA256, bytes.NewReader(large))
	require.NoError(t, err)
	assert.Len(t, digest, 32)
}
