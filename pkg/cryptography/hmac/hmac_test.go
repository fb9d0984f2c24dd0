package hmac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
	"github.com/infinitio/cryptography-go/pkg/cryptography/hmac"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	secret := []byte("shared secret")
	plain := []byte("authenticate me")

	tag, err := hmac.Sign(secret, cryptography.SHA256, plain)
	require.NoError(t, err)

	ok, err := hmac.Verify(secret, cryptography.SHA256, tag, plain)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsFlippedTagBit(t *testing.T) {
	secret := []byte("shared secret")
	plain := []byte("authenticate me")
	tag, err := hmac.Sign(secret, cryptography.SHA256, plain)
	require.NoError(t, err)

	corrupted := append([]byte(nil), tag...)
	corrupted[len(corrupted)-1] ^= 0xFF

	ok, err := hmac.Verify(secret, cryptography.SHA256, corrupted, plain)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyRejectsFlippedPlainBit(t *testing.T) {
	secret := []byte("shared secret")
	plain := []byte("authenticate me")
	tag, err := hmac.Sign(secret, cryptography.SHA256, plain)
	require.NoError(t, err)

	corrupted := append([]byte(nil), plain...)
	corrupted[0] ^= 0xFF

	ok, err := hmac.Verify(secret, cryptography.SHA256, tag, corrupted)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignUnknownOneway(t *testing.T) {
	_, err := hmac.Sign([]byte("k"), cryptography.Oneway("bogus"), []byte("p"))
	assert.Error(t, err)
}
