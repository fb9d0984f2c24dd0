package raw

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitio/cryptography-go/internal/provider"
)

// TestSymmetricRoundTripAES256CBC pins end-to-end scenario 1: a fixed
// 32-byte secret, AES-256-CBC, SHA-256-derived key/IV, round-tripping
// "Attack at dawn" and the literal magic-prefix bytes at the head of the
// output.
func TestSymmetricRoundTripAES256CBC(t *testing.T) {
	secret := make([]byte, 32)
	for i := range secret {
		secret[i] = byte(i)
	}
	plain := []byte("Attack at dawn")

	var code bytes.Buffer
	err := Encipher(provider.AES256, provider.ModeCBC, provider.SHA256, secret, bytes.NewReader(plain), &code)
	require.NoError(t, err)

	assert.Equal(t, []byte{0x53, 0x61, 0x6c, 0x74, 0x65, 0x64, 0x5f, 0x5f}, code.Bytes()[:8])

	var recovered bytes.Buffer
	err = Decipher(provider.AES256, provider.ModeCBC, provider.SHA256, secret, bytes.NewReader(code.Bytes()), &recovered)
	require.NoError(t, err)
	assert.Equal(t, plain, recovered.Bytes())
}

func TestSymmetricRoundTripAllModes(t *testing.T) {
	secret := bytes.Repeat([]byte{0x42}, 32)
	plain := bytes.Repeat([]byte("0123456789"), 1000) // spans several cipher blocks

	for _, mode := range []provider.ModeID{provider.ModeCBC, provider.ModeECB, provider.ModeCFB, provider.ModeOFB, provider.ModeNone} {
		mode := mode
		t.Run(string(mode), func(t *testing.T) {
			var code bytes.Buffer
			require.NoError(t, Encipher(provider.AES256, mode, provider.SHA256, secret, bytes.NewReader(plain), &code))

			var recovered bytes.Buffer
			require.NoError(t, Decipher(provider.AES256, mode, provider.SHA256, secret, bytes.NewReader(code.Bytes()), &recovered))
			assert.Equal(t, plain, recovered.Bytes())
		})
	}
}

func TestDecipherRejectsMissingMagic(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	garbage := bytes.Repeat([]byte{0x00}, 64)

	var out bytes.Buffer
	err := Decipher(provider.AES256, provider.ModeCBC, provider.SHA256, secret, bytes.NewReader(garbage), &out)
	assert.ErrorIs(t, err, ErrInvalidStream)
}

func TestDecipherRejectsTruncatedStream(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	var out bytes.Buffer
	err := Decipher(provider.AES256, provider.ModeCBC, provider.SHA256, secret, bytes.NewReader([]byte(salutation[:4])), &out)
	assert.ErrorIs(t, err, ErrStreamTooShort)
}

func TestDecipherWrongSecretFailsOrYieldsGarbage(t *testing.T) {
	secret := bytes.Repeat([]byte{0x01}, 32)
	wrongSecret := bytes.Repeat([]byte{0x02}, 32)
	plain := []byte("confidential payload padded to span a couple of blocks of data")

	var code bytes.Buffer
	require.NoError(t, Encipher(provider.AES256, provider.ModeCBC, provider.SHA256, secret, bytes.NewReader(plain), &code))

	var recovered bytes.Buffer
	err := Decipher(provider.AES256, provider.ModeCBC, provider.SHA256, wrongSecret, bytes.NewReader(code.Bytes()), &recovered)
	if err == nil {
		assert.NotEqual(t, plain, recovered.Bytes())
	}
}
