package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherKeySize(t *testing.T) {
	cases := []struct {
		id   CipherID
		size int
	}{
		{DES, 8},
		{DES3, 24},
		{Blowfish, 16},
		{CAST5, 16},
		{AES128, 16},
		{AES192, 24},
		{AES256, 32},
	}
	for _, tc := range cases {
		n, err := CipherKeySize(tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.size, n)
	}
}

func TestCipherKeySizeUnsupported(t *testing.T) {
	for _, id := range []CipherID{DES2, DESX, IDEA, RC2} {
		_, err := CipherKeySize(id)
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	}
	_, err := CipherKeySize("nonsense")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestNewBlockRejectsWrongKeyLength(t *testing.T) {
	_, err := NewBlock(AES256, make([]byte, 16))
	require.Error(t, err)
}

func TestNewBlockRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	block, err := NewBlock(AES256, key)
	require.NoError(t, err)

	plain := make([]byte, block.BlockSize())
	for i := range plain {
		plain[i] = byte(i)
	}
	cipherText := make([]byte, block.BlockSize())
	block.Encrypt(cipherText, plain)

	decoded := make([]byte, block.BlockSize())
	block.Decrypt(decoded, cipherText)
	assert.Equal(t, plain, decoded)
}

func TestValidMode(t *testing.T) {
	for _, m := range []ModeID{ModeNone, ModeCBC, ModeECB, ModeCFB, ModeOFB} {
		assert.True(t, ValidMode(m))
	}
	assert.False(t, ValidMode("bogus"))
}
