package cryptography

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, PaddingOAEP, opts.EncryptionPadding)
	assert.Equal(t, PaddingPSS, opts.SignaturePadding)
	assert.Equal(t, SHA256, opts.Oneway)
	assert.Equal(t, AES256, opts.Cipher)
	assert.Equal(t, ModeCBC, opts.Mode)
	assert.Equal(t, ProfileCurrent, opts.Profile)
}

func TestLegacyOptions(t *testing.T) {
	opts := LegacyOptions()
	assert.Equal(t, PaddingPKCS1, opts.EncryptionPadding)
	assert.Equal(t, PaddingPKCS1, opts.SignaturePadding)
	assert.Equal(t, ProfileLegacy, opts.Profile)
}

func TestOptionsWithHelpers(t *testing.T) {
	opts := DefaultOptions().WithOneway(SHA512).WithCipher(AES128, ModeOFB)
	assert.Equal(t, SHA512, opts.Oneway)
	assert.Equal(t, AES128, opts.Cipher)
	assert.Equal(t, ModeOFB, opts.Mode)

	// The original options value must not be mutated by With* calls.
	original := DefaultOptions()
	_ = original.WithOneway(SHA1)
	assert.Equal(t, SHA256, original.Oneway)
}

func TestCipherKeySize(t *testing.T) {
	n, err := AES256.KeySize()
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(32, n)
}

func TestOnewayDigestSize(t *testing.T) {
	n, err := SHA256.DigestSize()
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(32, n)
}
