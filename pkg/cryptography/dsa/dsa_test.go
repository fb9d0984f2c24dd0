package dsa_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
	"github.com/infinitio/cryptography-go/pkg/cryptography/dsa"
)

func generateTestKeyPair(t *testing.T) *dsa.KeyPair {
	t.Helper()
	kp, err := dsa.GenerateKeyPair(1024, cryptography.SHA256)
	require.NoError(t, err)
	t.Cleanup(func() {
		kp.Private.Close()
	})
	return kp
}

// TestSignVerifyRoundTrip pins end-to-end scenario 3: a generated key
// pair signs and verifies a message. Rejection of a tampered signature or
// a tampered message is checked by the two tests that follow.
func TestSignVerifyRoundTrip(t *testing.T) {
	kp := generateTestKeyPair(t)
	plain := []byte("DSA signed message")

	sig, err := dsa.Sign(kp.Private, bytes.NewReader(plain))
	require.NoError(t, err)

	ok, err := dsa.Verify(kp.Public, sig, bytes.NewReader(plain))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	kp := generateTestKeyPair(t)
	plain := []byte("DSA signed message")

	sig, err := dsa.Sign(kp.Private, bytes.NewReader(plain))
	require.NoError(t, err)

	corrupted := append([]byte(nil), sig...)
	corrupted[len(corrupted)-1] ^= 0xFF

	ok, err := dsa.Verify(kp.Public, corrupted, bytes.NewReader(plain))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyRejectsTamperedPlain(t *testing.T) {
	kp := generateTestKeyPair(t)
	plain := []byte("DSA signed message")

	sig, err := dsa.Sign(kp.Private, bytes.NewReader(plain))
	require.NoError(t, err)

	ok, err := dsa.Verify(kp.Public, sig, bytes.NewReader([]byte("DSA signed message!")))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyRejectsMalformedSignatureBlob(t *testing.T) {
	kp := generateTestKeyPair(t)
	ok, err := dsa.Verify(kp.Public, []byte("not an ASN.1 signature"), bytes.NewReader([]byte("x")))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignRejectsUnsupportedOneway(t *testing.T) {
	kp, err := dsa.GenerateKeyPair(1024, cryptography.Oneway("bogus"))
	require.NoError(t, err)
	defer kp.Private.Close()

	_, err = dsa.Sign(kp.Private, bytes.NewReader([]byte("x")))
	assert.Error(t, err)
}

func TestDERRoundTrip(t *testing.T) {
	kp := generateTestKeyPair(t)

	privDER, err := kp.Private.EncodeDER()
	require.NoError(t, err)
	decodedPriv, err := dsa.DecodeDERPrivateKey(privDER, cryptography.SHA256)
	require.NoError(t, err)
	defer decodedPriv.Close()
	assert.True(t, kp.Public.Equal(decodedPriv.Public()))

	pubDER, err := kp.Public.EncodeDER()
	require.NoError(t, err)
	decodedPub, err := dsa.DecodeDERPublicKey(pubDER, cryptography.SHA256)
	require.NoError(t, err)
	assert.True(t, kp.Public.Equal(decodedPub))
}

func TestPEMRoundTripUnencrypted(t *testing.T) {
	kp := generateTestKeyPair(t)

	var buf bytes.Buffer
	require.NoError(t, kp.Private.ExportPEM(&buf, nil, cryptography.AES256))

	imported, err := dsa.ImportPEM(&buf, nil, cryptography.SHA256)
	require.NoError(t, err)
	defer imported.Close()
	assert.True(t, kp.Public.Equal(imported.Public()))
}

func TestPEMRoundTripEncryptedPassphraseSensitivity(t *testing.T) {
	kp := generateTestKeyPair(t)
	passphrase := []byte("correct horse battery staple")

	var buf bytes.Buffer
	require.NoError(t, kp.Private.ExportPEM(&buf, passphrase, cryptography.AES256))
	pem := append([]byte(nil), buf.Bytes()...)

	imported, err := dsa.ImportPEM(bytes.NewReader(pem), passphrase, cryptography.SHA256)
	require.NoError(t, err)
	defer imported.Close()
	assert.True(t, kp.Public.Equal(imported.Public()))

	_, err = dsa.ImportPEM(bytes.NewReader(pem), []byte("wrong passphrase"), cryptography.SHA256)
	assert.ErrorIs(t, err, cryptography.ErrDecryptionError)
}

func TestPublicPEMRoundTrip(t *testing.T) {
	kp := generateTestKeyPair(t)

	var buf bytes.Buffer
	require.NoError(t, kp.Public.ExportPublicPEM(&buf))

	imported, err := dsa.ImportPublicPEM(&buf, cryptography.SHA256)
	require.NoError(t, err)
	assert.True(t, kp.Public.Equal(imported))
}

func TestSerializationRoundTripCurrentProfile(t *testing.T) {
	kp := generateTestKeyPair(t)
	opts := cryptography.DefaultOptions()

	data, err := kp.Private.MarshalBinary(opts)
	require.NoError(t, err)

	decoded, decodedOpts, err := dsa.UnmarshalPrivateKey(data)
	require.NoError(t, err)
	defer decoded.Close()
	assert.True(t, kp.Public.Equal(decoded.Public()))
	assert.Equal(t, cryptography.SHA256, decodedOpts.Oneway)
}

func TestSerializationRoundTripLegacyProfile(t *testing.T) {
	kp := generateTestKeyPair(t)
	opts := cryptography.LegacyOptions()

	data, err := kp.Private.MarshalBinary(opts)
	require.NoError(t, err)

	decoded, decodedOpts, err := dsa.UnmarshalPrivateKey(data)
	require.NoError(t, err)
	defer decoded.Close()
	assert.True(t, kp.Public.Equal(decoded.Public()))
	assert.Equal(t, cryptography.PaddingPKCS1, decodedOpts.SignaturePadding)
	assert.Equal(t, cryptography.SHA256, decodedOpts.Oneway)
}

func TestUnmarshalRejectsUnknownFormat(t *testing.T) {
	kp := generateTestKeyPair(t)
	data, err := kp.Private.MarshalBinary(cryptography.DefaultOptions())
	require.NoError(t, err)

	data[0] = 0xFF
	data[1] = 0xFF
	_, _, err = dsa.UnmarshalPrivateKey(data)
	assert.ErrorIs(t, err, cryptography.ErrFormatError)
}

func TestTaggedPrivateKeyRoundTrip(t *testing.T) {
	kp := generateTestKeyPair(t)
	opts := cryptography.DefaultOptions()

	data, err := kp.Private.MarshalTaggedPrivateKey(opts)
	require.NoError(t, err)

	system, _, err := cryptography.UnmarshalTaggedPrivateKey(data)
	require.NoError(t, err)
	assert.Equal(t, cryptography.CryptosystemDSA, system)

	decoded, _, err := dsa.UnmarshalTaggedPrivateKey(data)
	require.NoError(t, err)
	defer decoded.Close()
	assert.True(t, kp.Public.Equal(decoded.Public()))
}

func TestUnmarshalTaggedPrivateKeyRejectsOtherCryptosystem(t *testing.T) {
	kp := generateTestKeyPair(t)
	opts := cryptography.DefaultOptions()

	payload, err := kp.Private.MarshalBinary(opts)
	require.NoError(t, err)
	data, err := cryptography.MarshalTaggedPrivateKey(cryptography.CryptosystemRSA, payload)
	require.NoError(t, err)

	_, _, err = dsa.UnmarshalTaggedPrivateKey(data)
	assert.ErrorIs(t, err, cryptography.ErrFormatError)
}
