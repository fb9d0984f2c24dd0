package dh_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
	"github.com/infinitio/cryptography-go/pkg/cryptography/dh"
)

// TestAgreeCommutative pins end-to-end scenario 4: two DH-2048 key pairs
// under the default group produce identical, modulus-sized shared
// secrets regardless of which side computes first.
func TestAgreeCommutative(t *testing.T) {
	alice, err := dh.GenerateKeyPair(dh.Group2048())
	require.NoError(t, err)
	defer alice.Close()

	bob, err := dh.GenerateKeyPair(dh.Group2048())
	require.NoError(t, err)
	defer bob.Close()

	aliceSecret, err := dh.Agree(alice, bob.Public())
	require.NoError(t, err)
	bobSecret, err := dh.Agree(bob, alice.Public())
	require.NoError(t, err)

	assert.Equal(t, aliceSecret, bobSecret)
	assert.Len(t, aliceSecret, dh.Group2048().Size())
	assert.Equal(t, 256, len(aliceSecret))
}

func TestGenerateKeyPairDefaultsToGroup2048(t *testing.T) {
	priv, err := dh.GenerateKeyPair(dh.Parameters{})
	require.NoError(t, err)
	defer priv.Close()

	group := dh.Group2048()
	params := priv.Parameters()
	assert.Equal(t, 0, params.P.Cmp(group.P))
	assert.Equal(t, 0, params.G.Cmp(group.G))
}

func TestAgreeRejectsMismatchedParameters(t *testing.T) {
	own, err := dh.GenerateKeyPair(dh.Group2048())
	require.NoError(t, err)
	defer own.Close()

	otherParams := dh.Parameters{P: dh.Group2048().P, G: big.NewInt(3)}
	peer, err := dh.GenerateKeyPair(otherParams)
	require.NoError(t, err)
	defer peer.Close()

	_, err = dh.Agree(own, peer.Public())
	assert.Error(t, err)
}

func TestPrivateKeyMarshalUnmarshalRoundTrip(t *testing.T) {
	priv, err := dh.GenerateKeyPair(dh.Group2048())
	require.NoError(t, err)
	defer priv.Close()

	data, err := priv.MarshalBinary()
	require.NoError(t, err)

	decoded, err := dh.UnmarshalPrivateKey(data)
	require.NoError(t, err)
	defer decoded.Close()

	assert.True(t, priv.Public().Equal(decoded.Public()))
}

func TestPublicKeyMarshalUnmarshalRoundTrip(t *testing.T) {
	priv, err := dh.GenerateKeyPair(dh.Group2048())
	require.NoError(t, err)
	defer priv.Close()

	data, err := priv.Public().MarshalBinary()
	require.NoError(t, err)

	decoded, err := dh.UnmarshalPublicKey(data)
	require.NoError(t, err)

	assert.True(t, priv.Public().Equal(decoded))
}

// TestHashIsStableForSameKey exercises Hash purely as an
// in-process lookup key: it's deterministic for a given key handle and
// distinct key handles hash differently, with no claim beyond that.
func TestHashIsStableForSameKey(t *testing.T) {
	priv, err := dh.GenerateKeyPair(dh.Group2048())
	require.NoError(t, err)
	defer priv.Close()

	h1, err := priv.Hash()
	require.NoError(t, err)
	h2, err := priv.Hash()
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	other, err := dh.GenerateKeyPair(dh.Group2048())
	require.NoError(t, err)
	defer other.Close()

	h3, err := other.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestUnmarshalPrivateKeyRejectsTruncatedPayload(t *testing.T) {
	_, err := dh.UnmarshalPrivateKey([]byte{0x00, 0x00})
	assert.Error(t, err)
}

func TestTaggedPrivateKeyRoundTrip(t *testing.T) {
	priv, err := dh.GenerateKeyPair(dh.Group2048())
	require.NoError(t, err)
	defer priv.Close()

	data, err := priv.MarshalTaggedPrivateKey()
	require.NoError(t, err)

	system, _, err := cryptography.UnmarshalTaggedPrivateKey(data)
	require.NoError(t, err)
	assert.Equal(t, cryptography.CryptosystemDH, system)

	decoded, err := dh.UnmarshalTaggedPrivateKey(data)
	require.NoError(t, err)
	defer decoded.Close()
	assert.True(t, priv.Public().Equal(decoded.Public()))
}

func TestUnmarshalTaggedPrivateKeyRejectsOtherCryptosystem(t *testing.T) {
	priv, err := dh.GenerateKeyPair(dh.Group2048())
	require.NoError(t, err)
	defer priv.Close()

	payload, err := priv.MarshalBinary()
	require.NoError(t, err)
	data, err := cryptography.MarshalTaggedPrivateKey(cryptography.CryptosystemRSA, payload)
	require.NoError(t, err)

	_, err = dh.UnmarshalTaggedPrivateKey(data)
	assert.ErrorIs(t, err, cryptography.ErrFormatError)
}
