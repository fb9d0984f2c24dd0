package cryptography

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(PaddingOAEP)
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))

	var p Padding
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, PaddingOAEP, p)

	onewayData, err := json.Marshal(SHA256)
	require.NoError(t, err)
	var o Oneway
	require.NoError(t, json.Unmarshal(onewayData, &o))
	assert.Equal(t, SHA256, o)

	cipherData, err := json.Marshal(AES256)
	require.NoError(t, err)
	var c Cipher
	require.NoError(t, json.Unmarshal(cipherData, &c))
	assert.Equal(t, AES256, c)

	modeData, err := json.Marshal(ModeCBC)
	require.NoError(t, err)
	var m Mode
	require.NoError(t, json.Unmarshal(modeData, &m))
	assert.Equal(t, ModeCBC, m)
}

func TestEnumJSONZeroValueRoundTrips(t *testing.T) {
	data, err := json.Marshal(Padding(""))
	require.NoError(t, err)
	assert.Equal(t, "-1", string(data))

	var p Padding
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, Padding(""), p)
}

func TestEnumJSONRejectsUnknownDiscriminant(t *testing.T) {
	var p Padding
	err := json.Unmarshal([]byte("99"), &p)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestPrivateKeyWireEnumsSerializeNumerically(t *testing.T) {
	type wire struct {
		Padding Padding `json:"padding"`
	}
	payload, err := json.Marshal(wire{Padding: PaddingPSS})
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"padding":3`)
}
