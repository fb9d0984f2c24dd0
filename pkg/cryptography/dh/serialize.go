package dh

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// MarshalBinary serializes priv as four length-prefixed big-endian
// integers: P, G, Y, X. There is no DER form for classic DH in this
// module's provider, so this length-prefixed binary codec is the only
// persistable encoding; Hash (below) reuses this same encoding as a
// non-persistable in-process lookup key.
func (priv *PrivateKey) MarshalBinary() ([]byte, error) {
	return marshalInts(priv.params.P, priv.params.G, priv.y, priv.x), nil
}

// UnmarshalPrivateKey reverses MarshalBinary.
func UnmarshalPrivateKey(data []byte) (*PrivateKey, error) {
	ints, err := unmarshalInts(data, 4)
	if err != nil {
		return nil, err
	}
	params := Parameters{P: ints[0], G: ints[1]}
	return newPrivateKey(params, ints[3], ints[2])
}

// MarshalBinary serializes pub as three length-prefixed big-endian
// integers: P, G, Y.
func (pub *PublicKey) MarshalBinary() ([]byte, error) {
	return marshalInts(pub.params.P, pub.params.G, pub.y), nil
}

// UnmarshalPublicKey reverses PublicKey.MarshalBinary.
func UnmarshalPublicKey(data []byte) (*PublicKey, error) {
	ints, err := unmarshalInts(data, 3)
	if err != nil {
		return nil, err
	}
	params := Parameters{P: ints[0], G: ints[1]}
	return newPublicKey(params, ints[2])
}

// MarshalTaggedPrivateKey wraps priv.MarshalBinary under the outer
// cryptography.Cryptosystem tag, mirroring the rsa and dsa packages'
// codecs. DH carries no cryptography.Options on the wire, unlike rsa and
// dsa, since its serialization is a fixed tuple of domain integers with
// no padding/oneway/envelope choice to record.
func (priv *PrivateKey) MarshalTaggedPrivateKey() ([]byte, error) {
	payload, err := priv.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cryptography.MarshalTaggedPrivateKey(cryptography.CryptosystemDH, payload)
}

// UnmarshalTaggedPrivateKey reverses MarshalTaggedPrivateKey: it strips
// the outer cryptography.Cryptosystem tag, rejecting anything but
// CryptosystemDH, then decodes the inner payload with UnmarshalPrivateKey.
func UnmarshalTaggedPrivateKey(data []byte) (*PrivateKey, error) {
	system, inner, err := cryptography.UnmarshalTaggedPrivateKey(data)
	if err != nil {
		return nil, err
	}
	if system != cryptography.CryptosystemDH {
		return nil, fmt.Errorf("%w: expected dh, got %q", cryptography.ErrFormatError, system)
	}
	return UnmarshalPrivateKey(inner)
}

// Hash returns priv's MarshalBinary encoding (P, G, Y, X) as a string; it
// is not a cryptographic digest. It is usable only as an in-process
// lookup key (e.g. a map key for a pool of live key
// handles). It is not a persistable or cross-process-stable identifier:
// the provider this module targets exposes no DER encoding for DH keys,
// so there is no canonical wire form to hash against.
func (priv *PrivateKey) Hash() (string, error) {
	data, err := priv.MarshalBinary()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func marshalInts(ints ...*big.Int) []byte {
	var out []byte
	for _, n := range ints {
		b := n.Bytes()
		header := make([]byte, 4)
		binary.BigEndian.PutUint32(header, uint32(len(b)))
		out = append(out, header...)
		out = append(out, b...)
	}
	return out
}

func unmarshalInts(data []byte, count int) ([]*big.Int, error) {
	ints := make([]*big.Int, 0, count)
	for i := 0; i < count; i++ {
		if len(data) < 4 {
			return nil, fmt.Errorf("%w: truncated DH integer header", cryptography.ErrSerializationError)
		}
		n := binary.BigEndian.Uint32(data[:4])
		data = data[4:]
		if uint32(len(data)) < n {
			return nil, fmt.Errorf("%w: truncated DH integer body", cryptography.ErrSerializationError)
		}
		ints = append(ints, new(big.Int).SetBytes(data[:n]))
		data = data[n:]
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("%w: trailing bytes after DH key payload", cryptography.ErrSerializationError)
	}
	return ints, nil
}
