package dsa

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// formatVersion discriminates the on-wire layout, mirroring the RSA
// package's format-0/format-1 legacy dualism.
type formatVersion uint16

const (
	formatCurrent formatVersion = 0
	formatLegacy  formatVersion = 1
)

// privateKeyWire is the JSON projection of a PrivateKey used by
// MarshalBinary/UnmarshalPrivateKey. Oneway is always carried since, unlike
// RSA's padding choice, it cannot be recovered from domain parameters alone.
type privateKeyWire struct {
	DER            []byte              `json:"der"`
	Oneway         cryptography.Oneway `json:"oneway"`
	SignaturePadding cryptography.Padding `json:"signature_padding,omitempty"`
	EnvelopeCipher cryptography.Cipher `json:"envelope_cipher,omitempty"`
	EnvelopeMode   cryptography.Mode   `json:"envelope_mode,omitempty"`
}

// MarshalBinary serializes priv as a 2-byte little-endian format
// discriminant followed by the JSON-encoded privateKeyWire payload.
// opts.Profile == cryptography.ProfileLegacy writes format 1 and embeds
// opts' envelope choices; the current profile writes format 0.
func (priv *PrivateKey) MarshalBinary(opts cryptography.Options) ([]byte, error) {
	der, err := priv.EncodeDER()
	if err != nil {
		return nil, err
	}
	wire := privateKeyWire{DER: der, Oneway: priv.oneway}

	format := formatCurrent
	if opts.Profile == cryptography.ProfileLegacy {
		format = formatLegacy
		wire.SignaturePadding = opts.SignaturePadding
		wire.EnvelopeCipher = opts.Cipher
		wire.EnvelopeMode = opts.Mode
	}

	payload, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}

	out := make([]byte, 2+len(payload))
	binary.LittleEndian.PutUint16(out[:2], uint16(format))
	copy(out[2:], payload)
	return out, nil
}

// MarshalTaggedPrivateKey wraps priv.MarshalBinary(opts) under the outer
// cryptography.Cryptosystem tag, mirroring the rsa package's codec so a
// generic KeyPair deserializer can dispatch without knowing in advance
// which cryptosystem produced the bytes.
func (priv *PrivateKey) MarshalTaggedPrivateKey(opts cryptography.Options) ([]byte, error) {
	payload, err := priv.MarshalBinary(opts)
	if err != nil {
		return nil, err
	}
	return cryptography.MarshalTaggedPrivateKey(cryptography.CryptosystemDSA, payload)
}

// UnmarshalTaggedPrivateKey reverses MarshalTaggedPrivateKey: it strips
// the outer cryptography.Cryptosystem tag, rejecting anything but
// CryptosystemDSA, then decodes the inner payload with UnmarshalPrivateKey.
func UnmarshalTaggedPrivateKey(data []byte) (*PrivateKey, cryptography.Options, error) {
	system, inner, err := cryptography.UnmarshalTaggedPrivateKey(data)
	if err != nil {
		return nil, cryptography.Options{}, err
	}
	if system != cryptography.CryptosystemDSA {
		return nil, cryptography.Options{}, fmt.Errorf("%w: expected dsa, got %q", cryptography.ErrFormatError, system)
	}
	return UnmarshalPrivateKey(inner)
}

// UnmarshalPrivateKey reverses MarshalBinary, substituting legacy defaults
// for any envelope field left zero-valued in a format-1 payload.
func UnmarshalPrivateKey(data []byte) (*PrivateKey, cryptography.Options, error) {
	if len(data) < 2 {
		return nil, cryptography.Options{}, fmt.Errorf("%w: input shorter than the format discriminant", cryptography.ErrFormatError)
	}
	format := formatVersion(binary.LittleEndian.Uint16(data[:2]))

	var wire privateKeyWire
	if err := json.Unmarshal(data[2:], &wire); err != nil {
		return nil, cryptography.Options{}, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}

	priv, err := DecodeDERPrivateKey(wire.DER, wire.Oneway)
	if err != nil {
		return nil, cryptography.Options{}, err
	}

	var opts cryptography.Options
	switch format {
	case formatCurrent:
		opts = cryptography.DefaultOptions()
	case formatLegacy:
		opts = cryptography.LegacyOptions()
		if wire.SignaturePadding != "" {
			opts.SignaturePadding = wire.SignaturePadding
		}
		if wire.EnvelopeCipher != "" {
			opts.Cipher = wire.EnvelopeCipher
		}
		if wire.EnvelopeMode != "" {
			opts.Mode = wire.EnvelopeMode
		}
	default:
		priv.Close()
		return nil, cryptography.Options{}, fmt.Errorf("%w: format %d", cryptography.ErrFormatError, format)
	}
	opts.Oneway = wire.Oneway

	return priv, opts, nil
}
