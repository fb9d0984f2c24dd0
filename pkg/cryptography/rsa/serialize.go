package rsa

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// formatVersion discriminates the on-wire layout a versioned serialization
// was written with. formatCurrent carries only the DER payload and decodes
// to the current-profile defaults; formatLegacy carries the Options fields
// and substitutes legacy defaults for any that are absent, matching the
// source's format-0/format-1 legacy dualism.
type formatVersion uint16

const (
	formatCurrent formatVersion = 0
	formatLegacy  formatVersion = 1
)

// privateKeyWire is the JSON projection of a PrivateKey used by
// MarshalBinary/UnmarshalPrivateKey, written after the 2-byte format
// discriminant: fields addressed by name rather than position, so an
// added field never shifts the layout of an existing one.
type privateKeyWire struct {
	DER               []byte              `json:"der"`
	EncryptionPadding cryptography.Padding `json:"encryption_padding,omitempty"`
	SignaturePadding  cryptography.Padding `json:"signature_padding,omitempty"`
	Oneway            cryptography.Oneway  `json:"oneway,omitempty"`
	EnvelopeCipher    cryptography.Cipher  `json:"envelope_cipher,omitempty"`
	EnvelopeMode      cryptography.Mode    `json:"envelope_mode,omitempty"`
}

// MarshalBinary serializes priv as: a 2-byte little-endian format
// discriminant, then the JSON-encoded privateKeyWire payload. Passing
// opts.Profile == cryptography.ProfileLegacy writes format 1 and embeds
// opts' padding/oneway/envelope choices; the current profile writes format
// 0 with only the DER payload, since current-profile defaults are fixed
// and need not be carried on the wire.
func (priv *PrivateKey) MarshalBinary(opts cryptography.Options) ([]byte, error) {
	wire := privateKeyWire{DER: priv.EncodeDER()}

	format := formatCurrent
	if opts.Profile == cryptography.ProfileLegacy {
		format = formatLegacy
		wire.EncryptionPadding = opts.EncryptionPadding
		wire.SignaturePadding = opts.SignaturePadding
		wire.Oneway = opts.Oneway
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
// cryptography.Cryptosystem tag, so a generic KeyPair deserializer that
// does not statically know which cryptosystem produced the bytes can
// still dispatch to UnmarshalTaggedPrivateKey.
func (priv *PrivateKey) MarshalTaggedPrivateKey(opts cryptography.Options) ([]byte, error) {
	payload, err := priv.MarshalBinary(opts)
	if err != nil {
		return nil, err
	}
	return cryptography.MarshalTaggedPrivateKey(cryptography.CryptosystemRSA, payload)
}

// UnmarshalTaggedPrivateKey reverses MarshalTaggedPrivateKey: it strips
// the outer cryptography.Cryptosystem tag, rejecting anything but
// CryptosystemRSA, then decodes the inner payload with UnmarshalPrivateKey.
func UnmarshalTaggedPrivateKey(data []byte) (*PrivateKey, cryptography.Options, error) {
	system, inner, err := cryptography.UnmarshalTaggedPrivateKey(data)
	if err != nil {
		return nil, cryptography.Options{}, err
	}
	if system != cryptography.CryptosystemRSA {
		return nil, cryptography.Options{}, fmt.Errorf("%w: expected rsa, got %q", cryptography.ErrFormatError, system)
	}
	return UnmarshalPrivateKey(inner)
}

// UnmarshalPrivateKey reverses MarshalBinary. For format 1 (legacy), any
// padding/oneway/envelope field left zero-valued in the wire payload is
// substituted with the legacy profile's defaults (format 1 ⇒ PKCS#1 v1.5
// for both paddings), per the source's legacy default-substitution table.
func UnmarshalPrivateKey(data []byte) (*PrivateKey, cryptography.Options, error) {
	if len(data) < 2 {
		return nil, cryptography.Options{}, fmt.Errorf("%w: input shorter than the format discriminant", cryptography.ErrFormatError)
	}
	format := formatVersion(binary.LittleEndian.Uint16(data[:2]))

	var wire privateKeyWire
	if err := json.Unmarshal(data[2:], &wire); err != nil {
		return nil, cryptography.Options{}, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}

	priv, err := DecodeDERPrivateKey(wire.DER)
	if err != nil {
		return nil, cryptography.Options{}, err
	}

	var opts cryptography.Options
	switch format {
	case formatCurrent:
		opts = cryptography.DefaultOptions()
	case formatLegacy:
		opts = cryptography.LegacyOptions()
		if wire.EncryptionPadding != "" {
			opts.EncryptionPadding = wire.EncryptionPadding
		}
		if wire.SignaturePadding != "" {
			opts.SignaturePadding = wire.SignaturePadding
		}
		if wire.Oneway != "" {
			opts.Oneway = wire.Oneway
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

	return priv, opts, nil
}
