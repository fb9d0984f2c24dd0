package cryptography

import (
	"encoding/binary"
	"fmt"
)

// MarshalTaggedPrivateKey prepends a 2-byte little-endian Cryptosystem tag
// naming system to an already-serialized per-cryptosystem payload (the
// output of e.g. rsa.PrivateKey.MarshalBinary). A legacy KeyPair
// deserializer consumes this outer tag before handing the remainder to
// the matching package's own UnmarshalPrivateKey.
func MarshalTaggedPrivateKey(system Cryptosystem, payload []byte) ([]byte, error) {
	tag, err := cryptosystemTag(system)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 2+len(payload))
	binary.LittleEndian.PutUint16(out[:2], tag)
	copy(out[2:], payload)
	return out, nil
}

// UnmarshalTaggedPrivateKey strips the outer Cryptosystem tag a
// MarshalTaggedPrivateKey payload was written with, returning the system
// it names and the still-serialized inner payload. Callers dispatch
// System to the matching package's UnmarshalPrivateKey.
func UnmarshalTaggedPrivateKey(data []byte) (Cryptosystem, []byte, error) {
	if len(data) < 2 {
		return "", nil, fmt.Errorf("%w: input shorter than the cryptosystem tag", ErrFormatError)
	}
	system, err := cryptosystemFromTag(binary.LittleEndian.Uint16(data[:2]))
	if err != nil {
		return "", nil, err
	}
	return system, data[2:], nil
}

func cryptosystemTag(system Cryptosystem) (uint16, error) {
	switch system {
	case CryptosystemRSA:
		return 0, nil
	case CryptosystemDSA:
		return 1, nil
	case CryptosystemDH:
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: cryptosystem %q", ErrUnknownAlgorithm, system)
	}
}

func cryptosystemFromTag(tag uint16) (Cryptosystem, error) {
	switch tag {
	case 0:
		return CryptosystemRSA, nil
	case 1:
		return CryptosystemDSA, nil
	case 2:
		return CryptosystemDH, nil
	default:
		return "", fmt.Errorf("%w: cryptosystem tag %d", ErrUnknownAlgorithm, tag)
	}
}
