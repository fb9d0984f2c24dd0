package provider

import (
	"fmt"
	"hash"
)

// SaltLength is PKCS5_SALT_LEN: the salt width used by both the key/IV
// derivation below and the salted stream codec in internal/raw.
const SaltLength = 8

// DeriveKeyIV replicates OpenSSL's single-iteration EVP_BytesToKey: it
// repeatedly hashes the previous digest, the secret, and the salt until it
// has produced enough material to fill keyLen bytes of key followed by
// ivLen bytes of IV. This is deliberately not PBKDF2 (different input
// order, the salt is appended in every round rather than mixed into an
// iterated PRF, digest output is sliced rather than XORed) — OpenSSL's
// own KDF has to be reimplemented
// bit for bit for the salted stream format to interoperate.
func DeriveKeyIV(newHash func() hash.Hash, secret, salt []byte, keyLen, ivLen int) (key, iv []byte, err error) {
	if len(salt) != SaltLength {
		return nil, nil, fmt.Errorf("provider: salt must be %d bytes, got %d", SaltLength, len(salt))
	}

	material := make([]byte, 0, keyLen+ivLen)
	var prev []byte
	for len(material) < keyLen+ivLen {
		h := newHash()
		h.Write(prev)
		h.Write(secret)
		h.Write(salt)
		prev = h.Sum(nil)
		material = append(material, prev...)
	}

	key = append([]byte(nil), material[:keyLen]...)
	iv = append([]byte(nil), material[keyLen:keyLen+ivLen]...)
	return key, iv, nil
}
