package provider

import (
	"crypto/aes"
	"crypto/des"
	"fmt"

	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/cast5"
)

// CipherID and ModeID name a symmetric cipher/mode pair independent of the
// public Cipher/Mode types in pkg/cryptography.
type CipherID string
type ModeID string

const (
	DES      CipherID = "des"
	DES2     CipherID = "des2"
	DES3     CipherID = "des3"
	DESX     CipherID = "desx"
	IDEA     CipherID = "idea"
	RC2      CipherID = "rc2"
	Blowfish CipherID = "blowfish"
	CAST5    CipherID = "cast5"
	AES128   CipherID = "aes128"
	AES192   CipherID = "aes192"
	AES256   CipherID = "aes256"
)

const (
	ModeNone ModeID = "none"
	ModeCBC  ModeID = "cbc"
	ModeECB  ModeID = "ecb"
	ModeCFB  ModeID = "cfb"
	ModeOFB  ModeID = "ofb"
)

// blockLike is the subset of cipher.Block the provider needs; it is
// satisfied directly by crypto/aes, crypto/des, blowfish and cast5's
// cipher.Block implementations.
type blockLike interface {
	BlockSize() int
	Encrypt(dst, src []byte)
	Decrypt(dst, src []byte)
}

type cipherEntry struct {
	keySize int
	newBlock func(key []byte) (blockLike, error)
}

var cipherCatalog = map[CipherID]cipherEntry{
	DES: {
		keySize: 8,
		newBlock: func(key []byte) (blockLike, error) { return des.NewCipher(key) },
	},
	DES3: {
		keySize: 24,
		newBlock: func(key []byte) (blockLike, error) { return des.NewTripleDESCipher(key) },
	},
	Blowfish: {
		keySize: 16,
		newBlock: func(key []byte) (blockLike, error) { return blowfish.NewCipher(key) },
	},
	CAST5: {
		keySize: 16,
		newBlock: func(key []byte) (blockLike, error) { return cast5.NewCipher(key) },
	},
	AES128: {
		keySize: 16,
		newBlock: func(key []byte) (blockLike, error) { return aes.NewCipher(key) },
	},
	AES192: {
		keySize: 24,
		newBlock: func(key []byte) (blockLike, error) { return aes.NewCipher(key) },
	},
	AES256: {
		keySize: 32,
		newBlock: func(key []byte) (blockLike, error) { return aes.NewCipher(key) },
	},
}

// unsupportedCiphers names the Cipher variants this build does not
// implement, and the reason why: DES2 (2-key triple DES), DESX and IDEA
// have no maintained golang.org/x/crypto package, and RC2 likewise has no
// widely maintained package available. Resolving any of these returns
// ErrUnknownAlgorithm rather than a hand-rolled cipher.
var unsupportedCiphers = map[CipherID]struct{}{
	DES2: {}, DESX: {}, IDEA: {}, RC2: {},
}

// CipherKeySize returns the key length, in bytes, required by id.
func CipherKeySize(id CipherID) (int, error) {
	if _, bad := unsupportedCiphers[id]; bad {
		return 0, fmt.Errorf("%w: cipher %q", ErrUnknownAlgorithm, id)
	}
	entry, ok := cipherCatalog[id]
	if !ok {
		return 0, fmt.Errorf("%w: cipher %q", ErrUnknownAlgorithm, id)
	}
	return entry.keySize, nil
}

// NewBlock constructs the cipher.Block-like primitive for id from an
// exact-length key.
func NewBlock(id CipherID, key []byte) (blockLike, error) {
	if _, bad := unsupportedCiphers[id]; bad {
		return nil, fmt.Errorf("%w: cipher %q", ErrUnknownAlgorithm, id)
	}
	entry, ok := cipherCatalog[id]
	if !ok {
		return nil, fmt.Errorf("%w: cipher %q", ErrUnknownAlgorithm, id)
	}
	if len(key) != entry.keySize {
		return nil, fmt.Errorf("provider: cipher %q requires a %d-byte key, got %d", id, entry.keySize, len(key))
	}
	block, err := entry.newBlock(key)
	if err != nil {
		return nil, Wrap("new_block", err)
	}
	return block, nil
}

// ValidMode reports whether mode is one of the recognized Mode values.
func ValidMode(mode ModeID) bool {
	switch mode {
	case ModeNone, ModeCBC, ModeECB, ModeCFB, ModeOFB:
		return true
	default:
		return false
	}
}
