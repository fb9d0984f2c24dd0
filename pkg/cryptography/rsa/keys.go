package rsa

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	stdrsa "crypto/rsa"
	"crypto/sha256"
	"fmt"
	"log/slog"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// Seed is a byte sequence paired with a declared key length in bits, used
// via DeduceKeyPair to deterministically derive an entire key pair.
type Seed struct {
	bytes []byte
	bits  int
}

// NewSeed wraps raw as a Seed declaring a key length of bits bits. Neither
// NewSeed nor DeduceKeyPair checks raw's length against the key size;
// DeduceKeyPair accepts a seed of any length. Rotate and Unrotate, which
// take plain byte slices, check their input against the key size.
func NewSeed(raw []byte, bits int) Seed {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return Seed{bytes: cp, bits: bits}
}

// Bytes returns a copy of the seed's backing buffer.
func (s Seed) Bytes() []byte {
	cp := make([]byte, len(s.bytes))
	copy(cp, s.bytes)
	return cp
}

// Bits returns the seed's declared key length in bits.
func (s Seed) Bits() int { return s.bits }

// GenerateKeyPair generates a fresh RSA key pair of the given modulus
// size, in bits, using the system CSPRNG.
func GenerateKeyPair(bits int) (*KeyPair, error) {
	priv, err := stdrsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		log.Error(context.Background(), "rsa: key generation failed", slog.Int("bits", bits), slog.Any("err", err))
		return nil, fmt.Errorf("%w: %v", cryptography.ErrProviderError, err)
	}
	log.Info(context.Background(), "rsa: generated key pair", slog.Int("bits", bits))
	return wrapGenerated(priv)
}

func wrapGenerated(priv *stdrsa.PrivateKey) (*KeyPair, error) {
	private, err := newPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	return &KeyPair{Public: private.Public(), Private: private}, nil
}

// DeduceKeyPair deterministically derives an RSA key pair of seed.Bits()
// bits from seed, the way the source library's "rotation" mechanism
// allows a key pair to be deduced from a seed via a provider helper. The
// derivation feeds a seeded HKDF-Extract/Expand byte stream into
// crypto/rsa.GenerateKey in place of crypto/rand.Reader, grounded on
// pkg/cbmpc/kem/rsa's deterministicReader (itself HKDF-Extract-then-Expand
// over a fixed seed, there used to make RSA-OAEP deterministic for PVE).
//
// Because crypto/rsa.GenerateKey consumes a variable, unbounded amount of
// randomness (candidate primes are rejected and redrawn), the same seed
// deterministically reproduces the same key pair only as long as the
// standard library's prime-search algorithm does not change between Go
// releases; this mirrors the source's own reliance on a fixed provider
// algorithm for deducibility.
func DeduceKeyPair(seed Seed) (*KeyPair, error) {
	if seed.bits <= 0 {
		return nil, fmt.Errorf("%w: seed declares a non-positive key length", cryptography.ErrInvalidKey)
	}
	priv, err := stdrsa.GenerateKey(newDeterministicReader(seed.bytes), seed.bits)
	if err != nil {
		log.Error(context.Background(), "rsa: deterministic key deduction failed", slog.Int("bits", seed.bits), slog.Any("err", err))
		return nil, fmt.Errorf("%w: %v", cryptography.ErrProviderError, err)
	}
	log.Info(context.Background(), "rsa: deduced key pair from seed", slog.Int("bits", seed.bits))
	return wrapGenerated(priv)
}

// deterministicReader generates deterministic bytes from a seed using
// HKDF-Extract (HMAC-SHA256) followed by HKDF-Expand, exactly the
// construction pkg/cbmpc/kem/rsa.go uses to make RSA-OAEP deterministic
// for PVE — reused here to make RSA key generation deterministic for
// rotation-based key deduction instead.
type deterministicReader struct {
	prk       []byte
	lastBlock []byte
	counter   byte
	cache     []byte
}

func newDeterministicReader(seed []byte) *deterministicReader {
	const salt = "cryptography-rsa-seed-hkdf"
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write(seed)
	return &deterministicReader{prk: mac.Sum(nil)}
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	const info = "cryptography-rsa-seed-deduce"
	out := 0

	if len(r.cache) > 0 {
		n := copy(p[out:], r.cache)
		out += n
		r.cache = r.cache[n:]
	}

	for out < len(p) {
		h := hmac.New(sha256.New, r.prk)
		if len(r.lastBlock) > 0 {
			h.Write(r.lastBlock)
		}
		h.Write([]byte(info))
		if r.counter == 255 {
			r.counter = 0
		}
		r.counter++
		h.Write([]byte{r.counter})
		block := h.Sum(nil)
		r.lastBlock = block

		n := copy(p[out:], block)
		out += n
		if n < len(block) {
			r.cache = block[n:]
		}
	}

	return out, nil
}
