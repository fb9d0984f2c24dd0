package rsa

import (
	"bytes"
	stdrsa "crypto/rsa"
	"fmt"
	"math/big"
	"runtime"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// PublicKey owns the provider-produced RSA public key material. Equality
// is structural over modulus and exponent.
type PublicKey struct {
	key *stdrsa.PublicKey
}

// PrivateKey owns the provider-produced RSA private key material.
// Construction always validates the key (non-nil modulus, CRT parameters
// consistent); Close zeroizes the backing buffers. A finalizer is
// installed as a safety net, but callers should call Close explicitly.
type PrivateKey struct {
	key    *stdrsa.PrivateKey
	closed bool
}

// KeyPair is an owned (PublicKey, PrivateKey) pair. Equality is defined by
// the public half only, per the invariant that a pair's halves always
// agree on size.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}

// newPrivateKey wraps key, validates it, and installs the zeroizing
// finalizer the way pkg/cbmpc/curve.Scalar guards its backing bytes.
func newPrivateKey(key *stdrsa.PrivateKey) (*PrivateKey, error) {
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrInvalidKey, err)
	}
	key.Precompute()
	pk := &PrivateKey{key: key}
	runtime.SetFinalizer(pk, (*PrivateKey).Close)
	return pk, nil
}

func newPublicKey(key *stdrsa.PublicKey) (*PublicKey, error) {
	if key == nil || key.N == nil || key.N.Sign() <= 0 {
		return nil, fmt.Errorf("%w: nil or non-positive modulus", cryptography.ErrInvalidKey)
	}
	return &PublicKey{key: key}, nil
}

// Public projects the public half out of a private key.
func (k *PrivateKey) Public() *PublicKey {
	pub, _ := newPublicKey(&k.key.PublicKey)
	return pub
}

// Size returns the key modulus in bytes, the quantity the source calls
// EVP_PKEY_size.
func (k *PrivateKey) Size() int { return k.key.Size() }

// Size returns the key modulus in bytes.
func (k *PublicKey) Size() int { return k.key.Size() }

// Bits returns the modulus bit length.
func (k *PrivateKey) Bits() int { return k.key.N.BitLen() }

// Bits returns the modulus bit length.
func (k *PublicKey) Bits() int { return k.key.N.BitLen() }

// Equal reports whether pub and other agree structurally on modulus and
// public exponent.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	if pub == nil || other == nil {
		return pub == other
	}
	return pub.key.Equal(other.key)
}

// Compare defines a total order over PublicKey by lexicographically
// comparing DER-encoded bytes, the source's operator< for PublicKey. It
// returns a negative number, zero, or a positive number as pub sorts
// before, equal to, or after other.
func (pub *PublicKey) Compare(other *PublicKey) int {
	return bytes.Compare(pub.EncodeDER(), other.EncodeDER())
}

// Equal compares the public halves of kp and other, per the invariant
// that a KeyPair's identity is carried by its public half.
func (kp *KeyPair) Equal(other *KeyPair) bool {
	if kp == nil || other == nil {
		return kp == other
	}
	return kp.Public.Equal(other.Public)
}

// Close zeroizes the private key's sensitive components and marks the key
// unusable. Close is idempotent and safe to call multiple times.
func (k *PrivateKey) Close() {
	if k == nil || k.closed {
		return
	}
	zeroizeBigInt(k.key.D)
	for _, p := range k.key.Primes {
		zeroizeBigInt(p)
	}
	zeroizeBigInt(k.key.Precomputed.Dp)
	zeroizeBigInt(k.key.Precomputed.Dq)
	zeroizeBigInt(k.key.Precomputed.Qinv)
	k.closed = true
	runtime.SetFinalizer(k, nil)
	runtime.KeepAlive(k)
}

// zeroizeBigInt clears n's value in place. big.Int has no dedicated
// zeroizer, and SetInt64(0) alone only truncates the internal word slice,
// so the limbs (holding private key material) are overwritten with zeros
// first.
func zeroizeBigInt(n *big.Int) {
	if n != nil {
		words := n.Bits()
		for i := range words {
			words[i] = 0
		}
		n.SetInt64(0)
	}
}
