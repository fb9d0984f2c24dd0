package dsa

import (
	"crypto/dsa"
	"fmt"
	"math/big"
	"runtime"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// PublicKey owns DSA public key material plus the digest algorithm the
// key was generated to sign under.
type PublicKey struct {
	key    *dsa.PublicKey
	oneway cryptography.Oneway
}

// PrivateKey owns DSA private key material. Close zeroizes X on release;
// a finalizer is installed as a safety net.
type PrivateKey struct {
	key    *dsa.PrivateKey
	oneway cryptography.Oneway
	closed bool
}

// KeyPair is an owned (PublicKey, PrivateKey) pair; equality compares the
// public half only.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}

func newPrivateKey(key *dsa.PrivateKey, oneway cryptography.Oneway) (*PrivateKey, error) {
	if err := validateParameters(&key.PublicKey.Parameters); err != nil {
		return nil, err
	}
	if key.X == nil || key.X.Sign() <= 0 {
		return nil, fmt.Errorf("%w: nil or non-positive private scalar", cryptography.ErrInvalidKey)
	}
	pk := &PrivateKey{key: key, oneway: oneway}
	runtime.SetFinalizer(pk, (*PrivateKey).Close)
	return pk, nil
}

func newPublicKey(key *dsa.PublicKey, oneway cryptography.Oneway) (*PublicKey, error) {
	if err := validateParameters(&key.Parameters); err != nil {
		return nil, err
	}
	if key.Y == nil || key.Y.Sign() <= 0 {
		return nil, fmt.Errorf("%w: nil or non-positive public value", cryptography.ErrInvalidKey)
	}
	return &PublicKey{key: key, oneway: oneway}, nil
}

func validateParameters(params *dsa.Parameters) error {
	if params.P == nil || params.Q == nil || params.G == nil {
		return fmt.Errorf("%w: incomplete DSA domain parameters", cryptography.ErrInvalidKey)
	}
	if params.P.Sign() <= 0 || params.Q.Sign() <= 0 || params.G.Sign() <= 0 {
		return fmt.Errorf("%w: non-positive DSA domain parameter", cryptography.ErrInvalidKey)
	}
	return nil
}

// Public projects the public half out of a private key.
func (k *PrivateKey) Public() *PublicKey {
	pub, _ := newPublicKey(&k.key.PublicKey, k.oneway)
	return pub
}

// Oneway returns the digest algorithm this key was generated to sign
// under.
func (k *PrivateKey) Oneway() cryptography.Oneway { return k.oneway }

// Oneway returns the digest algorithm this key was generated to sign
// under.
func (k *PublicKey) Oneway() cryptography.Oneway { return k.oneway }

// Equal reports whether pub and other agree structurally on P, Q, G, Y.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	if pub == nil || other == nil {
		return pub == other
	}
	return bigEqual(pub.key.P, other.key.P) &&
		bigEqual(pub.key.Q, other.key.Q) &&
		bigEqual(pub.key.G, other.key.G) &&
		bigEqual(pub.key.Y, other.key.Y)
}

// Equal compares the public halves of kp and other.
func (kp *KeyPair) Equal(other *KeyPair) bool {
	if kp == nil || other == nil {
		return kp == other
	}
	return kp.Public.Equal(other.Public)
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// Close zeroizes the private scalar and marks the key unusable. Close is
// idempotent.
func (k *PrivateKey) Close() {
	if k == nil || k.closed {
		return
	}
	if k.key.X != nil {
		k.key.X.SetInt64(0)
	}
	k.closed = true
	runtime.SetFinalizer(k, nil)
	runtime.KeepAlive(k)
}
