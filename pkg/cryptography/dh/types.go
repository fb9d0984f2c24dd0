package dh

import (
	"fmt"
	"math/big"
	"runtime"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// PrivateKey owns a DH private scalar under a fixed parameter set. Close
// zeroizes the scalar; a finalizer is installed as a safety net.
type PrivateKey struct {
	params Parameters
	x      *big.Int // private scalar
	y      *big.Int // public value g^x mod p
	closed bool
}

// PublicKey is a peer's DH public value under a parameter set.
type PublicKey struct {
	params Parameters
	y      *big.Int
}

func newPrivateKey(params Parameters, x, y *big.Int) (*PrivateKey, error) {
	if x == nil || x.Sign() <= 0 {
		return nil, fmt.Errorf("%w: nil or non-positive DH private scalar", cryptography.ErrInvalidKey)
	}
	if y == nil || y.Sign() <= 0 {
		return nil, fmt.Errorf("%w: nil or non-positive DH public value", cryptography.ErrInvalidKey)
	}
	priv := &PrivateKey{params: params, x: x, y: y}
	runtime.SetFinalizer(priv, (*PrivateKey).Close)
	return priv, nil
}

func newPublicKey(params Parameters, y *big.Int) (*PublicKey, error) {
	if y == nil || y.Sign() <= 0 || y.Cmp(params.P) >= 0 {
		return nil, fmt.Errorf("%w: DH public value out of range", cryptography.ErrInvalidKey)
	}
	return &PublicKey{params: params, y: y}, nil
}

// Public projects the public half out of a private key.
func (priv *PrivateKey) Public() *PublicKey {
	pub, _ := newPublicKey(priv.params, priv.y)
	return pub
}

// Parameters returns the domain parameters a key was generated under.
func (priv *PrivateKey) Parameters() Parameters { return priv.params }
func (pub *PublicKey) Parameters() Parameters   { return pub.params }

// Size returns the key's byte length, equal to the modulus size.
func (priv *PrivateKey) Size() int { return priv.params.Size() }
func (pub *PublicKey) Size() int   { return pub.params.Size() }

// Equal reports whether pub and other carry the same public value under
// equal parameters.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	if pub == nil || other == nil {
		return pub == other
	}
	return pub.params.P.Cmp(other.params.P) == 0 &&
		pub.params.G.Cmp(other.params.G) == 0 &&
		pub.y.Cmp(other.y) == 0
}

// Close zeroizes the private scalar and marks the key unusable. Close is
// idempotent.
func (priv *PrivateKey) Close() {
	if priv == nil || priv.closed {
		return
	}
	priv.x.SetInt64(0)
	priv.closed = true
	runtime.SetFinalizer(priv, nil)
	runtime.KeepAlive(priv)
}
