package dh

import (
	"fmt"
	"math/big"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// Agree computes the shared secret own.agree(peer) = peer.y^own.x mod p,
// left-padded to the modulus size in bytes. Agreement is commutative:
// own.Agree(peer.Public()) equals peer's own.Agree against this key's
// public half, since both reduce to g^(own.x*peer.x) mod p.
func Agree(own *PrivateKey, peer *PublicKey) ([]byte, error) {
	if own.params.P.Cmp(peer.params.P) != 0 || own.params.G.Cmp(peer.params.G) != 0 {
		return nil, fmt.Errorf("%w: peer key uses different DH parameters", cryptography.ErrInvalidKey)
	}

	shared := new(big.Int).Exp(peer.y, own.x, own.params.P)
	return leftPad(shared.Bytes(), own.params.Size()), nil
}

func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
