package dh

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// GenerateKeyPair draws a fresh private scalar under params (Group2048()
// when params is the zero value) and derives the matching public value
// g^x mod p.
func GenerateKeyPair(params Parameters) (*PrivateKey, error) {
	if params.P == nil {
		params = Group2048()
	}

	upperBound := new(big.Int).Sub(params.P, big.NewInt(3))
	x, err := rand.Int(rand.Reader, upperBound)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrProviderError, err)
	}
	x.Add(x, big.NewInt(2)) // keep the scalar in [2, p-2]

	y := new(big.Int).Exp(params.G, x, params.P)
	priv, err := newPrivateKey(params, x, y)
	if err != nil {
		return nil, err
	}
	log.Info(context.Background(), "dh: generated key pair", slog.Int("bits", params.P.BitLen()))
	return priv, nil
}
