package dsa

import (
	"context"
	"crypto/dsa"
	"crypto/rand"
	"fmt"
	"log/slog"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// parameterSizes maps a requested modulus bit-length to the stdlib's
// discrete L,N parameter-size enum, the way the source's parameter
// generation phase picks p, q, g from a requested bit-length.
func parameterSizes(bits int) (dsa.ParameterSizes, error) {
	switch bits {
	case 1024:
		return dsa.L1024N160, nil
	case 2048:
		return dsa.L2048N224, nil
	case 3072:
		return dsa.L3072N256, nil
	default:
		return 0, fmt.Errorf("%w: unsupported DSA modulus size %d", cryptography.ErrUnknownAlgorithm, bits)
	}
}

// GenerateKeyPair runs the two-phase DSA generation the source library
// describes: a parameter-generation phase (picking p, q, g for the given
// modulus bit-length) followed by a key-generation phase, and binds the
// resulting pair to oneway.
func GenerateKeyPair(bits int, oneway cryptography.Oneway) (*KeyPair, error) {
	sizes, err := parameterSizes(bits)
	if err != nil {
		return nil, err
	}

	var params dsa.Parameters
	if err := dsa.GenerateParameters(&params, rand.Reader, sizes); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrProviderError, err)
	}

	priv := &dsa.PrivateKey{PublicKey: dsa.PublicKey{Parameters: params}}
	if err := dsa.GenerateKey(priv, rand.Reader); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrProviderError, err)
	}

	private, err := newPrivateKey(priv, oneway)
	if err != nil {
		return nil, err
	}
	log.Info(context.Background(), "dsa: generated key pair", slog.Int("bits", bits), slog.String("oneway", string(oneway)))
	return &KeyPair{Public: private.Public(), Private: private}, nil
}
