package dsa

import (
	"crypto/dsa"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/asn1"
	"fmt"
	"hash"
	"io"
	"math/big"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

func resolveHash(oneway cryptography.Oneway) (func() hash.Hash, error) {
	switch oneway {
	case cryptography.SHA1, cryptography.SHA:
		return sha1.New, nil
	case cryptography.SHA256:
		return sha256.New, nil
	case cryptography.SHA384:
		return sha512.New384, nil
	case cryptography.SHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: oneway %q not supported for DSA", cryptography.ErrUnknownAlgorithm, oneway)
	}
}

type dsaSignature struct {
	R, S *big.Int
}

// Sign hashes plain under priv.Oneway() and produces an ASN.1 DSA
// signature (the SEQUENCE{r, s} encoding the stdlib and most other DSA
// implementations use on the wire).
func Sign(priv *PrivateKey, plain io.Reader) ([]byte, error) {
	newHash, err := resolveHash(priv.oneway)
	if err != nil {
		return nil, err
	}
	h := newHash()
	if _, err := io.Copy(h, plain); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrIOError, err)
	}
	digest := truncateForQ(h.Sum(nil), priv.key.Q)

	r, s, err := dsa.Sign(rand.Reader, priv.key, digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrProviderError, err)
	}

	sig, err := asn1.Marshal(dsaSignature{R: r, S: s})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}
	return sig, nil
}

// Verify reports whether signature is a valid ASN.1 DSA signature of
// plain under pub. A malformed signature blob and a clean cryptographic
// mismatch both return (false, nil); only an unsupported oneway or a
// failure reading plain is an error.
func Verify(pub *PublicKey, signature []byte, plain io.Reader) (bool, error) {
	newHash, err := resolveHash(pub.oneway)
	if err != nil {
		return false, err
	}
	h := newHash()
	if _, err := io.Copy(h, plain); err != nil {
		return false, fmt.Errorf("%w: %v", cryptography.ErrIOError, err)
	}
	digest := truncateForQ(h.Sum(nil), pub.key.Q)

	var sig dsaSignature
	if _, err := asn1.Unmarshal(signature, &sig); err != nil {
		return false, nil
	}
	if sig.R == nil || sig.S == nil {
		return false, nil
	}

	return dsa.Verify(pub.key, digest, sig.R, sig.S), nil
}

// truncateForQ implements FIPS 186's digest-truncation rule: when the
// digest is longer than Q in bits, only its leftmost len(Q)-in-bits bits
// are used, exactly as crypto/dsa requires its caller to pre-truncate.
func truncateForQ(digest []byte, q *big.Int) []byte {
	qBits := q.BitLen()
	if len(digest)*8 <= qBits {
		return digest
	}
	n := (qBits + 7) / 8
	return digest[:n]
}
