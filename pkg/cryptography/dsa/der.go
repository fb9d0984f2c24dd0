package dsa

import (
	stddsa "crypto/dsa"
	"crypto/x509"
	"encoding/asn1"
	"fmt"
	"math/big"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// dsaPrivateKeyASN1 is the classic OpenSSL DSA private key DER layout:
// SEQUENCE { version, p, q, g, pub, priv }. The standard library carries
// no DSA private-key DER marshaler (x509 supports DSA only for the public
// half via SubjectPublicKeyInfo), so this module hand-rolls the same
// layout OpenSSL's `dsa -text` output and PEM body use.
type dsaPrivateKeyASN1 struct {
	Version int
	P, Q, G *big.Int
	Y, X    *big.Int
}

// EncodeDER returns priv's DER encoding in the classic OpenSSL DSA
// private-key layout.
func (priv *PrivateKey) EncodeDER() ([]byte, error) {
	der, err := asn1.Marshal(dsaPrivateKeyASN1{
		Version: 0,
		P:       priv.key.P,
		Q:       priv.key.Q,
		G:       priv.key.G,
		Y:       priv.key.Y,
		X:       priv.key.X,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}
	return der, nil
}

// DecodeDERPrivateKey parses a classic OpenSSL-layout DSA private key,
// binding it to oneway.
func DecodeDERPrivateKey(der []byte, oneway cryptography.Oneway) (*PrivateKey, error) {
	var fields dsaPrivateKeyASN1
	if _, err := asn1.Unmarshal(der, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}
	key := &stddsa.PrivateKey{
		PublicKey: stddsa.PublicKey{
			Parameters: stddsa.Parameters{P: fields.P, Q: fields.Q, G: fields.G},
			Y:          fields.Y,
		},
		X: fields.X,
	}
	return newPrivateKey(key, oneway)
}

// EncodeDER returns pub's SubjectPublicKeyInfo DER encoding, the one DSA
// encoding the standard library's x509 package natively supports.
func (pub *PublicKey) EncodeDER() ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}
	return der, nil
}

// DecodeDERPublicKey parses a SubjectPublicKeyInfo DER-encoded DSA public
// key, binding it to oneway.
func DecodeDERPublicKey(der []byte, oneway cryptography.Oneway) (*PublicKey, error) {
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}
	key, ok := parsed.(*stddsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not a DSA public key", cryptography.ErrSerializationError)
	}
	return newPublicKey(key, oneway)
}
