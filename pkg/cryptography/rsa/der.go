package rsa

import (
	stdrsa "crypto/rsa"
	"crypto/x509"
	"fmt"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// EncodeDER returns priv's PKCS#1 DER encoding, the canonical RSA private
// key encoding the source library's i2d_RSAPrivateKey produces.
func (priv *PrivateKey) EncodeDER() []byte {
	return x509.MarshalPKCS1PrivateKey(priv.key)
}

// DecodeDERPrivateKey parses a PKCS#1 DER-encoded RSA private key.
func DecodeDERPrivateKey(der []byte) (*PrivateKey, error) {
	key, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}
	return newPrivateKey(key)
}

// EncodeDER returns pub's PKCS#1 DER encoding (the public-key analogue of
// i2d_RSAPublicKey).
func (pub *PublicKey) EncodeDER() []byte {
	return x509.MarshalPKCS1PublicKey(pub.key)
}

// DecodeDERPublicKey parses a PKCS#1 DER-encoded RSA public key.
func DecodeDERPublicKey(der []byte) (*PublicKey, error) {
	key, err := x509.ParsePKCS1PublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}
	return newPublicKey(key)
}

// EncodeDERPKIX returns pub's SubjectPublicKeyInfo DER encoding, for
// callers that need interoperability with non-PKCS#1 consumers.
func (pub *PublicKey) EncodeDERPKIX() ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(pub.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}
	return der, nil
}

// DecodeDERPKIXPublicKey parses a SubjectPublicKeyInfo DER-encoded RSA
// public key.
func DecodeDERPKIXPublicKey(der []byte) (*PublicKey, error) {
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrSerializationError, err)
	}
	key, ok := parsed.(*stdrsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", cryptography.ErrSerializationError)
	}
	return newPublicKey(key)
}
