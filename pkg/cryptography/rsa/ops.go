package rsa

import (
	"crypto"
	"crypto/rand"
	stdrsa "crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"math/big"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

func resolveHash(oneway cryptography.Oneway) (crypto.Hash, func() hash.Hash, error) {
	switch oneway {
	case cryptography.SHA1, cryptography.SHA:
		return crypto.SHA1, sha1.New, nil
	case cryptography.SHA256:
		return crypto.SHA256, sha256.New, nil
	case cryptography.SHA384:
		return crypto.SHA384, sha512.New384, nil
	case cryptography.SHA512:
		return crypto.SHA512, sha512.New, nil
	default:
		return 0, nil, fmt.Errorf("%w: oneway %q not supported for RSA padding", cryptography.ErrUnknownAlgorithm, oneway)
	}
}

// Encrypt wraps plain under pub per opts.EncryptionPadding. It implements
// pkg/cryptography/envelope.Wrapper so PublicKey can seal envelopes
// directly.
func (pub *PublicKey) Encrypt(plain []byte, opts cryptography.Options) ([]byte, error) {
	switch opts.EncryptionPadding {
	case cryptography.PaddingOAEP:
		_, newHash, err := resolveHash(opts.Oneway)
		if err != nil {
			return nil, err
		}
		out, err := stdrsa.EncryptOAEP(newHash(), rand.Reader, pub.key, plain, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cryptography.ErrProviderError, err)
		}
		return out, nil
	case cryptography.PaddingPKCS1:
		out, err := stdrsa.EncryptPKCS1v15(rand.Reader, pub.key, plain)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cryptography.ErrProviderError, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: encryption padding %q", cryptography.ErrUnknownAlgorithm, opts.EncryptionPadding)
	}
}

// Decrypt unwraps code under priv per opts.EncryptionPadding. It
// implements pkg/cryptography/envelope.Unwrapper.
func (priv *PrivateKey) Decrypt(code []byte, opts cryptography.Options) ([]byte, error) {
	switch opts.EncryptionPadding {
	case cryptography.PaddingOAEP:
		_, newHash, err := resolveHash(opts.Oneway)
		if err != nil {
			return nil, err
		}
		out, err := stdrsa.DecryptOAEP(newHash(), rand.Reader, priv.key, code, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cryptography.ErrDecryptionError, err)
		}
		return out, nil
	case cryptography.PaddingPKCS1:
		out, err := stdrsa.DecryptPKCS1v15(rand.Reader, priv.key, code)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cryptography.ErrDecryptionError, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: encryption padding %q", cryptography.ErrUnknownAlgorithm, opts.EncryptionPadding)
	}
}

// Sign hashes plain under opts.Oneway and signs the digest under priv per
// opts.SignaturePadding. The resulting signature's byte length equals
// priv.Size().
func Sign(priv *PrivateKey, plain io.Reader, opts cryptography.Options) ([]byte, error) {
	cryptoHash, newHash, err := resolveHash(opts.Oneway)
	if err != nil {
		return nil, err
	}
	h := newHash()
	if _, err := io.Copy(h, plain); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrIOError, err)
	}
	digest := h.Sum(nil)

	switch opts.SignaturePadding {
	case cryptography.PaddingPSS:
		sig, err := stdrsa.SignPSS(rand.Reader, priv.key, cryptoHash, digest, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cryptography.ErrProviderError, err)
		}
		return sig, nil
	case cryptography.PaddingPKCS1:
		sig, err := stdrsa.SignPKCS1v15(rand.Reader, priv.key, cryptoHash, digest)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cryptography.ErrProviderError, err)
		}
		return sig, nil
	default:
		return nil, fmt.Errorf("%w: signature padding %q", cryptography.ErrUnknownAlgorithm, opts.SignaturePadding)
	}
}

// Verify reports whether signature is a valid signature of plain under
// pub, per opts.SignaturePadding. Only a provider malfunction becomes an
// error; a clean mismatch returns (false, nil).
func Verify(pub *PublicKey, signature []byte, plain io.Reader, opts cryptography.Options) (bool, error) {
	cryptoHash, newHash, err := resolveHash(opts.Oneway)
	if err != nil {
		return false, err
	}
	h := newHash()
	if _, err := io.Copy(h, plain); err != nil {
		return false, fmt.Errorf("%w: %v", cryptography.ErrIOError, err)
	}
	digest := h.Sum(nil)

	var verr error
	switch opts.SignaturePadding {
	case cryptography.PaddingPSS:
		verr = stdrsa.VerifyPSS(pub.key, cryptoHash, digest, signature, nil)
	case cryptography.PaddingPKCS1:
		verr = stdrsa.VerifyPKCS1v15(pub.key, cryptoHash, digest, signature)
	default:
		return false, fmt.Errorf("%w: signature padding %q", cryptography.ErrUnknownAlgorithm, opts.SignaturePadding)
	}
	if verr != nil {
		return false, nil
	}
	return true, nil
}

// Rotate applies textbook RSA (no padding) under priv's private exponent:
// seed^d mod n. The source calls this EVP_PKEY_sign with no padding
// configured; it is a one-way modulus-preserving transform, not a general
// signing operation. len(seed) must equal priv.Size().
func Rotate(priv *PrivateKey, seed []byte) ([]byte, error) {
	if len(seed) != priv.Size() {
		return nil, fmt.Errorf("%w: seed length %d != key size %d", cryptography.ErrSizeMismatch, len(seed), priv.Size())
	}
	m := new(big.Int).SetBytes(seed)
	if m.Cmp(priv.key.N) >= 0 {
		return nil, fmt.Errorf("%w: seed is not smaller than the modulus", cryptography.ErrInvalidKey)
	}
	c := new(big.Int).Exp(m, priv.key.D, priv.key.N)
	return leftPad(c.Bytes(), priv.Size()), nil
}

// Unrotate is Rotate's inverse under the matching public key: it computes
// rotated^e mod n, the source's EVP_PKEY_verify_recover with no padding.
func Unrotate(pub *PublicKey, rotated []byte) ([]byte, error) {
	if len(rotated) != pub.Size() {
		return nil, fmt.Errorf("%w: rotated length %d != key size %d", cryptography.ErrSizeMismatch, len(rotated), pub.Size())
	}
	c := new(big.Int).SetBytes(rotated)
	e := big.NewInt(int64(pub.key.E))
	m := new(big.Int).Exp(c, e, pub.key.N)
	return leftPad(m.Bytes(), pub.Size()), nil
}

func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b[len(b)-size:]
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
