package dsa

import (
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

const pemPrivateKeyType = "DSA PRIVATE KEY"
const pemPublicKeyType = "DSA PUBLIC KEY"

// pemCipher maps a cryptography.Cipher to the x509 PEM-encryption cipher
// constant, identically to the RSA package's pemCipher.
func pemCipher(c cryptography.Cipher) (x509.PEMCipher, error) {
	switch c {
	case cryptography.DES:
		return x509.PEMCipherDES, nil
	case cryptography.DES3:
		return x509.PEMCipher3DES, nil
	case cryptography.AES128:
		return x509.PEMCipherAES128, nil
	case cryptography.AES192:
		return x509.PEMCipherAES192, nil
	case cryptography.AES256:
		return x509.PEMCipherAES256, nil
	default:
		return 0, fmt.Errorf("%w: cipher %q cannot encrypt a PEM body", cryptography.ErrUnknownAlgorithm, c)
	}
}

// ExportPEM writes priv as PEM to w, encrypting the body under cipher when
// passphrase is non-empty.
func (priv *PrivateKey) ExportPEM(w io.Writer, passphrase []byte, cipher cryptography.Cipher) error {
	der, err := priv.EncodeDER()
	if err != nil {
		return err
	}
	block := &pem.Block{Type: pemPrivateKeyType, Bytes: der}

	if len(passphrase) > 0 {
		pc, err := pemCipher(cipher)
		if err != nil {
			return err
		}
		//nolint:staticcheck // x509.EncryptPEMBlock is the only stdlib path to the DEK-Info header format this wire format requires.
		encrypted, err := x509.EncryptPEMBlock(rand.Reader, pemPrivateKeyType, block.Bytes, passphrase, pc)
		if err != nil {
			return fmt.Errorf("%w: %v", cryptography.ErrProviderError, err)
		}
		block = encrypted
	}

	if err := pem.Encode(w, block); err != nil {
		return fmt.Errorf("%w: %v", cryptography.ErrIOError, err)
	}
	return nil
}

// ImportPEM reads a PEM-encoded DSA private key from r, decrypting the
// body with passphrase when the block carries encryption headers, and
// binds the result to oneway.
func ImportPEM(r io.Reader, passphrase []byte, oneway cryptography.Oneway) (*PrivateKey, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrIOError, err)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", cryptography.ErrSerializationError)
	}

	der := block.Bytes
	//nolint:staticcheck // matching x509.EncryptPEMBlock above.
	if x509.IsEncryptedPEMBlock(block) {
		if len(passphrase) == 0 {
			return nil, fmt.Errorf("%w: block is encrypted but no passphrase was given", cryptography.ErrDecryptionError)
		}
		decrypted, err := x509.DecryptPEMBlock(block, passphrase)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cryptography.ErrDecryptionError, err)
		}
		der = decrypted
	}

	return DecodeDERPrivateKey(der, oneway)
}

// ExportPublicPEM writes pub as an unencrypted PEM block to w.
func (pub *PublicKey) ExportPublicPEM(w io.Writer) error {
	der, err := pub.EncodeDER()
	if err != nil {
		return err
	}
	block := &pem.Block{Type: pemPublicKeyType, Bytes: der}
	if err := pem.Encode(w, block); err != nil {
		return fmt.Errorf("%w: %v", cryptography.ErrIOError, err)
	}
	return nil
}

// ImportPublicPEM reads a PEM-encoded DSA public key from r, binding it to
// oneway.
func ImportPublicPEM(r io.Reader, oneway cryptography.Oneway) (*PublicKey, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrIOError, err)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", cryptography.ErrSerializationError)
	}
	return DecodeDERPublicKey(block.Bytes, oneway)
}
