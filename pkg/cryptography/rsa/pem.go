package rsa

import (
	"context"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"

	"github.com/infinitio/cryptography-go/pkg/cryptography"
	"github.com/infinitio/cryptography-go/pkg/cryptography/cryptolog"
)

const pemPrivateKeyType = "RSA PRIVATE KEY"
const pemPublicKeyType = "RSA PUBLIC KEY"

// pemCipher maps a cryptography.Cipher to the x509 PEM-encryption cipher
// constant; only the ciphers x509.EncryptPEMBlock supports are usable
// here (DES, 3DES, AES-128/192/256), matching the `DEK-Info: <cipher>,
// <hex-iv>` header the source's PEM export produces.
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

// ExportPEM writes priv as PEM to w. If passphrase is non-empty, the body
// is encrypted under cipher with the standard `Proc-Type: 4,ENCRYPTED` /
// `DEK-Info` headers; an empty passphrase writes a plain PEM block.
func (priv *PrivateKey) ExportPEM(w io.Writer, passphrase []byte, cipher cryptography.Cipher) error {
	block := &pem.Block{Type: pemPrivateKeyType, Bytes: priv.EncodeDER()}

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
	log.Info(context.Background(), "rsa: exported private key PEM", slog.Bool("encrypted", len(passphrase) > 0), cryptolog.Redacted("passphrase"))
	return nil
}

// ImportPEM reads a PEM-encoded RSA private key from r. If the block
// carries encryption headers, passphrase decrypts it; a wrong passphrase
// or a missing passphrase against an encrypted block fails with
// ErrDecryptionError, matching the source's PEM-import contract: a
// private key exported with a non-empty passphrase cannot be re-imported
// as only the public half, and the wrong passphrase must fail cleanly
// rather than yield garbage key material.
func ImportPEM(r io.Reader, passphrase []byte) (*PrivateKey, error) {
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
			log.Warn(context.Background(), "rsa: PEM decryption failed", cryptolog.Redacted("passphrase"))
			return nil, fmt.Errorf("%w: %v", cryptography.ErrDecryptionError, err)
		}
		der = decrypted
	}
	log.Info(context.Background(), "rsa: imported private key PEM")

	return DecodeDERPrivateKey(der)
}

// ExportPublicPEM writes pub as an unencrypted PEM block to w; public keys
// carry no passphrase protection.
func (pub *PublicKey) ExportPublicPEM(w io.Writer) error {
	block := &pem.Block{Type: pemPublicKeyType, Bytes: pub.EncodeDER()}
	if err := pem.Encode(w, block); err != nil {
		return fmt.Errorf("%w: %v", cryptography.ErrIOError, err)
	}
	return nil
}

// ImportPublicPEM reads a PEM-encoded RSA public key from r.
func ImportPublicPEM(r io.Reader) (*PublicKey, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptography.ErrIOError, err)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", cryptography.ErrSerializationError)
	}
	return DecodeDERPublicKey(block.Bytes)
}
