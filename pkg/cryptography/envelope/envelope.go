// Package envelope implements sealed encryption for payloads larger than
// an asymmetric key's modulus: a fresh symmetric secret is wrapped under
// the recipient's public key, length-prefixed, and followed by the
// secret's own salted symmetric stream.
package envelope

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/infinitio/cryptography-go/internal/raw"
	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// Wrapper is the subset of an asymmetric public key needed to seal an
// envelope: wrapping a symmetric secret so only the matching private key
// can recover it. pkg/cryptography/rsa's PublicKey implements this.
type Wrapper interface {
	Encrypt(plain []byte, opts cryptography.Options) ([]byte, error)
	Size() int
}

// Unwrapper is the subset of an asymmetric private key needed to open an
// envelope. pkg/cryptography/rsa's PrivateKey implements this.
type Unwrapper interface {
	Decrypt(code []byte, opts cryptography.Options) ([]byte, error)
	Size() int
}

// Seal draws a fresh secret of opts.Cipher's key length, wraps it under
// key, then streams plain through the salted symmetric codec keyed by
// that secret. The output is `wrapped_secret_len(uint32 LE) |
// wrapped_secret | salted_stream`.
func Seal(key Wrapper, opts cryptography.Options, plain io.Reader, code io.Writer) error {
	keySize, err := opts.Cipher.KeySize()
	if err != nil {
		return cryptography.TranslateError("envelope.seal", err)
	}
	if keySize > key.Size() {
		return fmt.Errorf("%w: secret length %d exceeds key size %d", cryptography.ErrSizeMismatch, keySize, key.Size())
	}

	secret := make([]byte, keySize)
	if _, err := rand.Read(secret); err != nil {
		return fmt.Errorf("envelope: unable to draw a random secret: %w", err)
	}

	wrapped, err := key.Encrypt(secret, opts)
	if err != nil {
		return fmt.Errorf("envelope: unable to wrap the secret: %w", err)
	}
	if len(wrapped) != key.Size() {
		return fmt.Errorf("%w: wrapped secret length %d != key size %d", cryptography.ErrSizeMismatch, len(wrapped), key.Size())
	}

	var lengthPrefix [4]byte
	binary.LittleEndian.PutUint32(lengthPrefix[:], uint32(len(wrapped)))
	if _, err := code.Write(lengthPrefix[:]); err != nil {
		return fmt.Errorf("envelope: unable to write the wrapped secret length: %w", err)
	}
	if _, err := code.Write(wrapped); err != nil {
		return fmt.Errorf("envelope: unable to write the wrapped secret: %w", err)
	}

	if err := raw.Encipher(
		cryptography.ProviderCipher(opts.Cipher), cryptography.ProviderMode(opts.Mode), cryptography.ProviderOneway(opts.Oneway),
		secret, plain, code,
	); err != nil {
		return cryptography.TranslateError("envelope.seal", err)
	}
	log.Info(context.Background(), "envelope: sealed", slog.String("cipher", string(opts.Cipher)), slog.String("mode", string(opts.Mode)))
	return nil
}

// Open reverses Seal: it reads the wrapped secret, unwraps it under key,
// and streams the remaining salted symmetric ciphertext through the
// decipher codec.
func Open(key Unwrapper, opts cryptography.Options, code io.Reader, plain io.Writer) error {
	var lengthPrefix [4]byte
	if _, err := io.ReadFull(code, lengthPrefix[:]); err != nil {
		return fmt.Errorf("%w: unable to read the wrapped secret length: %v", cryptography.ErrIOError, err)
	}
	wrappedLen := binary.LittleEndian.Uint32(lengthPrefix[:])

	wrapped := make([]byte, wrappedLen)
	if _, err := io.ReadFull(code, wrapped); err != nil {
		return fmt.Errorf("%w: unable to read the wrapped secret: %v", cryptography.ErrIOError, err)
	}

	secret, err := key.Decrypt(wrapped, opts)
	if err != nil {
		return fmt.Errorf("envelope: unable to unwrap the secret: %w", err)
	}

	if err := raw.Decipher(
		cryptography.ProviderCipher(opts.Cipher), cryptography.ProviderMode(opts.Mode), cryptography.ProviderOneway(opts.Oneway),
		secret, code, plain,
	); err != nil {
		return cryptography.TranslateError("envelope.open", err)
	}
	log.Info(context.Background(), "envelope: opened", slog.String("cipher", string(opts.Cipher)), slog.String("mode", string(opts.Mode)))
	return nil
}

// SealBytes and OpenBytes are the whole-buffer convenience wrappers around
// Seal and Open, for callers that already hold plain/code entirely in
// memory.
func SealBytes(key Wrapper, opts cryptography.Options, plain []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Seal(key, opts, bytes.NewReader(plain), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func OpenBytes(key Unwrapper, opts cryptography.Options, code []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Open(key, opts, bytes.NewReader(code), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
