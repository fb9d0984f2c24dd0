package raw

import (
	"crypto/rand"
	"io"

	"github.com/infinitio/cryptography-go/internal/provider"
)

// salutation is the magic prefix embedded at the head of every salted
// symmetric stream this package produces, matching the source library's
// "Salted__" constant exactly so the wire format stays interoperable.
const salutation = "Salted__"

// Encipher encrypts plain into code as a salted stream: an 8-byte magic
// prefix, an 8-byte random salt, then the ciphertext produced by a
// cipher/mode initialized from a key and IV derived from secret and that
// salt via the single-iteration EVP_BytesToKey-equivalent KDF. Grounded on
// raw.cc's symmetric::encipher().
func Encipher(
	cid provider.CipherID, mode provider.ModeID, oneway provider.OnewayID,
	secret []byte, plain io.Reader, code io.Writer,
) error {
	provider.Require()

	salt := make([]byte, provider.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return provider.Wrap("encipher_salt", err)
	}

	keySize, err := provider.CipherKeySize(cid)
	if err != nil {
		return err
	}
	newHash, err := provider.ResolveDigest(oneway)
	if err != nil {
		return err
	}

	key, iv, err := provider.DeriveKeyIV(newHash, secret, salt, keySize, ivSize(mode, cid))
	if err != nil {
		return err
	}

	stream, err := provider.NewStream(cid, mode, key, iv, true)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(code, salutation); err != nil {
		return provider.Wrap("encipher_write_magic", err)
	}
	if _, err := code.Write(salt); err != nil {
		return provider.Wrap("encipher_write_salt", err)
	}

	buf := make([]byte, StreamBlockSize)
	for {
		n, rerr := plain.Read(buf)
		if n > 0 {
			out, uerr := stream.Update(buf[:n])
			if uerr != nil {
				return provider.Wrap("encipher_update", uerr)
			}
			if len(out) > 0 {
				if _, werr := code.Write(out); werr != nil {
					return provider.Wrap("encipher_write", werr)
				}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return provider.Wrap("encipher_read", rerr)
		}
	}

	tail, err := stream.Final()
	if err != nil {
		return provider.Wrap("encipher_final", err)
	}
	if len(tail) > 0 {
		if _, err := code.Write(tail); err != nil {
			return provider.Wrap("encipher_write_final", err)
		}
	}
	return nil
}

// Decipher reverses Encipher: it reads the magic prefix and salt from
// code, rederives the key/IV from secret and that salt, and streams the
// remaining ciphertext through the cipher in the decrypt direction.
// Grounded on raw.cc's symmetric::decipher().
func Decipher(
	cid provider.CipherID, mode provider.ModeID, oneway provider.OnewayID,
	secret []byte, code io.Reader, plain io.Writer,
) error {
	provider.Require()

	magic := make([]byte, len(salutation))
	if _, err := io.ReadFull(code, magic); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrStreamTooShort
		}
		return provider.Wrap("decipher_read_magic", err)
	}
	if string(magic) != salutation {
		return ErrInvalidStream
	}

	salt := make([]byte, provider.SaltLength)
	if _, err := io.ReadFull(code, salt); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrStreamTooShort
		}
		return provider.Wrap("decipher_read_salt", err)
	}

	keySize, err := provider.CipherKeySize(cid)
	if err != nil {
		return err
	}
	newHash, err := provider.ResolveDigest(oneway)
	if err != nil {
		return err
	}

	key, iv, err := provider.DeriveKeyIV(newHash, secret, salt, keySize, ivSize(mode, cid))
	if err != nil {
		return err
	}

	stream, err := provider.NewStream(cid, mode, key, iv, false)
	if err != nil {
		return err
	}

	buf := make([]byte, StreamBlockSize)
	for {
		n, rerr := code.Read(buf)
		if n > 0 {
			out, uerr := stream.Update(buf[:n])
			if uerr != nil {
				return provider.Wrap("decipher_update", uerr)
			}
			if len(out) > 0 {
				if _, werr := plain.Write(out); werr != nil {
					return provider.Wrap("decipher_write", werr)
				}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return provider.Wrap("decipher_read", rerr)
		}
	}

	tail, err := stream.Final()
	if err != nil {
		return provider.Wrap("decipher_final", err)
	}
	if len(tail) > 0 {
		if _, err := plain.Write(tail); err != nil {
			return provider.Wrap("decipher_write_final", err)
		}
	}
	return nil
}

// ivSize reports the IV length a cipher/mode pair needs: zero for ECB and
// for Mode.None, which carry no IV at all, and the cipher's native block
// size otherwise (CFB/OFB/CBC all use an IV the width of one block).
func ivSize(mode provider.ModeID, cid provider.CipherID) int {
	if mode == provider.ModeECB || mode == provider.ModeNone {
		return 0
	}
	switch cid {
	case provider.DES, provider.DES2, provider.DES3, provider.DESX:
		return 8
	case provider.Blowfish, provider.CAST5:
		return 8
	default:
		return 16
	}
}
