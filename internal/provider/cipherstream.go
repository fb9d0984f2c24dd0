package provider

import (
	"crypto/cipher"
	"fmt"
)

// Stream is the provider-side streaming cipher context: the Go analogue
// of the source's EVP_CIPHER_CTX carried across EncryptUpdate/
// EncryptFinal_ex calls. Update may buffer a partial block; Final flushes
// whatever remains, applying or stripping PKCS#7 padding for block modes.
type Stream interface {
	// Update feeds src through the cipher and returns any output ready to
	// emit now. It never returns more than len(src) + one block of
	// buffered carry-over.
	Update(src []byte) ([]byte, error)
	// Final flushes the context and returns the trailing bytes.
	Final() ([]byte, error)
	// BlockSize reports the cipher's native block size.
	BlockSize() int
}

// NewStream builds a Stream for the given cipher/mode/key/iv combination,
// in either the encrypt or decrypt direction.
func NewStream(cid CipherID, mode ModeID, key, iv []byte, encrypt bool) (Stream, error) {
	block, err := NewBlock(cid, key)
	if err != nil {
		return nil, err
	}
	bs := block.BlockSize()

	switch mode {
	case ModeCBC:
		cb, ok := block.(cipher.Block)
		if !ok {
			return nil, fmt.Errorf("provider: cipher %q does not support CBC", cid)
		}
		if len(iv) != bs {
			return nil, fmt.Errorf("provider: CBC requires a %d-byte IV, got %d", bs, len(iv))
		}
		if encrypt {
			return &blockStream{mode: cipher.NewCBCEncrypter(cb, iv), blockSize: bs, encrypt: true}, nil
		}
		return &blockStream{mode: cipher.NewCBCDecrypter(cb, iv), blockSize: bs, encrypt: false}, nil

	case ModeECB:
		cb, ok := block.(cipher.Block)
		if !ok {
			return nil, fmt.Errorf("provider: cipher %q does not support ECB", cid)
		}
		if encrypt {
			return &blockStream{mode: newECBMode(cb), blockSize: bs, encrypt: true}, nil
		}
		return &blockStream{mode: newECBDecrypter(cb), blockSize: bs, encrypt: false}, nil

	case ModeCFB:
		cb, ok := block.(cipher.Block)
		if !ok {
			return nil, fmt.Errorf("provider: cipher %q does not support CFB", cid)
		}
		if len(iv) != bs {
			return nil, fmt.Errorf("provider: CFB requires a %d-byte IV, got %d", bs, len(iv))
		}
		var s cipher.Stream
		if encrypt {
			s = cipher.NewCFBEncrypter(cb, iv)
		} else {
			s = cipher.NewCFBDecrypter(cb, iv)
		}
		return &streamCipher{stream: s, blockSize: bs}, nil

	case ModeOFB:
		cb, ok := block.(cipher.Block)
		if !ok {
			return nil, fmt.Errorf("provider: cipher %q does not support OFB", cid)
		}
		if len(iv) != bs {
			return nil, fmt.Errorf("provider: OFB requires a %d-byte IV, got %d", bs, len(iv))
		}
		return &streamCipher{stream: cipher.NewOFB(cb, iv), blockSize: bs}, nil

	case ModeNone:
		return &streamCipher{stream: nullStream{}, blockSize: bs}, nil

	default:
		return nil, fmt.Errorf("%w: mode %q", ErrUnknownAlgorithm, mode)
	}
}

// streamCipher wraps a cipher.Stream (CFB, OFB, or the no-op ModeNone
// passthrough): no padding, output length always equals input length.
type streamCipher struct {
	stream    cipher.Stream
	blockSize int
}

func (s *streamCipher) Update(src []byte) ([]byte, error) {
	out := make([]byte, len(src))
	s.stream.XORKeyStream(out, src)
	return out, nil
}

func (s *streamCipher) Final() ([]byte, error) { return nil, nil }

func (s *streamCipher) BlockSize() int { return s.blockSize }

// nullStream implements cipher.Stream as an identity transform, backing
// Mode.None.
type nullStream struct{}

func (nullStream) XORKeyStream(dst, src []byte) { copy(dst, src) }

// blockStream wraps a cipher.BlockMode (CBC or ECB) with PKCS#7 padding,
// buffering any partial block across Update calls the way EVP_CipherUpdate
// does internally.
type blockStream struct {
	mode      cipher.BlockMode
	blockSize int
	encrypt   bool
	carry     []byte
}

func (s *blockStream) BlockSize() int { return s.blockSize }

func (s *blockStream) Update(src []byte) ([]byte, error) {
	buf := append(s.carry, src...)

	// Decryption must always hold back at least one full block so Final
	// can strip its padding; encryption has no such constraint but the
	// same rule keeps the two paths symmetric and simple.
	keep := s.blockSize
	if len(buf) <= keep {
		s.carry = buf
		return nil, nil
	}
	usable := len(buf) - keep
	usable -= usable % s.blockSize
	if usable == 0 {
		s.carry = buf
		return nil, nil
	}

	out := make([]byte, usable)
	s.mode.CryptBlocks(out, buf[:usable])
	s.carry = append([]byte(nil), buf[usable:]...)
	return out, nil
}

func (s *blockStream) Final() ([]byte, error) {
	if s.encrypt {
		padded := pkcs7Pad(s.carry, s.blockSize)
		out := make([]byte, len(padded))
		s.mode.CryptBlocks(out, padded)
		s.carry = nil
		return out, nil
	}

	if len(s.carry) != s.blockSize {
		return nil, fmt.Errorf("provider: ciphertext is not a multiple of the block size")
	}
	out := make([]byte, s.blockSize)
	s.mode.CryptBlocks(out, s.carry)
	s.carry = nil
	return pkcs7Unpad(out, s.blockSize)
}

func pkcs7Pad(src []byte, blockSize int) []byte {
	padLen := blockSize - len(src)%blockSize
	padded := make([]byte, len(src)+padLen)
	copy(padded, src)
	for i := len(src); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(src []byte, blockSize int) ([]byte, error) {
	if len(src) == 0 || len(src)%blockSize != 0 {
		return nil, fmt.Errorf("provider: invalid padded length %d", len(src))
	}
	padLen := int(src[len(src)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(src) {
		return nil, fmt.Errorf("provider: invalid PKCS#7 padding")
	}
	for _, b := range src[len(src)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("provider: invalid PKCS#7 padding")
		}
	}
	return src[:len(src)-padLen], nil
}
