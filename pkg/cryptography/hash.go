package cryptography

import (
	"bytes"
	"io"

	"github.com/infinitio/cryptography-go/internal/raw"
)

// Hash digests plain under oneway and returns the resulting fixed-size
// digest.
func Hash(oneway Oneway, plain []byte) ([]byte, error) {
	return HashStream(oneway, bytes.NewReader(plain))
}

// HashStream is the streaming counterpart of Hash, for inputs too large
// to hold in memory at once.
func HashStream(oneway Oneway, plain io.Reader) ([]byte, error) {
	digest, err := raw.Hash(oneway.provider(), plain)
	if err != nil {
		return nil, translate("hash", err)
	}
	return digest, nil
}
