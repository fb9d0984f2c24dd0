package raw

import (
	"bytes"
	"crypto/hmac"
	"io"

	"github.com/infinitio/cryptography-go/internal/provider"
)

// HMACSign streams plain through an HMAC keyed by secret and returns the
// resulting authentication tag, grounded on raw.cc's hmac::sign().
func HMACSign(oneway provider.OnewayID, secret, plain []byte) ([]byte, error) {
	return hmacSignStream(oneway, secret, bytes.NewReader(plain))
}

// HMACSignStream is the streaming counterpart of HMACSign, for callers
// that already hold an io.Reader rather than a fully buffered plaintext.
func HMACSignStream(oneway provider.OnewayID, secret []byte, plain io.Reader) ([]byte, error) {
	return hmacSignStream(oneway, secret, plain)
}

func hmacSignStream(oneway provider.OnewayID, secret []byte, plain io.Reader) ([]byte, error) {
	provider.Require()

	newHash, err := provider.ResolveDigest(oneway)
	if err != nil {
		return nil, err
	}
	mac := hmac.New(newHash, secret)

	buf := make([]byte, StreamBlockSize)
	for {
		n, err := plain.Read(buf)
		if n > 0 {
			mac.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, provider.Wrap("hmac_sign_read", err)
		}
	}

	return mac.Sum(nil), nil
}

// HMACVerify recomputes the HMAC over plain and reports whether it
// matches digest, using a constant-time comparison, grounded on raw.cc's
// hmac::verify().
func HMACVerify(oneway provider.OnewayID, secret, digest, plain []byte) (bool, error) {
	expected, err := hmacSignStream(oneway, secret, bytes.NewReader(plain))
	if err != nil {
		return false, err
	}
	return hmac.Equal(expected, digest), nil
}
