// Package hmac is the high-level HMAC façade: Sign and Verify dispatch to
// internal/raw, translating errors into pkg/cryptography's taxonomy and
// sparing callers any contact with the provider layer.
package hmac

import (
	"bytes"
	"io"

	"github.com/infinitio/cryptography-go/internal/raw"
	"github.com/infinitio/cryptography-go/pkg/cryptography"
)

// Sign computes the HMAC of plain keyed by secret, under oneway.
func Sign(secret []byte, oneway cryptography.Oneway, plain []byte) ([]byte, error) {
	return SignStream(secret, oneway, bytes.NewReader(plain))
}

// SignStream is the streaming counterpart of Sign.
func SignStream(secret []byte, oneway cryptography.Oneway, plain io.Reader) ([]byte, error) {
	tag, err := raw.HMACSignStream(cryptography.ProviderOneway(oneway), secret, plain)
	if err != nil {
		return nil, cryptography.TranslateError("hmac.sign", err)
	}
	return tag, nil
}

// Verify recomputes the HMAC of plain under oneway and reports, via a
// constant-time comparison, whether it matches digest. Only a provider
// malfunction becomes an error; a clean mismatch returns (false, nil).
func Verify(secret []byte, oneway cryptography.Oneway, digest, plain []byte) (bool, error) {
	ok, err := raw.HMACVerify(cryptography.ProviderOneway(oneway), secret, digest, plain)
	if err != nil {
		return false, cryptography.TranslateError("hmac.verify", err)
	}
	return ok, nil
}
