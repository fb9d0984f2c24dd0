package provider

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// OnewayID identifies a message-digest algorithm by name, independent of
// the public Oneway type in pkg/cryptography (kept here so the provider
// has no import-cycle back to the facade package).
type OnewayID string

const (
	MD5    OnewayID = "md5"
	SHA    OnewayID = "sha"
	SHA1   OnewayID = "sha1"
	SHA224 OnewayID = "sha224"
	SHA256 OnewayID = "sha256"
	SHA384 OnewayID = "sha384"
	SHA512 OnewayID = "sha512"
)

// digestCatalog maps each supported oneway to its constructor and natural
// output size in bytes, the provider-adapter analogue of resolving an
// EVP_MD via EVP_get_digestbyname.
var digestCatalog = map[OnewayID]struct {
	newHash func() hash.Hash
	size    int
}{
	MD5:    {md5.New, md5.Size},
	SHA:    {sha1.New, sha1.Size}, // legacy OpenSSL "SHA" alias; SHA-0 has no stdlib equivalent
	SHA1:   {sha1.New, sha1.Size},
	SHA224: {sha256.New224, sha256.Size224},
	SHA256: {sha256.New, sha256.Size},
	SHA384: {sha512.New384, sha512.Size384},
	SHA512: {sha512.New, sha512.Size},
}

// ResolveDigest returns a fresh hash.Hash constructor for the named
// oneway, or ErrUnknownAlgorithm if this build does not support it.
func ResolveDigest(id OnewayID) (func() hash.Hash, error) {
	entry, ok := digestCatalog[id]
	if !ok {
		return nil, fmt.Errorf("%w: oneway %q", ErrUnknownAlgorithm, id)
	}
	return entry.newHash, nil
}

// DigestSize returns the natural output size, in bytes, of the named
// oneway.
func DigestSize(id OnewayID) (int, error) {
	entry, ok := digestCatalog[id]
	if !ok {
		return 0, fmt.Errorf("%w: oneway %q", ErrUnknownAlgorithm, id)
	}
	return entry.size, nil
}
