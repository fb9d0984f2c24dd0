// Package provider is the thin adapter between this module's typed
// algorithm catalogs (Oneway, Cipher, Mode) and the underlying primitive
// implementations: everything above this package treats hashing and block
// ciphers as opaque, resolved-by-name operations, the same way an EVP
// family treats a cipher or digest as an opaque algorithm object.
//
// Go's standard library crypto/* packages fill that role here, the same
// way pkg/cbmpc/kem/rsa resolves straight to crypto/rsa, crypto/x509 and
// crypto/sha256 rather than a cgo bridge to a native library.
// golang.org/x/crypto fills the two ciphers the standard library does not
// carry (Blowfish, CAST5).
package provider
