// Package dsa implements the DSA key types, generation, sign/verify, and
// DER/PEM codecs. A DSA key additionally carries the Oneway digest
// algorithm it was generated to sign under, matching the source library's
// per-key digest binding.
package dsa
