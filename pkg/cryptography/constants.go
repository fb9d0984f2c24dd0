package cryptography

import "github.com/infinitio/cryptography-go/internal/raw"

// StreamBlockSize bounds per-iteration I/O for the streaming operations
// in internal/raw (hash, HMAC, symmetric encipher/decipher). Asymmetric
// sign/verify read their input with io.Copy and do not use it.
const StreamBlockSize = raw.StreamBlockSize

// SaltLength is the width, in bytes, of the random salt embedded in every
// salted symmetric stream.
const SaltLength = 8

// salutation is the literal magic prefix identifying a salted stream, the
// same value internal/raw writes and checks. Nothing in this package
// reads it.
const salutation = "Salted__"
