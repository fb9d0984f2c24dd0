// Package raw implements the streaming primitive operations — hashing,
// HMAC, and the salted symmetric stream codec — directly over
// internal/provider, mirroring the raw:: namespace of the source
// cryptography library one level above the EVP-equivalent adapter.
package raw
