// Package dh implements classic (non-elliptic) Diffie-Hellman key
// agreement: key pairs sharing a modulus/generator parameter set, and
// shared-secret derivation. No standard-library or ecosystem package in
// this corpus offers classic DH (only ECDH via crypto/ecdh), so domain
// parameters and the modular-exponentiation agreement step are built
// directly on math/big, the same primitive the pack's SRP implementation
// uses for its own modexp-based key agreement.
package dh
