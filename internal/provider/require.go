package provider

import "sync"

var requireOnce sync.Once

// Require mirrors the cryptography::require() first-call guard from the
// source library: the original seeds the provider's RNG pools and
// registers algorithms on first use. crypto/rand draws straight from the
// OS CSPRNG and needs no seeding step, and crypto/* algorithms are always
// registered, so there is nothing to do here — the guard is kept only so
// every raw-layer entry point still passes through the same call site the
// original does, for structural parity.
func Require() {
	requireOnce.Do(func() {})
}
