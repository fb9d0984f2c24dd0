package provider

import "errors"

// ErrUnknownAlgorithm reports that a requested cipher/oneway/padding
// combination is not resolvable by this build of the provider.
var ErrUnknownAlgorithm = errors.New("provider: unknown algorithm")

// ProviderError wraps a failure surfaced by the underlying primitive
// implementation — the Go analogue of any nonpositive EVP return code.
// crypto/* packages fail via error values rather than return codes, so
// this wrapper exists purely to preserve the provider/caller error
// boundary the raw layer depends on.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return "provider: " + e.Op
	}
	return "provider: " + e.Op + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Wrap reports err (if non-nil) as a ProviderError attributed to op.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Op: op, Err: err}
}
