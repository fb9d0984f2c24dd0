package cryptography

import (
	"errors"

	"github.com/infinitio/cryptography-go/internal/provider"
	"github.com/infinitio/cryptography-go/internal/raw"
)

// TranslateError maps an internal/provider or internal/raw error into this
// package's public error taxonomy, wrapping it as an OpError attributed
// to op. Sibling packages (pkg/cryptography/hmac, pkg/cryptography/envelope,
// pkg/cryptography/rsa, ...) funnel lower-layer errors through this
// function so consumers only ever see the sentinels declared in errors.go.
func TranslateError(op string, err error) error {
	return translate(op, err)
}

func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, provider.ErrUnknownAlgorithm):
		return &OpError{Op: op, Err: errors.Join(ErrUnknownAlgorithm, err)}
	case errors.Is(err, raw.ErrInvalidStream):
		return &OpError{Op: op, Err: errors.Join(ErrMissingSalt, err)}
	case errors.Is(err, raw.ErrStreamTooShort):
		return &OpError{Op: op, Err: errors.Join(ErrIOError, err)}
	default:
		return &OpError{Op: op, Err: errors.Join(ErrProviderError, err)}
	}
}
