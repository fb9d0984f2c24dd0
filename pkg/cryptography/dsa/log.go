package dsa

import (
	"github.com/infinitio/cryptography-go/pkg/cryptography/cryptolog"
)

var log cryptolog.Logger = cryptolog.Noop()

// SetLogger installs the Logger used by this package's operation
// boundaries. Passing nil restores the no-op default.
func SetLogger(l cryptolog.Logger) {
	if l == nil {
		l = cryptolog.Noop()
	}
	log = l
}
