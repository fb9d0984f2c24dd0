package rsa

import (
	"context"
	"log/slog"

	"github.com/infinitio/cryptography-go/pkg/cryptography/cryptolog"
)

// log is the package-level logger used at operation boundaries (key
// generation, PEM import/export). It discards everything until a caller
// opts in via SetLogger, matching the teacher's logging.Logger default.
var log cryptolog.Logger = cryptolog.Noop()

// SetLogger installs the Logger used by this package's operation
// boundaries. Passing nil restores the no-op default.
func SetLogger(l cryptolog.Logger) {
	if l == nil {
		l = cryptolog.Noop()
	}
	log = l
}
