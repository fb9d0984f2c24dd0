package raw

import (
	"io"

	"github.com/infinitio/cryptography-go/internal/provider"
)

// Hash streams plain through the named digest and returns the resulting
// fixed-size digest, grounded on raw.cc's asymmetric-free hash() function:
// initialize, repeatedly update from a bounded read buffer, finalize.
func Hash(oneway provider.OnewayID, plain io.Reader) ([]byte, error) {
	provider.Require()

	newHash, err := provider.ResolveDigest(oneway)
	if err != nil {
		return nil, err
	}
	h := newHash()

	buf := make([]byte, StreamBlockSize)
	for {
		n, err := plain.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, provider.Wrap("hash_read", err)
		}
	}

	return h.Sum(nil), nil
}
