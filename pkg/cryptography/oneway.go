package cryptography

import "github.com/infinitio/cryptography-go/internal/provider"

// Oneway identifies a message-digest algorithm.
type Oneway string

const (
	MD5    Oneway = "md5"
	SHA    Oneway = "sha"
	SHA1   Oneway = "sha1"
	SHA224 Oneway = "sha224"
	SHA256 Oneway = "sha256"
	SHA384 Oneway = "sha384"
	SHA512 Oneway = "sha512"
)

func (o Oneway) provider() provider.OnewayID { return provider.OnewayID(o) }

// ProviderOneway exposes the internal/provider identifier backing o, for
// sibling packages (pkg/cryptography/hmac, pkg/cryptography/envelope) that
// need to call into internal/raw directly.
func ProviderOneway(o Oneway) provider.OnewayID { return o.provider() }

// DigestSize returns the natural output size, in bytes, of o.
func (o Oneway) DigestSize() (int, error) {
	n, err := provider.DigestSize(o.provider())
	if err != nil {
		return 0, translate("oneway.digest_size", err)
	}
	return n, nil
}
