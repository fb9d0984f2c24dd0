package cryptography

import "github.com/infinitio/cryptography-go/internal/provider"

// Cipher identifies a symmetric block cipher.
type Cipher string

const (
	DES      Cipher = "des"
	DES2     Cipher = "des2"
	DES3     Cipher = "des3"
	DESX     Cipher = "desx"
	IDEA     Cipher = "idea"
	RC2      Cipher = "rc2"
	Blowfish Cipher = "blowfish"
	CAST5    Cipher = "cast5"
	AES128   Cipher = "aes128"
	AES192   Cipher = "aes192"
	AES256   Cipher = "aes256"
)

func (c Cipher) provider() provider.CipherID { return provider.CipherID(c) }

// ProviderCipher exposes the internal/provider identifier backing c, for
// sibling packages that call into internal/raw directly.
func ProviderCipher(c Cipher) provider.CipherID { return c.provider() }

// KeySize returns the key length, in bytes, required by c.
func (c Cipher) KeySize() (int, error) {
	n, err := provider.CipherKeySize(c.provider())
	if err != nil {
		return 0, translate("cipher.key_size", err)
	}
	return n, nil
}

// Mode identifies a block-cipher mode of operation.
type Mode string

const (
	ModeNone Mode = "none"
	ModeCBC  Mode = "cbc"
	ModeECB  Mode = "ecb"
	ModeCFB  Mode = "cfb"
	ModeOFB  Mode = "ofb"
)

func (m Mode) provider() provider.ModeID { return provider.ModeID(m) }

// ProviderMode exposes the internal/provider identifier backing m, for
// sibling packages that call into internal/raw directly.
func ProviderMode(m Mode) provider.ModeID { return m.provider() }
