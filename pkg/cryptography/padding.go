package cryptography

// Padding identifies an RSA encryption or signature padding scheme.
type Padding string

const (
	PaddingNone  Padding = "none"
	PaddingPKCS1 Padding = "pkcs1"
	PaddingOAEP  Padding = "oaep"
	PaddingPSS   Padding = "pss"
)

// Cryptosystem identifies an asymmetric key family.
type Cryptosystem string

const (
	CryptosystemRSA Cryptosystem = "rsa"
	CryptosystemDSA Cryptosystem = "dsa"
	CryptosystemDH  Cryptosystem = "dh"
)
