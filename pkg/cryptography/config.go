package cryptography

// Profile selects between the current serialization/default-padding
// behavior and a prior major version's behavior, kept alive for reading
// and producing output compatible with older callers.
type Profile int

const (
	ProfileCurrent Profile = iota
	ProfileLegacy
)

// Options collects the knobs threaded through encryption, signing, and
// envelope operations in place of a long run of optional parameters.
// Build one with DefaultOptions or LegacyOptions and override individual
// fields as needed.
type Options struct {
	EncryptionPadding Padding
	SignaturePadding  Padding
	Oneway            Oneway
	Cipher            Cipher
	Mode              Mode
	Profile           Profile
}

// DefaultOptions returns the current-profile defaults: OAEP encryption
// padding, PSS signature padding, SHA-256, AES-256 in CBC mode.
func DefaultOptions() Options {
	return Options{
		EncryptionPadding: PaddingOAEP,
		SignaturePadding:  PaddingPSS,
		Oneway:            SHA256,
		Cipher:            AES256,
		Mode:              ModeCBC,
		Profile:           ProfileCurrent,
	}
}

// LegacyOptions returns the legacy-profile defaults: PKCS#1 v1.5 for both
// encryption and signature padding, matching format 1 of the prior
// serialization scheme.
func LegacyOptions() Options {
	opts := DefaultOptions()
	opts.EncryptionPadding = PaddingPKCS1
	opts.SignaturePadding = PaddingPKCS1
	opts.Profile = ProfileLegacy
	return opts
}

// WithOneway returns a copy of o with Oneway set to oneway.
func (o Options) WithOneway(oneway Oneway) Options {
	o.Oneway = oneway
	return o
}

// WithCipher returns a copy of o with Cipher and Mode set.
func (o Options) WithCipher(cipher Cipher, mode Mode) Options {
	o.Cipher = cipher
	o.Mode = mode
	return o
}
