package cryptography

import (
	"encoding/json"
	"fmt"
)

// The *Ordinals tables assign each enum constant's wire discriminant as
// its position in the slice. MarshalJSON/UnmarshalJSON below use these
// tables so a legacy-profile privateKeyWire (rsa/serialize.go,
// dsa/serialize.go) carries each enum as a numeric discriminant rather
// than its Go string value.
var (
	paddingOrdinals = []Padding{PaddingNone, PaddingPKCS1, PaddingOAEP, PaddingPSS}
	onewayOrdinals  = []Oneway{MD5, SHA, SHA1, SHA224, SHA256, SHA384, SHA512}
	cipherOrdinals  = []Cipher{DES, DES2, DES3, DESX, IDEA, RC2, Blowfish, CAST5, AES128, AES192, AES256}
	modeOrdinals    = []Mode{ModeNone, ModeCBC, ModeECB, ModeCFB, ModeOFB}
)

func ordinalOf[T comparable](table []T, v T) (int, bool) {
	for i, c := range table {
		if c == v {
			return i, true
		}
	}
	return 0, false
}

// MarshalJSON encodes p as its ordinal position among Padding's declared
// constants. The zero value (omitted by omitempty in practice) encodes
// as -1 so a direct Marshal of an unset Padding never fails.
func (p Padding) MarshalJSON() ([]byte, error) {
	if p == "" {
		return json.Marshal(-1)
	}
	i, ok := ordinalOf(paddingOrdinals, p)
	if !ok {
		return nil, fmt.Errorf("%w: padding %q", ErrUnknownAlgorithm, p)
	}
	return json.Marshal(i)
}

func (p *Padding) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return fmt.Errorf("%w: %v", ErrSerializationError, err)
	}
	if i == -1 {
		*p = ""
		return nil
	}
	if i < 0 || i >= len(paddingOrdinals) {
		return fmt.Errorf("%w: padding discriminant %d", ErrUnknownAlgorithm, i)
	}
	*p = paddingOrdinals[i]
	return nil
}

// MarshalJSON encodes o as its ordinal position among Oneway's declared
// constants.
func (o Oneway) MarshalJSON() ([]byte, error) {
	if o == "" {
		return json.Marshal(-1)
	}
	i, ok := ordinalOf(onewayOrdinals, o)
	if !ok {
		return nil, fmt.Errorf("%w: oneway %q", ErrUnknownAlgorithm, o)
	}
	return json.Marshal(i)
}

func (o *Oneway) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return fmt.Errorf("%w: %v", ErrSerializationError, err)
	}
	if i == -1 {
		*o = ""
		return nil
	}
	if i < 0 || i >= len(onewayOrdinals) {
		return fmt.Errorf("%w: oneway discriminant %d", ErrUnknownAlgorithm, i)
	}
	*o = onewayOrdinals[i]
	return nil
}

// MarshalJSON encodes c as its ordinal position among Cipher's declared
// constants.
func (c Cipher) MarshalJSON() ([]byte, error) {
	if c == "" {
		return json.Marshal(-1)
	}
	i, ok := ordinalOf(cipherOrdinals, c)
	if !ok {
		return nil, fmt.Errorf("%w: cipher %q", ErrUnknownAlgorithm, c)
	}
	return json.Marshal(i)
}

func (c *Cipher) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return fmt.Errorf("%w: %v", ErrSerializationError, err)
	}
	if i == -1 {
		*c = ""
		return nil
	}
	if i < 0 || i >= len(cipherOrdinals) {
		return fmt.Errorf("%w: cipher discriminant %d", ErrUnknownAlgorithm, i)
	}
	*c = cipherOrdinals[i]
	return nil
}

// MarshalJSON encodes m as its ordinal position among Mode's declared
// constants.
func (m Mode) MarshalJSON() ([]byte, error) {
	if m == "" {
		return json.Marshal(-1)
	}
	i, ok := ordinalOf(modeOrdinals, m)
	if !ok {
		return nil, fmt.Errorf("%w: mode %q", ErrUnknownAlgorithm, m)
	}
	return json.Marshal(i)
}

func (m *Mode) UnmarshalJSON(data []byte) error {
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return fmt.Errorf("%w: %v", ErrSerializationError, err)
	}
	if i == -1 {
		*m = ""
		return nil
	}
	if i < 0 || i >= len(modeOrdinals) {
		return fmt.Errorf("%w: mode discriminant %d", ErrUnknownAlgorithm, i)
	}
	*m = modeOrdinals[i]
	return nil
}
