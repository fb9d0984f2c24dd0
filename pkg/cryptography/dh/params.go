package dh

import "math/big"

// Parameters is a Diffie-Hellman domain: a safe prime modulus and a
// generator. Two parties must share identical Parameters for agreement
// to produce a common secret.
type Parameters struct {
	P *big.Int
	G *big.Int
}

// modp2048Hex is the RFC 3526 Group 14 2048-bit MODP prime, the
// conventional fixed safe-prime group used in place of generating a
// fresh safe prime per key pair (generating a 2048-bit safe prime is
// computationally expensive and buys nothing over a well-vetted shared
// group).
const modp2048Hex = "" +
	"FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3D" +
	"C2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F" +
	"83655D23DCA3AD961C62F356208552BB9ED529077096966D" +
	"670C354E4ABC9804F1746C08CA18217C32905E462E36CE3B" +
	"E39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9" +
	"DE2BCBF6955817183995497CEA956AE515D2261898FA0510" +
	"15728E5A8AACAA68FFFFFFFFFFFFFFFF"

// Group2048 returns the RFC 3526 Group 14 domain parameters (generator
// 2), this package's default group when a caller does not supply its
// own Parameters.
func Group2048() Parameters {
	p, ok := new(big.Int).SetString(modp2048Hex, 16)
	if !ok {
		panic("dh: malformed built-in MODP group constant")
	}
	return Parameters{P: p, G: big.NewInt(2)}
}

// Size returns the modulus size in bytes, the fixed length every
// PublicKey value and agreed secret under params takes.
func (params Parameters) Size() int {
	return (params.P.BitLen() + 7) / 8
}
