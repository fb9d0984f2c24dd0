// Package rsa implements the RSA key types, their lifecycle, DER/PEM/
// binary codecs, and the asymmetric operations (encrypt, decrypt, sign,
// verify, rotate, unrotate) that make up the RSA cryptosystem described
// atop internal/raw and internal/provider.
package rsa
