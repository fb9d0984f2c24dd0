package provider

import "crypto/cipher"

// ecbMode implements cipher.BlockMode for the deliberately-omitted ECB
// mode. The standard library does not ship one (ECB leaks plaintext
// structure and should not be anyone's default), but it remains a named
// interoperability target here, so the provider adapter supplies the
// minimal implementation itself rather than reach for a third-party
// package: the primitive is a handful of lines over an existing
// cipher.Block.
type ecbMode struct {
	block     cipher.Block
	blockSize int
}

func newECBMode(block cipher.Block) cipher.BlockMode {
	return &ecbMode{block: block, blockSize: block.BlockSize()}
}

func (e *ecbMode) BlockSize() int { return e.blockSize }

func (e *ecbMode) CryptBlocks(dst, src []byte) {
	if len(src)%e.blockSize != 0 {
		panic("provider: ecb input not a multiple of the block size")
	}
	if len(dst) < len(src) {
		panic("provider: ecb output smaller than input")
	}
	for len(src) > 0 {
		e.block.Encrypt(dst[:e.blockSize], src[:e.blockSize])
		src = src[e.blockSize:]
		dst = dst[e.blockSize:]
	}
}

// ecbDecrypter is the decrypt-direction counterpart of ecbMode: its
// CryptBlocks runs the same block-by-block loop but calls Decrypt instead
// of Encrypt.
type ecbDecrypter struct {
	block     cipher.Block
	blockSize int
}

func newECBDecrypter(block cipher.Block) cipher.BlockMode {
	return &ecbDecrypter{block: block, blockSize: block.BlockSize()}
}

func (e *ecbDecrypter) BlockSize() int { return e.blockSize }

func (e *ecbDecrypter) CryptBlocks(dst, src []byte) {
	if len(src)%e.blockSize != 0 {
		panic("provider: ecb input not a multiple of the block size")
	}
	if len(dst) < len(src) {
		panic("provider: ecb output smaller than input")
	}
	for len(src) > 0 {
		e.block.Decrypt(dst[:e.blockSize], src[:e.blockSize])
		src = src[e.blockSize:]
		dst = dst[e.blockSize:]
	}
}
