package raw

// StreamBlockSize bounds how much plaintext or ciphertext this package
// reads from an io.Reader per iteration, mirroring the source library's
// constants::stream_block_size. It keeps memory use bounded for inputs of
// arbitrary size regardless of how large the caller's io.Reader is.
const StreamBlockSize = 524288
