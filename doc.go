// Package sha256 implements the SHA-256 hash function as specified
// in FIPS PUB 180-4. The implementation is self-contained and hashes
// a single in-memory message in one call; there is no incremental
// interface. The pipeline runs in three stages: the message is padded
// to a multiple of the 64-byte block size, each block is folded into
// the running eight-word state by the 64-round compression function,
// and the final state is rendered as a 64-character lowercase
// hexadecimal digest.
//
// Every call is independent and allocates its own working buffers, so
// concurrent calls on different messages need no synchronization.
//
// Example:
//
//	digest := sha256.Hash([]byte("abc"))
//	// digest == "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
package sha256
