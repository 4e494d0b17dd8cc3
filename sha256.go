package sha256

import (
	"encoding/binary"
	"encoding/hex"
)

const (
	// Size is the length of a SHA-256 digest in bytes.
	Size = 32

	// BlockSize is the block size of SHA-256 in bytes.
	BlockSize = 64
)

// initState holds the initial hash value H(0): the first 32 bits of
// the fractional parts of the square roots of the first 8 primes.
var initState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Hash computes the SHA-256 digest of data and returns it as a
// 64-character lowercase hexadecimal string.
func Hash(data []byte) string {
	state := initState
	compress(&state, pad(data))
	return render(state)
}

// Sum256 computes the SHA-256 digest of data and returns the raw
// 32-byte value.
func Sum256(data []byte) [Size]byte {
	state := initState
	compress(&state, pad(data))

	var sum [Size]byte
	for i, word := range state {
		binary.BigEndian.PutUint32(sum[i*4:], word)
	}
	return sum
}

// pad extends data per the FIPS 180-4 padding rule: a 0x80 byte,
// zero bytes up to 56 mod 64, and the message bit length as a
// big-endian 64-bit integer. The result length is a multiple of
// BlockSize.
func pad(data []byte) []byte {
	bitLen := uint64(len(data)) * 8

	padded := make([]byte, 0, (len(data)+9+BlockSize-1)&^(BlockSize-1))
	padded = append(padded, data...)
	padded = append(padded, 0x80)
	for len(padded)%BlockSize != BlockSize-8 {
		padded = append(padded, 0x00)
	}
	return binary.BigEndian.AppendUint64(padded, bitLen)
}

// render serializes the hash state as 64 lowercase hex characters,
// most-significant word first.
func render(state [8]uint32) string {
	var buf [Size]byte
	for i, word := range state {
		binary.BigEndian.PutUint32(buf[i*4:], word)
	}
	return hex.EncodeToString(buf[:])
}
