// Package prg implements a deterministic pseudo-random generator on
// top of the ChaCha20 keystream. Equal seeds produce equal streams,
// so test corpora derived from it reproduce exactly.
package prg

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// PRG is a deterministic byte stream. It is not safe for concurrent
// use.
type PRG struct {
	stream *chacha20.Cipher
}

// New creates a generator for seed. The seed is repeated to fill the
// 32-byte cipher key and the nonce is zero, so the stream is a pure
// function of the seed. The seed must not be empty.
func New(seed []byte) *PRG {
	if len(seed) == 0 {
		panic("prg: empty seed")
	}

	key := make([]byte, chacha20.KeySize)
	for i := range key {
		key[i] = seed[i%len(seed)]
	}

	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}

	return &PRG{
		stream: stream,
	}
}

// Bytes returns the next n keystream bytes.
func (p *PRG) Bytes(n int) []byte {
	out := make([]byte, n)
	p.stream.XORKeyStream(out, out)
	return out
}

// Uint32 returns the next keystream word.
func (p *PRG) Uint32() uint32 {
	var buf [4]byte
	p.stream.XORKeyStream(buf[:], buf[:])
	return binary.BigEndian.Uint32(buf[:])
}
