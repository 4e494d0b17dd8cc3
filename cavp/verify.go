package cavp

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/fips180/sha256"
)

// Result tallies one verification run.
type Result struct {
	Total   int
	Passed  int
	Skipped int
	Failed  int

	// First holds the first mismatch, if any.
	First *Mismatch
}

// Mismatch describes a failed vector.
type Mismatch struct {
	Index int
	Got   string
	Want  string
}

// OK reports whether the run had no failures.
func (r Result) OK() bool {
	return r.Failed == 0
}

func (r *Result) fail(index int, got, want string) {
	r.Failed++
	if r.First == nil {
		r.First = &Mismatch{
			Index: index,
			Got:   got,
			Want:  want,
		}
	}
}

// Verify runs every message vector of resp through the engine.
// Vectors whose bit length is not a byte multiple are skipped, as in
// byte-oriented CAVP testing.
func Verify(resp *Response) Result {
	var result Result
	result.Total = len(resp.Vectors)

	for i, vec := range resp.Vectors {
		if vec.BitLen%8 != 0 {
			result.Skipped++
			continue
		}
		if got := sha256.Hash(vec.Msg); got != vec.MD {
			result.fail(i, got, vec.MD)
			continue
		}
		result.Passed++
	}
	return result
}

// MonteCarlo runs the CAVS SHA-256 Monte Carlo procedure and returns
// the checkpoint digests. Each checkpoint seeds three equal digests
// and runs 1000 iterations, each hashing the byte concatenation of
// the three most recent digests; the final digest is the checkpoint
// value and the seed of the next one.
func MonteCarlo(seed [sha256.Size]byte, checkpoints int) [][sha256.Size]byte {
	out := make([][sha256.Size]byte, checkpoints)

	for j := range out {
		md0, md1, md2 := seed, seed, seed

		var msg [3 * sha256.Size]byte
		for i := 0; i < 1000; i++ {
			copy(msg[0:], md0[:])
			copy(msg[sha256.Size:], md1[:])
			copy(msg[2*sha256.Size:], md2[:])
			md0, md1, md2 = md1, md2, sha256.Sum256(msg[:])
		}

		out[j] = md2
		seed = md2
	}
	return out
}

// VerifyMonte checks every recorded Monte Carlo checkpoint of resp.
func VerifyMonte(resp *Response) (Result, error) {
	if !resp.Monte() {
		return Result{}, errors.New("response has no Seed record")
	}
	if len(resp.Seed) != sha256.Size {
		return Result{}, fmt.Errorf("seed is %d bytes, want %d",
			len(resp.Seed), sha256.Size)
	}
	for i, checkpoint := range resp.Checkpoints {
		if len(checkpoint) != sha256.Size {
			return Result{}, fmt.Errorf("checkpoint %d is %d bytes, want %d",
				i, len(checkpoint), sha256.Size)
		}
	}

	var seed [sha256.Size]byte
	copy(seed[:], resp.Seed)

	var result Result
	result.Total = len(resp.Checkpoints)

	for i, got := range MonteCarlo(seed, len(resp.Checkpoints)) {
		if !bytes.Equal(got[:], resp.Checkpoints[i]) {
			result.fail(i, fmt.Sprintf("%x", got),
				fmt.Sprintf("%x", resp.Checkpoints[i]))
			continue
		}
		result.Passed++
	}
	return result, nil
}
