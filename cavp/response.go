package cavp

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Vector is one message record of a ShortMsg or LongMsg response
// file.
type Vector struct {
	// BitLen is the recorded message length in bits. Byte-oriented
	// verification skips vectors whose length is not a multiple of 8.
	BitLen int

	// Msg is the decoded message. For a zero-length record the
	// recorded placeholder byte is discarded and Msg is empty.
	Msg []byte

	// MD is the expected digest as lowercase hex.
	MD string
}

// Response is a parsed .rsp file. Message files fill Vectors; Monte
// files fill Seed and Checkpoints.
type Response struct {
	Vectors []Vector

	Seed        []byte
	Checkpoints [][]byte
}

// Monte reports whether the response is a Monte Carlo file.
func (r *Response) Monte() bool {
	return r.Seed != nil
}

// ParseResponse parses a NIST CAVP response file. Comment lines
// (leading '#') and bracketed section headers are skipped. A message
// record is the line triple "Len = / Msg = / MD ="; a Monte record
// is "COUNT = / MD =" following a single "Seed =" line.
func ParseResponse(in io.Reader) (*Response, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)

	resp := &Response{}

	var (
		lineno int
		bitLen = -1
		msg    []byte
		count  = -1
	)

	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "[") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: malformed record: %q",
				lineno, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Len":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("line %d: invalid Len: %q",
					lineno, value)
			}
			bitLen = n
			msg = nil

		case "Msg":
			data, err := hex.DecodeString(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid Msg: %v",
					lineno, err)
			}
			msg = data

		case "Seed":
			data, err := hex.DecodeString(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid Seed: %v",
					lineno, err)
			}
			resp.Seed = data

		case "COUNT":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid COUNT: %q",
					lineno, value)
			}
			if n != count+1 {
				return nil, fmt.Errorf("line %d: COUNT %d out of order, want %d",
					lineno, n, count+1)
			}
			count = n

		case "MD":
			md := strings.ToLower(value)
			if _, err := hex.DecodeString(md); err != nil {
				return nil, fmt.Errorf("line %d: invalid MD: %v",
					lineno, err)
			}

			if resp.Seed != nil {
				checkpoint, _ := hex.DecodeString(md)
				resp.Checkpoints = append(resp.Checkpoints, checkpoint)
				continue
			}

			if bitLen < 0 {
				return nil, fmt.Errorf("line %d: MD record without Len",
					lineno)
			}
			if bitLen == 0 {
				// Zero-length records carry a placeholder message
				// byte; the vector hashes the empty message.
				msg = nil
			}
			resp.Vectors = append(resp.Vectors, Vector{
				BitLen: bitLen,
				Msg:    msg,
				MD:     md,
			})
			bitLen = -1
			msg = nil

		default:
			return nil, fmt.Errorf("line %d: unknown record %q",
				lineno, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if resp.Seed == nil && len(resp.Vectors) == 0 {
		return nil, fmt.Errorf("no vectors found")
	}
	return resp, nil
}
