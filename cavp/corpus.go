package cavp

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/fips180/sha256"
)

// CorpusVector is one entry of the JSON corpus format produced by
// the reference vector generator: an input string and its expected
// digest.
type CorpusVector struct {
	Input string `json:"input"`
	Hash  string `json:"hash"`
}

// LoadCorpus reads a JSON corpus file.
func LoadCorpus(path string) ([]CorpusVector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var vectors []CorpusVector
	if err := json.Unmarshal(data, &vectors); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("%s: no vectors found", path)
	}
	return vectors, nil
}

// VerifyCorpus runs every corpus vector through the engine.
func VerifyCorpus(vectors []CorpusVector) Result {
	var result Result
	result.Total = len(vectors)

	for i, vec := range vectors {
		want := strings.ToLower(vec.Hash)
		if got := sha256.Hash([]byte(vec.Input)); got != want {
			result.fail(i, got, want)
			continue
		}
		result.Passed++
	}
	return result
}
