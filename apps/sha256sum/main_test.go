package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCapture(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout)
	return stdout.String(), err
}

func TestRun_literalString(t *testing.T) {
	t.Parallel()

	out, err := runCapture(t, []string{"-s", "abc"}, "")
	require.NoError(t, err)
	assert.Equal(t,
		"SHA-256: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n",
		out)
}

func TestRun_emptyString(t *testing.T) {
	t.Parallel()

	out, err := runCapture(t, []string{"-s", ""}, "")
	require.NoError(t, err)
	assert.Equal(t,
		"SHA-256: e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855\n",
		out)
}

func TestRun_file(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	out, err := runCapture(t, []string{"-f", path}, "")
	require.NoError(t, err)
	assert.Equal(t,
		"SHA-256: b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9\n",
		out)
}

func TestRun_missingFile(t *testing.T) {
	t.Parallel()

	_, err := runCapture(t,
		[]string{"-f", filepath.Join(t.TempDir(), "missing.txt")}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open file")
}

func TestRun_stdinLine(t *testing.T) {
	t.Parallel()

	out, err := runCapture(t, nil, "abc\n")
	require.NoError(t, err)
	assert.Contains(t, out,
		"SHA-256: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n")
	assert.NotContains(t, out, "Enter string",
		"non-terminal input must not be prompted")
}

func TestRun_stdinWithoutNewline(t *testing.T) {
	t.Parallel()

	out, err := runCapture(t, nil, "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "ba7816bf8f01cfea")
}

func TestRun_stdinCRLF(t *testing.T) {
	t.Parallel()

	out, err := runCapture(t, nil, "abc\r\n")
	require.NoError(t, err)
	assert.Contains(t, out, "ba7816bf8f01cfea")
}

func TestRun_usageErrors(t *testing.T) {
	t.Parallel()

	_, err := runCapture(t, []string{"-s", "a", "-f", "b"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")

	_, err = runCapture(t, []string{"stray"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected argument")
}
