package cavp_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fips180/sha256/cavp"
)

func parseFile(tb testing.TB, path string) *cavp.Response {
	tb.Helper()

	f, err := os.Open(path)
	require.NoError(tb, err)
	defer f.Close()

	resp, err := cavp.ParseResponse(f)
	require.NoError(tb, err)
	return resp
}

func TestParseResponse_shortMsg(t *testing.T) {
	t.Parallel()

	resp := parseFile(t, "testdata/SHA256ShortMsg.rsp")
	require.False(t, resp.Monte())
	require.Len(t, resp.Vectors, 4)

	empty := resp.Vectors[0]
	assert.Equal(t, 0, empty.BitLen)
	assert.Empty(t, empty.Msg, "zero-length record must drop the placeholder byte")
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		empty.MD)

	abc := resp.Vectors[1]
	assert.Equal(t, 24, abc.BitLen)
	assert.Equal(t, []byte("abc"), abc.Msg)

	twoBlock := resp.Vectors[3]
	assert.Equal(t, 448, twoBlock.BitLen)
	assert.Len(t, twoBlock.Msg, 56)
}

func TestParseResponse_monte(t *testing.T) {
	t.Parallel()

	const text = `# SHA-256 Monte
[L = 32]

Seed = 000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f

COUNT = 0
MD = e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855

COUNT = 1
MD = ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
`
	resp, err := cavp.ParseResponse(strings.NewReader(text))
	require.NoError(t, err)
	require.True(t, resp.Monte())
	assert.Len(t, resp.Seed, 32)
	assert.Len(t, resp.Checkpoints, 2)
}

func TestParseResponse_errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty input",
			text: "# only comments\n",
			want: "no vectors",
		},
		{
			name: "malformed record",
			text: "Len 24\n",
			want: "malformed record",
		},
		{
			name: "invalid message hex",
			text: "Len = 8\nMsg = zz\n",
			want: "invalid Msg",
		},
		{
			name: "digest without length",
			text: "MD = " + strings.Repeat("00", 32) + "\n",
			want: "MD record without Len",
		},
		{
			name: "count out of order",
			text: "Seed = " + strings.Repeat("00", 32) + "\nCOUNT = 1\n",
			want: "out of order",
		},
		{
			name: "unknown record",
			text: "Key = value\n",
			want: "unknown record",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := cavp.ParseResponse(strings.NewReader(tc.text))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
