package input

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, raw string) []Key {
	t.Helper()
	return readKeys(t, strings.NewReader(raw))
}

func TestReadKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Key
	}{
		{name: "letters", raw: "aS", want: []Key{Rune('a'), Rune('S')}},
		{name: "ctrl-c", raw: "\x03", want: []Key{{Code: CodeInterrupt}}},
		{name: "ctrl-d", raw: "\x04", want: []Key{{Code: CodeInterrupt}}},
		{name: "delete and backspace", raw: "\x7f\x08", want: []Key{{Code: CodeBackspace}, {Code: CodeBackspace}}},
		{name: "enter", raw: "\r\n", want: []Key{{Code: CodeEnter}, {Code: CodeEnter}}},
		{name: "control byte", raw: "\x01", want: []Key{{Code: CodeOther}}},
		{name: "utf8", raw: "é", want: []Key{Rune('é')}},
		{name: "invalid utf8", raw: "\xff", want: []Key{{Code: CodeOther}}},
		{name: "lone escape", raw: "\x1b", want: []Key{{Code: CodeEscape}}},
		{name: "arrow up is not peg A", raw: "\x1b[A", want: []Key{{Code: CodeOther}}},
		{name: "csi with params", raw: "\x1b[1;5Dd", want: []Key{{Code: CodeOther}, Rune('d')}},
		{name: "ss3 function key", raw: "\x1bOPa", want: []Key{{Code: CodeOther}, Rune('a')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readAll(t, tt.raw))
		})
	}
}

// chunkReader hands out one chunk per Read, like a terminal on a slow link
type chunkReader struct {
	chunks []string
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	c.chunks[0] = c.chunks[0][n:]
	if c.chunks[0] == "" {
		c.chunks = c.chunks[1:]
	}
	return n, nil
}

func readKeys(t *testing.T, r io.Reader) []Key {
	t.Helper()
	kr := NewReader(r)
	var keys []Key
	for {
		k, err := kr.ReadKey()
		if errors.Is(err, io.EOF) {
			return keys
		}
		require.NoError(t, err)
		keys = append(keys, k)
	}
}

func TestReadKeySplitSequences(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   []Key
	}{
		{name: "final byte late", chunks: []string{"\x1b[", "A"}, want: []Key{{Code: CodeOther}}},
		{name: "params split", chunks: []string{"\x1b[1;", "5D", "d"}, want: []Key{{Code: CodeOther}, Rune('d')}},
		{name: "introducer late", chunks: []string{"\x1b", "[A"}, want: []Key{{Code: CodeEscape}, {Code: CodeOther}}},
		{name: "ss3 introducer late", chunks: []string{"\x1b", "OP", "s"}, want: []Key{{Code: CodeEscape}, {Code: CodeOther}, Rune('s')}},
		{name: "escape then peg", chunks: []string{"\x1b", "a"}, want: []Key{{Code: CodeEscape}, Rune('a')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readKeys(t, &chunkReader{chunks: tt.chunks}))
		})
	}
}

func TestReadKeyArrowOneByteAtATime(t *testing.T) {
	keys := readKeys(t, iotest.OneByteReader(strings.NewReader("\x1b[Ad")))
	assert.Equal(t, []Key{{Code: CodeEscape}, {Code: CodeOther}, Rune('d')}, keys)
	assert.NotContains(t, keys, Rune('A'))
}

func TestReadKeyEOF(t *testing.T) {
	kr := NewReader(strings.NewReader(""))
	_, err := kr.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "'q'", Rune('q').String())
	assert.Equal(t, "interrupt", Key{Code: CodeInterrupt}.String())
	assert.Equal(t, "none", Key{}.String())
}
