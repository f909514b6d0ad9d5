package input

import (
	"bufio"
	"io"
	"unicode/utf8"
)

const (
	byteCtrlC     = 0x03
	byteCtrlD     = 0x04
	byteBackspace = 0x08
	byteEscape    = 0x1b
	byteDelete    = 0x7f
)

// Reader decodes raw terminal bytes into keys, one key per call.
// The underlying reader is expected to be in raw mode: no echo, no line buffering.
type Reader struct {
	r *bufio.Reader
	// set after a lone ESC, whose sequence may still be in flight
	afterEscape bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadKey blocks until a key arrives. End of input is reported as io.EOF.
func (kr *Reader) ReadKey() (Key, error) {
	b, err := kr.r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	afterEscape := kr.afterEscape
	kr.afterEscape = false
	if afterEscape && (b == '[' || b == 'O') {
		kr.skipSequence(b)
		return Key{Code: CodeOther}, nil
	}

	switch {
	case b == byteCtrlC || b == byteCtrlD:
		return Key{Code: CodeInterrupt}, nil
	case b == byteBackspace || b == byteDelete:
		return Key{Code: CodeBackspace}, nil
	case b == '\r' || b == '\n':
		return Key{Code: CodeEnter}, nil
	case b == byteEscape:
		return kr.readEscape(), nil
	case b < 0x20:
		return Key{Code: CodeOther}, nil
	case b < utf8.RuneSelf:
		return Rune(rune(b)), nil
	}

	if err := kr.r.UnreadByte(); err != nil {
		return Key{}, err
	}
	r, _, err := kr.r.ReadRune()
	if err != nil {
		return Key{}, err
	}
	if r == utf8.RuneError {
		return Key{Code: CodeOther}, nil
	}
	return Rune(r), nil
}

// readEscape swallows a CSI or SS3 sequence following ESC. A lone ESC with
// nothing buffered behind it is reported as the Escape key, and the next
// ReadKey picks up the rest of the sequence if it shows up late.
func (kr *Reader) readEscape() Key {
	if kr.r.Buffered() == 0 {
		kr.afterEscape = true
		return Key{Code: CodeEscape}
	}

	next, err := kr.r.ReadByte()
	if err != nil {
		return Key{Code: CodeEscape}
	}
	if next == '[' || next == 'O' {
		kr.skipSequence(next)
	}
	return Key{Code: CodeOther}
}

// skipSequence consumes the rest of an escape sequence once its introducer
// has been read. It blocks for the final byte, which may arrive in a later read.
func (kr *Reader) skipSequence(intro byte) {
	if intro == 'O' {
		_, _ = kr.r.ReadByte()
		return
	}
	// parameters and intermediates until a final byte in 0x40..0x7e
	for {
		c, err := kr.r.ReadByte()
		if err != nil || (c >= 0x40 && c <= 0x7e) {
			return
		}
	}
}
