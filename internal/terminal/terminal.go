package terminal

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// WithRawMode runs fn with fd in raw mode and restores the previous mode on
// every exit path, including a panic inside fn. A descriptor that is not a
// terminal is left alone and fn runs as is.
func WithRawMode(fd int, fn func() error) (err error) {
	if !term.IsTerminal(fd) {
		return fn()
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("cannot enter raw mode: %w", err)
	}
	defer func() {
		if rerr := term.Restore(fd, old); rerr != nil && err == nil {
			err = fmt.Errorf("cannot restore terminal: %w", rerr)
		}
	}()

	return fn()
}

// CRLFWriter turns bare "\n" into "\r\n". Raw mode disables output
// post-processing, so a plain newline would not return the carriage.
type CRLFWriter struct {
	w      io.Writer
	lastCR bool
}

func NewCRLFWriter(w io.Writer) *CRLFWriter {
	return &CRLFWriter{w: w}
}

func (c *CRLFWriter) Write(p []byte) (int, error) {
	out := make([]byte, 0, len(p)+8)
	for _, b := range p {
		if b == '\n' && !c.lastCR {
			out = append(out, '\r')
		}
		out = append(out, b)
		c.lastCR = b == '\r'
	}

	if _, err := c.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}
