package input

import "fmt"

// Code classifies a key press
type Code uint8

const (
	CodeNone Code = iota
	// Printable character, see Key.Rune
	CodeRune
	// DEL (0x7f) or BS (0x08)
	CodeBackspace
	// Ctrl+C, also Ctrl+D
	CodeInterrupt
	CodeEnter
	CodeEscape
	// Control bytes and escape sequences (arrows, function keys)
	CodeOther
)

// Key is a single decoded key press
type Key struct {
	Code Code
	Rune rune
}

func Rune(r rune) Key {
	return Key{Code: CodeRune, Rune: r}
}

func (k Key) String() string {
	switch k.Code {
	case CodeRune:
		return fmt.Sprintf("%q", k.Rune)
	case CodeBackspace:
		return "backspace"
	case CodeInterrupt:
		return "interrupt"
	case CodeEnter:
		return "enter"
	case CodeEscape:
		return "escape"
	case CodeOther:
		return "other"
	default:
		return "none"
	}
}
