package transport

import (
	"hanoi/internal/core"
	"hanoi/internal/game"
	"hanoi/internal/input"
)

// KeyReader delivers single key presses without echo or line buffering
type KeyReader interface {
	ReadKey() (input.Key, error)
}

// LineReader reads edited lines for the difficulty prompt. It owns the
// terminal until closed.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// View abstracts display/output operations
type View interface {
	Render(g *game.Game, errMsg string, highlight core.Peg)
	ShowWelcome()
	ShowPrompt(prompt string)
	ShowMessage(msg string)
	ShowVictory(g *game.Game)
	ShowFarewell()
	HideCursor()
	ShowCursor()
}
