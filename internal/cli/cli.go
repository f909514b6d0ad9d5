package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"hanoi/internal/core"
	"hanoi/internal/game"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	ringGlyph = "█"
	poleGlyph = "│"
	baseGlyph = "═"
)

type ColorTheme string

const (
	ThemeClassic  ColorTheme = "classic"
	ThemeContrast ColorTheme = "contrast"
	ThemeOff      ColorTheme = "off"
)

type themeColors struct {
	target   *color.Color
	selected *color.Color
	err      *color.Color
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeClassic: {
		target:   color.New(color.FgHiGreen),
		selected: color.New(color.FgHiYellow),
		err:      color.New(color.FgHiRed),
	},
	ThemeContrast: {
		target:   color.New(color.FgHiCyan, color.Bold),
		selected: color.New(color.FgBlack, color.BgHiYellow),
		err:      color.New(color.FgHiWhite, color.BgRed),
	},
}

const banner = `
▀▛▘                ▗▀▖ ▌ ▌         ▗
 ▌▞▀▖▌  ▌▞▀▖▙▀▖ ▞▀▖▐   ▙▄▌▝▀▖▛▀▖▞▀▖▄
 ▌▌ ▌▐▐▐ ▛▀ ▌   ▌ ▌▜▀  ▌ ▌▞▀▌▌ ▌▌ ▌▐
 ▘▝▀  ▘▘ ▝▀▘▘   ▝▀ ▐   ▘ ▘▝▀▘▘ ▘▝▀ ▀▘
`

type CLI struct {
	output io.Writer
	theme  ColorTheme
}

func New(output io.Writer) *CLI {
	return &CLI{
		output: output,
		theme:  ThemeClassic,
	}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: classic, contrast, off)", theme)
	}
	c.theme = theme
	return nil
}

func paint(col *color.Color, s string) string {
	if col == nil {
		return s
	}
	return col.Sprint(s)
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowPrompt(prompt string) {
	fmt.Fprint(c.output, prompt)
}

func (c *CLI) HideCursor() {
	fmt.Fprint(c.output, hideCursor)
}

func (c *CLI) ShowCursor() {
	fmt.Fprint(c.output, showCursor)
}

func (c *CLI) ShowWelcome() {
	var sb strings.Builder
	sb.WriteString(clearScreen)
	sb.WriteString(banner)
	sb.WriteString("\nA classic puzzle game: Move all rings from Tower A to Tower D\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("  • Only one ring can be moved at a time\n")
	sb.WriteString("  • A ring can only be placed on top of a larger ring\n")
	sb.WriteString("  • You can use Tower S as an auxiliary tower\n\n")
	sb.WriteString("Controls:\n")
	sb.WriteString("  • Type two tower letters to move, e.g. AD moves from A to D\n")
	sb.WriteString("  • Backspace drops the selected tower, R restarts, Q quits\n\n")
	fmt.Fprint(c.output, sb.String())
}

// Render clears the screen and draws the whole board. The error line is
// always printed, blank when there is no error, so the layout stays put.
func (c *CLI) Render(g *game.Game, errMsg string, highlight core.Peg) {
	theme := themes[c.theme]
	height := g.NumRings()
	width := 2*height + 1
	half := width / 2
	target := g.Target()

	var sb strings.Builder
	sb.WriteString(clearScreen)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Moves: %d | Minimum possible: %d\n\n", g.Moves(), g.MinMoves()))

	var towers [3][]int
	for i, p := range core.Pegs {
		towers[i] = g.Rings(p)
	}

	for level := height - 1; level >= 0; level-- {
		sb.WriteString("  ")
		for i, p := range core.Pegs {
			tower := towers[i]

			var cell string
			if level < len(tower) {
				ring := strings.Repeat(ringGlyph, 2*tower[level]-1)
				pad := strings.Repeat(" ", (width-(2*tower[level]-1))/2)
				cell = pad + ring + pad
			} else {
				pad := strings.Repeat(" ", half)
				cell = pad + poleGlyph + pad
			}

			switch {
			case p == highlight && level == len(tower)-1:
				cell = paint(theme.selected, cell)
			case p == target:
				cell = paint(theme.target, cell)
			}
			sb.WriteString(cell)
			sb.WriteString("  ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  ")
	for _, p := range core.Pegs {
		base := strings.Repeat(baseGlyph, width)
		if p == target {
			base = paint(theme.target, base)
		}
		sb.WriteString(base + "  ")
	}
	sb.WriteString("\n")

	sb.WriteString("  ")
	for _, p := range core.Pegs {
		pad := strings.Repeat(" ", half)
		label := pad + string(p.Label()) + pad
		if p == target {
			label = paint(theme.target, label)
		}
		sb.WriteString(label + "  ")
	}
	sb.WriteString("\n\n")

	if errMsg != "" {
		sb.WriteString(paint(theme.err, "  ⚠ "+errMsg))
	}
	sb.WriteString("\n")

	fmt.Fprint(c.output, sb.String())
}

func (c *CLI) ShowVictory(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("CONGRATULATIONS! You won in %d moves!", g.Moves()))
	if g.IsPerfect() {
		c.ShowMessage("PERFECT! You solved it in the minimum number of moves!")
	} else {
		c.ShowMessage(fmt.Sprintf("The minimum possible was %d moves.", g.MinMoves()))
	}
}

func (c *CLI) ShowFarewell() {
	c.ShowMessage("\nThanks for playing! Goodbye!\n")
}
