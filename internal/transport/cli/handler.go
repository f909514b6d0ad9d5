package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"hanoi/internal/config"
	"hanoi/internal/core"
	"hanoi/internal/game"
	"hanoi/internal/input"
	"hanoi/internal/transport"
)

// ErrInterrupted aborts the whole session. It is not a move error.
var ErrInterrupted = errors.New("interrupted")

const (
	movePrompt      = "  Your move: "
	invalidInputMsg = "Invalid input!"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdMove
	CmdQuit
	CmdRestart
)

type Command struct {
	Type CommandType
	From core.Peg
	To   core.Peg
}

// Outcome is how a round ended
type Outcome int

const (
	OutcomeQuit Outcome = iota + 1
	OutcomeRestart
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeRestart:
		return "restart"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

type turnState int

const (
	awaitingFirstKey turnState = iota
	awaitingSecondKey
)

type Options struct {
	// Rings skips the difficulty prompt when non-zero
	Rings int
	// RawMode runs a round with the terminal in raw mode
	RawMode func(fn func() error) error
	Logger  *zap.Logger
}

type CLIHandler struct {
	keys      transport.KeyReader
	openLines func() (transport.LineReader, error)
	view      transport.View
	rings     int
	rawMode   func(fn func() error) error
	log       *zap.Logger
}

func New(keys transport.KeyReader, openLines func() (transport.LineReader, error), view transport.View, opts Options) *CLIHandler {
	h := &CLIHandler{
		keys:      keys,
		openLines: openLines,
		view:      view,
		rings:     opts.Rings,
		rawMode:   opts.RawMode,
		log:       opts.Logger,
	}
	if h.rawMode == nil {
		h.rawMode = func(fn func() error) error { return fn() }
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	return h
}

// Run plays rounds until the player quits, wins or interrupts.
// An interrupt is returned as ErrInterrupted after the farewell is shown.
func (h *CLIHandler) Run() error {
	for {
		numRings, err := h.SelectDifficulty()
		if err != nil {
			return err
		}

		g, err := game.New(numRings)
		if err != nil {
			return fmt.Errorf("could not start the game: %w", err)
		}

		var outcome Outcome
		err = h.rawMode(func() error {
			h.view.HideCursor()
			defer h.view.ShowCursor()

			var err error
			outcome, err = h.PlayRound(g)
			return err
		})
		if errors.Is(err, ErrInterrupted) {
			h.view.ShowMessage("\n\nGame interrupted. Goodbye!\n")
			return err
		}
		if err != nil {
			return err
		}

		if outcome != OutcomeRestart {
			return nil
		}
	}
}

// SelectDifficulty asks for the ring count until a valid one is typed
func (h *CLIHandler) SelectDifficulty() (int, error) {
	if h.rings != 0 {
		return h.rings, nil
	}

	h.view.ShowWelcome()

	lines, err := h.openLines()
	if err != nil {
		return 0, fmt.Errorf("cannot open prompt: %w", err)
	}
	defer lines.Close()

	for {
		line, err := lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			h.view.ShowMessage("\n\nGoodbye!\n")
			return 0, ErrInterrupted
		}
		if err != nil {
			return 0, fmt.Errorf("cannot read ring count: %w", err)
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			h.view.ShowMessage("Please enter a valid number.")
			continue
		}
		if err := config.ValidateRings(n); err != nil {
			h.log.Debug("ring count rejected", zap.Error(err))
			h.view.ShowMessage(fmt.Sprintf("Please enter a number between %d and %d.", core.MinRings, core.MaxRings))
			continue
		}
		return n, nil
	}
}

// PlayRound runs one round on g until it is won, quit or restarted
func (h *CLIHandler) PlayRound(g *game.Game) (Outcome, error) {
	log := h.log.With(zap.String("round", uuid.New().String()))
	log.Info("round started", zap.Int("rings", g.NumRings()), zap.Int("min_moves", g.MinMoves()))

	errMsg := ""
	for {
		if g.IsWon() {
			h.view.Render(g, "", core.PegNone)
			h.view.ShowVictory(g)
			log.Info("round ended",
				zap.Stringer("outcome", OutcomeWon),
				zap.Int("moves", g.Moves()),
				zap.Bool("perfect", g.IsPerfect()))
			return OutcomeWon, nil
		}

		h.view.Render(g, errMsg, core.PegNone)
		errMsg = ""
		h.view.ShowPrompt(movePrompt)

		cmd, err := h.ReadTurn(g)
		if err != nil {
			log.Info("round aborted", zap.Error(err), zap.Int("moves", g.Moves()))
			return 0, err
		}

		switch cmd.Type {
		case CmdQuit:
			h.view.ShowFarewell()
			log.Info("round ended", zap.Stringer("outcome", OutcomeQuit), zap.Int("moves", g.Moves()))
			return OutcomeQuit, nil

		case CmdRestart:
			log.Info("round ended", zap.Stringer("outcome", OutcomeRestart), zap.Int("moves", g.Moves()))
			return OutcomeRestart, nil

		case CmdMove:
			summary, err := g.ApplyMove(cmd.From, cmd.To)
			if err != nil {
				errMsg = err.Error()
				log.Debug("move rejected",
					zap.Stringer("from", cmd.From),
					zap.Stringer("to", cmd.To),
					zap.String("kind", core.RejectionOf(err).String()))
				continue
			}
			log.Debug(summary.String(), zap.Int("moves", g.Moves()))

		default:
			errMsg = invalidInputMsg
		}
	}
}

// ReadTurn reads keys until they form a command. Picking a source peg that
// holds a ring redraws the board with its top ring highlighted.
func (h *CLIHandler) ReadTurn(g *game.Game) (Command, error) {
	state := awaitingFirstKey
	from := core.PegNone

	for {
		key, err := h.keys.ReadKey()
		if errors.Is(err, io.EOF) {
			return Command{}, ErrInterrupted
		}
		if err != nil {
			return Command{}, fmt.Errorf("cannot read key: %w", err)
		}
		if key.Code == input.CodeInterrupt {
			return Command{}, ErrInterrupted
		}

		switch state {
		case awaitingFirstKey:
			if key.Code != input.CodeRune {
				continue
			}

			switch unicode.ToUpper(key.Rune) {
			case 'Q':
				h.view.ShowMessage("Q")
				return Command{Type: CmdQuit}, nil
			case 'R':
				h.view.ShowMessage("R")
				return Command{Type: CmdRestart}, nil
			}

			p, ok := core.ParsePeg(key.Rune)
			if !ok {
				continue
			}
			from = p
			state = awaitingSecondKey

			if _, ok := g.TopRingOf(p); ok {
				h.view.Render(g, "", p)
				h.view.ShowPrompt(movePrompt + string(p.Label()))
			} else {
				h.view.ShowPrompt(string(p.Label()))
			}

		case awaitingSecondKey:
			switch key.Code {
			case input.CodeBackspace:
				from = core.PegNone
				state = awaitingFirstKey
				h.view.Render(g, "", core.PegNone)
				h.view.ShowPrompt(movePrompt)

			case input.CodeRune:
				to, ok := core.ParsePeg(key.Rune)
				if !ok {
					continue
				}
				h.view.ShowMessage(string(to.Label()))
				return Command{Type: CmdMove, From: from, To: to}, nil
			}
		}
	}
}
