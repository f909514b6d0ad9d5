package game

import (
	"fmt"

	"hanoi/internal/core"
)

// MoveSummary describes a move that was applied
type MoveSummary struct {
	Ring int
	From core.Peg
	To   core.Peg
}

func (m MoveSummary) String() string {
	return fmt.Sprintf("Moved ring %d from %c to %c", m.Ring, m.From.Label(), m.To.Label())
}

// Game is one round of the puzzle. ApplyMove is its only mutator.
type Game struct {
	towers   [3][]int // bottom first, indexed by core.Peg.Index()
	target   core.Peg
	numRings int
	moves    int
	minMoves int
}

func New(numRings int) (*Game, error) {
	if numRings < core.MinRings || numRings > core.MaxRings {
		return nil, fmt.Errorf("%w: ring count %d outside [%d,%d]",
			core.ErrInvalidConfiguration, numRings, core.MinRings, core.MaxRings)
	}

	source := make([]int, 0, numRings)
	for size := numRings; size >= 1; size-- {
		source = append(source, size)
	}

	g := &Game{
		target:   core.PegTarget,
		numRings: numRings,
		minMoves: core.MinMoves(numRings),
	}
	g.towers[core.PegSource.Index()] = source
	return g, nil
}

func (g *Game) NumRings() int {
	return g.numRings
}

func (g *Game) Moves() int {
	return g.moves
}

func (g *Game) MinMoves() int {
	return g.minMoves
}

func (g *Game) Target() core.Peg {
	return g.target
}

// Rings returns a copy of the peg's rings, bottom first
func (g *Game) Rings(p core.Peg) []int {
	if !p.Valid() {
		return nil
	}
	tower := g.towers[p.Index()]
	out := make([]int, len(tower))
	copy(out, tower)
	return out
}

func (g *Game) TopRingOf(p core.Peg) (int, bool) {
	if !p.Valid() {
		return 0, false
	}
	tower := g.towers[p.Index()]
	if len(tower) == 0 {
		return 0, false
	}
	return tower[len(tower)-1], true
}

// ValidateMove reports the first rule the move breaks, in a fixed order
func (g *Game) ValidateMove(from, to core.Peg) error {
	if !from.Valid() || !to.Valid() {
		return core.NewMoveError(core.RejectUnknownPeg, from)
	}
	if from == to {
		return core.NewMoveError(core.RejectSameTower, from)
	}

	ring, ok := g.TopRingOf(from)
	if !ok {
		return core.NewMoveError(core.RejectEmptySource, from)
	}
	if top, ok := g.TopRingOf(to); ok && ring > top {
		return core.NewMoveError(core.RejectRingTooLarge, from)
	}
	return nil
}

func (g *Game) ApplyMove(from, to core.Peg) (MoveSummary, error) {
	if err := g.ValidateMove(from, to); err != nil {
		return MoveSummary{}, err
	}

	src := g.towers[from.Index()]
	ring := src[len(src)-1]
	g.towers[from.Index()] = src[:len(src)-1]
	g.towers[to.Index()] = append(g.towers[to.Index()], ring)
	g.moves++

	return MoveSummary{Ring: ring, From: from, To: to}, nil
}

func (g *Game) IsWon() bool {
	return len(g.towers[g.target.Index()]) == g.numRings
}

// IsPerfect reports a win in exactly the minimum number of moves
func (g *Game) IsPerfect() bool {
	return g.IsWon() && g.moves == g.minMoves
}
