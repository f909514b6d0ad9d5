package core

import "unicode"

const (
	MinRings = 1
	MaxRings = 10
)

// Peg identifies one of the three fixed towers. The zero value means no peg.
type Peg int

const (
	PegNone Peg = iota
	PegSource
	PegAuxiliary
	PegTarget
)

// Pegs lists the towers in display order, left to right.
var Pegs = [3]Peg{PegSource, PegAuxiliary, PegTarget}

func (p Peg) Valid() bool {
	return p >= PegSource && p <= PegTarget
}

// Index returns the position of the peg in Pegs, -1 for an invalid peg.
func (p Peg) Index() int {
	if !p.Valid() {
		return -1
	}
	return int(p - PegSource)
}

// Label is the key the player types for the peg, also printed under it.
func (p Peg) Label() byte {
	switch p {
	case PegSource:
		return 'A'
	case PegAuxiliary:
		return 'S'
	case PegTarget:
		return 'D'
	default:
		return '-'
	}
}

func (p Peg) String() string {
	switch p {
	case PegSource:
		return "source"
	case PegAuxiliary:
		return "auxiliary"
	case PegTarget:
		return "target"
	default:
		return "none"
	}
}

// ParsePeg maps a typed key to a peg, ignoring case.
func ParsePeg(r rune) (Peg, bool) {
	switch unicode.ToUpper(r) {
	case 'A':
		return PegSource, true
	case 'S':
		return PegAuxiliary, true
	case 'D':
		return PegTarget, true
	default:
		return PegNone, false
	}
}

// MinMoves is the optimal solution length for n rings.
func MinMoves(n int) int {
	return 1<<n - 1
}
