package core

import (
	"errors"
	"fmt"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

type RejectionKind int

const (
	RejectUnknownPeg RejectionKind = iota + 1
	RejectSameTower
	RejectEmptySource
	RejectRingTooLarge
)

func (k RejectionKind) String() string {
	switch k {
	case RejectUnknownPeg:
		return "unknown_peg"
	case RejectSameTower:
		return "same_tower"
	case RejectEmptySource:
		return "empty_source"
	case RejectRingTooLarge:
		return "ring_too_large"
	default:
		return "unknown"
	}
}

// MoveError is an illegal move. Reason is shown to the player verbatim.
type MoveError struct {
	Kind   RejectionKind
	Reason string
}

func (e *MoveError) Error() string {
	return e.Reason
}

func NewMoveError(kind RejectionKind, from Peg) *MoveError {
	var reason string
	switch kind {
	case RejectUnknownPeg:
		reason = "Invalid tower selection!"
	case RejectSameTower:
		reason = "Cannot move to the same tower!"
	case RejectEmptySource:
		reason = fmt.Sprintf("Tower %c is empty!", from.Label())
	case RejectRingTooLarge:
		reason = "Cannot place a larger ring on a smaller ring!"
	default:
		reason = "Invalid move!"
	}
	return &MoveError{Kind: kind, Reason: reason}
}

// RejectionOf extracts the rejection kind from err, zero if err is not a MoveError.
func RejectionOf(err error) RejectionKind {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Kind
	}
	return 0
}
