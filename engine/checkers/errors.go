package checkers

import (
	"errors"
	"fmt"

	"checkers-local/types"
)

// RejectionReason explains why a submission was refused. Reasons are errors
// themselves so callers can match them with errors.Is.
type RejectionReason int

const (
	NotDarkSquare RejectionReason = iota + 1
	NotOwnPiece
	DestinationOccupied
	NotInLegalSet
	BadSquare
	NotAForcedLanding
	ChainPending
	NoChainPending
	GameFinished
)

var reasonText = map[RejectionReason]string{
	NotDarkSquare:       "destination is not a dark square",
	NotOwnPiece:         "origin does not hold one of your pieces",
	DestinationOccupied: "destination is not empty",
	NotInLegalSet:       "illegal move",
	BadSquare:           "square is off the board",
	NotAForcedLanding:   "not one of the forced landing squares",
	ChainPending:        "a capture chain must be continued first",
	NoChainPending:      "no capture chain in progress",
	GameFinished:        "game is over",
}

func (r RejectionReason) Error() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return fmt.Sprintf("rejection(%d)", int(r))
}

// Key returns the message catalog key for r.
func (r RejectionReason) Key() string {
	switch r {
	case NotDarkSquare:
		return "reject.not_dark_square"
	case NotOwnPiece:
		return "reject.not_own_piece"
	case DestinationOccupied:
		return "reject.destination_occupied"
	case NotInLegalSet:
		return "reject.not_in_legal_set"
	case BadSquare:
		return "reject.bad_square"
	case NotAForcedLanding:
		return "reject.not_a_forced_landing"
	case ChainPending:
		return "reject.chain_pending"
	case NoChainPending:
		return "reject.no_chain_pending"
	case GameFinished:
		return "reject.game_finished"
	}
	return "reject.unknown"
}

// MoveError is returned for every rejected submission.
type MoveError struct {
	Reason RejectionReason
	From   *types.Pos // nil for chain continuations
	To     types.Pos
}

func (e *MoveError) Error() string {
	if e.From != nil {
		return fmt.Sprintf("move %s-%s rejected: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("landing %s rejected: %s", e.To, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return e.Reason
}

// Reason extracts the rejection reason from err, if any.
func Reason(err error) (RejectionReason, bool) {
	var r RejectionReason
	if errors.As(err, &r) {
		return r, true
	}
	return 0, false
}
