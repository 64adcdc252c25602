// Package engine defines the interface between game engines and the
// presentation layers that drive them.
package engine

import "checkers-local/types"

// GameEngine defines the interface for playing a local game of checkers.
type GameEngine interface {
	// Start sets up the board and evaluates the first turn.
	Start() error

	// GetBoardState returns a snapshot of the current game.
	GetBoardState() *types.BoardState

	// LegalMoves returns the moves the active player may submit. While a
	// capture chain is pending these are the forced continuation jumps.
	LegalMoves() []types.Move

	// SubmitMove plays the move from -> to for the active player.
	// Returns an error if the move is rejected; the game is unchanged then.
	SubmitMove(from, to types.Pos) (types.MoveOutcome, error)

	// SubmitChainContinuation plays the next jump of a pending capture chain.
	SubmitChainContinuation(to types.Pos) (types.MoveOutcome, error)

	// Outcome returns the current game outcome.
	Outcome() types.Outcome

	// OnMove registers a callback for every accepted move or jump.
	// boardState is passed directly to avoid lock contention.
	OnMove(func(mv types.Move, player types.Player, boardState *types.BoardState))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome types.Outcome))

	// Close releases the engine.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	FirstPlayer types.Player // Player1 (white) in a standard game
	Player1Name string
	Player2Name string
	// Position is an optional position string (see types.ParseBoard) used
	// instead of the standard layout.
	Position string
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		FirstPlayer: types.Player1,
		Player1Name: "White",
		Player2Name: "Black",
	}
}

// PlayerName returns the display name configured for p.
func (c GameConfig) PlayerName(p types.Player) string {
	name := c.Player1Name
	if p == types.Player2 {
		name = c.Player2Name
	}
	if name == "" {
		return p.String()
	}
	return name
}
