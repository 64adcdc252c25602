package types

// Phase is the position of a game in the turn state machine.
type Phase int

const (
	AwaitingInitialMove Phase = iota
	AwaitingChainContinuation
	TurnComplete
	GameOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingInitialMove:
		return "awaiting move"
	case AwaitingChainContinuation:
		return "awaiting chain continuation"
	case TurnComplete:
		return "turn complete"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// BoardState is a snapshot of a game for presentation layers.
// It is a copy: changing it never affects the engine.
type BoardState struct {
	ID           string
	Board        Board
	PlayerToMove Player
	Phase        Phase
	MoveNumber   int
	// ChainFrom is the square of the piece that must keep capturing, nil
	// outside of a chain.
	ChainFrom  *Pos
	LegalMoves []Move
	LastMove   *Move
	Outcome    Outcome
}

// Finished returns true if the game is over.
func (s *BoardState) Finished() bool {
	return s.Phase == GameOver
}

// MustCapture reports whether the legal moves are captures only.
func (s *BoardState) MustCapture() bool {
	return len(s.LegalMoves) > 0 && s.LegalMoves[0].Capture
}

// Pieces returns how many pieces p has.
func (s *BoardState) Pieces(p Player) int {
	return s.Board.Count(p)
}

// Targets returns the legal destinations of the piece on from.
func (s *BoardState) Targets(from Pos) []Pos {
	var out []Pos
	for _, m := range s.LegalMoves {
		if m.From == from {
			out = append(out, m.To)
		}
	}
	return out
}

// Movable reports whether the piece on from has at least one legal move.
func (s *BoardState) Movable(from Pos) bool {
	return len(s.Targets(from)) > 0
}
