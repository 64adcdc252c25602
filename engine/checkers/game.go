package checkers

import (
	"fmt"
	"slices"

	"checkers-local/types"
)

// Game is the turn state machine of one game. It is not safe for concurrent
// use; Engine adds locking for presentation layers.
type Game struct {
	board   types.Board
	turn    types.Player
	phase   types.Phase
	outcome types.Outcome

	// legal holds the moves computed when the current turn started, or the
	// forced jumps from chainAt while a chain is pending.
	legal   []types.Move
	chainAt types.Pos
}

// NewGame starts a game from the standard layout with first to move.
func NewGame(first types.Player) *Game {
	return NewGameFromBoard(types.NewBoard(), first)
}

// NewGameFromBoard starts a game from an arbitrary position.
func NewGameFromBoard(b types.Board, first types.Player) *Game {
	if first != types.Player2 {
		first = types.Player1
	}
	g := &Game{board: b, turn: first}
	g.beginTurn()
	return g
}

// Board returns a copy of the board.
func (g *Game) Board() types.Board {
	return g.board
}

// Turn returns the active player.
func (g *Game) Turn() types.Player {
	return g.turn
}

// Phase returns the current state machine phase.
func (g *Game) Phase() types.Phase {
	return g.phase
}

// Outcome returns the game outcome.
func (g *Game) Outcome() types.Outcome {
	return g.outcome
}

// ChainFrom returns the square of the piece that must keep capturing.
func (g *Game) ChainFrom() (types.Pos, bool) {
	return g.chainAt, g.phase == types.AwaitingChainContinuation
}

// LegalMoves returns the moves the active player may submit now.
func (g *Game) LegalMoves() []types.Move {
	if g.phase == types.GameOver {
		return nil
	}
	return slices.Clone(g.legal)
}

// Landings returns the forced landing squares of a pending chain.
func (g *Game) Landings() []types.Pos {
	if g.phase != types.AwaitingChainContinuation {
		return nil
	}
	return landings(g.legal)
}

// beginTurn evaluates the start of g.turn's turn.
func (g *Game) beginTurn() {
	g.legal = nil
	switch {
	case g.board.Count(g.turn.Opponent()) == 0:
		g.finish(g.turn, types.NoPieces)
		return
	case g.board.Count(g.turn) == 0:
		g.finish(g.turn.Opponent(), types.NoPieces)
		return
	}
	g.legal = AllLegalMoves(&g.board, g.turn)
	if len(g.legal) == 0 {
		g.finish(g.turn.Opponent(), types.NoLegalMoves)
		return
	}
	g.phase = types.AwaitingInitialMove
}

func (g *Game) finish(winner types.Player, reason types.WinReason) {
	g.phase = types.GameOver
	g.legal = nil
	g.outcome = types.Outcome{Winner: winner, Reason: reason}
}

// SubmitMove plays the initial move of a turn. A rejected move leaves the
// game unchanged.
func (g *Game) SubmitMove(from, to types.Pos) (types.MoveOutcome, error) {
	reject := func(r RejectionReason) (types.MoveOutcome, error) {
		return types.MoveOutcome{}, &MoveError{Reason: r, From: &from, To: to}
	}
	switch g.phase {
	case types.GameOver:
		return reject(GameFinished)
	case types.AwaitingChainContinuation:
		return reject(ChainPending)
	}
	if !from.InBounds() || !to.InBounds() {
		return reject(BadSquare)
	}
	if !to.IsDark() {
		return reject(NotDarkSquare)
	}
	if !g.board.At(from).BelongsTo(g.turn) {
		return reject(NotOwnPiece)
	}
	if !g.board.At(to).IsEmpty() {
		return reject(DestinationOccupied)
	}
	mv, ok := findMove(g.legal, from, to)
	if !ok {
		return reject(NotInLegalSet)
	}
	return g.play(mv), nil
}

// SubmitChainContinuation plays the next jump of a pending capture chain.
func (g *Game) SubmitChainContinuation(to types.Pos) (types.MoveOutcome, error) {
	reject := func(r RejectionReason) (types.MoveOutcome, error) {
		return types.MoveOutcome{}, &MoveError{Reason: r, To: to}
	}
	switch g.phase {
	case types.GameOver:
		return reject(GameFinished)
	case types.AwaitingInitialMove:
		return reject(NoChainPending)
	}
	if !to.InBounds() {
		return reject(BadSquare)
	}
	mv, ok := findMove(g.legal, g.chainAt, to)
	if !ok {
		return reject(NotAForcedLanding)
	}
	return g.play(mv), nil
}

// play applies an accepted move and advances the state machine.
func (g *Game) play(mv types.Move) types.MoveOutcome {
	if debugAssertions && !slices.Contains(g.legal, mv) {
		panic(fmt.Sprintf("checkers: move %s is not in the legal set", mv))
	}
	player := g.turn
	ApplyMove(&g.board, mv)
	out := types.MoveOutcome{Move: mv, Player: player}

	if mv.Capture {
		g.chainAt = mv.To
		g.legal = CaptureMovesFrom(&g.board, mv.To, player)
		if len(g.legal) > 0 {
			g.phase = types.AwaitingChainContinuation
			out.ChainPending = true
			out.Landings = landings(g.legal)
			out.NextPlayer = player
			return out
		}
	}

	out.Promoted = MaybePromote(&g.board, mv.To)
	g.phase = types.TurnComplete
	out.TurnComplete = true

	g.turn = player.Opponent()
	g.beginTurn()
	out.Outcome = g.outcome
	if g.outcome.Ongoing() {
		out.NextPlayer = g.turn
	}
	return out
}
