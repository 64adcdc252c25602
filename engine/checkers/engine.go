package checkers

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"checkers-local/engine"
	"checkers-local/history"
	"checkers-local/logging"
	"checkers-local/types"
)

// Engine implements engine.GameEngine for two local players sharing one
// board.
type Engine struct {
	config engine.GameConfig
	id     string
	game   *Game
	record *history.Record
	moves  int
	last   *types.Move
	log    *zap.Logger

	moveCallback func(mv types.Move, player types.Player, boardState *types.BoardState)
	endCallback  func(outcome types.Outcome)

	mu sync.Mutex
}

var _ engine.GameEngine = (*Engine)(nil)

// NewEngine creates an engine with the given configuration. Start must be
// called before moves are submitted.
func NewEngine(cfg engine.GameConfig) *Engine {
	return &Engine{
		config: cfg,
		record: history.NewRecord(),
	}
}

// Start sets up the board and evaluates the first turn.
func (e *Engine) Start() error {
	board := types.NewBoard()
	if e.config.Position != "" {
		b, err := types.ParseBoard(e.config.Position)
		if err != nil {
			return fmt.Errorf("invalid start position: %w", err)
		}
		board = b
	}

	e.mu.Lock()
	e.id = uuid.NewString()
	e.log = logging.L().With(zap.String("game", e.id))
	e.game = NewGameFromBoard(board, e.config.FirstPlayer)
	e.record = history.NewRecord()
	e.moves = 0
	e.last = nil
	outcome := e.game.Outcome()
	e.log.Info("game started",
		zap.Stringer("first", e.game.Turn()),
		zap.Bool("custom_position", e.config.Position != ""),
		zap.Int("legal_moves", len(e.game.LegalMoves())))
	e.mu.Unlock()

	// A custom position can be decided before anyone moves.
	if !outcome.Ongoing() {
		e.gameOver(outcome)
	}
	return nil
}

// ID returns the identifier of the current game.
func (e *Engine) ID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

// History returns the turns played so far.
func (e *Engine) History() []history.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record.All()
}

// GetBoardState returns a snapshot of the current game.
func (e *Engine) GetBoardState() *types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// LegalMoves returns the moves the active player may submit now.
func (e *Engine) LegalMoves() []types.Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return nil
	}
	return e.game.LegalMoves()
}

// Outcome returns the current game outcome.
func (e *Engine) Outcome() types.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return types.Outcome{}
	}
	return e.game.Outcome()
}

// SubmitMove plays the initial move of the active player's turn.
func (e *Engine) SubmitMove(from, to types.Pos) (types.MoveOutcome, error) {
	return e.submit(func(g *Game) (types.MoveOutcome, error) {
		return g.SubmitMove(from, to)
	})
}

// SubmitChainContinuation plays the next forced jump of a capture chain.
func (e *Engine) SubmitChainContinuation(to types.Pos) (types.MoveOutcome, error) {
	return e.submit(func(g *Game) (types.MoveOutcome, error) {
		return g.SubmitChainContinuation(to)
	})
}

func (e *Engine) submit(play func(g *Game) (types.MoveOutcome, error)) (types.MoveOutcome, error) {
	e.mu.Lock()
	if e.game == nil {
		e.mu.Unlock()
		return types.MoveOutcome{}, fmt.Errorf("engine not started")
	}

	player := e.game.Turn()
	out, err := play(e.game)
	if err != nil {
		e.log.Debug("move rejected", zap.Stringer("player", player), zap.Error(err))
		e.mu.Unlock()
		return out, err
	}

	e.moves++
	mv := out.Move
	e.last = &mv
	e.record.AddMove(player, mv)
	if out.TurnComplete {
		e.record.CompleteTurn(out.Promoted)
	}
	e.log.Info("move played",
		zap.Stringer("player", player),
		zap.Stringer("move", mv),
		zap.Bool("chain_pending", out.ChainPending),
		zap.Bool("promoted", out.Promoted))
	if out.ChainPending {
		e.log.Debug("capture chain continues",
			zap.Stringer("from", mv.To),
			zap.String("landings", FormatSquares(out.Landings)))
	}

	boardStateCopy := e.snapshot()
	onMove := e.moveCallback
	e.mu.Unlock()

	// Notify callbacks outside the lock so they may call back into the engine.
	if onMove != nil {
		onMove(mv, player, boardStateCopy)
	}
	if !out.Outcome.Ongoing() {
		e.gameOver(out.Outcome)
	}
	return out, nil
}

func (e *Engine) gameOver(outcome types.Outcome) {
	e.mu.Lock()
	e.log.Info("game over",
		zap.Stringer("winner", outcome.Winner),
		zap.Stringer("reason", outcome.Reason),
		zap.Int("moves", e.moves))
	onEnd := e.endCallback
	e.mu.Unlock()
	if onEnd != nil {
		onEnd(outcome)
	}
}

// snapshot copies the game state. Must be called while holding the lock.
func (e *Engine) snapshot() *types.BoardState {
	if e.game == nil {
		return &types.BoardState{}
	}
	state := &types.BoardState{
		ID:           e.id,
		Board:        e.game.Board(),
		PlayerToMove: e.game.Turn(),
		Phase:        e.game.Phase(),
		MoveNumber:   e.moves,
		LegalMoves:   e.game.LegalMoves(),
		Outcome:      e.game.Outcome(),
	}
	if pos, ok := e.game.ChainFrom(); ok {
		state.ChainFrom = &pos
	}
	if e.last != nil {
		last := *e.last
		state.LastMove = &last
	}
	return state
}

// OnMove registers a callback for every accepted move or jump.
func (e *Engine) OnMove(callback func(mv types.Move, player types.Player, boardState *types.BoardState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (e *Engine) OnGameEnd(callback func(outcome types.Outcome)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.endCallback = callback
}

// Close ends the engine. Submissions afterwards fail.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game != nil {
		e.log.Info("game closed", zap.Int("moves", e.moves))
	}
	e.game = nil
}
