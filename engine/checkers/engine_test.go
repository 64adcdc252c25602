package checkers

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"checkers-local/engine"
	"checkers-local/types"
)

func startEngine(t *testing.T, cfg engine.GameConfig) *Engine {
	t.Helper()
	e := NewEngine(cfg)
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestEngineBeforeStart(t *testing.T) {
	e := NewEngine(engine.DefaultConfig())
	if _, err := e.SubmitMove(at(2, 1), at(3, 0)); err == nil {
		t.Fatal("expected error before Start")
	}
	if e.LegalMoves() != nil {
		t.Fatal("no legal moves before Start")
	}
	if !e.Outcome().Ongoing() {
		t.Fatal("outcome should be empty before Start")
	}
}

func TestEngineStartInvalidPosition(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Position = "not a board"
	if err := NewEngine(cfg).Start(); err == nil || !strings.Contains(err.Error(), "start position") {
		t.Fatalf("expected start position error, got %v", err)
	}
}

func TestEngineStartRejectsUnreachablePosition(t *testing.T) {
	tests := []struct {
		name     string
		position string
	}{
		{"every dark square filled", ".w.w.w.w/w.w.w.w./.w.w.w.w/w.w.w.w./.w.w.w.w/b.b.b.b./.b.b.b.b/b.b.b.b."},
		{"thirteen black pieces", "......../......../......../......../.b....../b.b.b.b./.b.b.b.b/b.b.b.b."},
		{"white man on far row", "......../......../...b..../......../......../......../......../w......."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := engine.DefaultConfig()
			cfg.Position = tt.position
			e := NewEngine(cfg)
			err := e.Start()
			if err == nil || !strings.Contains(err.Error(), "start position") {
				t.Fatalf("expected start position error, got %v", err)
			}
			if e.GetBoardState().MoveNumber != 0 || e.LegalMoves() != nil {
				t.Fatal("rejected position must not start a game")
			}
		})
	}
}

func TestEngineCallbacksRegisteredConcurrently(t *testing.T) {
	e := startEngine(t, engine.DefaultConfig())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			e.OnMove(func(types.Move, types.Player, *types.BoardState) {})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			e.OnGameEnd(func(types.Outcome) {})
		}
	}()

	pending := false
	for i := 0; i < 20 && e.Outcome().Ongoing(); i++ {
		legal := e.LegalMoves()
		if len(legal) == 0 {
			t.Fatal("ongoing game without legal moves")
		}
		var out types.MoveOutcome
		var err error
		if pending {
			out, err = e.SubmitChainContinuation(legal[0].To)
		} else {
			out, err = e.SubmitMove(legal[0].From, legal[0].To)
		}
		if err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
		pending = out.ChainPending
	}
	wg.Wait()

	var calls int
	e.OnMove(func(types.Move, types.Player, *types.BoardState) { calls++ })
	if !e.Outcome().Ongoing() {
		return
	}
	legal := e.LegalMoves()
	if pending {
		_, _ = e.SubmitChainContinuation(legal[0].To)
	} else {
		_, _ = e.SubmitMove(legal[0].From, legal[0].To)
	}
	if calls != 1 {
		t.Fatalf("callback registered last ran %d times, want 1", calls)
	}
}

func TestEngineMoveCallback(t *testing.T) {
	e := startEngine(t, engine.DefaultConfig())

	var calls int
	var gotPlayer types.Player
	var gotState *types.BoardState
	e.OnMove(func(mv types.Move, player types.Player, state *types.BoardState) {
		calls++
		gotPlayer = player
		gotState = state
		// Callbacks run outside the lock.
		_ = e.GetBoardState()
	})

	if _, err := e.SubmitMove(at(2, 1), at(3, 0)); err != nil {
		t.Fatalf("SubmitMove: %v", err)
	}
	if calls != 1 || gotPlayer != types.Player1 {
		t.Fatalf("callback calls=%d player=%v", calls, gotPlayer)
	}
	if gotState.PlayerToMove != types.Player2 || gotState.MoveNumber != 1 {
		t.Errorf("unexpected state: to move %v, move %d", gotState.PlayerToMove, gotState.MoveNumber)
	}
	if gotState.LastMove == nil || gotState.LastMove.To != at(3, 0) {
		t.Errorf("last move = %v", gotState.LastMove)
	}
	if gotState.ID == "" || gotState.ID != e.ID() {
		t.Errorf("state id %q, engine id %q", gotState.ID, e.ID())
	}

	_, err := e.SubmitMove(at(2, 3), at(3, 4))
	if !errors.Is(err, NotOwnPiece) {
		t.Fatalf("expected NotOwnPiece, got %v", err)
	}
	if calls != 1 {
		t.Fatal("callback fired for a rejected move")
	}
}

func TestEngineSnapshotIsCopy(t *testing.T) {
	e := startEngine(t, engine.DefaultConfig())
	state := e.GetBoardState()
	state.Board.Set(at(3, 0), types.KingOf(types.Player2))
	state.LegalMoves[0] = types.Move{}

	fresh := e.GetBoardState()
	if !fresh.Board.At(at(3, 0)).IsEmpty() {
		t.Fatal("snapshot board shares memory with the engine")
	}
	if fresh.LegalMoves[0] == (types.Move{}) {
		t.Fatal("snapshot legal moves share memory with the engine")
	}
}

func TestEngineChainAndHistory(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Position = strings.Join([]string{
		"........",
		"........",
		".w......",
		"..b.....",
		"........",
		"....b...",
		"........",
		"b.......",
	}, "/")
	e := startEngine(t, cfg)

	out, err := e.SubmitMove(at(2, 1), at(4, 3))
	if err != nil || !out.ChainPending {
		t.Fatalf("first jump: %+v, %v", out, err)
	}
	state := e.GetBoardState()
	if state.Phase != types.AwaitingChainContinuation || state.ChainFrom == nil || *state.ChainFrom != at(4, 3) {
		t.Fatalf("unexpected chain state: %+v", state)
	}
	if got := state.Targets(at(4, 3)); len(got) != 1 || got[0] != at(6, 5) {
		t.Fatalf("targets = %v", got)
	}

	if _, err := e.SubmitChainContinuation(at(6, 5)); err != nil {
		t.Fatalf("second jump: %v", err)
	}
	if _, err := e.SubmitMove(at(7, 0), at(6, 1)); err != nil {
		t.Fatalf("black reply: %v", err)
	}

	hist := e.History()
	if len(hist) != 2 {
		t.Fatalf("history has %d turns, want 2", len(hist))
	}
	if got := hist[0].Notation(); got != "b3xd5xf7" {
		t.Errorf("first turn = %q", got)
	}
	if got := hist[1].Notation(); got != "a8-b7" {
		t.Errorf("second turn = %q", got)
	}
}

func TestEngineGameEnd(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Position = "......../......../.w....../..b...../......../......../......../........"
	e := startEngine(t, cfg)

	var ended []types.Outcome
	e.OnGameEnd(func(o types.Outcome) { ended = append(ended, o) })

	if _, err := e.SubmitMove(at(2, 1), at(4, 3)); err != nil {
		t.Fatalf("SubmitMove: %v", err)
	}
	want := types.Outcome{Winner: types.Player1, Reason: types.NoPieces}
	if len(ended) != 1 || ended[0] != want {
		t.Fatalf("end callback got %v, want [%v]", ended, want)
	}
	if !e.GetBoardState().Finished() {
		t.Fatal("state should report a finished game")
	}
	if _, err := e.SubmitMove(at(4, 3), at(5, 4)); !errors.Is(err, GameFinished) {
		t.Fatalf("expected GameFinished, got %v", err)
	}
}

func TestEngineDecidedAtStart(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.FirstPlayer = types.Player1
	cfg.Position = "......../......../......../......../......../......../.w....../b.b....."

	e := NewEngine(cfg)
	var ended types.Outcome
	e.OnGameEnd(func(o types.Outcome) { ended = o })
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer e.Close()

	want := types.Outcome{Winner: types.Player2, Reason: types.NoLegalMoves}
	if ended != want || e.Outcome() != want {
		t.Fatalf("outcome = %v, callback = %v, want %v", e.Outcome(), ended, want)
	}
}

func TestEngineClose(t *testing.T) {
	e := NewEngine(engine.DefaultConfig())
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	e.Close()
	if _, err := e.SubmitMove(at(2, 1), at(3, 0)); err == nil {
		t.Fatal("expected error after Close")
	}
}
