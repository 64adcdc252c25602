package history

import (
	"testing"

	"checkers-local/types"
)

func pos(s string) types.Pos {
	return types.Pos{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}
}

func step(from, to string) types.Move {
	return types.Move{From: pos(from), To: pos(to)}
}

func jump(from, over, to string) types.Move {
	return types.Move{From: pos(from), To: pos(to), Capture: true, Captured: pos(over)}
}

func TestNewRecord(t *testing.T) {
	r := NewRecord()
	if r.Len() != 0 {
		t.Fatalf("new record should be empty, got %d entries", r.Len())
	}
	if got, skipped := r.Tail(5); len(got) != 0 || skipped != 0 {
		t.Fatalf("Tail on empty record = %v, %d", got, skipped)
	}
}

func TestRecordSimpleMoves(t *testing.T) {
	r := NewRecord()
	r.AddMove(types.Player1, step("b3", "a4"))
	r.CompleteTurn(false)
	r.AddMove(types.Player2, step("c6", "d5"))
	r.CompleteTurn(false)

	if r.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", r.Len())
	}
	all := r.All()
	if all[0].Notation() != "b3-a4" {
		t.Errorf("first entry = %q, want b3-a4", all[0].Notation())
	}
	if all[1].Player != types.Player2 || all[1].Notation() != "c6-d5" {
		t.Errorf("second entry = %v %q", all[1].Player, all[1].Notation())
	}
}

func TestRecordChainExtendsTurn(t *testing.T) {
	r := NewRecord()
	r.AddMove(types.Player1, jump("c3", "d4", "e5"))
	entry := r.AddMove(types.Player1, jump("e5", "f6", "g7"))
	r.CompleteTurn(false)

	if r.Len() != 1 {
		t.Fatalf("chain should stay one entry, got %d", r.Len())
	}
	if entry.Captures != 2 {
		t.Errorf("captures = %d, want 2", entry.Captures)
	}
	if got := r.All()[0].Notation(); got != "c3xe5xg7" {
		t.Errorf("notation = %q, want c3xe5xg7", got)
	}
}

func TestRecordPromotionSuffix(t *testing.T) {
	r := NewRecord()
	r.AddMove(types.Player1, step("b7", "c8"))
	r.CompleteTurn(true)
	if got := r.All()[0].Notation(); got != "b7-c8K" {
		t.Errorf("notation = %q, want b7-c8K", got)
	}
}

func TestRecordNewTurnAfterComplete(t *testing.T) {
	r := NewRecord()
	r.AddMove(types.Player1, jump("c3", "d4", "e5"))
	r.CompleteTurn(false)
	// Same player and square, but the turn is closed.
	r.AddMove(types.Player1, jump("e5", "f6", "g7"))
	if r.Len() != 2 {
		t.Fatalf("expected a new entry, got %d entries", r.Len())
	}
}

func TestRecordAllIsCopy(t *testing.T) {
	r := NewRecord()
	r.AddMove(types.Player1, step("b3", "a4"))
	all := r.All()
	all[0].Path[0] = pos("h8")
	if r.All()[0].Path[0] != pos("b3") {
		t.Fatal("mutating All() result changed the record")
	}
}

func TestRecordTail(t *testing.T) {
	r := NewRecord()
	moves := []types.Move{step("b3", "a4"), step("c6", "d5"), step("d3", "e4"), step("e6", "f5")}
	for i, mv := range moves {
		p := types.Player1
		if i%2 == 1 {
			p = types.Player2
		}
		r.AddMove(p, mv)
		r.CompleteTurn(false)
	}
	tail, skipped := r.Tail(3)
	if skipped != 1 {
		t.Fatalf("skipped = %d, want 1", skipped)
	}
	if len(tail) != 3 || tail[0].Notation() != "c6-d5" {
		t.Fatalf("unexpected tail: %+v", tail)
	}
}
