package checkers

import (
	"testing"

	"checkers-local/types"
)

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name      string
		mv        types.Move
		wantWhite int
		wantBlack int
	}{
		{
			name:      "simple",
			mv:        types.Move{From: at(2, 1), To: at(3, 0)},
			wantWhite: 1,
			wantBlack: 1,
		},
		{
			name:      "capture",
			mv:        types.Move{From: at(2, 1), To: at(4, 3), Capture: true, Captured: at(3, 2)},
			wantWhite: 1,
			wantBlack: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b types.Board
			b.Set(at(2, 1), types.ManOf(types.Player1))
			b.Set(at(3, 2), types.ManOf(types.Player2))

			ApplyMove(&b, tt.mv)

			if !b.At(tt.mv.From).IsEmpty() {
				t.Error("origin not cleared")
			}
			if b.At(tt.mv.To) != types.ManOf(types.Player1) {
				t.Errorf("destination holds %+v", b.At(tt.mv.To))
			}
			if tt.mv.Capture && !b.At(tt.mv.Captured).IsEmpty() {
				t.Error("captured piece not removed")
			}
			if got := b.Count(types.Player1); got != tt.wantWhite {
				t.Errorf("white pieces = %d, want %d", got, tt.wantWhite)
			}
			if got := b.Count(types.Player2); got != tt.wantBlack {
				t.Errorf("black pieces = %d, want %d", got, tt.wantBlack)
			}
		})
	}
}

func TestApplyMoveKeepsRank(t *testing.T) {
	var b types.Board
	b.Set(at(4, 3), types.KingOf(types.Player2))
	ApplyMove(&b, types.Move{From: at(4, 3), To: at(5, 4)})
	if b.At(at(5, 4)) != types.KingOf(types.Player2) {
		t.Fatalf("king lost its rank: %+v", b.At(at(5, 4)))
	}
}
