package checkers

import (
	"fmt"

	"checkers-local/types"
)

// ApplyMove moves the piece on mv.From to mv.To and removes the jumped piece
// of a capture. The move is not validated; callers only pass moves taken from
// the current legal set.
func ApplyMove(b *types.Board, mv types.Move) {
	piece := b.At(mv.From)
	if debugAssertions && mv.Capture && !piece.IsEnemy(b.At(mv.Captured)) {
		panic(fmt.Sprintf("checkers: capture %s jumps %s which holds no enemy", mv, mv.Captured))
	}
	b.Set(mv.To, piece)
	b.Set(mv.From, types.Empty)
	if mv.Capture {
		b.Set(mv.Captured, types.Empty)
	}
}

// MaybePromote crowns a man standing on its owner's promotion row and
// reports whether it did.
func MaybePromote(b *types.Board, pos types.Pos) bool {
	cell := b.At(pos)
	if cell.IsEmpty() || cell.IsKing() || pos.Row != cell.Owner.PromotionRow() {
		return false
	}
	b.Set(pos, types.KingOf(cell.Owner))
	return true
}
