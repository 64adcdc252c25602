// Package checkers implements the rules of American checkers and a local
// two-player engine on top of them.
package checkers

import "checkers-local/types"

type direction struct{ dr, dc int }

var kingDirections = []direction{{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1}}

// directions returns the diagonal steps available to cell, in a fixed order:
// the two forward diagonals for a man, all four for a king.
func directions(cell types.Cell) []direction {
	if cell.IsKing() {
		return kingDirections
	}
	f := cell.Owner.Forward()
	return []direction{{f, +1}, {f, -1}}
}

// CaptureMovesFrom returns the jumps available to player's piece on pos.
// It is empty when pos does not hold one of player's pieces.
func CaptureMovesFrom(b *types.Board, pos types.Pos, player types.Player) []types.Move {
	if !pos.InBounds() {
		return nil
	}
	piece := b.At(pos)
	if !piece.BelongsTo(player) {
		return nil
	}
	var moves []types.Move
	for _, d := range directions(piece) {
		over := pos.Step(d.dr, d.dc)
		land := pos.Step(2*d.dr, 2*d.dc)
		if !over.InBounds() || !land.InBounds() {
			continue
		}
		if !b.At(land).IsEmpty() || !piece.IsEnemy(b.At(over)) {
			continue
		}
		moves = append(moves, types.Move{From: pos, To: land, Capture: true, Captured: over})
	}
	return moves
}

// SimpleMovesFrom returns the single-step moves of player's piece on pos.
func SimpleMovesFrom(b *types.Board, pos types.Pos, player types.Player) []types.Move {
	if !pos.InBounds() {
		return nil
	}
	piece := b.At(pos)
	if !piece.BelongsTo(player) {
		return nil
	}
	var moves []types.Move
	for _, d := range directions(piece) {
		to := pos.Step(d.dr, d.dc)
		if !to.InBounds() || !b.At(to).IsEmpty() {
			continue
		}
		moves = append(moves, types.Move{From: pos, To: to})
	}
	return moves
}

// AllCaptures collects every jump available to player, scanning the board
// row by row.
func AllCaptures(b *types.Board, player types.Player) []types.Move {
	var moves []types.Move
	for pos := range b.Pieces(player) {
		moves = append(moves, CaptureMovesFrom(b, pos, player)...)
	}
	return moves
}

// AllLegalMoves returns the moves player may choose from at the start of a
// turn. Capturing is mandatory: whenever any jump exists anywhere on the
// board, only jumps are legal.
func AllLegalMoves(b *types.Board, player types.Player) []types.Move {
	if caps := AllCaptures(b, player); len(caps) > 0 {
		return caps
	}
	var moves []types.Move
	for pos := range b.Pieces(player) {
		moves = append(moves, SimpleMovesFrom(b, pos, player)...)
	}
	return moves
}

// findMove returns the move of moves going from -> to.
func findMove(moves []types.Move, from, to types.Pos) (types.Move, bool) {
	for _, m := range moves {
		if m.Matches(from, to) {
			return m, true
		}
	}
	return types.Move{}, false
}

// landings returns the destinations of moves.
func landings(moves []types.Move) []types.Pos {
	out := make([]types.Pos, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To)
	}
	return out
}
