package types

import (
	"fmt"
	"iter"
	"strings"
)

// Board is the 8x8 grid, indexed as Board[row][col].
type Board [BoardSize][BoardSize]Cell

// NewBoard returns a board in the standard starting layout.
func NewBoard() Board {
	var b Board
	b.Reset()
	return b
}

// Reset clears the board and places Player1 men on rows 0-2 and Player2 men
// on rows 5-7, dark squares only.
func (b *Board) Reset() {
	for pos := range AllSquares() {
		b[pos.Row][pos.Col] = Empty
		if !pos.IsDark() {
			continue
		}
		switch {
		case pos.Row < 3:
			b[pos.Row][pos.Col] = ManOf(Player1)
		case pos.Row >= BoardSize-3:
			b[pos.Row][pos.Col] = ManOf(Player2)
		}
	}
}

// At returns the cell at p. p must be in bounds.
func (b *Board) At(p Pos) Cell {
	return b[p.Row][p.Col]
}

// Set stores c at p. p must be in bounds.
func (b *Board) Set(p Pos, c Cell) {
	b[p.Row][p.Col] = c
}

// Count returns how many pieces player p has on the board.
func (b *Board) Count(p Player) int {
	n := 0
	for range b.Pieces(p) {
		n++
	}
	return n
}

// Pieces yields the squares holding p's pieces in row-major order.
func (b *Board) Pieces(p Player) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for pos := range DarkSquares() {
			if b.At(pos).BelongsTo(p) && !yield(pos) {
				return
			}
		}
	}
}

// AllSquares yields every board position in row-major order.
func AllSquares() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				if !yield(Pos{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// DarkSquares yields the 32 playable squares in row-major order.
func DarkSquares() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for pos := range AllSquares() {
			if pos.IsDark() && !yield(pos) {
				return
			}
		}
	}
}

// Position strings use one line per row, row 0 first:
// '.' empty, 'w'/'W' Player1 man/king, 'b'/'B' Player2 man/king.
var cellRunes = map[Cell]rune{
	Empty:           '.',
	ManOf(Player1):  'w',
	KingOf(Player1): 'W',
	ManOf(Player2):  'b',
	KingOf(Player2): 'B',
}

// String renders the board as a position string.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			sb.WriteRune(cellRunes[b[r][c]])
		}
		if r < BoardSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard reads a position string as written by Board.String. Rows may be
// separated by newlines or '/', surrounding whitespace is ignored. Positions
// that play cannot reach are rejected: more than PiecesPerSide pieces for a
// player, or a man standing on its own promotion row.
func ParseBoard(s string) (Board, error) {
	var b Board
	rows := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == '\n' || r == '/'
	})
	if len(rows) != BoardSize {
		return b, fmt.Errorf("position has %d rows, want %d", len(rows), BoardSize)
	}
	for r, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != BoardSize {
			return b, fmt.Errorf("row %d has %d squares, want %d", r, len(line), BoardSize)
		}
		for c, ch := range line {
			cell, ok := parseCellRune(ch)
			if !ok {
				return b, fmt.Errorf("row %d: unknown square %q", r, ch)
			}
			pos := Pos{Row: r, Col: c}
			if !cell.IsEmpty() && !pos.IsDark() {
				return b, fmt.Errorf("piece on light square %s", pos)
			}
			if !cell.IsEmpty() && !cell.IsKing() && r == cell.Owner.PromotionRow() {
				return b, fmt.Errorf("man on promotion row at %s", pos)
			}
			b.Set(pos, cell)
		}
	}
	for _, p := range []Player{Player1, Player2} {
		if n := b.Count(p); n > PiecesPerSide {
			return b, fmt.Errorf("%s has %d pieces, at most %d", p, n, PiecesPerSide)
		}
	}
	return b, nil
}

func parseCellRune(ch rune) (Cell, bool) {
	for cell, r := range cellRunes {
		if r == ch {
			return cell, true
		}
	}
	return Empty, false
}
