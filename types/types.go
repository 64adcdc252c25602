// Package types contains shared data structures for checkers-local.
package types

import "fmt"

// BoardSize is the number of rows and columns on a checkers board.
const BoardSize = 8

// PiecesPerSide is the number of men each player starts with.
const PiecesPerSide = 12

// Player identifies one side of the game. Player1 (white) starts on rows 0-2
// and moves toward increasing rows, Player2 (black) starts on rows 5-7.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

// Forward returns the row delta of a man's forward step.
func (p Player) Forward() int {
	if p == Player1 {
		return 1
	}
	return -1
}

// PromotionRow returns the row on which this player's men are crowned.
func (p Player) PromotionRow() int {
	if p == Player1 {
		return BoardSize - 1
	}
	return 0
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "White"
	case Player2:
		return "Black"
	}
	return "None"
}

// Rank distinguishes men from kings.
type Rank int

const (
	Man Rank = iota
	King
)

// Cell is the content of one board square. The zero value is an empty square.
type Cell struct {
	Owner Player
	Rank  Rank
}

// Empty is the empty cell.
var Empty = Cell{}

// ManOf returns a man owned by p.
func ManOf(p Player) Cell { return Cell{Owner: p, Rank: Man} }

// KingOf returns a king owned by p.
func KingOf(p Player) Cell { return Cell{Owner: p, Rank: King} }

// IsEmpty reports whether no piece occupies the cell.
func (c Cell) IsEmpty() bool {
	return c.Owner == NoPlayer
}

// IsKing reports whether the cell holds a king.
func (c Cell) IsKing() bool {
	return !c.IsEmpty() && c.Rank == King
}

// BelongsTo reports whether the cell holds a piece of player p.
func (c Cell) BelongsTo(p Player) bool {
	return !c.IsEmpty() && c.Owner == p
}

// IsEnemy reports whether c and other hold pieces of different players.
// It is false when either cell is empty.
func (c Cell) IsEnemy(other Cell) bool {
	if c.IsEmpty() || other.IsEmpty() {
		return false
	}
	return c.Owner != other.Owner
}

// Pos is a board position. Row 0 is Player1's home rank, shown as rank 1.
type Pos struct {
	Row int
	Col int
}

// InBounds reports whether p lies on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// IsDark reports whether p is a playable square, i.e. (row+col) is odd.
func (p Pos) IsDark() bool {
	return (p.Row+p.Col)%2 == 1
}

// Step returns the position dr rows and dc columns away.
func (p Pos) Step(dr, dc int) Pos {
	return Pos{Row: p.Row + dr, Col: p.Col + dc}
}

// String renders p in file/rank notation, (2,1) -> "b3".
func (p Pos) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string(rune('a'+p.Col)) + string(rune('1'+p.Row))
}

// Move is one step or one jump of a single piece.
type Move struct {
	From     Pos
	To       Pos
	Capture  bool
	Captured Pos // only meaningful when Capture is set
}

// Matches reports whether m goes from from to to.
func (m Move) Matches(from, to Pos) bool {
	return m.From == from && m.To == to
}

func (m Move) String() string {
	if m.Capture {
		return m.From.String() + "x" + m.To.String()
	}
	return m.From.String() + "-" + m.To.String()
}

// WinReason explains why a game ended.
type WinReason int

const (
	NoPieces WinReason = iota + 1
	NoLegalMoves
)

func (r WinReason) String() string {
	switch r {
	case NoPieces:
		return "no pieces"
	case NoLegalMoves:
		return "no legal moves"
	}
	return "ongoing"
}

// Outcome is the result of a game. The zero value means the game is ongoing.
type Outcome struct {
	Winner Player
	Reason WinReason
}

// Ongoing reports whether nobody has won yet.
func (o Outcome) Ongoing() bool {
	return o.Winner == NoPlayer
}

func (o Outcome) String() string {
	if o.Ongoing() {
		return "ongoing"
	}
	return fmt.Sprintf("%s wins (%s has %s)", o.Winner, o.Winner.Opponent(), o.Reason)
}

// MoveOutcome describes the effect of an accepted submission.
type MoveOutcome struct {
	Move     Move
	Player   Player
	Promoted bool
	// ChainPending is set when the same piece must keep capturing; Landings
	// lists the squares it may jump to next.
	ChainPending bool
	Landings     []Pos
	TurnComplete bool
	NextPlayer   Player
	Outcome      Outcome
}
