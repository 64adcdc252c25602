// Package history keeps an in-memory record of the turns played in a game.
package history

import (
	"strings"

	"checkers-local/types"
)

// Entry is one player's turn: a single step, or a jump followed by any
// forced continuation jumps.
type Entry struct {
	Player   types.Player
	Path     []types.Pos // squares visited, origin first
	Captures int
	Promoted bool
	Complete bool
}

// Notation renders the turn as "b3-a4" or "c3xe5xg7", with a trailing "K"
// when the piece was crowned.
func (e Entry) Notation() string {
	sep := "-"
	if e.Captures > 0 {
		sep = "x"
	}
	parts := make([]string, len(e.Path))
	for i, p := range e.Path {
		parts[i] = p.String()
	}
	s := strings.Join(parts, sep)
	if e.Promoted {
		s += "K"
	}
	return s
}

// Last returns the square the piece currently stands on.
func (e Entry) Last() types.Pos {
	return e.Path[len(e.Path)-1]
}

// Record tracks the turns of one game.
type Record struct {
	entries []Entry
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{}
}

// AddMove records an accepted move. A jump continuing the open turn of the
// same player from the square it stopped on extends that turn; anything
// else starts a new entry. It returns the affected entry.
func (r *Record) AddMove(player types.Player, mv types.Move) *Entry {
	if cur := r.open(); cur != nil && cur.Player == player && mv.Capture && cur.Last() == mv.From {
		cur.Path = append(cur.Path, mv.To)
		cur.Captures++
		return cur
	}
	r.closeOpen()
	entry := Entry{Player: player, Path: []types.Pos{mv.From, mv.To}}
	if mv.Capture {
		entry.Captures = 1
	}
	r.entries = append(r.entries, entry)
	return &r.entries[len(r.entries)-1]
}

// CompleteTurn marks the open turn finished.
func (r *Record) CompleteTurn(promoted bool) {
	if cur := r.open(); cur != nil {
		cur.Promoted = promoted
		cur.Complete = true
	}
}

// open returns the last entry when its turn is still in progress.
func (r *Record) open() *Entry {
	if len(r.entries) == 0 {
		return nil
	}
	last := &r.entries[len(r.entries)-1]
	if last.Complete {
		return nil
	}
	return last
}

func (r *Record) closeOpen() {
	if cur := r.open(); cur != nil {
		cur.Complete = true
	}
}

// Len returns the number of recorded turns.
func (r *Record) Len() int {
	return len(r.entries)
}

// All returns a copy of the recorded turns.
func (r *Record) All() []Entry {
	out := make([]Entry, len(r.entries))
	for i, e := range r.entries {
		e.Path = append([]types.Pos(nil), e.Path...)
		out[i] = e
	}
	return out
}

// Tail returns at most the last n turns and the number of turns left out.
func (r *Record) Tail(n int) ([]Entry, int) {
	all := r.All()
	if n < 0 || len(all) <= n {
		return all, 0
	}
	return all[len(all)-n:], len(all) - n
}
