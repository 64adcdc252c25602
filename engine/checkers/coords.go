package checkers

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"checkers-local/types"
)

// Square notation:
// - Files: a-h, left to right, column 0-7
// - Ranks: 1-8, rank 1 is row 0 (Player1's home rank)
// - Example: b3 is (row 2, col 1)

// ParseSquare reads a square from an input token such as "b3", "B3" or "b3,".
// The first ASCII letter found is the file and the first ASCII digit found is
// the rank; anything else in the token is ignored.
func ParseSquare(token string) (types.Pos, error) {
	if len(token) < 2 {
		return types.Pos{}, fmt.Errorf("invalid square: %q", token)
	}

	var file, rank rune
	for _, ch := range token {
		if ch < utf8.RuneSelf && unicode.IsLetter(ch) {
			file = unicode.ToLower(ch)
			break
		}
	}
	for _, ch := range token {
		if ch < utf8.RuneSelf && unicode.IsDigit(ch) {
			rank = ch
			break
		}
	}

	if file < 'a' || file > 'h' {
		return types.Pos{}, fmt.Errorf("invalid file in square: %q", token)
	}
	if rank < '1' || rank > '8' {
		return types.Pos{}, fmt.Errorf("invalid rank in square: %q", token)
	}
	return types.Pos{Row: int(rank - '1'), Col: int(file - 'a')}, nil
}

// FormatSquares joins squares in notation, separated by spaces.
func FormatSquares(squares []types.Pos) string {
	parts := make([]string, len(squares))
	for i, sq := range squares {
		parts[i] = sq.String()
	}
	return strings.Join(parts, " ")
}
