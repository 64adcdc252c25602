package console

import (
	"fmt"
	"io"
	"strings"

	"checkers-local/types"
)

const rowRule = "  +----+----+----+----+----+----+----+----+\n"

var pieceLabels = map[types.Cell]string{
	types.Empty:                 "    ",
	types.ManOf(types.Player1):  " WM ",
	types.KingOf(types.Player1): " WK ",
	types.ManOf(types.Player2):  " BM ",
	types.KingOf(types.Player2): " BK ",
}

// RenderBoard writes b as a text grid. Rank 1 is printed on top and the
// files a-h are labelled below the last row.
func RenderBoard(w io.Writer, b *types.Board) error {
	var sb strings.Builder
	sb.WriteString(rowRule)
	for r := 0; r < types.BoardSize; r++ {
		fmt.Fprintf(&sb, "%d |", r+1)
		for c := 0; c < types.BoardSize; c++ {
			sb.WriteString(pieceLabels[b.At(types.Pos{Row: r, Col: c})])
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
		sb.WriteString(rowRule)
	}
	sb.WriteString("    a    b    c    d    e    f    g    h\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
