// Package ui specifies custom controls for tview to play checkers in the terminal.
package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"checkers-local/config"
	"checkers-local/engine"
	"checkers-local/history"
	"checkers-local/logging"
	"checkers-local/msgcat"
	"checkers-local/types"
)

// Each square is drawn three columns wide; the rank labels take the first
// marginLeft columns.
const (
	cellWidth  = 3
	marginLeft = 3
)

// Indexes into CheckerBoardUI.styles.
const (
	styleDark = iota
	styleLight
	stylePlayer1
	stylePlayer2
	styleCursor
	styleSelected
	styleTarget
	styleLastMove
)

type CheckerBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	msgs       *msgcat.Printer
	game       engine.GameConfig
	finished   bool
	cursor     types.Pos
	hasCursor  bool
	selected   *types.Pos
	notice     string
	app        *tview.Application
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *CheckerBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *CheckerBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *CheckerBoardUI) IsFocusMode() bool {
	return g.focusMode
}

// Cursor returns the square under the cursor, or nil when it is hidden.
func (g *CheckerBoardUI) Cursor() *types.Pos {
	if !g.hasCursor {
		return nil
	}
	pos := g.cursor
	return &pos
}

// Selected returns the origin chosen for the next move, if any.
func (g *CheckerBoardUI) Selected() *types.Pos {
	return g.selected
}

// MoveCursor moves the cursor by dCol files and dRow ranks. The first call
// only shows the cursor.
func (g *CheckerBoardUI) MoveCursor(dCol, dRow int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if !g.hasCursor {
		g.cursor = g.initialCursor()
		g.hasCursor = true
		return
	}
	next := g.cursor.Step(dRow, dCol)
	if !next.InBounds() {
		return
	}
	g.cursor = next
}

func (g *CheckerBoardUI) initialCursor() types.Pos {
	if g.BoardState.ChainFrom != nil {
		return *g.BoardState.ChainFrom
	}
	if g.BoardState.LastMove != nil {
		return g.BoardState.LastMove.To
	}
	// Start from the first piece that can move.
	if len(g.BoardState.LegalMoves) > 0 {
		return g.BoardState.LegalMoves[0].From
	}
	return types.Pos{Row: types.BoardSize / 2, Col: types.BoardSize / 2}
}

// ResetSelection drops the chosen origin, or hides the cursor when nothing
// is chosen.
func (g *CheckerBoardUI) ResetSelection() {
	if g.selected != nil && !g.chainPending() {
		g.selected = nil
	} else {
		g.hasCursor = false
	}
	g.refreshHint()
}

// HasSelection reports whether the cursor or an origin is shown.
func (g *CheckerBoardUI) HasSelection() bool {
	return g.hasCursor || (g.selected != nil && !g.chainPending())
}

func NewCheckerBoard(app *tview.Application, c *config.Config, msgs *msgcat.Printer, hint *tview.TextView) *CheckerBoardUI {
	board := &CheckerBoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		msgs:       msgs,
		game:       engine.DefaultConfig(),
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	return board
}

// boardWidth and boardHeight are the drawn size including coordinates.
func boardWidth() int  { return marginLeft + types.BoardSize*cellWidth }
func boardHeight() int { return types.BoardSize + 1 }

// cellOrigin returns the screen position of the left column of pos. Rank 8
// is drawn on top so Player1 sits at the bottom of the screen.
func cellOrigin(x, y int, pos types.Pos) (int, int) {
	return x + marginLeft + pos.Col*cellWidth, y + types.BoardSize - 1 - pos.Row
}

func (g *CheckerBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	state := g.BoardState
	if state == nil || state.ID == "" {
		return x, y, 1, 1
	}
	targets := g.targets()

	for pos := range types.AllSquares() {
		cell := state.Board.At(pos)
		bg := g.styles[styleLight]
		if pos.IsDark() {
			bg = g.styles[styleDark]
		}
		switch {
		case g.hasCursor && pos == g.cursor && g.cfg.Theme.DrawCursorBackground:
			bg = g.styles[styleCursor]
		case g.selected != nil && pos == *g.selected:
			bg = g.styles[styleSelected]
		case g.cfg.Theme.HighlightTargets && slices.Contains(targets, pos):
			bg = g.styles[styleTarget]
		case g.cfg.Theme.DrawLastMoveBackground && state.LastMove != nil &&
			(pos == state.LastMove.From || pos == state.LastMove.To):
			bg = g.styles[styleLastMove]
		}

		style := tcell.StyleDefault.Background(bg)
		symbol := ' '
		switch cell.Owner {
		case types.Player1:
			style = style.Foreground(g.styles[stylePlayer1])
		case types.Player2:
			style = style.Foreground(g.styles[stylePlayer2])
		}
		if !cell.IsEmpty() {
			symbol = g.cfg.Theme.Symbols.Man
			if cell.IsKing() {
				symbol = g.cfg.Theme.Symbols.King
			}
		} else if g.hasCursor && pos == g.cursor && !g.cfg.Theme.DrawCursorBackground {
			symbol = '+'
		}
		drawSquare(screen, style, symbol, x, y, pos)
	}
	drawCoordinates(screen, x, y, g)
	return x, y, boardWidth(), boardHeight()
}

// targets returns the squares the chosen piece may land on.
func (g *CheckerBoardUI) targets() []types.Pos {
	if g.selected == nil {
		return nil
	}
	return g.BoardState.Targets(*g.selected)
}

func (g *CheckerBoardUI) chainPending() bool {
	return g.BoardState != nil && g.BoardState.Phase == types.AwaitingChainContinuation
}

// ConnectEngine connects the board to a started game engine.
func (g *CheckerBoardUI) ConnectEngine(e engine.GameEngine, gameCfg engine.GameConfig) {
	g.finished = false
	g.eng = e
	g.game = gameCfg
	g.selected = nil
	g.notice = ""
	g.hasCursor = false

	e.OnMove(func(mv types.Move, player types.Player, boardState *types.BoardState) {
		g.BoardState = boardState
		g.selected = nil
		if boardState.ChainFrom != nil {
			from := *boardState.ChainFrom
			g.selected = &from
			g.cursor = from
		}
		g.refreshHint()
		// Spawn goroutine to avoid deadlock when called from main thread
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(outcome types.Outcome) {
		g.finished = true
		g.BoardState = e.GetBoardState()
		g.selected = nil
		g.hasCursor = false
		g.refreshHint()
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	g.BoardState = e.GetBoardState()
	g.finished = g.BoardState.Finished()
	g.attachPanel()
	g.refreshHint()
}

// historian is implemented by engines that keep a turn record.
type historian interface {
	History() []history.Entry
}

// attachPanel points the info panel at the current game.
func (g *CheckerBoardUI) attachPanel() {
	if g.infoPanel == nil {
		return
	}
	var source func() []history.Entry
	if h, ok := g.eng.(historian); ok {
		source = h.History
	}
	g.infoPanel.SetGame(g.game, source)
	g.infoPanel.SetBoardState(g.BoardState)
}

// Activate acts on the square under the cursor: it picks an origin, picks a
// destination for the chosen origin, or continues a capture chain.
func (g *CheckerBoardUI) Activate() {
	if g.finished || g.eng == nil || !g.hasCursor {
		return
	}
	pos := g.cursor
	state := g.BoardState
	g.notice = ""

	if g.chainPending() {
		g.submit(func() (types.MoveOutcome, error) {
			return g.eng.SubmitChainContinuation(pos)
		})
		return
	}

	cell := state.Board.At(pos)
	if cell.BelongsTo(state.PlayerToMove) {
		switch {
		case g.selected != nil && *g.selected == pos:
			g.selected = nil
		case state.Movable(pos):
			g.selected = &pos
		default:
			g.notice = g.msgs.Sprintf("reject.not_in_legal_set")
		}
		g.refreshHint()
		return
	}
	if g.selected == nil {
		g.notice = g.msgs.Sprintf("reject.not_own_piece")
		g.refreshHint()
		return
	}

	from := *g.selected
	g.submit(func() (types.MoveOutcome, error) {
		return g.eng.SubmitMove(from, pos)
	})
}

func (g *CheckerBoardUI) submit(play func() (types.MoveOutcome, error)) {
	out, err := play()
	if err != nil {
		logging.L().Debug("board move rejected", zap.Error(err))
		g.notice = g.msgs.Error(err)
		g.refreshHint()
		return
	}
	if out.Promoted {
		g.notice = g.msgs.Sprintf("status.promoted", g.game.PlayerName(out.Player), out.Move.To)
		g.refreshHint()
	}
}

// Close releases the engine.
func (g *CheckerBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *CheckerBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.DarkSquare),      // styleDark
		tcell.PaletteColor(c.Theme.Colors.LightSquare),     // styleLight
		tcell.PaletteColor(c.Theme.Colors.Player1Piece),    // stylePlayer1
		tcell.PaletteColor(c.Theme.Colors.Player2Piece),    // stylePlayer2
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),   // styleCursor
		tcell.PaletteColor(c.Theme.Colors.SelectedColorBG), // styleSelected
		tcell.PaletteColor(c.Theme.Colors.TargetColorBG),   // styleTarget
		tcell.PaletteColor(c.Theme.Colors.LastMoveColorBG), // styleLastMove
	}
	g.cfg = c
}

func (g *CheckerBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}
	g.hint.SetText(g.hintText())
}

func (g *CheckerBoardUI) hintText() string {
	var sb strings.Builder
	state := g.BoardState

	if g.finished {
		fmt.Fprintf(&sb, "───────── %s ─────────\n", g.msgs.Sprintf("ui.game_complete"))
		fmt.Fprintf(&sb, "  %s\n", outcomeText(g.msgs, g.game, state.Outcome))
		sb.WriteString("  q · return to menu")
		return sb.String()
	}

	player := state.PlayerToMove
	fmt.Fprintf(&sb, "  %s", g.msgs.Sprintf("status.turn", g.game.PlayerName(player), int(player)))
	switch {
	case g.chainPending():
		from := *state.ChainFrom
		fmt.Fprintf(&sb, "  ·  %s  ·  %s", g.msgs.Sprintf("prompt.chain", from),
			g.msgs.Sprintf("prompt.landings", strings.Join(squareNames(state.Targets(from)), " ")))
	case g.selected != nil:
		fmt.Fprintf(&sb, "  ·  %s", g.msgs.Sprintf("ui.select_target", *g.selected))
	default:
		fmt.Fprintf(&sb, "  ·  %s", g.msgs.Sprintf("ui.select_piece"))
		if state.MustCapture() {
			fmt.Fprintf(&sb, "  ·  %s", g.msgs.Sprintf("status.must_capture"))
		}
	}
	sb.WriteByte('\n')
	if g.notice != "" {
		fmt.Fprintf(&sb, "  ! %s\n", g.notice)
	}
	fmt.Fprintf(&sb, "  %s", g.msgs.Sprintf("ui.controls"))
	return sb.String()
}

// IsFinished returns true if the game is over.
func (g *CheckerBoardUI) IsFinished() bool {
	return g.finished
}

func outcomeText(msgs *msgcat.Printer, game engine.GameConfig, o types.Outcome) string {
	winner := game.PlayerName(o.Winner)
	loser := game.PlayerName(o.Winner.Opponent())
	if o.Reason == types.NoLegalMoves {
		return msgs.Sprintf("gameover.no_legal_moves", winner, loser)
	}
	return msgs.Sprintf("gameover.no_pieces", winner, loser)
}

func squareNames(squares []types.Pos) []string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}

// drawSquare draws one square, cellWidth columns wide, with r in the middle.
func drawSquare(s tcell.Screen, c tcell.Style, r rune, x, y int, pos types.Pos) {
	l, t := cellOrigin(x, y, pos)
	s.SetContent(l, t, ' ', nil, c)
	s.SetContent(l+1, t, r, nil, c)
	s.SetContent(l+2, t, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *CheckerBoardUI) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursor])

	for col := 0; col < types.BoardSize; col++ {
		_style := style
		if ui.hasCursor && col == ui.cursor.Col {
			_style = highlight
		}
		l, _ := cellOrigin(x, y, types.Pos{Col: col})
		s.SetContent(l, y+types.BoardSize, ' ', nil, _style)
		s.SetContent(l+1, y+types.BoardSize, rune('a'+col), nil, _style)
		s.SetContent(l+2, y+types.BoardSize, ' ', nil, _style)
	}

	for row := 0; row < types.BoardSize; row++ {
		_style := style
		if ui.hasCursor && row == ui.cursor.Row {
			_style = highlight
		}
		_, t := cellOrigin(x, y, types.Pos{Row: row})
		s.SetContent(x+1, t, rune('1'+row), nil, _style)
	}
}
