package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"checkers-local/engine"
	"checkers-local/history"
	"checkers-local/types"
)

// maxVisibleTurns is how many turns the move list shows.
const maxVisibleTurns = 12

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	game       engine.GameConfig
	history    func() []history.Entry
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:  tview.NewTextView(),
		game: engine.DefaultConfig(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetGame sets the player names and the source of the move list.
func (p *GameInfoPanel) SetGame(game engine.GameConfig, history func() []history.Entry) {
	p.game = game
	p.history = history
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	p.box.SetText(p.text())
}

func (p *GameInfoPanel) text() string {
	if p.boardState == nil || p.boardState.ID == "" {
		return ""
	}
	state := p.boardState

	var text string

	// Game Info section
	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", state.MoveNumber)
	for _, player := range []types.Player{types.Player1, types.Player2} {
		marker := " "
		if !state.Finished() && player == state.PlayerToMove {
			marker = "[yellow]>[-]"
		}
		text += fmt.Sprintf("%s[white]%s:[-:-:-] %d\n", marker, p.game.PlayerName(player), state.Pieces(player))
	}
	if state.Finished() {
		text += fmt.Sprintf("[yellow]Winner:[-:-:-] %s\n", p.game.PlayerName(state.Outcome.Winner))
	} else if state.MustCapture() {
		text += "[red]Capture required[-]\n"
	}

	if p.history == nil {
		return text
	}
	turns := p.history()
	if len(turns) == 0 {
		return text
	}

	text += "\n[white::b]Moves[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	// Show last N turns that fit, with scroll
	start := 0
	if len(turns) > maxVisibleTurns {
		start = len(turns) - maxVisibleTurns
	}
	for i := start; i < len(turns); i++ {
		t := turns[i]

		colorStr := "[white]W[-]"
		if t.Player == types.Player2 {
			colorStr = "[dimgray]B[-]"
		}

		marker := " "
		if i == len(turns)-1 {
			marker = "[white]>[-]"
		}

		text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, t.Notation())
	}

	if start > 0 {
		text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
	}
	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *CheckerBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *CheckerBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	// Create the info panel
	infoPanel := NewGameInfoPanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel
	board.attachPanel()

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 28, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 5, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *CheckerBoardUI) {
	gameFrame.Clear()

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)                 // left spacer
	centerRow.AddItem(board.Box, boardWidth(), 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)                 // right spacer

	gameFrame.AddItem(centerRow, boardHeight(), 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                  // bottom spacer
}
