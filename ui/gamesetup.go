package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"checkers-local/engine"
	"checkers-local/types"
)

// maxNameLength bounds the player name inputs.
const maxNameLength = 16

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	config engine.GameConfig
}

// NewGameSetup creates a new game setup form pre-filled with defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		config:   defaults,
	}

	firstOptions := []string{"Player 1 (White)", "Player 2 (Black)"}
	firstIndex := 0
	if defaults.FirstPlayer == types.Player2 {
		firstIndex = 1
	}

	form := tview.NewForm()

	form.AddInputField("Player 1", defaults.Player1Name, maxNameLength, nil, func(text string) {
		setup.config.Player1Name = strings.TrimSpace(text)
	})

	form.AddInputField("Player 2", defaults.Player2Name, maxNameLength, nil, func(text string) {
		setup.config.Player2Name = strings.TrimSpace(text)
	})

	form.AddDropDown("First Move", firstOptions, firstIndex, func(option string, index int) {
		setup.config.FirstPlayer = types.Player(index + 1)
	})

	form.AddButton("Start Game", func() {
		onStart(setup.Config())
	})

	form.AddButton("Board Colors", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetBorderColor(MenuColors.Border)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetTitleColor(MenuColors.Title)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	// Create help text
	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	// Create flex layout with form and help text
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Config returns the game configuration entered so far.
func (s *GameSetupUI) Config() engine.GameConfig {
	return s.config
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
