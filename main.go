// checkers-local is a terminal application to play checkers with two players
// sharing one keyboard.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"checkers-local/config"
	"checkers-local/console"
	"checkers-local/engine"
	"checkers-local/engine/checkers"
	"checkers-local/logging"
	"checkers-local/msgcat"
	"checkers-local/types"
	"checkers-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.CheckerBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var msgs *msgcat.Printer

func main() {
	opts := parseFlags(os.Args[1:])

	// Handle --version
	if opts.version {
		fmt.Printf("checkers-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	closeLog, err := logging.Init(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Console: cfg.Log.Console && opts.plain,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	catalog, err := msgcat.LoadEmbedded()
	if err != nil {
		logging.L().Error("load message catalog", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	msgs = catalog.Printer(cfg.Locale)

	gameCfg := buildGameConfig(opts)
	logging.L().Info("starting",
		zap.String("version", Version),
		zap.Bool("plain", opts.plain),
		zap.String("locale", msgs.Locale()))

	if opts.plain {
		if err := runConsole(gameCfg); err != nil {
			closeLog()
			os.Exit(1)
		}
		return
	}
	runTUI(gameCfg, opts)
}

// runConsole plays one game on stdin/stdout.
func runConsole(gameCfg engine.GameConfig) error {
	eng := checkers.NewEngine(gameCfg)
	if err := eng.Start(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer eng.Close()

	err := console.NewSession(eng, gameCfg, msgs, os.Stdin, os.Stdout).Run()
	if errors.Is(err, io.EOF) {
		// Input ended before the game was decided.
		logging.L().Info("input closed", zap.String("game", eng.ID()))
		return nil
	}
	if err != nil {
		logging.L().Error("console session failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
	}
	return err
}

func runTUI(defaults engine.GameConfig, opts options) {
	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⛀ checkers ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewCheckerBoard(app, cfg, msgs, gameHint)

	// Create game layout with centered board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			if event.Key() == tcell.KeyEsc || gameBoard.HasSelection() {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveCursor(0, 1)
		case tcell.KeyDown:
			gameBoard.MoveCursor(0, -1)
		case tcell.KeyLeft:
			gameBoard.MoveCursor(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveCursor(1, 0)
		case tcell.KeyEnter:
			gameBoard.Activate()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveCursor(-1, 0)
			case 'j':
				gameBoard.MoveCursor(0, -1)
			case 'k':
				gameBoard.MoveCursor(0, 1)
			case 'l':
				gameBoard.MoveCursor(1, 0)
			case ' ':
				gameBoard.Activate()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	// Game setup screen
	setupUI := ui.NewGameSetup(defaults,
		func(gameCfg engine.GameConfig) {
			gameCfg.Position = defaults.Position
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	quickStart := opts.quickStart || opts.focus

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(defaults)
		// Enter focus mode if requested
		if opts.focus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		logging.L().Error("tui stopped", zap.Error(err))
		panic(err)
	}
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	eng := checkers.NewEngine(gameCfg)
	if err := eng.Start(); err != nil {
		// Show error modal
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.HidePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	gameBoard.ConnectEngine(eng, gameCfg)
	rootPage.SwitchToPage("gameview")
}

// buildGameConfig merges the configured defaults with command-line flags.
func buildGameConfig(opts options) engine.GameConfig {
	gameCfg := engine.GameConfig{
		FirstPlayer: types.Player(cfg.Game.FirstPlayer),
		Player1Name: cfg.Game.Player1Name,
		Player2Name: cfg.Game.Player2Name,
		Position:    opts.position,
	}
	if opts.first == 1 || opts.first == 2 {
		gameCfg.FirstPlayer = types.Player(opts.first)
	}
	return gameCfg
}
