package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:   true,
		DrawLastMoveBackground: true,
		HighlightTargets:       true,
		Colors: ConfigColors{
			DarkSquare:      94,
			LightSquare:     180,
			Player1Piece:    255,
			Player2Piece:    232,
			CursorColorBG:   4,
			SelectedColorBG: 136,
			TargetColorBG:   22,
			LastMoveColorBG: 2,
		},
		Symbols: ConfigSymbols{
			Man:  '●',
			King: '♛',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameSettings{
			FirstPlayer: 1,
			Player1Name: "White",
			Player2Name: "Black",
		},
		Log: LogConfig{
			Level: "info",
		},
		Locale: "en",
	}
}
