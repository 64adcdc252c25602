package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
)

var (
	cfgFile = "checkers-local/config.json"
	logFile = "checkers-local/checkers.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	DarkSquare      int `json:"dark_square"`
	LightSquare     int `json:"light_square"`
	Player1Piece    int `json:"player1"`
	Player2Piece    int `json:"player2"`
	CursorColorBG   int `json:"cursor_bg"`
	SelectedColorBG int `json:"selected_bg"`
	TargetColorBG   int `json:"target_bg"`
	LastMoveColorBG int `json:"last_move_bg"`
}

type ConfigSymbols struct {
	Man  rune `json:"man"`
	King rune `json:"king"`
}

type Theme struct {
	DrawCursorBackground   bool          `json:"draw_cursor_bg"`
	DrawLastMoveBackground bool          `json:"draw_last_move_bg"`
	HighlightTargets       bool          `json:"highlight_targets"`
	Colors                 ConfigColors  `json:"colors"`
	Symbols                ConfigSymbols `json:"symbols"`
}

// GameSettings holds the defaults used for new games.
type GameSettings struct {
	FirstPlayer int    `json:"first_player" env:"CHECKERS_FIRST_PLAYER"`
	Player1Name string `json:"player1_name" env:"CHECKERS_PLAYER1_NAME"`
	Player2Name string `json:"player2_name" env:"CHECKERS_PLAYER2_NAME"`
}

// LogConfig controls the log file. Level "off" disables logging.
type LogConfig struct {
	Level   string `json:"level" env:"CHECKERS_LOG_LEVEL"`
	File    string `json:"file" env:"CHECKERS_LOG_FILE"`
	Console bool   `json:"console" env:"CHECKERS_LOG_CONSOLE"`
}

type Config struct {
	Theme  Theme        `json:"theme"`
	Game   GameSettings `json:"game"`
	Log    LogConfig    `json:"log"`
	Locale string       `json:"locale" env:"CHECKERS_LOCALE"`
}

// InitConfig loads the defaults, the config file found in the XDG config
// directories and finally environment overrides.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(&config); err != nil {
		return nil, err
	}
	if config.Log.File == "" {
		if path, err := xdg.StateFile(logFile); err == nil {
			config.Log.File = path
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// applyEnv overrides c with the CHECKERS_* environment variables that are set.
func applyEnv(c *Config) error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Man, c.Theme.Symbols.King} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.FirstPlayer != 1 && c.Game.FirstPlayer != 2 {
		return &InvalidConfig{fmt.Sprintf("first player must be 1 or 2, got %d", c.Game.FirstPlayer)}
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "warning", "error", "off":
	default:
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
