package main

import (
	"testing"

	"checkers-local/config"
	"checkers-local/types"
)

func TestParseFlags(t *testing.T) {
	opts := parseFlags([]string{"-plain", "-first", "2", "-position", "8/8"})
	if !opts.plain || opts.first != 2 || opts.position != "8/8" {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.quickStart || opts.focus || opts.version {
		t.Fatalf("unset flags enabled: %+v", opts)
	}
}

func TestBuildGameConfig(t *testing.T) {
	c := config.DefaultConfig
	c.Game.Player1Name = "Ada"
	cfg = &c

	tests := []struct {
		name  string
		first int
		want  types.Player
	}{
		{"config default", 0, types.Player1},
		{"flag override", 2, types.Player2},
		{"out of range flag ignored", 5, types.Player1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildGameConfig(options{first: tt.first})
			if got.FirstPlayer != tt.want {
				t.Errorf("FirstPlayer = %v, want %v", got.FirstPlayer, tt.want)
			}
			if got.Player1Name != "Ada" || got.Player2Name != "Black" {
				t.Errorf("names = %q, %q", got.Player1Name, got.Player2Name)
			}
		})
	}
}
