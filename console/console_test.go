package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"checkers-local/engine"
	"checkers-local/engine/checkers"
	"checkers-local/msgcat"
	"checkers-local/types"
)

func newSession(t *testing.T, position, input string) (*Session, *bytes.Buffer) {
	t.Helper()
	cat, err := msgcat.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	cfg := engine.DefaultConfig()
	cfg.Position = position
	eng := checkers.NewEngine(cfg)
	if err := eng.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(eng.Close)

	var out bytes.Buffer
	return NewSession(eng, cfg, cat.Printer("en"), strings.NewReader(input), &out), &out
}

func TestRenderBoard(t *testing.T) {
	b := types.NewBoard()
	var out bytes.Buffer
	if err := RenderBoard(&out, &b); err != nil {
		t.Fatalf("RenderBoard: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 18 {
		t.Fatalf("got %d lines, want 18", len(lines))
	}
	if lines[1] != "1 |    | WM |    | WM |    | WM |    | WM |" {
		t.Errorf("rank 1 = %q", lines[1])
	}
	if lines[15] != "8 | BM |    | BM |    | BM |    | BM |    |" {
		t.Errorf("rank 8 = %q", lines[15])
	}
	if lines[17] != "    a    b    c    d    e    f    g    h" {
		t.Errorf("file labels = %q", lines[17])
	}
	if strings.Contains(out.String(), clearSequence) {
		t.Error("board output must not clear the screen")
	}
}

func TestSessionEndOfInput(t *testing.T) {
	s, out := newSession(t, "", "b3 a4\n")
	if err := s.Run(); !errors.Is(err, io.EOF) {
		t.Fatalf("Run = %v, want io.EOF", err)
	}
	text := out.String()
	for _, want := range []string{
		"Turn: White (Player 1)",
		"Enter move like: b6 a5 (from to)",
		"White: b3-a4",
		"Turn: Black (Player 2)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(text, clearSequence) {
		t.Error("screen cleared on a non-terminal writer")
	}
}

func TestSessionRejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bad format", "zz qq", "Invalid input format. Use like b6 a5"},
		{"light square", "b3 b4", "You can only move to dark squares."},
		{"not own piece", "a6 b5", "That piece is not yours."},
		{"occupied", "b1 a2", "Destination is not empty."},
		{"illegal", "b3 d5", "Illegal move."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newSession(t, "", tt.input)
			if err := s.Run(); !errors.Is(err, io.EOF) {
				t.Fatalf("Run = %v, want io.EOF", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
			if strings.Contains(out.String(), "Turn: Black") {
				t.Error("rejected move passed the turn")
			}
		})
	}
}

const chainPosition = "......../......../.w....../..b...../......../....b.../......../b......."

func TestSessionCaptureChain(t *testing.T) {
	s, out := newSession(t, chainPosition, "b3 d5\nc4\nf7\n")
	if err := s.Run(); !errors.Is(err, io.EOF) {
		t.Fatalf("Run = %v, want io.EOF", err)
	}
	text := out.String()
	for _, want := range []string{
		"Rule: Capture is available => you MUST capture.",
		"Multi-capture required from d5",
		"Possible next landings: f7",
		"You must continue capturing (choose one of the shown squares).",
		"White: b3xd5xf7",
		"Turn: Black (Player 2)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSessionChainBadSquare(t *testing.T) {
	s, out := newSession(t, chainPosition, "b3 d5\nzz\n")
	if err := s.Run(); !errors.Is(err, io.EOF) {
		t.Fatalf("Run = %v, want io.EOF", err)
	}
	if !strings.Contains(out.String(), "Bad square input.") {
		t.Errorf("output missing bad square notice:\n%s", out)
	}
}

func TestSessionGameOver(t *testing.T) {
	s, out := newSession(t, "......../......../.w....../..b...../......../......../......../........", "b3 d5\n")
	if err := s.Run(); err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	if !strings.Contains(out.String(), "GAME OVER! White wins (Black has no pieces).") {
		t.Errorf("output missing game over line:\n%s", out)
	}
}

func TestSessionNoLegalMoves(t *testing.T) {
	s, out := newSession(t, "......../......../......../......../......../......../.w....../b.b.....", "")
	if err := s.Run(); err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	if !strings.Contains(out.String(), "GAME OVER! Black wins (White has no legal moves).") {
		t.Errorf("output missing game over line:\n%s", out)
	}
}

func TestSessionPromotionNotice(t *testing.T) {
	s, out := newSession(t, "......../......../......../......../......../......b./.w....../........", "b7 a8\n")
	if err := s.Run(); !errors.Is(err, io.EOF) {
		t.Fatalf("Run = %v, want io.EOF", err)
	}
	if !strings.Contains(out.String(), "White is crowned on a8.") {
		t.Errorf("output missing promotion notice:\n%s", out)
	}
	if !strings.Contains(out.String(), "White: b7-a8K") {
		t.Errorf("history missing promotion suffix:\n%s", out)
	}
}
