package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" DEBUG ", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestInitWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "checkers.log")
	closeLog, err := Init(Options{Level: "info", File: path})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { globalLogger = zap.NewNop() })

	L().Debug("hidden")
	L().Info("game started", zap.String("game", "abc"))
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 record, got %d:\n%s", len(lines), data)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if rec["msg"] != "game started" || rec["game"] != "abc" || rec["level"] != "info" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestInitOff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkers.log")
	closeLog, err := Init(Options{Level: "off", File: path})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer closeLog()
	L().Error("dropped")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("log file should not be created when logging is off")
	}
}

func TestInitNoSinks(t *testing.T) {
	closeLog, err := Init(Options{Level: "debug"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer closeLog()
	if L().Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("logger without sinks should be a no-op")
	}
}
