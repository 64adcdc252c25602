package checkers

import (
	"testing"

	"checkers-local/types"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		token   string
		want    types.Pos
		wantErr bool
	}{
		{token: "a1", want: types.Pos{Row: 0, Col: 0}},
		{token: "b6", want: types.Pos{Row: 5, Col: 1}},
		{token: "B6", want: types.Pos{Row: 5, Col: 1}},
		{token: "b6,", want: types.Pos{Row: 5, Col: 1}},
		{token: "h8", want: types.Pos{Row: 7, Col: 7}},
		{token: "6b", want: types.Pos{Row: 5, Col: 1}},
		{token: "éb3", want: types.Pos{Row: 2, Col: 1}},
		{token: "b٣3", want: types.Pos{Row: 2, Col: 1}},
		{token: "ａ1", wantErr: true},
		{token: "a", wantErr: true},
		{token: "", wantErr: true},
		{token: "i3", wantErr: true},
		{token: "x3", wantErr: true},
		{token: "a9", wantErr: true},
		{token: "a0", wantErr: true},
		{token: "33", wantErr: true},
		{token: "ab", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseSquare(tt.token)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSquare(%q) = %v, expected error", tt.token, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSquare(%q): unexpected error %v", tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSquare(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for pos := range types.AllSquares() {
		got, err := ParseSquare(pos.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", pos, err)
		}
		if got != pos {
			t.Fatalf("round trip of %v gave %v", pos, got)
		}
	}
}

func TestFormatSquares(t *testing.T) {
	got := FormatSquares([]types.Pos{{Row: 4, Col: 4}, {Row: 4, Col: 0}})
	if got != "e5 a5" {
		t.Errorf("FormatSquares = %q, want %q", got, "e5 a5")
	}
	if got := FormatSquares(nil); got != "" {
		t.Errorf("FormatSquares(nil) = %q", got)
	}
}
