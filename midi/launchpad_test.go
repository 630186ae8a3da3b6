package midi

import (
	"testing"

	"go-simon/game"
)

func TestNoteRowColRoundTrip(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			note := rowColToNote(row, col)
			r, c := noteToRowCol(note)
			if r != row || c != col {
				t.Errorf("noteToRowCol(rowColToNote(%d, %d)) = (%d, %d)", row, col, r, c)
			}
		}
	}
}

func TestNoteToRowColRejectsOffGrid(t *testing.T) {
	for _, note := range []uint8{0, 9, 10, 19, 20, 89, 91, 98, 127} {
		if r, c := noteToRowCol(note); r != -1 || c != -1 {
			t.Errorf("noteToRowCol(%d) = (%d, %d), want (-1, -1)", note, r, c)
		}
	}
}

func TestPadSymbolMapping(t *testing.T) {
	for i := 0; i < game.NumSymbols; i++ {
		sym := game.Symbol(i)
		row, col := PadForSymbol(sym)
		got, ok := SymbolForPad(row, col)
		if !ok || got != sym {
			t.Errorf("SymbolForPad(PadForSymbol(%v)) = %v, %v", sym, got, ok)
		}
	}
}

func TestSymbolForPadRejectsOffRow(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
	}{
		{"row above the game row", 1, 0},
		{"top row", 7, 2},
		{"column past the pads", padRow, game.NumSymbols},
		{"negative column", padRow, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if sym, ok := SymbolForPad(tt.row, tt.col); ok {
				t.Errorf("SymbolForPad(%d, %d) = %v, want no symbol", tt.row, tt.col, sym)
			}
		})
	}
}

func TestNearestPaletteColor(t *testing.T) {
	tests := []struct {
		name string
		rgb  [3]uint8
		want uint8
	}{
		{"off", [3]uint8{0, 0, 0}, 0},
		{"pure red", [3]uint8{255, 0, 0}, 5},
		{"bright green", [3]uint8{0, 255, 0}, 21},
		{"blue", [3]uint8{0, 100, 255}, 45},
		{"white", [3]uint8{255, 255, 255}, 119},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearestPaletteColor(tt.rgb); got != tt.want {
				t.Errorf("nearestPaletteColor(%v) = %d, want %d", tt.rgb, got, tt.want)
			}
		})
	}
}
