// Package game implements the turn logic of a Simon memory game: a growing
// random sequence is played back, collected from the player one press at a
// time, and judged. The board stays behind the Input and Output interfaces,
// so the same engine drives terminal keys, a grid controller, or a test
// fake.
package game

import "fmt"

// NumSymbols is the number of pads on the board.
const NumSymbols = 5

// MaxLength caps the sequence. Difficulty counts from zero, so round
// MaxLength-1 is the last one and clearing it wins the game.
const MaxLength = 64

// Symbol identifies one pad.
type Symbol int

const (
	X Symbol = iota
	Square
	Octagon
	Triangle
	Circle
)

// StartSymbol begins a game from the welcome screen.
const StartSymbol = X

var symbolNames = [NumSymbols]string{"X", "Square", "Octagon", "Triangle", "Circle"}

func (s Symbol) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return symbolNames[s]
}

// Valid reports whether s names a real pad.
func (s Symbol) Valid() bool {
	return s >= 0 && s < NumSymbols
}

// Digit is the pad's one-based label, as echoed on the display.
func (s Symbol) Digit() string {
	return string(rune('1' + s))
}
