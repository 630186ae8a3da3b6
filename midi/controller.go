package midi

import "go-simon/game"

// PadEvent is one debounced pad press on a grid controller.
type PadEvent struct {
	Row, Col int
	Velocity uint8
}

// Controller is a connected pad controller: presses in, LED colors out.
type Controller interface {
	ID() string

	PadEvents() <-chan PadEvent

	SetLED(row, col int, rgb [3]uint8, channel uint8) error
	ClearLEDs() error

	Close() error
}

// Channel modes for SetLED.
const (
	ChannelStatic uint8 = 0 // solid color
	ChannelFlash  uint8 = 1 // flashing A/B alternating
	ChannelPulse  uint8 = 2 // pulsing (fades)
)

// The five game pads sit on the bottom grid row, one column per symbol.
const padRow = 0

// PadForSymbol is the grid position that mirrors a game pad.
func PadForSymbol(s game.Symbol) (row, col int) {
	return padRow, int(s)
}

// SymbolForPad maps a grid press back to a game pad. ok is false for
// positions outside the game row.
func SymbolForPad(row, col int) (sym game.Symbol, ok bool) {
	if row != padRow || col < 0 || col >= game.NumSymbols {
		return 0, false
	}
	return game.Symbol(col), true
}
