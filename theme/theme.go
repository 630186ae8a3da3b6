package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"go-simon/game"
)

// RGB is a full-range color, shared between the terminal styles and the
// Launchpad LED mapper.
type RGB [3]uint8

// Theme carries the board's colors: one identity color per pad plus the UI
// roles. Pad colors are fixed; they are how the player tells the symbols
// apart.
type Theme struct {
	pads [game.NumSymbols]RGB

	fg      RGB
	muted   RGB
	accent  RGB
	success RGB
}

func Default() *Theme {
	return &Theme{
		pads: [game.NumSymbols]RGB{
			{220, 50, 47},  // X
			{38, 139, 235}, // Square
			{233, 185, 26}, // Octagon
			{64, 192, 87},  // Triangle
			{174, 62, 201}, // Circle
		},
		fg:      RGB{222, 226, 230},
		muted:   RGB{108, 117, 125},
		accent:  RGB{77, 171, 247},
		success: RGB{64, 192, 87},
	}
}

// Pad is the identity color of a lit pad.
func (t *Theme) Pad(s game.Symbol) RGB {
	return t.pads[s]
}

// PadDim is the resting shade of an unlit pad.
func (t *Theme) PadDim(s game.Symbol) RGB {
	return dim(t.pads[s], 0.22)
}

// PadColor picks the lit or resting pad color as a lipgloss color.
func (t *Theme) PadColor(s game.Symbol, lit bool) lipgloss.Color {
	if lit {
		return rgbToLipgloss(t.Pad(s))
	}
	return rgbToLipgloss(t.PadDim(s))
}

// Style helpers

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.fg)
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.muted)
}

func (t *Theme) Accent() lipgloss.Color {
	return rgbToLipgloss(t.accent)
}

func (t *Theme) Success() lipgloss.Color {
	return rgbToLipgloss(t.success)
}

func dim(c RGB, f float64) RGB {
	return RGB{
		uint8(float64(c[0]) * f),
		uint8(float64(c[1]) * f),
		uint8(float64(c[2]) * f),
	}
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
