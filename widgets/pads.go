package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderPad renders a single colored pad glyph.
func RenderPad(color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render("■")
}

// RenderPadCell renders the wide pad used on the board row.
func RenderPadCell(color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render("██")
}

// RenderPadRow renders the pads side by side with their labels underneath.
// Labels stay unstyled; callers wrap the row in whatever style fits.
func RenderPadRow(colors []lipgloss.Color, labels []string) string {
	const gap = "   "
	var pads, tags strings.Builder
	for i, c := range colors {
		if i > 0 {
			pads.WriteString(gap)
			tags.WriteString(gap)
		}
		pads.WriteString(RenderPadCell(c))
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		fmt.Fprintf(&tags, "%-2s", label)
	}
	return pads.String() + "\n" + tags.String()
}

// RenderScreen centers message lines in a fixed-width block.
func RenderScreen(lines []string, width int, style lipgloss.Style) string {
	return style.Width(width).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

// RenderLegendItem renders a single legend entry: "■ Name - description"
func RenderLegendItem(color lipgloss.Color, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderPad(color), name, desc)
}
