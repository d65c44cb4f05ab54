package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

var (
	// the sheet brightens as it is pulled up the screen
	sheetLow, _  = colorful.Hex("#1D3557")
	sheetHigh, _ = colorful.Hex("#3D8BFD")
)

// sheetColor blends the sheet background for a panel whose top sits at
// fraction of the screen height, 0 being the top.
func sheetColor(fraction float64) lipgloss.Color {
	t := 1 - min(max(fraction, 0), 1)
	return lipgloss.Color(sheetLow.BlendHcl(sheetHigh, t).Clamped().Hex())
}

func sheetStyles(fraction float64) (body, handle lipgloss.Style) {
	bg := sheetColor(fraction)
	return sheetStyle.Background(bg), handleStyle.Background(bg)
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
