package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/diagrail/pkg/cellbuf"
	"github.com/wesen/diagrail/pkg/diagram"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette, CRT green terminal aesthetic.
const (
	hexBG        = "#080e0b"
	hexGrid      = "#0e2e20"
	hexStroke    = "#00d4a0"
	hexText      = "#00ffc8"
	hexSelected  = "#00ffee"
	hexHandle    = "#ffcc00"
	hexAccept    = "#44ff88"
	hexReject    = "#ff5566"
	hexGuide     = "#1a4a3a"
	hexPreview   = "#ffee66"
	hexPanelBG   = "#1a2a20"
	hexPanelDim  = "#336655"
	hexToolbarBG = "#0a1510"
	hexWarn      = "#ddaa44"
	hexError     = "#ff5566"
	hexFooter    = "#666666"
)

var (
	colorBG = c(hexBG)

	tbStyle = lipgloss.NewStyle().
		Background(c(hexToolbarBG)).
		Foreground(c(hexText)).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(c(hexFooter))

	panelFill = lipgloss.NewStyle().
			Background(c(hexPanelBG))

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c(hexText)).
			Background(c(hexPanelBG)).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c(hexPanelDim)).
			Background(c(hexPanelBG))

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c(hexStroke)).
			Background(c(hexPanelBG))

	panelKeyStyle = lipgloss.NewStyle().
			Foreground(c(hexWarn)).
			Background(c(hexPanelBG))

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c(hexGuide)).
			Background(c(hexPanelBG))
)

// borderFor picks the box outline of a shape from its style. The "border"
// extra names one of normal, rounded, double or thick; a stroke width of 2
// or more without a name draws thick.
func borderFor(s diagram.Style) lipgloss.Border {
	switch s.Extra["border"] {
	case "rounded":
		return lipgloss.RoundedBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "normal":
		return lipgloss.NormalBorder()
	}
	if s.StrokeWidth >= 2 {
		return lipgloss.ThickBorder()
	}
	return lipgloss.NormalBorder()
}

func newPalette() *cellbuf.Palette { return cellbuf.NewPalette(hexStroke, hexBG) }
