package ui

import "image/color"

// Background panel in deep green, foreground panel in warm amber
var (
	ColorBackground    = color.RGBA{R: 0x12, G: 0x2A, B: 0x1E, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x2B, G: 0x27, B: 0x1C, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x3A, G: 0x34, B: 0x24, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xF5, G: 0xB7, B: 0x2E, A: 0xFF}
	ColorPrimaryDark   = color.RGBA{R: 0xB8, G: 0x86, B: 0x1A, A: 0xFF}
	ColorAccent        = color.RGBA{R: 0x4C, G: 0xC2, B: 0x7A, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorBorder        = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF}
)

// Layout constants
const (
	PanelPadding    = 16
	PanelTitleH     = 40
	HandleWidth     = 48
	HandleHeight    = 5
	HandleTopMargin = 8

	ButtonWidth  = 150
	ButtonHeight = 40
	ButtonGap    = 10

	AnchorTickW = 14

	FontSizeTitle   = 25
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	// DragSlop is how far the pointer must travel before a press on the
	// foreground panel becomes a drag.
	DragSlop = 8
)
