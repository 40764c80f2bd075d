package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Terminal palette: green monospace text on near-black
var (
	terminalBackground = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 255}
	terminalForeground = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 255}
	terminalButton     = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}
	terminalInput      = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255}
	terminalDisabled   = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 255}
)

// TerminalTheme is a compact dark theme with monospace text
type TerminalTheme struct{}

// NewTerminalTheme creates a new terminal theme
func NewTerminalTheme() fyne.Theme {
	return &TerminalTheme{}
}

// AppIcon returns the window and tray icon
func AppIcon() fyne.Resource {
	return theme.MediaMusicIcon()
}

// Color returns theme colors; the palette is the same for light and dark variants
func (t *TerminalTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return terminalBackground
	case theme.ColorNameForeground, theme.ColorNamePrimary, theme.ColorNameFocus:
		return terminalForeground
	case theme.ColorNameButton:
		return terminalButton
	case theme.ColorNameInputBackground:
		return terminalInput
	case theme.ColorNameDisabled, theme.ColorNamePlaceHolder:
		return terminalDisabled
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns the monospace font for every style
func (t *TerminalTheme) Font(style fyne.TextStyle) fyne.Resource {
	style.Monospace = true
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *TerminalTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *TerminalTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
