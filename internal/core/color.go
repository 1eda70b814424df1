package core

// Color is a foreground colour for a screen cell, mapped to ANSI 256-colour
// codes by the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBeige // low tiles
	ColorGold  // 128 and above
)
