package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game renderers.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Brightness picks a gray-scale color for a 0-255 star brightness.
func Brightness(level int) Color {
	switch {
	case level >= 200:
		return ColorBrightWhite
	case level >= 140:
		return ColorWhite
	case level >= 90:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
