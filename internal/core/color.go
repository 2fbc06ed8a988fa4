package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Colors used by the game.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
	ColorCyan
	ColorMagenta
	ColorBrightWhite
	ColorBrightYellow
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	case ColorBrightWhite:
		return "bright-white"
	case ColorBrightYellow:
		return "bright-yellow"
	default:
		return "default"
	}
}
