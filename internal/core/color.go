package core

// Color is the foreground color of a screen cell.
// The platform layer maps each value to a terminal style.
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
	ColorGray
	ColorOrange
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorOrange:
		return "orange"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightYellow:
		return "bright-yellow"
	case ColorBrightCyan:
		return "bright-cyan"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "unknown"
	}
}
