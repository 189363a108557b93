package core

// Color represents a foreground or background color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorNavy
	ColorGray
)

// ANSI returns the ANSI 256-color code for c, or an empty string for the
// terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorBlack:
		return "0"
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorNavy:
		return "17"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}
