package core

// Color is the foreground color of a screen cell.
// The frontend decides how each value maps to terminal colors.
type Color uint8

// Shape colors come first, followed by the colors used for frames and text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorWhite
	ColorGray
	ColorBrightRed
)

var colorNames = [...]string{
	ColorDefault:   "default",
	ColorRed:       "red",
	ColorGreen:     "green",
	ColorYellow:    "yellow",
	ColorBlue:      "blue",
	ColorMagenta:   "magenta",
	ColorCyan:      "cyan",
	ColorOrange:    "orange",
	ColorWhite:     "white",
	ColorGray:      "gray",
	ColorBrightRed: "bright_red",
}

// String returns the color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
