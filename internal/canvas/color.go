package canvas

import "strings"

// Color is the foreground color of a canvas cell, rendered as an ANSI
// 256-color code.
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
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"":        ColorDefault,
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
}

// ParseColor maps a color name from a scene file to a Color.
// Unknown names report false.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}
