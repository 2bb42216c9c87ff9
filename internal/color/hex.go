// Package color implements the hex codec, the WCAG contrast math and the
// contrast/shade/tint derivations used by the theme editor.
package color

import (
	"fmt"
	"regexp"
	"strconv"
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// String renders the triple in the "r,g,b" form stored next to hex values.
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Parse decodes a 6-digit hex color with an optional leading '#'.
// Matching is case-insensitive. Short 3-digit forms are not expanded and
// report false, as does any other malformed input.
func Parse(hex string) (RGB, bool) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, false
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// Format encodes c as a lowercase "#rrggbb" string.
func Format(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
