package wcag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color string is not 3 or 6 hex digits
// after stripping an optional leading '#'.
var ErrInvalidColor = errors.New("invalid hex color")

// RGB holds an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#rgb" or "#rrggbb" (hash optional, case-insensitive)
// into RGB. Shorthand digits are expanded by duplication, so "#f0a"
// parses the same as "#ff00aa".
func ParseHex(input string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(input), "#")

	if len(hex) == 3 {
		hex = expandShorthand(hex)
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, input)
	}

	r, errR := strconv.ParseUint(hex[0:2], 16, 8)
	g, errG := strconv.ParseUint(hex[2:4], 16, 8)
	b, errB := strconv.ParseUint(hex[4:6], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, input)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func expandShorthand(hex string) string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		sb.WriteByte(hex[i])
		sb.WriteByte(hex[i])
	}
	return sb.String()
}

// Hex formats an RGB value as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
