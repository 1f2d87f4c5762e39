package wcag

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Suggest returns human-readable advice for bringing a color pair up to
// targetRatio. Invalid colors yield a single suggestion flagging the format
// rather than an error, so callers can surface advice unconditionally.
func Suggest(fg, bg string, targetRatio float64) []string {
	if targetRatio <= 0 {
		targetRatio = 4.5
	}

	fgRGB, errFg := ParseHex(fg)
	bgRGB, errBg := ParseHex(bg)
	if errFg != nil || errBg != nil {
		return []string{"invalid color format: use #rgb or #rrggbb hex colors"}
	}

	fgLum := RelativeLuminance(fgRGB)
	bgLum := RelativeLuminance(bgRGB)
	ratio := ratioOf(fgLum, bgLum)

	if ratio >= targetRatio {
		return []string{fmt.Sprintf("already meets the %.4g:1 target at %.2f:1", targetRatio, ratio)}
	}

	var suggestions []string
	if fgLum > bgLum {
		suggestions = append(suggestions,
			"lighten the foreground or darken the background to increase contrast")
	} else {
		suggestions = append(suggestions,
			"darken the foreground or lighten the background to increase contrast")
	}
	suggestions = append(suggestions, fmt.Sprintf(
		"current ratio %.2f:1 is %.2f short of the %.4g:1 target",
		ratio, targetRatio-ratio, targetRatio))

	if fixed := FixForeground(fg, bg, targetRatio); fixed != fg {
		suggestions = append(suggestions, fmt.Sprintf("e.g. replace %s with %s", fg, fixed))
	}

	return suggestions
}

// FixForeground walks the foreground lighter or darker in HSL space until it
// meets minRatio against the background. Falls back to pure black or white
// when no in-hue adjustment reaches the target. Returns fg unchanged when it
// already meets the ratio or fails to parse.
func FixForeground(fg, bg string, minRatio float64) string {
	fgRGB, errFg := ParseHex(fg)
	bgRGB, errBg := ParseHex(bg)
	if errFg != nil || errBg != nil {
		return fg
	}

	bgLum := RelativeLuminance(bgRGB)
	if ratioOf(RelativeLuminance(fgRGB), bgLum) >= minRatio {
		return fg
	}

	c := colorful.Color{
		R: float64(fgRGB.R) / 255.0,
		G: float64(fgRGB.G) / 255.0,
		B: float64(fgRGB.B) / 255.0,
	}
	h, s, l := c.Hsl()

	// Move lightness away from the background in fixed steps
	lighten := RelativeLuminance(fgRGB) > bgLum
	for step := 0.05; l >= 0 && l <= 1; {
		if lighten {
			l += step
		} else {
			l -= step
		}
		candidate, err := ParseHex(colorful.Hsl(h, s, clamp01(l)).Clamped().Hex())
		if err != nil {
			break
		}
		if ratioOf(RelativeLuminance(candidate), bgLum) >= minRatio {
			return candidate.Hex()
		}
		if l <= 0 || l >= 1 {
			break
		}
	}

	if bgLum > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
