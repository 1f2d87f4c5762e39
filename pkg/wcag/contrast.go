package wcag

import "math"

// RelativeLuminance calculates the relative luminance of a color per the
// WCAG 2.1 formula. Returns a value between 0 (black) and 1 (white).
func RelativeLuminance(c RGB) float64 {
	rf := float64(c.R) / 255.0
	gf := float64(c.G) / 255.0
	bf := float64(c.B) / 255.0

	// Apply gamma correction, then combine with the WCAG channel weights
	return 0.2126*gammaSRGB(rf) + 0.7152*gammaSRGB(gf) + 0.0722*gammaSRGB(bf)
}

// gammaSRGB applies sRGB gamma correction
func gammaSRGB(val float64) float64 {
	if val <= 0.03928 {
		return val / 12.92
	}
	return math.Pow((val+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG contrast ratio between two hex colors.
// Returns a value between 1 (no contrast) and 21 (black on white).
// Errors on either color failing to parse; callers must not substitute a
// default ratio for invalid input.
func ContrastRatio(fg, bg string) (float64, error) {
	fgRGB, err := ParseHex(fg)
	if err != nil {
		return 0, err
	}
	bgRGB, err := ParseHex(bg)
	if err != nil {
		return 0, err
	}
	return ratioOf(RelativeLuminance(fgRGB), RelativeLuminance(bgRGB)), nil
}

// ratioOf computes the contrast ratio of two relative luminances.
// Dividing the lighter by the darker keeps the result >= 1 and symmetric.
func ratioOf(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// IsLight returns true if the color is closer to white than black.
func IsLight(c RGB) bool {
	return RelativeLuminance(c) > 0.5
}
