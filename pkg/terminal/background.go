// Package terminal detects the terminal background so the presentation layer
// can pick legible defaults. The contrast math itself never consults the
// environment; everything here is an integration-boundary concern.
package terminal

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Mode selects how the background is determined.
type Mode string

const (
	ModeAuto  Mode = "auto"
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// BackgroundDetector resolves whether the terminal background is dark.
type BackgroundDetector struct {
	mode         Mode
	cachedIsDark *bool
}

// NewBackgroundDetector creates a detector with the given mode.
func NewBackgroundDetector(mode Mode) *BackgroundDetector {
	return &BackgroundDetector{mode: mode}
}

// IsDark returns true if the background is dark. The first detection is
// cached for the life of the detector.
func (d *BackgroundDetector) IsDark() bool {
	if d.cachedIsDark != nil {
		return *d.cachedIsDark
	}

	var isDark bool
	switch d.mode {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		isDark = detectDarkBackground()
	}

	d.cachedIsDark = &isDark
	return isDark
}

func detectDarkBackground() bool {
	// COLORFGBG is the cheapest signal when the terminal sets it
	if isDark, ok := checkCOLORFGBG(os.Getenv("COLORFGBG")); ok {
		return isDark
	}

	// Fall back to termenv's OSC query (does not work under tmux/screen)
	if isDark, ok := checkTermenvBackground(); ok {
		return isDark
	}

	// Most terminal users run dark backgrounds
	return true
}

// checkCOLORFGBG parses "foreground;background" ANSI color pairs.
// Background values 0-7 are dark, 8-15 light.
func checkCOLORFGBG(value string) (bool, bool) {
	if value == "" {
		return false, false
	}

	parts := strings.Split(value, ";")
	if len(parts) < 2 {
		return false, false
	}

	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false, false
	}

	return bg < 8 || bg == 16, true
}

func checkTermenvBackground() (bool, bool) {
	output := termenv.NewOutput(os.Stdout)

	bgColor := output.BackgroundColor()
	if bgColor == nil {
		return false, false
	}
	if _, ok := bgColor.(termenv.NoColor); ok {
		return false, false
	}

	return output.HasDarkBackground(), true
}

// DefaultTextColor returns a legible default text color for the background.
func (d *BackgroundDetector) DefaultTextColor() string {
	if d.IsDark() {
		return "#ffffff"
	}
	return "#000000"
}

// DefaultMutedColor returns a dimmed text color for the background.
func (d *BackgroundDetector) DefaultMutedColor() string {
	if d.IsDark() {
		return "#888888"
	}
	return "#666666"
}
