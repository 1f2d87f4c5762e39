package wcag

import "fmt"

// Level is a WCAG compliance grade for a color pair.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelA    Level = "A"
	LevelFail Level = "FAIL"
)

// Default text metrics assumed when Options leaves them zero.
const (
	DefaultFontSize   = 16.0
	DefaultFontWeight = 400.0
)

// Options selects which contrast thresholds apply to a validation.
// Zero values mean: 16px text, weight 400, large-text computed from the
// metrics, non-strict (AA) accessibility.
type Options struct {
	FontSize   float64 // px, default 16
	FontWeight float64 // default 400
	LargeText  bool    // force large-text thresholds regardless of metrics
	Strict     bool    // require AAA instead of AA for Accessible
}

// Result is the outcome of validating one foreground/background pair.
type Result struct {
	Ratio          float64
	Level          Level
	Accessible     bool
	Recommendation string
}

// IsLargeText reports whether text qualifies as WCAG "large text":
// at least 18pt (24px) regular, or at least 14pt (18.66px) bold.
func IsLargeText(fontSizePx, fontWeight float64) bool {
	if fontWeight >= 700 && fontSizePx >= 18.66 {
		return true
	}
	return fontSizePx >= 24
}

// ComplianceLevel grades a contrast ratio. For large text the AAA minimum
// is 4.5:1 (not 7:1) and there is no separate A tier, per WCAG 1.4.3/1.4.6.
func ComplianceLevel(ratio float64, large bool) Level {
	if large {
		switch {
		case ratio >= 4.5:
			return LevelAAA
		case ratio >= 3:
			return LevelAA
		default:
			return LevelFail
		}
	}
	switch {
	case ratio >= 7:
		return LevelAAA
	case ratio >= 4.5:
		return LevelAA
	case ratio >= 3:
		return LevelA
	default:
		return LevelFail
	}
}

// MinimumRatio returns the threshold a pair must meet for the given level.
// Consistent with ComplianceLevel: anything graded AAA also passes AA and A.
func MinimumRatio(level Level, large bool) float64 {
	switch level {
	case LevelAAA:
		if large {
			return 4.5
		}
		return 7
	case LevelAA:
		if large {
			return 3
		}
		return 4.5
	default:
		return 3
	}
}

// MeetsLevel checks a color pair against a single compliance level.
func MeetsLevel(fg, bg string, level Level, large bool) (bool, error) {
	ratio, err := ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	return ratio >= MinimumRatio(level, large), nil
}

// large resolves the effective large-text flag, applying metric defaults.
func (o Options) large() bool {
	if o.LargeText {
		return true
	}
	size := o.FontSize
	if size == 0 {
		size = DefaultFontSize
	}
	weight := o.FontWeight
	if weight == 0 {
		weight = DefaultFontWeight
	}
	return IsLargeText(size, weight)
}

// Validate computes the contrast ratio for a pair and grades it under the
// given options. A recommendation is attached whenever the pair fails its
// accessibility bar or still has a higher tier to reach.
func Validate(fg, bg string, opts Options) (Result, error) {
	ratio, err := ContrastRatio(fg, bg)
	if err != nil {
		return Result{}, fmt.Errorf("color contrast validation failed: %w", err)
	}

	large := opts.large()
	level := ComplianceLevel(ratio, large)

	required := MinimumRatio(LevelAA, large)
	if opts.Strict {
		required = MinimumRatio(LevelAAA, large)
	}
	accessible := ratio >= required

	res := Result{
		Ratio:      ratio,
		Level:      level,
		Accessible: accessible,
	}

	if !accessible {
		res.Recommendation = fmt.Sprintf(
			"contrast ratio %.2f is below the required %.4g:1; darken or lighten one of the colors",
			ratio, required)
	} else if level != LevelAAA {
		next := MinimumRatio(LevelAAA, large)
		res.Recommendation = fmt.Sprintf(
			"meets %s at %.2f; increase contrast to %.4g:1 to reach AAA",
			level, ratio, next)
	}

	return res, nil
}
