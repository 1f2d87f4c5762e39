package wcag

import (
	"math"
	"strings"
	"testing"
)

func TestIsLargeText(t *testing.T) {
	tests := []struct {
		name   string
		size   float64
		weight float64
		want   bool
	}{
		{"24px regular is large", 24, 400, true},
		{"16px regular is not", 16, 400, false},
		{"18.66px bold is large", 18.66, 700, true},
		{"18.66px regular is not", 18.66, 400, false},
		{"18px bold is not", 18, 700, false},
		{"30px light is large", 30, 300, true},
		{"14px heavy is not", 14, 900, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLargeText(tt.size, tt.weight); got != tt.want {
				t.Errorf("IsLargeText(%v, %v) = %v, want %v", tt.size, tt.weight, got, tt.want)
			}
		})
	}
}

func TestComplianceLevel(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		large bool
		want  Level
	}{
		{"normal 21 is AAA", 21, false, LevelAAA},
		{"normal 7 is AAA", 7, false, LevelAAA},
		{"normal 5 is AA", 5, false, LevelAA},
		{"normal 4.5 is AA", 4.5, false, LevelAA},
		{"normal 3.5 is A", 3.5, false, LevelA},
		{"normal 2.9 fails", 2.9, false, LevelFail},
		// Large text AAA minimum is 4.5:1, so 5.0 already grades AAA
		{"large 5 is AAA", 5.0, true, LevelAAA},
		{"large 7 is AAA", 7.0, true, LevelAAA},
		{"large 4.5 is AAA", 4.5, true, LevelAAA},
		{"large 3.5 is AA", 3.5, true, LevelAA},
		{"large 3 is AA", 3.0, true, LevelAA},
		{"large 2.9 fails", 2.9, true, LevelFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComplianceLevel(tt.ratio, tt.large); got != tt.want {
				t.Errorf("ComplianceLevel(%v, %v) = %v, want %v", tt.ratio, tt.large, got, tt.want)
			}
		})
	}
}

func TestMeetsLevelMonotonic(t *testing.T) {
	pairs := []struct{ fg, bg string }{
		{"#000000", "#ffffff"},
		{"#666666", "#ffffff"},
		{"#999999", "#ffffff"},
		{"#3498db", "#ffffff"},
		{"#e0def4", "#191724"},
	}

	for _, p := range pairs {
		for _, large := range []bool{false, true} {
			aaa, err := MeetsLevel(p.fg, p.bg, LevelAAA, large)
			if err != nil {
				t.Fatalf("MeetsLevel(%q, %q): %v", p.fg, p.bg, err)
			}
			aa, _ := MeetsLevel(p.fg, p.bg, LevelAA, large)
			a, _ := MeetsLevel(p.fg, p.bg, LevelA, large)
			if aaa && (!aa || !a) {
				t.Errorf("monotonicity violated for (%q,%q) large=%v: AAA=%v AA=%v A=%v",
					p.fg, p.bg, large, aaa, aa, a)
			}
			if aa && !a {
				t.Errorf("AA without A for (%q,%q) large=%v", p.fg, p.bg, large)
			}
		}
	}
}

func TestMeetsLevelLargeTextBoundary(t *testing.T) {
	// #666666 on white is ~5.7:1, #999999 on white is ~2.85:1; the large-text
	// AA threshold of 3:1 separates them.
	ok, err := MeetsLevel("#666666", "#ffffff", LevelAA, true)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("MeetsLevel(#666666, #ffffff, AA, large) = false, want true")
	}

	ok, err = MeetsLevel("#999999", "#ffffff", LevelAA, true)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("MeetsLevel(#999999, #ffffff, AA, large) = true, want false")
	}
}

func TestValidateBlackOnWhite(t *testing.T) {
	res, err := Validate("#000000", "#ffffff", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.Ratio-21.0) > 0.1 {
		t.Errorf("Ratio = %v, want ~21", res.Ratio)
	}
	if res.Level != LevelAAA {
		t.Errorf("Level = %v, want AAA", res.Level)
	}
	if !res.Accessible {
		t.Error("Accessible = false, want true")
	}
	if res.Recommendation != "" {
		t.Errorf("Recommendation = %q, want empty for AAA", res.Recommendation)
	}
}

func TestValidateFailingPair(t *testing.T) {
	res, err := Validate("#cccccc", "#ffffff", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Ratio >= 4.5 {
		t.Errorf("Ratio = %v, want < 4.5", res.Ratio)
	}
	if res.Level != LevelFail {
		t.Errorf("Level = %v, want FAIL", res.Level)
	}
	if res.Accessible {
		t.Error("Accessible = true, want false")
	}
	if !strings.Contains(res.Recommendation, "4.5:1") {
		t.Errorf("Recommendation %q should mention the 4.5:1 minimum", res.Recommendation)
	}
}

func TestValidateMidTierRecommendation(t *testing.T) {
	// #666666 on white is ~5.7:1: passes AA, short of AAA's 7:1.
	res, err := Validate("#666666", "#ffffff", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Level != LevelAA {
		t.Errorf("Level = %v, want AA", res.Level)
	}
	if !res.Accessible {
		t.Error("Accessible = false, want true")
	}
	if !strings.Contains(res.Recommendation, "7:1") {
		t.Errorf("Recommendation %q should point at the AAA 7:1 target", res.Recommendation)
	}
}

func TestValidateStrict(t *testing.T) {
	// Passes AA but not AAA, so strict mode marks it inaccessible.
	res, err := Validate("#666666", "#ffffff", Options{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Accessible {
		t.Error("strict Accessible = true, want false for an AA-only pair")
	}
}

func TestValidateLargeTextOverride(t *testing.T) {
	// ~3.95:1 fails normal AA but passes large-text AA.
	normal, err := Validate("#ffffff", "#808080", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if normal.Accessible {
		t.Error("normal text: Accessible = true, want false at ~3.95:1")
	}

	large, err := Validate("#ffffff", "#808080", Options{LargeText: true})
	if err != nil {
		t.Fatal(err)
	}
	if !large.Accessible {
		t.Error("large text: Accessible = false, want true at ~3.95:1")
	}
	if large.Level != LevelAA {
		t.Errorf("large text Level = %v, want AA", large.Level)
	}
}

func TestValidateFontMetrics(t *testing.T) {
	// 24px regular qualifies as large text without the explicit override.
	res, err := Validate("#ffffff", "#808080", Options{FontSize: 24})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Accessible {
		t.Error("24px text: Accessible = false, want true")
	}
}

func TestValidateInvalidColor(t *testing.T) {
	_, err := Validate("#gggggg", "#ffffff", Options{})
	if err == nil {
		t.Fatal("Validate with invalid color: expected error")
	}
	if !strings.Contains(err.Error(), "color contrast validation failed") {
		t.Errorf("error %q should be descriptive", err)
	}
}
