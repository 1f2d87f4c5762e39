package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/b/theme-audit/pkg/wcag"
)

const sampleYAML = `name: App Theme
description: Test palette
dark: true
combinations:
  - label: body text
    foreground: "#e0def4"
    background: "#191724"
  - label: heading
    foreground: "#e0def4"
    background: "#191724"
    font_size: 24
  - label: bold caption
    foreground: "#908caa"
    background: "#191724"
    font_size: 19
    font_weight: 700
  - foreground: "#ffffff"
    background: "#31748f"
    large_text: true
    strict: true
`

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	th, err := Load(writeTheme(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	if th.Name != "App Theme" {
		t.Errorf("Name = %q, want %q", th.Name, "App Theme")
	}
	if !th.Dark {
		t.Error("Dark = false, want true")
	}
	if len(th.Combinations) != 4 {
		t.Fatalf("got %d combinations, want 4", len(th.Combinations))
	}

	body := th.Combinations[0]
	if body.Options.FontSize != wcag.DefaultFontSize || body.Options.FontWeight != wcag.DefaultFontWeight {
		t.Errorf("defaults not applied: %+v", body.Options)
	}

	heading := th.Combinations[1]
	if heading.Options.FontSize != 24 {
		t.Errorf("heading FontSize = %v, want 24", heading.Options.FontSize)
	}

	unlabeled := th.Combinations[3]
	if unlabeled.Label != "combination 4" {
		t.Errorf("missing label defaulted to %q", unlabeled.Label)
	}
	if !unlabeled.Options.LargeText || !unlabeled.Options.Strict {
		t.Errorf("large_text/strict not carried through: %+v", unlabeled.Options)
	}
}

func TestLoadNameDefaultsToFile(t *testing.T) {
	path := writeTheme(t, "combinations:\n  - foreground: \"#fff\"\n    background: \"#000\"\n")
	th, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "theme" {
		t.Errorf("Name = %q, want file base name %q", th.Name, "theme")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load on a missing file should error")
	}

	if _, err := Load(writeTheme(t, "::: not yaml")); err == nil {
		t.Error("Load on malformed yaml should error")
	}

	_, err := Load(writeTheme(t, "name: empty\n"))
	if !errors.Is(err, ErrNoCombinations) {
		t.Errorf("Load on an empty theme: error = %v, want ErrNoCombinations", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	orig, err := Load(writeTheme(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := Save(path, orig); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != orig.Name || len(loaded.Combinations) != len(orig.Combinations) {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, orig)
	}
	for i := range orig.Combinations {
		if loaded.Combinations[i] != orig.Combinations[i] {
			t.Errorf("combination %d mismatch: %+v vs %+v",
				i, loaded.Combinations[i], orig.Combinations[i])
		}
	}
}
