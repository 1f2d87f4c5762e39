package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/b/theme-audit/pkg/report"
	"github.com/b/theme-audit/pkg/wcag"
)

// ErrNoCombinations is returned when a theme file parses but names no
// color combinations.
var ErrNoCombinations = errors.New("theme file has no combinations")

type fileTheme struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	Dark         bool              `yaml:"dark"`
	Combinations []fileCombination `yaml:"combinations"`
}

type fileCombination struct {
	Label      string  `yaml:"label"`
	Foreground string  `yaml:"foreground"`
	Background string  `yaml:"background"`
	FontSize   float64 `yaml:"font_size"`   // px, default 16
	FontWeight float64 `yaml:"font_weight"` // default 400
	LargeText  bool    `yaml:"large_text"`  // force large-text thresholds
	Strict     bool    `yaml:"strict"`      // require AAA for this pair
}

// Load reads a theme from a YAML file. The theme name defaults to the file
// base name and combination font metrics default to 16px/400.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}

	var ft fileTheme
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return Theme{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if len(ft.Combinations) == 0 {
		return Theme{}, fmt.Errorf("%w: %s", ErrNoCombinations, path)
	}

	applyDefaults(&ft, path)

	t := Theme{
		Name:        ft.Name,
		Description: ft.Description,
		Dark:        ft.Dark,
	}
	for _, c := range ft.Combinations {
		t.Combinations = append(t.Combinations, report.Combination{
			Label:      c.Label,
			Foreground: c.Foreground,
			Background: c.Background,
			Options: wcag.Options{
				FontSize:   c.FontSize,
				FontWeight: c.FontWeight,
				LargeText:  c.LargeText,
				Strict:     c.Strict,
			},
		})
	}
	return t, nil
}

// Save writes a theme to a YAML file.
func Save(path string, t Theme) error {
	ft := fileTheme{
		Name:        t.Name,
		Description: t.Description,
		Dark:        t.Dark,
	}
	for _, c := range t.Combinations {
		ft.Combinations = append(ft.Combinations, fileCombination{
			Label:      c.Label,
			Foreground: c.Foreground,
			Background: c.Background,
			FontSize:   c.Options.FontSize,
			FontWeight: c.Options.FontWeight,
			LargeText:  c.Options.LargeText,
			Strict:     c.Options.Strict,
		})
	}

	data, err := yaml.Marshal(&ft)
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	return nil
}

func applyDefaults(ft *fileTheme, path string) {
	if ft.Name == "" {
		base := filepath.Base(path)
		ft.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	for i := range ft.Combinations {
		c := &ft.Combinations[i]
		if c.Label == "" {
			c.Label = fmt.Sprintf("combination %d", i+1)
		}
		if c.FontSize == 0 {
			c.FontSize = wcag.DefaultFontSize
		}
		if c.FontWeight == 0 {
			c.FontWeight = wcag.DefaultFontWeight
		}
	}
}
