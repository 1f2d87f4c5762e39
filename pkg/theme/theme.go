// Package theme defines named color-combination tables for contrast auditing:
// a set of built-in palettes plus YAML-loaded user themes.
package theme

import (
	"sort"

	"github.com/b/theme-audit/pkg/report"
	"github.com/b/theme-audit/pkg/wcag"
)

// Theme is a named, immutable table of color combinations to audit.
type Theme struct {
	Name         string
	Description  string
	Dark         bool
	Combinations []report.Combination
}

// Validate runs the batch reporter over the theme's combination table.
// The result always has exactly one entry per combination.
func (t Theme) Validate() report.Report {
	return report.Run(t.Name, t.Combinations)
}

// palette holds the color roles every built-in theme provides. The canonical
// combination table is derived from these roles so all themes are audited
// against the same pairs.
type palette struct {
	Surface   string // main background
	Overlay   string // raised background (cards, prompts)
	Text      string
	Muted     string
	Subtle    string
	Primary   string
	PrimaryFg string
	Accent    string
	AccentFg  string
	Danger    string
	DangerFg  string
}

// combinations builds the canonical role pairs for a palette.
func combinations(p palette) []report.Combination {
	return []report.Combination{
		{Label: "text on surface", Foreground: p.Text, Background: p.Surface},
		{Label: "muted on surface", Foreground: p.Muted, Background: p.Surface},
		{Label: "subtle on surface", Foreground: p.Subtle, Background: p.Surface},
		{Label: "text on overlay", Foreground: p.Text, Background: p.Overlay},
		{Label: "primary on surface", Foreground: p.Primary, Background: p.Surface},
		{Label: "primary button text", Foreground: p.PrimaryFg, Background: p.Primary},
		{Label: "accent button text", Foreground: p.AccentFg, Background: p.Accent},
		{Label: "danger button text", Foreground: p.DangerFg, Background: p.Danger},
		{Label: "heading on surface", Foreground: p.Text, Background: p.Surface,
			Options: wcag.Options{FontSize: 24}},
	}
}

var builtins = map[string]Theme{
	"default": {
		Name:        "Default",
		Description: "Default dark brand palette",
		Dark:        true,
		Combinations: combinations(palette{
			Surface: "#1a1a2e", Overlay: "#333333",
			Text: "#ffffff", Muted: "#cccccc", Subtle: "#888888",
			Primary: "#3498db", PrimaryFg: "#ffffff",
			Accent: "#26c6da", AccentFg: "#1a1a2e",
			Danger: "#e74c3c", DangerFg: "#ffffff",
		}),
	},
	"rose-pine": {
		Name:        "Rose Pine",
		Description: "Elegant dark theme with muted colors",
		Dark:        true,
		Combinations: combinations(palette{
			Surface: "#191724", Overlay: "#26233a",
			Text: "#e0def4", Muted: "#908caa", Subtle: "#6e6a86",
			Primary: "#31748f", PrimaryFg: "#e0def4",
			Accent: "#9ccfd8", AccentFg: "#191724",
			Danger: "#eb6f92", DangerFg: "#191724",
		}),
	},
	"rose-pine-dawn": {
		Name:        "Rose Pine Dawn",
		Description: "Soft light theme with warm colors",
		Dark:        false,
		Combinations: combinations(palette{
			Surface: "#faf4ed", Overlay: "#f2e9e1",
			Text: "#575279", Muted: "#797593", Subtle: "#9893a5",
			Primary: "#286983", PrimaryFg: "#faf4ed",
			Accent: "#907aa9", AccentFg: "#faf4ed",
			Danger: "#b4637a", DangerFg: "#faf4ed",
		}),
	},
	"catppuccin-mocha": {
		Name:        "Catppuccin Mocha",
		Description: "Soothing dark theme",
		Dark:        true,
		Combinations: combinations(palette{
			Surface: "#1e1e2e", Overlay: "#313244",
			Text: "#cdd6f4", Muted: "#9399b2", Subtle: "#6c7086",
			Primary: "#89b4fa", PrimaryFg: "#1e1e2e",
			Accent: "#74c7ec", AccentFg: "#1e1e2e",
			Danger: "#f38ba8", DangerFg: "#1e1e2e",
		}),
	},
	"dracula": {
		Name:        "Dracula",
		Description: "Dark theme with vibrant colors",
		Dark:        true,
		Combinations: combinations(palette{
			Surface: "#282a36", Overlay: "#44475a",
			Text: "#f8f8f2", Muted: "#bd93f9", Subtle: "#6272a4",
			Primary: "#bd93f9", PrimaryFg: "#282a36",
			Accent: "#ff79c6", AccentFg: "#282a36",
			Danger: "#ff5555", DangerFg: "#282a36",
		}),
	},
	"nord": {
		Name:        "Nord",
		Description: "Arctic, north-bluish color palette",
		Dark:        true,
		Combinations: combinations(palette{
			Surface: "#2e3440", Overlay: "#3b4252",
			Text: "#eceff4", Muted: "#d8dee9", Subtle: "#4c566a",
			Primary: "#81a1c1", PrimaryFg: "#2e3440",
			Accent: "#88c0d0", AccentFg: "#2e3440",
			Danger: "#bf616a", DangerFg: "#eceff4",
		}),
	},
	"gruvbox-dark": {
		Name:        "Gruvbox Dark",
		Description: "Retro groove color scheme",
		Dark:        true,
		Combinations: combinations(palette{
			Surface: "#282828", Overlay: "#3c3836",
			Text: "#ebdbb2", Muted: "#a89984", Subtle: "#928374",
			Primary: "#458588", PrimaryFg: "#282828",
			Accent: "#83a598", AccentFg: "#282828",
			Danger: "#fb4934", DangerFg: "#282828",
		}),
	},
	"solarized-light": {
		Name:        "Solarized Light",
		Description: "Precision colors for machines and people",
		Dark:        false,
		Combinations: combinations(palette{
			Surface: "#fdf6e3", Overlay: "#eee8d5",
			Text: "#586e75", Muted: "#839496", Subtle: "#93a1a1",
			Primary: "#268bd2", PrimaryFg: "#fdf6e3",
			Accent: "#2aa198", AccentFg: "#fdf6e3",
			Danger: "#cb4b16", DangerFg: "#fdf6e3",
		}),
	},
	"tokyo-night": {
		Name:        "Tokyo Night",
		Description: "A dark theme inspired by Tokyo at night",
		Dark:        true,
		Combinations: combinations(palette{
			Surface: "#1a1b26", Overlay: "#24283b",
			Text: "#c0caf5", Muted: "#9aa5ce", Subtle: "#565f89",
			Primary: "#7aa2f7", PrimaryFg: "#1a1b26",
			Accent: "#7dcfff", AccentFg: "#1a1b26",
			Danger: "#f7768e", DangerFg: "#1a1b26",
		}),
	},
}

// Lookup returns a built-in theme by key. Returned themes carry a copy of
// the combination table so callers cannot mutate the built-in data.
func Lookup(name string) (Theme, bool) {
	t, ok := builtins[name]
	if !ok {
		return Theme{}, false
	}
	combos := make([]report.Combination, len(t.Combinations))
	copy(combos, t.Combinations)
	t.Combinations = combos
	return t, true
}

// Get returns a built-in theme by key, falling back to the default theme.
func Get(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	t, _ := Lookup("default")
	return t
}

// List returns the built-in theme keys in sorted order.
func List() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
