package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/b/theme-audit/pkg/wcag"
)

var (
	fontSize   = flag.Float64("font-size", wcag.DefaultFontSize, "font size in CSS pixels")
	fontWeight = flag.Float64("font-weight", wcag.DefaultFontWeight, "font weight (100-900)")
	largeText  = flag.Bool("large", false, "treat the text as large regardless of font metrics")
	strict     = flag.Bool("strict", false, "require AAA instead of AA")
	level      = flag.String("level", "", "check against a specific level (AAA, AA, A) instead of classifying")
	quiet      = flag.Bool("quiet", false, "suppress output, report via exit code only")
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: contrast-check [flags] <foreground> <background>")
	fmt.Fprintln(os.Stderr, "Colors are hex strings like #1a1a2e or fff.")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}
	fg, bg := flag.Arg(0), flag.Arg(1)

	opts := wcag.Options{
		FontSize:   *fontSize,
		FontWeight: *fontWeight,
		LargeText:  *largeText,
		Strict:     *strict,
	}

	result, err := wcag.Validate(fg, bg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	pass := result.Accessible
	if *level != "" {
		lv := wcag.Level(*level)
		switch lv {
		case wcag.LevelAAA, wcag.LevelAA, wcag.LevelA:
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown level %q (want AAA, AA, or A)\n", *level)
			os.Exit(2)
		}
		large := *largeText || wcag.IsLargeText(*fontSize, *fontWeight)
		pass, _ = wcag.MeetsLevel(fg, bg, lv, large)
	}

	if !*quiet {
		printResult(fg, bg, result, pass)
	}
	if !pass {
		os.Exit(1)
	}
}

func printResult(fg, bg string, result wcag.Result, pass bool) {
	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render("Aa Sample")

	verdict := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2ecc71")).Render("PASS")
	if !pass {
		verdict = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e74c3c")).Render("FAIL")
	}

	fmt.Printf("%s  %s on %s\n", swatch, fg, bg)
	fmt.Printf("Ratio: %.2f:1   Level: %s   %s\n", result.Ratio, result.Level, verdict)
	if result.Recommendation != "" {
		fmt.Println(result.Recommendation)
	}
	if !pass {
		large := *largeText || wcag.IsLargeText(*fontSize, *fontWeight)
		target := wcag.LevelAA
		if *strict {
			target = wcag.LevelAAA
		}
		if wcag.Level(*level) == wcag.LevelAAA || wcag.Level(*level) == wcag.LevelA {
			target = wcag.Level(*level)
		}
		for _, s := range wcag.Suggest(fg, bg, wcag.MinimumRatio(target, large)) {
			fmt.Printf("  - %s\n", s)
		}
	}
}
