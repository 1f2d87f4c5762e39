package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/b/theme-audit/pkg/perf"
	"github.com/b/theme-audit/pkg/report"
	"github.com/b/theme-audit/pkg/terminal"
	"github.com/b/theme-audit/pkg/theme"
	"github.com/b/theme-audit/pkg/wcag"
)

var (
	themeName  = flag.String("theme", "default", "built-in theme to audit")
	allThemes  = flag.Bool("all", false, "audit every built-in theme")
	themeFile  = flag.String("file", "", "audit a YAML theme file instead of a built-in")
	listOnly   = flag.Bool("list", false, "list built-in themes and exit")
	markdown   = flag.Bool("markdown", false, "emit a markdown report instead of styled terminal output")
	background = flag.String("background", "auto", "terminal background: auto, dark, or light")
	suggest    = flag.Bool("suggest", false, "print fix suggestions for failing combinations")
	useAI      = flag.Bool("ai", false, "ask an LLM for remediation advice on failures")
	aiProvider = flag.String("ai-provider", "anthropic", "LLM provider: anthropic, openai, or ollama")
	aiModel    = flag.String("ai-model", "", "LLM model (provider default if empty)")
)

func main() {
	flag.Parse()

	if *listOnly {
		for _, name := range theme.List() {
			t, _ := theme.Lookup(name)
			fmt.Printf("%-18s %s\n", name, t.Description)
		}
		return
	}

	themes, err := resolveThemes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	styled := !*markdown && term.IsTerminal(int(os.Stdout.Fd()))
	detector := terminal.NewBackgroundDetector(terminal.Mode(*background))

	timer := perf.Start("audit")
	anyFailed := false
	for i, t := range themes {
		if styled && t.Dark != detector.IsDark() {
			fmt.Fprintf(os.Stderr, "Note: %s is a %s theme but this terminal looks %s; swatches may not match the real surface.\n",
				t.Name, polarity(t.Dark), polarity(detector.IsDark()))
		}
		r := t.Validate()
		if len(r.Failed) > 0 {
			anyFailed = true
		}
		if i > 0 {
			printRule(styled)
		}
		if styled {
			report.RenderTerminal(os.Stdout, r)
		} else {
			fmt.Print(report.RenderMarkdown(r))
		}
		if *suggest {
			printSuggestions(r)
		}
		if *useAI && len(r.Failed) > 0 {
			printAdvice(r)
		}
	}
	timer.Stop()

	if anyFailed {
		os.Exit(1)
	}
}

// resolveThemes picks the theme set from the flags: a YAML file, every
// built-in, or a single built-in by name.
func resolveThemes() ([]theme.Theme, error) {
	if *themeFile != "" {
		t, err := theme.Load(*themeFile)
		if err != nil {
			return nil, err
		}
		return []theme.Theme{t}, nil
	}
	if *allThemes {
		var themes []theme.Theme
		for _, name := range theme.List() {
			t, _ := theme.Lookup(name)
			themes = append(themes, t)
		}
		return themes, nil
	}
	t, ok := theme.Lookup(*themeName)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (try -list)", *themeName)
	}
	return []theme.Theme{t}, nil
}

func polarity(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func printRule(styled bool) {
	if !styled {
		fmt.Println()
		return
	}
	width := 60
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	fmt.Println(strings.Repeat("─", width))
}

func printSuggestions(r report.Report) {
	for _, e := range r.Entries {
		if !e.Failed() || e.Err != nil {
			continue
		}
		large := e.Options.LargeText || wcag.IsLargeText(e.Options.FontSize, e.Options.FontWeight)
		target := wcag.LevelAA
		if e.Options.Strict {
			target = wcag.LevelAAA
		}
		min := wcag.MinimumRatio(target, large)
		fmt.Printf("\n%s:\n", e.Label)
		for _, s := range wcag.Suggest(e.Foreground, e.Background, min) {
			fmt.Printf("  - %s\n", s)
		}
	}
}

func printAdvice(r report.Report) {
	if err := initLLM(*aiProvider, *aiModel, ""); err != nil {
		fmt.Fprintf(os.Stderr, "AI advice unavailable: %v\n", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	advice, err := adviceForFailures(ctx, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AI advice failed: %v\n", err)
		return
	}
	fmt.Printf("\n## Advice\n\n%s\n", advice)
}
