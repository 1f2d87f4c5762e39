package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/b/theme-audit/pkg/wcag"
)

// RenderMarkdown formats a report as a markdown document with Summary,
// Failed Combinations, and Warnings sections.
func RenderMarkdown(r Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Contrast Report: %s\n\n", r.Theme)

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- Combinations checked: %d\n", len(r.Entries))
	fmt.Fprintf(&sb, "- Accessibility score: %d%%\n", r.Score)
	fmt.Fprintf(&sb, "- Failed: %d, warnings: %d\n\n", len(r.Failed), len(r.Warnings))

	sb.WriteString("## Failed Combinations\n\n")
	if len(r.Failed) == 0 {
		sb.WriteString("None.\n\n")
	} else {
		for _, e := range r.Failed {
			if e.Err != nil {
				fmt.Fprintf(&sb, "- **%s** (%s on %s): %v\n",
					e.Label, e.Foreground, e.Background, e.Err)
				continue
			}
			fmt.Fprintf(&sb, "- **%s** (%s on %s): ratio %.2f:1 — %s\n",
				e.Label, e.Foreground, e.Background, e.Result.Ratio, e.Result.Recommendation)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Warnings\n\n")
	if len(r.Warnings) == 0 {
		sb.WriteString("None.\n")
	} else {
		for _, e := range r.Warnings {
			fmt.Fprintf(&sb, "- **%s** (%s on %s): %s at %.2f:1 — %s\n",
				e.Label, e.Foreground, e.Background, e.Result.Level, e.Result.Ratio,
				e.Result.Recommendation)
		}
	}

	return sb.String()
}

var levelColors = map[wcag.Level]string{
	wcag.LevelAAA:  "#2ecc71",
	wcag.LevelAA:   "#27ae60",
	wcag.LevelA:    "#f39c12",
	wcag.LevelFail: "#e74c3c",
}

// RenderTerminal writes a styled table of all entries plus the summary line.
// Presentation only; every number comes from the already-built report.
func RenderTerminal(w io.Writer, r Report) {
	labelWidth := 0
	for _, e := range r.Entries {
		if lw := runewidth.StringWidth(e.Label); lw > labelWidth {
			labelWidth = lw
		}
	}

	header := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	fmt.Fprintln(w, header.Render(fmt.Sprintf("Theme: %s", r.Theme)))

	for _, e := range r.Entries {
		label := runewidth.FillRight(e.Label, labelWidth)

		if e.Err != nil {
			badge := lipgloss.NewStyle().
				Foreground(lipgloss.Color(levelColors[wcag.LevelFail])).
				Render("ERROR")
			fmt.Fprintf(w, "  %s  %s  %v\n", label, badge, e.Err)
			continue
		}

		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(e.Foreground)).
			Background(lipgloss.Color(e.Background)).
			Render(" Aa ")

		badge := lipgloss.NewStyle().
			Foreground(lipgloss.Color(levelColors[e.Result.Level])).
			Render(runewidth.FillRight(string(e.Result.Level), 4))

		fmt.Fprintf(w, "  %s  %s  %s  %5.2f:1", label, swatch, badge, e.Result.Ratio)
		if e.Result.Recommendation != "" {
			fmt.Fprintf(w, "  %s", dim.Render(e.Result.Recommendation))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, dim.Render(fmt.Sprintf(
		"%d combinations, score %d%%, %d failed, %d warnings",
		len(r.Entries), r.Score, len(r.Failed), len(r.Warnings))))
}
