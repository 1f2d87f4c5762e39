package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/b/theme-audit/pkg/terminal"
	"github.com/b/theme-audit/pkg/wcag"
)

const (
	fieldFg = iota
	fieldBg
)

type model struct {
	inputs [2]textinput.Model
	focus  int
	strict bool
	large  bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2ecc71"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e74c3c"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	toggleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#26c6da"))
)

func newModel() model {
	detector := terminal.NewBackgroundDetector(terminal.ModeAuto)

	// Seed the placeholders to match the terminal the user is actually in.
	fgDefault, bgDefault := "#ffffff", "#1a1a2e"
	if !detector.IsDark() {
		fgDefault, bgDefault = "#1a1a2e", "#ffffff"
	}

	fg := textinput.New()
	fg.Placeholder = fgDefault
	fg.Prompt = "Foreground: "
	fg.CharLimit = 7
	fg.Width = 10
	fg.Focus()

	bg := textinput.New()
	bg.Placeholder = bgDefault
	bg.Prompt = "Background: "
	bg.CharLimit = 7
	bg.Width = 10

	return model{inputs: [2]textinput.Model{fg, bg}}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab", "enter":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil
		case "ctrl+s":
			m.strict = !m.strict
			return m, nil
		case "ctrl+l":
			m.large = !m.large
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) View() string {
	fg := m.value(fieldFg)
	bg := m.value(fieldBg)

	var b []string
	b = append(b, titleStyle.Render("Contrast Checker"))
	b = append(b, "")
	b = append(b, m.inputs[fieldFg].View())
	b = append(b, m.inputs[fieldBg].View())
	b = append(b, "")
	b = append(b, m.toggles())
	b = append(b, "")
	b = append(b, m.resultView(fg, bg)...)
	b = append(b, "")
	b = append(b, helpStyle.Render("tab: switch field  ctrl+s: strict  ctrl+l: large text  esc: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, b...)
}

func (m model) toggles() string {
	strict := "off"
	if m.strict {
		strict = toggleStyle.Render("on")
	}
	large := "off"
	if m.large {
		large = toggleStyle.Render("on")
	}
	return labelStyle.Render("strict: ") + strict + labelStyle.Render("  large: ") + large
}

func (m model) resultView(fg, bg string) []string {
	result, err := wcag.Validate(fg, bg, wcag.Options{Strict: m.strict, LargeText: m.large})
	if err != nil {
		return []string{failStyle.Render("✗ ") + labelStyle.Render("enter two hex colors, e.g. #1a1a2e or fff")}
	}

	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#" + trimHash(fg))).
		Background(lipgloss.Color("#" + trimHash(bg))).
		Padding(0, 1).
		Render("Aa The quick brown fox")

	verdict := passStyle.Render("✓ accessible")
	if !result.Accessible {
		verdict = failStyle.Render("✗ not accessible")
	}

	lines := []string{
		swatch,
		fmt.Sprintf("%s %.2f:1   %s %s   %s",
			labelStyle.Render("ratio"), result.Ratio,
			labelStyle.Render("level"), string(result.Level),
			verdict),
	}
	if result.Recommendation != "" {
		lines = append(lines, labelStyle.Render(result.Recommendation))
	}
	return lines
}

func (m model) value(i int) string {
	v := m.inputs[i].Value()
	if v == "" {
		v = m.inputs[i].Placeholder
	}
	return v
}

func trimHash(s string) string {
	if len(s) > 0 && s[0] == '#' {
		return s[1:]
	}
	return s
}

func main() {
	// Force ANSI256 color mode to avoid partial 24-bit escape code issues
	lipgloss.SetColorProfile(termenv.ANSI256)

	p := tea.NewProgram(newModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
