package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/teilomillet/gollm"
	"github.com/teilomillet/gollm/llm"

	"github.com/b/theme-audit/pkg/report"
)

// llmClient is the LLM client used for remediation advice (nil if not configured)
var llmClient llm.LLM

// initLLM initializes the LLM client from flags and environment
func initLLM(provider, model, apiKey string) error {
	if provider == "" {
		provider = "anthropic"
	}
	if model == "" {
		// Default to cheapest option
		switch provider {
		case "anthropic":
			model = "claude-3-haiku-20240307"
		case "openai":
			model = "gpt-3.5-turbo"
		case "ollama":
			model = "llama3" // Local model
		}
	}

	if apiKey == "" {
		switch provider {
		case "anthropic":
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		case "openai":
			apiKey = os.Getenv("OPENAI_API_KEY")
		case "ollama":
			// Ollama doesn't need API key
			apiKey = "ollama"
		}
	}

	if apiKey == "" && provider != "ollama" {
		return fmt.Errorf("no API key for provider %s", provider)
	}

	// GoLLM reads the key from the environment
	switch provider {
	case "anthropic":
		os.Setenv("ANTHROPIC_API_KEY", apiKey)
	case "openai":
		os.Setenv("OPENAI_API_KEY", apiKey)
	}

	client, err := gollm.NewLLM(
		gollm.SetProvider(provider),
		gollm.SetModel(model),
		gollm.SetMaxTokens(400),
		gollm.SetTemperature(0.3),
	)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	llmClient = client
	return nil
}

// adviceForFailures asks the LLM for concrete color changes that would fix
// the failing combinations in a report.
func adviceForFailures(ctx context.Context, r report.Report) (string, error) {
	if llmClient == nil {
		return "", fmt.Errorf("LLM not initialized")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "These color combinations in the %q theme fail WCAG 2.1 contrast requirements:\n\n", r.Theme)
	for _, e := range r.Entries {
		if !e.Failed() {
			continue
		}
		if e.Err != nil {
			fmt.Fprintf(&b, "- %s: %s on %s (invalid color)\n", e.Label, e.Foreground, e.Background)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s on %s, ratio %.2f:1\n", e.Label, e.Foreground, e.Background, e.Result.Ratio)
	}
	b.WriteString("\nSuggest replacement hex colors that reach at least 4.5:1 while staying close to the original hues. Be brief, one line per combination.")

	resp, err := llmClient.Generate(ctx, gollm.NewPrompt(b.String()))
	if err != nil {
		return "", fmt.Errorf("generate failed: %w", err)
	}
	return strings.TrimSpace(resp), nil
}
