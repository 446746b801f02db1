package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mikael/cv-tailor/internal/config"
	"github.com/mikael/cv-tailor/internal/ingestion"
	"github.com/mikael/cv-tailor/internal/llm"
	"github.com/mikael/cv-tailor/internal/observability"
	"github.com/mikael/cv-tailor/internal/scoring"
	"github.com/mikael/cv-tailor/internal/tailoring"
)

// resolveAPIKey prefers the flag, then GEMINI_API_KEY, then the config file.
func resolveAPIKey(flagValue string, cfg *config.Config) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	if cfg != nil && cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	return "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
}

// loadConfigIfSet loads and validates the config file named by path, or
// returns an empty config when no path is given.
func loadConfigIfSet(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadPostingText loads posting text from a file or a URL. Exactly one of
// jobFile and jobURL must be set.
func loadPostingText(ctx context.Context, jobFile, jobURL string, useBrowser bool) (string, error) {
	switch {
	case jobFile != "" && jobURL != "":
		return "", fmt.Errorf("--job and --job-url are mutually exclusive")
	case jobFile != "":
		return ingestion.FromFile(jobFile)
	case jobURL != "":
		return ingestion.FromURL(ctx, jobURL, &ingestion.URLOptions{AllowBrowser: useBrowser})
	default:
		return "", fmt.Errorf("must provide --job or --job-url")
	}
}

// scoringWeights applies config overrides on top of the default calibration.
func scoringWeights(cfg *config.Config) scoring.Weights {
	weights := scoring.DefaultWeights()
	if cfg.SkillWeight > 0 {
		weights.SkillOverlap = cfg.SkillWeight
	}
	if cfg.ResponsibilityWeight > 0 {
		weights.ResponsibilityOverlap = cfg.ResponsibilityWeight
	}
	if cfg.RecencyWeight > 0 {
		weights.Recency = cfg.RecencyWeight
	}
	if cfg.RecencyWindowYears > 0 {
		weights.RecencyWindowYears = cfg.RecencyWindowYears
	}
	return weights
}

// newOrchestrator builds a backend client and an orchestrator around it.
// The caller must Close the returned client.
func newOrchestrator(ctx context.Context, apiKey string, cfg *config.Config, verbose bool) (llm.Client, *tailoring.Orchestrator, error) {
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	weights := scoringWeights(cfg)
	opts := &tailoring.Options{Weights: &weights}
	if verbose {
		opts.Printer = observability.NewPrinter(os.Stderr)
	}
	return client, tailoring.New(client, opts), nil
}

// writeOutput writes content to path, or stdout when path is empty.
func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "Output: %s\n", path)
	return nil
}
