package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikael/cv-tailor/internal/extraction"
	"github.com/mikael/cv-tailor/internal/llm"
	"github.com/mikael/cv-tailor/internal/observability"
	"github.com/mikael/cv-tailor/internal/schemas"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Extract structured requirements from a job posting",
	Long:  "Extract skills, responsibilities, qualifications, and seniority from a job posting file or URL and emit them as JSON.",
	RunE:  runAnalyzeJob,
}

var (
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeOutputFile string
	analyzeConfigFile string
	analyzeAPIKey     string
	analyzeHeuristic  bool
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job posting text file")
	analyzeJobCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeJobCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeJobCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeJobCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeJobCmd.Flags().BoolVar(&analyzeHeuristic, "heuristic", false, "Use heuristic classification only (no backend calls)")
	analyzeJobCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render SPA job boards in a headless browser")
	analyzeJobCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress")

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigIfSet(analyzeConfigFile)
	if err != nil {
		return err
	}
	merged := cfg.MergeWithDefaults(*cfg)
	if analyzeJobFile == "" {
		analyzeJobFile = merged.Job
	}
	if analyzeJobURL == "" {
		analyzeJobURL = merged.JobURL
	}

	ctx := context.Background()

	text, err := loadPostingText(ctx, analyzeJobFile, analyzeJobURL, analyzeUseBrowser || cfg.UseBrowser)
	if err != nil {
		return err
	}

	opts := &extraction.Options{}
	var client llm.Client
	if !analyzeHeuristic {
		apiKey, keyErr := resolveAPIKey(analyzeAPIKey, cfg)
		if keyErr != nil {
			return keyErr
		}
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create backend client: %w", err)
		}
		defer func() { _ = client.Close() }()
		opts.Classifier = &extraction.BackendClassifier{Client: client}
	}

	reqs, err := extraction.Extract(ctx, text, opts)
	if err != nil {
		return err
	}

	if client != nil {
		if roleErr := extraction.ExtractRole(ctx, client, reqs); roleErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: role extraction failed: %v\n", roleErr)
		}
	}

	if analyzeVerbose || cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintJobRequirements(reqs)
	}

	jsonBytes, err := json.MarshalIndent(reqs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := schemas.Validate(schemas.RequirementsSchema, jsonBytes); err != nil {
		return fmt.Errorf("extracted requirements do not validate: %w", err)
	}

	return writeOutput(analyzeOutputFile, string(jsonBytes))
}
