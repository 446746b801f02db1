package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikael/cv-tailor/internal/extraction"
	"github.com/mikael/cv-tailor/internal/observability"
	"github.com/mikael/cv-tailor/internal/profile"
	"github.com/mikael/cv-tailor/internal/tailoring"
	"github.com/mikael/cv-tailor/internal/types"
)

var tailorCVCmd = &cobra.Command{
	Use:   "tailor-cv",
	Short: "Generate a CV tailored to a job posting",
	Long:  "Extract requirements from a job posting, select the most relevant profile content under the style budget, and generate a tailored CV in Markdown.",
	RunE:  runTailorCV,
}

var (
	tailorProfileFile string
	tailorJobFile     string
	tailorJobURL      string
	tailorOutputFile  string
	tailorConfigFile  string
	tailorAPIKey      string
	tailorStyle       string
	tailorUseBrowser  bool
	tailorVerbose     bool
)

func init() {
	tailorCVCmd.Flags().StringVarP(&tailorProfileFile, "profile", "p", "", "Path to profile JSON file (required)")
	tailorCVCmd.Flags().StringVarP(&tailorJobFile, "job", "j", "", "Path to job posting text file")
	tailorCVCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch the job posting from")
	tailorCVCmd.Flags().StringVarP(&tailorOutputFile, "out", "o", "", "Path to output Markdown file (default: stdout)")
	tailorCVCmd.Flags().StringVarP(&tailorConfigFile, "config", "c", "", "Path to JSON config file")
	tailorCVCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	tailorCVCmd.Flags().StringVarP(&tailorStyle, "style", "s", "", "Document style: professional, minimal, detailed")
	tailorCVCmd.Flags().BoolVar(&tailorUseBrowser, "use-browser", false, "Render SPA job boards in a headless browser")
	tailorCVCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed progress")

	rootCmd.AddCommand(tailorCVCmd)
}

func runTailorCV(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigIfSet(tailorConfigFile)
	if err != nil {
		return err
	}
	if tailorProfileFile == "" {
		tailorProfileFile = cfg.Profile
	}
	if tailorJobFile == "" {
		tailorJobFile = cfg.Job
	}
	if tailorJobURL == "" {
		tailorJobURL = cfg.JobURL
	}
	if tailorStyle == "" {
		tailorStyle = cfg.Style
	}
	if tailorOutputFile == "" {
		tailorOutputFile = cfg.Output
	}
	if tailorProfileFile == "" {
		return fmt.Errorf("must provide --profile")
	}

	apiKey, err := resolveAPIKey(tailorAPIKey, cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	verbose := tailorVerbose || cfg.Verbose

	p, err := profile.Load(tailorProfileFile)
	if err != nil {
		return err
	}

	text, err := loadPostingText(ctx, tailorJobFile, tailorJobURL, tailorUseBrowser || cfg.UseBrowser)
	if err != nil {
		return err
	}

	client, orch, err := newOrchestrator(ctx, apiKey, cfg, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	reqs, err := extraction.Extract(ctx, text, &extraction.Options{
		Classifier: &extraction.BackendClassifier{Client: client},
	})
	if err != nil {
		return err
	}
	if roleErr := extraction.ExtractRole(ctx, client, reqs); roleErr != nil && verbose {
		fmt.Fprintf(os.Stderr, "Warning: role extraction failed: %v\n", roleErr)
	}
	if verbose {
		observability.NewPrinter(os.Stderr).PrintJobRequirements(reqs)
	}

	doc, err := orch.TailorCV(ctx, p, reqs, types.GenerationParams{
		Style: types.Style(tailorStyle),
	})
	if err != nil {
		var genErr *tailoring.GenerationError
		if errors.As(err, &genErr) && doc != nil && doc.Selection != nil {
			fmt.Fprintf(os.Stderr, "Selection was computed before the failure:\n")
			observability.NewPrinter(os.Stderr).PrintSelection(doc.Selection)
		}
		return err
	}

	if verbose && doc.GapAnalysis != nil {
		observability.NewPrinter(os.Stderr).PrintGapAnalysis(doc.GapAnalysis)
	}

	return writeOutput(tailorOutputFile, doc.Content)
}
