package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikael/cv-tailor/internal/extraction"
	"github.com/mikael/cv-tailor/internal/profile"
	"github.com/mikael/cv-tailor/internal/types"
)

var generateBioCmd = &cobra.Command{
	Use:   "generate-bio",
	Short: "Generate a professional bio from a profile",
	Long:  "Generate a professional bio from the profile knowledge base. With a job posting the bio is tailored to it; without one, content is ranked by recency and completeness.",
	RunE:  runGenerateBio,
}

var (
	bioProfileFile string
	bioJobFile     string
	bioJobURL      string
	bioOutputFile  string
	bioConfigFile  string
	bioAPIKey      string
	bioLength      string
	bioContext     string
	bioUseBrowser  bool
	bioVerbose     bool
)

func init() {
	generateBioCmd.Flags().StringVarP(&bioProfileFile, "profile", "p", "", "Path to profile JSON file (required)")
	generateBioCmd.Flags().StringVarP(&bioJobFile, "job", "j", "", "Path to job posting text file (optional)")
	generateBioCmd.Flags().StringVar(&bioJobURL, "job-url", "", "URL to fetch the job posting from (optional)")
	generateBioCmd.Flags().StringVarP(&bioOutputFile, "out", "o", "", "Path to output file (default: stdout)")
	generateBioCmd.Flags().StringVarP(&bioConfigFile, "config", "c", "", "Path to JSON config file")
	generateBioCmd.Flags().StringVar(&bioAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	generateBioCmd.Flags().StringVarP(&bioLength, "length", "l", "", "Bio length: short, medium, long")
	generateBioCmd.Flags().StringVar(&bioContext, "context", "", "Bio context: general, linkedin, conference, presentation")
	generateBioCmd.Flags().BoolVar(&bioUseBrowser, "use-browser", false, "Render SPA job boards in a headless browser")
	generateBioCmd.Flags().BoolVarP(&bioVerbose, "verbose", "v", false, "Print detailed progress")

	rootCmd.AddCommand(generateBioCmd)
}

func runGenerateBio(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfigIfSet(bioConfigFile)
	if err != nil {
		return err
	}
	if bioProfileFile == "" {
		bioProfileFile = cfg.Profile
	}
	if bioJobFile == "" {
		bioJobFile = cfg.Job
	}
	if bioJobURL == "" {
		bioJobURL = cfg.JobURL
	}
	if bioLength == "" {
		bioLength = cfg.BioLength
	}
	if bioContext == "" {
		bioContext = cfg.BioContext
	}
	if bioOutputFile == "" {
		bioOutputFile = cfg.Output
	}
	if bioProfileFile == "" {
		return fmt.Errorf("must provide --profile")
	}

	apiKey, err := resolveAPIKey(bioAPIKey, cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	verbose := bioVerbose || cfg.Verbose

	p, err := profile.Load(bioProfileFile)
	if err != nil {
		return err
	}

	client, orch, err := newOrchestrator(ctx, apiKey, cfg, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	// A posting is optional for bios. Without one the selector ranks by
	// recency and completeness.
	var reqs *types.JobRequirements
	if bioJobFile != "" || bioJobURL != "" {
		text, loadErr := loadPostingText(ctx, bioJobFile, bioJobURL, bioUseBrowser || cfg.UseBrowser)
		if loadErr != nil {
			return loadErr
		}
		reqs, err = extraction.Extract(ctx, text, &extraction.Options{
			Classifier: &extraction.BackendClassifier{Client: client},
		})
		if err != nil {
			return err
		}
	}

	doc, err := orch.GenerateBio(ctx, p, reqs, types.GenerationParams{
		Length:  types.BioLength(bioLength),
		Context: bioContext,
	})
	if err != nil {
		return err
	}

	return writeOutput(bioOutputFile, doc.Content)
}
