package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikael/cv-tailor/internal/profile"
)

var validateProfileCmd = &cobra.Command{
	Use:   "validate-profile",
	Short: "Validate a profile JSON file",
	Long:  "Check a profile JSON file against the profile schema and struct-level validation rules without calling any backend.",
	RunE:  runValidateProfile,
}

var validateProfileFile string

func init() {
	validateProfileCmd.Flags().StringVarP(&validateProfileFile, "profile", "p", "", "Path to profile JSON file (required)")
	_ = validateProfileCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(validateProfileCmd)
}

func runValidateProfile(_ *cobra.Command, _ []string) error {
	p, err := profile.Load(validateProfileFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Profile is valid: %s\n", p.PersonalInfo.FullName)
	fmt.Fprintf(os.Stdout, "  work experience: %d\n", len(p.WorkExperience))
	fmt.Fprintf(os.Stdout, "  projects:        %d\n", len(p.Projects))
	fmt.Fprintf(os.Stdout, "  education:       %d\n", len(p.Education))
	fmt.Fprintf(os.Stdout, "  certifications:  %d\n", len(p.Certifications))
	return nil
}
