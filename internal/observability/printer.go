// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mikael/cv-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintWarning outputs a single-line warning.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarning(msg string) {
	fmt.Fprintf(p.out, "⚠ %s\n", msg)
}

// PrintJobRequirements outputs a human-readable summary of extracted requirements.
func (p *Printer) PrintJobRequirements(reqs *types.JobRequirements) {
	if reqs == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:   %s\n", orDash(reqs.Company)))
	sb.WriteString(fmt.Sprintf("Role:      %s\n", orDash(reqs.RoleTitle)))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", orDash(string(reqs.Seniority))))
	sb.WriteString("\n")

	required := reqs.SkillsByImportance(types.ImportanceRequired)
	if len(required) > 0 {
		sb.WriteString("Required Skills:\n")
		writeSkillList(&sb, required, maxItemsToShow)
		sb.WriteString("\n")
	}

	preferred := reqs.SkillsByImportance(types.ImportancePreferred)
	if len(preferred) > 0 {
		sb.WriteString("Preferred Skills:\n")
		writeSkillList(&sb, preferred, 3)
		sb.WriteString("\n")
	}

	if len(reqs.Responsibilities) > 0 {
		sb.WriteString(fmt.Sprintf("Responsibilities: %d extracted\n", len(reqs.Responsibilities)))
	}
	if len(reqs.Qualifications) > 0 {
		sb.WriteString(fmt.Sprintf("Qualifications:   %d extracted\n", len(reqs.Qualifications)))
	}

	p.printBox("EXTRACTED JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSkillList(sb *strings.Builder, skills []types.SkillRequirement, limit int) {
	count := min(len(skills), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i].Skill))
	}
	if len(skills) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-limit))
	}
}

// PrintMatchScores outputs the top scored knowledge base entries.
func (p *Printer) PrintMatchScores(scores []types.MatchScore) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total entries scored: %d\n\n", len(scores)))

	count := min(len(scores), maxItemsToShow)
	for i := 0; i < count; i++ {
		score := scores[i]
		sb.WriteString(fmt.Sprintf("#%d  %s/%s\n", i+1, score.Entry.Kind, score.Entry.ID))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (skills %.2f, resp %.2f, recency %.2f)\n",
			score.Score, score.SkillOverlap, score.ResponsibilityOverlap, score.Recency))
		if len(score.MatchedTokens) > 0 {
			tokens := strings.Join(score.MatchedTokens, ", ")
			if len(tokens) > 40 {
				tokens = tokens[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", tokens))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MATCH SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelection outputs what the content selector kept under the budget.
func (p *Printer) PrintSelection(sel *types.Selection) {
	if sel == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Style: %s\n\n", sel.Style))
	sb.WriteString(fmt.Sprintf("Experience:     %d / %d\n", len(sel.Experience), sel.Budget.MaxExperienceEntries))
	sb.WriteString(fmt.Sprintf("Projects:       %d / %d\n", len(sel.Projects), sel.Budget.MaxProjects))
	sb.WriteString(fmt.Sprintf("Certifications: %d / %d\n", len(sel.Certifications), sel.Budget.MaxCertifications))
	sb.WriteString(fmt.Sprintf("Skills:         %d / %d\n", len(sel.Skills), sel.Budget.MaxSkills))

	if len(sel.Experience) > 0 {
		sb.WriteString("\nSelected experience:\n")
		count := min(len(sel.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := sel.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s (%.2f)\n", entry.Ref.ID, entry.Score))
		}
	}

	p.printBox("CONTENT SELECTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs missing skills and coverage counts.
func (p *Printer) PrintGapAnalysis(gaps *types.GapAnalysis) {
	if gaps == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Required skills covered: %d / %d\n", gaps.CoveredCount, gaps.RequiredCount))

	if len(gaps.MissingSkills) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(gaps.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := gaps.MissingSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", gap.Skill, gap.Importance))
		}
		if len(gaps.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(gaps.MissingSkills)-maxItemsToShow))
		}
	}

	if len(gaps.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(gaps.Strengths), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", gaps.Strengths[i]))
		}
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
