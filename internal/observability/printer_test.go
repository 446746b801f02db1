package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikael/cv-tailor/internal/types"
)

func TestPrintJobRequirements(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintJobRequirements(&types.JobRequirements{
		RoleTitle: "Backend Engineer",
		Company:   "Acme",
		Seniority: types.SenioritySenior,
		Skills: []types.SkillRequirement{
			{Skill: "Go", Importance: types.ImportanceRequired},
			{Skill: "Terraform", Importance: types.ImportancePreferred},
		},
		Responsibilities: []string{"Build services"},
	})

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED JOB REQUIREMENTS")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "senior")
}

func TestPrintJobRequirementsNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobRequirements(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatchScores(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchScores([]types.MatchScore{
		{
			Entry:         types.EntryRef{Kind: types.KindExperience, ID: "exp_1"},
			Score:         0.82,
			MatchedTokens: []string{"Go", "Kubernetes"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH SCORES")
	assert.Contains(t, out, "experience/exp_1")
	assert.Contains(t, out, "0.82")
}

func TestPrintSelection(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintSelection(&types.Selection{
		Experience: []types.SelectedEntry{
			{Ref: types.EntryRef{Kind: types.KindExperience, ID: "exp_1"}, Score: 0.9},
		},
		Skills: []string{"Go"},
		Budget: types.ContentBudget{MaxExperienceEntries: 5, MaxSkills: 15},
		Style:  types.StyleProfessional,
	})

	out := buf.String()
	assert.Contains(t, out, "CONTENT SELECTION")
	assert.Contains(t, out, "1 / 5")
	assert.Contains(t, out, "exp_1")
}

func TestPrintGapAnalysis(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintGapAnalysis(&types.GapAnalysis{
		MissingSkills: []types.SkillGap{{Skill: "Terraform", Importance: types.ImportancePreferred}},
		Strengths:     []string{"Go depth"},
		CoveredCount:  3,
		RequiredCount: 4,
	})

	out := buf.String()
	assert.Contains(t, out, "GAP ANALYSIS")
	assert.Contains(t, out, "3 / 4")
	assert.Contains(t, out, "Terraform")
}

func TestPrintWarning(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintWarning("something degraded")
	assert.Contains(t, buf.String(), "something degraded")
}
