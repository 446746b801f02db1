package tailoring

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mikael/cv-tailor/internal/prompts"
	"github.com/mikael/cv-tailor/internal/types"
)

// NewGenerationRequest assembles the per-request context handed to the
// generation backend. The request carries a fresh UUID for traceability
// and is discarded after the backend call returns.
func NewGenerationRequest(p *types.Profile, reqs *types.JobRequirements, sel *types.Selection, params types.GenerationParams) *types.GenerationRequest {
	return &types.GenerationRequest{
		ID:           uuid.New(),
		Profile:      p,
		Requirements: reqs,
		Selection:    sel,
		Params:       params,
	}
}

// BuildPrompt renders the backend prompt for a generation request.
func BuildPrompt(req *types.GenerationRequest) (string, error) {
	switch req.Params.Document {
	case types.DocumentCV:
		return buildCVPrompt(req)
	case types.DocumentBio:
		return buildBioPrompt(req)
	default:
		return "", fmt.Errorf("unknown document type %q", req.Params.Document)
	}
}

func buildCVPrompt(req *types.GenerationRequest) (string, error) {
	template := prompts.MustGet("tailoring.json", "tailor-cv")
	return prompts.Format(template, map[string]string{
		"Requirements":   renderRequirements(req.Requirements),
		"ProfileContext": RenderProfileContext(req.Profile, req.Selection),
		"Style":          string(req.Params.Style),
		"Instructions":   extraInstructions(req.Params),
	}), nil
}

func buildBioPrompt(req *types.GenerationRequest) (string, error) {
	template := prompts.MustGet("tailoring.json", "generate-bio")

	context := req.Params.Context
	if context == "" {
		context = "general"
	}
	length := req.Params.Length
	if length == "" {
		length = types.BioMedium
	}

	return prompts.Format(template, map[string]string{
		"ProfileContext":  RenderProfileContext(req.Profile, req.Selection),
		"Requirements":    renderRequirements(req.Requirements),
		"Length":          string(length),
		"LengthGuideline": lengthGuideline(length),
		"Context":         context,
		"Style":           string(req.Params.Style),
		"Instructions":    extraInstructions(req.Params),
	}), nil
}

// BuildGapAnalysisPrompt renders the prompt for the supplemental gap
// analysis call.
func BuildGapAnalysisPrompt(req *types.GenerationRequest) string {
	template := prompts.MustGet("tailoring.json", "gap-analysis")
	return prompts.Format(template, map[string]string{
		"Requirements":   renderRequirements(req.Requirements),
		"ProfileContext": RenderProfileContext(req.Profile, req.Selection),
	})
}

func lengthGuideline(length types.BioLength) string {
	switch length {
	case types.BioShort:
		return "50-75 words, elevator pitch"
	case types.BioLong:
		return "200-300 words, multiple paragraphs"
	default:
		return "100-150 words, one paragraph"
	}
}

func extraInstructions(params types.GenerationParams) string {
	if params.Instructions == "" {
		return ""
	}
	return "- " + params.Instructions
}

// renderRequirements serializes the requirement set for prompt inclusion,
// dropping the raw source text to keep the context compact.
func renderRequirements(reqs *types.JobRequirements) string {
	if reqs == nil {
		return "No specific job posting; write for a general professional audience."
	}

	trimmed := *reqs
	trimmed.SourceText = ""
	data, err := json.MarshalIndent(&trimmed, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

// RenderProfileContext renders the selected subset of the profile as
// Markdown for the generation backend. Only selected entries appear, so
// the backend never sees content the selector excluded.
func RenderProfileContext(p *types.Profile, sel *types.Selection) string {
	var sb strings.Builder

	sb.WriteString("# " + p.PersonalInfo.FullName + "\n")
	writeContactLine(&sb, p.PersonalInfo)
	if p.ProfessionalSummary != "" {
		sb.WriteString("\n## Summary\n" + p.ProfessionalSummary + "\n")
	}

	if len(sel.Experience) > 0 {
		sb.WriteString("\n## Experience\n")
		expByID := make(map[string]types.ExperienceEntry, len(p.WorkExperience))
		for _, exp := range p.WorkExperience {
			expByID[exp.ID] = exp
		}
		for _, chosen := range sel.Experience {
			exp, ok := expByID[chosen.Ref.ID]
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "\n### %s, %s (%s - %s)\n", exp.Position, exp.Company, exp.StartDate, orPresent(exp.EndDate))
			if exp.Description != "" {
				sb.WriteString(exp.Description + "\n")
			}
			achievements := chosen.Achievements
			if achievements == nil {
				achievements = exp.Achievements
			}
			for _, a := range achievements {
				sb.WriteString("- " + a + "\n")
			}
			if len(exp.Technologies) > 0 {
				sb.WriteString("Technologies: " + strings.Join(exp.Technologies, ", ") + "\n")
			}
		}
	}

	if len(sel.Skills) > 0 {
		sb.WriteString("\n## Skills\n" + strings.Join(sel.Skills, ", ") + "\n")
	}

	if len(sel.Projects) > 0 {
		sb.WriteString("\n## Projects\n")
		projByID := make(map[string]types.Project, len(p.Projects))
		for _, proj := range p.Projects {
			projByID[proj.ID] = proj
		}
		for _, chosen := range sel.Projects {
			proj, ok := projByID[chosen.Ref.ID]
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "\n### %s\n", proj.Name)
			if proj.Description != "" {
				sb.WriteString(proj.Description + "\n")
			}
			if len(proj.Technologies) > 0 {
				sb.WriteString("Technologies: " + strings.Join(proj.Technologies, ", ") + "\n")
			}
		}
	}

	if len(p.Education) > 0 {
		sb.WriteString("\n## Education\n")
		for _, edu := range p.Education {
			fmt.Fprintf(&sb, "- %s, %s", edu.Degree, edu.Institution)
			if edu.FieldOfStudy != "" {
				sb.WriteString(" (" + edu.FieldOfStudy + ")")
			}
			if edu.EndDate != "" {
				sb.WriteString(", " + edu.EndDate)
			}
			sb.WriteString("\n")
		}
	}

	if len(sel.Certifications) > 0 {
		sb.WriteString("\n## Certifications\n")
		certByID := make(map[string]types.Certification, len(p.Certifications))
		for _, cert := range p.Certifications {
			certByID[cert.ID] = cert
		}
		for _, chosen := range sel.Certifications {
			if cert, ok := certByID[chosen.Ref.ID]; ok {
				sb.WriteString("- " + cert.Name)
				if cert.Issuer != "" {
					sb.WriteString(", " + cert.Issuer)
				}
				sb.WriteString("\n")
			}
		}
	}

	if len(p.Languages) > 0 {
		sb.WriteString("\n## Languages\n" + strings.Join(p.Languages, ", ") + "\n")
	}

	return sb.String()
}

func writeContactLine(sb *strings.Builder, info types.PersonalInfo) {
	var parts []string
	for _, v := range []string{info.Email, info.Phone, info.Location, info.LinkedIn, info.GitHub, info.Portfolio} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		sb.WriteString(strings.Join(parts, " | ") + "\n")
	}
}

func orPresent(endDate string) string {
	if endDate == "" {
		return "present"
	}
	return endDate
}
