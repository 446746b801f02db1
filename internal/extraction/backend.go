package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mikael/cv-tailor/internal/llm"
	"github.com/mikael/cv-tailor/internal/prompts"
	"github.com/mikael/cv-tailor/internal/types"
)

// BackendClassifier delegates segment classification to the generation
// backend. The backend response is validated and coerced back into the
// deterministic ClassifiedSegment shape, so the non-determinism at the
// boundary never leaks into scoring or selection. Malformed responses are
// rejected with ExtractionError.
type BackendClassifier struct {
	Client llm.Client
}

// backendSegment mirrors the JSON shape the classification prompt requests.
type backendSegment struct {
	Index      int      `json:"index"`
	Kind       string   `json:"kind"`
	Skills     []string `json:"skills"`
	Importance string   `json:"importance"`
}

type backendResponse struct {
	Segments []backendSegment `json:"segments"`
}

// Classify sends the segments to the backend as a structured extraction
// call and validates the response against JobRequirements invariants.
func (c *BackendClassifier) Classify(ctx context.Context, segments []Segment) ([]ClassifiedSegment, error) {
	if c.Client == nil {
		return nil, fmt.Errorf("backend client is not configured")
	}
	if len(segments) == 0 {
		return nil, nil
	}

	prompt := buildClassifyPrompt(segments)
	raw, err := c.Client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("backend classification call failed: %w", err)
	}

	var resp backendResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, &ExtractionError{Message: "backend returned malformed classification JSON", Cause: err}
	}

	return coerceBackendResponse(segments, resp)
}

func buildClassifyPrompt(segments []Segment) string {
	var sb strings.Builder
	for i, seg := range segments {
		fmt.Fprintf(&sb, "%d. %s\n", i, seg.Text)
	}

	template := prompts.MustGet("extraction.json", "classify-segments")
	return prompts.Format(template, map[string]string{
		"Segments": sb.String(),
	})
}

// coerceBackendResponse maps the backend output onto the input segments,
// dropping out-of-range indices and empty skill names, and defaulting
// unknown kinds and importance tags rather than trusting them.
func coerceBackendResponse(segments []Segment, resp backendResponse) ([]ClassifiedSegment, error) {
	if len(resp.Segments) == 0 {
		return nil, &ExtractionError{Message: "backend classification response contained no segments"}
	}

	out := make([]ClassifiedSegment, len(segments))
	for i, seg := range segments {
		// Default every segment, then overlay whatever the backend returned.
		out[i] = ClassifiedSegment{Segment: seg, Kind: SegmentOther, Importance: types.ImportanceImplied}
	}

	matched := 0
	for _, bs := range resp.Segments {
		if bs.Index < 0 || bs.Index >= len(segments) {
			continue
		}
		matched++

		cs := &out[bs.Index]
		cs.Kind = coerceKind(bs.Kind)
		cs.Importance = coerceImportance(bs.Importance, cs.Kind)
		for _, skill := range bs.Skills {
			if s := strings.TrimSpace(skill); s != "" {
				cs.Skills = append(cs.Skills, s)
			}
		}
	}

	if matched == 0 {
		return nil, &ExtractionError{Message: "backend classification response did not match any segment"}
	}

	return out, nil
}

// roleResponse mirrors the JSON shape the extract-role prompt requests.
type roleResponse struct {
	RoleTitle string `json:"role_title"`
	Company   string `json:"company"`
}

// ExtractRole asks the backend for the posting's role title and company
// and fills them into reqs. Failures leave reqs untouched so callers can
// treat role extraction as best-effort.
func ExtractRole(ctx context.Context, client llm.Client, reqs *types.JobRequirements) error {
	if client == nil {
		return fmt.Errorf("backend client is not configured")
	}

	template := prompts.MustGet("extraction.json", "extract-role")
	prompt := prompts.Format(template, map[string]string{
		"JobText": reqs.SourceText,
	})

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return fmt.Errorf("backend role extraction call failed: %w", err)
	}

	var resp roleResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return &ExtractionError{Message: "backend returned malformed role JSON", Cause: err}
	}

	reqs.RoleTitle = strings.TrimSpace(resp.RoleTitle)
	reqs.Company = strings.TrimSpace(resp.Company)
	return nil
}

func coerceKind(kind string) SegmentKind {
	switch SegmentKind(strings.ToLower(strings.TrimSpace(kind))) {
	case SegmentSkill:
		return SegmentSkill
	case SegmentResponsibility:
		return SegmentResponsibility
	case SegmentQualification:
		return SegmentQualification
	default:
		return SegmentOther
	}
}

func coerceImportance(imp string, kind SegmentKind) types.Importance {
	tagged := types.Importance(strings.ToLower(strings.TrimSpace(imp)))
	if tagged.Valid() {
		return tagged
	}
	// Untagged skills in requirement segments default to required,
	// everywhere else to implied.
	if kind == SegmentSkill || kind == SegmentQualification {
		return types.ImportanceRequired
	}
	return types.ImportanceImplied
}
