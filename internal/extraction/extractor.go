// Package extraction turns free-text job postings into structured
// JobRequirements: segmentation, classification, skill normalization,
// and seniority estimation. Classification is a pluggable strategy so the
// heuristic path can be swapped for a backend-assisted one without
// touching scoring or selection.
package extraction

import (
	"context"
	"strings"

	"github.com/mikael/cv-tailor/internal/types"
)

// MinPostingWords is the minimum word count for a posting to be considered
// useful. Shorter input is rejected with ExtractionError so callers can
// prompt for a better posting instead of producing a hollow requirement set.
const MinPostingWords = 20

// Options configures extraction behavior.
type Options struct {
	// Classifier buckets posting segments. Nil selects HeuristicClassifier.
	Classifier Classifier
}

// Extract parses raw posting text into a JobRequirements record.
// The returned record has normalized, deduplicated skill names, each tagged
// with an importance level, and retains the source text for audit.
func Extract(ctx context.Context, text string, opts *Options) (*types.JobRequirements, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &ExtractionError{Message: "job posting text is empty"}
	}
	if wordCount(trimmed) < MinPostingWords {
		return nil, &ExtractionError{Message: "job posting text is too short to analyze"}
	}

	classifier := Classifier(HeuristicClassifier{})
	if opts != nil && opts.Classifier != nil {
		classifier = opts.Classifier
	}

	segments := SegmentText(trimmed)
	classified, err := classifier.Classify(ctx, segments)
	if err != nil {
		return nil, &ExtractionError{Message: "segment classification failed", Cause: err}
	}

	reqs := buildRequirements(trimmed, classified)
	if len(reqs.Skills) == 0 && len(reqs.Responsibilities) == 0 {
		return nil, &ExtractionError{Message: "no requirements could be extracted from posting"}
	}

	return reqs, nil
}

// buildRequirements assembles the requirement set from classified segments
// and enforces the JobRequirements invariants: normalized deduplicated
// skills and deduplicated keywords.
func buildRequirements(sourceText string, classified []ClassifiedSegment) *types.JobRequirements {
	var (
		skills           []types.SkillRequirement
		responsibilities []string
		qualifications   []string
		keywords         []string
	)

	for _, seg := range classified {
		for _, raw := range seg.Skills {
			skills = append(skills, types.SkillRequirement{
				Skill:      raw,
				Importance: seg.Importance,
				Evidence:   seg.Text,
			})
			keywords = append(keywords, raw)
		}

		switch seg.Kind {
		case SegmentResponsibility:
			responsibilities = append(responsibilities, seg.Text)
		case SegmentQualification:
			qualifications = append(qualifications, seg.Text)
		}
	}

	return &types.JobRequirements{
		Skills:           NormalizeSkills(skills),
		Responsibilities: dedupeStrings(responsibilities),
		Qualifications:   dedupeStrings(qualifications),
		Keywords:         NormalizeKeywords(keywords),
		Seniority:        EstimateSeniority(sourceText),
		SourceText:       sourceText,
	}
}

func dedupeStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool)
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
