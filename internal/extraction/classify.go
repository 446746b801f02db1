package extraction

import (
	"context"
	"regexp"
	"strings"

	"github.com/mikael/cv-tailor/internal/types"
)

// SegmentKind buckets a posting segment by what it contributes to the
// requirement set.
type SegmentKind string

// Segment classification buckets.
const (
	SegmentSkill          SegmentKind = "skill"
	SegmentResponsibility SegmentKind = "responsibility"
	SegmentQualification  SegmentKind = "qualification"
	SegmentOther          SegmentKind = "other"
)

// ClassifiedSegment is a posting segment with its bucket and any skill
// tokens found in it.
type ClassifiedSegment struct {
	Segment
	Kind       SegmentKind
	Skills     []string // raw (un-normalized) skill tokens
	Importance types.Importance
}

// Classifier buckets posting segments. Implementations must be
// deterministic for identical input, or isolate non-determinism behind
// validation (see BackendClassifier).
type Classifier interface {
	Classify(ctx context.Context, segments []Segment) ([]ClassifiedSegment, error)
}

// HeuristicClassifier classifies segments with keyword and phrase cues.
// It is the default strategy; no external calls, fully deterministic.
type HeuristicClassifier struct{}

// Cue phrases checked against the lowercased segment text.
var (
	skillCues = []string{
		"experience with", "experience in", "proficiency in", "proficient",
		"knowledge of", "familiarity with", "familiar with", "expertise in",
		"skilled in", "hands-on", "working knowledge", "tech stack",
		"technologies:", "skills:",
	}
	responsibilityCues = []string{
		"you will", "you'll", "responsible for", "responsibilities",
		"design and", "build and", "develop", "implement", "maintain",
		"collaborate", "lead ", "own ", "drive ", "mentor", "participate",
		"contribute", "deliver", "work with", "work closely",
	}
	qualificationCues = []string{
		"degree", "bachelor", "master", "phd", "years of experience",
		"certification", "certified", "qualification", "equivalent experience",
		"track record",
	}
	preferredCues = []string{
		"nice to have", "nice-to-have", "preferred", "a plus", "plus:",
		"bonus", "desirable", "ideally", "would be great", "not required",
	}
	requiredCues = []string{
		"must", "required", "requirement", "essential", "strong", "proven",
		"minimum", "at least",
	}

	yearsExperienceRe = regexp.MustCompile(`\d+\+?\s*(?:years?|yrs?)`)
)

// Classify buckets each segment and extracts skill token candidates.
func (HeuristicClassifier) Classify(_ context.Context, segments []Segment) ([]ClassifiedSegment, error) {
	out := make([]ClassifiedSegment, 0, len(segments))
	for _, seg := range segments {
		out = append(out, classifySegment(seg))
	}
	return out, nil
}

func classifySegment(seg Segment) ClassifiedSegment {
	lower := strings.ToLower(seg.Text)
	skills := extractSkillTokens(seg.Text)

	kind := SegmentOther
	switch {
	case containsAny(lower, qualificationCues) || yearsExperienceRe.MatchString(lower):
		kind = SegmentQualification
	case containsAny(lower, skillCues):
		kind = SegmentSkill
	case containsAny(lower, responsibilityCues):
		kind = SegmentResponsibility
	case len(skills) > 0 && seg.Bullet:
		// Bullet lines that name technologies without verbs are skill lists.
		kind = SegmentSkill
	}

	return ClassifiedSegment{
		Segment:    seg,
		Kind:       kind,
		Skills:     skills,
		Importance: importanceFor(kind, lower),
	}
}

// importanceFor derives the importance tag for skills found in a segment:
// responsibility mentions are implied, explicit preference cues downgrade
// to preferred, everything else in a skill/qualification segment is required.
func importanceFor(kind SegmentKind, lowerText string) types.Importance {
	if containsAny(lowerText, preferredCues) {
		return types.ImportancePreferred
	}
	switch kind {
	case SegmentResponsibility, SegmentOther:
		if containsAny(lowerText, requiredCues) {
			return types.ImportanceRequired
		}
		return types.ImportanceImplied
	default:
		return types.ImportanceRequired
	}
}

func containsAny(s string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(s, cue) {
			return true
		}
	}
	return false
}
