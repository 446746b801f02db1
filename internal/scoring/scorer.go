package scoring

import (
	"sort"
	"strings"
	"time"

	"github.com/mikael/cv-tailor/internal/kbindex"
	"github.com/mikael/cv-tailor/internal/types"
)

// Scorer computes MatchScores against a fixed reference time, so identical
// (entry, requirements) pairs always yield identical scores within one
// request. No randomness, no wall-clock reads inside Score.
type Scorer struct {
	weights Weights
	ref     time.Time
}

// NewScorer creates a scorer pinned to the current time.
func NewScorer(weights Weights) *Scorer {
	return NewScorerAt(weights, time.Now())
}

// NewScorerAt creates a scorer pinned to an explicit reference time.
// Tests use this to make recency assertions reproducible.
func NewScorerAt(weights Weights, ref time.Time) *Scorer {
	return &Scorer{weights: weights, ref: ref}
}

// Score computes the relevance of one knowledge-base entry against a
// requirement set. A nil requirements record selects bio mode: pure
// recency plus completeness, no skill-overlap term.
func (s *Scorer) Score(entry kbindex.Entry, reqs *types.JobRequirements) types.MatchScore {
	recency := recencyScore(entry.StartDate, s.ref, s.weights.RecencyWindowYears, s.weights.RecencyFloor)

	if reqs == nil {
		score := clamp01(s.weights.BioRecency*recency + s.weights.BioCompleteness*entry.Completeness)
		return types.MatchScore{
			Entry:        entry.Ref,
			Score:        score,
			Recency:      recency,
			Completeness: entry.Completeness,
		}
	}

	skillOverlap, matched := s.skillOverlap(entry, reqs)
	respOverlap := responsibilityOverlap(entry.Text, reqs.Responsibilities)

	// Even a zero-overlap entry keeps its weighted recency component,
	// which is floored, so selection can fall back to recency.
	score := clamp01(s.weights.SkillOverlap*skillOverlap +
		s.weights.ResponsibilityOverlap*respOverlap +
		s.weights.Recency*recency)

	return types.MatchScore{
		Entry:                 entry.Ref,
		Score:                 score,
		MatchedTokens:         matched,
		SkillOverlap:          skillOverlap,
		ResponsibilityOverlap: respOverlap,
		Recency:               recency,
		Completeness:          entry.Completeness,
	}
}

// ScoreAll scores every indexed entry in stable profile order.
func (s *Scorer) ScoreAll(ix *kbindex.Index, reqs *types.JobRequirements) []types.MatchScore {
	entries := ix.All()
	scores := make([]types.MatchScore, 0, len(entries))
	for _, entry := range entries {
		scores = append(scores, s.Score(entry, reqs))
	}
	return scores
}

// skillOverlap computes the importance-weighted fraction of requirement
// skills the entry covers, plus the matched tokens in sorted order.
func (s *Scorer) skillOverlap(entry kbindex.Entry, reqs *types.JobRequirements) (float64, []string) {
	if len(reqs.Skills) == 0 {
		return 0, nil
	}

	entrySkills := make(map[string]bool, len(entry.Skills))
	for _, skill := range entry.Skills {
		entrySkills[strings.ToLower(skill)] = true
	}

	totalWeight := 0.0
	matchedWeight := 0.0
	var matched []string
	for _, req := range reqs.Skills {
		weight := s.weights.importanceWeight(string(req.Importance))
		totalWeight += weight
		if entrySkills[strings.ToLower(req.Skill)] {
			matchedWeight += weight
			matched = append(matched, req.Skill)
		}
	}

	if totalWeight == 0 {
		return 0, nil
	}

	// Sorted so MatchedTokens is deterministic regardless of map iteration.
	sort.Strings(matched)
	return matchedWeight / totalWeight, matched
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
