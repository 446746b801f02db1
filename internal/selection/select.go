package selection

import (
	"sort"
	"strings"

	"github.com/mikael/cv-tailor/internal/extraction"
	"github.com/mikael/cv-tailor/internal/types"
)

// candidate pairs a MatchScore with the ordering facts needed for
// deterministic tie-breaking.
type candidate struct {
	score         types.MatchScore
	startDate     string // "YYYY-MM"; lexicographic compare equals date compare
	originalIndex int
	achievements  []string
}

// Select ranks scored entries within each category and truncates to the
// budget. Ordering within a category: score descending, then recency
// descending, then original profile order, so identical inputs always
// produce identical selections. A category with at least one entry and a
// nonzero cap is never emptied.
func Select(profile *types.Profile, scores []types.MatchScore, budget types.ContentBudget, style types.Style) (*types.Selection, error) {
	if profile == nil {
		return nil, &Error{Message: "profile is required"}
	}

	byRef := make(map[types.EntryRef]types.MatchScore, len(scores))
	for _, sc := range scores {
		byRef[sc.Entry] = sc
	}

	experience := rankExperience(profile, byRef)
	projects := rankProjects(profile, byRef)
	certifications := rankCertifications(profile, byRef)

	sel := &types.Selection{
		Experience:     take(experience, budget.MaxExperienceEntries, budget.MaxAchievements),
		Projects:       take(projects, budget.MaxProjects, 0),
		Certifications: take(certifications, budget.MaxCertifications, 0),
		Skills:         selectSkills(profile, scores, budget.MaxSkills),
		Budget:         budget,
		Style:          style,
	}
	return sel, nil
}

func rankExperience(profile *types.Profile, byRef map[types.EntryRef]types.MatchScore) []candidate {
	out := make([]candidate, 0, len(profile.WorkExperience))
	for i, exp := range profile.WorkExperience {
		ref := types.EntryRef{Kind: types.KindExperience, ID: exp.ID}
		out = append(out, candidate{
			score:         byRef[ref],
			startDate:     exp.StartDate,
			originalIndex: i,
			achievements:  exp.Achievements,
		})
		// Entries missing a score (not indexed) keep a zero MatchScore but
		// still carry their ref for traceability.
		if _, ok := byRef[ref]; !ok {
			out[len(out)-1].score.Entry = ref
		}
	}
	rank(out)
	return out
}

func rankProjects(profile *types.Profile, byRef map[types.EntryRef]types.MatchScore) []candidate {
	out := make([]candidate, 0, len(profile.Projects))
	for i, proj := range profile.Projects {
		ref := types.EntryRef{Kind: types.KindProject, ID: proj.ID}
		c := candidate{score: byRef[ref], startDate: proj.StartDate, originalIndex: i}
		if _, ok := byRef[ref]; !ok {
			c.score.Entry = ref
		}
		out = append(out, c)
	}
	rank(out)
	return out
}

func rankCertifications(profile *types.Profile, byRef map[types.EntryRef]types.MatchScore) []candidate {
	out := make([]candidate, 0, len(profile.Certifications))
	for i, cert := range profile.Certifications {
		ref := types.EntryRef{Kind: types.KindCertification, ID: cert.ID}
		c := candidate{score: byRef[ref], startDate: cert.DateObtained, originalIndex: i}
		if _, ok := byRef[ref]; !ok {
			c.score.Entry = ref
		}
		out = append(out, c)
	}
	rank(out)
	return out
}

// rank orders candidates by score descending, recency descending, then
// stable original profile order.
func rank(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score.Score != cands[j].score.Score {
			return cands[i].score.Score > cands[j].score.Score
		}
		if cands[i].startDate != cands[j].startDate {
			return cands[i].startDate > cands[j].startDate
		}
		return cands[i].originalIndex < cands[j].originalIndex
	})
}

// take truncates ranked candidates to the category cap and, when
// maxAchievements is nonzero, trims each entry's achievements.
func take(cands []candidate, limit int, maxAchievements int) []types.SelectedEntry {
	if limit <= 0 {
		return nil
	}
	if len(cands) > limit {
		cands = cands[:limit]
	}

	out := make([]types.SelectedEntry, 0, len(cands))
	for _, c := range cands {
		entry := types.SelectedEntry{
			Ref:   c.score.Entry,
			Score: c.score.Score,
		}
		if maxAchievements > 0 {
			entry.Achievements = trimAchievements(c.achievements, c.score.MatchedTokens, maxAchievements)
		}
		out = append(out, entry)
	}
	return out
}

// trimAchievements keeps at most limit achievements, preferring those that
// mention a matched requirement token, then original order.
func trimAchievements(achievements, matchedTokens []string, limit int) []string {
	if len(achievements) <= limit {
		return achievements
	}

	var prioritized, rest []string
	for _, a := range achievements {
		if mentionsAny(a, matchedTokens) {
			prioritized = append(prioritized, a)
		} else {
			rest = append(rest, a)
		}
	}

	kept := append(prioritized, rest...)
	return kept[:limit]
}

func mentionsAny(text string, tokens []string) bool {
	lower := strings.ToLower(text)
	for _, tok := range tokens {
		if strings.Contains(lower, strings.ToLower(tok)) {
			return true
		}
	}
	return false
}

// selectSkills builds the budgeted skill list: requirement tokens the
// profile actually matched first (by total matched weight across entries),
// then remaining profile skills in category order.
func selectSkills(profile *types.Profile, scores []types.MatchScore, limit int) []string {
	if limit <= 0 {
		return nil
	}

	// Matched tokens in first-seen order across the stable score slice.
	var ordered []string
	seen := make(map[string]bool)
	for _, sc := range scores {
		for _, tok := range sc.MatchedTokens {
			if !seen[tok] {
				seen[tok] = true
				ordered = append(ordered, tok)
			}
		}
	}

	for _, raw := range profile.TechnicalSkills.All() {
		skill := extraction.NormalizeSkillName(raw)
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		ordered = append(ordered, skill)
	}

	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}
