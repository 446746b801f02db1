// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ContentBudget bounds how much profile content a document may include.
// A zero cap means the category is excluded from the document.
type ContentBudget struct {
	MaxExperienceEntries int `json:"max_experience_entries"`
	MaxProjects          int `json:"max_projects"`
	MaxAchievements      int `json:"max_achievements"` // per experience entry
	MaxSkills            int `json:"max_skills"`
	MaxCertifications    int `json:"max_certifications"`
}

// SelectedEntry is one chosen knowledge-base entry with the score that
// earned its place and, for experience entries, the achievements kept
// within the per-entry budget.
type SelectedEntry struct {
	Ref          EntryRef `json:"ref"`
	Score        float64  `json:"score"`
	Achievements []string `json:"achievements,omitempty"`
}

// Selection is the bounded, ranked subset of profile content chosen for a
// document. Entries within each category are ordered by score descending,
// with ties broken by recency then by original profile order.
type Selection struct {
	Experience     []SelectedEntry `json:"experience"`
	Projects       []SelectedEntry `json:"projects,omitempty"`
	Certifications []SelectedEntry `json:"certifications,omitempty"`
	Skills         []string        `json:"skills"`
	Budget         ContentBudget   `json:"budget"`
	Style          Style           `json:"style"`
}

// EntryIDs returns the selected entry IDs for a category, in selection order.
func (s *Selection) EntryIDs(kind EntryKind) []string {
	var entries []SelectedEntry
	switch kind {
	case KindExperience:
		entries = s.Experience
	case KindProject:
		entries = s.Projects
	case KindCertification:
		entries = s.Certifications
	default:
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Ref.ID)
	}
	return ids
}
