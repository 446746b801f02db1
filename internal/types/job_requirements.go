// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Importance tags how strongly a posting demands a skill.
type Importance string

// Importance levels, highest to lowest scoring weight.
const (
	ImportanceRequired  Importance = "required"
	ImportancePreferred Importance = "preferred"
	ImportanceImplied   Importance = "implied"
)

// Valid reports whether the importance is one of the known levels.
func (i Importance) Valid() bool {
	switch i {
	case ImportanceRequired, ImportancePreferred, ImportanceImplied:
		return true
	}
	return false
}

// Seniority is the estimated level signal extracted from a posting.
type Seniority string

// Seniority estimates, from seniority signal phrases in the posting.
const (
	SeniorityJunior      Seniority = "junior"
	SeniorityMid         Seniority = "mid"
	SenioritySenior      Seniority = "senior"
	SeniorityStaff       Seniority = "staff"
	SeniorityLead        Seniority = "lead"
	SeniorityUnspecified Seniority = "unspecified"
)

// SkillRequirement is a single extracted skill with its importance tag.
// Skill names are normalized (case-folded, synonym-collapsed) at extraction
// so scoring can match "JS" against "JavaScript".
type SkillRequirement struct {
	Skill      string     `json:"skill"`
	Importance Importance `json:"importance"`
	Evidence   string     `json:"evidence,omitempty"` // quoted posting fragment
}

// JobRequirements is the structured requirement set extracted from one posting.
type JobRequirements struct {
	RoleTitle        string             `json:"role_title,omitempty"`
	Company          string             `json:"company,omitempty"`
	Skills           []SkillRequirement `json:"skills"`
	Responsibilities []string           `json:"responsibilities,omitempty"`
	Qualifications   []string           `json:"qualifications,omitempty"`
	Keywords         []string           `json:"keywords,omitempty"` // ATS keyword list, deduplicated
	Seniority        Seniority          `json:"seniority"`
	SourceText       string             `json:"source_text"` // retained for audit/debug
}

// SkillsByImportance returns the skill requirements carrying the given tag,
// preserving extraction order.
func (jr *JobRequirements) SkillsByImportance(imp Importance) []SkillRequirement {
	var out []SkillRequirement
	for _, s := range jr.Skills {
		if s.Importance == imp {
			out = append(out, s)
		}
	}
	return out
}

// HasSkill reports whether the requirement set contains the normalized skill name.
func (jr *JobRequirements) HasSkill(name string) bool {
	for _, s := range jr.Skills {
		if s.Skill == name {
			return true
		}
	}
	return false
}
