// Package kbindex builds an in-memory queryable view over a Profile:
// lookup by normalized skill token and by entry category. The index is
// built once per profile load, never mutates the source Profile, and is
// safe for concurrent readers after construction.
package kbindex

import (
	"strings"

	"github.com/mikael/cv-tailor/internal/extraction"
	"github.com/mikael/cv-tailor/internal/types"
)

// Entry is the indexed view of one knowledge-base entry, flattened for
// scoring: normalized skills, searchable text, and dates.
type Entry struct {
	Ref           types.EntryRef
	Title         string
	Text          string   // description plus achievements, for fuzzy overlap
	Skills        []string // normalized, deduplicated
	Achievements  []string
	StartDate     string // "YYYY-MM", empty when unknown
	EndDate       string
	OriginalIndex int // position within its profile category
	Completeness  float64
}

// Index holds the lookup tables for one Profile snapshot.
type Index struct {
	entries []Entry
	bySkill map[string][]int          // normalized skill -> entry positions
	byKind  map[types.EntryKind][]int // category -> entry positions
}

// Build constructs the index from a profile. Cost is O(profile size);
// rebuilding after a profile edit is the caller's responsibility.
func Build(profile *types.Profile) *Index {
	ix := &Index{
		bySkill: make(map[string][]int),
		byKind:  make(map[types.EntryKind][]int),
	}

	for i, exp := range profile.WorkExperience {
		ix.add(Entry{
			Ref:           types.EntryRef{Kind: types.KindExperience, ID: exp.ID},
			Title:         exp.Position + " at " + exp.Company,
			Text:          joinText(exp.Description, exp.Achievements),
			Skills:        normalizeSkillSet(exp.Technologies),
			Achievements:  exp.Achievements,
			StartDate:     exp.StartDate,
			EndDate:       exp.EndDate,
			OriginalIndex: i,
			Completeness:  experienceCompleteness(exp),
		})
	}

	for i, proj := range profile.Projects {
		ix.add(Entry{
			Ref:           types.EntryRef{Kind: types.KindProject, ID: proj.ID},
			Title:         proj.Name,
			Text:          proj.Description,
			Skills:        normalizeSkillSet(proj.Technologies),
			StartDate:     proj.StartDate,
			EndDate:       proj.EndDate,
			OriginalIndex: i,
			Completeness:  projectCompleteness(proj),
		})
	}

	for i, edu := range profile.Education {
		ix.add(Entry{
			Ref:           types.EntryRef{Kind: types.KindEducation, ID: edu.ID},
			Title:         edu.Degree + ", " + edu.Institution,
			Text:          joinText(edu.FieldOfStudy, edu.Achievements),
			StartDate:     edu.StartDate,
			EndDate:       edu.EndDate,
			OriginalIndex: i,
			Completeness:  educationCompleteness(edu),
		})
	}

	for i, cert := range profile.Certifications {
		ix.add(Entry{
			Ref:           types.EntryRef{Kind: types.KindCertification, ID: cert.ID},
			Title:         cert.Name,
			Text:          cert.Name + " " + cert.Issuer,
			Skills:        normalizeSkillSet([]string{cert.Name}),
			StartDate:     cert.DateObtained,
			OriginalIndex: i,
			Completeness:  certificationCompleteness(cert),
		})
	}

	return ix
}

func (ix *Index) add(entry Entry) {
	pos := len(ix.entries)
	ix.entries = append(ix.entries, entry)
	ix.byKind[entry.Ref.Kind] = append(ix.byKind[entry.Ref.Kind], pos)
	for _, skill := range entry.Skills {
		key := strings.ToLower(skill)
		ix.bySkill[key] = append(ix.bySkill[key], pos)
	}
}

// All returns every indexed entry in stable profile order
// (experience, projects, education, certifications).
func (ix *Index) All() []Entry {
	return ix.entries
}

// Entries returns the indexed entries of one category, in profile order.
func (ix *Index) Entries(kind types.EntryKind) []Entry {
	positions := ix.byKind[kind]
	out := make([]Entry, 0, len(positions))
	for _, pos := range positions {
		out = append(out, ix.entries[pos])
	}
	return out
}

// BySkill returns every entry referencing the given skill token.
// The token is normalized before lookup, so "js" finds JavaScript entries.
func (ix *Index) BySkill(token string) []Entry {
	key := strings.ToLower(extraction.NormalizeSkillName(token))
	positions := ix.bySkill[key]
	out := make([]Entry, 0, len(positions))
	for _, pos := range positions {
		out = append(out, ix.entries[pos])
	}
	return out
}

// Len returns the total number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

func normalizeSkillSet(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]bool)
	for _, s := range raw {
		normalized := extraction.NormalizeSkillName(s)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

func joinText(description string, achievements []string) string {
	parts := make([]string, 0, len(achievements)+1)
	if description != "" {
		parts = append(parts, description)
	}
	parts = append(parts, achievements...)
	return strings.Join(parts, " ")
}

// Completeness measures how much usable content an entry carries, as the
// filled fraction of its content facets. Used by bio ranking when no
// requirements are available.

func experienceCompleteness(exp types.ExperienceEntry) float64 {
	return filledFraction(
		exp.Description != "",
		len(exp.Achievements) > 0,
		len(exp.Technologies) > 0,
		exp.StartDate != "",
	)
}

func projectCompleteness(proj types.Project) float64 {
	return filledFraction(
		proj.Description != "",
		len(proj.Technologies) > 0,
		proj.URL != "" || proj.GitHubURL != "",
	)
}

func educationCompleteness(edu types.EducationEntry) float64 {
	return filledFraction(
		edu.FieldOfStudy != "",
		edu.EndDate != "",
		len(edu.Achievements) > 0 || edu.GPA != "",
	)
}

func certificationCompleteness(cert types.Certification) float64 {
	return filledFraction(
		cert.Issuer != "",
		cert.DateObtained != "",
	)
}

func filledFraction(facets ...bool) float64 {
	if len(facets) == 0 {
		return 0
	}
	filled := 0
	for _, f := range facets {
		if f {
			filled++
		}
	}
	return float64(filled) / float64(len(facets))
}
