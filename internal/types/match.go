// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// EntryKind identifies which profile category a knowledge-base entry belongs to.
type EntryKind string

// Knowledge-base entry kinds.
const (
	KindExperience    EntryKind = "experience"
	KindProject       EntryKind = "project"
	KindEducation     EntryKind = "education"
	KindCertification EntryKind = "certification"
)

// EntryRef identifies one knowledge-base entry by kind and stable ID.
type EntryRef struct {
	Kind EntryKind `json:"kind"`
	ID   string    `json:"id"`
}

// MatchScore is the relevance of one knowledge-base entry against one
// requirement set. Score is always in [0,1] and deterministic for identical
// (entry, requirements) inputs; component fields record the breakdown for
// debugging and calibration.
type MatchScore struct {
	Entry         EntryRef `json:"entry"`
	Score         float64  `json:"score"`
	MatchedTokens []string `json:"matched_tokens,omitempty"` // normalized requirement tokens that matched

	// Component scores, each in [0,1], before weighting.
	SkillOverlap          float64 `json:"skill_overlap"`
	ResponsibilityOverlap float64 `json:"responsibility_overlap"`
	Recency               float64 `json:"recency"`
	Completeness          float64 `json:"completeness"`
}
