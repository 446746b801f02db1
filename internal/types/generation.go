// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// DocumentType selects which document the pipeline produces.
type DocumentType string

// Supported document types.
const (
	DocumentCV  DocumentType = "cv"
	DocumentBio DocumentType = "bio"
)

// Style controls tone and content budget of the generated document.
type Style string

// Supported document styles. Minimal implies tighter content caps.
const (
	StyleProfessional Style = "professional"
	StyleMinimal      Style = "minimal"
	StyleDetailed     Style = "detailed"
)

// BioLength selects a word budget for bio generation.
type BioLength string

// Bio length presets.
const (
	BioShort  BioLength = "short"  // 50-75 words
	BioMedium BioLength = "medium" // 100-150 words
	BioLong   BioLength = "long"   // 200-300 words
)

// GenerationParams carries the style/context/length knobs for one request.
type GenerationParams struct {
	Document     DocumentType `json:"document"`
	Style        Style        `json:"style"`
	Context      string       `json:"context,omitempty"` // general, linkedin, conference, presentation
	Length       BioLength    `json:"length,omitempty"`
	Instructions string       `json:"instructions,omitempty"`
}

// GenerationRequest is the assembled context handed to the generation
// backend. Created per request and discarded after the backend call
// returns; never persisted by this core.
type GenerationRequest struct {
	ID           uuid.UUID        `json:"id"`
	Profile      *Profile         `json:"profile"`
	Requirements *JobRequirements `json:"requirements,omitempty"` // nil for untailored bios
	Selection    *Selection       `json:"selection"`
	Params       GenerationParams `json:"params"`
}

// SkillGap describes one requirement the profile does not cover.
type SkillGap struct {
	Skill      string     `json:"skill"`
	Importance Importance `json:"importance"`
	Note       string     `json:"note,omitempty"`
}

// GapAnalysis summarizes requirement coverage for a (profile, posting) pair.
type GapAnalysis struct {
	MissingSkills []SkillGap `json:"missing_skills"`
	Strengths     []string   `json:"strengths,omitempty"`
	CoveredCount  int        `json:"covered_count"`
	RequiredCount int        `json:"required_count"`
}

// GeneratedDocument is the pipeline output: the produced text plus the
// Selection that shaped it, for traceability back into the profile.
type GeneratedDocument struct {
	Content     string       `json:"content"`
	Type        DocumentType `json:"type"`
	Selection   *Selection   `json:"selection"`
	GapAnalysis *GapAnalysis `json:"gap_analysis,omitempty"`
}
