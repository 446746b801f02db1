// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Profile is an immutable-per-request snapshot of a user's knowledge base.
// It is consumed read-only by the matching engine; callers own persistence.
type Profile struct {
	PersonalInfo        PersonalInfo      `json:"personal_info" validate:"required"`
	ProfessionalSummary string            `json:"professional_summary,omitempty"`
	TechnicalSkills     TechnicalSkills   `json:"technical_skills"`
	SoftSkills          []string          `json:"soft_skills,omitempty"`
	WorkExperience      []ExperienceEntry `json:"work_experience" validate:"dive"`
	Education           []EducationEntry  `json:"education,omitempty" validate:"dive"`
	Projects            []Project         `json:"projects,omitempty" validate:"dive"`
	Certifications      []Certification   `json:"certifications,omitempty"`
	Languages           []string          `json:"languages,omitempty"`
}

// PersonalInfo holds contact and identity details for document headers.
type PersonalInfo struct {
	FullName  string `json:"full_name" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub    string `json:"github,omitempty" validate:"omitempty,url"`
	Portfolio string `json:"portfolio,omitempty" validate:"omitempty,url"`
}

// TechnicalSkills groups skills by category, mirroring the profile JSON schema.
type TechnicalSkills struct {
	Programming []string `json:"programming,omitempty"`
	Frameworks  []string `json:"frameworks,omitempty"`
	Tools       []string `json:"tools,omitempty"`
	Databases   []string `json:"databases,omitempty"`
	Cloud       []string `json:"cloud,omitempty"`
	Other       []string `json:"other,omitempty"`
}

// All returns every technical skill across categories, preserving category order.
func (ts TechnicalSkills) All() []string {
	all := make([]string, 0,
		len(ts.Programming)+len(ts.Frameworks)+len(ts.Tools)+len(ts.Databases)+len(ts.Cloud)+len(ts.Other))
	all = append(all, ts.Programming...)
	all = append(all, ts.Frameworks...)
	all = append(all, ts.Tools...)
	all = append(all, ts.Databases...)
	all = append(all, ts.Cloud...)
	all = append(all, ts.Other...)
	return all
}

// ExperienceEntry is a single work-experience record with a stable ID
// for traceability from generated output back to source content.
type ExperienceEntry struct {
	ID           string   `json:"id"`
	Company      string   `json:"company" validate:"required"`
	Position     string   `json:"position" validate:"required"`
	StartDate    string   `json:"start_date" validate:"required"` // "YYYY-MM"
	EndDate      string   `json:"end_date,omitempty"`             // empty means current
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// EducationEntry is a single education record.
type EducationEntry struct {
	ID           string   `json:"id"`
	Institution  string   `json:"institution" validate:"required"`
	Degree       string   `json:"degree" validate:"required"`
	FieldOfStudy string   `json:"field_of_study,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Project is a personal or professional project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
	GitHubURL    string   `json:"github_url,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
}

// Certification is a professional certification entry.
type Certification struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	DateObtained string `json:"date_obtained,omitempty"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}
