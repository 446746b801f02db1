package kbindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikael/cv-tailor/internal/types"
)

func indexProfile() *types.Profile {
	return &types.Profile{
		PersonalInfo: types.PersonalInfo{FullName: "Dana Smith"},
		WorkExperience: []types.ExperienceEntry{
			{
				ID: "exp_1", Company: "Acme", Position: "Backend Engineer",
				StartDate:    "2024-03",
				Description:  "Built payment services",
				Achievements: []string{"Cut latency by 40%"},
				Technologies: []string{"golang", "k8s", "Go"},
			},
		},
		Projects: []types.Project{
			{ID: "proj_1", Name: "side project", Technologies: []string{"js"}, StartDate: "2023-01"},
		},
		Education: []types.EducationEntry{
			{ID: "edu_1", Institution: "MIT", Degree: "BSc", FieldOfStudy: "CS", EndDate: "2015-06"},
		},
		Certifications: []types.Certification{
			{ID: "cert_1", Name: "CKA", Issuer: "CNCF", DateObtained: "2022-05"},
		},
	}
}

func TestBuildIndexesAllCategories(t *testing.T) {
	ix := Build(indexProfile())

	assert.Equal(t, 4, ix.Len())
	assert.Len(t, ix.Entries(types.KindExperience), 1)
	assert.Len(t, ix.Entries(types.KindProject), 1)
	assert.Len(t, ix.Entries(types.KindEducation), 1)
	assert.Len(t, ix.Entries(types.KindCertification), 1)
}

func TestBuildStableOrder(t *testing.T) {
	ix := Build(indexProfile())

	all := ix.All()
	require.Len(t, all, 4)
	assert.Equal(t, types.KindExperience, all[0].Ref.Kind)
	assert.Equal(t, types.KindProject, all[1].Ref.Kind)
	assert.Equal(t, types.KindEducation, all[2].Ref.Kind)
	assert.Equal(t, types.KindCertification, all[3].Ref.Kind)
}

func TestBuildNormalizesAndDeduplicatesSkills(t *testing.T) {
	ix := Build(indexProfile())

	exp := ix.Entries(types.KindExperience)[0]
	// "golang" and "Go" collapse to one entry; "k8s" becomes Kubernetes.
	assert.Equal(t, []string{"Go", "Kubernetes"}, exp.Skills)
}

func TestBySkillNormalizesLookupToken(t *testing.T) {
	ix := Build(indexProfile())

	hits := ix.BySkill("golang")
	require.Len(t, hits, 1)
	assert.Equal(t, "exp_1", hits[0].Ref.ID)

	hits = ix.BySkill("JS")
	require.Len(t, hits, 1)
	assert.Equal(t, "proj_1", hits[0].Ref.ID)

	assert.Empty(t, ix.BySkill("COBOL"))
}

func TestEntryTextIncludesAchievements(t *testing.T) {
	ix := Build(indexProfile())

	exp := ix.Entries(types.KindExperience)[0]
	assert.Contains(t, exp.Text, "Built payment services")
	assert.Contains(t, exp.Text, "Cut latency by 40%")
}

func TestCompleteness(t *testing.T) {
	ix := Build(indexProfile())

	exp := ix.Entries(types.KindExperience)[0]
	assert.InDelta(t, 1.0, exp.Completeness, 1e-9, "all experience facets filled")

	proj := ix.Entries(types.KindProject)[0]
	assert.InDelta(t, 1.0/3.0, proj.Completeness, 1e-9, "only technologies filled")

	cert := ix.Entries(types.KindCertification)[0]
	assert.InDelta(t, 1.0, cert.Completeness, 1e-9)
}

func TestBuildEmptyProfile(t *testing.T) {
	ix := Build(&types.Profile{PersonalInfo: types.PersonalInfo{FullName: "X"}})
	assert.Zero(t, ix.Len())
	assert.Empty(t, ix.All())
}
