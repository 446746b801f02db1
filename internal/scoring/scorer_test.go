package scoring

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikael/cv-tailor/internal/kbindex"
	"github.com/mikael/cv-tailor/internal/types"
)

var testRef = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func testProfile() *types.Profile {
	return &types.Profile{
		PersonalInfo: types.PersonalInfo{FullName: "Dana Smith"},
		TechnicalSkills: types.TechnicalSkills{
			Programming: []string{"Go", "Python"},
			Databases:   []string{"PostgreSQL"},
		},
		WorkExperience: []types.ExperienceEntry{
			{
				ID: "exp_recent", Company: "Acme", Position: "Backend Engineer",
				StartDate:    "2024-03",
				Description:  "Built payment services in Go on Kubernetes",
				Achievements: []string{"Cut p99 latency by 40%", "Migrated billing to PostgreSQL"},
				Technologies: []string{"Go", "Kubernetes", "PostgreSQL"},
			},
			{
				ID: "exp_old", Company: "Oldco", Position: "Web Developer",
				StartDate:    "2012-01",
				Description:  "Maintained a PHP monolith",
				Technologies: []string{"PHP", "MySQL"},
			},
		},
		Projects: []types.Project{
			{
				ID: "proj_cli", Name: "kubectl plugin",
				Description:  "CLI tooling for Kubernetes operators",
				Technologies: []string{"Go", "Kubernetes"},
				StartDate:    "2023-06",
			},
		},
	}
}

func testRequirements() *types.JobRequirements {
	return &types.JobRequirements{
		RoleTitle: "Backend Engineer",
		Skills: []types.SkillRequirement{
			{Skill: "Go", Importance: types.ImportanceRequired},
			{Skill: "Kubernetes", Importance: types.ImportanceRequired},
			{Skill: "Terraform", Importance: types.ImportancePreferred},
		},
		Responsibilities: []string{"Build payment services in Go"},
		Seniority:        types.SenioritySenior,
	}
}

func TestScoreRange(t *testing.T) {
	scorer := NewScorerAt(DefaultWeights(), testRef)
	ix := kbindex.Build(testProfile())

	for _, score := range scorer.ScoreAll(ix, testRequirements()) {
		assert.GreaterOrEqual(t, score.Score, 0.0)
		assert.LessOrEqual(t, score.Score, 1.0)
	}
}

func TestScoreRangeRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	weights := DefaultWeights()

	skills := []string{"Go", "Python", "Kubernetes", "PostgreSQL", "Terraform", "React", "AWS"}
	importances := []types.Importance{types.ImportanceRequired, types.ImportancePreferred, types.ImportanceImplied}

	for i := 0; i < 200; i++ {
		scorer := NewScorerAt(weights, testRef)

		entry := kbindex.Entry{
			Ref:          types.EntryRef{Kind: types.KindExperience, ID: fmt.Sprintf("e%d", i)},
			Text:         "build and maintain services",
			Skills:       skills[:rng.Intn(len(skills))],
			StartDate:    fmt.Sprintf("%04d-%02d", 2000+rng.Intn(27), 1+rng.Intn(12)),
			Completeness: rng.Float64(),
		}

		var reqSkills []types.SkillRequirement
		for _, s := range skills[:rng.Intn(len(skills))] {
			reqSkills = append(reqSkills, types.SkillRequirement{
				Skill:      s,
				Importance: importances[rng.Intn(len(importances))],
			})
		}
		reqs := &types.JobRequirements{Skills: reqSkills}

		score := scorer.Score(entry, reqs)
		assert.GreaterOrEqual(t, score.Score, 0.0)
		assert.LessOrEqual(t, score.Score, 1.0)
	}
}

func TestScoreDeterministic(t *testing.T) {
	scorer := NewScorerAt(DefaultWeights(), testRef)
	ix := kbindex.Build(testProfile())
	reqs := testRequirements()

	first := scorer.ScoreAll(ix, reqs)
	second := scorer.ScoreAll(ix, reqs)
	assert.Equal(t, first, second)
}

func TestScoreMatchingEntryBeatsUnrelated(t *testing.T) {
	scorer := NewScorerAt(DefaultWeights(), testRef)
	ix := kbindex.Build(testProfile())

	scores := scorer.ScoreAll(ix, testRequirements())
	byID := make(map[string]types.MatchScore)
	for _, s := range scores {
		byID[s.Entry.ID] = s
	}

	assert.Greater(t, byID["exp_recent"].Score, byID["exp_old"].Score)
	assert.Contains(t, byID["exp_recent"].MatchedTokens, "Go")
	assert.Contains(t, byID["exp_recent"].MatchedTokens, "Kubernetes")
	assert.Empty(t, byID["exp_old"].MatchedTokens)
}

func TestScoreRequiredWeighsMoreThanPreferred(t *testing.T) {
	scorer := NewScorerAt(DefaultWeights(), testRef)

	entry := func(skill string) kbindex.Entry {
		return kbindex.Entry{
			Ref:       types.EntryRef{Kind: types.KindExperience, ID: "e"},
			Skills:    []string{skill},
			StartDate: "2024-01",
		}
	}
	reqs := &types.JobRequirements{Skills: []types.SkillRequirement{
		{Skill: "Go", Importance: types.ImportanceRequired},
		{Skill: "Terraform", Importance: types.ImportancePreferred},
	}}

	requiredHit := scorer.Score(entry("Go"), reqs)
	preferredHit := scorer.Score(entry("Terraform"), reqs)
	assert.Greater(t, requiredHit.Score, preferredHit.Score)
}

func TestScoreNoOverlapKeepsRecencyComponent(t *testing.T) {
	weights := DefaultWeights()
	scorer := NewScorerAt(weights, testRef)

	entry := kbindex.Entry{
		Ref:       types.EntryRef{Kind: types.KindExperience, ID: "e"},
		Skills:    []string{"Fortran"},
		StartDate: "1990-01",
	}

	score := scorer.Score(entry, testRequirements())
	// The floored recency term keeps even ancient unrelated entries above zero.
	assert.GreaterOrEqual(t, score.Score, weights.Recency*weights.RecencyFloor)
	assert.Greater(t, score.Score, 0.0)
}

func TestScoreBioMode(t *testing.T) {
	scorer := NewScorerAt(DefaultWeights(), testRef)

	recent := kbindex.Entry{
		Ref:          types.EntryRef{Kind: types.KindExperience, ID: "recent"},
		StartDate:    "2025-01",
		Completeness: 1.0,
	}
	stale := kbindex.Entry{
		Ref:          types.EntryRef{Kind: types.KindExperience, ID: "stale"},
		StartDate:    "2010-01",
		Completeness: 0.25,
	}

	recentScore := scorer.Score(recent, nil)
	staleScore := scorer.Score(stale, nil)

	assert.Greater(t, recentScore.Score, staleScore.Score)
	assert.Zero(t, recentScore.SkillOverlap)
	assert.Empty(t, recentScore.MatchedTokens)
}

func TestScoreAllStableOrder(t *testing.T) {
	scorer := NewScorerAt(DefaultWeights(), testRef)
	ix := kbindex.Build(testProfile())

	scores := scorer.ScoreAll(ix, testRequirements())
	require.Len(t, scores, 3)
	assert.Equal(t, "exp_recent", scores[0].Entry.ID)
	assert.Equal(t, "exp_old", scores[1].Entry.ID)
	assert.Equal(t, "proj_cli", scores[2].Entry.ID)
}
