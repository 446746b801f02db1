package tailoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikael/cv-tailor/internal/types"
)

func selectionFor(p *types.Profile) *types.Selection {
	return &types.Selection{
		Experience: []types.SelectedEntry{
			{
				Ref:          types.EntryRef{Kind: types.KindExperience, ID: p.WorkExperience[0].ID},
				Score:        0.9,
				Achievements: p.WorkExperience[0].Achievements,
			},
		},
		Skills: []string{"Go", "Kubernetes"},
		Style:  types.StyleProfessional,
	}
}

func TestRenderProfileContextOnlySelectedEntries(t *testing.T) {
	p := testProfile()
	sel := selectionFor(p)

	out := RenderProfileContext(p, sel)

	assert.Contains(t, out, "# Dana Smith")
	assert.Contains(t, out, "dana@example.com")
	assert.Contains(t, out, "Backend Engineer, Acme")
	assert.Contains(t, out, "Cut p99 latency by 40%")
	assert.Contains(t, out, "Go, Kubernetes")

	// The unselected old role never reaches the backend.
	assert.NotContains(t, out, "Oldco")
	assert.NotContains(t, out, "PHP monolith")
}

func TestRenderProfileContextCurrentRole(t *testing.T) {
	p := testProfile()
	out := RenderProfileContext(p, selectionFor(p))
	assert.Contains(t, out, "(2024-03 - present)")
}

func TestNewGenerationRequestAssignsID(t *testing.T) {
	p := testProfile()
	first := NewGenerationRequest(p, testRequirements(), selectionFor(p), types.GenerationParams{Document: types.DocumentCV})
	second := NewGenerationRequest(p, testRequirements(), selectionFor(p), types.GenerationParams{Document: types.DocumentCV})

	assert.NotEqual(t, first.ID, second.ID)
	assert.Same(t, p, first.Profile)
}

func TestBuildPromptCV(t *testing.T) {
	p := testProfile()
	req := NewGenerationRequest(p, testRequirements(), selectionFor(p), types.GenerationParams{
		Document: types.DocumentCV,
		Style:    types.StyleProfessional,
	})

	prompt, err := BuildPrompt(req)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Dana Smith")
	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "professional")
	assert.NotContains(t, prompt, "{{.", "all placeholders resolved")
}

func TestBuildPromptBio(t *testing.T) {
	p := testProfile()
	req := NewGenerationRequest(p, nil, selectionFor(p), types.GenerationParams{
		Document: types.DocumentBio,
		Length:   types.BioShort,
		Context:  "linkedin",
	})

	prompt, err := BuildPrompt(req)
	require.NoError(t, err)

	assert.Contains(t, prompt, "short")
	assert.Contains(t, prompt, "50-75 words")
	assert.Contains(t, prompt, "linkedin")
	assert.Contains(t, prompt, "No specific job posting")
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildPromptUnknownDocument(t *testing.T) {
	p := testProfile()
	req := NewGenerationRequest(p, nil, selectionFor(p), types.GenerationParams{Document: types.DocumentType("poster")})

	_, err := BuildPrompt(req)
	require.Error(t, err)
}

func TestBuildPromptExtraInstructions(t *testing.T) {
	p := testProfile()
	req := NewGenerationRequest(p, testRequirements(), selectionFor(p), types.GenerationParams{
		Document:     types.DocumentCV,
		Style:        types.StyleProfessional,
		Instructions: "Emphasize reliability work",
	})

	prompt, err := BuildPrompt(req)
	require.NoError(t, err)
	assert.Contains(t, prompt, "- Emphasize reliability work")
}

func TestRenderRequirementsOmitsSourceText(t *testing.T) {
	reqs := testRequirements()
	reqs.SourceText = "the entire raw posting"

	out := renderRequirements(reqs)
	assert.Contains(t, out, "Backend Engineer")
	assert.NotContains(t, out, "the entire raw posting")
}
