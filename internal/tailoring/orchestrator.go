// Package tailoring coordinates the end-to-end pipeline: index the
// profile, score it against extracted requirements, select content under
// the style budget, and drive the generation backend.
package tailoring

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikael/cv-tailor/internal/extraction"
	"github.com/mikael/cv-tailor/internal/kbindex"
	"github.com/mikael/cv-tailor/internal/llm"
	"github.com/mikael/cv-tailor/internal/observability"
	"github.com/mikael/cv-tailor/internal/profile"
	"github.com/mikael/cv-tailor/internal/scoring"
	"github.com/mikael/cv-tailor/internal/selection"
	"github.com/mikael/cv-tailor/internal/types"
)

// Options configures an Orchestrator beyond its backend client.
type Options struct {
	// Weights overrides the default scoring calibration.
	Weights *scoring.Weights
	// ReferenceTime pins recency scoring to a fixed instant. Zero means
	// the orchestrator's construction time.
	ReferenceTime time.Time
	// Printer receives progress output when non-nil.
	Printer *observability.Printer
}

// Orchestrator runs the tailoring pipeline. The scoring reference time is
// pinned at construction, so repeated runs over the same inputs produce
// identical selections.
type Orchestrator struct {
	backend llm.Client
	scorer  *scoring.Scorer
	printer *observability.Printer
}

// New builds an Orchestrator around a generation backend. opts may be nil.
func New(backend llm.Client, opts *Options) *Orchestrator {
	weights := scoring.DefaultWeights()
	ref := time.Now()
	var printer *observability.Printer
	if opts != nil {
		if opts.Weights != nil {
			weights = *opts.Weights
		}
		if !opts.ReferenceTime.IsZero() {
			ref = opts.ReferenceTime
		}
		printer = opts.Printer
	}
	return &Orchestrator{
		backend: backend,
		scorer:  scoring.NewScorerAt(weights, ref),
		printer: printer,
	}
}

// TailorCV produces a CV tailored to the given requirements. The backend
// CV call is fatal; the supplemental gap analysis degrades gracefully. On
// a backend failure the returned document still carries the computed
// Selection so callers can inspect what would have been generated.
func (o *Orchestrator) TailorCV(ctx context.Context, p *types.Profile, reqs *types.JobRequirements, params types.GenerationParams) (*types.GeneratedDocument, error) {
	if err := profile.Validate(p); err != nil {
		return nil, err
	}
	if reqs == nil {
		return nil, &GenerationError{Message: "cv tailoring requires job requirements"}
	}
	params.Document = types.DocumentCV
	if params.Style == "" {
		params.Style = types.StyleProfessional
	}

	sel, err := o.selectContent(p, reqs, params.Style)
	if err != nil {
		return nil, err
	}

	req := NewGenerationRequest(p, reqs, sel, params)
	prompt, err := BuildPrompt(req)
	if err != nil {
		return &types.GeneratedDocument{Type: types.DocumentCV, Selection: sel},
			&GenerationError{Message: "failed to build generation prompt", Cause: err}
	}

	var content string
	var gaps *types.GapAnalysis

	// The CV body and the gap analysis are independent backend calls.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, genErr := o.backend.GenerateContent(gctx, prompt, llm.TierAdvanced)
		if genErr != nil {
			return genErr
		}
		content = strings.TrimSpace(text)
		return nil
	})
	g.Go(func() error {
		analysis, gapErr := o.analyzeGaps(gctx, req)
		if gapErr != nil {
			// Gap analysis is supplemental. Log and continue.
			if o.printer != nil {
				o.printer.PrintWarning("gap analysis unavailable: " + gapErr.Error())
			}
			return nil
		}
		gaps = analysis
		return nil
	})
	if err := g.Wait(); err != nil {
		return &types.GeneratedDocument{Type: types.DocumentCV, Selection: sel},
			&GenerationError{Message: "backend cv generation failed", Cause: err}
	}
	if content == "" {
		return &types.GeneratedDocument{Type: types.DocumentCV, Selection: sel},
			&GenerationError{Message: "backend returned an empty cv"}
	}

	return &types.GeneratedDocument{
		Content:     content,
		Type:        types.DocumentCV,
		Selection:   sel,
		GapAnalysis: gaps,
	}, nil
}

// GenerateBio produces a professional bio. reqs may be nil, in which case
// ranking falls back to recency and entry completeness.
func (o *Orchestrator) GenerateBio(ctx context.Context, p *types.Profile, reqs *types.JobRequirements, params types.GenerationParams) (*types.GeneratedDocument, error) {
	if err := profile.Validate(p); err != nil {
		return nil, err
	}
	params.Document = types.DocumentBio
	if params.Style == "" {
		params.Style = types.StyleProfessional
	}
	if params.Length == "" {
		params.Length = types.BioMedium
	}

	sel, err := o.selectContent(p, reqs, params.Style)
	if err != nil {
		return nil, err
	}

	req := NewGenerationRequest(p, reqs, sel, params)
	prompt, err := BuildPrompt(req)
	if err != nil {
		return &types.GeneratedDocument{Type: types.DocumentBio, Selection: sel},
			&GenerationError{Message: "failed to build generation prompt", Cause: err}
	}

	text, err := o.backend.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return &types.GeneratedDocument{Type: types.DocumentBio, Selection: sel},
			&GenerationError{Message: "backend bio generation failed", Cause: err}
	}
	content := strings.TrimSpace(text)
	if content == "" {
		return &types.GeneratedDocument{Type: types.DocumentBio, Selection: sel},
			&GenerationError{Message: "backend returned an empty bio"}
	}

	return &types.GeneratedDocument{
		Content:   content,
		Type:      types.DocumentBio,
		Selection: sel,
	}, nil
}

// SelectContent exposes the deterministic half of the pipeline: index,
// score, and select without touching the backend.
func (o *Orchestrator) SelectContent(p *types.Profile, reqs *types.JobRequirements, style types.Style) (*types.Selection, error) {
	if err := profile.Validate(p); err != nil {
		return nil, err
	}
	if style == "" {
		style = types.StyleProfessional
	}
	return o.selectContent(p, reqs, style)
}

func (o *Orchestrator) selectContent(p *types.Profile, reqs *types.JobRequirements, style types.Style) (*types.Selection, error) {
	ix := kbindex.Build(p)
	scores := o.scorer.ScoreAll(ix, reqs)
	if o.printer != nil {
		o.printer.PrintMatchScores(scores)
	}

	budget := selection.BudgetForStyle(style)
	sel, err := selection.Select(p, scores, budget, style)
	if err != nil {
		return nil, err
	}
	if o.printer != nil {
		o.printer.PrintSelection(sel)
	}
	return sel, nil
}

// gapResponse mirrors the JSON shape the gap-analysis prompt demands.
type gapResponse struct {
	MissingSkills []struct {
		Skill      string `json:"skill"`
		Importance string `json:"importance"`
		Note       string `json:"note"`
	} `json:"missing_skills"`
	Strengths []string `json:"strengths"`
}

func (o *Orchestrator) analyzeGaps(ctx context.Context, req *types.GenerationRequest) (*types.GapAnalysis, error) {
	prompt := BuildGapAnalysisPrompt(req)
	raw, err := o.backend.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	var resp gapResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return nil, err
	}

	analysis := &types.GapAnalysis{Strengths: resp.Strengths}
	for _, gap := range resp.MissingSkills {
		skill := extraction.NormalizeSkillName(gap.Skill)
		if skill == "" {
			continue
		}
		imp := types.Importance(strings.ToLower(gap.Importance))
		if !imp.Valid() {
			imp = types.ImportanceImplied
		}
		analysis.MissingSkills = append(analysis.MissingSkills, types.SkillGap{
			Skill:      skill,
			Importance: imp,
			Note:       gap.Note,
		})
	}

	analysis.RequiredCount, analysis.CoveredCount = coverageCounts(req.Profile, req.Requirements)
	return analysis, nil
}

// coverageCounts compares required skills against the profile's skill set
// directly, independent of the backend's judgement.
func coverageCounts(p *types.Profile, reqs *types.JobRequirements) (required, covered int) {
	if reqs == nil {
		return 0, 0
	}
	have := make(map[string]bool)
	for _, skill := range p.TechnicalSkills.All() {
		have[strings.ToLower(extraction.NormalizeSkillName(skill))] = true
	}
	for _, exp := range p.WorkExperience {
		for _, tech := range exp.Technologies {
			have[strings.ToLower(extraction.NormalizeSkillName(tech))] = true
		}
	}
	for _, sr := range reqs.Skills {
		if sr.Importance != types.ImportanceRequired {
			continue
		}
		required++
		if have[strings.ToLower(extraction.NormalizeSkillName(sr.Skill))] {
			covered++
		}
	}
	return required, covered
}
