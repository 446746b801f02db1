// Package scoring computes deterministic relevance scores between
// knowledge-base entries and extracted job requirements.
package scoring

// Weights configures the scoring policy. All values are documented
// defaults rather than hard-coded constants so calibration tests can
// exercise alternatives.
type Weights struct {
	// Component weights; should sum to 1.0 for scores to span [0,1].
	SkillOverlap          float64 `json:"skill_overlap"`
	ResponsibilityOverlap float64 `json:"responsibility_overlap"`
	Recency               float64 `json:"recency"`

	// Importance weights applied to requirement skills during overlap.
	Required  float64 `json:"required"`
	Preferred float64 `json:"preferred"`
	Implied   float64 `json:"implied"`

	// Recency decay: entries decay linearly from 1.0 at zero years to
	// RecencyFloor at RecencyWindowYears. The floor keeps old entries from
	// ever scoring a hard zero, so selection can fall back to recency.
	RecencyWindowYears float64 `json:"recency_window_years"`
	RecencyFloor       float64 `json:"recency_floor"`

	// Bio-mode weights, used when no job requirements are supplied.
	BioRecency      float64 `json:"bio_recency"`
	BioCompleteness float64 `json:"bio_completeness"`
}

// DefaultWeights returns the documented default scoring policy.
func DefaultWeights() Weights {
	return Weights{
		SkillOverlap:          0.55,
		ResponsibilityOverlap: 0.25,
		Recency:               0.20,

		Required:  1.0,
		Preferred: 0.5,
		Implied:   0.25,

		RecencyWindowYears: 10,
		RecencyFloor:       0.15,

		BioRecency:      0.6,
		BioCompleteness: 0.4,
	}
}

// importanceWeight maps a requirement importance tag to its weight.
func (w Weights) importanceWeight(imp string) float64 {
	switch imp {
	case "required":
		return w.Required
	case "preferred":
		return w.Preferred
	case "implied":
		return w.Implied
	default:
		return w.Implied
	}
}
