// Package llm provides the generation-backend client abstraction.
// The rest of the pipeline treats it as an opaque capability: a prompt and
// structured context go in, text comes out.
package llm

// ModelTier selects a capability level for a backend call.
type ModelTier string

const (
	// TierLite handles cheap structured tasks: segment classification, extraction.
	TierLite ModelTier = "lite"
	// TierStandard handles moderate tasks: bio generation, summaries.
	TierStandard ModelTier = "standard"
	// TierAdvanced handles full document generation and gap analysis.
	TierAdvanced ModelTier = "advanced"
)

// Provider identifies a backend provider.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
)

// Config holds the provider and per-tier model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default backend configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model for a tier, falling back through standard and
// lite when the requested tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
