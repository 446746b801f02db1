package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecencyScore(t *testing.T) {
	ref := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	weights := DefaultWeights()

	t.Run("current entry near 1.0", func(t *testing.T) {
		score := recencyScore("2025-12", ref, weights.RecencyWindowYears, weights.RecencyFloor)
		assert.InDelta(t, 1.0, score, 0.02)
	})

	t.Run("halfway through window", func(t *testing.T) {
		score := recencyScore("2021-01", ref, weights.RecencyWindowYears, weights.RecencyFloor)
		assert.InDelta(t, 0.575, score, 0.02)
	})

	t.Run("beyond window floors", func(t *testing.T) {
		score := recencyScore("1999-01", ref, weights.RecencyWindowYears, weights.RecencyFloor)
		assert.Equal(t, weights.RecencyFloor, score)
	})

	t.Run("future date clamps to 1.0", func(t *testing.T) {
		score := recencyScore("2027-01", ref, weights.RecencyWindowYears, weights.RecencyFloor)
		assert.Equal(t, 1.0, score)
	})

	t.Run("missing date neutral", func(t *testing.T) {
		assert.Equal(t, neutralRecency, recencyScore("", ref, 10, 0.15))
	})

	t.Run("unparseable date neutral", func(t *testing.T) {
		assert.Equal(t, neutralRecency, recencyScore("sometime in 2020", ref, 10, 0.15))
	})

	t.Run("full date accepted", func(t *testing.T) {
		score := recencyScore("2025-12-15", ref, weights.RecencyWindowYears, weights.RecencyFloor)
		assert.InDelta(t, 1.0, score, 0.02)
	})
}

func TestResponsibilityOverlap(t *testing.T) {
	entry := "Built and operated payment services in Go, owning deploys and on-call"

	t.Run("matching phrase", func(t *testing.T) {
		overlap := responsibilityOverlap(entry, []string{"operate payment services in Go"})
		assert.Greater(t, overlap, 0.0)
	})

	t.Run("unrelated phrase", func(t *testing.T) {
		overlap := responsibilityOverlap(entry, []string{"design marketing campaigns for retail"})
		assert.Equal(t, 0.0, overlap)
	})

	t.Run("no responsibilities", func(t *testing.T) {
		assert.Equal(t, 0.0, responsibilityOverlap(entry, nil))
	})

	t.Run("empty entry text", func(t *testing.T) {
		assert.Equal(t, 0.0, responsibilityOverlap("", []string{"anything at all"}))
	})

	t.Run("fraction of matched phrases", func(t *testing.T) {
		overlap := responsibilityOverlap(entry, []string{
			"operate payment services in Go",
			"design marketing campaigns for retail",
		})
		assert.InDelta(t, 0.5, overlap, 1e-9)
	})
}
