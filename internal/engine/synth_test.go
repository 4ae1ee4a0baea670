package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harthik777/Agentic-XAI/internal/intent"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	require.NoError(t, err)
	return c
}

func TestSynthesizeDeterministic(t *testing.T) {
	c := testCatalog(t)

	first, err := c.Synthesize(intent.Optimization, "Should I optimize my database performance?", "", PriorityMedium)
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		again, err := c.Synthesize(intent.Optimization, "Should I optimize my database performance?", "", PriorityMedium)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestSynthesizeUnknownIntent(t *testing.T) {
	c := testCatalog(t)
	_, err := c.Synthesize(intent.Intent("astrology"), "task", "", PriorityMedium)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPlaybook)
}

func TestSynthesizeConfidenceBounds(t *testing.T) {
	c := testCatalog(t)
	for _, priority := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		for i := 0; i < 200; i++ {
			syn, err := c.Synthesize(intent.Strategy, fmt.Sprintf("launch variant %d", i), "", priority)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, syn.ConfidenceBase, confidenceFloor)
			assert.LessOrEqual(t, syn.ConfidenceBase, confidenceCeiling)

			base := priorityConfidenceBase[priority]
			assert.GreaterOrEqual(t, syn.ConfidenceBase, maxFloat(base-10, confidenceFloor))
			assert.LessOrEqual(t, syn.ConfidenceBase, minFloat(base+10, confidenceCeiling))
		}
	}
}

func TestSynthesizeRiskFactorBounds(t *testing.T) {
	c := testCatalog(t)
	pool := c.RiskPool()
	poolIndex := make(map[string]int, len(pool))
	for i, f := range pool {
		poolIndex[f] = i
	}

	for i := 0; i < 300; i++ {
		syn, err := c.Synthesize(intent.Contextual, fmt.Sprintf("task %d", i), "ctx", PriorityLow)
		require.NoError(t, err)

		require.True(t, len(syn.RiskFactors) == 3 || len(syn.RiskFactors) == 4,
			"risk factor count must be 3 or 4, got %d", len(syn.RiskFactors))

		seen := map[string]bool{}
		lastIdx := -1
		for _, f := range syn.RiskFactors {
			idx, ok := poolIndex[f]
			require.True(t, ok, "risk factor %q not in universal pool", f)
			require.False(t, seen[f], "duplicate risk factor %q", f)
			seen[f] = true
			require.Greater(t, idx, lastIdx, "risk factors must be in ascending pool order")
			lastIdx = idx
		}
	}
}

func TestSynthesizeRiskCountFollowsDigest(t *testing.T) {
	c := testCatalog(t)
	syn, err := c.Synthesize(intent.Risk, "assess the rollout", "", PriorityMedium)
	require.NoError(t, err)
	want := 3 + int(syn.Digest%2)
	assert.Len(t, syn.RiskFactors, want)
}

func TestSynthesizeUsesPlaybookTemplates(t *testing.T) {
	c := testCatalog(t)
	pb, ok := c.Lookup(intent.Financial)
	require.True(t, ok)

	syn, err := c.Synthesize(intent.Financial, "invest the surplus", "", PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, pb.Recommendation, syn.Recommendation)
	assert.Equal(t, pb.Rationale, syn.Rationale)
	assert.Equal(t, pb.Alternatives, syn.Alternatives)
	require.Len(t, syn.Alternatives, 2)
}

func TestSynthesizeAlternativesAreCopies(t *testing.T) {
	c := testCatalog(t)
	syn, err := c.Synthesize(intent.Learning, "learn go", "", PriorityMedium)
	require.NoError(t, err)

	syn.Alternatives[0].Option = "mutated"
	again, err := c.Synthesize(intent.Learning, "learn go", "", PriorityMedium)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Alternatives[0].Option)
}

func TestCategoricalConfidencePriorityTable(t *testing.T) {
	// With jitter spanning ±10, the midpoints of the per-priority ranges
	// must track the 85/75/65 table.
	assert.Equal(t, 85.0, priorityConfidenceBase[PriorityHigh])
	assert.Equal(t, 75.0, priorityConfidenceBase[PriorityMedium])
	assert.Equal(t, 65.0, priorityConfidenceBase[PriorityLow])

	assert.Equal(t, 75.0, categoricalConfidence(PriorityMedium, 10)) // jitter = 10-10 = 0
	assert.Equal(t, 65.0, categoricalConfidence(PriorityMedium, 0))  // jitter = -10
	assert.Equal(t, 85.0, categoricalConfidence(PriorityMedium, 20)) // jitter = +10
}

func TestCategoricalConfidenceClamps(t *testing.T) {
	assert.Equal(t, confidenceCeiling, categoricalConfidence(PriorityHigh, 20)) // 85+10 hits the ceiling
	assert.Equal(t, confidenceFloor, categoricalConfidence(PriorityLow, 0))    // 65-10 clamps up to 60
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
