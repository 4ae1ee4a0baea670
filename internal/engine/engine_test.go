package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harthik777/Agentic-XAI/internal/intent"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New()
	require.NoError(t, err)
	return e
}

func TestProcessOptimizationScenario(t *testing.T) {
	e := testEngine(t)
	rec := e.Process("Should I optimize my database performance?", Context{}, PriorityMedium)

	assert.Equal(t, string(intent.Optimization), rec.Intent)
	assert.NotEmpty(t, rec.Recommendation)
	assert.NotEmpty(t, rec.Reasoning)
	assert.GreaterOrEqual(t, rec.Confidence, 65.0)
	assert.LessOrEqual(t, rec.Confidence, 85.0)
	assert.True(t, len(rec.RiskFactors) == 3 || len(rec.RiskFactors) == 4)
	require.Len(t, rec.Alternatives, 2)

	for i := 0; i < 10; i++ {
		again := e.Process("Should I optimize my database performance?", Context{}, PriorityMedium)
		require.Equal(t, rec, again, "repeated identical requests must produce identical records")
	}
}

func TestProcessEmptyTaskAndContext(t *testing.T) {
	e := testEngine(t)
	rec := e.Process("", nil, "")

	assert.Equal(t, string(intent.Contextual), rec.Intent)
	assert.NotNil(t, rec.FeatureImportance)
	assert.Empty(t, rec.FeatureImportance)
	assert.NotEmpty(t, rec.Recommendation)
	assert.NotEmpty(t, rec.ReasoningSteps)

	// Narrative floor: base plus the empty-context richness contribution.
	want := narrativeBase + narrativeBlendWeight*(emptyContextRichness/3)
	assert.InDelta(t, want, rec.NarrativeConfidence, 0.05)
}

func TestProcessNormalizesPriority(t *testing.T) {
	e := testEngine(t)
	a := e.Process("compare vendors", nil, "URGENT")
	b := e.Process("compare vendors", nil, PriorityMedium)
	assert.Equal(t, a, b, "unknown priority falls back to medium")
}

func TestProcessSanitizesContext(t *testing.T) {
	e := testEngine(t)
	ctx := Context{"ok": 1, "bad": make(chan int)}
	rec := e.Process("analyze throughput", ctx, PriorityHigh)

	require.Len(t, rec.FeatureImportance, 1)
	assert.Contains(t, rec.FeatureImportance, "ok")
}

func TestProcessPopulatesExplanation(t *testing.T) {
	e := testEngine(t)
	rec := e.Process("plan the product launch", Context{"budget": 5000, "team_size": 8}, PriorityHigh)

	assert.Equal(t, string(intent.Strategy), rec.Intent)
	require.Len(t, rec.FeatureImportance, 2)
	var sum float64
	for _, v := range rec.FeatureImportance {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.NotEmpty(t, rec.ReasoningSteps)
	assert.Greater(t, rec.NarrativeConfidence, 0.0)
	assert.LessOrEqual(t, rec.NarrativeConfidence, narrativeCap)
}

func TestExplain(t *testing.T) {
	e := testEngine(t)
	expl := e.Explain("evaluate the migration plan", Context{"deadline": "q3"}, "stage the migration")

	require.Len(t, expl.FeatureImportance, 1)
	assert.InDelta(t, 1.0, expl.FeatureImportance["deadline"], 1e-9)
	assert.NotEmpty(t, expl.ReasoningSteps)
	assert.GreaterOrEqual(t, expl.Confidence, narrativeBase)
	assert.LessOrEqual(t, expl.Confidence, narrativeCap)
}

func TestNewWithParts(t *testing.T) {
	classifier, err := intent.NewClassifier()
	require.NoError(t, err)
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	e := NewWithParts(classifier, catalog)
	rec := e.Process("invest the surplus", nil, PriorityLow)
	assert.Equal(t, string(intent.Financial), rec.Intent)
}

func TestTerminalRecord(t *testing.T) {
	rec := Terminal(errors.New("catalog corrupted"))

	assert.Equal(t, "contextual", rec.Intent)
	assert.Zero(t, rec.Confidence)
	assert.Equal(t, []string{"catalog corrupted"}, rec.RiskFactors)
	require.Len(t, rec.Alternatives, 2)
	assert.NotEmpty(t, rec.ReasoningSteps)
	assert.NotNil(t, rec.FeatureImportance)

	nilFault := Terminal(nil)
	assert.Equal(t, []string{"unknown internal fault"}, nilFault.RiskFactors)
}
