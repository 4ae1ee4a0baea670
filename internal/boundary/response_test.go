package boundary

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harthik777/Agentic-XAI/internal/engine"
	"github.com/Harthik777/Agentic-XAI/internal/llm"
	"github.com/Harthik777/Agentic-XAI/internal/requestctx"
)

func sampleOutcome() llm.Outcome {
	return llm.Outcome{
		Source: llm.SourceFallback,
		Record: engine.Record{
			Intent:              "optimization",
			Recommendation:      "Profile before changing anything",
			Reasoning:           "Measured bottlenecks beat guessed ones.",
			Confidence:          75,
			NarrativeConfidence: 0.71,
			Alternatives: []engine.Alternative{
				{Option: "a", Description: "d", Pros: []string{"p"}, Cons: []string{"c"}},
				{Option: "b", Description: "d", Pros: []string{"p"}, Cons: []string{"c"}},
			},
			RiskFactors:       []string{"Timeline pressure"},
			ReasoningSteps:    []string{"step one", "step two"},
			FeatureImportance: map[string]float64{"db": 1.0},
		},
		FallbackReason: "no live provider configured",
	}
}

func TestEncodeCategorical(t *testing.T) {
	req := &Request{TaskDescription: "optimize the database"}
	resp := Encode(context.Background(), req, sampleOutcome(), CategoricalConvention)

	assert.Equal(t, req.DecisionID(), resp.DecisionID)
	assert.Equal(t, "fallback", resp.Source)
	assert.Equal(t, "no live provider configured", resp.FallbackReason)
	assert.Equal(t, "optimization", resp.Intent)
	assert.Equal(t, []string{"step one", "step two"}, resp.Reasoning)
	assert.Equal(t, 75.0, resp.Confidence)
}

func TestEncodeNarrative(t *testing.T) {
	req := &Request{TaskDescription: "optimize the database"}
	resp := Encode(context.Background(), req, sampleOutcome(), NarrativeConvention)

	assert.Equal(t, "Measured bottlenecks beat guessed ones.", resp.Reasoning)
	assert.Equal(t, 0.71, resp.Confidence)
}

func TestEncodeUnknownConventionDefaultsToCategorical(t *testing.T) {
	req := &Request{TaskDescription: "optimize the database"}
	resp := Encode(context.Background(), req, sampleOutcome(), Convention("mystery"))
	assert.Equal(t, []string{"step one", "step two"}, resp.Reasoning)
	assert.Equal(t, 75.0, resp.Confidence)
}

func TestEncodeRequestIDFreshPerCall(t *testing.T) {
	req := &Request{TaskDescription: "optimize the database"}
	a := Encode(context.Background(), req, sampleOutcome(), CategoricalConvention)
	b := Encode(context.Background(), req, sampleOutcome(), CategoricalConvention)

	assert.NotEqual(t, a.RequestID, b.RequestID)
	assert.Equal(t, a.DecisionID, b.DecisionID)
}

func TestEncodePropagatesContextRequestID(t *testing.T) {
	req := &Request{TaskDescription: "optimize the database"}
	ctx := requestctx.SetRequestID(context.Background(), "req-from-boundary")

	resp := Encode(ctx, req, sampleOutcome(), CategoricalConvention)
	assert.Equal(t, "req-from-boundary", resp.RequestID)
}

func TestEncodeSerializes(t *testing.T) {
	req := &Request{TaskDescription: "optimize the database"}
	resp := Encode(context.Background(), req, sampleOutcome(), CategoricalConvention)

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "request_id")
	assert.Contains(t, decoded, "decision_id")
	assert.Contains(t, decoded, "feature_importance")
	assert.NotContains(t, decoded, "model", "empty model is omitted")
}

func TestEncodeFault(t *testing.T) {
	req := &Request{TaskDescription: "anything"}
	resp := EncodeFault(context.Background(), req, errors.New("catalog corrupted"))

	assert.Equal(t, "fallback", resp.Source)
	assert.Zero(t, resp.Confidence)
	assert.Equal(t, "catalog corrupted", resp.FallbackReason)
	assert.Equal(t, []string{"catalog corrupted"}, resp.RiskFactors)
	assert.Equal(t, "contextual", resp.Intent)
	require.Len(t, resp.Alternatives, 2)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, req.DecisionID(), resp.DecisionID)
}
