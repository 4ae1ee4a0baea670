package boundary

import (
	"context"

	"github.com/google/uuid"

	"github.com/Harthik777/Agentic-XAI/internal/engine"
	"github.com/Harthik777/Agentic-XAI/internal/llm"
	"github.com/Harthik777/Agentic-XAI/internal/requestctx"
)

// Convention selects between the two serialization conventions that
// coexist in this system. Categorical is the default: reasoning as an
// ordered list of narrative steps and confidence on the 0-100 scale.
// Narrative is the compatibility shim: reasoning as a single prose string
// and confidence on the 0-1 scale.
type Convention string

const (
	CategoricalConvention Convention = "categorical"
	NarrativeConvention   Convention = "narrative"
)

// Response is the wire shape returned to callers. Reasoning is a []string
// under the categorical convention and a string under the narrative one.
type Response struct {
	RequestID         string               `json:"request_id"`
	DecisionID        string               `json:"decision_id"`
	Source            string               `json:"source"`
	Model             string               `json:"model,omitempty"`
	FallbackReason    string               `json:"fallback_reason,omitempty"`
	Intent            string               `json:"intent"`
	Recommendation    string               `json:"recommendation"`
	Reasoning         any                  `json:"reasoning"`
	Confidence        float64              `json:"confidence"`
	Alternatives      []engine.Alternative `json:"alternatives"`
	RiskFactors       []string             `json:"risk_factors"`
	FeatureImportance map[string]float64   `json:"feature_importance"`
}

// Encode shapes a resolved outcome for the wire. The request supplies the
// decision id; the request id comes from the context when the boundary set
// one (so logs and response agree) and is freshly generated otherwise.
// Repeated identical requests share a decision_id but never a request_id.
func Encode(ctx context.Context, req *Request, outcome llm.Outcome, conv Convention) Response {
	rec := outcome.Record

	requestID := requestctx.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	resp := Response{
		RequestID:         requestID,
		DecisionID:        req.DecisionID(),
		Source:            string(outcome.Source),
		Model:             outcome.Model,
		FallbackReason:    outcome.FallbackReason,
		Intent:            rec.Intent,
		Recommendation:    rec.Recommendation,
		Alternatives:      rec.Alternatives,
		RiskFactors:       rec.RiskFactors,
		FeatureImportance: rec.FeatureImportance,
	}

	switch conv {
	case NarrativeConvention:
		resp.Reasoning = rec.Reasoning
		resp.Confidence = rec.NarrativeConfidence
	default:
		resp.Reasoning = rec.ReasoningSteps
		resp.Confidence = rec.Confidence
	}
	return resp
}

// EncodeFault converts an internal fault into a terminal response so the
// caller still receives a well-formed body: zero confidence, the fault as
// the sole risk factor.
func EncodeFault(ctx context.Context, req *Request, fault error) Response {
	rec := engine.Terminal(fault)
	outcome := llm.Outcome{
		Source:         llm.SourceFallback,
		Record:         rec,
		FallbackReason: rec.RiskFactors[0],
	}
	resp := Encode(ctx, req, outcome, CategoricalConvention)
	resp.Confidence = 0
	return resp
}
