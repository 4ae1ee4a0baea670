package engine

// Priority is the caller-supplied urgency hint. It feeds the categorical
// confidence table and the request digest.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// NormalizePriority maps arbitrary caller input onto a known priority,
// defaulting to medium. Unknown values are not an error.
func NormalizePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Alternative is one labeled option considered alongside the recommendation.
// Decisions always carry exactly two.
type Alternative struct {
	Option      string   `json:"option"`
	Description string   `json:"description"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
}

// Record is the immutable output bundle for one decision request. It is
// constructed once per request and never mutated afterwards; callers
// serialize it or hand it to a persistence collaborator, nothing else.
//
// Confidence here is the categorical convention (0-100). NarrativeConfidence
// holds the 0-1 narrative strategy's estimate; the boundary picks which one
// to expose.
type Record struct {
	Intent              string             `json:"intent"`
	Recommendation      string             `json:"recommendation"`
	Reasoning           string             `json:"reasoning"`
	Confidence          float64            `json:"confidence"`
	NarrativeConfidence float64            `json:"narrative_confidence"`
	Alternatives        []Alternative      `json:"alternatives"`
	RiskFactors         []string           `json:"risk_factors"`
	ReasoningSteps      []string           `json:"reasoning_steps"`
	FeatureImportance   map[string]float64 `json:"feature_importance"`
}

// Terminal converts an internal fault into a well-formed, zero-confidence
// record carrying the fault description as its sole risk factor. Callers
// always receive a complete record, never a propagated panic.
func Terminal(fault error) Record {
	msg := "unknown internal fault"
	if fault != nil {
		msg = fault.Error()
	}
	return Record{
		Intent:         "contextual",
		Recommendation: "A decision could not be reached due to an internal fault.",
		Reasoning:      "The decision engine encountered a fault and degraded to a terminal record.",
		Confidence:     0,
		Alternatives: []Alternative{
			{
				Option:      "Retry the request",
				Description: "Submit the same task again once the fault is resolved.",
				Pros:        []string{"No input changes required"},
				Cons:        []string{"Fails again if the fault persists"},
			},
			{
				Option:      "Decide manually",
				Description: "Proceed without engine support for this request.",
				Pros:        []string{"Not blocked on the engine"},
				Cons:        []string{"No structured rationale or risk analysis"},
			},
		},
		RiskFactors: []string{msg},
		ReasoningSteps: []string{
			"An internal fault interrupted decision synthesis",
			"Fault: " + msg,
			"A terminal record was returned so the caller still receives a well-formed response",
		},
		FeatureImportance: map[string]float64{},
	}
}
