package engine

import (
	"fmt"

	"github.com/Harthik777/Agentic-XAI/internal/intent"
)

// Engine bundles the classifier and playbook catalog behind one facade.
// It has no mutable state: construct it once and share it freely across
// goroutines. There is deliberately no global instance — callers that want
// one can hold the value themselves.
type Engine struct {
	classifier *intent.Classifier
	catalog    *Catalog
}

// New builds an Engine from the embedded default cascade and playbooks.
func New() (*Engine, error) {
	classifier, err := intent.NewClassifier()
	if err != nil {
		return nil, fmt.Errorf("building classifier: %w", err)
	}
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("building playbook catalog: %w", err)
	}
	return &Engine{classifier: classifier, catalog: catalog}, nil
}

// NewWithParts builds an Engine from pre-compiled parts, for callers that
// load override cascades or playbooks.
func NewWithParts(classifier *intent.Classifier, catalog *Catalog) *Engine {
	return &Engine{classifier: classifier, catalog: catalog}
}

// Explanation is the narrative companion to a decision text: per-attribute
// weights, the step trace, and the 0-1 narrative confidence.
type Explanation struct {
	FeatureImportance map[string]float64
	ReasoningSteps    []string
	Confidence        float64
}

// Explain computes the explanation bundle for an already-made decision.
// Used for both synthesized and live-model decisions, so the two paths
// stay auditable in the same vocabulary.
func (e *Engine) Explain(taskText string, ctx Context, decisionText string) Explanation {
	ctx = ctx.Sanitize()
	importance := Importance(ctx)
	confidence := NarrativeConfidence(taskText, ctx, decisionText)
	steps := Narrate(taskText, ctx, decisionText, importance, confidence)
	return Explanation{
		FeatureImportance: importance,
		ReasoningSteps:    steps,
		Confidence:        confidence,
	}
}

// Process runs the full fallback pipeline: classify, synthesize, score,
// narrate, bundle. It never returns an error — an internal fault (which
// would take a corrupted catalog) degrades to a Terminal record so callers
// always receive a well-formed decision.
func (e *Engine) Process(taskText string, ctx Context, priority Priority) Record {
	ctx = ctx.Sanitize()
	priority = NormalizePriority(string(priority))

	it := e.classifier.Classify(taskText)
	syn, err := e.catalog.Synthesize(it, taskText, ctx.Text(), priority)
	if err != nil {
		return Terminal(err)
	}

	decisionText := syn.Recommendation
	expl := e.Explain(taskText, ctx, decisionText)

	return Record{
		Intent:              string(it),
		Recommendation:      syn.Recommendation,
		Reasoning:           syn.Rationale,
		Confidence:          syn.ConfidenceBase,
		NarrativeConfidence: expl.Confidence,
		Alternatives:        syn.Alternatives,
		RiskFactors:         syn.RiskFactors,
		ReasoningSteps:      expl.ReasoningSteps,
		FeatureImportance:   expl.FeatureImportance,
	}
}
