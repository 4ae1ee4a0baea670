package engine

import (
	"math"
	"strings"
)

// The system carries two incompatible confidence conventions and keeps both
// as named strategies rather than guessing which is canonical:
//
//   - CategoricalStrategy: 0-100, priority table + digest jitter, computed
//     by the synthesizer (synth.go). This is the default the boundary exposes.
//   - NarrativeStrategy: 0-1, blended text/context signals, computed here.
//     Exposed through the boundary's compatibility shim.
type ConfidenceStrategy string

const (
	CategoricalStrategy ConfidenceStrategy = "categorical"
	NarrativeStrategy   ConfidenceStrategy = "narrative"
)

// Narrative estimator constants: three bounded factors averaged, blended
// with a fixed base at half weight, capped below 1.
const (
	narrativeBase        = 0.4
	narrativeBlendWeight = 0.5
	narrativeCap         = 0.95

	clarityWordDivisor     = 20.0
	richnessEntryDivisor   = 5.0
	emptyContextRichness   = 0.3
	specificityWordDivisor = 15.0
)

// NarrativeConfidence estimates a 0-1 confidence for a decision text from
// task clarity, context richness, and decision specificity. It never
// returns below narrativeBase on valid input; the zero value is reserved
// for the terminal error path.
func NarrativeConfidence(taskText string, ctx Context, decisionText string) float64 {
	clarity := math.Min(float64(wordCount(taskText))/clarityWordDivisor, 1.0)

	richness := emptyContextRichness
	if len(ctx) > 0 {
		richness = math.Min(float64(len(ctx))/richnessEntryDivisor, 1.0)
	}

	specificity := math.Min(float64(wordCount(decisionText))/specificityWordDivisor, 1.0)

	mean := (clarity + richness + specificity) / 3
	return math.Min(narrativeBase+narrativeBlendWeight*mean, narrativeCap)
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
