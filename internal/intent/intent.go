// Package intent maps free-text task descriptions to a fixed set of
// decision-domain categories via an ordered keyword cascade.
package intent

// Intent is the decision-domain category assigned to a task description.
type Intent string

// The fixed intent taxonomy. Contextual is the terminal fallback leaf:
// every task that matches nothing else resolves to it.
const (
	Strategy       Intent = "strategy"
	Analysis       Intent = "analysis"
	Optimization   Intent = "optimization"
	Financial      Intent = "financial"
	Technology     Intent = "technology"
	Comparison     Intent = "comparison"
	YesNo          Intent = "yes_no"
	Risk           Intent = "risk"
	Resource       Intent = "resource"
	ProblemSolving Intent = "problem_solving"
	Learning       Intent = "learning"
	Lifestyle      Intent = "lifestyle"
	Creative       Intent = "creative"
	Contextual     Intent = "contextual"
)

// All returns every intent in taxonomy order, Contextual last.
func All() []Intent {
	return []Intent{
		Strategy, Analysis, Optimization, Financial, Technology,
		Comparison, YesNo, Risk, Resource, ProblemSolving,
		Learning, Lifestyle, Creative, Contextual,
	}
}

// Valid reports whether s names a known intent.
func Valid(s string) bool {
	for _, it := range All() {
		if Intent(s) == it {
			return true
		}
	}
	return false
}
