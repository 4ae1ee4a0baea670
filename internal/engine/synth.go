package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Harthik777/Agentic-XAI/internal/intent"
)

// Domain errors for the engine package.
var (
	ErrNoPlaybook = errors.New("no playbook for intent")
)

// Categorical confidence bounds and the per-priority base table. Confidence
// here uses the 0-100 convention; see confidence.go for the 0-1 narrative
// strategy.
const (
	confidenceJitterSpan = 21 // digest mod 21 - 10 yields [-10, +10]
	confidenceFloor      = 60.0
	confidenceCeiling    = 95.0
)

var priorityConfidenceBase = map[Priority]float64{
	PriorityHigh:   85,
	PriorityMedium: 75,
	PriorityLow:    65,
}

// Synthesis is the synthesizer's output: the template-derived decision body
// plus the digest-derived categorical confidence and risk selection.
type Synthesis struct {
	Recommendation string
	Rationale      string
	Alternatives   []Alternative
	RiskFactors    []string
	ConfidenceBase float64
	Digest         uint64
}

// Synthesize produces the deterministic fallback decision for a classified
// task. Two identical requests yield byte-identical output; requests that
// differ vary "naturally" in confidence and risk emphasis through the
// digest, never through real randomness.
func (c *Catalog) Synthesize(it intent.Intent, taskText, contextText string, priority Priority) (*Synthesis, error) {
	pb, ok := c.Lookup(it)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoPlaybook, it)
	}

	digest := Digest(taskText, contextText, priority)

	alts := make([]Alternative, len(pb.Alternatives))
	copy(alts, pb.Alternatives)

	return &Synthesis{
		Recommendation: pb.Recommendation,
		Rationale:      pb.Rationale,
		Alternatives:   alts,
		RiskFactors:    c.selectRiskFactors(digest),
		ConfidenceBase: categoricalConfidence(priority, digest),
		Digest:         digest,
	}, nil
}

// categoricalConfidence derives the priority-table confidence with a
// digest-seeded jitter of ±10, clamped to [60, 95].
func categoricalConfidence(priority Priority, digest uint64) float64 {
	base, ok := priorityConfidenceBase[priority]
	if !ok {
		base = priorityConfidenceBase[PriorityMedium]
	}
	jitter := float64(digest%confidenceJitterSpan) - 10
	conf := base + jitter
	if conf < confidenceFloor {
		conf = confidenceFloor
	}
	if conf > confidenceCeiling {
		conf = confidenceCeiling
	}
	return conf
}

// selectRiskFactors picks 3 or 4 distinct entries from the universal pool.
// The digest proposes each index and is evolved between selections; a
// collision with an already-chosen index is resolved by linear probing.
// (Probing is required for termination: 31d+17 is an involution mod 8, so
// evolving alone can only ever reach two distinct indices.) The chosen index
// set is sorted before rendering, so output order is independent of
// selection order.
func (c *Catalog) selectRiskFactors(digest uint64) []string {
	count := 3 + int(digest%2)
	pool := len(c.riskPool)

	chosen := make(map[int]bool, count)
	indices := make([]int, 0, count)
	d := digest
	for len(indices) < count {
		idx := int(d % uint64(pool))
		for chosen[idx] {
			idx = (idx + 1) % pool
		}
		chosen[idx] = true
		indices = append(indices, idx)
		d = evolveDigest(d)
	}
	sort.Ints(indices)

	factors := make([]string, 0, count)
	for _, idx := range indices {
		factors = append(factors, c.riskPool[idx])
	}
	return factors
}
