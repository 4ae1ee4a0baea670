package engine

import (
	"math"
	"strings"
)

// Importance scoring constants. The scorer is deliberately heuristic: it
// rewards longer, richer, or emphasized attributes without any learned
// weighting, and must be reproducible bit-for-bit for identical input.
const (
	importanceFloor   = 0.1
	keyLengthDivisor  = 20.0
	numericDivisor    = 100.0
	textLengthDivisor = 50.0
	collectionDivisor = 10.0
	emphasisBoost     = 1.5
)

// emphasisMarkers boost text values that flag their own significance.
var emphasisMarkers = []string{"important", "critical", "key", "main"}

// Importance assigns each context attribute a normalized weight in [0,1].
// The returned scores sum to 1.0 over all keys; an empty context yields an
// empty map, not an error.
func Importance(ctx Context) map[string]float64 {
	if len(ctx) == 0 {
		return map[string]float64{}
	}

	raw := make(map[string]float64, len(ctx))
	var total float64
	for k, v := range ctx {
		score := rawImportance(k, v)
		raw[k] = score
		total += score
	}

	// total is always positive: every raw score carries the floor.
	for k := range raw {
		raw[k] /= total
	}
	return raw
}

// rawImportance computes the unnormalized score for a single attribute:
// a fixed floor plus a capped blend of key-name length and a value factor
// that depends on the value's type.
func rawImportance(key string, value any) float64 {
	keyWeight := float64(len(key)) / keyLengthDivisor
	return importanceFloor + math.Min(keyWeight+valueWeight(value), 1.0)
}

func valueWeight(value any) float64 {
	switch v := value.(type) {
	case bool:
		if v {
			return 0.8
		}
		return 0.3
	case float64:
		return numericWeight(v)
	case float32:
		return numericWeight(float64(v))
	case int:
		return numericWeight(float64(v))
	case int32:
		return numericWeight(float64(v))
	case int64:
		return numericWeight(float64(v))
	case string:
		if v == "" {
			return 0.1
		}
		w := math.Min(float64(len(v))/textLengthDivisor, 1.0)
		lower := strings.ToLower(v)
		for _, marker := range emphasisMarkers {
			if strings.Contains(lower, marker) {
				return w * emphasisBoost
			}
		}
		return w
	case []any:
		return collectionWeight(len(v))
	case map[string]any:
		return collectionWeight(len(v))
	case Context:
		return collectionWeight(len(v))
	case nil:
		return 0.5
	default:
		return 0.5
	}
}

func numericWeight(v float64) float64 {
	if v == 0 {
		return 0.1
	}
	return math.Min(math.Abs(v)/numericDivisor, 1.0)
}

func collectionWeight(size int) float64 {
	if size == 0 {
		return 0.1
	}
	return math.Min(float64(size)/collectionDivisor, 1.0)
}
