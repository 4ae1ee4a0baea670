// Package engine implements the deterministic decision-and-explanation
// engine: feature importance scoring, the fallback synthesizer, both
// confidence strategies, and reasoning-step narration. Everything here is a
// pure function of its inputs; the package performs no I/O, holds no mutable
// state, and is safe for unlimited concurrent use.
package engine

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Context is the attribute map accompanying a task. Values must be
// JSON-representable; Sanitize drops anything that is not. Map order is
// never semantically significant.
type Context map[string]any

// Sanitize returns a copy of the context with every value that cannot be
// represented as JSON removed. A nil or empty context yields an empty
// (non-nil) context, never an error.
func (c Context) Sanitize() Context {
	out := make(Context, len(c))
	for k, v := range c {
		if _, err := json.Marshal(v); err != nil {
			continue
		}
		out[k] = v
	}
	return out
}

// SortedKeys returns the context keys in ascending order. Used wherever
// output must not depend on map iteration order.
func (c Context) SortedKeys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Text renders the context as a canonical "key: value" string, keys sorted.
// This is the context component of the request digest, so the rendering must
// stay stable across runs and platforms.
func (c Context) Text() string {
	if len(c) == 0 {
		return ""
	}
	parts := make([]string, 0, len(c))
	for _, k := range c.SortedKeys() {
		parts = append(parts, fmt.Sprintf("%s: %v", k, c[k]))
	}
	return strings.Join(parts, "; ")
}
