// Package boundary adapts decision requests and resolved outcomes to the
// wire shape consumed by callers. The engine itself exposes no network
// surface; this package is the in-process seam where serialization
// conventions, request identity, and error conversion live.
package boundary

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/Harthik777/Agentic-XAI/internal/engine"
)

// Request is the caller-facing decision request. Context values that are
// not JSON-representable are dropped during conversion, never fatal.
type Request struct {
	TaskDescription string         `json:"task_description"`
	Context         map[string]any `json:"context,omitempty"`
	Priority        string         `json:"priority,omitempty"`
}

// ParseRequest decodes a JSON request body.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	return &req, nil
}

// EngineInputs converts the request into the engine's input types:
// sanitized context and normalized priority.
func (r *Request) EngineInputs() (engine.Context, engine.Priority) {
	ctx := engine.Context(r.Context).Sanitize()
	return ctx, engine.NormalizePriority(r.Priority)
}

// decisionIDLen is the number of hex characters kept from the request
// digest when forming the opaque decision id.
const decisionIDLen = 12

// DecisionID derives the opaque id for a request: the leading hex of the
// same digest that seeds the synthesizer, so identical requests share an
// id across calls and processes.
func (r *Request) DecisionID() string {
	ctx, priority := r.EngineInputs()
	d := engine.Digest(r.TaskDescription, ctx.Text(), priority)
	buf := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		buf[i] = byte(d)
		d >>= 8
	}
	return hex.EncodeToString(buf)[:decisionIDLen]
}
