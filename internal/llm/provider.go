// Package llm holds the live-model collaborators: the provider interface,
// the OpenAI implementation, output parsing and trust checks, and the
// resolver that arbitrates between a live model response and the
// deterministic fallback engine.
package llm

import (
	"context"
	"errors"
	"time"
)

// TimeoutLLMCall bounds a single live-model call. The resolver never
// retries; a slow or failed call resolves to the fallback engine instead.
const TimeoutLLMCall = 45 * time.Second

// Domain errors for the llm package.
var (
	ErrNoChoices       = errors.New("model returned no choices")
	ErrNoJSONFound     = errors.New("no JSON object found in model output")
	ErrSchemaViolation = errors.New("model output violates decision schema")
	ErrRateLimited     = errors.New("live attempt denied by rate limiter")
	ErrNoProvider      = errors.New("no live provider configured")
)

// Provider is the interface all live-model providers implement.
type Provider interface {
	// Name returns the provider identifier (e.g. "openai").
	Name() string
	// Generate sends a completion request and returns the raw response.
	Generate(ctx context.Context, req *Request) (*Response, error)
}

// Request represents a model generation request.
type Request struct {
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message represents a chat message.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Response represents a model generation response.
type Response struct {
	Content      string
	FinishReason string
	InputTokens  int
	OutputTokens int
	Model        string
}
