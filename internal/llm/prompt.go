package llm

import (
	"fmt"
	"strings"

	"github.com/Harthik777/Agentic-XAI/internal/engine"
)

const systemPrompt = "You are an expert decision-making assistant that returns structured, actionable recommendations."

// BuildDecisionPrompt renders the structured decision prompt for a live
// model. The requested JSON shape matches the decision schema in parse.go;
// anything that deviates from it fails the trust check and falls back.
func BuildDecisionPrompt(taskText string, ctx engine.Context) string {
	contextBlock := "No context provided."
	if len(ctx) > 0 {
		var lines []string
		for _, k := range ctx.SortedKeys() {
			lines = append(lines, fmt.Sprintf("- %s: %v", k, ctx[k]))
		}
		contextBlock = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`Analyze the following task and provide a structured decision.

**TASK:**
%s

**CONTEXT:**
%s

Respond with JSON in exactly this shape:
{
  "decision": "Your clear and specific recommendation",
  "confidence": <decimal between 0.0 and 1.0>,
  "reasoning": [
    "First key point of analysis",
    "Second important consideration",
    "Third supporting argument"
  ],
  "key_factors": {
    "Factor 1": "Explanation of how this impacts the decision",
    "Factor 2": "Analysis of this consideration"
  }
}

Use higher confidence (0.8-1.0) for clear, well-supported decisions and lower
confidence (0.3-0.7) for complex or uncertain situations. Provide practical,
actionable advice.`, taskText, contextBlock)
}

// DecisionRequest builds the provider request for a decision task.
func DecisionRequest(model, taskText string, ctx engine.Context) *Request {
	return &Request{
		Model: model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildDecisionPrompt(taskText, ctx)},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	}
}
