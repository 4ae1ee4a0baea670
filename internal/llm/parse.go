package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// decisionSchema is the trust boundary for live-model output. Anything that
// does not validate against it is treated as malformed and resolved through
// the fallback engine instead.
const decisionSchema = `{
  "type": "object",
  "required": ["decision", "confidence", "reasoning"],
  "properties": {
    "decision": {"type": "string", "minLength": 1},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "reasoning": {
      "type": "array",
      "items": {"type": "string"},
      "minItems": 1
    },
    "key_factors": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    }
  }
}`

var decisionSchemaLoader = gojsonschema.NewStringLoader(decisionSchema)

// ModelDecision is a validated structured decision from a live model.
type ModelDecision struct {
	Decision   string            `json:"decision"`
	Confidence float64           `json:"confidence"`
	Reasoning  []string          `json:"reasoning"`
	KeyFactors map[string]string `json:"key_factors"`
}

// decisionPrefixes are boilerplate lead-ins models prepend despite the
// prompt; they are stripped so the recommendation reads as a statement.
var decisionPrefixes = []string{
	"Decision:", "My decision:", "Based on the analysis:",
	"After analyzing:", "My recommendation:", "I recommend:",
}

// ExtractJSON pulls the JSON object out of raw model output. A fenced
// ```json block wins; otherwise the outermost brace pair is taken.
func ExtractJSON(output string) (string, error) {
	if start := strings.Index(output, "```json"); start >= 0 {
		rest := output[start+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end]), nil
		}
	}

	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start < 0 || end <= start {
		return "", ErrNoJSONFound
	}
	return output[start : end+1], nil
}

// ParseDecision extracts, schema-validates, and decodes a structured
// decision from raw model output. Any failure means the output is not
// trusted; the caller falls back to the deterministic engine.
func ParseDecision(output string) (*ModelDecision, error) {
	raw, err := ExtractJSON(output)
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(decisionSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("validating model output: %w", err)
	}
	if !result.Valid() {
		var issues []string
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(issues, "; "))
	}

	var md ModelDecision
	if err := json.Unmarshal([]byte(raw), &md); err != nil {
		return nil, fmt.Errorf("decoding model output: %w", err)
	}

	md.Decision = CleanDecision(md.Decision)
	return &md, nil
}

// CleanDecision strips boilerplate prefixes and guarantees terminal
// punctuation on a decision text.
func CleanDecision(decision string) string {
	decision = strings.TrimSpace(decision)
	for _, prefix := range decisionPrefixes {
		if len(decision) >= len(prefix) && strings.EqualFold(decision[:len(prefix)], prefix) {
			decision = strings.TrimSpace(decision[len(prefix):])
		}
	}
	if decision != "" && !strings.ContainsRune(".!?", rune(decision[len(decision)-1])) {
		decision += "."
	}
	return decision
}
