package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Narration limits. Steps narrate already-computed values; no new
// computation happens here beyond truncation and ranking for display.
const (
	taskPreviewRunes     = 80
	decisionPreviewRunes = 60
	maxNarratedKeys      = 3
	maxNarratedActions   = 3
)

// actionVerbs are the task verbs worth calling out in the narration.
var actionVerbs = []string{
	"analyze", "create", "decide", "recommend", "evaluate",
	"compare", "solve", "find", "determine", "assess",
}

// Narrate assembles the ordered, human-readable trace of a decision: task
// restatement, context summary, detected action verbs, top-weighted context
// keys, decision preview, and the confidence sentence. The step order is
// fixed; confidence is rendered as a percentage of the 0-1 narrative value.
func Narrate(taskText string, ctx Context, decisionText string, importance map[string]float64, confidence float64) []string {
	steps := make([]string, 0, 6)

	steps = append(steps, fmt.Sprintf("Analyzed the task: '%s'", truncate(taskText, taskPreviewRunes)))

	if len(ctx) > 0 {
		desc := fmt.Sprintf("Evaluated %d context parameter%s", len(ctx), plural(len(ctx)))
		if len(ctx) <= maxNarratedKeys {
			desc += ": " + strings.Join(ctx.SortedKeys(), ", ")
		}
		steps = append(steps, desc)
	} else {
		steps = append(steps, "No additional context was provided for analysis")
	}

	if actions := detectActions(taskText); len(actions) > 0 {
		steps = append(steps, "Identified key actions required: "+strings.Join(actions, ", "))
	}

	if top := topKeys(importance, maxNarratedKeys); len(top) > 0 {
		steps = append(steps, "Prioritized key factors: "+strings.Join(top, ", "))
	}

	steps = append(steps, fmt.Sprintf("Formulated decision based on analysis: '%s'", truncate(decisionText, decisionPreviewRunes)))
	steps = append(steps, fmt.Sprintf("Assessed decision confidence at %.1f%% based on available information", confidence*100))

	return steps
}

// detectActions returns the action verbs present as whole words in the
// task text, in the fixed verb-list order, capped at maxNarratedActions.
func detectActions(taskText string) []string {
	words := map[string]bool{}
	for _, w := range strings.FieldsFunc(strings.ToLower(taskText), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		words[w] = true
	}

	var found []string
	for _, verb := range actionVerbs {
		if words[verb] {
			found = append(found, verb)
			if len(found) == maxNarratedActions {
				break
			}
		}
	}
	return found
}

// topKeys ranks context keys by importance score, highest first, with an
// alphabetical tie-break so narration stays deterministic.
func topKeys(importance map[string]float64, n int) []string {
	keys := make([]string, 0, len(importance))
	for k := range importance {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if importance[keys[i]] != importance[keys[j]] {
			return importance[keys[i]] > importance[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
