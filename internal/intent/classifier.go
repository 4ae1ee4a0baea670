package intent

import (
	"fmt"
	"strings"

	"github.com/Harthik777/Agentic-XAI/patterns"
)

// Classifier assigns exactly one Intent to a task description using a
// two-level first-match-wins keyword cascade. The primary cascade routes
// coarse business categories; tasks that miss it fall through to the finer
// secondary cascade, and tasks that miss both resolve to Contextual.
//
// Classification is a pure function of the text: identical input always
// yields the identical intent, and a Classifier is safe for concurrent use.
type Classifier struct {
	primary   []rule
	secondary []rule
}

// DefaultCascade returns the built-in cascade definitions parsed from the
// embedded intents.yaml file.
func DefaultCascade() (*CascadeFile, error) {
	cf, err := ParseCascadeFile(patterns.IntentsYAML())
	if err != nil {
		return nil, fmt.Errorf("parsing embedded intent cascade: %w", err)
	}
	return cf, nil
}

// NewClassifier builds a Classifier from the embedded default cascade.
func NewClassifier() (*Classifier, error) {
	cf, err := DefaultCascade()
	if err != nil {
		return nil, err
	}
	return Compile(cf)
}

// Default is the classifier compiled from the embedded cascade at init time.
var Default *Classifier

func init() {
	c, err := NewClassifier()
	if err != nil {
		panic(fmt.Sprintf("compiling embedded intent cascade: %v", err))
	}
	Default = c
}

// Classify maps a task description to its intent. Matching is
// case-insensitive substring containment, mirroring how the keyword lists
// were authored (multi-word phrases like "should i" rely on it).
// Empty or whitespace-only text resolves to Contextual.
func (c *Classifier) Classify(taskText string) Intent {
	text := strings.ToLower(strings.TrimSpace(taskText))
	if text == "" {
		return Contextual
	}
	if it, ok := matchCascade(c.primary, text); ok {
		return it
	}
	if it, ok := matchCascade(c.secondary, text); ok {
		return it
	}
	return Contextual
}

func matchCascade(rules []rule, text string) (Intent, bool) {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.intent, true
			}
		}
	}
	return "", false
}
