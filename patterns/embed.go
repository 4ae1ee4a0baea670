// Package patterns provides the embedded default decision catalogs.
// YAML files in this directory define the intent keyword cascades and the
// per-intent fallback playbooks (templates, alternatives, risk factors).
package patterns

import _ "embed"

//go:embed intents.yaml
var intentsYAML []byte

//go:embed playbooks.yaml
var playbooksYAML []byte

// IntentsYAML returns the embedded default intent cascade definitions.
func IntentsYAML() []byte { return intentsYAML }

// PlaybooksYAML returns the embedded default fallback playbook definitions.
func PlaybooksYAML() []byte { return playbooksYAML }
