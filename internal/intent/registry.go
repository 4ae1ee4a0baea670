package intent

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CascadeFile is the top-level YAML structure for an intent cascade file.
type CascadeFile struct {
	Primary   []RuleConfig `yaml:"primary"`
	Secondary []RuleConfig `yaml:"secondary"`
}

// RuleConfig is one cascade entry: an intent and the keywords that select it.
// List order in the YAML is the match priority order.
type RuleConfig struct {
	Intent   string   `yaml:"intent"`
	Keywords []string `yaml:"keywords"`
}

// rule is a compiled cascade entry with lowercased keywords.
type rule struct {
	intent   Intent
	keywords []string
}

// ParseCascadeFile parses cascade YAML bytes into a CascadeFile.
func ParseCascadeFile(data []byte) (*CascadeFile, error) {
	var cf CascadeFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing cascade YAML: %w", err)
	}
	return &cf, nil
}

// LoadCascadeFile reads and parses a cascade YAML file from disk.
// Returns nil (not an error) if the file does not exist, so callers can
// treat a missing override file as a no-op.
func LoadCascadeFile(path string) (*CascadeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cascade file %s: %w", path, err)
	}
	return ParseCascadeFile(data)
}

// compileRules validates and lowercases a cascade level. Every entry must
// name a known intent and carry at least one non-blank keyword; match
// semantics depend on keywords being pre-lowercased here, not at query time.
func compileRules(level string, configs []RuleConfig) ([]rule, error) {
	rules := make([]rule, 0, len(configs))
	for i, rc := range configs {
		if !Valid(rc.Intent) {
			return nil, fmt.Errorf("%s cascade entry %d: unknown intent %q", level, i, rc.Intent)
		}
		if len(rc.Keywords) == 0 {
			return nil, fmt.Errorf("%s cascade entry %d (%s): no keywords", level, i, rc.Intent)
		}
		kws := make([]string, 0, len(rc.Keywords))
		for _, kw := range rc.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				return nil, fmt.Errorf("%s cascade entry %d (%s): blank keyword", level, i, rc.Intent)
			}
			kws = append(kws, kw)
		}
		rules = append(rules, rule{intent: Intent(rc.Intent), keywords: kws})
	}
	return rules, nil
}

// Compile converts a parsed cascade file into a ready-to-use Classifier.
func Compile(cf *CascadeFile) (*Classifier, error) {
	if cf == nil {
		return nil, fmt.Errorf("nil cascade file")
	}
	if len(cf.Primary) == 0 {
		return nil, fmt.Errorf("primary cascade is empty")
	}
	primary, err := compileRules("primary", cf.Primary)
	if err != nil {
		return nil, err
	}
	secondary, err := compileRules("secondary", cf.Secondary)
	if err != nil {
		return nil, err
	}
	return &Classifier{primary: primary, secondary: secondary}, nil
}
