package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Harthik777/Agentic-XAI/internal/intent"
	"github.com/Harthik777/Agentic-XAI/patterns"
)

// riskPoolSize is the fixed length of the universal risk-factor list. The
// synthesizer's index arithmetic assumes exactly this many entries.
const riskPoolSize = 8

// alternativesPerDecision is the fixed number of alternatives every
// playbook (and therefore every decision) carries.
const alternativesPerDecision = 2

// PlaybookFile is the top-level YAML structure for a playbook catalog.
type PlaybookFile struct {
	Playbooks   []PlaybookConfig `yaml:"playbooks"`
	RiskFactors []string         `yaml:"risk_factors"`
}

// PlaybookConfig is one intent's hand-authored template set.
type PlaybookConfig struct {
	Intent         string        `yaml:"intent"`
	Recommendation string        `yaml:"recommendation"`
	Rationale      string        `yaml:"rationale"`
	Alternatives   []Alternative `yaml:"alternatives"`
}

// Catalog is the compiled closed lookup table the synthesizer draws from:
// one playbook per intent plus the universal risk-factor pool.
type Catalog struct {
	playbooks map[intent.Intent]PlaybookConfig
	riskPool  []string
}

// ParsePlaybookFile parses playbook YAML bytes into a PlaybookFile.
func ParsePlaybookFile(data []byte) (*PlaybookFile, error) {
	var pf PlaybookFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing playbook YAML: %w", err)
	}
	return &pf, nil
}

// LoadPlaybookFile reads and parses a playbook YAML file from disk.
// Returns nil (not an error) if the file does not exist.
func LoadPlaybookFile(path string) (*PlaybookFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading playbook file %s: %w", path, err)
	}
	return ParsePlaybookFile(data)
}

// CompileCatalog validates a parsed playbook file and builds the lookup
// table. Every intent in the taxonomy must have exactly one playbook, each
// playbook exactly two alternatives, and the risk pool exactly eight
// entries — the synthesizer's determinism contract depends on all three.
func CompileCatalog(pf *PlaybookFile) (*Catalog, error) {
	if pf == nil {
		return nil, fmt.Errorf("nil playbook file")
	}
	if len(pf.RiskFactors) != riskPoolSize {
		return nil, fmt.Errorf("risk factor pool must have exactly %d entries, got %d", riskPoolSize, len(pf.RiskFactors))
	}

	books := make(map[intent.Intent]PlaybookConfig, len(pf.Playbooks))
	for i, pb := range pf.Playbooks {
		if !intent.Valid(pb.Intent) {
			return nil, fmt.Errorf("playbook %d: unknown intent %q", i, pb.Intent)
		}
		it := intent.Intent(pb.Intent)
		if _, dup := books[it]; dup {
			return nil, fmt.Errorf("playbook %d: duplicate intent %q", i, pb.Intent)
		}
		if pb.Recommendation == "" || pb.Rationale == "" {
			return nil, fmt.Errorf("playbook %q: recommendation and rationale are required", pb.Intent)
		}
		if len(pb.Alternatives) != alternativesPerDecision {
			return nil, fmt.Errorf("playbook %q: expected %d alternatives, got %d", pb.Intent, alternativesPerDecision, len(pb.Alternatives))
		}
		books[it] = pb
	}

	for _, it := range intent.All() {
		if _, ok := books[it]; !ok {
			return nil, fmt.Errorf("no playbook for intent %q", it)
		}
	}

	riskPool := make([]string, len(pf.RiskFactors))
	copy(riskPool, pf.RiskFactors)
	return &Catalog{playbooks: books, riskPool: riskPool}, nil
}

// DefaultCatalog builds the catalog from the embedded playbooks.yaml.
func DefaultCatalog() (*Catalog, error) {
	pf, err := ParsePlaybookFile(patterns.PlaybooksYAML())
	if err != nil {
		return nil, fmt.Errorf("parsing embedded playbooks: %w", err)
	}
	return CompileCatalog(pf)
}

// Lookup returns the playbook for an intent. The compile-time coverage
// check guarantees ok for every taxonomy member; ok exists for callers
// probing with untrusted intent strings.
func (c *Catalog) Lookup(it intent.Intent) (PlaybookConfig, bool) {
	pb, ok := c.playbooks[it]
	return pb, ok
}

// RiskPool returns the universal risk-factor list in index order.
func (c *Catalog) RiskPool() []string {
	out := make([]string, len(c.riskPool))
	copy(out, c.riskPool)
	return out
}
