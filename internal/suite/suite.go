// Package suite loads pattern suites from YAML and checks them against the
// matcher. A suite names a pattern together with inputs that must match
// (examples) and inputs that must not (negative_examples).
package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is one pattern with its expectations.
type Suite struct {
	Name             string   `yaml:"name"`
	Pattern          string   `yaml:"pattern"`
	Strict           bool     `yaml:"strict,omitempty"`
	Description      string   `yaml:"description,omitempty"`
	Examples         []string `yaml:"examples,omitempty"`
	NegativeExamples []string `yaml:"negative_examples,omitempty"`
}

type suitesFile struct {
	Suites []Suite `yaml:"suites"`
}

// Load parses and validates a suites document.
func Load(data []byte) ([]Suite, error) {
	var f suitesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(f.Suites) == 0 {
		return nil, fmt.Errorf("no suites found in YAML")
	}
	seen := make(map[string]bool, len(f.Suites))
	for i, s := range f.Suites {
		if err := Validate(s); err != nil {
			return nil, fmt.Errorf("suite %d: %w", i+1, err)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate suite name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return f.Suites, nil
}

// LoadFile reads and parses the suites file at path.
func LoadFile(path string) ([]Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	suites, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return suites, nil
}

// Validate checks the required fields. An empty pattern is legal and matches
// only the empty string.
func Validate(s Suite) error {
	if s.Name == "" {
		return fmt.Errorf("suite name is required")
	}
	if len(s.Examples) == 0 && len(s.NegativeExamples) == 0 {
		return fmt.Errorf("suite %s has no examples", s.Name)
	}
	return nil
}
