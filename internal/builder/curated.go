package builder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CuratedPair names two topics that should be cross-linked even though the
// content tree does not relate them. Each side is matched as a substring of
// node paths; pairs that fail to resolve are skipped, not errors.
type CuratedPair struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// DefaultCuratedPairs returns the built-in related-topic table
func DefaultCuratedPairs() []CuratedPair {
	return []CuratedPair{
		{A: "installation", B: "quick-start"},
		{A: "quick-start", B: "configuration"},
		{A: "configuration", B: "deployment"},
		{A: "api", B: "authentication"},
		{A: "troubleshooting", B: "faq"},
	}
}

// curatedFile is the on-disk shape of a curated links override
type curatedFile struct {
	Pairs []CuratedPair `yaml:"pairs"`
}

// LoadCuratedPairs reads a curated pair table from a YAML file. An empty path
// returns the built-in table.
func LoadCuratedPairs(path string) ([]CuratedPair, error) {
	if path == "" {
		return DefaultCuratedPairs(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curated links: %w", err)
	}

	var file curatedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse curated links: %w", err)
	}

	return file.Pairs, nil
}
