package codec

import (
	"fmt"
	"io"

	"docmap/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML manifests and exports
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// yamlExport mirrors modelExport with YAML field names
type yamlExport struct {
	Nodes []yamlNode `yaml:"nodes"`
	Edges []yamlEdge `yaml:"edges"`
}

type yamlNode struct {
	ID    string  `yaml:"id"`
	Title string  `yaml:"title"`
	Path  string  `yaml:"path"`
	Kind  string  `yaml:"kind"`
	Level int     `yaml:"level"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

type yamlEdge struct {
	Source string  `yaml:"source"`
	Target string  `yaml:"target"`
	Weight float64 `yaml:"weight"`
}

// ParseTree imports a content tree manifest from YAML
func (c *YAMLCodec) ParseTree(r io.Reader) ([]domain.TreeEntry, error) {
	var manifest treeManifest
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&manifest); err != nil {
		return nil, fmt.Errorf("failed to parse YAML manifest: %w", err)
	}
	return manifest.Entries, nil
}

// ExportModel writes the graph model as YAML
func (c *YAMLCodec) ExportModel(model *domain.Model, w io.Writer) error {
	export := yamlExport{
		Nodes: make([]yamlNode, 0, len(model.Nodes)),
		Edges: make([]yamlEdge, 0, len(model.Edges)),
	}

	for _, n := range model.Nodes {
		export.Nodes = append(export.Nodes, yamlNode{
			ID:    n.ID,
			Title: n.Title,
			Path:  n.Path,
			Kind:  string(n.Kind),
			Level: n.Level,
			X:     n.Position.X,
			Y:     n.Position.Y,
		})
	}

	for _, e := range model.Edges {
		export.Edges = append(export.Edges, yamlEdge{
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&export); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
