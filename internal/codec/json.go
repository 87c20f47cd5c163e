package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"docmap/internal/domain"
)

// JSONCodec handles JSON manifests and exports
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// treeManifest is the wire form of a content tree manifest
type treeManifest struct {
	Entries []domain.TreeEntry `json:"entries" yaml:"entries"`
}

// modelExport is the wire form of a graph export
type modelExport struct {
	Nodes []domain.Node `json:"nodes"`
	Edges []domain.Edge `json:"edges"`
}

// ParseTree imports a content tree manifest from JSON
func (c *JSONCodec) ParseTree(r io.Reader) ([]domain.TreeEntry, error) {
	var manifest treeManifest
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&manifest); err != nil {
		return nil, fmt.Errorf("failed to parse JSON manifest: %w", err)
	}
	return manifest.Entries, nil
}

// ParseModel reads a graph export back into a model. Connection sets and the
// id index are rebuilt from the edge list.
func (c *JSONCodec) ParseModel(r io.Reader) (*domain.Model, error) {
	var export modelExport
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&export); err != nil {
		return nil, fmt.Errorf("failed to parse JSON export: %w", err)
	}

	model := &domain.Model{Edges: export.Edges}
	for i := range export.Nodes {
		model.Nodes = append(model.Nodes, &export.Nodes[i])
	}
	model.Reindex()
	return model, nil
}

// ExportModel writes the graph model as JSON
func (c *JSONCodec) ExportModel(model *domain.Model, w io.Writer) error {
	export := modelExport{
		Nodes: make([]domain.Node, 0, len(model.Nodes)),
		Edges: model.Edges,
	}
	for _, n := range model.Nodes {
		export.Nodes = append(export.Nodes, *n)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
