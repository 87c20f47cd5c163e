// Package codec reads content tree manifests and writes graph exports.
//
// A manifest is the pre-walked tree form of a docs directory, useful when the
// content lives behind a build pipeline instead of on disk. Exports carry the
// full node/edge set for external tooling.
package codec

import (
	"fmt"
	"io"

	"docmap/internal/domain"
)

// TreeImporter parses a content tree manifest
type TreeImporter interface {
	ParseTree(r io.Reader) ([]domain.TreeEntry, error)
	Format() string
}

// ModelExporter writes a graph model
type ModelExporter interface {
	ExportModel(model *domain.Model, w io.Writer) error
	Format() string
}

// Codec handles both directions for one format
type Codec interface {
	TreeImporter
	ModelExporter
}

// ForFormat returns the codec for a format identifier
func ForFormat(format string) (Codec, error) {
	switch format {
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
