package domain

// Edge weights. Weight is a rendering and future-ranking hint; the layout
// engine does not consume it.
const (
	WeightStructural = 1.0 // parent/child link from the content tree
	WeightCurated    = 0.7 // curated related-topic link
)

// Edge is a connection between two nodes, instantiated for rendering
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Key returns the directed link key "source-target"
func (e Edge) Key() string {
	return LinkKey(e.Source, e.Target)
}

// LinkKey builds the directed link key for an (a, b) pair. Visibility sets
// store both directions so lookups work regardless of edge orientation.
func LinkKey(a, b string) string {
	return a + "-" + b
}

// Involves reports whether the edge touches the given node id
func (e Edge) Involves(id string) bool {
	return e.Source == id || e.Target == id
}

// OtherEnd returns the node id on the other end of the edge
func (e Edge) OtherEnd(id string) string {
	if e.Source == id {
		return e.Target
	}
	return e.Source
}
