package domain

import "sort"

// NodeKind represents the kind of documentation entry behind a node
type NodeKind string

const (
	NodeKindPage  NodeKind = "page"  // a content file
	NodeKindGroup NodeKind = "group" // a directory of entries
)

// Node represents one documentation entry in the graph.
//
// The id equals the entry's content path, which keeps it stable across rebuilds
// and doubles as the navigation target. Position is recomputed by the layout
// engine whenever focus or viewport dimensions change and is never persisted.
// SearchScore is only meaningful while a search query is active.
type Node struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Path        string   `json:"path"`
	Kind        NodeKind `json:"kind"`
	Level       int      `json:"level"`
	Position    Position `json:"position"`
	SearchScore float64  `json:"search_score,omitempty"`

	// Connections is the undirected neighbor set, covering both structural
	// parent/child links and curated related-topic links. Kept symmetric by
	// Model.AddEdge.
	Connections map[string]struct{} `json:"-"`
}

// NewNode creates a node for a tree entry
func NewNode(path, title string, kind NodeKind, level int) *Node {
	return &Node{
		ID:          path,
		Title:       title,
		Path:        path,
		Kind:        kind,
		Level:       level,
		Connections: make(map[string]struct{}),
	}
}

// Connect records a neighbor. Callers are expected to add the reverse
// direction as well; Model.AddEdge does both.
func (n *Node) Connect(id string) {
	if n.Connections == nil {
		n.Connections = make(map[string]struct{})
	}
	n.Connections[id] = struct{}{}
}

// ConnectedTo reports whether the node lists id as a neighbor
func (n *Node) ConnectedTo(id string) bool {
	_, ok := n.Connections[id]
	return ok
}

// ConnectionIDs returns the neighbor ids in sorted order
func (n *Node) ConnectionIDs() []string {
	ids := make([]string, 0, len(n.Connections))
	for id := range n.Connections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ConnectionCount returns the number of neighbors
func (n *Node) ConnectionCount() int {
	return len(n.Connections)
}
