package domain

// Model is the full node/edge set built from one content tree input.
//
// Nodes keep their traversal order; byID gives O(1) lookup. The model is
// rebuilt whenever the tree input or rendering dimensions change, and is never
// mutated by the visibility resolver or the search scorer. Only the layout
// engine writes node positions.
type Model struct {
	Nodes []*Node
	Edges []Edge

	byID map[string]*Node
}

// NewModel creates an empty model
func NewModel() *Model {
	return &Model{
		Nodes: make([]*Node, 0),
		Edges: make([]Edge, 0),
		byID:  make(map[string]*Node),
	}
}

// AddNode appends a node. A node with a duplicate id is ignored: ids are
// unique across the whole model.
func (m *Model) AddNode(n *Node) bool {
	if _, exists := m.byID[n.ID]; exists {
		return false
	}
	m.Nodes = append(m.Nodes, n)
	m.byID[n.ID] = n
	return true
}

// AddEdge records an edge between two existing nodes and connects both
// endpoints, keeping the connection sets symmetric. Duplicate pairs (in either
// orientation) and edges to unknown nodes are skipped.
func (m *Model) AddEdge(source, target string, weight float64) bool {
	if source == target {
		return false
	}
	from, ok := m.byID[source]
	if !ok {
		return false
	}
	to, ok := m.byID[target]
	if !ok {
		return false
	}
	if from.ConnectedTo(target) {
		return false
	}

	from.Connect(target)
	to.Connect(source)
	m.Edges = append(m.Edges, Edge{Source: source, Target: target, Weight: weight})
	return true
}

// NodeByID looks up a node by id
func (m *Model) NodeByID(id string) (*Node, bool) {
	n, ok := m.byID[id]
	return n, ok
}

// HasNode reports whether a node with the given id exists
func (m *Model) HasNode(id string) bool {
	_, ok := m.byID[id]
	return ok
}

// NodeCount returns the number of nodes
func (m *Model) NodeCount() int {
	return len(m.Nodes)
}

// EdgeCount returns the number of edges
func (m *Model) EdgeCount() int {
	return len(m.Edges)
}

// Clone deep-copies the model. Sessions work on their own clone so layout
// positions and search scores never leak between concurrent viewers.
func (m *Model) Clone() *Model {
	clone := NewModel()
	for _, n := range m.Nodes {
		copied := &Node{
			ID:          n.ID,
			Title:       n.Title,
			Path:        n.Path,
			Kind:        n.Kind,
			Level:       n.Level,
			Position:    n.Position,
			SearchScore: n.SearchScore,
			Connections: make(map[string]struct{}, len(n.Connections)),
		}
		for id := range n.Connections {
			copied.Connections[id] = struct{}{}
		}
		clone.Nodes = append(clone.Nodes, copied)
		clone.byID[copied.ID] = copied
	}
	clone.Edges = append(clone.Edges, m.Edges...)
	return clone
}

// Reindex rebuilds the id lookup. Needed after decoding a model from storage
// or a wire format, where only Nodes and Edges travel.
func (m *Model) Reindex() {
	m.byID = make(map[string]*Node, len(m.Nodes))
	for _, n := range m.Nodes {
		if n.Connections == nil {
			n.Connections = make(map[string]struct{})
		}
		m.byID[n.ID] = n
	}
	for _, e := range m.Edges {
		if from, ok := m.byID[e.Source]; ok {
			from.Connect(e.Target)
		}
		if to, ok := m.byID[e.Target]; ok {
			to.Connect(e.Source)
		}
	}
}
