package domain

// Mode tells the client which visibility rules produced the snapshot
type Mode string

const (
	ModeFocus  Mode = "focus"  // no active query; focus neighborhood is shown
	ModeSearch Mode = "search" // active query; top scored nodes are shown
)

// ViewportTransform is the current pan/zoom state applied on top of layout
// coordinates. The transform is independent of node positions.
type ViewportTransform struct {
	Scale      float64 `json:"scale"`
	TranslateX float64 `json:"translate_x"`
	TranslateY float64 `json:"translate_y"`
}

// SnapshotNode is a node prepared for rendering
type SnapshotNode struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Path          string   `json:"path"`
	Kind          NodeKind `json:"kind"`
	X             float64  `json:"x"`
	Y             float64  `json:"y"`
	Visible       bool     `json:"visible"`
	Focused       bool     `json:"focused,omitempty"`
	Clicked       bool     `json:"clicked,omitempty"`
	PendingSwitch bool     `json:"pending_switch,omitempty"`
	SearchScore   float64  `json:"search_score,omitempty"`
}

// SnapshotEdge is an edge prepared for rendering
type SnapshotEdge struct {
	Source  string  `json:"source"`
	Target  string  `json:"target"`
	Weight  float64 `json:"weight"`
	Visible bool    `json:"visible"`
}

// Snapshot is the render-ready view produced on every session update
type Snapshot struct {
	SessionID string            `json:"session_id"`
	Mode      Mode              `json:"mode"`
	FocusID   string            `json:"focus_id,omitempty"`
	Query     string            `json:"query,omitempty"`
	Nodes     []SnapshotNode    `json:"nodes"`
	Edges     []SnapshotEdge    `json:"edges"`
	Viewport  ViewportTransform `json:"viewport"`
}
