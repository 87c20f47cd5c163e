package domain

// Position is a node's location in layout space. Off-screen nodes still carry
// a position for animation continuity; only the visible set is meant to render.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
