// Package session composes the graph engines into per-viewer state.
//
// A session owns everything transient: focus, query, viewport dimensions,
// pan/zoom transform, and the interaction gesture. Every operation recomputes
// scoring, visibility, and layout synchronously from the latest inputs and
// returns a render-ready snapshot, so there is no shared mutable state across
// recomputations. Nothing in a session is ever persisted.
package session

import (
	"strings"
	"sync"

	"docmap/internal/domain"
	"docmap/internal/interaction"
	"docmap/internal/layout"
	"docmap/internal/search"
	"docmap/internal/viewport"
	"docmap/internal/visibility"
)

// Session is one viewer's interactive graph state. All methods are safe for
// concurrent use; each operation runs under the session lock, which keeps the
// recompute path effectively single-threaded per viewer.
type Session struct {
	mu sync.Mutex

	id      string
	model   *domain.Model
	focusID string
	query   string
	width   float64
	height  float64

	vp *viewport.Controller
	ic *interaction.Controller
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// SetDimensions records the rendering container size. Zero values are kept;
// the layout engine falls back to nominal dimensions on its own.
func (s *Session) SetDimensions(width, height float64) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
	return s.snapshotLocked()
}

// Focus moves the focus without the click gesture, e.g. to follow the host's
// current navigation path. Unknown ids are kept and degrade to "no focus"
// downstream.
func (s *Session) Focus(id string) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focusID = id
	s.ic.ClearPending()
	return s.snapshotLocked()
}

// Search sets the query. A blank query leaves search mode.
func (s *Session) Search(query string) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	return s.snapshotLocked()
}

// ClearSearch leaves search mode
func (s *Session) ClearSearch() domain.Snapshot {
	return s.Search("")
}

// Click runs the click gesture on a node: focus moves and the confirmation
// markers arm. Clicks on unknown nodes or during a committing navigation are
// no-ops.
func (s *Session) Click(id string) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if node, ok := s.model.NodeByID(id); ok {
		if s.ic.Click(node.ID, node.Path) {
			s.focusID = node.ID
		}
	}
	return s.snapshotLocked()
}

// ActivateSwitch commits the pending switch affordance
func (s *Session) ActivateSwitch() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ic.ActivateSwitch()
	return s.snapshotLocked()
}

// ZoomIn zooms the viewport one step in
func (s *Session) ZoomIn() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vp.ZoomIn()
	return s.snapshotLocked()
}

// ZoomOut zooms the viewport one step out
func (s *Session) ZoomOut() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vp.ZoomOut()
	return s.snapshotLocked()
}

// Wheel applies a wheel delta from over the graph container
func (s *Session) Wheel(deltaY float64) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vp.Wheel(deltaY)
	return s.snapshotLocked()
}

// DragStart begins a pan gesture
func (s *Session) DragStart(x, y float64) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vp.DragStart(x, y)
	return s.snapshotLocked()
}

// DragMove continues a pan gesture
func (s *Session) DragMove(x, y float64) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vp.DragMove(x, y)
	return s.snapshotLocked()
}

// DragEnd finishes a pan gesture
func (s *Session) DragEnd() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vp.DragEnd()
	return s.snapshotLocked()
}

// ResetView restores the identity transform; also bound to the host's
// "reset view" shortcut
func (s *Session) ResetView() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vp.Reset()
	return s.snapshotLocked()
}

// Snapshot recomputes and returns the current render state
func (s *Session) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// setModel swaps in a freshly built model. The focus id is kept; if the node
// disappeared, layout and visibility treat it as unset.
func (s *Session) setModel(model *domain.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = model
	s.ic.ClearPending()
}

// snapshotLocked runs the recompute pipeline: score, resolve visibility, lay
// out, then assemble the render view. Caller holds the lock.
func (s *Session) snapshotLocked() domain.Snapshot {
	results := search.Score(s.model, s.query, s.focusID)
	vis := visibility.Resolve(s.model, results, s.focusID)
	layout.Apply(s.model, s.focusID, s.width, s.height)

	mode := domain.ModeFocus
	if strings.TrimSpace(s.query) != "" {
		mode = domain.ModeSearch
	}

	clicked := s.ic.ClickedID()
	pending := s.ic.PendingID()

	snap := domain.Snapshot{
		SessionID: s.id,
		Mode:      mode,
		FocusID:   s.focusID,
		Query:     s.query,
		Viewport:  s.vp.Transform(),
		Nodes:     make([]domain.SnapshotNode, 0, len(s.model.Nodes)),
		Edges:     make([]domain.SnapshotEdge, 0, len(s.model.Edges)),
	}

	for _, n := range s.model.Nodes {
		snap.Nodes = append(snap.Nodes, domain.SnapshotNode{
			ID:            n.ID,
			Title:         n.Title,
			Path:          n.Path,
			Kind:          n.Kind,
			X:             n.Position.X,
			Y:             n.Position.Y,
			Visible:       vis.VisibleNode(n.ID),
			Focused:       n.ID == s.focusID,
			Clicked:       n.ID == clicked,
			PendingSwitch: n.ID == pending,
			SearchScore:   n.SearchScore,
		})
	}

	for _, e := range s.model.Edges {
		snap.Edges = append(snap.Edges, domain.SnapshotEdge{
			Source:  e.Source,
			Target:  e.Target,
			Weight:  e.Weight,
			Visible: vis.VisibleLink(e.Source, e.Target),
		})
	}

	return snap
}
