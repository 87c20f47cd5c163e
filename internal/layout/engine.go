// Package layout assigns 2D coordinates to every node of the model.
//
// The layout is a deterministic angular placement, not a physics simulation:
// the focused node sits exactly at the viewport center, its direct
// connections on an inner ring, second-degree neighbors on an outer ring,
// and everything else far outside the visible area. Identical inputs always
// produce identical positions.
package layout

import (
	"math"
	"sort"

	"docmap/internal/domain"
)

// Ring radii in layout units. The compact set applies when the rendering
// area is short, such as a sidebar-sized embed.
const (
	ringConnections        = 120.0
	ringConnectionsCompact = 80.0
	ringSecondDegree       = 200.0
	ringSecondCompact      = 140.0
	ringOffscreen          = 400.0
	ringOffscreenCompact   = 300.0
	ringNoFocus            = 150.0
	ringNoFocusCompact     = 100.0
)

// compactHeight is the tallest rendering area still treated as a sidebar
// embed.
const compactHeight = 400.0

// Nominal dimensions used while the container is unmeasured, so angle and
// radius math never divides by zero.
const (
	fallbackWidth  = 800.0
	fallbackHeight = 600.0
)

// Apply positions every node of the model for the given focus and viewport.
// An unknown or empty focus id lays the model out as "no focus". Apply is
// idempotent: it reads only its arguments and overwrites every position.
func Apply(model *domain.Model, focusID string, width, height float64) {
	if width <= 0 || height <= 0 {
		width, height = fallbackWidth, fallbackHeight
	}
	compact := height < compactHeight
	cx, cy := width/2, height/2

	focus, ok := model.NodeByID(focusID)
	if !ok {
		spreadAll(model, cx, cy, compact)
		return
	}

	placed := make(map[string]struct{}, len(model.Nodes))
	focus.Position = domain.Position{X: cx, Y: cy}
	placed[focus.ID] = struct{}{}

	placeRing(model, focus.ConnectionIDs(), placed, cx, cy, pick(compact, ringConnectionsCompact, ringConnections), 0)

	second := secondDegree(model, focus, placed)
	placeRing(model, second, placed, cx, cy, pick(compact, ringSecondCompact, ringSecondDegree), math.Pi)

	offscreen := pick(compact, ringOffscreenCompact, ringOffscreen)
	for i, n := range model.Nodes {
		if _, ok := placed[n.ID]; ok {
			continue
		}
		angle := 2 * math.Pi * float64(i) / float64(len(model.Nodes))
		n.Position = ringPosition(cx, cy, offscreen, angle)
	}
}

// placeRing spreads the given ids evenly on one ring, starting at the angular
// offset
func placeRing(model *domain.Model, ids []string, placed map[string]struct{}, cx, cy, radius, offset float64) {
	pending := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := placed[id]; ok {
			continue
		}
		if !model.HasNode(id) {
			continue
		}
		pending = append(pending, id)
	}

	for i, id := range pending {
		angle := offset + 2*math.Pi*float64(i)/float64(len(pending))
		n, _ := model.NodeByID(id)
		n.Position = ringPosition(cx, cy, radius, angle)
		placed[id] = struct{}{}
	}
}

// secondDegree collects nodes that list the focus as a connection but were
// not placed on the first ring. Symmetry makes this set empty for a well
// formed model; it is resolved explicitly anyway. Sorted for determinism.
func secondDegree(model *domain.Model, focus *domain.Node, placed map[string]struct{}) []string {
	ids := make([]string, 0)
	for _, n := range model.Nodes {
		if _, ok := placed[n.ID]; ok {
			continue
		}
		if n.ConnectedTo(focus.ID) {
			ids = append(ids, n.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

// spreadAll lays every node on a single ring by its index, ignoring
// connection structure. Used when there is no focused node.
func spreadAll(model *domain.Model, cx, cy float64, compact bool) {
	radius := pick(compact, ringNoFocusCompact, ringNoFocus)
	total := len(model.Nodes)
	if total == 0 {
		return
	}
	for i, n := range model.Nodes {
		angle := 2 * math.Pi * float64(i) / float64(total)
		n.Position = ringPosition(cx, cy, radius, angle)
	}
}

func ringPosition(cx, cy, radius, angle float64) domain.Position {
	return domain.Position{
		X: cx + radius*math.Cos(angle),
		Y: cy + radius*math.Sin(angle),
	}
}

func pick(compact bool, compactValue, value float64) float64 {
	if compact {
		return compactValue
	}
	return value
}
