// Package visibility decides which nodes and edges render for the current
// mode. The resolver only computes membership sets; it never mutates the
// model.
package visibility

import (
	"docmap/internal/domain"
	"docmap/internal/search"
)

// MaxSearchResults caps the nodes shown in search mode
const MaxSearchResults = 8

// maxHubNodes caps the fallback view when there is no focus and no query
const maxHubNodes = 3

// Visibility holds the membership sets for one render pass. Links stores both
// directed keys ("a-b" and "b-a") so edge lookups are O(1) regardless of
// orientation.
type Visibility struct {
	Nodes map[string]struct{}
	Links map[string]struct{}
}

// VisibleNode reports whether a node should render
func (v Visibility) VisibleNode(id string) bool {
	_, ok := v.Nodes[id]
	return ok
}

// VisibleLink reports whether an edge between a and b should render
func (v Visibility) VisibleLink(a, b string) bool {
	_, ok := v.Links[domain.LinkKey(a, b)]
	return ok
}

// Resolve computes the visible sets.
//
// Search mode (results non-nil): the top MaxSearchResults scored nodes are
// shown; an edge is shown only when both endpoints are inside that set.
// Focus mode: the focused node, its connections, and any node listing the
// focus as a connection, plus the matching edges. No focus and no query: up
// to three nodes with more than one connection, no edges.
func Resolve(model *domain.Model, results []search.Result, focusID string) Visibility {
	if results != nil {
		return resolveSearch(model, results)
	}
	if focus, ok := model.NodeByID(focusID); ok {
		return resolveFocus(model, focus)
	}
	return resolveHubs(model)
}

func newVisibility() Visibility {
	return Visibility{
		Nodes: make(map[string]struct{}),
		Links: make(map[string]struct{}),
	}
}

func (v Visibility) addLink(a, b string) {
	v.Links[domain.LinkKey(a, b)] = struct{}{}
	v.Links[domain.LinkKey(b, a)] = struct{}{}
}

func resolveSearch(model *domain.Model, results []search.Result) Visibility {
	v := newVisibility()
	for _, r := range search.Top(results, MaxSearchResults) {
		v.Nodes[r.Node.ID] = struct{}{}
	}
	for _, e := range model.Edges {
		if _, ok := v.Nodes[e.Source]; !ok {
			continue
		}
		if _, ok := v.Nodes[e.Target]; !ok {
			continue
		}
		v.addLink(e.Source, e.Target)
	}
	return v
}

func resolveFocus(model *domain.Model, focus *domain.Node) Visibility {
	v := newVisibility()
	v.Nodes[focus.ID] = struct{}{}

	for id := range focus.Connections {
		if !model.HasNode(id) {
			continue
		}
		v.Nodes[id] = struct{}{}
		v.addLink(focus.ID, id)
	}

	// Connections are symmetric by construction, but the reverse direction is
	// resolved explicitly in case a half-wired model ever reaches us.
	for _, n := range model.Nodes {
		if n.ID == focus.ID || !n.ConnectedTo(focus.ID) {
			continue
		}
		v.Nodes[n.ID] = struct{}{}
		v.addLink(focus.ID, n.ID)
	}

	return v
}

// resolveHubs picks the default no-focus, no-query view: the first nodes (in
// model order) with more than one connection. Intentionally order-dependent;
// kept as-is until product intent says otherwise.
func resolveHubs(model *domain.Model) Visibility {
	v := newVisibility()
	for _, n := range model.Nodes {
		if n.ConnectionCount() > 1 {
			v.Nodes[n.ID] = struct{}{}
			if len(v.Nodes) == maxHubNodes {
				break
			}
		}
	}
	return v
}
