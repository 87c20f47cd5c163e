// Package search scores graph nodes against a free-text query.
//
// The scorer is a lightweight title/path heuristic with a proximity boost for
// the focused neighborhood, not an inverted index. Scores live in [0, 1] and
// are only meaningful while a query is active.
package search

import (
	"sort"
	"strings"

	"docmap/internal/domain"
)

// Base scores, non-cumulative: the first matching rule wins.
const (
	scoreTitleExact    = 1.0
	scoreTitlePrefix   = 0.9
	scoreTitleContains = 0.7
	scorePathContains  = 0.4
)

// Boosts, additive on top of a positive base score.
const (
	boostFocused    = 0.2
	boostConnection = 0.1
)

// Result pairs a node with its relevance score
type Result struct {
	Node  *domain.Node
	Score float64
}

// Score evaluates every node against the query and returns the ordered result
// list: nodes with score > 0, descending by score, ties kept in node order.
//
// Each scored node's SearchScore field is updated as a side channel for the
// snapshot; nodes that do not match are reset to 0. A blank query clears all
// scores and yields no results, not "all nodes".
func Score(model *domain.Model, query, focusID string) []Result {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		for _, n := range model.Nodes {
			n.SearchScore = 0
		}
		return nil
	}

	var focus *domain.Node
	if focusID != "" {
		focus, _ = model.NodeByID(focusID)
	}

	results := make([]Result, 0)
	for _, n := range model.Nodes {
		score := baseScore(n, query)
		if score > 0 && focus != nil {
			if n.ID == focus.ID {
				score += boostFocused
			} else if focus.ConnectedTo(n.ID) {
				score += boostConnection
			}
			if score > 1.0 {
				score = 1.0
			}
		}
		n.SearchScore = score
		if score > 0 {
			results = append(results, Result{Node: n, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// baseScore applies the match ladder in priority order
func baseScore(n *domain.Node, query string) float64 {
	title := strings.ToLower(n.Title)
	switch {
	case title == query:
		return scoreTitleExact
	case strings.HasPrefix(title, query):
		return scoreTitlePrefix
	case strings.Contains(title, query):
		return scoreTitleContains
	case strings.Contains(strings.ToLower(n.Path), query):
		return scorePathContains
	default:
		return 0
	}
}

// Top returns at most n results from the head of the ordered list
func Top(results []Result, n int) []Result {
	if len(results) <= n {
		return results
	}
	return results[:n]
}
