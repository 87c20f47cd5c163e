package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docmap/internal/domain"
)

func testTree() []domain.TreeEntry {
	return []domain.TreeEntry{
		{
			Name: "a", Path: "a", Type: domain.EntryTypeDirectory,
			Children: []domain.TreeEntry{
				{Name: "intro", Path: "a/intro", Type: domain.EntryTypeFile},
			},
		},
		{
			Name: "b", Path: "b", Type: domain.EntryTypeDirectory,
			Children: []domain.TreeEntry{
				{Name: "quick-start", Path: "b/quick-start", Type: domain.EntryTypeFile},
			},
		},
	}
}

func TestBuildStructural(t *testing.T) {
	b := NewWithPairs(Config{Width: 800, Height: 600}, []CuratedPair{
		{A: "installation", B: "quick-start"}, // "installation" has no match
	})
	model := b.Build(testTree())

	t.Run("one node per entry", func(t *testing.T) {
		require.Equal(t, 4, model.NodeCount())
		for _, id := range []string{"a", "a/intro", "b", "b/quick-start"} {
			assert.True(t, model.HasNode(id), "missing node %s", id)
		}
	})

	t.Run("one structural edge per directory, no curated edges", func(t *testing.T) {
		require.Equal(t, 2, model.EdgeCount())
		for _, e := range model.Edges {
			assert.Equal(t, domain.WeightStructural, e.Weight)
		}
	})

	t.Run("node fields", func(t *testing.T) {
		group, ok := model.NodeByID("a")
		require.True(t, ok)
		assert.Equal(t, domain.NodeKindGroup, group.Kind)
		assert.Equal(t, 0, group.Level)
		assert.Equal(t, "A", group.Title)

		page, ok := model.NodeByID("a/intro")
		require.True(t, ok)
		assert.Equal(t, domain.NodeKindPage, page.Kind)
		assert.Equal(t, 1, page.Level)
		assert.Equal(t, "a/intro", page.Path)
	})
}

func TestBuildConnectionsSymmetric(t *testing.T) {
	model := New(Config{Width: 800, Height: 600}).Build(testTree())

	for _, e := range model.Edges {
		from, ok := model.NodeByID(e.Source)
		require.True(t, ok)
		to, ok := model.NodeByID(e.Target)
		require.True(t, ok)
		assert.True(t, from.ConnectedTo(e.Target), "edge %s-%s not listed by source", e.Source, e.Target)
		assert.True(t, to.ConnectedTo(e.Source), "edge %s-%s not listed by target", e.Source, e.Target)
	}
}

func TestBuildCuratedPairs(t *testing.T) {
	tree := []domain.TreeEntry{
		{
			Name: "getting-started", Path: "getting-started", Type: domain.EntryTypeDirectory,
			Children: []domain.TreeEntry{
				{Name: "installation", Path: "getting-started/installation", Type: domain.EntryTypeFile},
				{Name: "quick-start", Path: "getting-started/quick-start", Type: domain.EntryTypeFile},
			},
		},
	}

	t.Run("resolved pair adds one curated edge", func(t *testing.T) {
		b := NewWithPairs(Config{Width: 800, Height: 600}, []CuratedPair{
			{A: "installation", B: "quick-start"},
		})
		model := b.Build(tree)

		// 2 structural (parent-child) + 1 curated
		require.Equal(t, 3, model.EdgeCount())
		curated := model.Edges[2]
		assert.Equal(t, domain.WeightCurated, curated.Weight)
		assert.Equal(t, "getting-started/installation", curated.Source)
		assert.Equal(t, "getting-started/quick-start", curated.Target)
	})

	t.Run("duplicate pair is skipped", func(t *testing.T) {
		b := NewWithPairs(Config{Width: 800, Height: 600}, []CuratedPair{
			{A: "installation", B: "quick-start"},
			{A: "quick-start", B: "installation"},
		})
		model := b.Build(tree)
		assert.Equal(t, 3, model.EdgeCount())
	})

	t.Run("pair resolving to one node is skipped", func(t *testing.T) {
		b := NewWithPairs(Config{Width: 800, Height: 600}, []CuratedPair{
			{A: "start", B: "started"}, // both match getting-started first
		})
		model := b.Build(tree)
		assert.Equal(t, 2, model.EdgeCount())
	})
}

func TestBuildDeterministic(t *testing.T) {
	cfg := Config{Width: 800, Height: 600}
	first := New(cfg).Build(testTree())
	second := New(cfg).Build(testTree())

	require.Equal(t, first.NodeCount(), second.NodeCount())
	require.Equal(t, first.EdgeCount(), second.EdgeCount())
	for i, n := range first.Nodes {
		other := second.Nodes[i]
		assert.Equal(t, n.ID, other.ID)
		assert.Equal(t, n.Position, other.Position)
		assert.Equal(t, n.ConnectionIDs(), other.ConnectionIDs())
	}
}

func TestBuildScatterInsideBounds(t *testing.T) {
	model := New(Config{Width: 400, Height: 300}).Build(testTree())
	for _, n := range model.Nodes {
		assert.GreaterOrEqual(t, n.Position.X, 0.0)
		assert.Less(t, n.Position.X, 400.0)
		assert.GreaterOrEqual(t, n.Position.Y, 0.0)
		assert.Less(t, n.Position.Y, 300.0)
	}
}

func TestLoadCuratedPairs(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		pairs, err := LoadCuratedPairs("")
		require.NoError(t, err)
		assert.Equal(t, DefaultCuratedPairs(), pairs)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadCuratedPairs("does/not/exist.yaml")
		assert.Error(t, err)
	})
}
