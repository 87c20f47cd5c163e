// Package builder flattens a documentation content tree into the graph model
// and augments it with curated related-topic links.
package builder

import (
	"math/rand"
	"strings"

	"docmap/internal/domain"
)

// DefaultSeed feeds the initial coordinate scatter. The scatter is cosmetic
// (it prevents a visual pop before the first layout pass) and the layout
// engine overwrites every position, so a fixed seed keeps rebuilds
// deterministic without changing behavior.
const DefaultSeed = 1

// Config carries the viewport dimensions used to seed initial coordinates
// and the seed of the scatter source.
type Config struct {
	Width  float64
	Height float64
	Seed   int64
}

// Builder assembles a graph model from a content tree
type Builder struct {
	cfg   Config
	pairs []CuratedPair
}

// New creates a builder with the default curated pair table
func New(cfg Config) *Builder {
	return NewWithPairs(cfg, DefaultCuratedPairs())
}

// NewWithPairs creates a builder with an explicit curated pair table
func NewWithPairs(cfg Config, pairs []CuratedPair) *Builder {
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	return &Builder{cfg: cfg, pairs: pairs}
}

// Build flattens the ordered forest into a model.
//
// The structural pass is a depth-first traversal: one node per entry, a
// weight-1.0 edge between every parent and child, connections recorded in
// both directions. The curated pass then resolves each topic pair by
// substring match against node paths and adds a weight-0.7 edge per resolved
// pair; unresolved pairs and duplicates are skipped silently.
func (b *Builder) Build(entries []domain.TreeEntry) *domain.Model {
	model := domain.NewModel()
	rng := rand.New(rand.NewSource(b.cfg.Seed))

	for _, entry := range entries {
		b.addSubtree(model, rng, entry, "", 0)
	}

	for _, pair := range b.pairs {
		source, target, ok := resolvePair(model, pair)
		if !ok {
			continue
		}
		model.AddEdge(source, target, domain.WeightCurated)
	}

	return model
}

// addSubtree adds one entry and its descendants, wiring parent/child edges.
// The accumulator (the model itself) is passed explicitly rather than being
// captured by a recursive closure.
func (b *Builder) addSubtree(model *domain.Model, rng *rand.Rand, entry domain.TreeEntry, parentID string, level int) {
	kind := domain.NodeKindPage
	if entry.IsDirectory() {
		kind = domain.NodeKindGroup
	}

	node := domain.NewNode(entry.Path, entry.Title(), kind, level)
	node.Position = b.scatter(rng)
	if !model.AddNode(node) {
		return
	}

	if parentID != "" {
		model.AddEdge(parentID, entry.Path, domain.WeightStructural)
	}

	for _, child := range entry.Children {
		b.addSubtree(model, rng, child, entry.Path, level+1)
	}
}

// scatter picks a uniformly random position inside [0,width)x[0,height).
// The layout engine overwrites it on the first pass.
func (b *Builder) scatter(rng *rand.Rand) domain.Position {
	width, height := b.cfg.Width, b.cfg.Height
	if width <= 0 || height <= 0 {
		width, height = 800, 600
	}
	return domain.Position{
		X: rng.Float64() * width,
		Y: rng.Float64() * height,
	}
}

// resolvePair matches both topic substrings against node paths. A pair
// resolves only when each substring matches a node and the two nodes differ.
func resolvePair(model *domain.Model, pair CuratedPair) (string, string, bool) {
	source := findByPathSubstring(model, pair.A)
	if source == "" {
		return "", "", false
	}
	target := findByPathSubstring(model, pair.B)
	if target == "" || target == source {
		return "", "", false
	}
	return source, target, true
}

// findByPathSubstring returns the first node (in traversal order) whose path
// contains the substring
func findByPathSubstring(model *domain.Model, substr string) string {
	for _, n := range model.Nodes {
		if strings.Contains(n.Path, substr) {
			return n.ID
		}
	}
	return ""
}
