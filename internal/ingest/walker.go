// Package ingest scans a documentation directory into the tree form the graph
// builder consumes. Markdown and MDX files become pages; directories that
// contain at least one page (at any depth) become groups. Everything else is
// skipped.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"docmap/internal/domain"
)

var contentExtensions = map[string]struct{}{
	".md":  {},
	".mdx": {},
}

// Walker scans a docs root into an ordered tree
type Walker struct {
	root string
}

// NewWalker creates a walker over the given docs root
func NewWalker(root string) *Walker {
	return &Walker{root: root}
}

// Walk reads the docs root and returns the ordered tree of content entries.
// Sibling entries are sorted by name so the same directory always produces
// the same tree.
func (w *Walker) Walk() ([]domain.TreeEntry, error) {
	info, err := os.Stat(w.root)
	if err != nil {
		return nil, fmt.Errorf("stat docs root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docs root %s is not a directory", w.root)
	}
	return w.walkDir(w.root, "")
}

func (w *Walker) walkDir(dir, rel string) ([]domain.TreeEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	sort.Slice(dirEntries, func(i, j int) bool {
		return dirEntries[i].Name() < dirEntries[j].Name()
	})

	var entries []domain.TreeEntry
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		entryRel := name
		if rel != "" {
			entryRel = rel + "/" + name
		}

		if de.IsDir() {
			children, err := w.walkDir(filepath.Join(dir, name), entryRel)
			if err != nil {
				return nil, err
			}
			// directories with no content below them do not appear in the graph
			if len(children) == 0 {
				continue
			}
			entries = append(entries, domain.TreeEntry{
				Name:     name,
				Path:     entryRel,
				Type:     domain.EntryTypeDirectory,
				Children: children,
			})
			continue
		}

		ext := strings.ToLower(filepath.Ext(name))
		if _, ok := contentExtensions[ext]; !ok {
			continue
		}

		entries = append(entries, domain.TreeEntry{
			Name: name,
			// the path drops the extension so it matches the served route
			Path: strings.TrimSuffix(entryRel, filepath.Ext(name)),
			Type: domain.EntryTypeFile,
		})
	}

	return entries, nil
}
