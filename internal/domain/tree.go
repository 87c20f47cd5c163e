package domain

import (
	"path/filepath"
	"strings"
)

// EntryType distinguishes content files from directories in the source tree
type EntryType string

const (
	EntryTypeFile      EntryType = "file"
	EntryTypeDirectory EntryType = "directory"
)

// TreeEntry is one entry of the external documentation tree.
// The tree is an ordered forest: sibling order is meaningful and preserved.
type TreeEntry struct {
	Name     string      `json:"name" yaml:"name"`
	Path     string      `json:"path" yaml:"path"`
	Type     EntryType   `json:"type" yaml:"type"`
	Children []TreeEntry `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsDirectory reports whether the entry is a directory ("group" in the graph)
func (e TreeEntry) IsDirectory() bool {
	return e.Type == EntryTypeDirectory
}

// Title derives the display title from the entry name: the extension and any
// numeric ordering prefix ("01-", "02_") are stripped, separators become
// spaces, and each word is capitalized.
func (e TreeEntry) Title() string {
	base := strings.TrimSuffix(e.Name, filepath.Ext(e.Name))
	base = stripOrderPrefix(base)
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)

	words := strings.Fields(base)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func stripOrderPrefix(name string) string {
	for i, r := range name {
		if r >= '0' && r <= '9' {
			continue
		}
		if (r == '-' || r == '_') && i > 0 {
			return name[i+1:]
		}
		break
	}
	return name
}

// CountEntries returns the total number of entries in the forest, all depths included
func CountEntries(entries []TreeEntry) int {
	total := 0
	for _, entry := range entries {
		total += 1 + CountEntries(entry.Children)
	}
	return total
}
