package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountEntries(t *testing.T) {
	forest := []TreeEntry{
		{
			Name: "guides", Path: "guides", Type: EntryTypeDirectory,
			Children: []TreeEntry{
				{Name: "deployment.md", Path: "guides/deployment", Type: EntryTypeFile},
				{Name: "configuration.md", Path: "guides/configuration", Type: EntryTypeFile},
			},
		},
		{Name: "index.md", Path: "index", Type: EntryTypeFile},
	}
	assert.Equal(t, 4, CountEntries(forest))
	assert.Zero(t, CountEntries(nil))
}

func TestTreeEntryTitle(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"installation.md", "Installation"},
		{"quick-start.mdx", "Quick Start"},
		{"01-getting-started.md", "Getting Started"},
		{"02_advanced_usage.md", "Advanced Usage"},
		{"api", "Api"},
		{"404.md", "404"},
		{"guides", "Guides"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := TreeEntry{Name: tt.name}
			assert.Equal(t, tt.want, e.Title())
		})
	}
}
