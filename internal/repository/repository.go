// Package repository defines the persistence interface for the built graph.
//
// Only the content index is stored: nodes, edges, and the time of the last
// build. Session state, layout output, and viewport transforms are transient
// and never hit the database. The sqlite subpackage holds the implementation.
package repository

import (
	"context"
	"time"

	"docmap/internal/domain"
)

// Repository persists the built graph model
type Repository interface {
	// SaveModel replaces the stored graph with the given model
	SaveModel(ctx context.Context, model *domain.Model) error

	// LoadModel returns the stored graph, or nil when nothing was saved yet
	LoadModel(ctx context.Context) (*domain.Model, error)

	// LastBuiltAt returns the time of the last SaveModel, zero when unset
	LastBuiltAt(ctx context.Context) (time.Time, error)

	// Close releases resources
	Close() error
}
