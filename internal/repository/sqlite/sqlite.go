// Package sqlite implements the graph repository on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"docmap/internal/domain"

	_ "modernc.org/sqlite"
)

// Repository implements repository.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and migrates the schema
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS nodes (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		path TEXT NOT NULL,
		kind TEXT NOT NULL,
		level INTEGER NOT NULL DEFAULT 0,
		ordinal INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS edges (
		source TEXT NOT NULL,
		target TEXT NOT NULL,
		weight REAL NOT NULL,
		PRIMARY KEY (source, target),
		FOREIGN KEY (source) REFERENCES nodes(id) ON DELETE CASCADE,
		FOREIGN KEY (target) REFERENCES nodes(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS metadata (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_edges_target ON edges(target);
	`

	_, err := r.db.Exec(schema)
	return err
}

// SaveModel replaces all stored data with the given model in one transaction.
// The ordinal column preserves traversal order, which curated pair resolution
// and hub fallback depend on.
func (r *Repository) SaveModel(ctx context.Context, model *domain.Model) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Order matters due to foreign keys
	if _, err := tx.ExecContext(ctx, `DELETE FROM edges`); err != nil {
		return fmt.Errorf("failed to clear edges: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM nodes`); err != nil {
		return fmt.Errorf("failed to clear nodes: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO nodes (id, title, path, kind, level, ordinal)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare node statement: %w", err)
	}
	defer nodeStmt.Close()

	for i, n := range model.Nodes {
		if _, err := nodeStmt.ExecContext(ctx, n.ID, n.Title, n.Path, string(n.Kind), n.Level, i); err != nil {
			return fmt.Errorf("failed to insert node %s: %w", n.ID, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO edges (source, target, weight) VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare edge statement: %w", err)
	}
	defer edgeStmt.Close()

	for _, e := range model.Edges {
		if _, err := edgeStmt.ExecContext(ctx, e.Source, e.Target, e.Weight); err != nil {
			return fmt.Errorf("failed to insert edge %s: %w", e.Key(), err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO metadata (key, value, updated_at) VALUES ('last_built', ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to store build timestamp: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadModel loads the stored graph. Returns nil without error when the
// database holds no nodes.
func (r *Repository) LoadModel(ctx context.Context) (*domain.Model, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, path, kind, level FROM nodes ORDER BY ordinal
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	model := domain.NewModel()
	for rows.Next() {
		var (
			id, title, path, kind string
			level                 int
		)
		if err := rows.Scan(&id, &title, &path, &kind, &level); err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		node := domain.NewNode(path, title, domain.NodeKind(kind), level)
		node.ID = id
		model.AddNode(node)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nodes: %w", err)
	}

	if model.NodeCount() == 0 {
		return nil, nil
	}

	edgeRows, err := r.db.QueryContext(ctx, `SELECT source, target, weight FROM edges`)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer edgeRows.Close()

	for edgeRows.Next() {
		var (
			source, target string
			weight         float64
		)
		if err := edgeRows.Scan(&source, &target, &weight); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		model.AddEdge(source, target, weight)
	}
	if err := edgeRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating edges: %w", err)
	}

	return model, nil
}

// LastBuiltAt returns the timestamp of the last SaveModel
func (r *Repository) LastBuiltAt(ctx context.Context) (time.Time, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `
		SELECT value FROM metadata WHERE key = 'last_built'
	`).Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query build timestamp: %w", err)
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse build timestamp: %w", err)
	}
	return t, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
