// Package domain defines the core domain types for the docmap documentation graph.
//
// This package contains the entities and value objects that represent a
// documentation site as a navigable graph: tree entries, nodes, edges, the
// assembled model, and the render-ready snapshot sent to clients.
//
// # Core Types
//
// TreeEntry is one entry of the external content tree (an ordered forest of
// files and directories supplied by ingestion or a manifest).
//
// Node represents a single documentation entry in the graph. Its id equals its
// content path, which is also the navigation target. Connections are symmetric:
// whenever an edge is added, both endpoints list each other.
//
// Edge is a connection instantiated for rendering, weighted 1.0 for structural
// parent/child links and 0.7 for curated related-topic links.
//
// Model is the full node/edge set built from one content tree input. It is
// rebuilt deterministically: the same tree always yields the same id set.
//
// Snapshot is the derived view handed to clients on every update: positioned
// nodes with visibility and interaction markers, edges with visibility flags,
// and the current viewport transform.
//
// # Design Principles
//
// - No database or external dependencies
// - Pure domain logic without infrastructure concerns
// - Transient UI state (focus, query, viewport) never lives on the model
package domain
