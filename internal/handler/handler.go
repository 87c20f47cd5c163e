// Package handler implements the HTTP layer of the docmap API.
//
// The API has two halves: read endpoints for the shared graph (/api/graph,
// /api/nodes) and session endpoints driving one viewer's interactive state
// (/api/sessions). Session operations return the full recomputed snapshot so
// a client never has to diff partial updates. Errors are returned as JSON
// with an {error, details} structure.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"docmap/internal/service"
	"docmap/internal/session"
)

// GraphHandler handles graph API requests
type GraphHandler struct {
	svc    *service.GraphService
	logger *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(svc *service.GraphService, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{svc: svc, logger: logger}
}

// ErrorResponse is the JSON error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// GetGraph returns the shared graph model
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	model := h.svc.Model()
	h.writeJSON(w, map[string]interface{}{
		"nodes": model.Nodes,
		"edges": model.Edges,
	}, http.StatusOK)
}

// GetNode returns a single node. Node ids contain slashes, so the route
// mounts this under a wildcard.
func (h *GraphHandler) GetNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "*")
	if id == "" {
		h.writeError(w, "Invalid node ID", "Node ID is required", http.StatusBadRequest)
		return
	}

	node, ok := h.svc.Model().NodeByID(id)
	if !ok {
		h.writeError(w, "Not found", "no node with id "+id, http.StatusNotFound)
		return
	}
	h.writeJSON(w, node, http.StatusOK)
}

// GetStatus reports graph and session counters
func (h *GraphHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	builtAt, err := h.svc.LastBuiltAt(r.Context())
	if err != nil {
		h.logger.Error("failed to read build timestamp", zap.Error(err))
		h.writeError(w, "Failed to read status", err.Error(), http.StatusInternalServerError)
		return
	}

	model := h.svc.Model()
	h.writeJSON(w, map[string]interface{}{
		"nodes":      model.NodeCount(),
		"edges":      model.EdgeCount(),
		"sessions":   h.svc.SessionCount(),
		"last_built": builtAt,
	}, http.StatusOK)
}

// Reload rebuilds the graph from the content source
func (h *GraphHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Rebuild(r.Context()); err != nil {
		h.logger.Error("rebuild failed", zap.Error(err))
		h.writeError(w, "Failed to rebuild graph", err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, map[string]string{"status": "rebuilt"}, http.StatusOK)
}

// ExportJSON exports the graph as JSON
func (h *GraphHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.ExportJSON()
	if err != nil {
		h.logger.Error("failed to export json", zap.Error(err))
		h.writeError(w, "Failed to export JSON", err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=graph.json")
	w.Write(data)
}

// ExportYAML exports the graph as YAML
func (h *GraphHandler) ExportYAML(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Content-Disposition", "attachment; filename=graph.yml")

	if err := h.svc.ExportYAML(w); err != nil {
		// headers already written, just log
		h.logger.Error("failed to export yaml", zap.Error(err))
	}
}

// CreateSessionRequest opens a viewer session
type CreateSessionRequest struct {
	CurrentPath string  `json:"current_path"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}

// CreateSession opens a session and returns its first snapshot
func (h *GraphHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	sess := h.svc.CreateSession(req.CurrentPath, req.Width, req.Height)
	h.writeJSON(w, sess.Snapshot(), http.StatusCreated)
}

// DeleteSession closes a viewer session
func (h *GraphHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if _, err := h.svc.Session(id); err != nil {
		h.sessionError(w, err)
		return
	}

	h.svc.RemoveSession(id)
	w.WriteHeader(http.StatusNoContent)
}

// GetSnapshot returns the session's current render state
func (h *GraphHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Session(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.sessionError(w, err)
		return
	}
	h.writeJSON(w, sess.Snapshot(), http.StatusOK)
}

// DimensionsRequest updates the rendering container size
type DimensionsRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SetDimensions records the session's container size
func (h *GraphHandler) SetDimensions(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Session(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.sessionError(w, err)
		return
	}

	var req DimensionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, sess.SetDimensions(req.Width, req.Height), http.StatusOK)
}

// NodeRequest names a node for focus and click operations
type NodeRequest struct {
	ID string `json:"id"`
}

// Focus moves the session focus without the click gesture
func (h *GraphHandler) Focus(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Session(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.sessionError(w, err)
		return
	}

	var req NodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, sess.Focus(req.ID), http.StatusOK)
}

// SearchRequest carries the query; an empty query leaves search mode
type SearchRequest struct {
	Query string `json:"query"`
}

// Search sets the session query
func (h *GraphHandler) Search(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Session(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.sessionError(w, err)
		return
	}

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	h.svc.RecordSearch()
	h.writeJSON(w, sess.Search(req.Query), http.StatusOK)
}

// Click runs the click gesture on a node
func (h *GraphHandler) Click(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Session(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.sessionError(w, err)
		return
	}

	var req NodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, sess.Click(req.ID), http.StatusOK)
}

// ActivateSwitch commits the pending page switch
func (h *GraphHandler) ActivateSwitch(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Session(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.sessionError(w, err)
		return
	}
	h.writeJSON(w, sess.ActivateSwitch(), http.StatusOK)
}

// WheelRequest carries a wheel delta from over the graph container
type WheelRequest struct {
	DeltaY float64 `json:"delta_y"`
}

// PointRequest carries pointer coordinates for drag operations
type PointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport dispatches the viewport operation named in the route
func (h *GraphHandler) Viewport(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Session(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.sessionError(w, err)
		return
	}

	switch op := chi.URLParam(r, "op"); op {
	case "zoom-in":
		h.writeJSON(w, sess.ZoomIn(), http.StatusOK)
	case "zoom-out":
		h.writeJSON(w, sess.ZoomOut(), http.StatusOK)
	case "reset":
		h.writeJSON(w, sess.ResetView(), http.StatusOK)
	case "drag-end":
		h.writeJSON(w, sess.DragEnd(), http.StatusOK)
	case "wheel":
		var req WheelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		h.writeJSON(w, sess.Wheel(req.DeltaY), http.StatusOK)
	case "drag-start", "drag-move":
		var req PointRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeError(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if op == "drag-start" {
			h.writeJSON(w, sess.DragStart(req.X, req.Y), http.StatusOK)
		} else {
			h.writeJSON(w, sess.DragMove(req.X, req.Y), http.StatusOK)
		}
	default:
		h.writeError(w, "Unknown viewport operation", op, http.StatusNotFound)
	}
}

// Helper methods

func (h *GraphHandler) sessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNotFound) {
		h.writeError(w, "Session not found", err.Error(), http.StatusNotFound)
		return
	}
	h.writeError(w, "Session lookup failed", err.Error(), http.StatusInternalServerError)
}

func (h *GraphHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *GraphHandler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   error,
		Details: details,
	}); err != nil {
		h.logger.Error("failed to encode error response", zap.Error(err))
	}
}
