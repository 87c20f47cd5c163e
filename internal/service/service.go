// Package service coordinates graph building, persistence, sessions, and
// event publishing between the HTTP handlers and the lower layers.
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"docmap/internal/builder"
	"docmap/internal/codec"
	"docmap/internal/config"
	"docmap/internal/domain"
	"docmap/internal/ingest"
	"docmap/internal/observability"
	"docmap/internal/repository"
	"docmap/internal/session"
)

// GraphService owns the current graph model and the viewer sessions on top
// of it. Rebuilds swap the model atomically and fan out to every session.
type GraphService struct {
	mu    sync.RWMutex
	model *domain.Model

	cfg      *config.Config
	repo     repository.Repository
	eventBus *EventBus
	logger   *zap.Logger
	metrics  *observability.Metrics
	sessions *session.Manager
}

// NewGraphService creates a graph service. The session manager is wired to
// publish navigation requests on the event bus.
func NewGraphService(cfg *config.Config, repo repository.Repository, eventBus *EventBus, logger *zap.Logger, metrics *observability.Metrics) *GraphService {
	s := &GraphService{
		model:    domain.NewModel(),
		cfg:      cfg,
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
	}

	s.sessions = session.NewManager(s.model, cfg.Graph.ReducedMotion, func(sessionID, path string) {
		s.metrics.NavigationsTotal.Inc()
		s.logger.Info("navigation requested",
			zap.String("session", sessionID), zap.String("path", path))
		s.eventBus.Publish(Event{
			Type:    EventNavigationRequested,
			Payload: map[string]string{"session_id": sessionID, "path": path},
		})
	})

	return s
}

// Init loads the persisted graph if one exists, otherwise builds from the
// content source.
func (s *GraphService) Init(ctx context.Context) error {
	model, err := s.repo.LoadModel(ctx)
	if err != nil {
		return fmt.Errorf("load persisted graph: %w", err)
	}
	if model == nil {
		return s.Rebuild(ctx)
	}

	s.swapModel(model)
	s.logger.Info("loaded persisted graph",
		zap.Int("nodes", model.NodeCount()), zap.Int("edges", model.EdgeCount()))
	return nil
}

// Rebuild reads the content source, builds a fresh model, persists it, and
// propagates it to every live session.
func (s *GraphService) Rebuild(ctx context.Context) error {
	entries, err := s.loadTree()
	if err != nil {
		s.metrics.RebuildFailures.Inc()
		return fmt.Errorf("load content tree: %w", err)
	}

	pairs, err := builder.LoadCuratedPairs(s.cfg.Docs.CuratedLinksPath)
	if err != nil {
		s.metrics.RebuildFailures.Inc()
		return fmt.Errorf("load curated links: %w", err)
	}

	model := builder.NewWithPairs(builder.Config{
		Width:  s.cfg.Graph.DefaultWidth,
		Height: s.cfg.Graph.DefaultHeight,
		Seed:   s.cfg.Graph.Seed,
	}, pairs).Build(entries)

	if err := s.repo.SaveModel(ctx, model); err != nil {
		s.metrics.RebuildFailures.Inc()
		return fmt.Errorf("persist graph: %w", err)
	}

	s.swapModel(model)

	s.logger.Info("graph rebuilt",
		zap.Int("entries", domain.CountEntries(entries)),
		zap.Int("nodes", model.NodeCount()),
		zap.Int("edges", model.EdgeCount()))

	s.eventBus.Publish(Event{
		Type: EventGraphRebuilt,
		Payload: map[string]int{
			"nodes": model.NodeCount(),
			"edges": model.EdgeCount(),
		},
	})

	return nil
}

// loadTree reads the manifest when configured, otherwise walks the docs dir
func (s *GraphService) loadTree() ([]domain.TreeEntry, error) {
	if s.cfg.Docs.ManifestPath != "" {
		format := formatForPath(s.cfg.Docs.ManifestPath)
		c, err := codec.ForFormat(format)
		if err != nil {
			return nil, err
		}

		f, err := os.Open(s.cfg.Docs.ManifestPath)
		if err != nil {
			return nil, fmt.Errorf("open manifest: %w", err)
		}
		defer f.Close()

		return c.ParseTree(f)
	}

	return ingest.NewWalker(s.cfg.Docs.Dir).Walk()
}

func formatForPath(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return "json"
	}
	return ext[1:]
}

// swapModel installs the model and updates gauges. Sessions receive clones.
func (s *GraphService) swapModel(model *domain.Model) {
	s.mu.Lock()
	s.model = model
	s.mu.Unlock()

	s.sessions.SetModel(model)
	s.metrics.RebuildsTotal.Inc()
	s.metrics.GraphNodes.Set(float64(model.NodeCount()))
	s.metrics.GraphEdges.Set(float64(model.EdgeCount()))
}

// Model returns the current shared model. Callers must not mutate it;
// sessions work on clones.
func (s *GraphService) Model() *domain.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

// CreateSession starts a viewer session seeded with the host's current path
func (s *GraphService) CreateSession(currentPath string, width, height float64) *session.Session {
	if width <= 0 || height <= 0 {
		width, height = s.cfg.Graph.DefaultWidth, s.cfg.Graph.DefaultHeight
	}

	sess := s.sessions.Create(currentPath, width, height)
	s.metrics.ActiveSessions.Set(float64(s.sessions.Count()))

	s.logger.Info("session created",
		zap.String("session", sess.ID()), zap.String("path", currentPath))
	s.eventBus.Publish(Event{
		Type:    EventSessionCreated,
		Payload: map[string]string{"session_id": sess.ID()},
	})

	return sess
}

// Session looks up a live session by id
func (s *GraphService) Session(id string) (*session.Session, error) {
	return s.sessions.Get(id)
}

// RemoveSession drops a viewer session
func (s *GraphService) RemoveSession(id string) {
	s.sessions.Remove(id)
	s.metrics.ActiveSessions.Set(float64(s.sessions.Count()))

	s.eventBus.Publish(Event{
		Type:    EventSessionClosed,
		Payload: map[string]string{"session_id": id},
	})
}

// SessionCount returns the number of live sessions
func (s *GraphService) SessionCount() int {
	return s.sessions.Count()
}

// RecordSearch counts a search query against the metrics
func (s *GraphService) RecordSearch() {
	s.metrics.SearchesTotal.Inc()
}

// LastBuiltAt returns the persistence timestamp of the current graph
func (s *GraphService) LastBuiltAt(ctx context.Context) (string, error) {
	t, err := s.repo.LastBuiltAt(ctx)
	if err != nil {
		return "", err
	}
	if t.IsZero() {
		return "", nil
	}
	return t.Format(time.RFC3339), nil
}

// ExportJSON exports the current graph as JSON
func (s *GraphService) ExportJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := codec.NewJSONCodec().ExportModel(s.Model(), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportYAML exports the current graph as YAML
func (s *GraphService) ExportYAML(w io.Writer) error {
	return codec.NewYAMLCodec().ExportModel(s.Model(), w)
}
